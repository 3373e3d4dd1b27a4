package v1

import (
	"net/http"

	"github.com/crewplan/backend/internal/httputil"
	"github.com/crewplan/backend/internal/models"
	"github.com/crewplan/backend/internal/types"
	cp_uuid "github.com/crewplan/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

func RegisterAllocationRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsAllocations)
		r.GET("", GetAllocations)
		r.POST("", CreateAllocations)
	}
	{
		r.OPTIONS("/:id", OptionsAllocationDetail)
		r.GET("/:id", GetAllocation)
		r.PATCH("/:id", UpdateAllocation)
		r.DELETE("/:id", DeleteAllocation)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Allocations
// @Success		204
// @Router			/v1/allocations [options]
func OptionsAllocations(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Allocations
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/allocations/{id} [options]
func OptionsAllocationDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Allocation{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create allocations
// @Description	Creates new allocations. An allocation books an employee onto a project on the given weekly recurrence days.
// @Tags			Allocations
// @Produce		json
// @Success		201			{object}	AllocationCreateResponse
// @Failure		400			{object}	AllocationCreateResponse
// @Failure		404			{object}	AllocationCreateResponse
// @Failure		500			{object}	AllocationCreateResponse
// @Param			allocations	body		[]AllocationEditable	true	"Allocations"
// @Router			/v1/allocations [post]
func CreateAllocations(c *gin.Context) {
	var editables []AllocationEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := AllocationCreateResponse{}

	for _, editable := range editables {
		allocation := editable.model()

		// The allocation and its recurrence days are written together.
		// A failing day rolls back the allocation row, too.
		err = models.DB.WithContext(c).Transaction(func(tx *gorm.DB) error {
			err := tx.Create(&allocation).Error
			if err != nil {
				return err
			}

			return allocation.ReplaceDetails(tx, editable.DaysOfWeek)
		})
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		err = models.DB.Preload("Details").First(&allocation, allocation.ID).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		apiResource := newAllocation(c, allocation)
		r.Data = append(r.Data, AllocationResponse{Data: &apiResource})
	}

	c.JSON(status, r)
}

// @Summary		Get allocations
// @Description	Returns a list of allocations
// @Tags			Allocations
// @Produce		json
// @Success		200	{object}	AllocationListResponse
// @Failure		400	{object}	AllocationListResponse
// @Failure		500	{object}	AllocationListResponse
// @Router			/v1/allocations [get]
// @Param			employee		query	string	false	"Filter by employee ID"
// @Param			project			query	string	false	"Filter by project ID"
// @Param			allocationType	query	string	false	"Filter by allocation type ID"
// @Param			fromDate		query	string	false	"Allocations ending on or after this date"
// @Param			untilDate		query	string	false	"Allocations starting on or before this date"
// @Param			offset			query	uint	false	"The offset of the first allocation returned. Defaults to 0."
// @Param			limit			query	int		false	"Maximum number of allocations to return. Defaults to 50."
func GetAllocations(c *gin.Context) {
	var filter AllocationQueryFilter

	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, AllocationListResponse{
			Error: &s,
		})
		return
	}

	_, setFields := httputil.GetURLFields(c.Request.URL, filter)

	q := models.DB.Preload("Details").Order("date(start_date) ASC")

	if filter.EmployeeID != cp_uuid.Nil {
		q = q.Where("employee_id = ?", filter.EmployeeID.UUID)
	}

	if filter.ProjectID != cp_uuid.Nil {
		q = q.Where("project_id = ?", filter.ProjectID.UUID)
	}

	if filter.AllocationTypeID != cp_uuid.Nil {
		q = q.Where("allocation_type_id = ?", filter.AllocationTypeID.UUID)
	}

	if filter.FromDate != "" {
		fromDate, e := types.ParseDate(filter.FromDate)
		if e != nil {
			s := e.Error()
			c.JSON(http.StatusBadRequest, AllocationListResponse{
				Error: &s,
			})
			return
		}
		q = q.Where("end_date >= date(?)", fromDate)
	}

	if filter.UntilDate != "" {
		untilDate, e := types.ParseDate(filter.UntilDate)
		if e != nil {
			s := e.Error()
			c.JSON(http.StatusBadRequest, AllocationListResponse{
				Error: &s,
			})
			return
		}
		q = q.Where("start_date <= date(?)", untilDate)
	}

	q = q.Offset(int(filter.Offset))

	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var allocations []models.Allocation
	err := q.Find(&allocations).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AllocationListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Allocation, 0, len(allocations))
	for _, allocation := range allocations {
		data = append(data, newAllocation(c, allocation))
	}

	c.JSON(http.StatusOK, AllocationListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get allocation
// @Description	Returns a specific allocation
// @Tags			Allocations
// @Produce		json
// @Success		200	{object}	AllocationResponse
// @Failure		400	{object}	AllocationResponse
// @Failure		404	{object}	AllocationResponse
// @Failure		500	{object}	AllocationResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/allocations/{id} [get]
func GetAllocation(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationResponse{
			Error: &e,
		})
		return
	}

	var allocation models.Allocation
	err = models.DB.Preload("Details").First(&allocation, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationResponse{
			Error: &e,
		})
		return
	}

	apiResource := newAllocation(c, allocation)
	c.JSON(http.StatusOK, AllocationResponse{Data: &apiResource})
}

// @Summary		Update allocation
// @Description	Updates an existing allocation. Only values to be updated need to be specified. Specifying daysOfWeek replaces the full set of recurrence days.
// @Tags			Allocations
// @Accept			json
// @Produce		json
// @Success		200			{object}	AllocationResponse
// @Failure		400			{object}	AllocationResponse
// @Failure		404			{object}	AllocationResponse
// @Failure		500			{object}	AllocationResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			allocation	body		AllocationEditable	true	"Allocation"
// @Router			/v1/allocations/{id} [patch]
func UpdateAllocation(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationResponse{
			Error: &e,
		})
		return
	}

	var allocation models.Allocation
	err = models.DB.Preload("Details").First(&allocation, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationResponse{
			Error: &e,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, AllocationEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationResponse{
			Error: &e,
		})
		return
	}

	var data AllocationEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationResponse{
			Error: &e,
		})
		return
	}

	// Recurrence days are stored as detail rows, not as a column
	updateDays := slices.Contains(updateFields, any("DaysOfWeek"))
	if updateDays {
		i := slices.Index(updateFields, any("DaysOfWeek"))
		updateFields = slices.Delete(updateFields, i, i+1)
	}

	// Field updates and recurrence day replacement are one write. If the
	// new days are rejected, the field updates roll back with them.
	err = models.DB.WithContext(c).Transaction(func(tx *gorm.DB) error {
		if len(updateFields) > 0 {
			err := tx.Model(&allocation).Select("", updateFields...).Updates(data.model()).Error
			if err != nil {
				return err
			}
		}

		if updateDays {
			return allocation.ReplaceDetails(tx, data.DaysOfWeek)
		}

		return nil
	})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.Preload("Details").First(&allocation, allocation.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationResponse{
			Error: &e,
		})
		return
	}

	apiResource := newAllocation(c, allocation)
	c.JSON(http.StatusOK, AllocationResponse{Data: &apiResource})
}

// @Summary		Delete allocation
// @Description	Deletes an allocation and its recurrence days
// @Tags			Allocations
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/allocations/{id} [delete]
func DeleteAllocation(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var allocation models.Allocation
	err = models.DB.First(&allocation, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&allocation).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
