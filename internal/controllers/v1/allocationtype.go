package v1

import (
	"fmt"
	"net/http"

	"github.com/crewplan/backend/internal/httputil"
	"github.com/crewplan/backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

type AllocationTypeEditable struct {
	Name      string `json:"name" example:"Billable" default:""`     // Name of the allocation type, must be unique
	ColorCode string `json:"colorCode" example:"#ffc000" default:""` // Hex color the timeline uses for allocations of this type
}

// model returns the database resource for the API representation of the editable fields
func (editable AllocationTypeEditable) model() models.AllocationType {
	return models.AllocationType{
		Name:      editable.Name,
		ColorCode: editable.ColorCode,
	}
}

type AllocationTypeLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/allocation-types/2f1f63b6-57e6-4288-acfd-3ab94f98ba95"` // The allocation type itself
}

type AllocationType struct {
	models.DefaultModel
	AllocationTypeEditable
	Links AllocationTypeLinks `json:"links"`
}

// newAllocationType returns the API representation of the resource
func newAllocationType(c *gin.Context, model models.AllocationType) AllocationType {
	url := c.GetString(string(models.ContextURL))

	return AllocationType{
		DefaultModel: model.DefaultModel,
		AllocationTypeEditable: AllocationTypeEditable{
			Name:      model.Name,
			ColorCode: model.ColorCode,
		},
		Links: AllocationTypeLinks{
			Self: fmt.Sprintf("%s/v1/allocation-types/%s", url, model.ID),
		},
	}
}

type AllocationTypeListResponse struct {
	Data       []AllocationType `json:"data"`                                                          // List of resources
	Error      *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination      `json:"pagination"`                                                    // Pagination information
}

type AllocationTypeCreateResponse struct {
	Error *string                  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []AllocationTypeResponse `json:"data"`                                                          // List of created resources
}

func (t *AllocationTypeCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, AllocationTypeResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type AllocationTypeResponse struct {
	Error *string         `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *AllocationType `json:"data"`                                                          // The resource
}

type AllocationTypeQueryFilter struct {
	Name   string `form:"name" filterField:"false"`   // By name
	Active bool   `form:"active" filterField:"false"` // Is the allocation type in active use?
	Offset uint   `form:"offset" filterField:"false"` // The offset of the first allocation type returned. Defaults to 0.
	Limit  int    `form:"limit" filterField:"false"`  // Maximum number of allocation types to return. Defaults to 50.
}

func RegisterAllocationTypeRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsAllocationTypes)
		r.GET("", GetAllocationTypes)
		r.POST("", CreateAllocationTypes)
	}
	{
		r.OPTIONS("/:id", OptionsAllocationTypeDetail)
		r.GET("/:id", GetAllocationType)
		r.PATCH("/:id", UpdateAllocationType)
		r.DELETE("/:id", DeleteAllocationType)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			AllocationTypes
// @Success		204
// @Router			/v1/allocation-types [options]
func OptionsAllocationTypes(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			AllocationTypes
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/allocation-types/{id} [options]
func OptionsAllocationTypeDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.AllocationType{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create allocation types
// @Description	Creates new allocation types
// @Tags			AllocationTypes
// @Produce		json
// @Success		201				{object}	AllocationTypeCreateResponse
// @Failure		400				{object}	AllocationTypeCreateResponse
// @Failure		500				{object}	AllocationTypeCreateResponse
// @Param			allocationTypes	body		[]AllocationTypeEditable	true	"Allocation types"
// @Router			/v1/allocation-types [post]
func CreateAllocationTypes(c *gin.Context) {
	var editables []AllocationTypeEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationTypeCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := AllocationTypeCreateResponse{}

	for _, editable := range editables {
		allocationType := editable.model()
		err = models.DB.WithContext(c).Create(&allocationType).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		apiResource := newAllocationType(c, allocationType)
		r.Data = append(r.Data, AllocationTypeResponse{Data: &apiResource})
	}

	c.JSON(status, r)
}

// @Summary		Get allocation types
// @Description	Returns a list of allocation types
// @Tags			AllocationTypes
// @Produce		json
// @Success		200	{object}	AllocationTypeListResponse
// @Failure		400	{object}	AllocationTypeListResponse
// @Failure		500	{object}	AllocationTypeListResponse
// @Router			/v1/allocation-types [get]
// @Param			name	query	string	false	"Filter by name"
// @Param			active	query	bool	false	"Is the allocation type in active use?"
// @Param			offset	query	uint	false	"The offset of the first allocation type returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of allocation types to return. Defaults to 50."
func GetAllocationTypes(c *gin.Context) {
	var filter AllocationTypeQueryFilter

	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, AllocationTypeListResponse{
			Error: &s,
		})
		return
	}

	_, setFields := httputil.GetURLFields(c.Request.URL, filter)

	q := models.DB.Order("name ASC")

	if filter.Name != "" {
		q = q.Where("name LIKE ?", fmt.Sprintf("%%%s%%", filter.Name))
	} else if slices.Contains(setFields, "Name") {
		q = q.Where("name = ''")
	}

	if slices.Contains(setFields, "Active") {
		q = q.Where("active = ?", filter.Active)
	}

	q = q.Offset(int(filter.Offset))

	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var allocationTypes []models.AllocationType
	err := q.Find(&allocationTypes).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AllocationTypeListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationTypeListResponse{
			Error: &e,
		})
		return
	}

	data := make([]AllocationType, 0, len(allocationTypes))
	for _, allocationType := range allocationTypes {
		data = append(data, newAllocationType(c, allocationType))
	}

	c.JSON(http.StatusOK, AllocationTypeListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get allocation type
// @Description	Returns a specific allocation type
// @Tags			AllocationTypes
// @Produce		json
// @Success		200	{object}	AllocationTypeResponse
// @Failure		400	{object}	AllocationTypeResponse
// @Failure		404	{object}	AllocationTypeResponse
// @Failure		500	{object}	AllocationTypeResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/allocation-types/{id} [get]
func GetAllocationType(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationTypeResponse{
			Error: &e,
		})
		return
	}

	var allocationType models.AllocationType
	err = models.DB.First(&allocationType, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationTypeResponse{
			Error: &e,
		})
		return
	}

	apiResource := newAllocationType(c, allocationType)
	c.JSON(http.StatusOK, AllocationTypeResponse{Data: &apiResource})
}

// @Summary		Update allocation type
// @Description	Updates an existing allocation type. Only values to be updated need to be specified.
// @Tags			AllocationTypes
// @Accept			json
// @Produce		json
// @Success		200				{object}	AllocationTypeResponse
// @Failure		400				{object}	AllocationTypeResponse
// @Failure		404				{object}	AllocationTypeResponse
// @Failure		500				{object}	AllocationTypeResponse
// @Param			id				path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			allocationType	body		AllocationTypeEditable	true	"Allocation type"
// @Router			/v1/allocation-types/{id} [patch]
func UpdateAllocationType(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationTypeResponse{
			Error: &e,
		})
		return
	}

	var allocationType models.AllocationType
	err = models.DB.First(&allocationType, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationTypeResponse{
			Error: &e,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, AllocationTypeEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationTypeResponse{
			Error: &e,
		})
		return
	}

	var data AllocationTypeEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationTypeResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.WithContext(c).Model(&allocationType).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationTypeResponse{
			Error: &e,
		})
		return
	}

	apiResource := newAllocationType(c, allocationType)
	c.JSON(http.StatusOK, AllocationTypeResponse{Data: &apiResource})
}

// @Summary		Delete allocation type
// @Description	Deletes an allocation type
// @Tags			AllocationTypes
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		409	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/allocation-types/{id} [delete]
func DeleteAllocationType(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var allocationType models.AllocationType
	err = models.DB.First(&allocationType, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&allocationType).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
