package v1

import (
	"fmt"
	"net/http"

	"github.com/crewplan/backend/internal/httputil"
	"github.com/crewplan/backend/internal/models"
	"github.com/crewplan/backend/internal/types"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

type BankHolidayEditable struct {
	Name     string     `json:"name" example:"Christmas" default:""` // Name of the bank holiday
	Date     types.Date `json:"date" example:"2024-12-25"`           // The date of the bank holiday
	Location string     `json:"location" example:"uk" default:""`    // Location the holiday applies to. Empty means all locations
}

// model returns the database resource for the API representation of the editable fields
func (editable BankHolidayEditable) model() models.BankHoliday {
	return models.BankHoliday{
		Name:     editable.Name,
		Date:     editable.Date,
		Location: editable.Location,
	}
}

type BankHolidayLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/bank-holidays/94b40d9e-ffcb-4d27-8bcf-acb37d19a5a0"` // The bank holiday itself
}

type BankHoliday struct {
	models.DefaultModel
	BankHolidayEditable
	Links BankHolidayLinks `json:"links"`
}

// newBankHoliday returns the API representation of the resource
func newBankHoliday(c *gin.Context, model models.BankHoliday) BankHoliday {
	url := c.GetString(string(models.ContextURL))

	return BankHoliday{
		DefaultModel: model.DefaultModel,
		BankHolidayEditable: BankHolidayEditable{
			Name:     model.Name,
			Date:     model.Date,
			Location: model.Location,
		},
		Links: BankHolidayLinks{
			Self: fmt.Sprintf("%s/v1/bank-holidays/%s", url, model.ID),
		},
	}
}

type BankHolidayListResponse struct {
	Data       []BankHoliday `json:"data"`                                                          // List of resources
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}

type BankHolidayCreateResponse struct {
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []BankHolidayResponse `json:"data"`                                                          // List of created resources
}

func (t *BankHolidayCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, BankHolidayResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type BankHolidayResponse struct {
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *BankHoliday `json:"data"`                                                          // The resource
}

type BankHolidayQueryFilter struct {
	Name      string `form:"name" filterField:"false"`      // By name
	Location  string `form:"location"`                      // By location
	FromDate  string `form:"fromDate" filterField:"false"`  // Holidays on or after this date
	UntilDate string `form:"untilDate" filterField:"false"` // Holidays on or before this date
	Offset    uint   `form:"offset" filterField:"false"`    // The offset of the first bank holiday returned. Defaults to 0.
	Limit     int    `form:"limit" filterField:"false"`     // Maximum number of bank holidays to return. Defaults to 50.
}

func RegisterBankHolidayRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsBankHolidays)
		r.GET("", GetBankHolidays)
		r.POST("", CreateBankHolidays)
	}
	{
		r.OPTIONS("/:id", OptionsBankHolidayDetail)
		r.GET("/:id", GetBankHoliday)
		r.PATCH("/:id", UpdateBankHoliday)
		r.DELETE("/:id", DeleteBankHoliday)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			BankHolidays
// @Success		204
// @Router			/v1/bank-holidays [options]
func OptionsBankHolidays(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			BankHolidays
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/bank-holidays/{id} [options]
func OptionsBankHolidayDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.BankHoliday{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create bank holidays
// @Description	Creates new bank holidays
// @Tags			BankHolidays
// @Produce		json
// @Success		201				{object}	BankHolidayCreateResponse
// @Failure		400				{object}	BankHolidayCreateResponse
// @Failure		500				{object}	BankHolidayCreateResponse
// @Param			bankHolidays	body		[]BankHolidayEditable	true	"Bank holidays"
// @Router			/v1/bank-holidays [post]
func CreateBankHolidays(c *gin.Context) {
	var editables []BankHolidayEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BankHolidayCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := BankHolidayCreateResponse{}

	for _, editable := range editables {
		holiday := editable.model()
		err = models.DB.WithContext(c).Create(&holiday).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		apiResource := newBankHoliday(c, holiday)
		r.Data = append(r.Data, BankHolidayResponse{Data: &apiResource})
	}

	c.JSON(status, r)
}

// @Summary		Get bank holidays
// @Description	Returns a list of bank holidays
// @Tags			BankHolidays
// @Produce		json
// @Success		200	{object}	BankHolidayListResponse
// @Failure		400	{object}	BankHolidayListResponse
// @Failure		500	{object}	BankHolidayListResponse
// @Router			/v1/bank-holidays [get]
// @Param			name		query	string	false	"Filter by name"
// @Param			location	query	string	false	"Filter by location"
// @Param			fromDate	query	string	false	"Holidays on or after this date"
// @Param			untilDate	query	string	false	"Holidays on or before this date"
// @Param			offset		query	uint	false	"The offset of the first bank holiday returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of bank holidays to return. Defaults to 50."
func GetBankHolidays(c *gin.Context) {
	var filter BankHolidayQueryFilter

	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, BankHolidayListResponse{
			Error: &s,
		})
		return
	}

	_, setFields := httputil.GetURLFields(c.Request.URL, filter)

	q := models.DB.Order("date(date) ASC, name ASC")

	if filter.Name != "" {
		q = q.Where("name LIKE ?", fmt.Sprintf("%%%s%%", filter.Name))
	} else if slices.Contains(setFields, "Name") {
		q = q.Where("name = ''")
	}

	if slices.Contains(setFields, "Location") {
		q = q.Where("location = ?", filter.Location)
	}

	if filter.FromDate != "" {
		fromDate, e := types.ParseDate(filter.FromDate)
		if e != nil {
			s := e.Error()
			c.JSON(http.StatusBadRequest, BankHolidayListResponse{
				Error: &s,
			})
			return
		}
		q = q.Where("date >= date(?)", fromDate)
	}

	if filter.UntilDate != "" {
		untilDate, e := types.ParseDate(filter.UntilDate)
		if e != nil {
			s := e.Error()
			c.JSON(http.StatusBadRequest, BankHolidayListResponse{
				Error: &s,
			})
			return
		}
		q = q.Where("date <= date(?)", untilDate)
	}

	q = q.Offset(int(filter.Offset))

	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var holidays []models.BankHoliday
	err := q.Find(&holidays).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BankHolidayListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BankHolidayListResponse{
			Error: &e,
		})
		return
	}

	data := make([]BankHoliday, 0, len(holidays))
	for _, holiday := range holidays {
		data = append(data, newBankHoliday(c, holiday))
	}

	c.JSON(http.StatusOK, BankHolidayListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get bank holiday
// @Description	Returns a specific bank holiday
// @Tags			BankHolidays
// @Produce		json
// @Success		200	{object}	BankHolidayResponse
// @Failure		400	{object}	BankHolidayResponse
// @Failure		404	{object}	BankHolidayResponse
// @Failure		500	{object}	BankHolidayResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/bank-holidays/{id} [get]
func GetBankHoliday(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BankHolidayResponse{
			Error: &e,
		})
		return
	}

	var holiday models.BankHoliday
	err = models.DB.First(&holiday, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BankHolidayResponse{
			Error: &e,
		})
		return
	}

	apiResource := newBankHoliday(c, holiday)
	c.JSON(http.StatusOK, BankHolidayResponse{Data: &apiResource})
}

// @Summary		Update bank holiday
// @Description	Updates an existing bank holiday. Only values to be updated need to be specified.
// @Tags			BankHolidays
// @Accept			json
// @Produce		json
// @Success		200			{object}	BankHolidayResponse
// @Failure		400			{object}	BankHolidayResponse
// @Failure		404			{object}	BankHolidayResponse
// @Failure		500			{object}	BankHolidayResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			bankHoliday	body		BankHolidayEditable	true	"Bank holiday"
// @Router			/v1/bank-holidays/{id} [patch]
func UpdateBankHoliday(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BankHolidayResponse{
			Error: &e,
		})
		return
	}

	var holiday models.BankHoliday
	err = models.DB.First(&holiday, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BankHolidayResponse{
			Error: &e,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, BankHolidayEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BankHolidayResponse{
			Error: &e,
		})
		return
	}

	var data BankHolidayEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BankHolidayResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.WithContext(c).Model(&holiday).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BankHolidayResponse{
			Error: &e,
		})
		return
	}

	apiResource := newBankHoliday(c, holiday)
	c.JSON(http.StatusOK, BankHolidayResponse{Data: &apiResource})
}

// @Summary		Delete bank holiday
// @Description	Deletes a bank holiday
// @Tags			BankHolidays
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/bank-holidays/{id} [delete]
func DeleteBankHoliday(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var holiday models.BankHoliday
	err = models.DB.First(&holiday, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&holiday).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
