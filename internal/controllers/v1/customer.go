package v1

import (
	"net/http"

	"github.com/crewplan/backend/internal/httputil"
	"github.com/crewplan/backend/internal/models"
	cp_uuid "github.com/crewplan/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

func RegisterCustomerRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsCustomers)
		r.GET("", GetCustomers)
		r.POST("", CreateCustomers)
	}
	{
		r.OPTIONS("/:id", OptionsCustomerDetail)
		r.GET("/:id", GetCustomer)
		r.PATCH("/:id", UpdateCustomer)
		r.DELETE("/:id", DeleteCustomer)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Customers
// @Success		204
// @Router			/v1/customers [options]
func OptionsCustomers(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Customers
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/customers/{id} [options]
func OptionsCustomerDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Customer{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create customers
// @Description	Creates new customers
// @Tags			Customers
// @Produce		json
// @Success		201			{object}	CustomerCreateResponse
// @Failure		400			{object}	CustomerCreateResponse
// @Failure		404			{object}	CustomerCreateResponse
// @Failure		500			{object}	CustomerCreateResponse
// @Param			customers	body		[]CustomerEditable	true	"Customers"
// @Router			/v1/customers [post]
func CreateCustomers(c *gin.Context) {
	var editables []CustomerEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CustomerCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := CustomerCreateResponse{}

	for _, editable := range editables {
		customer := editable.model()
		err = models.DB.WithContext(c).Create(&customer).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		apiResource := newCustomer(c, customer)
		r.Data = append(r.Data, CustomerResponse{Data: &apiResource})
	}

	c.JSON(status, r)
}

// @Summary		Get customers
// @Description	Returns a list of customers
// @Tags			Customers
// @Produce		json
// @Success		200	{object}	CustomerListResponse
// @Failure		400	{object}	CustomerListResponse
// @Failure		500	{object}	CustomerListResponse
// @Router			/v1/customers [get]
// @Param			name			query	string	false	"Filter by name"
// @Param			description		query	string	false	"Filter by description"
// @Param			search			query	string	false	"Search for this text in name and description"
// @Param			accountManager	query	string	false	"Filter by account manager ID"
// @Param			active			query	bool	false	"Is the customer in active use?"
// @Param			offset			query	uint	false	"The offset of the first customer returned. Defaults to 0."
// @Param			limit			query	int		false	"Maximum number of customers to return. Defaults to 50."
func GetCustomers(c *gin.Context) {
	var filter CustomerQueryFilter

	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, CustomerListResponse{
			Error: &s,
		})
		return
	}

	_, setFields := httputil.GetURLFields(c.Request.URL, filter)

	q := models.DB.Order("name ASC")
	q = stringFilters(models.DB, q, setFields, filter.Name, filter.Description, filter.Search)

	if filter.AccountManagerID != cp_uuid.Nil {
		q = q.Where("account_manager_id = ?", filter.AccountManagerID.UUID)
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

	var customers []models.Customer
	err := q.Find(&customers).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CustomerListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CustomerListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Customer, 0, len(customers))
	for _, customer := range customers {
		data = append(data, newCustomer(c, customer))
	}

	c.JSON(http.StatusOK, CustomerListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get customer
// @Description	Returns a specific customer
// @Tags			Customers
// @Produce		json
// @Success		200	{object}	CustomerResponse
// @Failure		400	{object}	CustomerResponse
// @Failure		404	{object}	CustomerResponse
// @Failure		500	{object}	CustomerResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/customers/{id} [get]
func GetCustomer(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CustomerResponse{
			Error: &e,
		})
		return
	}

	var customer models.Customer
	err = models.DB.First(&customer, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CustomerResponse{
			Error: &e,
		})
		return
	}

	apiResource := newCustomer(c, customer)
	c.JSON(http.StatusOK, CustomerResponse{Data: &apiResource})
}

// @Summary		Update customer
// @Description	Updates an existing customer. Only values to be updated need to be specified.
// @Tags			Customers
// @Accept			json
// @Produce		json
// @Success		200			{object}	CustomerResponse
// @Failure		400			{object}	CustomerResponse
// @Failure		404			{object}	CustomerResponse
// @Failure		500			{object}	CustomerResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			customer	body		CustomerEditable	true	"Customer"
// @Router			/v1/customers/{id} [patch]
func UpdateCustomer(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CustomerResponse{
			Error: &e,
		})
		return
	}

	var customer models.Customer
	err = models.DB.First(&customer, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CustomerResponse{
			Error: &e,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, CustomerEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CustomerResponse{
			Error: &e,
		})
		return
	}

	var data CustomerEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CustomerResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.WithContext(c).Model(&customer).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CustomerResponse{
			Error: &e,
		})
		return
	}

	apiResource := newCustomer(c, customer)
	c.JSON(http.StatusOK, CustomerResponse{Data: &apiResource})
}

// @Summary		Delete customer
// @Description	Deletes a customer
// @Tags			Customers
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		409	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/customers/{id} [delete]
func DeleteCustomer(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var customer models.Customer
	err = models.DB.First(&customer, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&customer).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
