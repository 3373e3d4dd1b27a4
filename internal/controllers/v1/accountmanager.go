package v1

import (
	"fmt"
	"net/http"

	"github.com/crewplan/backend/internal/httputil"
	"github.com/crewplan/backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

func RegisterAccountManagerRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsAccountManagers)
		r.GET("", GetAccountManagers)
		r.POST("", CreateAccountManagers)
	}
	{
		r.OPTIONS("/:id", OptionsAccountManagerDetail)
		r.GET("/:id", GetAccountManager)
		r.PATCH("/:id", UpdateAccountManager)
		r.DELETE("/:id", DeleteAccountManager)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			AccountManagers
// @Success		204
// @Router			/v1/account-managers [options]
func OptionsAccountManagers(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			AccountManagers
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/account-managers/{id} [options]
func OptionsAccountManagerDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.AccountManager{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create account managers
// @Description	Creates new account managers
// @Tags			AccountManagers
// @Produce		json
// @Success		201				{object}	AccountManagerCreateResponse
// @Failure		400				{object}	AccountManagerCreateResponse
// @Failure		500				{object}	AccountManagerCreateResponse
// @Param			accountManagers	body		[]AccountManagerEditable	true	"Account managers"
// @Router			/v1/account-managers [post]
func CreateAccountManagers(c *gin.Context) {
	var editables []AccountManagerEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AccountManagerCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := AccountManagerCreateResponse{}

	for _, editable := range editables {
		manager := editable.model()
		err = models.DB.WithContext(c).Create(&manager).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		apiResource := newAccountManager(c, manager)
		r.Data = append(r.Data, AccountManagerResponse{Data: &apiResource})
	}

	c.JSON(status, r)
}

// @Summary		Get account managers
// @Description	Returns a list of account managers
// @Tags			AccountManagers
// @Produce		json
// @Success		200	{object}	AccountManagerListResponse
// @Failure		400	{object}	AccountManagerListResponse
// @Failure		500	{object}	AccountManagerListResponse
// @Router			/v1/account-managers [get]
// @Param			name	query	string	false	"Search in first and last name"
// @Param			email	query	string	false	"Filter by email"
// @Param			active	query	bool	false	"Is the account manager in active use?"
// @Param			offset	query	uint	false	"The offset of the first account manager returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of account managers to return. Defaults to 50."
func GetAccountManagers(c *gin.Context) {
	var filter AccountManagerQueryFilter

	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, AccountManagerListResponse{
			Error: &s,
		})
		return
	}

	_, setFields := httputil.GetURLFields(c.Request.URL, filter)

	q := models.DB.Order("last_name ASC, first_name ASC")

	if filter.Name != "" {
		q = q.Where(
			models.DB.Where("first_name LIKE ?", fmt.Sprintf("%%%s%%", filter.Name)).Or(
				models.DB.Where("last_name LIKE ?", fmt.Sprintf("%%%s%%", filter.Name)),
			),
		)
	}

	if filter.Email != "" {
		q = q.Where("email LIKE ?", fmt.Sprintf("%%%s%%", filter.Email))
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

	var managers []models.AccountManager
	err := q.Find(&managers).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AccountManagerListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AccountManagerListResponse{
			Error: &e,
		})
		return
	}

	data := make([]AccountManager, 0, len(managers))
	for _, manager := range managers {
		data = append(data, newAccountManager(c, manager))
	}

	c.JSON(http.StatusOK, AccountManagerListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get account manager
// @Description	Returns a specific account manager
// @Tags			AccountManagers
// @Produce		json
// @Success		200	{object}	AccountManagerResponse
// @Failure		400	{object}	AccountManagerResponse
// @Failure		404	{object}	AccountManagerResponse
// @Failure		500	{object}	AccountManagerResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/account-managers/{id} [get]
func GetAccountManager(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AccountManagerResponse{
			Error: &e,
		})
		return
	}

	var manager models.AccountManager
	err = models.DB.First(&manager, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AccountManagerResponse{
			Error: &e,
		})
		return
	}

	apiResource := newAccountManager(c, manager)
	c.JSON(http.StatusOK, AccountManagerResponse{Data: &apiResource})
}

// @Summary		Update account manager
// @Description	Updates an existing account manager. Only values to be updated need to be specified.
// @Tags			AccountManagers
// @Accept			json
// @Produce		json
// @Success		200				{object}	AccountManagerResponse
// @Failure		400				{object}	AccountManagerResponse
// @Failure		404				{object}	AccountManagerResponse
// @Failure		500				{object}	AccountManagerResponse
// @Param			id				path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			accountManager	body		AccountManagerEditable	true	"Account manager"
// @Router			/v1/account-managers/{id} [patch]
func UpdateAccountManager(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AccountManagerResponse{
			Error: &e,
		})
		return
	}

	var manager models.AccountManager
	err = models.DB.First(&manager, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AccountManagerResponse{
			Error: &e,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, AccountManagerEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AccountManagerResponse{
			Error: &e,
		})
		return
	}

	var data AccountManagerEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AccountManagerResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.WithContext(c).Model(&manager).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AccountManagerResponse{
			Error: &e,
		})
		return
	}

	apiResource := newAccountManager(c, manager)
	c.JSON(http.StatusOK, AccountManagerResponse{Data: &apiResource})
}

// @Summary		Delete account manager
// @Description	Deletes an account manager
// @Tags			AccountManagers
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		409	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/account-managers/{id} [delete]
func DeleteAccountManager(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var manager models.AccountManager
	err = models.DB.First(&manager, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&manager).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
