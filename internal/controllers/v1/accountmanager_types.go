package v1

import (
	"fmt"

	"github.com/crewplan/backend/internal/models"
	"github.com/gin-gonic/gin"
)

type AccountManagerEditable struct {
	FirstName string `json:"firstName" example:"Priya" default:""`              // First name of the account manager
	LastName  string `json:"lastName" example:"Shah" default:""`                // Last name of the account manager
	Email     string `json:"email" example:"priya.shah@example.com" default:""` // Email address
	Phone     string `json:"phone" example:"+44 20 7946 0000" default:""`       // Phone number
}

// model returns the database resource for the API representation of the editable fields
func (editable AccountManagerEditable) model() models.AccountManager {
	return models.AccountManager{
		FirstName: editable.FirstName,
		LastName:  editable.LastName,
		Email:     editable.Email,
		Phone:     editable.Phone,
	}
}

type AccountManagerLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/account-managers/af892e10-7e0a-4fb8-b1bc-4b6d88401ed9"` // The account manager itself
}

type AccountManager struct {
	models.DefaultModel
	AccountManagerEditable
	Links AccountManagerLinks `json:"links"`
}

// newAccountManager returns the API representation of the resource
func newAccountManager(c *gin.Context, model models.AccountManager) AccountManager {
	url := c.GetString(string(models.ContextURL))

	return AccountManager{
		DefaultModel: model.DefaultModel,
		AccountManagerEditable: AccountManagerEditable{
			FirstName: model.FirstName,
			LastName:  model.LastName,
			Email:     model.Email,
			Phone:     model.Phone,
		},
		Links: AccountManagerLinks{
			Self: fmt.Sprintf("%s/v1/account-managers/%s", url, model.ID),
		},
	}
}

type AccountManagerListResponse struct {
	Data       []AccountManager `json:"data"`                                                          // List of resources
	Error      *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination      `json:"pagination"`                                                    // Pagination information
}

type AccountManagerCreateResponse struct {
	Error *string                  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []AccountManagerResponse `json:"data"`                                                          // List of created resources
}

func (t *AccountManagerCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, AccountManagerResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type AccountManagerResponse struct {
	Error *string         `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *AccountManager `json:"data"`                                                          // The resource
}

type AccountManagerQueryFilter struct {
	Name   string `form:"name" filterField:"false"`   // Search in first and last name
	Email  string `form:"email" filterField:"false"`  // By email
	Active bool   `form:"active" filterField:"false"` // Is the account manager in active use?
	Offset uint   `form:"offset" filterField:"false"` // The offset of the first account manager returned. Defaults to 0.
	Limit  int    `form:"limit" filterField:"false"`  // Maximum number of account managers to return. Defaults to 50.
}
