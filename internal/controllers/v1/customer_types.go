package v1

import (
	"fmt"

	"github.com/crewplan/backend/internal/models"
	cp_uuid "github.com/crewplan/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CustomerEditable struct {
	Name             string     `json:"name" example:"Globex Corporation" default:""`                    // Name of the customer, must be unique
	Description      string     `json:"description" example:"Retail chain, EMEA" default:""`             // Description of the customer
	AccountManagerID *uuid.UUID `json:"accountManagerId" example:"af892e10-7e0a-4fb8-b1bc-4b6d88401ed9"` // The account manager responsible for the customer
}

// model returns the database resource for the API representation of the editable fields
func (editable CustomerEditable) model() models.Customer {
	return models.Customer{
		Name:             editable.Name,
		Description:      editable.Description,
		AccountManagerID: editable.AccountManagerID,
	}
}

type CustomerLinks struct {
	Self           string `json:"self" example:"https://example.com/api/v1/customers/d1b0b9e2-5ef7-4f20-a6ff-18cc171e3b27"`                  // The customer itself
	AccountManager string `json:"accountManager" example:"https://example.com/api/v1/account-managers/af892e10-7e0a-4fb8-b1bc-4b6d88401ed9"` // The account manager responsible for the customer
}

type Customer struct {
	models.DefaultModel
	CustomerEditable
	Links CustomerLinks `json:"links"`
}

// newCustomer returns the API representation of the resource
func newCustomer(c *gin.Context, model models.Customer) Customer {
	url := c.GetString(string(models.ContextURL))

	links := CustomerLinks{
		Self: fmt.Sprintf("%s/v1/customers/%s", url, model.ID),
	}

	if model.AccountManagerID != nil {
		links.AccountManager = fmt.Sprintf("%s/v1/account-managers/%s", url, *model.AccountManagerID)
	}

	return Customer{
		DefaultModel: model.DefaultModel,
		CustomerEditable: CustomerEditable{
			Name:             model.Name,
			Description:      model.Description,
			AccountManagerID: model.AccountManagerID,
		},
		Links: links,
	}
}

type CustomerListResponse struct {
	Data       []Customer  `json:"data"`                                                          // List of resources
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type CustomerCreateResponse struct {
	Error *string            `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []CustomerResponse `json:"data"`                                                          // List of created resources
}

func (t *CustomerCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, CustomerResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type CustomerResponse struct {
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Customer `json:"data"`                                                          // The resource
}

type CustomerQueryFilter struct {
	Name             string       `form:"name" filterField:"false"`        // By name
	Description      string       `form:"description" filterField:"false"` // By the description
	Search           string       `form:"search" filterField:"false"`      // Search for this text in name and description
	AccountManagerID cp_uuid.UUID `form:"accountManager"`                  // By account manager ID
	Active           bool         `form:"active" filterField:"false"`      // Is the customer in active use?
	Offset           uint         `form:"offset" filterField:"false"`      // The offset of the first customer returned. Defaults to 0.
	Limit            int          `form:"limit" filterField:"false"`       // Maximum number of customers to return. Defaults to 50.
}
