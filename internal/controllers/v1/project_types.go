package v1

import (
	"fmt"

	"github.com/crewplan/backend/internal/models"
	"github.com/crewplan/backend/internal/types"
	cp_uuid "github.com/crewplan/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProjectEditable struct {
	Name                     string      `json:"name" example:"Website relaunch" default:""` // Name of the project, must be unique
	Description              string      `json:"description" example:"" default:""`          // Description of the project
	CustomerID               *uuid.UUID  `json:"customerId"`                                 // The customer the project is for
	ProjectTypeID            *uuid.UUID  `json:"projectTypeId"`                              // The type of the project
	CommercialStatusID       *uuid.UUID  `json:"commercialStatusId"`                         // The commercial status of the project
	CustomerDeliveryLeadID   *uuid.UUID  `json:"customerDeliveryLeadId"`                     // The employee leading delivery towards the customer
	ServiceDeliveryManagerID *uuid.UUID  `json:"serviceDeliveryManagerId"`                   // The employee managing service delivery
	StartDate                types.Date  `json:"startDate" example:"2024-01-01"`             // Start date of the project
	EndDate                  *types.Date `json:"endDate" example:"2024-06-30"`               // End date of the project, if known
	Phase                    string      `json:"phase" example:"delivery" default:""`        // One of discovery, delivery, support, closed
	Status                   string      `json:"status" example:"active" default:""`         // One of planned, active, on-hold, completed, cancelled
	Priority                 string      `json:"priority" example:"high" default:""`         // One of low, medium, high, critical
	Health                   string      `json:"health" example:"green" default:""`          // One of green, amber, red
}

// model returns the database resource for the API representation of the editable fields
func (editable ProjectEditable) model() models.Project {
	return models.Project{
		Name:                     editable.Name,
		Description:              editable.Description,
		CustomerID:               editable.CustomerID,
		ProjectTypeID:            editable.ProjectTypeID,
		CommercialStatusID:       editable.CommercialStatusID,
		CustomerDeliveryLeadID:   editable.CustomerDeliveryLeadID,
		ServiceDeliveryManagerID: editable.ServiceDeliveryManagerID,
		StartDate:                editable.StartDate,
		EndDate:                  editable.EndDate,
		Phase:                    editable.Phase,
		Status:                   editable.Status,
		Priority:                 editable.Priority,
		Health:                   editable.Health,
	}
}

type ProjectLinks struct {
	Self             string `json:"self" example:"https://example.com/api/v1/projects/d801ebbc-9001-4377-91ec-6c9ef3d3e4ce"` // The project itself
	Customer         string `json:"customer,omitempty" example:"https://example.com/api/v1/customers/d1b0b9e2-5ef7-4f20-a6ff-18cc171e3b27"`
	ProjectType      string `json:"projectType,omitempty" example:"https://example.com/api/v1/project-types/30e41dc8-9af9-4571-a212-2b2af7e7c17a"`
	CommercialStatus string `json:"commercialStatus,omitempty" example:"https://example.com/api/v1/commercial-statuses/a2f48f6f-291b-45db-a4db-c1658a4be2d6"`
	Allocations      string `json:"allocations" example:"https://example.com/api/v1/allocations?project=d801ebbc-9001-4377-91ec-6c9ef3d3e4ce"` // The allocations booked on the project
}

type Project struct {
	models.DefaultModel
	ProjectEditable
	Links ProjectLinks `json:"links"`
}

// newProject returns the API representation of the resource
func newProject(c *gin.Context, model models.Project) Project {
	url := c.GetString(string(models.ContextURL))

	links := ProjectLinks{
		Self:        fmt.Sprintf("%s/v1/projects/%s", url, model.ID),
		Allocations: fmt.Sprintf("%s/v1/allocations?project=%s", url, model.ID),
	}

	if model.CustomerID != nil {
		links.Customer = fmt.Sprintf("%s/v1/customers/%s", url, *model.CustomerID)
	}

	if model.ProjectTypeID != nil {
		links.ProjectType = fmt.Sprintf("%s/v1/project-types/%s", url, *model.ProjectTypeID)
	}

	if model.CommercialStatusID != nil {
		links.CommercialStatus = fmt.Sprintf("%s/v1/commercial-statuses/%s", url, *model.CommercialStatusID)
	}

	return Project{
		DefaultModel: model.DefaultModel,
		ProjectEditable: ProjectEditable{
			Name:                     model.Name,
			Description:              model.Description,
			CustomerID:               model.CustomerID,
			ProjectTypeID:            model.ProjectTypeID,
			CommercialStatusID:       model.CommercialStatusID,
			CustomerDeliveryLeadID:   model.CustomerDeliveryLeadID,
			ServiceDeliveryManagerID: model.ServiceDeliveryManagerID,
			StartDate:                model.StartDate,
			EndDate:                  model.EndDate,
			Phase:                    model.Phase,
			Status:                   model.Status,
			Priority:                 model.Priority,
			Health:                   model.Health,
		},
		Links: links,
	}
}

type ProjectListResponse struct {
	Data       []Project   `json:"data"`                                                          // List of resources
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type ProjectCreateResponse struct {
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []ProjectResponse `json:"data"`                                                          // List of created resources
}

func (t *ProjectCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, ProjectResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type ProjectResponse struct {
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Project `json:"data"`                                                          // The resource
}

type ProjectQueryFilter struct {
	Name        string       `form:"name" filterField:"false"`        // By name
	Description string       `form:"description" filterField:"false"` // By the description
	Search      string       `form:"search" filterField:"false"`      // Search for this text in name and description
	CustomerID  cp_uuid.UUID `form:"customer"`                        // By customer ID
	Phase       string       `form:"phase"`                           // By phase
	Status      string       `form:"status"`                          // By status
	Priority    string       `form:"priority"`                        // By priority
	Health      string       `form:"health"`                          // By health
	Active      bool         `form:"active" filterField:"false"`      // Is the project in active use?
	Offset      uint         `form:"offset" filterField:"false"`      // The offset of the first project returned. Defaults to 0.
	Limit       int          `form:"limit" filterField:"false"`       // Maximum number of projects to return. Defaults to 50.
}
