package v1

import (
	"fmt"

	"github.com/crewplan/backend/internal/models"
	"github.com/crewplan/backend/internal/types"
	cp_uuid "github.com/crewplan/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AllocationEditable struct {
	EmployeeID       uuid.UUID       `json:"employeeId" example:"1e777d24-3f5f-4c3e-9b69-7871cea43abf"`                  // The employee being booked
	ProjectID        uuid.UUID       `json:"projectId" example:"d801ebbc-9001-4377-91ec-6c9ef3d3e4ce"`                   // The project the employee is booked on
	AllocationTypeID *uuid.UUID      `json:"allocationTypeId"`                                                           // The type of the allocation
	StartDate        types.Date      `json:"startDate" example:"2024-01-01"`                                             // First day of the allocation span
	EndDate          types.Date      `json:"endDate" example:"2024-03-29"`                                               // Last day of the allocation span
	Hours            decimal.Decimal `json:"hours" example:"8" minimum:"0.00000001" multipleOf:"0.00000001" default:"0"` // Hours booked on each recurrence day
	DaysOfWeek       []int           `json:"daysOfWeek" example:"0,2"`                                                   // Weekly recurrence days, 0 is Monday and 6 is Sunday
}

// model returns the database resource for the API representation of the
// editable fields. The recurrence days are not part of it, they are stored
// as detail rows by the controller.
func (editable AllocationEditable) model() models.Allocation {
	return models.Allocation{
		EmployeeID:       editable.EmployeeID,
		ProjectID:        editable.ProjectID,
		AllocationTypeID: editable.AllocationTypeID,
		StartDate:        editable.StartDate,
		EndDate:          editable.EndDate,
		Hours:            editable.Hours,
	}
}

type AllocationLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/allocations/6f02f8d5-fd1f-4dc8-9fa6-a3b0ac43e33e"`   // The allocation itself
	Employee string `json:"employee" example:"https://example.com/api/v1/employees/1e777d24-3f5f-4c3e-9b69-7871cea43abf"` // The employee being booked
	Project  string `json:"project" example:"https://example.com/api/v1/projects/d801ebbc-9001-4377-91ec-6c9ef3d3e4ce"`   // The project the employee is booked on
}

type Allocation struct {
	models.DefaultModel
	AllocationEditable
	RecurrenceRule string          `json:"recurrenceRule" example:"weekly"` // How the allocation repeats inside its span
	Links          AllocationLinks `json:"links"`
}

// newAllocation returns the API representation of the resource. The Details
// relation must be loaded.
func newAllocation(c *gin.Context, model models.Allocation) Allocation {
	url := c.GetString(string(models.ContextURL))

	days := model.Days()
	if days == nil {
		days = []int{}
	}

	return Allocation{
		DefaultModel: model.DefaultModel,
		AllocationEditable: AllocationEditable{
			EmployeeID:       model.EmployeeID,
			ProjectID:        model.ProjectID,
			AllocationTypeID: model.AllocationTypeID,
			StartDate:        model.StartDate,
			EndDate:          model.EndDate,
			Hours:            model.Hours,
			DaysOfWeek:       days,
		},
		RecurrenceRule: model.RecurrenceRule,
		Links: AllocationLinks{
			Self:     fmt.Sprintf("%s/v1/allocations/%s", url, model.ID),
			Employee: fmt.Sprintf("%s/v1/employees/%s", url, model.EmployeeID),
			Project:  fmt.Sprintf("%s/v1/projects/%s", url, model.ProjectID),
		},
	}
}

type AllocationListResponse struct {
	Data       []Allocation `json:"data"`                                                          // List of resources
	Error      *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination  `json:"pagination"`                                                    // Pagination information
}

type AllocationCreateResponse struct {
	Error *string              `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []AllocationResponse `json:"data"`                                                          // List of created resources
}

func (t *AllocationCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, AllocationResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type AllocationResponse struct {
	Error *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Allocation `json:"data"`                                                          // The resource
}

type AllocationQueryFilter struct {
	EmployeeID       cp_uuid.UUID `form:"employee"`                      // By employee ID
	ProjectID        cp_uuid.UUID `form:"project"`                       // By project ID
	AllocationTypeID cp_uuid.UUID `form:"allocationType"`                // By allocation type ID
	FromDate         string       `form:"fromDate" filterField:"false"`  // Allocations ending on or after this date
	UntilDate        string       `form:"untilDate" filterField:"false"` // Allocations starting on or before this date
	Offset           uint         `form:"offset" filterField:"false"`    // The offset of the first allocation returned. Defaults to 0.
	Limit            int          `form:"limit" filterField:"false"`     // Maximum number of allocations to return. Defaults to 50.
}
