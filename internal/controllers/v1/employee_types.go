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

type EmployeeEditable struct {
	EmpID                 string          `json:"empId" example:"E0042" default:""`                  // Employee code from the HR system
	FirstName             string          `json:"firstName" example:"Asha" default:""`               // First name of the employee
	LastName              string          `json:"lastName" example:"Patel" default:""`               // Last name of the employee
	Email                 string          `json:"email" example:"asha.patel@example.com" default:""` // Email address
	Gender                string          `json:"gender" example:"female" default:""`                // One of male, female, other
	Location              string          `json:"location" example:"uk" default:""`                  // One of india, uk, other
	DateOfJoining         types.Date      `json:"dateOfJoining" example:"2022-02-14"`                // Date the employee joined
	ResignationDate       *types.Date     `json:"resignationDate"`                                   // Date the employee resigned, if they have
	LastWorkingDate       *types.Date     `json:"lastWorkingDate"`                                   // Last working day, if the employee resigned
	JobTitleID            *uuid.UUID      `json:"jobTitleId"`                                        // The job title of the employee
	LineManagerID         *uuid.UUID      `json:"lineManagerId"`                                     // The employee's line manager
	DepartmentID          *uuid.UUID      `json:"departmentId"`                                      // The department the employee belongs to
	SkillIDs              []uuid.UUID     `json:"skillIds"`                                          // The skills of the employee
	StandardHours         decimal.Decimal `json:"standardHours" example:"8" default:"0"`             // Standard working hours per day
	StandardChargeOutRate decimal.Decimal `json:"standardChargeOutRate" example:"950" default:"0"`   // Standard charge out rate per day
	IncludeInCapacity     bool            `json:"includeInCapacity" example:"true" default:"false"`  // Whether the employee counts towards capacity planning
}

// model returns the database resource for the API representation of the
// editable fields. Skills are not part of it, they are maintained through
// the association by the controller.
func (editable EmployeeEditable) model() models.Employee {
	return models.Employee{
		EmpID:                 editable.EmpID,
		FirstName:             editable.FirstName,
		LastName:              editable.LastName,
		Email:                 editable.Email,
		Gender:                editable.Gender,
		Location:              editable.Location,
		DateOfJoining:         editable.DateOfJoining,
		ResignationDate:       editable.ResignationDate,
		LastWorkingDate:       editable.LastWorkingDate,
		JobTitleID:            editable.JobTitleID,
		LineManagerID:         editable.LineManagerID,
		DepartmentID:          editable.DepartmentID,
		StandardHours:         editable.StandardHours,
		StandardChargeOutRate: editable.StandardChargeOutRate,
		IncludeInCapacity:     editable.IncludeInCapacity,
	}
}

type EmployeeLinks struct {
	Self        string `json:"self" example:"https://example.com/api/v1/employees/1e777d24-3f5f-4c3e-9b69-7871cea43abf"` // The employee itself
	JobTitle    string `json:"jobTitle,omitempty" example:"https://example.com/api/v1/job-titles/90b86f8f-ad94-4708-b4ae-e53f2e8e523c"`
	LineManager string `json:"lineManager,omitempty" example:"https://example.com/api/v1/employees/c67e2257-ac7e-46a4-a236-124b27b68ce3"`
	Department  string `json:"department,omitempty" example:"https://example.com/api/v1/departments/5a55bb5a-bd3d-4e9a-bec9-4f93ac35c2b9"`
}

type Employee struct {
	models.DefaultModel
	EmployeeEditable
	Skills []string      `json:"skills" example:"Go,Terraform"` // Names of the employee's skills
	Links  EmployeeLinks `json:"links"`
}

// newEmployee returns the API representation of the resource. The Skills
// relation must be loaded.
func newEmployee(c *gin.Context, model models.Employee) Employee {
	url := c.GetString(string(models.ContextURL))

	skillIDs := make([]uuid.UUID, 0, len(model.Skills))
	for _, skill := range model.Skills {
		skillIDs = append(skillIDs, skill.ID)
	}

	links := EmployeeLinks{
		Self: fmt.Sprintf("%s/v1/employees/%s", url, model.ID),
	}

	if model.JobTitleID != nil {
		links.JobTitle = fmt.Sprintf("%s/v1/job-titles/%s", url, *model.JobTitleID)
	}

	if model.LineManagerID != nil {
		links.LineManager = fmt.Sprintf("%s/v1/employees/%s", url, *model.LineManagerID)
	}

	if model.DepartmentID != nil {
		links.Department = fmt.Sprintf("%s/v1/departments/%s", url, *model.DepartmentID)
	}

	return Employee{
		DefaultModel: model.DefaultModel,
		EmployeeEditable: EmployeeEditable{
			EmpID:                 model.EmpID,
			FirstName:             model.FirstName,
			LastName:              model.LastName,
			Email:                 model.Email,
			Gender:                model.Gender,
			Location:              model.Location,
			DateOfJoining:         model.DateOfJoining,
			ResignationDate:       model.ResignationDate,
			LastWorkingDate:       model.LastWorkingDate,
			JobTitleID:            model.JobTitleID,
			LineManagerID:         model.LineManagerID,
			DepartmentID:          model.DepartmentID,
			SkillIDs:              skillIDs,
			StandardHours:         model.StandardHours,
			StandardChargeOutRate: model.StandardChargeOutRate,
			IncludeInCapacity:     model.IncludeInCapacity,
		},
		Skills: model.SkillNames(),
		Links:  links,
	}
}

type EmployeeListResponse struct {
	Data       []Employee  `json:"data"`                                                          // List of resources
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type EmployeeCreateResponse struct {
	Error *string            `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []EmployeeResponse `json:"data"`                                                          // List of created resources
}

func (t *EmployeeCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, EmployeeResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type EmployeeResponse struct {
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Employee `json:"data"`                                                          // The resource
}

type EmployeeQueryFilter struct {
	Name              string       `form:"name" filterField:"false"`              // Search in first and last name
	Skill             string       `form:"skill" filterField:"false"`             // Glob pattern matched against skill names, e.g. "Go*"
	Location          string       `form:"location"`                              // By location
	JobTitleID        cp_uuid.UUID `form:"jobTitle"`                              // By job title ID
	DepartmentID      cp_uuid.UUID `form:"department"`                            // By department ID
	IncludeInCapacity bool         `form:"includeInCapacity" filterField:"false"` // Only employees that do or do not count towards capacity
	Active            bool         `form:"active" filterField:"false"`            // Is the employee in active use?
	Offset            uint         `form:"offset" filterField:"false"`            // The offset of the first employee returned. Defaults to 0.
	Limit             int          `form:"limit" filterField:"false"`             // Maximum number of employees to return. Defaults to 50.
}
