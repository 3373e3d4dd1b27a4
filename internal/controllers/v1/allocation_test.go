package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/crewplan/backend/internal/controllers/v1"
	"github.com/crewplan/backend/internal/types"
	"github.com/crewplan/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestAllocationsCreate() {
	employee := createTestEmployee(suite.T(), v1.EmployeeEditable{FirstName: "Asha", LastName: "Patel"})
	project := createTestProject(suite.T(), v1.ProjectEditable{Name: "Website relaunch"})

	response := createTestAllocation(suite.T(), v1.AllocationEditable{
		EmployeeID: employee.Data.ID,
		ProjectID:  project.Data.ID,
		StartDate:  types.NewDate(2024, 1, 1),
		EndDate:    types.NewDate(2024, 3, 29),
		Hours:      decimal.NewFromInt(8),
		DaysOfWeek: []int{0, 2},
	})

	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), employee.Data.ID, response.Data.EmployeeID)
	assert.Equal(suite.T(), project.Data.ID, response.Data.ProjectID)
	assert.Equal(suite.T(), []int{0, 2}, response.Data.DaysOfWeek)
	assert.Equal(suite.T(), "weekly", response.Data.RecurrenceRule)
	assert.Contains(suite.T(), response.Data.Links.Self, fmt.Sprintf("/v1/allocations/%s", response.Data.ID))
	assert.Contains(suite.T(), response.Data.Links.Employee, fmt.Sprintf("/v1/employees/%s", employee.Data.ID))
	assert.Contains(suite.T(), response.Data.Links.Project, fmt.Sprintf("/v1/projects/%s", project.Data.ID))
}

func (suite *TestSuiteStandard) TestAllocationsCreateInvalid() {
	employee := createTestEmployee(suite.T(), v1.EmployeeEditable{FirstName: "Asha"})
	project := createTestProject(suite.T(), v1.ProjectEditable{})

	tests := []struct {
		name     string
		editable v1.AllocationEditable
		status   int
	}{
		{
			"unknown employee",
			v1.AllocationEditable{
				EmployeeID: uuid.New(),
				ProjectID:  project.Data.ID,
				StartDate:  types.NewDate(2024, 1, 1),
				EndDate:    types.NewDate(2024, 1, 31),
				Hours:      decimal.NewFromInt(8),
			},
			http.StatusNotFound,
		},
		{
			"unknown project",
			v1.AllocationEditable{
				EmployeeID: employee.Data.ID,
				ProjectID:  uuid.New(),
				StartDate:  types.NewDate(2024, 1, 1),
				EndDate:    types.NewDate(2024, 1, 31),
				Hours:      decimal.NewFromInt(8),
			},
			http.StatusNotFound,
		},
		{
			"end before start",
			v1.AllocationEditable{
				EmployeeID: employee.Data.ID,
				ProjectID:  project.Data.ID,
				StartDate:  types.NewDate(2024, 2, 1),
				EndDate:    types.NewDate(2024, 1, 1),
				Hours:      decimal.NewFromInt(8),
			},
			http.StatusBadRequest,
		},
		{
			"invalid recurrence day",
			v1.AllocationEditable{
				EmployeeID: employee.Data.ID,
				ProjectID:  project.Data.ID,
				StartDate:  types.NewDate(2024, 1, 1),
				EndDate:    types.NewDate(2024, 1, 31),
				Hours:      decimal.NewFromInt(8),
				DaysOfWeek: []int{7},
			},
			http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			_ = createTestAllocation(t, tt.editable, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestAllocationsCreateInvalidDayRollsBack() {
	_ = createTestAllocation(suite.T(), v1.AllocationEditable{
		DaysOfWeek: []int{0, 9},
	}, http.StatusBadRequest)

	// The rejected recurrence day takes the allocation down with it
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/allocations", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.AllocationListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Len(suite.T(), response.Data, 0)
}

func (suite *TestSuiteStandard) TestAllocationsCreateZeroHours() {
	employee := createTestEmployee(suite.T(), v1.EmployeeEditable{FirstName: "Asha"})
	project := createTestProject(suite.T(), v1.ProjectEditable{})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/allocations", []v1.AllocationEditable{
		{
			EmployeeID: employee.Data.ID,
			ProjectID:  project.Data.ID,
			StartDate:  types.NewDate(2024, 1, 1),
			EndDate:    types.NewDate(2024, 1, 31),
		},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.AllocationCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.Len(suite.T(), response.Data, 1)
	assert.Contains(suite.T(), *response.Data[0].Error, "hours must be larger than zero")
}

func (suite *TestSuiteStandard) TestAllocationsGetFilter() {
	employee := createTestEmployee(suite.T(), v1.EmployeeEditable{FirstName: "Asha", LastName: "Patel"})
	project := createTestProject(suite.T(), v1.ProjectEditable{Name: "Website relaunch"})
	allocationType := createTestAllocationType(suite.T(), v1.AllocationTypeEditable{Name: "Billable"})

	_ = createTestAllocation(suite.T(), v1.AllocationEditable{
		EmployeeID:       employee.Data.ID,
		ProjectID:        project.Data.ID,
		AllocationTypeID: &allocationType.Data.ID,
		StartDate:        types.NewDate(2024, 1, 1),
		EndDate:          types.NewDate(2024, 1, 31),
		DaysOfWeek:       []int{0},
	})
	_ = createTestAllocation(suite.T(), v1.AllocationEditable{
		StartDate:  types.NewDate(2024, 3, 1),
		EndDate:    types.NewDate(2024, 3, 29),
		DaysOfWeek: []int{4},
	})

	tests := []struct {
		name   string
		query  string
		status int
		len    int
	}{
		{"no filter", "", http.StatusOK, 2},
		{"by employee", fmt.Sprintf("employee=%s", employee.Data.ID), http.StatusOK, 1},
		{"by project", fmt.Sprintf("project=%s", project.Data.ID), http.StatusOK, 1},
		{"by allocation type", fmt.Sprintf("allocationType=%s", allocationType.Data.ID), http.StatusOK, 1},
		{"from date", "fromDate=2024-02-01", http.StatusOK, 1},
		{"until date", "untilDate=2024-02-01", http.StatusOK, 1},
		{"covering window", "fromDate=2024-01-01&untilDate=2024-03-31", http.StatusOK, 2},
		{"disjoint window", "fromDate=2024-06-01", http.StatusOK, 0},
		{"invalid from date", "fromDate=tomorrow", http.StatusBadRequest, 0},
		{"unknown employee", fmt.Sprintf("employee=%s", uuid.New()), http.StatusOK, 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/allocations?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status != http.StatusOK {
				return
			}

			var response v1.AllocationListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.len)
		})
	}
}

func (suite *TestSuiteStandard) TestAllocationsUpdate() {
	allocation := createTestAllocation(suite.T(), v1.AllocationEditable{DaysOfWeek: []int{0, 2}})

	r := test.Request(suite.T(), http.MethodPatch, allocation.Data.Links.Self, map[string]any{
		"hours": 4,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.AllocationResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.True(suite.T(), response.Data.Hours.Equal(decimal.NewFromInt(4)), response.Data.Hours.String())
	assert.Equal(suite.T(), []int{0, 2}, response.Data.DaysOfWeek)
}

func (suite *TestSuiteStandard) TestAllocationsUpdateDays() {
	allocation := createTestAllocation(suite.T(), v1.AllocationEditable{DaysOfWeek: []int{0, 2}})

	r := test.Request(suite.T(), http.MethodPatch, allocation.Data.Links.Self, map[string]any{
		"daysOfWeek": []int{1, 3, 4},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.AllocationResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), []int{1, 3, 4}, response.Data.DaysOfWeek)
}

func (suite *TestSuiteStandard) TestAllocationsUpdateInvalidDay() {
	allocation := createTestAllocation(suite.T(), v1.AllocationEditable{DaysOfWeek: []int{0}})

	r := test.Request(suite.T(), http.MethodPatch, allocation.Data.Links.Self, map[string]any{
		"endDate":    "2024-06-28",
		"daysOfWeek": []int{9},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	// Neither the recurrence days nor the span change
	r = test.Request(suite.T(), http.MethodGet, allocation.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.AllocationResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), []int{0}, response.Data.DaysOfWeek)
	assert.Equal(suite.T(), "2024-01-31", response.Data.EndDate.String())
}

func (suite *TestSuiteStandard) TestAllocationsDelete() {
	allocation := createTestAllocation(suite.T(), v1.AllocationEditable{DaysOfWeek: []int{0}})

	r := test.Request(suite.T(), http.MethodDelete, allocation.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, allocation.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
