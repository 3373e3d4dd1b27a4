package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/crewplan/backend/internal/controllers/v1"
	"github.com/crewplan/backend/internal/types"
	"github.com/crewplan/backend/test"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestProjectsCreate() {
	customer := createTestCustomer(suite.T(), v1.CustomerEditable{Name: "Globex Corporation"})
	projectType := createTestProjectType(suite.T(), v1.ReferenceEditable{Name: "Fixed Price"})
	commercialStatus := createTestCommercialStatus(suite.T(), v1.ReferenceEditable{Name: "Signed"})
	endDate := types.NewDate(2024, 6, 30)

	response := createTestProject(suite.T(), v1.ProjectEditable{
		Name:               "Website relaunch",
		CustomerID:         &customer.Data.ID,
		ProjectTypeID:      &projectType.Data.ID,
		CommercialStatusID: &commercialStatus.Data.ID,
		StartDate:          types.NewDate(2024, 1, 1),
		EndDate:            &endDate,
		Phase:              "delivery",
		Status:             "active",
		Priority:           "high",
		Health:             "green",
	})

	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), "Website relaunch", response.Data.Name)
	assert.Contains(suite.T(), response.Data.Links.Self, fmt.Sprintf("/v1/projects/%s", response.Data.ID))
	assert.Contains(suite.T(), response.Data.Links.Customer, fmt.Sprintf("/v1/customers/%s", customer.Data.ID))
	assert.Contains(suite.T(), response.Data.Links.ProjectType, fmt.Sprintf("/v1/project-types/%s", projectType.Data.ID))
	assert.Contains(suite.T(), response.Data.Links.CommercialStatus, fmt.Sprintf("/v1/commercial-statuses/%s", commercialStatus.Data.ID))
	assert.Contains(suite.T(), response.Data.Links.Allocations, fmt.Sprintf("/v1/allocations?project=%s", response.Data.ID))
}

func (suite *TestSuiteStandard) TestProjectsCreateInvalid() {
	endBeforeStart := types.NewDate(2023, 12, 31)
	id := uuid.New()

	tests := []struct {
		name     string
		editable v1.ProjectEditable
		status   int
	}{
		{"end before start", v1.ProjectEditable{Name: "Website relaunch", StartDate: types.NewDate(2024, 1, 1), EndDate: &endBeforeStart}, http.StatusBadRequest},
		{"invalid phase", v1.ProjectEditable{Name: "Website relaunch", Phase: "ideation"}, http.StatusBadRequest},
		{"invalid status", v1.ProjectEditable{Name: "Website relaunch", Status: "paused"}, http.StatusBadRequest},
		{"invalid priority", v1.ProjectEditable{Name: "Website relaunch", Priority: "urgent"}, http.StatusBadRequest},
		{"invalid health", v1.ProjectEditable{Name: "Website relaunch", Health: "blue"}, http.StatusBadRequest},
		{"unknown customer", v1.ProjectEditable{Name: "Website relaunch", CustomerID: &id}, http.StatusNotFound},
		{"unknown project type", v1.ProjectEditable{Name: "Website relaunch", ProjectTypeID: &id}, http.StatusNotFound},
		{"unknown commercial status", v1.ProjectEditable{Name: "Website relaunch", CommercialStatusID: &id}, http.StatusNotFound},
		{"unknown customer delivery lead", v1.ProjectEditable{Name: "Website relaunch", CustomerDeliveryLeadID: &id}, http.StatusNotFound},
		{"unknown service delivery manager", v1.ProjectEditable{Name: "Website relaunch", ServiceDeliveryManagerID: &id}, http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			_ = createTestProject(t, tt.editable, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestProjectsCreateDuplicateName() {
	_ = createTestProject(suite.T(), v1.ProjectEditable{Name: "Website relaunch"})
	_ = createTestProject(suite.T(), v1.ProjectEditable{Name: "Website relaunch"}, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestProjectsGetFilter() {
	customer := createTestCustomer(suite.T(), v1.CustomerEditable{Name: "Globex Corporation"})

	_ = createTestProject(suite.T(), v1.ProjectEditable{
		Name:        "Website relaunch",
		Description: "Public site",
		CustomerID:  &customer.Data.ID,
		Phase:       "delivery",
		Status:      "active",
		Priority:    "high",
		Health:      "green",
	})
	_ = createTestProject(suite.T(), v1.ProjectEditable{
		Name:     "Data warehouse",
		Phase:    "discovery",
		Status:   "planned",
		Priority: "medium",
		Health:   "amber",
	})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"no filter", "", 2},
		{"by name", "name=Website", 1},
		{"by description", "description=Public", 1},
		{"search in name", "search=warehouse", 1},
		{"search in description", "search=site", 1},
		{"by customer", fmt.Sprintf("customer=%s", customer.Data.ID), 1},
		{"unknown customer", fmt.Sprintf("customer=%s", uuid.New()), 0},
		{"by phase", "phase=delivery", 1},
		{"by status", "status=planned", 1},
		{"by priority", "priority=high", 1},
		{"by health", "health=amber", 1},
		{"limit", "limit=1", 1},
		{"offset", "offset=2", 0},
		{"no match", "name=Nothing", 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/projects?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.ProjectListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.len)
		})
	}
}

func (suite *TestSuiteStandard) TestProjectsUpdate() {
	project := createTestProject(suite.T(), v1.ProjectEditable{Name: "Website relaunch", Health: "green"})

	r := test.Request(suite.T(), http.MethodPatch, project.Data.Links.Self, map[string]any{
		"health": "red",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ProjectResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "Website relaunch", response.Data.Name)
	assert.Equal(suite.T(), "red", response.Data.Health)
}

func (suite *TestSuiteStandard) TestProjectsUpdateInvalidEnum() {
	project := createTestProject(suite.T(), v1.ProjectEditable{Name: "Website relaunch"})

	r := test.Request(suite.T(), http.MethodPatch, project.Data.Links.Self, map[string]any{
		"phase": "ideation",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestProjectsDeleteProtected() {
	allocation := createTestAllocation(suite.T(), v1.AllocationEditable{})

	r := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/projects/%s", allocation.Data.ProjectID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusConflict)
}

func (suite *TestSuiteStandard) TestProjectsDelete() {
	project := createTestProject(suite.T(), v1.ProjectEditable{})

	r := test.Request(suite.T(), http.MethodDelete, project.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, project.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
