package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/crewplan/backend/internal/controllers/v1"
	"github.com/crewplan/backend/test"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestCustomersCreate() {
	manager := createTestAccountManager(suite.T(), v1.AccountManagerEditable{FirstName: "Priya", LastName: "Shah"})

	response := createTestCustomer(suite.T(), v1.CustomerEditable{
		Name:             "Globex Corporation",
		Description:      "Retail chain, EMEA",
		AccountManagerID: &manager.Data.ID,
	})

	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), "Globex Corporation", response.Data.Name)
	assert.Contains(suite.T(), response.Data.Links.Self, fmt.Sprintf("/v1/customers/%s", response.Data.ID))
	assert.Contains(suite.T(), response.Data.Links.AccountManager, fmt.Sprintf("/v1/account-managers/%s", manager.Data.ID))
}

func (suite *TestSuiteStandard) TestCustomersCreateUnknownAccountManager() {
	id := uuid.New()
	_ = createTestCustomer(suite.T(), v1.CustomerEditable{AccountManagerID: &id}, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestCustomersGetFilter() {
	manager := createTestAccountManager(suite.T(), v1.AccountManagerEditable{FirstName: "Priya"})

	_ = createTestCustomer(suite.T(), v1.CustomerEditable{Name: "Globex Corporation", AccountManagerID: &manager.Data.ID})
	_ = createTestCustomer(suite.T(), v1.CustomerEditable{Name: "Initech"})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"no filter", "", 2},
		{"by name", "name=Globex", 1},
		{"by account manager", fmt.Sprintf("accountManager=%s", manager.Data.ID), 1},
		{"unknown account manager", fmt.Sprintf("accountManager=%s", uuid.New()), 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/customers?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.CustomerListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.len)
		})
	}
}

func (suite *TestSuiteStandard) TestCustomersUpdate() {
	customer := createTestCustomer(suite.T(), v1.CustomerEditable{Name: "Globex Corporation"})

	r := test.Request(suite.T(), http.MethodPatch, customer.Data.Links.Self, map[string]any{
		"description": "Now with a description",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CustomerResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "Globex Corporation", response.Data.Name)
	assert.Equal(suite.T(), "Now with a description", response.Data.Description)
}

func (suite *TestSuiteStandard) TestCustomersDeleteProtected() {
	customer := createTestCustomer(suite.T(), v1.CustomerEditable{})
	_ = createTestProject(suite.T(), v1.ProjectEditable{CustomerID: &customer.Data.ID})

	r := test.Request(suite.T(), http.MethodDelete, customer.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusConflict)
}
