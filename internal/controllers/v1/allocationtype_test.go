package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/crewplan/backend/internal/controllers/v1"
	"github.com/crewplan/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestAllocationTypesCreate() {
	response := createTestAllocationType(suite.T(), v1.AllocationTypeEditable{
		Name:      "Billable",
		ColorCode: "#ffc000",
	})

	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), "Billable", response.Data.Name)
	assert.Equal(suite.T(), "#ffc000", response.Data.ColorCode)
	assert.Contains(suite.T(), response.Data.Links.Self, fmt.Sprintf("/v1/allocation-types/%s", response.Data.ID))
}

func (suite *TestSuiteStandard) TestAllocationTypesCreateDuplicateName() {
	_ = createTestAllocationType(suite.T(), v1.AllocationTypeEditable{Name: "Billable"})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/allocation-types", []v1.AllocationTypeEditable{{Name: "Billable"}})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.AllocationTypeCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.Len(suite.T(), response.Data, 1)
	assert.Contains(suite.T(), *response.Data[0].Error, "the name is already in use")
}

func (suite *TestSuiteStandard) TestAllocationTypesGetFilter() {
	_ = createTestAllocationType(suite.T(), v1.AllocationTypeEditable{Name: "Billable", ColorCode: "#ffc000"})
	_ = createTestAllocationType(suite.T(), v1.AllocationTypeEditable{Name: "Internal", ColorCode: "#9bc2e6"})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"no filter", "", 2},
		{"by name", "name=Billable", 1},
		{"active", "active=true", 2},
		{"inactive", "active=false", 0},
		{"limit", "limit=1", 1},
		{"offset", "offset=2", 0},
		{"no match", "name=Bench", 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/allocation-types?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.AllocationTypeListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.len)
		})
	}
}

func (suite *TestSuiteStandard) TestAllocationTypesUpdate() {
	allocationType := createTestAllocationType(suite.T(), v1.AllocationTypeEditable{Name: "Billable", ColorCode: "#ffc000"})

	r := test.Request(suite.T(), http.MethodPatch, allocationType.Data.Links.Self, map[string]any{
		"colorCode": "#70ad47",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.AllocationTypeResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "Billable", response.Data.Name)
	assert.Equal(suite.T(), "#70ad47", response.Data.ColorCode)
}

func (suite *TestSuiteStandard) TestAllocationTypesDeleteProtected() {
	allocationType := createTestAllocationType(suite.T(), v1.AllocationTypeEditable{Name: "Billable"})
	_ = createTestAllocation(suite.T(), v1.AllocationEditable{AllocationTypeID: &allocationType.Data.ID})

	r := test.Request(suite.T(), http.MethodDelete, allocationType.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusConflict)
}

func (suite *TestSuiteStandard) TestAllocationTypesDelete() {
	allocationType := createTestAllocationType(suite.T(), v1.AllocationTypeEditable{Name: "Billable"})

	r := test.Request(suite.T(), http.MethodDelete, allocationType.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, allocationType.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
