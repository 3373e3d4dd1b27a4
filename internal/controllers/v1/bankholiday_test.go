package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/crewplan/backend/internal/controllers/v1"
	"github.com/crewplan/backend/internal/types"
	"github.com/crewplan/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestBankHolidaysCreate() {
	response := createTestBankHoliday(suite.T(), v1.BankHolidayEditable{
		Name:     "Christmas",
		Date:     types.NewDate(2024, 12, 25),
		Location: "uk",
	})

	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), "Christmas", response.Data.Name)
	assert.Equal(suite.T(), "2024-12-25", response.Data.Date.String())
	assert.Equal(suite.T(), "uk", response.Data.Location)
	assert.Contains(suite.T(), response.Data.Links.Self, fmt.Sprintf("/v1/bank-holidays/%s", response.Data.ID))
}

func (suite *TestSuiteStandard) TestBankHolidaysCreateInvalidLocation() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/bank-holidays", []v1.BankHolidayEditable{
		{Name: "Atlantis Day", Date: types.NewDate(2024, 6, 1), Location: "atlantis"},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.BankHolidayCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.Len(suite.T(), response.Data, 1)
	assert.Contains(suite.T(), *response.Data[0].Error, "location")
}

func (suite *TestSuiteStandard) TestBankHolidaysGetFilter() {
	_ = createTestBankHoliday(suite.T(), v1.BankHolidayEditable{Name: "Christmas", Date: types.NewDate(2024, 12, 25), Location: "uk"})
	_ = createTestBankHoliday(suite.T(), v1.BankHolidayEditable{Name: "Republic Day", Date: types.NewDate(2024, 1, 26), Location: "india"})
	_ = createTestBankHoliday(suite.T(), v1.BankHolidayEditable{Name: "Company Day", Date: types.NewDate(2024, 7, 1)})

	tests := []struct {
		name   string
		query  string
		status int
		len    int
	}{
		{"no filter", "", http.StatusOK, 3},
		{"by name", "name=Christmas", http.StatusOK, 1},
		{"by location", "location=uk", http.StatusOK, 1},
		{"unscoped location", "location=", http.StatusOK, 1},
		{"from date", "fromDate=2024-07-01", http.StatusOK, 2},
		{"until date", "untilDate=2024-01-31", http.StatusOK, 1},
		{"date window", "fromDate=2024-01-01&untilDate=2024-06-30", http.StatusOK, 1},
		{"invalid from date", "fromDate=yesterday", http.StatusBadRequest, 0},
		{"invalid until date", "untilDate=25-12-2024", http.StatusBadRequest, 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/bank-holidays?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status != http.StatusOK {
				return
			}

			var response v1.BankHolidayListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.len)
		})
	}
}

func (suite *TestSuiteStandard) TestBankHolidaysSortedByDate() {
	_ = createTestBankHoliday(suite.T(), v1.BankHolidayEditable{Name: "Christmas", Date: types.NewDate(2024, 12, 25)})
	_ = createTestBankHoliday(suite.T(), v1.BankHolidayEditable{Name: "New Year", Date: types.NewDate(2024, 1, 1)})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/bank-holidays", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BankHolidayListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.Len(suite.T(), response.Data, 2)
	assert.Equal(suite.T(), "New Year", response.Data[0].Name)
	assert.Equal(suite.T(), "Christmas", response.Data[1].Name)
}

func (suite *TestSuiteStandard) TestBankHolidaysUpdate() {
	holiday := createTestBankHoliday(suite.T(), v1.BankHolidayEditable{Name: "Christmas", Date: types.NewDate(2024, 12, 25)})

	r := test.Request(suite.T(), http.MethodPatch, holiday.Data.Links.Self, map[string]any{
		"name": "Winter Closure",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BankHolidayResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "Winter Closure", response.Data.Name)
	assert.Equal(suite.T(), "2024-12-25", response.Data.Date.String())
}

func (suite *TestSuiteStandard) TestBankHolidaysDelete() {
	holiday := createTestBankHoliday(suite.T(), v1.BankHolidayEditable{Name: "Christmas", Date: types.NewDate(2024, 12, 25)})

	r := test.Request(suite.T(), http.MethodDelete, holiday.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, holiday.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
