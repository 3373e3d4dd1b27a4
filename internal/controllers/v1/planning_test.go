package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/crewplan/backend/internal/controllers/v1"
	"github.com/crewplan/backend/internal/planner"
	"github.com/crewplan/backend/internal/types"
	"github.com/crewplan/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestPlanningWindowValidation() {
	tests := []struct {
		name  string
		query string
	}{
		{"missing start date", "endDate=2024-01-14"},
		{"missing end date", "startDate=2024-01-01"},
		{"invalid start date", "startDate=yesterday&endDate=2024-01-14"},
		{"invalid end date", "startDate=2024-01-01&endDate=14-01-2024"},
		{"inverted window", "startDate=2024-01-14&endDate=2024-01-01"},
	}

	for _, endpoint := range []string{"timeline", "capacity"} {
		for _, tt := range tests {
			suite.T().Run(fmt.Sprintf("%s %s", endpoint, tt.name), func(t *testing.T) {
				r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/%s?%s", endpoint, tt.query), "")
				test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
			})
		}
	}
}

func (suite *TestSuiteStandard) TestTimeline() {
	projectType := createTestProjectType(suite.T(), v1.ReferenceEditable{Name: "Fixed Price"})
	commercialStatus := createTestCommercialStatus(suite.T(), v1.ReferenceEditable{Name: "Signed"})
	endDate := types.NewDate(2024, 3, 31)

	project := createTestProject(suite.T(), v1.ProjectEditable{
		Name:               "Orion",
		ProjectTypeID:      &projectType.Data.ID,
		CommercialStatusID: &commercialStatus.Data.ID,
		StartDate:          types.NewDate(2024, 1, 1),
		EndDate:            &endDate,
	})

	alice := createTestEmployee(suite.T(), v1.EmployeeEditable{FirstName: "Alice", LastName: "Aster"})
	bob := createTestEmployee(suite.T(), v1.EmployeeEditable{FirstName: "Bob", LastName: "Baker"})

	_ = createTestAllocation(suite.T(), v1.AllocationEditable{
		EmployeeID: alice.Data.ID,
		ProjectID:  project.Data.ID,
		StartDate:  types.NewDate(2024, 1, 1),
		EndDate:    types.NewDate(2024, 1, 31),
		Hours:      decimal.NewFromInt(8),
		DaysOfWeek: []int{0, 2},
	})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/timeline?startDate=2024-01-01&endDate=2024-01-14", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TimelineResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Data)

	timeline := *response.Data
	assert.Len(suite.T(), timeline.Days, 14)
	assert.True(suite.T(), timeline.Days[5].Weekend, "2024-01-06 is a Saturday")
	assert.Len(suite.T(), timeline.Weeks, 2)
	require.Len(suite.T(), timeline.Groups, 2)

	// Employees without a booking in the window land in the flex group
	flex := timeline.Groups[0]
	assert.Nil(suite.T(), flex.ProjectID)
	assert.Equal(suite.T(), planner.FlexGroupLabel, flex.Label)
	require.Len(suite.T(), flex.Rows, 1)
	assert.Equal(suite.T(), bob.Data.ID, flex.Rows[0].EmployeeID)

	group := timeline.Groups[1]
	require.NotNil(suite.T(), group.ProjectID)
	assert.Equal(suite.T(), project.Data.ID, *group.ProjectID)
	assert.Equal(suite.T(), "Orion - Project Type: Fixed Price, Start date: 2024-01-01, End date: 2024-03-31, Commercial Status: Signed", group.Label)

	require.Len(suite.T(), group.Rows, 1)
	row := group.Rows[0]
	assert.Equal(suite.T(), alice.Data.ID, row.EmployeeID)
	assert.Equal(suite.T(), "Alice Aster", row.EmployeeName)
	assert.Equal(suite.T(), planner.CellAllocated, row.Cells[0].Kind)
	assert.Equal(suite.T(), planner.CellUnallocated, row.Cells[1].Kind)
	assert.Equal(suite.T(), planner.CellAllocated, row.Cells[2].Kind)
	assert.Equal(suite.T(), planner.CellWeekend, row.Cells[5].Kind)

	// Four recurrence days of eight hours over ten working days
	assert.True(suite.T(), row.AllocatedHours.Equal(decimal.NewFromInt(32)), row.AllocatedHours.String())
	assert.True(suite.T(), row.UtilizationPercent.Equal(decimal.NewFromInt(40)), row.UtilizationPercent.String())
}

func (suite *TestSuiteStandard) TestTimelineLocationHolidays() {
	_ = createTestEmployee(suite.T(), v1.EmployeeEditable{FirstName: "Alice", LastName: "Aster"})
	_ = createTestBankHoliday(suite.T(), v1.BankHolidayEditable{
		Name:     "Founders Day",
		Date:     types.NewDate(2024, 1, 10),
		Location: "uk",
	})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/timeline?startDate=2024-01-01&endDate=2024-01-14&location=uk", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TimelineResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Data)

	timeline := *response.Data
	assert.True(suite.T(), timeline.Days[9].BankHoliday, "2024-01-10 is a holiday in the uk")

	flex := timeline.Groups[0]
	require.Len(suite.T(), flex.Rows, 1)
	assert.Equal(suite.T(), planner.CellBankHoliday, flex.Rows[0].Cells[9].Kind)

	// Without the location, the holiday does not apply
	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/timeline?startDate=2024-01-01&endDate=2024-01-14", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	test.DecodeResponse(suite.T(), &r, &response)
	assert.False(suite.T(), response.Data.Days[9].BankHoliday)
}

func (suite *TestSuiteStandard) TestCapacity() {
	alice := createTestEmployee(suite.T(), v1.EmployeeEditable{FirstName: "Alice", LastName: "Aster", IncludeInCapacity: true})
	_ = createTestEmployee(suite.T(), v1.EmployeeEditable{FirstName: "Bob", LastName: "Baker"})

	_ = createTestAllocation(suite.T(), v1.AllocationEditable{
		EmployeeID: alice.Data.ID,
		StartDate:  types.NewDate(2024, 1, 1),
		EndDate:    types.NewDate(2024, 1, 31),
		Hours:      decimal.NewFromInt(8),
		DaysOfWeek: []int{0, 2},
	})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/capacity?startDate=2024-01-01&endDate=2024-01-14", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CapacityResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Data)

	capacity := *response.Data
	assert.Len(suite.T(), capacity.Weeks, 2)

	// Only employees that count towards capacity appear
	require.Len(suite.T(), capacity.Rows, 1)
	row := capacity.Rows[0]
	assert.Equal(suite.T(), alice.Data.ID, row.EmployeeID)
	require.Len(suite.T(), row.Cells, 2)

	for _, cell := range row.Cells {
		assert.True(suite.T(), cell.AllocatedHours.Equal(decimal.NewFromInt(16)), cell.AllocatedHours.String())
		assert.True(suite.T(), cell.Percent.Equal(decimal.NewFromInt(40)), cell.Percent.String())
		assert.Equal(suite.T(), "#ff9900", cell.Color)
	}

	assert.Equal(suite.T(), "2024-01-01", row.Cells[0].WeekCommencing.String())
	assert.Equal(suite.T(), "2024-01-08", row.Cells[1].WeekCommencing.String())
}

func (suite *TestSuiteStandard) TestCapacityPartialWeek() {
	alice := createTestEmployee(suite.T(), v1.EmployeeEditable{FirstName: "Alice", LastName: "Aster", IncludeInCapacity: true})

	// The booking starts before the window, but its hours in the window's
	// first week still count because weeks are widened to full Mondays.
	_ = createTestAllocation(suite.T(), v1.AllocationEditable{
		EmployeeID: alice.Data.ID,
		StartDate:  types.NewDate(2024, 1, 1),
		EndDate:    types.NewDate(2024, 1, 31),
		Hours:      decimal.NewFromInt(8),
		DaysOfWeek: []int{0},
	})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/capacity?startDate=2024-01-03&endDate=2024-01-09", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CapacityResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Data)

	require.Len(suite.T(), response.Data.Rows, 1)
	row := response.Data.Rows[0]
	require.Len(suite.T(), row.Cells, 2)
	assert.True(suite.T(), row.Cells[0].AllocatedHours.Equal(decimal.NewFromInt(8)), row.Cells[0].AllocatedHours.String())
	assert.True(suite.T(), row.Cells[1].AllocatedHours.Equal(decimal.NewFromInt(8)), row.Cells[1].AllocatedHours.String())
}
