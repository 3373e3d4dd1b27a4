package models_test

import (
	"github.com/crewplan/backend/internal/calendar"
	"github.com/crewplan/backend/internal/models"
	"github.com/crewplan/backend/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestBankHolidayLocation() {
	err := models.DB.Create(&models.BankHoliday{Name: "Boxing Day", Date: types.NewDate(2024, 12, 26), Location: "atlantis"}).Error
	assert.ErrorIs(suite.T(), err, models.ErrEmployeeLocationInvalid)

	holiday := suite.createTestBankHoliday(models.BankHoliday{Name: "Boxing Day", Date: types.NewDate(2024, 12, 26), Location: "uk"})
	assert.Equal(suite.T(), "uk", holiday.Location)

	// An empty location applies everywhere
	_ = suite.createTestBankHoliday(models.BankHoliday{Name: "New Year's Day", Date: types.NewDate(2025, 1, 1)})
}

func (suite *TestSuiteStandard) TestHolidayCalendar() {
	_ = suite.createTestBankHoliday(models.BankHoliday{Name: "Boxing Day", Date: types.NewDate(2024, 12, 26), Location: "uk"})
	_ = suite.createTestBankHoliday(models.BankHoliday{Name: "Diwali", Date: types.NewDate(2024, 11, 1), Location: "india"})
	_ = suite.createTestBankHoliday(models.BankHoliday{Name: "Founding Day", Date: types.NewDate(2024, 7, 15)})

	holidays, err := models.HolidayCalendar(models.DB, "uk")
	require.Nil(suite.T(), err)

	assert.True(suite.T(), holidays.IsHoliday(types.NewDate(2024, 12, 26)))
	assert.True(suite.T(), holidays.IsHoliday(types.NewDate(2024, 7, 15)), "unscoped holidays apply to every location")
	assert.False(suite.T(), holidays.IsHoliday(types.NewDate(2024, 11, 1)), "holidays of other locations must not apply")

	// The built-in table stays active underneath
	assert.True(suite.T(), holidays.IsHoliday(types.NewDate(2023, 12, 25)))
}

func (suite *TestSuiteStandard) TestHolidayCalendarOverridesBuiltIn() {
	_ = suite.createTestBankHoliday(models.BankHoliday{Name: "Winter Closure", Date: types.NewDate(2023, 12, 25)})

	holidays, err := models.HolidayCalendar(models.DB, "india")
	require.Nil(suite.T(), err)

	name, ok := holidays.Name(types.NewDate(2023, 12, 25))
	require.True(suite.T(), ok)
	assert.Equal(suite.T(), "Winter Closure", name)
	assert.Equal(suite.T(), calendar.Default().Len(), holidays.Len(), "replacing a built-in date must not add an entry")
}
