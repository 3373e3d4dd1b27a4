package models_test

import (
	"testing"

	"github.com/crewplan/backend/internal/models"
	"github.com/crewplan/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestEmployeeTrimWhitespace() {
	employee := suite.createTestEmployee(models.Employee{
		EmpID:     " E0042 ",
		FirstName: "  Asha ",
		LastName:  " Patel\t",
		Email:     " asha.patel@example.com ",
	})

	assert.Equal(suite.T(), "E0042", employee.EmpID)
	assert.Equal(suite.T(), "Asha", employee.FirstName)
	assert.Equal(suite.T(), "Patel", employee.LastName)
	assert.Equal(suite.T(), "asha.patel@example.com", employee.Email)
}

func (suite *TestSuiteStandard) TestEmployeeEnums() {
	tests := []struct {
		name     string
		gender   string
		location string
		err      error
	}{
		{"both empty", "", "", nil},
		{"both valid", "female", "uk", nil},
		{"invalid gender", "unknown", "uk", models.ErrEmployeeGenderInvalid},
		{"invalid location", "female", "mars", models.ErrEmployeeLocationInvalid},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			err := models.DB.Create(&models.Employee{Gender: tt.gender, Location: tt.location}).Error
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestEmployeeCreateChecksReferences() {
	department := suite.createTestDepartment(models.Department{})
	jobTitle := suite.createTestJobTitle(models.JobTitle{})
	manager := suite.createTestEmployee(models.Employee{FirstName: "Manager"})

	employee := suite.createTestEmployee(models.Employee{
		FirstName:     "Asha",
		JobTitleID:    &jobTitle.ID,
		DepartmentID:  &department.ID,
		LineManagerID: &manager.ID,
	})
	assert.NotEqual(suite.T(), uuid.Nil, employee.ID)

	unknown := uuid.New()
	err := models.DB.Create(&models.Employee{JobTitleID: &unknown}).Error
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)

	err = models.DB.Create(&models.Employee{DepartmentID: &unknown}).Error
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)

	err = models.DB.Create(&models.Employee{LineManagerID: &unknown}).Error
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestEmployeeUpdateChecksReferences() {
	employee := suite.createTestEmployee(models.Employee{FirstName: "Asha"})

	unknown := uuid.New()
	err := models.DB.Model(&employee).Updates(models.Employee{DepartmentID: &unknown}).Error
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)

	department := suite.createTestDepartment(models.Department{})
	err = models.DB.Model(&employee).Updates(models.Employee{DepartmentID: &department.ID}).Error
	assert.Nil(suite.T(), err)
}

func (suite *TestSuiteStandard) TestEmployeeDeleteProtection() {
	employee := suite.createTestEmployee(models.Employee{FirstName: "Asha"})
	project := suite.createTestProject(models.Project{})

	_ = suite.createTestAllocation(models.Allocation{
		EmployeeID: employee.ID,
		ProjectID:  project.ID,
		StartDate:  types.NewDate(2024, 1, 1),
		EndDate:    types.NewDate(2024, 1, 31),
		Hours:      decimal.NewFromInt(8),
	})

	err := models.DB.Delete(&employee).Error
	assert.ErrorIs(suite.T(), err, models.ErrResourceProtected)
}

func (suite *TestSuiteStandard) TestEmployeeDeleteProtectionLineManager() {
	manager := suite.createTestEmployee(models.Employee{FirstName: "Manager"})
	_ = suite.createTestEmployee(models.Employee{FirstName: "Report", LineManagerID: &manager.ID})

	err := models.DB.Delete(&manager).Error
	assert.ErrorIs(suite.T(), err, models.ErrResourceProtected)
}

func (suite *TestSuiteStandard) TestEmployeeDeleteProtectionDeliveryRoles() {
	lead := suite.createTestEmployee(models.Employee{FirstName: "Lead"})
	_ = suite.createTestProject(models.Project{CustomerDeliveryLeadID: &lead.ID})

	err := models.DB.Delete(&lead).Error
	assert.ErrorIs(suite.T(), err, models.ErrResourceProtected)

	manager := suite.createTestEmployee(models.Employee{FirstName: "Manager"})
	_ = suite.createTestProject(models.Project{ServiceDeliveryManagerID: &manager.ID})

	err = models.DB.Delete(&manager).Error
	assert.ErrorIs(suite.T(), err, models.ErrResourceProtected)
}

func (suite *TestSuiteStandard) TestEmployeeDelete() {
	employee := suite.createTestEmployee(models.Employee{FirstName: "Asha"})

	err := models.DB.Delete(&employee).Error
	assert.Nil(suite.T(), err)
}

func (suite *TestSuiteStandard) TestEmployeeName() {
	assert.Equal(suite.T(), "Asha Patel", models.Employee{FirstName: "Asha", LastName: "Patel"}.Name())
	assert.Equal(suite.T(), "Asha", models.Employee{FirstName: "Asha"}.Name())
	assert.Equal(suite.T(), "", models.Employee{}.Name())
}

func (suite *TestSuiteStandard) TestEmployeeSkills() {
	golang := suite.createTestSkill(models.Skill{Name: "Go"})
	terraform := suite.createTestSkill(models.Skill{Name: "Terraform"})

	employee := suite.createTestEmployee(models.Employee{
		FirstName: "Asha",
		Skills:    []models.Skill{golang, terraform},
	})

	var reloaded models.Employee
	require.Nil(suite.T(), models.DB.Preload("Skills").First(&reloaded, employee.ID).Error)
	assert.ElementsMatch(suite.T(), []string{"Go", "Terraform"}, reloaded.SkillNames())
}
