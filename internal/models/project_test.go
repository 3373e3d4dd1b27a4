package models_test

import (
	"testing"

	"github.com/crewplan/backend/internal/models"
	"github.com/crewplan/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestProjectDates() {
	start := types.NewDate(2024, 1, 1)

	end := types.NewDate(2023, 12, 31)
	err := models.DB.Create(&models.Project{Name: uuid.New().String(), StartDate: start, EndDate: &end}).Error
	assert.ErrorIs(suite.T(), err, models.ErrProjectDatesInvalid)

	end = types.NewDate(2024, 6, 30)
	err = models.DB.Create(&models.Project{Name: uuid.New().String(), StartDate: start, EndDate: &end}).Error
	assert.Nil(suite.T(), err)

	// An open-ended project is fine
	err = models.DB.Create(&models.Project{Name: uuid.New().String(), StartDate: start}).Error
	assert.Nil(suite.T(), err)
}

func (suite *TestSuiteStandard) TestProjectEnums() {
	tests := []struct {
		name    string
		project models.Project
		err     error
	}{
		{"all empty", models.Project{}, nil},
		{"all valid", models.Project{Phase: "delivery", Status: "active", Priority: "high", Health: "green"}, nil},
		{"invalid phase", models.Project{Phase: "inception"}, models.ErrProjectPhaseInvalid},
		{"invalid status", models.Project{Status: "paused"}, models.ErrProjectStatusInvalid},
		{"invalid priority", models.Project{Priority: "urgent"}, models.ErrProjectPriorityInvalid},
		{"invalid health", models.Project{Health: "blue"}, models.ErrProjectHealthInvalid},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			tt.project.Name = uuid.New().String()
			err := models.DB.Create(&tt.project).Error
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestProjectCreateChecksReferences() {
	customer := suite.createTestCustomer(models.Customer{})
	projectType := suite.createTestProjectType(models.ProjectType{})
	status := suite.createTestCommercialStatus(models.CommercialStatus{})

	project := suite.createTestProject(models.Project{
		CustomerID:         &customer.ID,
		ProjectTypeID:      &projectType.ID,
		CommercialStatusID: &status.ID,
	})
	assert.NotEqual(suite.T(), uuid.Nil, project.ID)

	unknown := uuid.New()
	for _, broken := range []models.Project{
		{CustomerID: &unknown},
		{ProjectTypeID: &unknown},
		{CommercialStatusID: &unknown},
		{CustomerDeliveryLeadID: &unknown},
		{ServiceDeliveryManagerID: &unknown},
	} {
		broken.Name = uuid.New().String()
		err := models.DB.Create(&broken).Error
		assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound, "Project: %#v", broken)
	}
}

func (suite *TestSuiteStandard) TestProjectUpdateChecksReferences() {
	project := suite.createTestProject(models.Project{})

	unknown := uuid.New()
	err := models.DB.Model(&project).Updates(models.Project{CustomerID: &unknown}).Error
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)

	customer := suite.createTestCustomer(models.Customer{})
	err = models.DB.Model(&project).Updates(models.Project{CustomerID: &customer.ID}).Error
	assert.Nil(suite.T(), err)
}

func (suite *TestSuiteStandard) TestProjectDeleteProtection() {
	employee := suite.createTestEmployee(models.Employee{FirstName: "Asha"})
	project := suite.createTestProject(models.Project{})

	_ = suite.createTestAllocation(models.Allocation{
		EmployeeID: employee.ID,
		ProjectID:  project.ID,
		StartDate:  types.NewDate(2024, 1, 1),
		EndDate:    types.NewDate(2024, 1, 31),
		Hours:      decimal.NewFromInt(8),
	})

	err := models.DB.Delete(&project).Error
	assert.ErrorIs(suite.T(), err, models.ErrResourceProtected)
}
