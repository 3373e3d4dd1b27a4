package models

import "errors"

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	// ErrResourceProtected is returned when a resource cannot be deleted
	// because another record still references it. The wrapping error names
	// the referencing model and field.
	ErrResourceProtected = errors.New("the resource cannot be deleted because it is still referenced")

	ErrNameNotUnique = errors.New("the name is already in use")

	ErrProjectDatesInvalid    = errors.New("the project start date must not be after the end date")
	ErrProjectPhaseInvalid    = errors.New("the specified project phase is invalid")
	ErrProjectStatusInvalid   = errors.New("the specified project status is invalid")
	ErrProjectPriorityInvalid = errors.New("the specified project priority is invalid")
	ErrProjectHealthInvalid   = errors.New("the specified project health is invalid")

	ErrAllocationDatesInvalid     = errors.New("the allocation start date must not be after the end date")
	ErrAllocationEndDateRequired  = errors.New("the allocation end date must be set")
	ErrAllocationHoursNotPositive = errors.New("allocation hours must be larger than zero")
	ErrRecurrenceDayInvalid       = errors.New("recurrence days must be between 0 (Monday) and 6 (Sunday)")

	ErrEmployeeLocationInvalid = errors.New("the specified location is invalid")
	ErrEmployeeGenderInvalid   = errors.New("the specified gender is invalid")
)
