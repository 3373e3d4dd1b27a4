package test

import "time"

// TOLERANCE is the number of seconds that a CreatedAt or UpdatedAt time.Time
// is allowed to differ from the time at which it is checked.
//
// As CreatedAt and UpdatedAt are automatically set by gorm, we need a tolerance here.
const TOLERANCE time.Duration = time.Minute

// APIResponse is the minimal response body shared by all endpoints.
type APIResponse struct {
	Links map[string]string
	Error string
}
