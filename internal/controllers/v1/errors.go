package v1

import (
	"errors"
	"net/http"

	"github.com/crewplan/backend/internal/models"
)

// status translates an error into the HTTP status code the response uses.
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, models.ErrResourceProtected) {
		return http.StatusConflict
	}

	return http.StatusBadRequest
}

var errSkillUnknown = errors.New("at least one of the specified skills does not exist")
