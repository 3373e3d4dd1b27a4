package v1

import (
	cp_uuid "github.com/crewplan/backend/internal/uuid"
)

type URIID struct {
	ID cp_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

// Pagination contains information about the pagination for list endpoints.
type Pagination struct {
	Count  int   `json:"count" example:"25"`  // The amount of records returned in this response
	Offset uint  `json:"offset" example:"50"` // The offset for the first record returned
	Limit  int   `json:"limit" example:"25"`  // The maximum amount of resources to return for this request
	Total  int64 `json:"total" example:"827"` // The total number of resources matching the query
}

// httpError is used for error responses that do not return a resource.
type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}
