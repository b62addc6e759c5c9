package errors

import "net/http"

var (
	ErrPointNotFound = New(
		"POINT_NOT_FOUND",
		"Point not found",
		http.StatusNotFound,
	)

	ErrInvalidPointID = New(
		"INVALID_POINT_ID",
		"Invalid point ID",
		http.StatusBadRequest,
	)

	ErrNoPointSelected = New(
		"NO_POINT_SELECTED",
		"No point is selected",
		http.StatusConflict,
	)

	ErrSessionRequired = New(
		"SESSION_REQUIRED",
		"Session is required",
		http.StatusBadRequest,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
