package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUserNotFound is returned when a referenced user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrSeizureNotFound is returned when a seizure record does not exist.
	ErrSeizureNotFound = errors.New("seizure not found")
	// ErrMedicationNotFound is returned when a medication does not exist or belongs to another user.
	ErrMedicationNotFound = errors.New("medication not found")
	// ErrMissingEmailParam is returned when neither email query parameter is supplied.
	ErrMissingEmailParam = errors.New("email parameter is required")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch err {
	case ErrUserNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case ErrSeizureNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "SEIZURE_NOT_FOUND")
	case ErrMedicationNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "MEDICATION_NOT_FOUND")
	case ErrMissingEmailParam:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "MISSING_EMAIL")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
