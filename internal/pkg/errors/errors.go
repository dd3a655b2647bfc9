package errors

import (
	"errors"
	"net/http"
)

// ErrorResponse carries the http status code a failure should surface with.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	// Conflicts is only set for booking conflicts so the caller can
	// present alternative dates.
	Conflicts int `json:"conflicts,omitempty"`
}

func (e *ErrorResponse) Error() string {
	return e.Message
}

func BadRequest(message string) error {
	return &ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	}
}

func UnauthorizedError(message string) error {
	return &ErrorResponse{
		Code:    http.StatusUnauthorized,
		Message: message,
	}
}

func ForbiddenError(message string) error {
	return &ErrorResponse{
		Code:    http.StatusForbidden,
		Message: message,
	}
}

func NotFoundError(message string) error {
	return &ErrorResponse{
		Code:    http.StatusNotFound,
		Message: message,
	}
}

func ConflictError(message string, conflicts int) error {
	return &ErrorResponse{
		Code:      http.StatusConflict,
		Message:   message,
		Conflicts: conflicts,
	}
}

func InternalServerError(message string) error {
	return &ErrorResponse{
		Code:    http.StatusInternalServerError,
		Message: message,
	}
}

// GetCode returns the http status carried by err, defaulting to 500 for
// errors that did not originate from this package.
func GetCode(err error) int {
	var resp *ErrorResponse
	if errors.As(err, &resp) {
		return resp.Code
	}
	return http.StatusInternalServerError
}

// GetConflicts returns the conflict count carried by a ConflictError, 0 otherwise.
func GetConflicts(err error) int {
	var resp *ErrorResponse
	if errors.As(err, &resp) {
		return resp.Conflicts
	}
	return 0
}
