package errs

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	ErrStatusInternalServer = http.StatusInternalServerError
	ErrStatusClient         = http.StatusBadRequest
	ErrStatusUnauthorized   = http.StatusUnauthorized
	ErrStatusNoPermission   = http.StatusForbidden
	ErrStatusNotFound       = http.StatusNotFound
	ErrStatusBadGateway     = http.StatusBadGateway
)

var (
	ErrInternalServer = errors.New("Internal server error")
	ErrClient         = errors.New("Bad request")

	// Failures mapped from remote API responses.
	ErrAuthentication = errors.New("Authentication failed - please log in again")
	ErrPermission     = errors.New("Permission denied")
	ErrNotFound       = errors.New("Resource not found")
	ErrNetwork        = errors.New("Network error - please check your connection")
)

// ServerError carries the status code and message of a remote API failure
// that does not map to one of the sentinel errors above.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server error (%d)", e.Status)
	}
	return fmt.Sprintf("server error (%d): %s", e.Status, e.Message)
}

// ValidationError is raised by local form checks before any request is made.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

var errorMap = map[error]int{
	ErrInternalServer: ErrStatusInternalServer,
	ErrClient:         ErrStatusClient,
	ErrAuthentication: ErrStatusUnauthorized,
	ErrPermission:     ErrStatusNoPermission,
	ErrNotFound:       ErrStatusNotFound,
	ErrNetwork:        ErrStatusBadGateway,
}

func GetErrorStatusCode(err error) int {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return ErrStatusClient
	}

	var serverErr *ServerError
	if errors.As(err, &serverErr) {
		return ErrStatusBadGateway
	}

	for sentinel, statusCode := range errorMap {
		if errors.Is(err, sentinel) {
			return statusCode
		}
	}

	return errorMap[ErrInternalServer]
}
