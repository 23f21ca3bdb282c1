package contentful

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingSpace is returned when no space id is configured
	ErrMissingSpace = errors.New("space id is required")

	// ErrMissingToken is returned when no management token is configured
	ErrMissingToken = errors.New("management token is required")
)

// FetchError is returned when the management API answers with a non-2xx status
type FetchError struct {
	StatusCode int
	Status     string
	Message    string
}

// Error renders the HTTP status line, e.g. "401 Unauthorized"
func (e *FetchError) Error() string {
	status := e.Status
	if status == "" {
		status = fmt.Sprintf("%d", e.StatusCode)
	}
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", status, e.Message)
	}
	return status
}
