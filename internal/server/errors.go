// Package server provides the HTTP surface of the CV dashboard.
package server

import (
	"fmt"
	"net/http"
)

// ErrEntryNotFound indicates no entry carries the requested title
type ErrEntryNotFound struct {
	Title string
}

func (e *ErrEntryNotFound) Error() string {
	return fmt.Sprintf("entry not found: %s", e.Title)
}

// ErrSectionUnavailable indicates the data source behind a section could not be loaded
type ErrSectionUnavailable struct {
	Section string
	Notice  string
}

func (e *ErrSectionUnavailable) Error() string {
	return fmt.Sprintf("%s unavailable: %s", e.Section, e.Notice)
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrEntryNotFound:
		return http.StatusNotFound
	case *ErrSectionUnavailable:
		return http.StatusServiceUnavailable
	case *ErrValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
