// Package cvdata loads the CV spreadsheets and shapes their rows for display.
package cvdata

import (
	"errors"
	"fmt"
)

// Reason classifies why a source could not be loaded
type Reason string

const (
	ReasonNotFound  Reason = "not_found"
	ReasonMalformed Reason = "malformed"
)

var (
	// ErrSourceNotFound matches any SourceError whose file does not exist
	ErrSourceNotFound = errors.New("source not found")
	// ErrSourceMalformed matches any SourceError whose content could not be read
	ErrSourceMalformed = errors.New("source malformed")
)

// SourceError represents a spreadsheet that could not be loaded
type SourceError struct {
	Source  string // logical name, e.g. "entries"
	Path    string
	Reason  Reason
	Message string
	Cause   error
}

func (e *SourceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s source %s: %s: %v", e.Source, e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s source %s: %s", e.Source, e.Path, e.Message)
}

func (e *SourceError) Unwrap() error {
	return e.Cause
}

// Is lets errors.Is match the reason sentinels
func (e *SourceError) Is(target error) bool {
	switch target {
	case ErrSourceNotFound:
		return e.Reason == ReasonNotFound
	case ErrSourceMalformed:
		return e.Reason == ReasonMalformed
	}
	return false
}

func notFound(source, path string, cause error) *SourceError {
	return &SourceError{
		Source:  source,
		Path:    path,
		Reason:  ReasonNotFound,
		Message: "file not found",
		Cause:   cause,
	}
}

func malformed(source, path, message string, cause error) *SourceError {
	return &SourceError{
		Source:  source,
		Path:    path,
		Reason:  ReasonMalformed,
		Message: message,
		Cause:   cause,
	}
}
