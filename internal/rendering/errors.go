// Package rendering renders the CV dashboard page from embedded HTML templates.
package rendering

import "fmt"

// TemplateError represents an error parsing or executing a page template
type TemplateError struct {
	Message string
	Cause   error
}

func (e *TemplateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("template error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("template error: %s", e.Message)
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}

// LayoutError represents an unknown page layout name
type LayoutError struct {
	Name string
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("unknown layout %q (want one of %v)", e.Name, Layouts())
}
