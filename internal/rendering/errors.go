// Package rendering turns a resume document into a neutral visual tree, one
// layout per template, and serializes that tree to an HTML page.
package rendering

import (
	"fmt"

	"github.com/jonathan/resume-builder/internal/types"
)

// TemplateError is returned when no renderer exists for a template
type TemplateError struct {
	Template types.Template
	Message  string
	Cause    error
}

func (e *TemplateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("template error: %s %q: %v", e.Message, e.Template, e.Cause)
	}
	return fmt.Sprintf("template error: %s %q", e.Message, e.Template)
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}

// RenderError represents a failure to serialize a rendered tree
type RenderError struct {
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("render error: %s", e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}
