package errors

import (
	"fmt"
)

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// RenderError represents a failure while rendering a dashboard component.
type RenderError struct {
	Component string
	Err       error
}

// NewRenderError constructs a RenderError for the named component.
func NewRenderError(component string, err error) error {
	return &RenderError{Component: component, Err: err}
}

func (e *RenderError) Error() string {
	if e == nil {
		return ""
	}
	if e.Component != "" {
		return fmt.Sprintf("render error in %s: %v", e.Component, e.Err)
	}
	return fmt.Sprintf("render error: %v", e.Err)
}

// Unwrap exposes the root error.
func (e *RenderError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// DataError indicates a failure loading the data a dashboard section
// displays.
type DataError struct {
	Section string
	Message string
	Err     error
}

// NewDataError constructs a DataError for the given dashboard section.
func NewDataError(section string, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &DataError{Section: section, Message: message, Err: err}
}

func (e *DataError) Error() string {
	if e == nil {
		return ""
	}
	if e.Section != "" {
		return fmt.Sprintf("data error [%s]: %s", e.Section, e.Message)
	}
	return fmt.Sprintf("data error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *DataError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
