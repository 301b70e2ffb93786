package errors

import (
	"fmt"
)

// QueryKind classifies why a repository status query did not succeed.
type QueryKind int

const (
	// QueryFailed means the repository exists but its status could not be read.
	QueryFailed QueryKind = iota
	// Malformed means the backend answered with data that does not fit the status shape.
	Malformed
)

func (k QueryKind) String() string {
	switch k {
	case QueryFailed:
		return "query failed"
	case Malformed:
		return "malformed status"
	default:
		return "unknown"
	}
}

// QueryError reports a failed status query against a repository root.
type QueryError struct {
	Path string
	Kind QueryKind
	Err  error
}

// NewQueryError constructs a QueryError of kind QueryFailed.
func NewQueryError(path string, err error) error {
	return &QueryError{Path: path, Kind: QueryFailed, Err: err}
}

// NewMalformedError constructs a QueryError of kind Malformed.
func NewMalformedError(path string, err error) error {
	return &QueryError{Path: path, Kind: Malformed, Err: err}
}

func (e *QueryError) Error() string {
	if e == nil {
		return ""
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

// Unwrap exposes the underlying error.
func (e *QueryError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ModuleError describes a failure inside a single prompt module.
type ModuleError struct {
	Module string
	Err    error
}

// NewModuleError constructs a ModuleError.
func NewModuleError(module string, err error) error {
	return &ModuleError{Module: module, Err: err}
}

func (e *ModuleError) Error() string {
	if e == nil {
		return ""
	}
	if e.Module != "" {
		return fmt.Sprintf("%s error: %v", e.Module, e.Err)
	}
	return fmt.Sprintf("module error: %v", e.Err)
}

// Unwrap exposes the root error.
func (e *ModuleError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures invalid command line options.
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
