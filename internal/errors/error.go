package errors

import (
	stderrors "errors"
	"fmt"
)

// Category represents the type of error.
type Category string

const (
	CategoryRuntime Category = "runtime"
	CategoryRender  Category = "render"
	CategoryInspect Category = "inspect"
	CategoryConfig  Category = "config"
	CategoryCLI     Category = "cli"
)

// ReaktError is a structured error with a registered code and a fix hint.
type ReaktError struct {
	// Code is a unique error identifier (e.g., "E001").
	Code string

	// Category is the error type (runtime, render, etc.).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *ReaktError) Error() string {
	msg := e.Message
	if e.Code != "" {
		msg = fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	if e.Wrapped != nil {
		msg += ": " + e.Wrapped.Error()
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *ReaktError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a ReaktError with the same code.
// This lets errors.Is(err, errors.New("E002")) match any E002.
func (e *ReaktError) Is(target error) bool {
	t, ok := target.(*ReaktError)
	if !ok || t.Code == "" {
		return false
	}
	return e.Code == t.Code
}

// WithSuggestion adds a fix suggestion to the error.
func (e *ReaktError) WithSuggestion(s string) *ReaktError {
	e.Suggestion = s
	return e
}

// WithDetail replaces the detailed explanation of the error.
func (e *ReaktError) WithDetail(d string) *ReaktError {
	e.Detail = d
	return e
}

// WithDetailf replaces the detailed explanation with a formatted string.
func (e *ReaktError) WithDetailf(format string, args ...any) *ReaktError {
	e.Detail = fmt.Sprintf(format, args...)
	return e
}

// Wrap wraps another error.
func (e *ReaktError) Wrap(err error) *ReaktError {
	e.Wrapped = err
	return e
}

// New creates a ReaktError from a registered error code.
func New(code string) *ReaktError {
	template, ok := registry[code]
	if !ok {
		return &ReaktError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &ReaktError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
	}
}

// Newf creates a new ReaktError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *ReaktError {
	return &ReaktError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a ReaktError.
// ReaktErrors anywhere in the chain are returned as-is.
func FromError(err error, code string) *ReaktError {
	if err == nil {
		return nil
	}
	var re *ReaktError
	if stderrors.As(err, &re) {
		return re
	}
	return New(code).Wrap(err)
}

// HasCode reports whether err or any error it wraps is a ReaktError with code.
func HasCode(err error, code string) bool {
	var re *ReaktError
	for err != nil {
		if stderrors.As(err, &re) {
			if re.Code == code {
				return true
			}
			err = re.Wrapped
			continue
		}
		return false
	}
	return false
}

// Code returns the code of the first ReaktError in err's chain, or "".
func Code(err error) string {
	var re *ReaktError
	if stderrors.As(err, &re) {
		return re.Code
	}
	return ""
}
