package branding

import "fmt"

// ErrorType categorizes configuration errors raised by the branding toolchain.
type ErrorType int

const (
	// InvalidBrand indicates the brand input is empty or cannot be normalized.
	InvalidBrand ErrorType = iota
	// InvalidField indicates a derived field failed format validation.
	InvalidField
	// LockMissing indicates the lock file does not exist where required.
	LockMissing
	// LockInvalid indicates the lock file is missing required keys.
	LockInvalid
	// LockMismatch indicates the tool commit differs from the pinned commit.
	LockMismatch
	// InfoMissing indicates the info file is absent or incomplete.
	InfoMissing
	// InfoMismatch indicates the info file disagrees with the requested base.
	InfoMismatch
	// BrandMismatch indicates an explicit brand differs from persisted config.
	BrandMismatch
	// TemplateInvalid indicates an unknown or unresolved template placeholder.
	TemplateInvalid
	// GitFailed indicates a required version-control lookup failed.
	GitFailed
	// RootNotFound indicates the repository root could not be located.
	RootNotFound
)

// Error is the single configuration-error kind used across the tool.
// Anything that is not an *Error is an unexpected failure (I/O etc.)
// and propagates unwrapped.
type Error struct {
	// Type categorizes the error.
	Type ErrorType
	// Field names the offending field or key, if any.
	Field string
	// File is the file path related to the error, if any.
	File string
	// Message is the error message.
	Message string
	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if e.Field != "" {
		msg = fmt.Sprintf("%s [%s]", msg, e.Field)
	}
	if e.File != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.File)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

// Unwrap returns the underlying cause error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates a configuration error.
func NewError(typ ErrorType, message string) *Error {
	return &Error{Type: typ, Message: message}
}

// NewFieldError creates a configuration error naming the offending field.
func NewFieldError(typ ErrorType, field, message string) *Error {
	return &Error{Type: typ, Field: field, Message: message}
}

// NewFileError creates a configuration error naming the offending file.
func NewFileError(typ ErrorType, file, message string) *Error {
	return &Error{Type: typ, File: file, Message: message}
}

// NewErrorWithCause creates a configuration error wrapping an underlying error.
func NewErrorWithCause(typ ErrorType, message string, cause error) *Error {
	return &Error{Type: typ, Message: message, Cause: cause}
}
