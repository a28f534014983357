package errors

import (
	"errors"
	"fmt"
)

// Code classifies a failure so callers can react without string matching.
type Code string

// Error codes as constants
const (
	// ErrCodeNotADirectory indicates the supplied search path does not exist
	// or is not a directory.
	ErrCodeNotADirectory Code = "NOT_A_DIRECTORY"

	// ErrCodeAmbiguousRoot indicates the root-finding heuristic could not
	// uniquely descend to a bundle root.
	ErrCodeAmbiguousRoot Code = "AMBIGUOUS_OR_MISSING_ROOT"

	// ErrCodeDepthExceeded indicates the root search descended past its depth
	// bound, usually because of a pathological or cyclic directory structure.
	ErrCodeDepthExceeded Code = "DEPTH_EXCEEDED"

	// ErrCodeRead indicates a filesystem read failure.
	ErrCodeRead Code = "READ_ERROR"

	// ErrCodeParse indicates file content is not well-formed YAML.
	ErrCodeParse Code = "PARSE_ERROR"

	// ErrCodeMultiDocument indicates a file expected to hold exactly one
	// document held more or fewer.
	ErrCodeMultiDocument Code = "MULTI_DOCUMENT_FILE"

	// ErrCodeUnexpectedShape indicates a list-type document lacks a usable
	// items array.
	ErrCodeUnexpectedShape Code = "UNEXPECTED_SHAPE"

	// ErrCodeNotFound indicates neither on-disk layout could be located for
	// the requested resource type and scope.
	ErrCodeNotFound Code = "RESOURCES_NOT_FOUND"

	// ErrCodeUnknownKind indicates a resource kind name did not match any
	// registered descriptor.
	ErrCodeUnknownKind Code = "UNKNOWN_KIND"

	// ErrCodeInternal indicates an unexpected internal failure.
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// StructuredError is an error with a stable code and, when one applies, the
// offending filesystem path.
type StructuredError struct {
	Code    Code
	Message string
	Path    string
	Err     error
}

func (e *StructuredError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Code, e.Message)
	if e.Path != "" {
		msg = fmt.Sprintf("%s (path: %s)", msg, e.Path)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *StructuredError) Unwrap() error {
	return e.Err
}

// New creates a StructuredError with the given code and message.
func New(code Code, message string) *StructuredError {
	return &StructuredError{Code: code, Message: message}
}

// Newf creates a StructuredError with a formatted message.
func Newf(code Code, format string, args ...any) *StructuredError {
	return &StructuredError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates a StructuredError that wraps an underlying error.
func Wrap(code Code, err error, message string) *StructuredError {
	return &StructuredError{Code: code, Message: message, Err: err}
}

// WithPath attaches the offending filesystem path and returns the error for
// chaining.
func (e *StructuredError) WithPath(path string) *StructuredError {
	e.Path = path
	return e
}

// CodeOf returns the code of the first StructuredError in err's chain, or the
// empty code when there is none.
func CodeOf(err error) Code {
	var se *StructuredError
	if errors.As(err, &se) {
		return se.Code
	}
	return ""
}

// HasCode reports whether err's chain contains a StructuredError with the
// given code.
func HasCode(err error, code Code) bool {
	return CodeOf(err) == code
}
