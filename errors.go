package srapi

import (
	"errors"
	"fmt"
)

// ErrorCode represents a machine-readable error code.
type ErrorCode string

const (
	CodeConfiguration    ErrorCode = "configuration"     // Bad declaration; fatal, fix the code
	CodeInvalidArgument  ErrorCode = "invalid_argument"  // Constructor misuse (missing, unknown, init=false)
	CodeInvalidValue     ErrorCode = "invalid_value"     // A constraint on a present value failed
	CodeInvalidType      ErrorCode = "invalid_type"      // Value lacks the capability a constraint needs
	CodeTypeMismatch     ErrorCode = "type_mismatch"     // Recursive type check rejected the value's shape
	CodeFrozen           ErrorCode = "frozen"            // Assignment to a frozen record
	CodeMissingParameter ErrorCode = "missing_parameter" // Bind without a required parameter or value
	CodeUnknownParameter ErrorCode = "unknown_parameter" // Bind with an undeclared parameter name
	CodeInsufficientTier ErrorCode = "insufficient_tier" // Credential missing or below the required tier
)

// Error is the error envelope returned by every package in this module.
type Error struct {
	Code    ErrorCode      `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewError creates a new error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Errorf creates a new error with a formatted message.
func Errorf(code ErrorCode, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// WithDetail returns a new Error with the key-value pair added to details.
func (e *Error) WithDetail(key string, value any) *Error {
	details := make(map[string]any, len(e.Details)+1)
	for k, v := range e.Details {
		details[k] = v
	}
	details[key] = value
	return &Error{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
	}
}

// WithDetails returns a new Error with the provided map merged into details.
// For multiple details, this is more efficient than chaining WithDetail calls.
func (e *Error) WithDetails(details map[string]any) *Error {
	if len(details) == 0 {
		return e
	}
	merged := make(map[string]any, len(e.Details)+len(details))
	for k, v := range e.Details {
		merged[k] = v
	}
	for k, v := range details {
		merged[k] = v
	}
	return &Error{
		Code:    e.Code,
		Message: e.Message,
		Details: merged,
	}
}

// Detail returns the detail stored under key, or nil.
func (e *Error) Detail(key string) any {
	if e.Details == nil {
		return nil
	}
	return e.Details[key]
}

// CodeOf returns the code of the first *Error in err's chain.
// It returns the empty code for nil and for errors not produced by this module.
func CodeOf(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// IsCode reports whether err carries the given code.
func IsCode(err error, code ErrorCode) bool {
	return err != nil && CodeOf(err) == code
}
