package protocol

import "fmt"

// Standard JSON-RPC 2.0 error codes.
const (
	CodeParseError     = -32700
	CodeInvalidRequest = -32600
	CodeMethodNotFound = -32601
	CodeInvalidParams  = -32602
	CodeInternalError  = -32603
)

// MCP-specific error codes.
const (
	CodeNotFound     = -32001
	CodeUnauthorized = -32002
	CodeRateLimited  = -32003
	CodeConflict     = -32004
	CodeTimeout      = -32005
	CodeCancelled    = -32006
)

// Category classifies an error for the surrounding system. Domain handlers
// return errors in any category; the dispatch core itself produces only
// CategoryNotFound and never reclassifies a handler's error.
type Category string

const (
	CategoryValidation Category = "validation"
	CategoryNotFound   Category = "not_found"
	CategoryConflict   Category = "conflict"
	CategoryPermission Category = "permission"
	CategoryTimeout    Category = "timeout"
	CategoryRateLimit  Category = "rate_limit"
	CategoryNetwork    Category = "network"
	CategoryInternal   Category = "internal"
	CategoryAuth       Category = "auth"
	CategoryCancelled  Category = "cancelled"
)

// Error represents a JSON-RPC 2.0 error with an attached category.
type Error struct {
	Code     int      `json:"code"`
	Message  string   `json:"message"`
	Data     any      `json:"data,omitempty"`
	Category Category `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("mcp: %s (code: %d)", e.Message, e.Code)
}

// Is implements errors.Is comparison by error code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// WithData returns a copy of the error with additional data attached.
func (e *Error) WithData(data any) *Error {
	return &Error{
		Code:     e.Code,
		Message:  e.Message,
		Data:     data,
		Category: e.Category,
	}
}

// NewParseError creates a parse error (-32700).
func NewParseError(msg string) *Error {
	return &Error{Code: CodeParseError, Message: msg, Category: CategoryValidation}
}

// NewInvalidRequest creates an invalid request error (-32600).
func NewInvalidRequest(msg string) *Error {
	return &Error{Code: CodeInvalidRequest, Message: msg, Category: CategoryValidation}
}

// NewMethodNotFound creates a method not found error (-32601).
func NewMethodNotFound(msg string) *Error {
	return &Error{Code: CodeMethodNotFound, Message: msg, Category: CategoryNotFound}
}

// NewInvalidParams creates an invalid params error (-32602).
func NewInvalidParams(msg string) *Error {
	return &Error{Code: CodeInvalidParams, Message: msg, Category: CategoryValidation}
}

// NewInternalError creates an internal error (-32603).
func NewInternalError(msg string) *Error {
	return &Error{Code: CodeInternalError, Message: msg, Category: CategoryInternal}
}

// NewNotFound creates a not found error (-32001).
func NewNotFound(msg string) *Error {
	return &Error{Code: CodeNotFound, Message: msg, Category: CategoryNotFound}
}

// NewUnauthorized creates an unauthorized error (-32002).
func NewUnauthorized(msg string) *Error {
	return &Error{Code: CodeUnauthorized, Message: msg, Category: CategoryAuth}
}

// NewRateLimited creates a rate limited error (-32003).
func NewRateLimited(msg string) *Error {
	return &Error{Code: CodeRateLimited, Message: msg, Category: CategoryRateLimit}
}

// NewConflict creates a conflict error (-32004).
func NewConflict(msg string) *Error {
	return &Error{Code: CodeConflict, Message: msg, Category: CategoryConflict}
}

// NewTimeout creates a timeout error (-32005).
func NewTimeout(msg string) *Error {
	return &Error{Code: CodeTimeout, Message: msg, Category: CategoryTimeout}
}

// NewCancelled creates a cancelled error (-32006).
func NewCancelled(msg string) *Error {
	return &Error{Code: CodeCancelled, Message: msg, Category: CategoryCancelled}
}
