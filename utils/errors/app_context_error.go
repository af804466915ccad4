package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppContextError represents an error with rich context information
type AppContextError struct {
	Code      string                 `json:"code"`
	Message   string                 `json:"message"`
	Layer     string                 `json:"layer,omitempty"`     // Clean Architecture layer (rest, usecase, gateway, driver)
	Component string                 `json:"component,omitempty"` // Specific component/service name
	Operation string                 `json:"operation,omitempty"` // Specific operation/method name
	Cause     error                  `json:"-"`                   // Underlying error (not serialized)
	Context   map[string]interface{} `json:"context,omitempty"`
}

// Error implements the error interface
func (e *AppContextError) Error() string {
	var prefix string
	if e.Layer != "" && e.Component != "" && e.Operation != "" {
		prefix = fmt.Sprintf("[%s:%s:%s] ", e.Layer, e.Component, e.Operation)
	}

	if e.Cause != nil {
		return fmt.Sprintf("%s%s: %s (caused by: %v)", prefix, e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s%s: %s", prefix, e.Code, e.Message)
}

// Unwrap returns the underlying error for error chain unwrapping
func (e *AppContextError) Unwrap() error {
	return e.Cause
}

// HTTPStatusCode maps error codes to HTTP status codes
func (e *AppContextError) HTTPStatusCode() int {
	switch ErrorCode(e.Code) {
	case ErrCodeValidation, ErrCodeInvalidCursor:
		return http.StatusBadRequest
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case ErrCodeSearchUnavailable:
		return http.StatusServiceUnavailable
	case ErrCodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// HTTPContextResponse represents the structure of error responses sent to clients
type HTTPContextResponse struct {
	Error     string                 `json:"error"`
	Code      string                 `json:"code"`
	Message   string                 `json:"message"`
	Layer     string                 `json:"layer,omitempty"`
	Component string                 `json:"component,omitempty"`
	Operation string                 `json:"operation,omitempty"`
	Context   map[string]interface{} `json:"context,omitempty"`
}

// ToHTTPResponse converts an AppContextError to an HTTP error response.
// Internal failures keep their detail out of the body.
func (e *AppContextError) ToHTTPResponse() HTTPContextResponse {
	if e.HTTPStatusCode() >= http.StatusInternalServerError && ErrorCode(e.Code) != ErrCodeSearchUnavailable {
		return HTTPContextResponse{
			Error:   "error",
			Code:    e.Code,
			Message: "internal server error",
		}
	}
	return HTTPContextResponse{
		Error:     "error",
		Code:      e.Code,
		Message:   e.Message,
		Layer:     e.Layer,
		Component: e.Component,
		Operation: e.Operation,
		Context:   e.Context,
	}
}

// IsRetryable determines if the error represents a retryable condition
func (e *AppContextError) IsRetryable() bool {
	switch ErrorCode(e.Code) {
	case ErrCodeSearchUnavailable, ErrCodeTimeout:
		return true
	default:
		return false
	}
}

// NewAppContextError creates a new AppContextError with full context
func NewAppContextError(
	code, message, layer, component, operation string,
	cause error,
	context map[string]interface{},
) *AppContextError {
	if context == nil {
		context = make(map[string]interface{})
	}

	return &AppContextError{
		Code:      code,
		Message:   message,
		Layer:     layer,
		Component: component,
		Operation: operation,
		Cause:     cause,
		Context:   context,
	}
}

// EnrichWithContext creates a new AppContextError by enriching an existing error with additional context
func EnrichWithContext(
	err *AppContextError,
	layer, component, operation string,
	additionalContext map[string]interface{},
) *AppContextError {
	mergedContext := make(map[string]interface{})
	for k, v := range err.Context {
		mergedContext[k] = v
	}
	for k, v := range additionalContext {
		mergedContext[k] = v
	}

	return &AppContextError{
		Code:      err.Code,
		Message:   err.Message,
		Layer:     layer,
		Component: component,
		Operation: operation,
		Cause:     err.Cause,
		Context:   mergedContext,
	}
}

// Classify turns any error into an AppContextError. Errors that already carry
// a code keep it, known sentinels get their code, and everything else is an
// unknown internal failure.
func Classify(err error, layer, component, operation string) *AppContextError {
	var appContextErr *AppContextError
	if errors.As(err, &appContextErr) {
		return appContextErr
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return NewAppContextError(string(appErr.Code), appErr.Message, layer, component, operation, appErr.Cause, appErr.Context)
	}

	switch {
	case IsValidationError(err):
		return NewAppContextError(string(ErrCodeValidation), err.Error(), layer, component, operation, err, nil)
	case IsInvalidCursor(err):
		return NewInvalidCursorError(layer, component, operation, err, nil)
	case errors.Is(err, ErrPostNotFound):
		return NewNotFoundError("post not found", layer, component, operation, err, nil)
	case errors.Is(err, ErrFeedNotFound):
		return NewNotFoundError("feed not found", layer, component, operation, err, nil)
	case errors.Is(err, ErrUnauthorized):
		return NewUnauthorizedError(layer, component, operation, nil)
	case IsSearchUnavailable(err):
		return NewSearchUnavailableError(layer, component, operation, err, nil)
	default:
		return NewUnknownContextError("internal server error", layer, component, operation, err, nil)
	}
}

// NewDatabaseContextError creates a database error with context
func NewDatabaseContextError(message, layer, component, operation string, cause error, context map[string]interface{}) *AppContextError {
	if context == nil {
		context = make(map[string]interface{})
	}
	context["error_type"] = "database"
	return NewAppContextError(string(ErrCodeDatabase), message, layer, component, operation, cause, context)
}

// NewValidationContextError creates a validation error with context
func NewValidationContextError(message, layer, component, operation string, context map[string]interface{}) *AppContextError {
	if context == nil {
		context = make(map[string]interface{})
	}
	context["error_type"] = "validation"
	return NewAppContextError(string(ErrCodeValidation), message, layer, component, operation, fmt.Errorf("%w", ErrInvalidInput), context)
}

// NewUnknownContextError creates an unknown error with context
func NewUnknownContextError(message, layer, component, operation string, cause error, context map[string]interface{}) *AppContextError {
	if context == nil {
		context = make(map[string]interface{})
	}
	context["error_type"] = "unknown"
	return NewAppContextError(string(ErrCodeUnknown), message, layer, component, operation, cause, context)
}
