package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by every layer. Check them with errors.Is.
var (
	ErrInvalidInput             = errors.New("invalid input")
	ErrInvalidCursor            = errors.New("invalid cursor")
	ErrPostNotFound             = errors.New("post not found")
	ErrFeedNotFound             = errors.New("feed not found")
	ErrUnauthorized             = errors.New("viewer required")
	ErrSearchServiceUnavailable = errors.New("search service unavailable")
	ErrSearchTimeout            = errors.New("search request timed out")
)

// IsValidationError checks if an error represents invalid input
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsInvalidCursor checks if an error represents an undecodable or foreign cursor
func IsInvalidCursor(err error) bool {
	return errors.Is(err, ErrInvalidCursor)
}

// IsNotFound checks if an error represents a missing post or saved feed
func IsNotFound(err error) bool {
	return errors.Is(err, ErrPostNotFound) || errors.Is(err, ErrFeedNotFound)
}

// IsSearchUnavailable checks if an error came from the search collaborator
func IsSearchUnavailable(err error) bool {
	return errors.Is(err, ErrSearchServiceUnavailable) || errors.Is(err, ErrSearchTimeout)
}

// NewInvalidInputError creates an AppContextError that wraps ErrInvalidInput
func NewInvalidInputError(message, layer, component, operation string, context map[string]interface{}) *AppContextError {
	return NewAppContextError(
		string(ErrCodeValidation),
		message,
		layer,
		component,
		operation,
		fmt.Errorf("%w", ErrInvalidInput),
		context,
	)
}

// NewInvalidCursorError creates an AppContextError that wraps ErrInvalidCursor
func NewInvalidCursorError(layer, component, operation string, cause error, context map[string]interface{}) *AppContextError {
	return NewAppContextError(
		string(ErrCodeInvalidCursor),
		"invalid cursor",
		layer,
		component,
		operation,
		wrapSentinel(ErrInvalidCursor, cause),
		context,
	)
}

// NewNotFoundError creates an AppContextError that wraps a not-found sentinel
func NewNotFoundError(message, layer, component, operation string, cause error, context map[string]interface{}) *AppContextError {
	return NewAppContextError(
		string(ErrCodeNotFound),
		message,
		layer,
		component,
		operation,
		cause,
		context,
	)
}

// NewSearchUnavailableError creates an AppContextError that wraps ErrSearchServiceUnavailable
func NewSearchUnavailableError(layer, component, operation string, cause error, context map[string]interface{}) *AppContextError {
	return NewAppContextError(
		string(ErrCodeSearchUnavailable),
		"search service unavailable",
		layer,
		component,
		operation,
		wrapSentinel(ErrSearchServiceUnavailable, cause),
		context,
	)
}

// NewUnauthorizedError creates an AppContextError that wraps ErrUnauthorized
func NewUnauthorizedError(layer, component, operation string, context map[string]interface{}) *AppContextError {
	return NewAppContextError(
		string(ErrCodeUnauthorized),
		"viewer required",
		layer,
		component,
		operation,
		fmt.Errorf("%w", ErrUnauthorized),
		context,
	)
}

func wrapSentinel(sentinel, cause error) error {
	if cause == nil || errors.Is(cause, sentinel) {
		if cause == nil {
			return fmt.Errorf("%w", sentinel)
		}
		return cause
	}
	return fmt.Errorf("%w: %w", sentinel, cause)
}
