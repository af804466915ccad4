package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelWrapping(t *testing.T) {
	cause := errors.New("illegal base64 data at input byte 3")
	err := NewInvalidCursorError("domain", "PopularityRanking", "DecodeCursor", cause, nil)

	if !errors.Is(err, ErrInvalidCursor) {
		t.Error("expected ErrInvalidCursor in chain")
	}
	if !errors.Is(err, cause) {
		t.Error("expected original cause in chain")
	}
}

func TestSentinelWrapping_NoDoubleWrap(t *testing.T) {
	already := fmt.Errorf("strategy mismatch: %w", ErrInvalidCursor)
	err := NewInvalidCursorError("domain", "ChronologicalRanking", "DecodeCursor", already, nil)

	if err.Cause != already {
		t.Errorf("Cause = %v, want the original wrapped error", err.Cause)
	}
}

func TestIsHelpers(t *testing.T) {
	if !IsNotFound(fmt.Errorf("x: %w", ErrFeedNotFound)) {
		t.Error("IsNotFound(ErrFeedNotFound) = false")
	}
	if IsNotFound(ErrInvalidInput) {
		t.Error("IsNotFound(ErrInvalidInput) = true")
	}
	if !IsSearchUnavailable(NewSearchUnavailableError("driver", "c", "o", errors.New("eof"), nil)) {
		t.Error("IsSearchUnavailable() = false")
	}
	if !IsValidationError(NewInvalidInputError("bad", "usecase", "c", "o", nil)) {
		t.Error("IsValidationError() = false")
	}
}
