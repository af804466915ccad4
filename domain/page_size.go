package domain

import (
	"fmt"

	apperrors "feedengine/utils/errors"
)

// NormalizePageSize applies the page size bounds: zero means the default,
// anything above max is clamped and negative sizes are rejected.
func NormalizePageSize(requested, defaultSize, maxSize int) (int, error) {
	switch {
	case requested < 0:
		return 0, fmt.Errorf("%w: page size must not be negative, got %d", apperrors.ErrInvalidInput, requested)
	case requested == 0:
		return defaultSize, nil
	case requested > maxSize:
		return maxSize, nil
	default:
		return requested, nil
	}
}
