package domain

import (
	"fmt"
	"strings"

	apperrors "feedengine/utils/errors"
)

// FeedFilter holds the ad hoc selectors of a feed or search request. A nil
// list means the selector is absent.
type FeedFilter struct {
	SourceIDs  []string
	Tags       []string
	SourceID   string
	Tag        string
	UnreadOnly bool
	FeedID     string
}

// HasAdHocSelectors reports whether any source or tag selector is present.
func (f FeedFilter) HasAdHocSelectors() bool {
	return f.SourceIDs != nil || f.Tags != nil || f.SourceID != "" || f.Tag != ""
}

// Validate checks the filter shape. It does not touch the store.
func (f FeedFilter) Validate() error {
	if err := validateSelectorList("sourceIds", f.SourceIDs); err != nil {
		return err
	}
	if err := validateSelectorList("tags", f.Tags); err != nil {
		return err
	}
	if f.FeedID != "" && f.HasAdHocSelectors() {
		return fmt.Errorf("%w: feedId cannot be combined with source or tag selectors", apperrors.ErrInvalidInput)
	}
	return nil
}

func validateSelectorList(field string, values []string) error {
	if values == nil {
		return nil
	}
	if len(values) == 0 {
		return fmt.Errorf("%w: %s must not be empty when present", apperrors.ErrInvalidInput, field)
	}
	for i, v := range values {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("%w: %s[%d] must not be blank", apperrors.ErrInvalidInput, field, i)
		}
	}
	return nil
}
