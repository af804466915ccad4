// Package feed_scope resolves the filter of a feed or search request into
// store predicates. Both paths must agree on visibility and the hidden set.
package feed_scope

import (
	"errors"
	"time"

	"feedengine/domain"
	apperrors "feedengine/utils/errors"
)

// Predicates validates filter and returns the ordered predicate list. A saved
// feed stays a single predicate that the store resolves in the page query.
// component is used for error context.
func Predicates(component string, filter domain.FeedFilter, viewerID *string, now time.Time) ([]domain.Predicate, error) {
	preds, err := domain.BuildFeedPredicates(filter, viewerID, now)
	if err == nil {
		return preds, nil
	}

	details := map[string]interface{}{"feed_id": filter.FeedID}
	if errors.Is(err, apperrors.ErrFeedNotFound) {
		return nil, apperrors.NewNotFoundError("feed not found", "usecase", component, "Execute", err, details)
	}
	if errors.Is(err, apperrors.ErrInvalidInput) {
		return nil, apperrors.NewValidationContextError(err.Error(), "usecase", component, "Execute", details)
	}
	return nil, apperrors.Classify(err, "usecase", component, "Execute")
}

// NormalizeViewer treats an empty viewer id as anonymous.
func NormalizeViewer(viewerID *string) *string {
	if viewerID == nil || *viewerID == "" {
		return nil
	}
	return viewerID
}
