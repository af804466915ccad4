package alt_db

import (
	"context"
	"fmt"

	"feedengine/domain"
	apperrors "feedengine/utils/errors"
	"feedengine/utils/logger"
)

const savedFeedOwnedQuery = `SELECT EXISTS (SELECT 1 FROM feed WHERE id = $1 AND user_id = $2)`

// checkSavedFeed tells an empty result apart from a feed the viewer cannot
// see. It only runs after a query scoped to a saved feed returned no rows, so
// a non-empty page never pays for it.
func (r *AltDBRepository) checkSavedFeed(ctx context.Context, preds []domain.Predicate) error {
	saved, ok := domain.SavedFeedOf(preds)
	if !ok {
		return nil
	}

	var owned bool
	if err := r.pool.QueryRow(ctx, savedFeedOwnedQuery, saved.FeedID, saved.ViewerID).Scan(&owned); err != nil {
		logger.Logger.ErrorContext(ctx, "error checking saved feed", "error", err, "feed_id", saved.FeedID)
		return fmt.Errorf("check saved feed: %w", err)
	}
	if !owned {
		return fmt.Errorf("feed %s: %w", saved.FeedID, apperrors.ErrFeedNotFound)
	}
	return nil
}
