package feed_query_gateway

import (
	"context"
	"errors"

	"feedengine/domain"
	"feedengine/driver/alt_db"
	apperrors "feedengine/utils/errors"
)

type FeedQueryGateway struct {
	alt_db *alt_db.AltDBRepository
}

func NewFeedQueryGateway(pool alt_db.PgxIface) *FeedQueryGateway {
	return &FeedQueryGateway{alt_db: alt_db.NewAltDBRepositoryWithPool(pool)}
}

func (g *FeedQueryGateway) FetchFeedPage(ctx context.Context, query domain.FeedQuery) ([]*domain.Post, error) {
	if g.alt_db == nil {
		return nil, errors.New("database connection not available")
	}

	posts, err := g.alt_db.FetchFeedPage(ctx, query)
	if err != nil {
		details := map[string]interface{}{"limit": query.Limit}
		if query.Ranking != nil {
			details["sort_by"] = string(query.Ranking.Sort())
		}
		return nil, storeError(err, "failed to fetch feed page", "FetchFeedPage", query.Predicates, details)
	}
	return posts, nil
}

func (g *FeedQueryGateway) FetchPostsByIDs(ctx context.Context, ids []string, predicates []domain.Predicate, viewerID *string) ([]*domain.Post, error) {
	if g.alt_db == nil {
		return nil, errors.New("database connection not available")
	}

	posts, err := g.alt_db.FetchPostsByIDs(ctx, ids, predicates, viewerID)
	if err != nil {
		return nil, storeError(err, "failed to hydrate search hits", "FetchPostsByIDs", predicates,
			map[string]interface{}{"ids": len(ids)})
	}
	return posts, nil
}

// storeError keeps a missing or foreign saved feed a 404 rather than a
// database failure.
func storeError(err error, message, operation string, predicates []domain.Predicate, details map[string]interface{}) error {
	if errors.Is(err, apperrors.ErrFeedNotFound) {
		notFound := map[string]interface{}{}
		if saved, ok := domain.SavedFeedOf(predicates); ok {
			notFound["feed_id"] = saved.FeedID
		}
		return apperrors.NewNotFoundError("feed not found", "gateway", "FeedQueryGateway", operation, err, notFound)
	}
	return apperrors.NewDatabaseContextError(message, "gateway", "FeedQueryGateway", operation, err, details)
}
