package feed_query_port

import (
	"context"

	"feedengine/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=feed_query_port.go -destination=../../mocks/mock_feed_query_port.go -package=mocks

// FeedQueryPort reads posts from the store. A saved feed predicate that the
// viewer does not own fails with ErrFeedNotFound instead of an empty result.
type FeedQueryPort interface {
	// FetchFeedPage returns up to query.Limit rows in the ranking's order.
	FetchFeedPage(ctx context.Context, query domain.FeedQuery) ([]*domain.Post, error)
	// FetchPostsByIDs returns the rows among ids that satisfy predicates, in
	// no particular order.
	FetchPostsByIDs(ctx context.Context, ids []string, predicates []domain.Predicate, viewerID *string) ([]*domain.Post, error)
}
