package search_gateway

import (
	"context"
	"errors"
	"fmt"

	"feedengine/domain"
	apperrors "feedengine/utils/errors"
	"feedengine/utils/logger"
	"feedengine/utils/rate_limiter"
)

// SearchDriver is implemented by both the search-indexer HTTP driver and the
// direct Meilisearch driver.
type SearchDriver interface {
	SearchPosts(ctx context.Context, query string, offset, limit int) ([]domain.SearchHit, error)
	SuggestPosts(ctx context.Context, query string, limit int) ([]domain.SearchHit, error)
}

// SearchGateway adapts a search driver to the search port. Outbound calls are
// throttled per backend when a limiter is configured.
type SearchGateway struct {
	driver      SearchDriver
	backend     string
	rateLimiter *rate_limiter.KeyedRateLimiter
}

func NewSearchGateway(driver SearchDriver, backend string) *SearchGateway {
	return &SearchGateway{driver: driver, backend: backend}
}

func NewSearchGatewayWithRateLimiter(driver SearchDriver, backend string, limiter *rate_limiter.KeyedRateLimiter) *SearchGateway {
	return &SearchGateway{driver: driver, backend: backend, rateLimiter: limiter}
}

func (g *SearchGateway) SearchPosts(ctx context.Context, query string, offset, limit int) ([]domain.SearchHit, error) {
	if err := g.wait(ctx, "SearchPosts"); err != nil {
		return nil, err
	}

	hits, err := g.driver.SearchPosts(ctx, query, offset, limit)
	if err != nil {
		return nil, g.unavailable(ctx, "SearchPosts", err, map[string]interface{}{"offset": offset, "limit": limit})
	}

	logger.Logger.InfoContext(ctx, "search completed",
		"backend", g.backend,
		"offset", offset,
		"limit", limit,
		"hits_count", len(hits))
	return hits, nil
}

func (g *SearchGateway) SuggestPosts(ctx context.Context, query string, limit int) ([]domain.SearchHit, error) {
	if err := g.wait(ctx, "SuggestPosts"); err != nil {
		return nil, err
	}

	hits, err := g.driver.SuggestPosts(ctx, query, limit)
	if err != nil {
		return nil, g.unavailable(ctx, "SuggestPosts", err, map[string]interface{}{"limit": limit})
	}
	return hits, nil
}

func (g *SearchGateway) wait(ctx context.Context, op string) error {
	if g.rateLimiter == nil {
		return nil
	}
	if err := g.rateLimiter.Wait(ctx, g.backend); err != nil {
		return g.unavailable(ctx, op, fmt.Errorf("rate limit wait: %w", err), nil)
	}
	return nil
}

func (g *SearchGateway) unavailable(ctx context.Context, op string, err error, fields map[string]interface{}) error {
	logger.Logger.ErrorContext(ctx, "search backend failed",
		"backend", g.backend,
		"operation", op,
		"error", err)

	if fields == nil {
		fields = map[string]interface{}{}
	}
	fields["backend"] = g.backend
	if errors.Is(err, apperrors.ErrSearchTimeout) {
		fields["timeout"] = true
	}
	return apperrors.NewSearchUnavailableError("gateway", "SearchGateway", op, err, fields)
}
