package search_post_usecase

import (
	"context"
	"errors"
	"time"

	"feedengine/domain"
	"feedengine/port/feed_query_port"
	"feedengine/port/search_indexer_port"
	"feedengine/usecase/feed_scope"
	apperrors "feedengine/utils/errors"
	"feedengine/utils/logger"
	"feedengine/utils/metrics"
	appotel "feedengine/utils/otel"
	"feedengine/utils/search_text"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// SearchPostsUsecase asks the search backend for ids and hydrates them from
// the store, keeping the backend's relevance order.
type SearchPostsUsecase struct {
	search         search_indexer_port.SearchIndexerPort
	feedQuery      feed_query_port.FeedQueryPort
	defaultLimit   int
	maxLimit       int
	maxQueryLength int
	now            func() time.Time
}

func NewSearchPostsUsecase(
	search search_indexer_port.SearchIndexerPort,
	feedQuery feed_query_port.FeedQueryPort,
	defaultLimit, maxLimit, maxQueryLength int,
) *SearchPostsUsecase {
	return &SearchPostsUsecase{
		search:         search,
		feedQuery:      feedQuery,
		defaultLimit:   defaultLimit,
		maxLimit:       maxLimit,
		maxQueryLength: maxQueryLength,
		now:            time.Now,
	}
}

// WithClock replaces the visibility cutoff source.
func (u *SearchPostsUsecase) WithClock(now func() time.Time) *SearchPostsUsecase {
	u.now = now
	return u
}

func (u *SearchPostsUsecase) Execute(ctx context.Context, req domain.SearchRequest) (conn *domain.PostConnection, err error) {
	ctx, span := appotel.Tracer().Start(ctx, "SearchPostsUsecase.Execute")
	defer span.End()

	started := time.Now()
	defer func() {
		metrics.RecordSearch("posts", started, err)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "search failed")
		}
	}()

	query, err := validateQuery(req.Query, u.maxQueryLength, "SearchPostsUsecase")
	if err != nil {
		return nil, err
	}
	if req.Offset < 0 {
		return nil, apperrors.NewValidationContextError("offset must not be negative", "usecase", "SearchPostsUsecase", "Execute",
			map[string]interface{}{"offset": req.Offset})
	}
	limit, err := domain.NormalizePageSize(req.Limit, u.defaultLimit, u.maxLimit)
	if err != nil {
		return nil, apperrors.NewValidationContextError(err.Error(), "usecase", "SearchPostsUsecase", "Execute",
			map[string]interface{}{"limit": req.Limit})
	}

	viewerID := feed_scope.NormalizeViewer(req.ViewerID)
	predicates, err := feed_scope.Predicates("SearchPostsUsecase", req.Filter, viewerID, u.now())
	if err != nil {
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("search.offset", req.Offset),
		attribute.Int("search.limit", limit),
		attribute.Bool("search.anonymous", viewerID == nil),
	)

	hits, err := u.search.SearchPosts(ctx, query, req.Offset, limit+domain.PageLookahead)
	if err != nil {
		return nil, searchFailure(err, "SearchPostsUsecase")
	}

	hasNext := len(hits) > limit
	if hasNext {
		hits = hits[:limit]
	}

	ids := orderedIDs(hits)
	// Without hits, only a saved feed still needs the store to confirm ownership.
	if len(ids) == 0 && req.Filter.FeedID == "" {
		return domain.NewOffsetConnection(nil, req.Offset, hasNext), nil
	}

	posts, err := u.feedQuery.FetchPostsByIDs(ctx, ids, predicates, viewerID)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "failed to hydrate search hits", "error", err, "hits", len(ids))
		return nil, err
	}

	rows := reorder(ids, posts)
	if dropped := len(ids) - len(rows); dropped > 0 {
		metrics.RecordDroppedHits(dropped)
		logger.Logger.InfoContext(ctx, "dropped search hits during hydration", "dropped", dropped, "hits", len(ids))
	}

	return domain.NewOffsetConnection(rows, req.Offset, hasNext), nil
}

// orderedIDs keeps the first occurrence of each id.
func orderedIDs(hits []domain.SearchHit) []string {
	seen := make(map[string]struct{}, len(hits))
	ids := make([]string, 0, len(hits))
	for _, h := range hits {
		if _, dup := seen[h.ID]; dup || h.ID == "" {
			continue
		}
		seen[h.ID] = struct{}{}
		ids = append(ids, h.ID)
	}
	return ids
}

// reorder puts hydrated posts back in search order. Ids the store did not
// return are dropped and the remaining ranks keep their original positions.
func reorder(ids []string, posts []*domain.Post) []domain.RankedPost {
	byID := make(map[string]*domain.Post, len(posts))
	for _, p := range posts {
		byID[p.ID] = p
	}

	rows := make([]domain.RankedPost, 0, len(posts))
	for rank, id := range ids {
		if p, ok := byID[id]; ok {
			rows = append(rows, domain.RankedPost{Post: p, Rank: rank})
		}
	}
	return rows
}

func validateQuery(raw string, maxLength int, component string) (string, error) {
	query := search_text.NormalizeQuery(raw)
	if query == "" {
		return "", apperrors.NewValidationContextError("query must not be empty", "usecase", component, "Execute", nil)
	}
	if n := search_text.RuneLen(query); n > maxLength {
		return "", apperrors.NewValidationContextError("query is too long", "usecase", component, "Execute",
			map[string]interface{}{"length": n, "max_length": maxLength})
	}
	return query, nil
}

func searchFailure(err error, component string) error {
	var ctxErr *apperrors.AppContextError
	if errors.As(err, &ctxErr) {
		return err
	}
	return apperrors.NewSearchUnavailableError("usecase", component, "Execute", err, nil)
}
