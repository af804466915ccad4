package fetch_feed_usecase

import (
	"context"
	"time"

	"feedengine/domain"
	"feedengine/port/feed_query_port"
	"feedengine/usecase/feed_scope"
	apperrors "feedengine/utils/errors"
	"feedengine/utils/logger"
	"feedengine/utils/metrics"
	appotel "feedengine/utils/otel"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// FetchFeedUsecase assembles one keyset page of the ranked feed.
type FetchFeedUsecase struct {
	feedQuery       feed_query_port.FeedQueryPort
	defaultPageSize int
	maxPageSize     int
	now             func() time.Time
}

func NewFetchFeedUsecase(feedQuery feed_query_port.FeedQueryPort, defaultPageSize, maxPageSize int) *FetchFeedUsecase {
	return &FetchFeedUsecase{
		feedQuery:       feedQuery,
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
		now:             time.Now,
	}
}

// WithClock replaces the visibility cutoff source.
func (u *FetchFeedUsecase) WithClock(now func() time.Time) *FetchFeedUsecase {
	u.now = now
	return u
}

func (u *FetchFeedUsecase) Execute(ctx context.Context, req domain.FeedRequest) (conn *domain.PostConnection, err error) {
	ctx, span := appotel.Tracer().Start(ctx, "FetchFeedUsecase.Execute")
	defer span.End()

	started := time.Now()
	sortLabel := "invalid"
	defer func() {
		metrics.RecordFeedPage(sortLabel, started, err)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "fetch feed failed")
		}
	}()

	pageSize, err := domain.NormalizePageSize(req.PageSize, u.defaultPageSize, u.maxPageSize)
	if err != nil {
		return nil, apperrors.NewValidationContextError(err.Error(), "usecase", "FetchFeedUsecase", "Execute",
			map[string]interface{}{"page_size": req.PageSize})
	}

	sortBy, err := domain.ParseSortBy(string(req.SortBy))
	if err != nil {
		return nil, apperrors.NewValidationContextError(err.Error(), "usecase", "FetchFeedUsecase", "Execute",
			map[string]interface{}{"sort_by": string(req.SortBy)})
	}
	sortLabel = string(sortBy)

	ranking, err := domain.RankingFor(sortBy)
	if err != nil {
		return nil, apperrors.Classify(err, "usecase", "FetchFeedUsecase", "Execute")
	}

	var (
		key       domain.CursorKey
		hasCursor = req.Cursor != ""
	)
	if hasCursor {
		key, err = ranking.DecodeCursor(req.Cursor)
		if err != nil {
			logger.Logger.WarnContext(ctx, "rejected feed cursor", "error", err, "sort_by", sortBy)
			return nil, apperrors.NewInvalidCursorError("usecase", "FetchFeedUsecase", "Execute", err,
				map[string]interface{}{"sort_by": string(sortBy)})
		}
	}

	viewerID := feed_scope.NormalizeViewer(req.ViewerID)
	predicates, err := feed_scope.Predicates("FetchFeedUsecase", req.Filter, viewerID, u.now())
	if err != nil {
		return nil, err
	}
	if hasCursor {
		predicates = append(predicates, ranking.BoundaryPredicate(key))
	}

	span.SetAttributes(
		attribute.String("feed.sort_by", string(sortBy)),
		attribute.Int("feed.page_size", pageSize),
		attribute.Bool("feed.has_cursor", hasCursor),
		attribute.Bool("feed.anonymous", viewerID == nil),
	)

	rows, err := u.feedQuery.FetchFeedPage(ctx, domain.FeedQuery{
		Predicates: predicates,
		Ranking:    ranking,
		Limit:      pageSize + domain.PageLookahead,
		ViewerID:   viewerID,
	})
	if err != nil {
		logger.Logger.ErrorContext(ctx, "failed to fetch feed page", "error", err, "sort_by", sortBy, "page_size", pageSize)
		return nil, err
	}

	conn = domain.NewKeysetConnection(rows, pageSize, ranking)

	logger.Logger.InfoContext(ctx, "fetched feed page",
		"sort_by", sortBy,
		"count", len(conn.Edges),
		"has_next_page", conn.PageInfo.HasNextPage)
	return conn, nil
}
