package alt_db

import (
	"context"
	"errors"
	"fmt"

	"feedengine/domain"
	"feedengine/utils/logger"
)

// FetchFeedPage runs one keyset page. query.Limit already includes the
// lookahead row.
func (r *AltDBRepository) FetchFeedPage(ctx context.Context, query domain.FeedQuery) ([]*domain.Post, error) {
	if !r.available() {
		return nil, errors.New("database connection not available")
	}
	if query.Ranking == nil {
		return nil, errors.New("ranking strategy is required")
	}
	if query.Limit < 1 {
		return nil, fmt.Errorf("invalid limit %d", query.Limit)
	}

	args := &queryArgs{}
	args.bind(query.ViewerID)

	where, err := renderPredicates(args, query.Predicates)
	if err != nil {
		return nil, fmt.Errorf("render feed predicates: %w", err)
	}
	orderBy, err := renderOrderBy(query.Ranking.Columns())
	if err != nil {
		return nil, fmt.Errorf("render feed order: %w", err)
	}
	limit := args.bind(query.Limit)

	sql := postSelect + `
	WHERE ` + where + `
	ORDER BY ` + orderBy + `
	LIMIT ` + limit

	rows, err := r.pool.Query(ctx, sql, args.values...)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "error fetching feed page", "error", err, "sort_by", query.Ranking.Sort())
		return nil, fmt.Errorf("fetch feed page: %w", err)
	}
	defer rows.Close()

	posts := make([]*domain.Post, 0, query.Limit)
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			logger.Logger.ErrorContext(ctx, "error scanning feed row", "error", err)
			return nil, fmt.Errorf("scan feed row: %w", err)
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		logger.Logger.ErrorContext(ctx, "error iterating feed rows", "error", err)
		return nil, fmt.Errorf("iterate feed rows: %w", err)
	}

	if len(posts) == 0 {
		if err := r.checkSavedFeed(ctx, query.Predicates); err != nil {
			return nil, err
		}
	}

	logger.Logger.DebugContext(ctx, "fetched feed page", "count", len(posts), "sort_by", query.Ranking.Sort())
	return posts, nil
}
