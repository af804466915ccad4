package alt_db

import (
	"context"
	"errors"
	"fmt"

	"feedengine/domain"
	"feedengine/utils/logger"
)

// FetchPostsByIDs hydrates search hits. Rows come back unordered and ids that
// fail the predicates are simply absent; callers restore the external order.
// With no ids, only a saved feed predicate still needs the store.
func (r *AltDBRepository) FetchPostsByIDs(ctx context.Context, ids []string, predicates []domain.Predicate, viewerID *string) ([]*domain.Post, error) {
	if !r.available() {
		return nil, errors.New("database connection not available")
	}
	if len(ids) == 0 {
		if err := r.checkSavedFeed(ctx, predicates); err != nil {
			return nil, err
		}
		return []*domain.Post{}, nil
	}

	args := &queryArgs{}
	args.bind(viewerID)
	idsParam := args.bind(ids)

	where, err := renderPredicates(args, predicates)
	if err != nil {
		return nil, fmt.Errorf("render hydration predicates: %w", err)
	}

	sql := postSelect + `
	WHERE p.id = ANY(` + idsParam + `)
	  AND ` + where

	rows, err := r.pool.Query(ctx, sql, args.values...)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "error hydrating posts", "error", err, "count", len(ids))
		return nil, fmt.Errorf("fetch posts by ids: %w", err)
	}
	defer rows.Close()

	posts := make([]*domain.Post, 0, len(ids))
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			logger.Logger.ErrorContext(ctx, "error scanning hydrated post", "error", err)
			return nil, fmt.Errorf("scan hydrated post: %w", err)
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		logger.Logger.ErrorContext(ctx, "error iterating hydrated posts", "error", err)
		return nil, fmt.Errorf("iterate hydrated posts: %w", err)
	}

	if len(posts) == 0 {
		if err := r.checkSavedFeed(ctx, predicates); err != nil {
			return nil, err
		}
	}

	if missing := len(ids) - len(posts); missing > 0 {
		logger.Logger.InfoContext(ctx, "some search hits did not hydrate", "requested", len(ids), "found", len(posts))
	}

	return posts, nil
}
