package alt_db

import (
	"context"
	"errors"
	"fmt"

	apperrors "feedengine/utils/errors"
	"feedengine/utils/logger"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

const insertHiddenPostQuery = `INSERT INTO hidden_post (user_id, post_id, created_at) VALUES ($1, $2, NOW())`

// HidePost records a hide. A duplicate is not an error: created is false and
// the existing row stays the only one.
func (r *AltDBRepository) HidePost(ctx context.Context, viewerID, postID string) (bool, error) {
	if !r.available() {
		return false, errors.New("database connection not available")
	}

	_, err := r.pool.Exec(ctx, insertHiddenPostQuery, viewerID, postID)
	if err == nil {
		return true, nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			logger.Logger.InfoContext(ctx, "post already hidden", "post_id", postID)
			return false, nil
		case pgForeignKeyViolation:
			return false, fmt.Errorf("post %s: %w", postID, apperrors.ErrPostNotFound)
		}
	}

	logger.Logger.ErrorContext(ctx, "error hiding post", "error", err, "post_id", postID)
	return false, fmt.Errorf("hide post: %w", err)
}
