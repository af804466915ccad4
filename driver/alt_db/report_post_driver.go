package alt_db

import (
	"context"
	"errors"
	"fmt"

	"feedengine/domain"
	apperrors "feedengine/utils/errors"
	"feedengine/utils/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	hideForReportQuery = `INSERT INTO hidden_post (user_id, post_id, created_at) VALUES ($1, $2, NOW())
		ON CONFLICT (user_id, post_id) DO NOTHING`
	insertPostReportQuery = `INSERT INTO post_report (user_id, post_id, reason, comment, created_at) VALUES ($1, $2, $3, $4, NOW())`
)

// ReportPost hides the post for the reporter and stores the report in one
// transaction. created is false when this viewer already reported the post.
func (r *AltDBRepository) ReportPost(ctx context.Context, report domain.PostReport) (created bool, err error) {
	if !r.available() {
		return false, errors.New("database connection not available")
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "Error starting transaction", "error", err)
		return false, fmt.Errorf("begin report transaction: %w", err)
	}
	committed := false
	defer func() {
		if committed {
			return
		}
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			logger.Logger.WarnContext(ctx, "Error rolling back transaction", "error", rbErr)
		}
	}()

	if _, err = tx.Exec(ctx, hideForReportQuery, report.ViewerID, report.PostID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return false, fmt.Errorf("post %s: %w", report.PostID, apperrors.ErrPostNotFound)
		}
		logger.Logger.ErrorContext(ctx, "error hiding reported post", "error", err, "post_id", report.PostID)
		return false, fmt.Errorf("hide reported post: %w", err)
	}

	var comment *string
	if report.Comment != "" {
		comment = &report.Comment
	}
	if _, err = tx.Exec(ctx, insertPostReportQuery, report.ViewerID, report.PostID, string(report.Reason), comment); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgUniqueViolation:
				logger.Logger.InfoContext(ctx, "post already reported", "post_id", report.PostID)
				return false, nil
			case pgForeignKeyViolation:
				return false, fmt.Errorf("post %s: %w", report.PostID, apperrors.ErrPostNotFound)
			}
		}
		logger.Logger.ErrorContext(ctx, "error inserting post report", "error", err, "post_id", report.PostID)
		return false, fmt.Errorf("insert post report: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		logger.Logger.ErrorContext(ctx, "Error committing transaction", "error", err)
		return false, fmt.Errorf("commit report transaction: %w", err)
	}
	committed = true

	return true, nil
}
