package hide_post_usecase

import (
	"context"
	"strings"
	"time"

	"feedengine/domain"
	"feedengine/port/hidden_post_port"
	"feedengine/port/report_event_port"
	apperrors "feedengine/utils/errors"
	"feedengine/utils/logger"
	"feedengine/utils/metrics"
	appotel "feedengine/utils/otel"
	"feedengine/utils/search_text"

	"go.opentelemetry.io/otel/attribute"
)

// HidePostUsecase hides and reports posts for a viewer. Both operations are
// idempotent per (viewer, post).
type HidePostUsecase struct {
	hiddenPosts hidden_post_port.HiddenPostPort
	events      report_event_port.ReportEventPort
	now         func() time.Time
}

func NewHidePostUsecase(hiddenPosts hidden_post_port.HiddenPostPort, events report_event_port.ReportEventPort) *HidePostUsecase {
	return &HidePostUsecase{hiddenPosts: hiddenPosts, events: events, now: time.Now}
}

// Hide succeeds whether or not the post was already hidden.
func (u *HidePostUsecase) Hide(ctx context.Context, viewerID *string, postID string) error {
	ctx, span := appotel.Tracer().Start(ctx, "HidePostUsecase.Hide")
	defer span.End()

	viewer, err := requireViewer(viewerID, "Hide")
	if err != nil {
		return err
	}
	if err := requirePostID(postID, "Hide"); err != nil {
		return err
	}

	created, err := u.hiddenPosts.HidePost(ctx, viewer, postID)
	if err != nil {
		metrics.RecordHide("hide", "error")
		span.RecordError(err)
		logger.Logger.ErrorContext(ctx, "failed to hide post", "error", err, "post_id", postID)
		return err
	}

	span.SetAttributes(attribute.Bool("hide.created", created))
	metrics.RecordHide("hide", resultLabel(created))
	logger.Logger.InfoContext(ctx, "post hidden", "post_id", postID, "created", created)
	return nil
}

// Report hides the post and records the report. Only the first report of a
// (viewer, post) pair publishes a notification. A failed publish is logged
// and does not fail the report.
func (u *HidePostUsecase) Report(ctx context.Context, viewerID *string, postID, rawReason, comment string) error {
	ctx, span := appotel.Tracer().Start(ctx, "HidePostUsecase.Report")
	defer span.End()

	viewer, err := requireViewer(viewerID, "Report")
	if err != nil {
		return err
	}
	if err := requirePostID(postID, "Report"); err != nil {
		return err
	}

	reason, err := domain.ParseReportReason(rawReason)
	if err != nil {
		return apperrors.NewValidationContextError(err.Error(), "usecase", "HidePostUsecase", "Report",
			map[string]interface{}{"reason": rawReason})
	}

	comment = strings.TrimSpace(search_text.PlainText(comment))
	if n := search_text.RuneLen(comment); n > domain.MaxReportCommentLength {
		return apperrors.NewValidationContextError("comment is too long", "usecase", "HidePostUsecase", "Report",
			map[string]interface{}{"length": n, "max_length": domain.MaxReportCommentLength})
	}

	created, err := u.hiddenPosts.ReportPost(ctx, domain.PostReport{
		ViewerID: viewer,
		PostID:   postID,
		Reason:   reason,
		Comment:  comment,
	})
	if err != nil {
		metrics.RecordHide("report", "error")
		span.RecordError(err)
		logger.Logger.ErrorContext(ctx, "failed to report post", "error", err, "post_id", postID)
		return err
	}

	span.SetAttributes(attribute.Bool("report.created", created))
	metrics.RecordHide("report", resultLabel(created))
	if !created {
		logger.Logger.InfoContext(ctx, "post already reported", "post_id", postID)
		return nil
	}

	if u.events != nil && u.events.IsEnabled() {
		pubErr := u.events.PublishPostReported(ctx, domain.PostReportedEvent{
			PostID:     postID,
			ViewerID:   viewer,
			Reason:     reason,
			Comment:    comment,
			ReportedAt: u.now().UTC(),
		})
		metrics.RecordReportEvent(pubErr)
		if pubErr != nil {
			logger.Logger.WarnContext(ctx, "report notification failed", "error", pubErr, "post_id", postID)
		}
	}

	logger.Logger.InfoContext(ctx, "post reported", "post_id", postID, "reason", reason)
	return nil
}

func requireViewer(viewerID *string, op string) (string, error) {
	if viewerID == nil || *viewerID == "" {
		return "", apperrors.NewUnauthorizedError("usecase", "HidePostUsecase", op, nil)
	}
	return *viewerID, nil
}

func requirePostID(postID, op string) error {
	if strings.TrimSpace(postID) == "" {
		return apperrors.NewValidationContextError("post id is required", "usecase", "HidePostUsecase", op, nil)
	}
	return nil
}

func resultLabel(created bool) string {
	if created {
		return "created"
	}
	return "existing"
}
