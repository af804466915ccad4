// Package report_event_gateway publishes report notifications.
package report_event_gateway

import (
	"context"
	"log/slog"

	"feedengine/domain"
	"feedengine/driver/redis_stream"
)

// ReportEventGateway implements ReportEventPort using a Redis Stream.
type ReportEventGateway struct {
	publisher *redis_stream.Publisher
	logger    *slog.Logger
}

func NewReportEventGateway(publisher *redis_stream.Publisher, logger *slog.Logger) *ReportEventGateway {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReportEventGateway{publisher: publisher, logger: logger}
}

// PublishPostReported publishes a PostReported event.
func (g *ReportEventGateway) PublishPostReported(ctx context.Context, event domain.PostReportedEvent) error {
	if !g.IsEnabled() {
		return nil
	}

	messageID, err := g.publisher.PublishPostReported(ctx, event)
	if err != nil {
		g.logger.ErrorContext(ctx, "failed to publish PostReported event",
			"post_id", event.PostID,
			"error", err,
		)
		return err
	}

	g.logger.InfoContext(ctx, "published PostReported event",
		"post_id", event.PostID,
		"message_id", messageID,
	)
	return nil
}

// IsEnabled returns true if event publishing is enabled.
func (g *ReportEventGateway) IsEnabled() bool {
	return g.publisher.IsEnabled()
}
