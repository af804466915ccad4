// Package report_event_port defines how first reports leave the engine.
package report_event_port

import (
	"context"

	"feedengine/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=report_event_port.go -destination=../../mocks/mock_report_event_port.go -package=mocks

type ReportEventPort interface {
	PublishPostReported(ctx context.Context, event domain.PostReportedEvent) error
	// IsEnabled returns true if event publishing is enabled.
	IsEnabled() bool
}
