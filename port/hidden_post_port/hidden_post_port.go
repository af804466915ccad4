package hidden_post_port

import (
	"context"

	"feedengine/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=hidden_post_port.go -destination=../../mocks/mock_hidden_post_port.go -package=mocks

// HiddenPostPort records per-viewer hides. created is false when the pair was
// already hidden.
type HiddenPostPort interface {
	HidePost(ctx context.Context, viewerID, postID string) (created bool, err error)
	ReportPost(ctx context.Context, report domain.PostReport) (created bool, err error)
}
