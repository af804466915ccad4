package domain

import "context"

type contextKey string

const viewerContextKey contextKey = "viewer_id"

// WithViewer stores the opaque viewer id supplied by the calling layer.
func WithViewer(ctx context.Context, viewerID string) context.Context {
	return context.WithValue(ctx, viewerContextKey, viewerID)
}

// ViewerFromContext returns the viewer id, or nil for anonymous requests.
func ViewerFromContext(ctx context.Context) *string {
	viewerID, ok := ctx.Value(viewerContextKey).(string)
	if !ok || viewerID == "" {
		return nil
	}
	return &viewerID
}
