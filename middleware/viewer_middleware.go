package middleware

import (
	"context"
	"strings"

	"feedengine/domain"
	"feedengine/utils/logger"

	"github.com/labstack/echo/v4"
)

// ViewerHeader carries the opaque viewer id set by the calling layer.
const ViewerHeader = "X-Viewer-ID"

const maxViewerIDLength = 128

// ViewerMiddleware copies the viewer id into the request context. A missing
// or oversized header leaves the request anonymous.
func ViewerMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			viewerID := strings.TrimSpace(c.Request().Header.Get(ViewerHeader))
			if viewerID == "" || len(viewerID) > maxViewerIDLength {
				return next(c)
			}

			ctx := domain.WithViewer(c.Request().Context(), viewerID)
			ctx = context.WithValue(ctx, logger.ViewerIDKey, viewerID)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}
