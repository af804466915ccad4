package rest

import (
	"net/http"

	"feedengine/di"
	"feedengine/domain"

	"github.com/labstack/echo/v4"
)

func registerFeedRoutes(v1 *echo.Group, container *di.ApplicationComponents) {
	v1.GET("/feed", handleGetFeed(container))
}

func handleGetFeed(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		const operation = "GetFeed"
		withOperation(c, operation)

		filter, err := parseFilter(c, operation)
		if err != nil {
			return handleError(c, err, operation)
		}
		pageSize, err := intParam(c, "page_size", operation)
		if err != nil {
			return handleError(c, err, operation)
		}

		ctx := c.Request().Context()
		conn, err := container.FetchFeedUsecase.Execute(ctx, domain.FeedRequest{
			Filter:   filter,
			SortBy:   domain.SortBy(c.QueryParam("sort_by")),
			Cursor:   c.QueryParam("cursor"),
			PageSize: pageSize,
			ViewerID: domain.ViewerFromContext(ctx),
		})
		if err != nil {
			return handleError(c, err, operation)
		}

		// Per-viewer projections must not be shared by caches.
		c.Response().Header().Set("Cache-Control", "private, no-store")
		return c.JSON(http.StatusOK, conn)
	}
}
