package rest

import (
	"net/http"

	"feedengine/di"
	"feedengine/domain"
	middleware_custom "feedengine/middleware"

	"github.com/labstack/echo/v4"
)

func registerSearchRoutes(v1 *echo.Group, container *di.ApplicationComponents) {
	search := v1.Group("/search")
	if container.SearchRateLimiter != nil {
		search.Use(middleware_custom.RateLimitMiddleware(container.SearchRateLimiter))
	}

	search.GET("", handleSearchPosts(container))
	search.GET("/suggestions", handleSearchSuggestions(container))
}

func handleSearchPosts(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		const operation = "SearchPosts"
		withOperation(c, operation)

		filter, err := parseFilter(c, operation)
		if err != nil {
			return handleError(c, err, operation)
		}
		offset, err := intParam(c, "offset", operation)
		if err != nil {
			return handleError(c, err, operation)
		}
		limit, err := intParam(c, "limit", operation)
		if err != nil {
			return handleError(c, err, operation)
		}

		ctx := c.Request().Context()
		conn, err := container.SearchPostsUsecase.Execute(ctx, domain.SearchRequest{
			Query:    c.QueryParam("q"),
			Filter:   filter,
			Offset:   offset,
			Limit:    limit,
			ViewerID: domain.ViewerFromContext(ctx),
		})
		if err != nil {
			return handleError(c, err, operation)
		}

		c.Response().Header().Set("Cache-Control", "private, no-store")
		return c.JSON(http.StatusOK, conn)
	}
}

func handleSearchSuggestions(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		const operation = "SearchSuggestions"
		withOperation(c, operation)

		suggestions, err := container.SearchSuggestionsUsecase.Execute(c.Request().Context(), c.QueryParam("q"))
		if err != nil {
			return handleError(c, err, operation)
		}

		// Suggestions are not viewer specific.
		c.Response().Header().Set("Cache-Control", "public, max-age=60")
		return c.JSON(http.StatusOK, map[string]interface{}{"suggestions": suggestions})
	}
}
