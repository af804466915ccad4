package rest

import (
	"net/http"

	"feedengine/di"
	"feedengine/domain"

	"github.com/labstack/echo/v4"
)

type reportPostRequest struct {
	Reason  string `json:"reason"`
	Comment string `json:"comment"`
}

func registerHideRoutes(v1 *echo.Group, container *di.ApplicationComponents) {
	v1.POST("/posts/:id/hide", handleHidePost(container))
	v1.POST("/posts/:id/report", handleReportPost(container))
}

func handleHidePost(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		const operation = "HidePost"
		withOperation(c, operation)

		ctx := c.Request().Context()
		if err := container.HidePostUsecase.Hide(ctx, domain.ViewerFromContext(ctx), c.Param("id")); err != nil {
			return handleError(c, err, operation)
		}
		return c.JSON(http.StatusOK, map[string]bool{"success": true})
	}
}

func handleReportPost(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		const operation = "ReportPost"
		withOperation(c, operation)

		var req reportPostRequest
		if err := c.Bind(&req); err != nil {
			return handleError(c, badRequest("invalid request body", operation, nil), operation)
		}

		ctx := c.Request().Context()
		err := container.HidePostUsecase.Report(ctx, domain.ViewerFromContext(ctx), c.Param("id"), req.Reason, req.Comment)
		if err != nil {
			return handleError(c, err, operation)
		}
		return c.JSON(http.StatusOK, map[string]bool{"success": true})
	}
}
