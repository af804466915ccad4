package rest

import (
	"feedengine/config"
	"feedengine/di"
	middleware_custom "feedengine/middleware"
	"feedengine/utils/logger"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
)

func RegisterRoutes(e *echo.Echo, container *di.ApplicationComponents, cfg *config.Config) {
	// Server span first so every later middleware runs inside it.
	e.Use(otelecho.Middleware(cfg.OTel.ServiceName, otelecho.WithSkipper(func(c echo.Context) bool {
		return c.Path() == "/metrics" || c.Path() == "/v1/health"
	})))

	e.Use(middleware_custom.RequestIDMiddleware())
	e.Use(middleware.Recover())

	e.Use(middleware.SecureWithConfig(middleware.SecureConfig{
		XSSProtection:         "1; mode=block",
		ContentTypeNosniff:    "nosniff",
		XFrameOptions:         "DENY",
		HSTSMaxAge:            31536000,
		ContentSecurityPolicy: "default-src 'none'",
	}))

	if cfg.Server.RequestTimeout > 0 {
		e.Use(middleware.ContextTimeoutWithConfig(middleware.ContextTimeoutConfig{
			Timeout: cfg.Server.RequestTimeout,
		}))
	}

	e.Use(middleware_custom.ViewerMiddleware())
	e.Use(middleware_custom.LoggingMiddleware(logger.Logger))
	e.Use(middleware_custom.OTelStatusMiddleware())

	v1 := e.Group("/v1")

	registerHealthRoutes(e, v1)
	registerFeedRoutes(v1, container)
	registerSearchRoutes(v1, container)
	registerHideRoutes(v1, container)
}
