package middleware

import (
	"net/http"

	"feedengine/domain"
	"feedengine/utils/logger"
	"feedengine/utils/rate_limiter"

	"github.com/labstack/echo/v4"
)

// RateLimitMiddleware throttles per viewer, or per client address for
// anonymous callers. It must run after ViewerMiddleware.
func RateLimitMiddleware(limiter *rate_limiter.KeyedRateLimiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := "ip:" + c.RealIP()
			if viewerID := domain.ViewerFromContext(c.Request().Context()); viewerID != nil {
				key = "viewer:" + *viewerID
			}

			if !limiter.Allow(key) {
				logger.Logger.WarnContext(c.Request().Context(), "rate limit exceeded",
					"path", c.Request().URL.Path,
					"key", key)
				c.Response().Header().Set("Retry-After", "1")
				return c.JSON(http.StatusTooManyRequests, map[string]string{
					"error":   "error",
					"code":    "RATE_LIMITED",
					"message": "too many requests",
				})
			}
			return next(c)
		}
	}
}
