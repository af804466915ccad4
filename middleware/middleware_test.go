package middleware

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"feedengine/domain"
	"feedengine/utils/logger"
	"feedengine/utils/rate_limiter"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func serve(e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRequestIDMiddleware(t *testing.T) {
	e := echo.New()
	e.Use(RequestIDMiddleware())

	var seen string
	e.GET("/", func(c echo.Context) error {
		seen, _ = c.Request().Context().Value(logger.RequestIDKey).(string)
		return c.NoContent(http.StatusOK)
	})

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(echo.HeaderXRequestID))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderXRequestID, "req-123")
	rec = serve(e, req)
	assert.Equal(t, "req-123", seen)
	assert.Equal(t, "req-123", rec.Header().Get(echo.HeaderXRequestID))
}

func TestViewerMiddleware(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   *string
	}{
		{name: "viewer present", header: "v1", want: func() *string { s := "v1"; return &s }()},
		{name: "missing header is anonymous", header: ""},
		{name: "whitespace is anonymous", header: "   "},
		{name: "oversized id is anonymous", header: string(bytes.Repeat([]byte("x"), 200))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			e.Use(ViewerMiddleware())

			var got *string
			e.GET("/", func(c echo.Context) error {
				got = domain.ViewerFromContext(c.Request().Context())
				return c.NoContent(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(ViewerHeader, tt.header)
			}
			serve(e, req)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	e := echo.New()
	e.Use(ViewerMiddleware())
	e.Use(RateLimitMiddleware(rate_limiter.NewKeyedRateLimiter(0.001, 2)))
	e.GET("/", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	request := func(viewer string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(ViewerHeader, viewer)
		return serve(e, req).Code
	}

	assert.Equal(t, http.StatusOK, request("v1"))
	assert.Equal(t, http.StatusOK, request("v1"))
	assert.Equal(t, http.StatusTooManyRequests, request("v1"))
	assert.Equal(t, http.StatusOK, request("v2"), "buckets are per viewer")
}

func TestLoggingMiddleware_LevelsByStatus(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	e := echo.New()
	e.Use(RequestIDMiddleware())
	e.Use(LoggingMiddleware(base))
	e.GET("/boom", func(c echo.Context) error { return c.NoContent(http.StatusInternalServerError) })
	e.GET("/v1/health", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	serve(e, httptest.NewRequest(http.MethodGet, "/v1/health", nil))
	assert.Empty(t, buf.String())

	serve(e, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Contains(t, buf.String(), `"level":"ERROR"`)
	assert.Contains(t, buf.String(), `"request_id"`)
}

func TestOTelStatusMiddleware(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	defer func() { _ = tp.Shutdown(context.Background()) }()

	e := echo.New()
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx, span := tp.Tracer("test").Start(c.Request().Context(), "request")
			defer span.End()
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	})
	e.Use(OTelStatusMiddleware())
	e.GET("/fail", func(c echo.Context) error { return c.NoContent(http.StatusServiceUnavailable) })
	e.GET("/bad", func(c echo.Context) error { return c.NoContent(http.StatusBadRequest) })

	serve(e, httptest.NewRequest(http.MethodGet, "/fail", nil))
	serve(e, httptest.NewRequest(http.MethodGet, "/bad", nil))

	spans := recorder.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, codes.Unset, spans[1].Status().Code)
}
