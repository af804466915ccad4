package rest

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"feedengine/domain"
	"feedengine/utils/errors"
	"feedengine/utils/logger"

	"github.com/labstack/echo/v4"
)

// handleError converts errors to HTTP responses, enriching them with REST
// layer context before logging.
func handleError(c echo.Context, err error, operation string) error {
	classified := errors.Classify(err, "rest", "RESTHandler", operation)

	enrichedErr := errors.EnrichWithContext(
		classified,
		"rest",
		"RESTHandler",
		operation,
		map[string]interface{}{
			"path":       c.Request().URL.Path,
			"method":     c.Request().Method,
			"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
		},
	)

	ctx := withOperation(c, operation)
	log := logger.NewContextLogger(logger.Logger).WithContext(ctx)
	status := enrichedErr.HTTPStatusCode()
	if status >= http.StatusInternalServerError {
		log.ErrorContext(ctx, "request failed",
			"code", enrichedErr.Code,
			"error", enrichedErr.Error(),
		)
	} else {
		log.WarnContext(ctx, "request rejected",
			"code", enrichedErr.Code,
			"error", enrichedErr.Error(),
		)
	}

	return c.JSON(status, enrichedErr.ToHTTPResponse())
}

// withOperation tags the request context with the handler's operation so the
// access log and error lines carry it.
func withOperation(c echo.Context, operation string) context.Context {
	ctx := c.Request().Context()
	if current, ok := ctx.Value(logger.OperationKey).(string); ok && current == operation {
		return ctx
	}
	ctx = logger.WithOperation(ctx, operation)
	c.SetRequest(c.Request().WithContext(ctx))
	return ctx
}

func badRequest(message, operation string, context map[string]interface{}) error {
	return errors.NewValidationContextError(message, "rest", "RESTHandler", operation, context)
}

// parseFilter reads the shared feed and search selectors. A list parameter
// that is present but empty stays non-nil so validation can reject it.
func parseFilter(c echo.Context, operation string) (domain.FeedFilter, error) {
	params := c.QueryParams()

	filter := domain.FeedFilter{
		SourceIDs: listParam(params, "source_ids"),
		Tags:      listParam(params, "tags"),
		SourceID:  strings.TrimSpace(params.Get("source")),
		Tag:       strings.TrimSpace(params.Get("tag")),
		FeedID:    strings.TrimSpace(params.Get("feed_id")),
	}

	if raw := params.Get("unread_only"); raw != "" {
		unread, err := strconv.ParseBool(raw)
		if err != nil {
			return filter, badRequest("unread_only must be a boolean", operation,
				map[string]interface{}{"unread_only": raw})
		}
		filter.UnreadOnly = unread
	}

	return filter, nil
}

// listParam accepts repeated and comma separated values.
func listParam(params map[string][]string, name string) []string {
	raw, ok := params[name]
	if !ok {
		return nil
	}

	values := make([]string, 0, len(raw))
	for _, v := range raw {
		if v == "" {
			continue
		}
		for _, part := range strings.Split(v, ",") {
			values = append(values, strings.TrimSpace(part))
		}
	}
	return values
}

// intParam returns 0 for an absent parameter.
func intParam(c echo.Context, name, operation string) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, badRequest(name+" must be an integer", operation, map[string]interface{}{name: raw})
	}
	return n, nil
}
