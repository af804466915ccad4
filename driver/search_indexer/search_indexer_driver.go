package search_indexer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"feedengine/domain"
	apperrors "feedengine/utils/errors"
	"feedengine/utils/logger"
)

// HTTPSearchIndexerDriver talks to the search-indexer service over HTTP.
type HTTPSearchIndexerDriver struct {
	baseURL string
	client  *http.Client
}

func NewHTTPSearchIndexerDriver(baseURL string, timeout time.Duration) *HTTPSearchIndexerDriver {
	return NewHTTPSearchIndexerDriverWithClient(baseURL, &http.Client{Timeout: timeout})
}

func NewHTTPSearchIndexerDriverWithClient(baseURL string, client *http.Client) *HTTPSearchIndexerDriver {
	return &HTTPSearchIndexerDriver{baseURL: baseURL, client: client}
}

// SearchPosts returns hits in relevance order starting at offset.
func (d *HTTPSearchIndexerDriver) SearchPosts(ctx context.Context, query string, offset, limit int) ([]domain.SearchHit, error) {
	target, err := BuildSearchURL(d.baseURL, searchPath, searchParams(query, offset, limit))
	if err != nil {
		return nil, err
	}
	return d.fetch(ctx, target)
}

// SuggestPosts returns title suggestions for a partial query.
func (d *HTTPSearchIndexerDriver) SuggestPosts(ctx context.Context, query string, limit int) ([]domain.SearchHit, error) {
	vals := url.Values{}
	vals.Set("q", query)
	vals.Set("limit", strconv.Itoa(limit))

	target, err := BuildSearchURL(d.baseURL, suggestionPath, vals)
	if err != nil {
		return nil, err
	}
	return d.fetch(ctx, target)
}

func (d *HTTPSearchIndexerDriver) fetch(ctx context.Context, target string) ([]domain.SearchHit, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "Failed to create request", "error", err)
		return nil, fmt.Errorf("create search request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := d.client.Do(req)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "Failed to send request", "error", err)
		if isTimeoutError(err) {
			return nil, fmt.Errorf("%w: %w", apperrors.ErrSearchTimeout, err)
		}
		return nil, fmt.Errorf("%w: %w", apperrors.ErrSearchServiceUnavailable, err)
	}

	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			logger.Logger.DebugContext(ctx, "Failed to close response body", "error", closeErr)
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "Failed to read response body", "error", err)
		return nil, fmt.Errorf("%w: read body: %w", apperrors.ErrSearchServiceUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		logger.Logger.ErrorContext(ctx, "Search request failed", "status", resp.StatusCode, "body", string(body))
		return nil, fmt.Errorf("%w: status %d", apperrors.ErrSearchServiceUnavailable, resp.StatusCode)
	}

	var response searchResponse
	if err := json.Unmarshal(body, &response); err != nil {
		logger.Logger.ErrorContext(ctx, "Failed to unmarshal response body", "error", err, "body_preview", string(body))
		return nil, fmt.Errorf("%w: decode body: %w", apperrors.ErrSearchServiceUnavailable, err)
	}

	results := make([]domain.SearchHit, 0, len(response.Hits))
	for _, hit := range response.Hits {
		if hit.ID == "" {
			continue
		}
		results = append(results, domain.SearchHit{
			ID:               hit.ID,
			Title:            hit.Title,
			HighlightedTitle: hit.HighlightedTitle,
		})
	}

	logger.Logger.DebugContext(ctx, "Search response received", "hits", len(results))
	return results, nil
}
