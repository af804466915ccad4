package search_indexer

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
)

const (
	searchPath     = "/v1/search"
	suggestionPath = "/v1/search/suggestions"
	userAgent      = "feedengine/1.0"
)

// searchResponse is the search-indexer's JSON body for both endpoints.
type searchResponse struct {
	Query string      `json:"query"`
	Hits  []searchHit `json:"hits"`
}

type searchHit struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	HighlightedTitle string `json:"highlighted_title"`
}

// BuildSearchURL joins baseURL and path and encodes params as the query string.
func BuildSearchURL(baseURL, path string, params url.Values) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid base URL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("invalid base URL: %q", baseURL)
	}

	u.Path = strings.TrimRight(u.Path, "/") + path
	u.RawQuery = params.Encode()

	return u.String(), nil
}

func searchParams(query string, offset, limit int) url.Values {
	vals := url.Values{}
	vals.Set("q", query)
	vals.Set("offset", strconv.Itoa(offset))
	vals.Set("limit", strconv.Itoa(limit))
	return vals
}

// isTimeoutError checks if the error is a timeout error
func isTimeoutError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
