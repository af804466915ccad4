// Package meilisearch_driver queries a Meilisearch index directly, as an
// alternative to going through the search-indexer service.
package meilisearch_driver

import (
	"context"
	"encoding/json"
	"fmt"

	"feedengine/domain"
	apperrors "feedengine/utils/errors"
	"feedengine/utils/logger"

	"github.com/meilisearch/meilisearch-go"
)

const (
	highlightPreTag  = "<mark>"
	highlightPostTag = "</mark>"
)

type MeilisearchDriver struct {
	index meilisearch.IndexManager
}

func NewMeilisearchDriver(client meilisearch.ServiceManager, indexName string) *MeilisearchDriver {
	return &MeilisearchDriver{index: client.Index(indexName)}
}

// NewMeilisearchClient builds the client the way the search-indexer does.
func NewMeilisearchClient(host, apiKey string) meilisearch.ServiceManager {
	return meilisearch.New(host, meilisearch.WithAPIKey(apiKey))
}

type postDocument struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Formatted struct {
		Title string `json:"title"`
	} `json:"_formatted"`
}

func (d *MeilisearchDriver) SearchPosts(ctx context.Context, query string, offset, limit int) ([]domain.SearchHit, error) {
	return d.search(ctx, "SearchPosts", query, &meilisearch.SearchRequest{
		Offset:                int64(offset),
		Limit:                 int64(limit),
		AttributesToRetrieve:  []string{"id", "title"},
		AttributesToHighlight: []string{"title"},
		HighlightPreTag:       highlightPreTag,
		HighlightPostTag:      highlightPostTag,
	})
}

func (d *MeilisearchDriver) SuggestPosts(ctx context.Context, query string, limit int) ([]domain.SearchHit, error) {
	return d.search(ctx, "SuggestPosts", query, &meilisearch.SearchRequest{
		Limit:                 int64(limit),
		AttributesToRetrieve:  []string{"id", "title"},
		AttributesToHighlight: []string{"title"},
		HighlightPreTag:       highlightPreTag,
		HighlightPostTag:      highlightPostTag,
	})
}

func (d *MeilisearchDriver) search(ctx context.Context, op, query string, req *meilisearch.SearchRequest) ([]domain.SearchHit, error) {
	result, err := d.index.SearchWithContext(ctx, query, req)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "meilisearch query failed", "error", err, "operation", op)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("%w: %w", apperrors.ErrSearchTimeout, err)
		}
		return nil, fmt.Errorf("%w: %w", apperrors.ErrSearchServiceUnavailable, err)
	}

	// Round-trip through JSON so the decoding does not depend on the hit
	// representation the client library chose.
	raw, err := json.Marshal(result.Hits)
	if err != nil {
		return nil, fmt.Errorf("%w: encode hits: %w", apperrors.ErrSearchServiceUnavailable, err)
	}
	var docs []postDocument
	if err := json.Unmarshal(raw, &docs); err != nil {
		return nil, fmt.Errorf("%w: decode hits: %w", apperrors.ErrSearchServiceUnavailable, err)
	}

	hits := make([]domain.SearchHit, 0, len(docs))
	for _, doc := range docs {
		if doc.ID == "" {
			continue
		}
		hits = append(hits, domain.SearchHit{
			ID:               doc.ID,
			Title:            doc.Title,
			HighlightedTitle: doc.Formatted.Title,
		})
	}
	return hits, nil
}
