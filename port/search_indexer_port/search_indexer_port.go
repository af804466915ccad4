package search_indexer_port

import (
	"context"

	"feedengine/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=search_indexer_port.go -destination=../../mocks/mock_search_indexer_port.go -package=mocks

// SearchIndexerPort is the external full text search collaborator. Hits come
// back in the collaborator's relevance order.
type SearchIndexerPort interface {
	SearchPosts(ctx context.Context, query string, offset, limit int) ([]domain.SearchHit, error)
	SuggestPosts(ctx context.Context, query string, limit int) ([]domain.SearchHit, error)
}
