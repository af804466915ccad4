package search_post_usecase

import (
	"context"
	"html"
	"time"

	"feedengine/domain"
	"feedengine/port/search_indexer_port"
	"feedengine/utils/metrics"
	appotel "feedengine/utils/otel"
	"feedengine/utils/search_text"
)

// SearchSuggestionsUsecase returns type-ahead titles straight from the search
// backend. Suggestions are not hydrated, so hidden posts may appear.
type SearchSuggestionsUsecase struct {
	search         search_indexer_port.SearchIndexerPort
	sanitizer      *search_text.HighlightSanitizer
	limit          int
	maxQueryLength int
}

func NewSearchSuggestionsUsecase(search search_indexer_port.SearchIndexerPort, limit, maxQueryLength int) *SearchSuggestionsUsecase {
	return &SearchSuggestionsUsecase{
		search:         search,
		sanitizer:      search_text.NewHighlightSanitizer(),
		limit:          limit,
		maxQueryLength: maxQueryLength,
	}
}

func (u *SearchSuggestionsUsecase) Execute(ctx context.Context, rawQuery string) (suggestions []domain.SearchSuggestion, err error) {
	ctx, span := appotel.Tracer().Start(ctx, "SearchSuggestionsUsecase.Execute")
	defer span.End()

	started := time.Now()
	defer func() { metrics.RecordSearch("suggestions", started, err) }()

	query, err := validateQuery(rawQuery, u.maxQueryLength, "SearchSuggestionsUsecase")
	if err != nil {
		return nil, err
	}

	hits, err := u.search.SuggestPosts(ctx, query, u.limit)
	if err != nil {
		span.RecordError(err)
		return nil, searchFailure(err, "SearchSuggestionsUsecase")
	}

	suggestions = make([]domain.SearchSuggestion, 0, len(hits))
	for _, hit := range hits {
		title := search_text.PlainText(hit.Title)
		highlighted := hit.HighlightedTitle
		if highlighted == "" {
			highlighted = html.EscapeString(title)
		}
		suggestions = append(suggestions, domain.SearchSuggestion{
			Title:            title,
			HighlightedTitle: u.sanitizer.Sanitize(highlighted),
		})
	}
	return suggestions, nil
}
