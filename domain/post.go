package domain

import "time"

// Source is the origin a post was collected from.
type Source struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Image *string `json:"image,omitempty"`
}

// Post is a feed item. Read and Bookmarked are projected per viewer and are
// always false for anonymous requests.
type Post struct {
	ID          string     `json:"id"`
	SourceID    string     `json:"sourceId"`
	Title       string     `json:"title"`
	URL         string     `json:"url"`
	Image       *string    `json:"image,omitempty"`
	Placeholder *string    `json:"placeholder,omitempty"`
	Ratio       *float64   `json:"ratio,omitempty"`
	ReadTime    *int       `json:"readTime,omitempty"`
	PublishedAt *time.Time `json:"publishedAt"`
	CreatedAt   time.Time  `json:"createdAt"`
	Score       float64    `json:"score"`
	Tags        []string   `json:"tags"`
	Read        bool       `json:"read"`
	Bookmarked  bool       `json:"bookmarked"`
	Source      Source     `json:"source"`
}

// SearchHit is one identifier returned by the search collaborator, in its
// relevance order.
type SearchHit struct {
	ID               string
	Title            string
	HighlightedTitle string
}

// SearchSuggestion is a type-ahead result. It is never hydrated from the store.
type SearchSuggestion struct {
	Title            string `json:"title"`
	HighlightedTitle string `json:"highlightedTitle"`
}
