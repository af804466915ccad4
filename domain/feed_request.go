package domain

// FeedRequest is the input of the feed assembler.
type FeedRequest struct {
	Filter   FeedFilter
	SortBy   SortBy
	Cursor   string
	PageSize int
	ViewerID *string
}

// SearchRequest is the input of the search hydrator. Offset and Limit page
// through the collaborator's relevance order.
type SearchRequest struct {
	Query    string
	Filter   FeedFilter
	Offset   int
	Limit    int
	ViewerID *string
}

// FeedQuery is what the store executor runs for one feed page.
type FeedQuery struct {
	Predicates []Predicate
	Ranking    RankingStrategy
	Limit      int
	ViewerID   *string
}
