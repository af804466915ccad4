package domain

// FeedConfiguration is a saved, viewer-owned filter set. An empty list means
// the feed places no constraint on that axis.
type FeedConfiguration struct {
	ID        string
	UserID    string
	Name      string
	SourceIDs []string
	Tags      []string
}
