package domain

import (
	"fmt"
	"time"

	apperrors "feedengine/utils/errors"
)

type PredicateKind string

const (
	PredicatePublishedVisible PredicateKind = "published_visible"
	PredicateNotHidden        PredicateKind = "not_hidden"
	PredicateSourceIn         PredicateKind = "source_in"
	PredicateTagIn            PredicateKind = "tag_in"
	PredicateUnread           PredicateKind = "unread"
	PredicateSavedFeed        PredicateKind = "saved_feed"
	PredicateAfterCursor      PredicateKind = "after_cursor"
)

// Predicate is one term of the conjunction applied to a post query. Only the
// fields relevant to Kind are set; the store driver turns each term into SQL
// with positional arguments.
type Predicate struct {
	Kind     PredicateKind
	Values   []string
	FeedID   string
	ViewerID string
	Cutoff   time.Time
	Columns  []SortColumn
	Key      CursorKey
}

func PublishedVisible(now time.Time) Predicate {
	return Predicate{Kind: PredicatePublishedVisible, Cutoff: now}
}

// NotHidden excludes posts the viewer hid or reported.
func NotHidden(viewerID string) Predicate {
	return Predicate{Kind: PredicateNotHidden, ViewerID: viewerID}
}

func SourceIn(ids ...string) Predicate {
	return Predicate{Kind: PredicateSourceIn, Values: ids}
}

func TagIn(tags ...string) Predicate {
	return Predicate{Kind: PredicateTagIn, Values: tags}
}

func Unread(viewerID string) Predicate {
	return Predicate{Kind: PredicateUnread, ViewerID: viewerID}
}

// SavedFeed keeps posts matching the sources and tags of a feed owned by
// viewerID. An empty source or tag list on the feed leaves that axis open, and
// a feed the viewer does not own matches nothing.
func SavedFeed(feedID, viewerID string) Predicate {
	return Predicate{Kind: PredicateSavedFeed, FeedID: feedID, ViewerID: viewerID}
}

// SavedFeedOf returns the saved feed term of preds, if any.
func SavedFeedOf(preds []Predicate) (Predicate, bool) {
	for _, p := range preds {
		if p.Kind == PredicateSavedFeed {
			return p, true
		}
	}
	return Predicate{}, false
}

// BuildFeedPredicates turns a filter into the ordered predicate list shared by
// the feed and search hydration queries. Visibility always comes first and the
// hidden set is excluded whenever a viewer is present. A saved feed is resolved
// inside the same store query, so no lookup happens here.
func BuildFeedPredicates(filter FeedFilter, viewerID *string, now time.Time) ([]Predicate, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	viewer := ""
	if viewerID != nil {
		viewer = *viewerID
	}
	// Saved feeds are private, so an anonymous caller cannot see any.
	if filter.FeedID != "" && viewer == "" {
		return nil, fmt.Errorf("saved feed %q: %w", filter.FeedID, apperrors.ErrFeedNotFound)
	}

	preds := []Predicate{PublishedVisible(now)}
	if viewer != "" {
		preds = append(preds, NotHidden(viewer))
	}

	if filter.SourceIDs != nil {
		preds = append(preds, SourceIn(filter.SourceIDs...))
	}
	if filter.SourceID != "" {
		preds = append(preds, SourceIn(filter.SourceID))
	}
	if filter.Tags != nil {
		preds = append(preds, TagIn(filter.Tags...))
	}
	if filter.Tag != "" {
		preds = append(preds, TagIn(filter.Tag))
	}

	if filter.FeedID != "" {
		preds = append(preds, SavedFeed(filter.FeedID, viewer))
	}

	// Anonymous viewers have no read marks, so the selector is a no-op for them.
	if filter.UnreadOnly && viewer != "" {
		preds = append(preds, Unread(viewer))
	}

	return preds, nil
}
