// Package testutil holds in-memory ports and fixtures for usecase tests.
package testutil

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"feedengine/domain"
	apperrors "feedengine/utils/errors"
)

// BaseTime anchors fixture timestamps.
var BaseTime = time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)

// Common error instances
var (
	ErrStoreDown  = errors.New("store unavailable")
	ErrSearchDown = errors.New("search backend unavailable")
)

func StrPtr(s string) *string { return &s }

// NewPost builds a published post. minutesAgo is relative to BaseTime.
func NewPost(id, sourceID string, score float64, minutesAgo int, tags ...string) *domain.Post {
	published := BaseTime.Add(-time.Duration(minutesAgo) * time.Minute)
	if tags == nil {
		tags = []string{}
	}
	return &domain.Post{
		ID:          id,
		SourceID:    sourceID,
		Title:       "Post " + id,
		URL:         "https://example.com/" + id,
		PublishedAt: &published,
		CreatedAt:   published,
		Score:       score,
		Tags:        tags,
		Source:      domain.Source{ID: sourceID, Name: strings.ToUpper(sourceID)},
	}
}

// MemoryStore evaluates domain predicates over an in-memory post set. It
// implements FeedQueryPort and HiddenPostPort.
type MemoryStore struct {
	mu       sync.Mutex
	posts    []*domain.Post
	feeds    map[string]domain.FeedConfiguration
	hidden   map[string]map[string]bool
	reads    map[string]map[string]bool
	reported map[string]map[string]bool

	FeedPageCalls int
	HydrateCalls  int
}

func NewMemoryStore(posts ...*domain.Post) *MemoryStore {
	return &MemoryStore{
		posts:    posts,
		feeds:    map[string]domain.FeedConfiguration{},
		hidden:   map[string]map[string]bool{},
		reads:    map[string]map[string]bool{},
		reported: map[string]map[string]bool{},
	}
}

func (s *MemoryStore) AddFeed(feed domain.FeedConfiguration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.feeds[feed.ID] = feed
}

func (s *MemoryStore) MarkRead(viewerID, postID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	mark(s.reads, viewerID, postID)
}

// HiddenCount returns how many hide records exist for viewerID.
func (s *MemoryStore) HiddenCount(viewerID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.hidden[viewerID])
}

func (s *MemoryStore) ReportCount(viewerID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.reported[viewerID])
}

func (s *MemoryStore) FetchFeedPage(_ context.Context, query domain.FeedQuery) ([]*domain.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.FeedPageCalls++

	matched, err := s.filter(query.Predicates, query.ViewerID)
	if err != nil {
		return nil, err
	}

	cols := query.Ranking.Columns()
	sort.SliceStable(matched, func(i, j int) bool {
		return compareKey(keyOf(matched[i]), keyOf(matched[j]), cols) > 0
	})
	if len(matched) > query.Limit {
		matched = matched[:query.Limit]
	}
	if len(matched) == 0 {
		if err := s.checkSavedFeed(query.Predicates); err != nil {
			return nil, err
		}
	}
	return matched, nil
}

func (s *MemoryStore) FetchPostsByIDs(_ context.Context, ids []string, predicates []domain.Predicate, viewerID *string) ([]*domain.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.HydrateCalls++

	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}

	matched, err := s.filter(predicates, viewerID)
	if err != nil {
		return nil, err
	}

	// Store order is unrelated to the search order.
	out := make([]*domain.Post, 0, len(ids))
	for i := len(matched) - 1; i >= 0; i-- {
		if wanted[matched[i].ID] {
			out = append(out, matched[i])
		}
	}
	if len(out) == 0 {
		if err := s.checkSavedFeed(predicates); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// checkSavedFeed reports a saved feed the viewer does not own as not found.
func (s *MemoryStore) checkSavedFeed(preds []domain.Predicate) error {
	saved, ok := domain.SavedFeedOf(preds)
	if !ok {
		return nil
	}
	if _, owned := s.ownedFeed(saved); !owned {
		return fmt.Errorf("feed %s: %w", saved.FeedID, apperrors.ErrFeedNotFound)
	}
	return nil
}

func (s *MemoryStore) ownedFeed(pred domain.Predicate) (domain.FeedConfiguration, bool) {
	feed, ok := s.feeds[pred.FeedID]
	return feed, ok && feed.UserID == pred.ViewerID
}

func (s *MemoryStore) HidePost(_ context.Context, viewerID, postID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.exists(postID) {
		return false, fmt.Errorf("post %s: %w", postID, apperrors.ErrPostNotFound)
	}
	if s.hidden[viewerID][postID] {
		return false, nil
	}
	mark(s.hidden, viewerID, postID)
	return true, nil
}

func (s *MemoryStore) ReportPost(_ context.Context, report domain.PostReport) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.exists(report.PostID) {
		return false, fmt.Errorf("post %s: %w", report.PostID, apperrors.ErrPostNotFound)
	}
	mark(s.hidden, report.ViewerID, report.PostID)
	if s.reported[report.ViewerID][report.PostID] {
		return false, nil
	}
	mark(s.reported, report.ViewerID, report.PostID)
	return true, nil
}

func (s *MemoryStore) exists(postID string) bool {
	for _, p := range s.posts {
		if p.ID == postID {
			return true
		}
	}
	return false
}

func (s *MemoryStore) filter(preds []domain.Predicate, viewerID *string) ([]*domain.Post, error) {
	out := make([]*domain.Post, 0, len(s.posts))
	for _, p := range s.posts {
		ok, err := s.matches(p, preds)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		projected := *p
		if viewerID != nil {
			projected.Read = s.reads[*viewerID][p.ID]
		}
		out = append(out, &projected)
	}
	return out, nil
}

func (s *MemoryStore) matches(p *domain.Post, preds []domain.Predicate) (bool, error) {
	for _, pred := range preds {
		switch pred.Kind {
		case domain.PredicatePublishedVisible:
			if p.PublishedAt == nil || p.PublishedAt.After(pred.Cutoff) {
				return false, nil
			}
		case domain.PredicateNotHidden:
			if s.hidden[pred.ViewerID][p.ID] {
				return false, nil
			}
		case domain.PredicateSourceIn:
			if !contains(pred.Values, p.SourceID) {
				return false, nil
			}
		case domain.PredicateTagIn:
			if !intersects(pred.Values, p.Tags) {
				return false, nil
			}
		case domain.PredicateSavedFeed:
			feed, owned := s.ownedFeed(pred)
			if !owned {
				return false, nil
			}
			if len(feed.SourceIDs) > 0 && !contains(feed.SourceIDs, p.SourceID) {
				return false, nil
			}
			if len(feed.Tags) > 0 && !intersects(feed.Tags, p.Tags) {
				return false, nil
			}
		case domain.PredicateUnread:
			if s.reads[pred.ViewerID][p.ID] {
				return false, nil
			}
		case domain.PredicateAfterCursor:
			if compareKey(keyOf(p), pred.Key, pred.Columns) >= 0 {
				return false, nil
			}
		default:
			return false, fmt.Errorf("unknown predicate kind %q", pred.Kind)
		}
	}
	return true, nil
}

func keyOf(p *domain.Post) domain.CursorKey {
	key := domain.CursorKey{Score: p.Score, ID: p.ID}
	if p.PublishedAt != nil {
		key.PublishedAt = *p.PublishedAt
	}
	return key
}

// compareKey orders a and b lexicographically over cols, ascending.
func compareKey(a, b domain.CursorKey, cols []domain.SortColumn) int {
	for _, col := range cols {
		var c int
		switch col {
		case domain.ColumnScore:
			c = cmpFloat(a.Score, b.Score)
		case domain.ColumnPublishedAt:
			c = a.PublishedAt.Compare(b.PublishedAt)
		case domain.ColumnID:
			c = strings.Compare(a.ID, b.ID)
		}
		if c != 0 {
			return c
		}
	}
	return 0
}

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func contains(values []string, v string) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}

func intersects(a, b []string) bool {
	for _, x := range a {
		if contains(b, x) {
			return true
		}
	}
	return false
}

func mark(m map[string]map[string]bool, viewerID, postID string) {
	if m[viewerID] == nil {
		m[viewerID] = map[string]bool{}
	}
	m[viewerID][postID] = true
}

// RecordingPublisher implements ReportEventPort and keeps every event.
type RecordingPublisher struct {
	mu     sync.Mutex
	Events []domain.PostReportedEvent
	Err    error
}

func (p *RecordingPublisher) PublishPostReported(_ context.Context, event domain.PostReportedEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.Err != nil {
		return p.Err
	}
	p.Events = append(p.Events, event)
	return nil
}

func (p *RecordingPublisher) IsEnabled() bool { return true }

func (p *RecordingPublisher) Count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.Events)
}
