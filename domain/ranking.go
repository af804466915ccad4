package domain

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	apperrors "feedengine/utils/errors"
)

// PageLookahead is the number of rows fetched beyond the page size to learn
// whether another page exists without a count query.
const PageLookahead = 1

type SortBy string

const (
	SortByPopularity    SortBy = "POPULARITY"
	SortByChronological SortBy = "CHRONOLOGICAL"
)

// ParseSortBy accepts the sort names case-insensitively. Empty means popularity.
func ParseSortBy(raw string) (SortBy, error) {
	switch SortBy(strings.ToUpper(strings.TrimSpace(raw))) {
	case "", SortByPopularity:
		return SortByPopularity, nil
	case SortByChronological:
		return SortByChronological, nil
	default:
		return "", fmt.Errorf("%w: unknown sortBy %q", apperrors.ErrInvalidInput, raw)
	}
}

// SortColumn names one column of a ranking's total order. Every column sorts
// descending.
type SortColumn string

const (
	ColumnScore       SortColumn = "score"
	ColumnPublishedAt SortColumn = "published_at"
	ColumnID          SortColumn = "id"
)

// CursorKey is the ranking key of the last row of a page.
type CursorKey struct {
	Score       float64
	PublishedAt time.Time
	ID          string
}

// Value returns the key component for col.
func (k CursorKey) Value(col SortColumn) any {
	switch col {
	case ColumnScore:
		return k.Score
	case ColumnPublishedAt:
		return k.PublishedAt
	default:
		return k.ID
	}
}

// RankingStrategy is one of the two feed orderings. Each owns its cursor
// format; a cursor from one strategy is rejected by the other.
type RankingStrategy interface {
	Sort() SortBy
	Columns() []SortColumn
	EncodeCursor(post *Post) string
	DecodeCursor(token string) (CursorKey, error)
	BoundaryPredicate(key CursorKey) Predicate
	sealed()
}

// RankingFor returns the strategy for sortBy.
func RankingFor(sortBy SortBy) (RankingStrategy, error) {
	switch sortBy {
	case SortByPopularity, "":
		return PopularityRanking{}, nil
	case SortByChronological:
		return ChronologicalRanking{}, nil
	default:
		return nil, fmt.Errorf("%w: unknown sortBy %q", apperrors.ErrInvalidInput, sortBy)
	}
}

// PopularityRanking orders by score, then publish time, then id.
type PopularityRanking struct{}

func (PopularityRanking) sealed()      {}
func (PopularityRanking) Sort() SortBy { return SortByPopularity }

func (PopularityRanking) Columns() []SortColumn {
	return []SortColumn{ColumnScore, ColumnPublishedAt, ColumnID}
}

func (r PopularityRanking) EncodeCursor(post *Post) string {
	score := strconv.FormatFloat(post.Score, 'g', -1, 64)
	return encodeCursor(cursorPayload{
		Strategy:    SortByPopularity,
		Score:       &score,
		PublishedAt: publishedNanos(post),
		ID:          post.ID,
	})
}

func (r PopularityRanking) DecodeCursor(token string) (CursorKey, error) {
	p, err := decodeCursor(token, SortByPopularity)
	if err != nil {
		return CursorKey{}, err
	}
	if p.Score == nil {
		return CursorKey{}, fmt.Errorf("%w: missing score", apperrors.ErrInvalidCursor)
	}
	score, err := parseScore(*p.Score)
	if err != nil {
		return CursorKey{}, err
	}
	return CursorKey{Score: score, PublishedAt: time.Unix(0, p.PublishedAt).UTC(), ID: p.ID}, nil
}

func (r PopularityRanking) BoundaryPredicate(key CursorKey) Predicate {
	return Predicate{Kind: PredicateAfterCursor, Columns: r.Columns(), Key: key}
}

// ChronologicalRanking orders by publish time, then id.
type ChronologicalRanking struct{}

func (ChronologicalRanking) sealed()      {}
func (ChronologicalRanking) Sort() SortBy { return SortByChronological }

func (ChronologicalRanking) Columns() []SortColumn {
	return []SortColumn{ColumnPublishedAt, ColumnID}
}

func (r ChronologicalRanking) EncodeCursor(post *Post) string {
	return encodeCursor(cursorPayload{
		Strategy:    SortByChronological,
		PublishedAt: publishedNanos(post),
		ID:          post.ID,
	})
}

func (r ChronologicalRanking) DecodeCursor(token string) (CursorKey, error) {
	p, err := decodeCursor(token, SortByChronological)
	if err != nil {
		return CursorKey{}, err
	}
	if p.Score != nil {
		return CursorKey{}, fmt.Errorf("%w: unexpected score", apperrors.ErrInvalidCursor)
	}
	return CursorKey{PublishedAt: time.Unix(0, p.PublishedAt).UTC(), ID: p.ID}, nil
}

func (r ChronologicalRanking) BoundaryPredicate(key CursorKey) Predicate {
	return Predicate{Kind: PredicateAfterCursor, Columns: r.Columns(), Key: key}
}

// cursorPayload carries the score as its shortest exact decimal text so the
// key survives the round trip bit for bit.
type cursorPayload struct {
	Strategy    SortBy  `json:"s"`
	Score       *string `json:"sc,omitempty"`
	PublishedAt int64   `json:"t"`
	ID          string  `json:"id"`
}

// parseScore accepts only finite scores. The store rejects NaN and infinite
// scores, so a cursor carrying one was not issued by this service.
func parseScore(raw string) (float64, error) {
	score, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: bad score %q", apperrors.ErrInvalidCursor, raw)
	}
	if math.IsNaN(score) || math.IsInf(score, 0) {
		return 0, fmt.Errorf("%w: score %q is not finite", apperrors.ErrInvalidCursor, raw)
	}
	return score, nil
}

func publishedNanos(post *Post) int64 {
	if post.PublishedAt == nil {
		return 0
	}
	return post.PublishedAt.UnixNano()
}

func encodeCursor(p cursorPayload) string {
	// The payload holds only strings and an integer, which Marshal always accepts.
	raw, _ := json.Marshal(p)
	return base64.RawURLEncoding.EncodeToString(raw)
}

func decodeCursor(token string, want SortBy) (cursorPayload, error) {
	var p cursorPayload

	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return p, fmt.Errorf("%w: %v", apperrors.ErrInvalidCursor, err)
	}
	if err := json.Unmarshal(raw, &p); err != nil {
		return p, fmt.Errorf("%w: %v", apperrors.ErrInvalidCursor, err)
	}
	if p.Strategy != want {
		return p, fmt.Errorf("%w: cursor was issued for %q, request sorts by %q", apperrors.ErrInvalidCursor, p.Strategy, want)
	}
	if p.ID == "" {
		return p, fmt.Errorf("%w: missing id", apperrors.ErrInvalidCursor)
	}
	return p, nil
}
