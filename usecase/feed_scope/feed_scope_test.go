package feed_scope

import (
	"errors"
	"testing"
	"time"

	"feedengine/domain"
	apperrors "feedengine/utils/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestPredicates(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	viewer := strPtr("v1")

	tests := []struct {
		name      string
		filter    domain.FeedFilter
		viewer    *string
		wantKinds []domain.PredicateKind
		wantCode  apperrors.ErrorCode
	}{
		{
			name:      "anonymous defaults",
			filter:    domain.FeedFilter{},
			wantKinds: []domain.PredicateKind{domain.PredicatePublishedVisible},
		},
		{
			name:   "saved feed stays one term",
			filter: domain.FeedFilter{FeedID: "f1", UnreadOnly: true},
			viewer: viewer,
			wantKinds: []domain.PredicateKind{
				domain.PredicatePublishedVisible,
				domain.PredicateNotHidden,
				domain.PredicateSavedFeed,
				domain.PredicateUnread,
			},
		},
		{
			name:     "saved feed for anonymous viewer",
			filter:   domain.FeedFilter{FeedID: "f1"},
			wantCode: apperrors.ErrCodeNotFound,
		},
		{
			name:     "feed id with ad hoc selectors",
			filter:   domain.FeedFilter{FeedID: "f1", Tag: "go"},
			viewer:   viewer,
			wantCode: apperrors.ErrCodeValidation,
		},
		{
			name:     "empty source list",
			filter:   domain.FeedFilter{SourceIDs: []string{}},
			wantCode: apperrors.ErrCodeValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			preds, err := Predicates("FetchFeedUsecase", tt.filter, tt.viewer, now)
			if tt.wantCode != "" {
				var ctxErr *apperrors.AppContextError
				require.True(t, errors.As(err, &ctxErr), "got %v", err)
				assert.Equal(t, string(tt.wantCode), ctxErr.Code)
				assert.Equal(t, "FetchFeedUsecase", ctxErr.Component)
				return
			}

			require.NoError(t, err)
			kinds := make([]domain.PredicateKind, len(preds))
			for i, p := range preds {
				kinds[i] = p.Kind
			}
			assert.Equal(t, tt.wantKinds, kinds)
		})
	}
}

func TestNormalizeViewer(t *testing.T) {
	assert.Nil(t, NormalizeViewer(nil))
	assert.Nil(t, NormalizeViewer(strPtr("")))
	assert.Equal(t, "v1", *NormalizeViewer(strPtr("v1")))
}
