package search_post_usecase

import (
	"context"
	"testing"

	"feedengine/domain"
	"feedengine/mocks"
	"feedengine/usecase/testutil"
	apperrors "feedengine/utils/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSearchSuggestionsUsecase_Execute(t *testing.T) {
	ctrl := gomock.NewController(t)
	search := mocks.NewMockSearchIndexerPort(ctrl)

	search.EXPECT().SuggestPosts(gomock.Any(), "go tips", 5).Return([]domain.SearchHit{
		{ID: "p1", Title: "Go tips", HighlightedTitle: `<mark>Go</mark> tips<script>alert(1)</script>`},
		{ID: "p2", Title: "Rust & <b>Go</b>"},
	}, nil)

	got, err := NewSearchSuggestionsUsecase(search, 5, 200).Execute(context.Background(), "  go   tips ")
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "Go tips", got[0].Title)
	assert.Equal(t, "<mark>Go</mark> tips", got[0].HighlightedTitle)
	assert.Equal(t, "Rust & Go", got[1].Title)
	assert.Equal(t, "Rust &amp; Go", got[1].HighlightedTitle)
}

func TestSearchSuggestionsUsecase_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	search := mocks.NewMockSearchIndexerPort(ctrl)
	uc := NewSearchSuggestionsUsecase(search, 5, 200)

	_, err := uc.Execute(context.Background(), "")
	assert.True(t, apperrors.IsValidationError(err))

	search.EXPECT().SuggestPosts(gomock.Any(), "go", 5).Return(nil, testutil.ErrSearchDown)
	_, err = uc.Execute(context.Background(), "go")
	assert.True(t, apperrors.IsSearchUnavailable(err))
}
