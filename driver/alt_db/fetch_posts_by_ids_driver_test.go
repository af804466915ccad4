package alt_db

import (
	"context"
	"regexp"
	"testing"
	"time"

	"feedengine/domain"
	apperrors "feedengine/utils/errors"

	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAltDBRepository_FetchPostsByIDs_AppliesHiddenSet(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &AltDBRepository{pool: mock}
	now := time.Now().UTC()
	viewer := "v1"
	ids := []string{"p3", "p1", "p5"}
	preds := []domain.Predicate{domain.PublishedVisible(now), domain.NotHidden(viewer)}

	// p1 is hidden for v1, so the store only returns p5 and p3.
	rows := addPostRows(pgxmock.NewRows(postColumns),
		testRow{id: "p5", sourceID: "s", published: now.Add(-time.Hour)},
		testRow{id: "p3", sourceID: "s", published: now.Add(-2 * time.Hour)},
	)

	mock.ExpectQuery("(?s)"+regexp.QuoteMeta("WHERE p.id = ANY($2)")+".*"+
		regexp.QuoteMeta("h.user_id = $4")).
		WithArgs(&viewer, ids, now, viewer).
		WillReturnRows(rows)

	posts, err := repo.FetchPostsByIDs(context.Background(), ids, preds, &viewer)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "p5", posts[0].ID)
	assert.Equal(t, "p3", posts[1].ID)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAltDBRepository_FetchPostsByIDs_EmptyIDsSkipsQuery(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &AltDBRepository{pool: mock}

	posts, err := repo.FetchPostsByIDs(context.Background(), nil, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, posts)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAltDBRepository_FetchPostsByIDs_NilPool(t *testing.T) {
	repo := &AltDBRepository{}
	_, err := repo.FetchPostsByIDs(context.Background(), []string{"p1"}, nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database connection not available")
}

func TestAltDBRepository_FetchPostsByIDs_SavedFeed(t *testing.T) {
	now := time.Now().UTC()
	viewer := "v1"
	preds := []domain.Predicate{domain.PublishedVisible(now), domain.NotHidden(viewer), domain.SavedFeed("f1", viewer)}
	hydrateSQL := "(?s)" + regexp.QuoteMeta("WHERE p.id = ANY($2)") + ".*" +
		regexp.QuoteMeta("f.id = $5 AND f.user_id = $6")
	ownedSQL := regexp.QuoteMeta(savedFeedOwnedQuery)

	tests := []struct {
		name      string
		ids       []string
		setupMock func(mock pgxmock.PgxPoolIface)
		wantLen   int
		wantErr   error
	}{
		{
			name: "hydrated rows take one query",
			ids:  []string{"p1"},
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(hydrateSQL).
					WithArgs(&viewer, []string{"p1"}, now, viewer, "f1", viewer).
					WillReturnRows(addPostRows(pgxmock.NewRows(postColumns),
						testRow{id: "p1", sourceID: "s", published: now.Add(-time.Hour)}))
			},
			wantLen: 1,
		},
		{
			name: "no hydrated rows on a foreign feed",
			ids:  []string{"p1"},
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(hydrateSQL).
					WithArgs(&viewer, []string{"p1"}, now, viewer, "f1", viewer).
					WillReturnRows(pgxmock.NewRows(postColumns))
				mock.ExpectQuery(ownedSQL).
					WithArgs("f1", viewer).
					WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
			},
			wantErr: apperrors.ErrFeedNotFound,
		},
		{
			name: "no ids on an owned feed",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(ownedSQL).
					WithArgs("f1", viewer).
					WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
			},
		},
		{
			name: "no ids on a foreign feed",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(ownedSQL).
					WithArgs("f1", viewer).
					WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
			},
			wantErr: apperrors.ErrFeedNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			tt.setupMock(mock)
			repo := &AltDBRepository{pool: mock}

			posts, err := repo.FetchPostsByIDs(context.Background(), tt.ids, preds, &viewer)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Len(t, posts, tt.wantLen)
			}

			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
