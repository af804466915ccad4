package hidden_post_gateway

import (
	"context"
	"errors"
	"testing"

	"feedengine/domain"
	apperrors "feedengine/utils/errors"

	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHiddenPostGateway_HidePost(t *testing.T) {
	tests := []struct {
		name        string
		execErr     error
		wantCreated bool
		wantCode    string
	}{
		{name: "created", wantCreated: true},
		{name: "already hidden", execErr: &pgconn.PgError{Code: "23505"}},
		{name: "unknown post", execErr: &pgconn.PgError{Code: "23503"}, wantCode: string(apperrors.ErrCodeNotFound)},
		{name: "store failure", execErr: errors.New("broken pipe"), wantCode: string(apperrors.ErrCodeDatabase)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			exp := mock.ExpectExec("INSERT INTO hidden_post").WithArgs("v1", "p1")
			if tt.execErr != nil {
				exp.WillReturnError(tt.execErr)
			} else {
				exp.WillReturnResult(pgxmock.NewResult("INSERT", 1))
			}

			g := NewHiddenPostGateway(mock)
			created, err := g.HidePost(context.Background(), "v1", "p1")
			assert.Equal(t, tt.wantCreated, created)

			if tt.wantCode == "" {
				assert.NoError(t, err)
			} else {
				var ctxErr *apperrors.AppContextError
				require.True(t, errors.As(err, &ctxErr))
				assert.Equal(t, tt.wantCode, ctxErr.Code)
			}

			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestHiddenPostGateway_ReportPost_NotFoundKeepsSentinel(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO hidden_post").
		WithArgs("v1", "gone").
		WillReturnError(&pgconn.PgError{Code: "23503"})
	mock.ExpectRollback()

	g := NewHiddenPostGateway(mock)
	_, err = g.ReportPost(context.Background(), domain.PostReport{ViewerID: "v1", PostID: "gone", Reason: domain.ReportReasonBroken})
	assert.ErrorIs(t, err, apperrors.ErrPostNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestHiddenPostGateway_NilCheck(t *testing.T) {
	g := &HiddenPostGateway{}
	_, err := g.HidePost(context.Background(), "v1", "p1")
	assert.EqualError(t, err, "database connection not available")
}
