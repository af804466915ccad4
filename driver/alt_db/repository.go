package alt_db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PgxIface is the subset of *pgxpool.Pool the drivers use. pgxmock pools
// satisfy it in tests.
type PgxIface interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

type AltDBRepository struct {
	pool PgxIface
}

func NewAltDBRepositoryWithPool(pool PgxIface) *AltDBRepository {
	return &AltDBRepository{pool: pool}
}

func (r *AltDBRepository) available() bool {
	return r != nil && r.pool != nil
}
