package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// DBTX is the read surface shared by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type DBTX interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}
