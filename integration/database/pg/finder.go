package pg

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dmitrymomot/rpckit/core/binding"
)

// Querier is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// ScanFunc maps a single row to an entity.
type ScanFunc[T any] func(row pgx.Row) (T, error)

// Finder loads entities by primary key for model binders.
// The query must take the identifier as $1 and return at most one row.
type Finder[T any] struct {
	db    Querier
	query string
	scan  ScanFunc[T]
}

// NewFinder creates a finder running query through db.
//
// Example:
//
//	users := pg.NewFinder(pool, "SELECT id, email FROM users WHERE id = $1",
//		func(row pgx.Row) (*User, error) {
//			var u User
//			return &u, row.Scan(&u.ID, &u.Email)
//		})
//	binding.RegisterModelBinder(reg, "user", users, nil)
func NewFinder[T any](db Querier, query string, scan ScanFunc[T]) *Finder[T] {
	return &Finder[T]{db: db, query: query, scan: scan}
}

// Find runs the query with id. A transaction stored with WithTx takes precedence over the pool.
// pgx.ErrNoRows is reported as binding.ErrModelNotFound.
func (f *Finder[T]) Find(ctx context.Context, id any) (T, error) {
	var zero T

	entity, err := f.scan(querierFor(ctx, f.db).QueryRow(ctx, f.query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return zero, fmt.Errorf("%w: %w", binding.ErrModelNotFound, err)
		}
		return zero, fmt.Errorf("%w: %w", ErrQueryFailed, err)
	}
	return entity, nil
}
