// Package dbx provides the tiny storage abstraction shared by the
// repositories: a minimal interface (DBTX) satisfied by both *sql.DB
// and *sql.Tx, and a helper to run a function inside a transaction.
//
// Every query the repositories issue through DBTX binds its parameters;
// query text is never built by string interpolation.
package dbx

import (
	"context"
	"database/sql"
)

// DBTX is the subset of database/sql the repositories use.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// WithTx begins a transaction, runs fn with the transactional handle,
// and commits on success or rolls back on error/panic. Panics are
// rethrown. Multi-table writes (a record and its key entry) go through
// WithTx so the pair is created or removed as one unit.
func WithTx(ctx context.Context, db *sql.DB, opts *sql.TxOptions, fn func(ctx context.Context, tx DBTX) error) (err error) {
	tx, err := db.BeginTx(ctx, opts)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		err = tx.Commit()
	}()

	err = fn(ctx, tx)
	return err
}
