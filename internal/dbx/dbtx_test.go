package dbx

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE t (v TEXT)`)
	require.NoError(t, err)
	return db
}

func countRows(t *testing.T, db *sql.DB) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(`SELECT count(*) FROM t`).Scan(&n))
	return n
}

func TestWithTx_CommitsOnSuccess(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	err := WithTx(ctx, db, nil, func(ctx context.Context, tx DBTX) error {
		_, err := tx.ExecContext(ctx, `INSERT INTO t (v) VALUES (?)`, "a")
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, 1, countRows(t, db))
}

func TestWithTx_RollsBackOnError(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	boom := errors.New("boom")

	err := WithTx(ctx, db, nil, func(ctx context.Context, tx DBTX) error {
		if _, err := tx.ExecContext(ctx, `INSERT INTO t (v) VALUES (?)`, "a"); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 0, countRows(t, db))
}

func TestWithTx_RollsBackOnPanic(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	assert.Panics(t, func() {
		_ = WithTx(ctx, db, nil, func(ctx context.Context, tx DBTX) error {
			if _, err := tx.ExecContext(ctx, `INSERT INTO t (v) VALUES (?)`, "a"); err != nil {
				return err
			}
			panic("boom")
		})
	})
	assert.Equal(t, 0, countRows(t, db))
}
