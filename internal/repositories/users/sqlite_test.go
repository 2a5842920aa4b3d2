package users

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkoval-dev/lockbox/internal/models"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE users (
  username_id TEXT PRIMARY KEY,
  password_verifier TEXT NOT NULL
);
`)
	require.NoError(t, err)
	return db
}

func TestCreateAndExists(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	ok, err := r.Exists(ctx, "u1")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, r.Create(ctx, &models.User{UsernameID: "u1", PasswordVerifier: "v1"}))

	ok, err = r.Exists(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCreate_DuplicateRejected(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Create(ctx, &models.User{UsernameID: "u1", PasswordVerifier: "v1"}))
	err := r.Create(ctx, &models.User{UsernameID: "u1", PasswordVerifier: "v2"})
	assert.Error(t, err) // primary key enforces one row per username_id
}

func TestFindByCredentials(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Create(ctx, &models.User{UsernameID: "u1", PasswordVerifier: "v1"}))

	got, err := r.FindByCredentials(ctx, "u1", "v1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "u1", got[0].UsernameID)

	got, err = r.FindByCredentials(ctx, "u1", "wrong")
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = r.FindByCredentials(ctx, "unknown", "v1")
	require.NoError(t, err)
	assert.Empty(t, got)
}
