// Package repomanager selects the backing store dialect and hands out
// repositories bound to a DBTX. The default backend is a local sqlite
// file; a shared Postgres instance is supported for deployments where
// several hosts point at one store.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/mkoval-dev/lockbox/internal/dbx"
	"github.com/mkoval-dev/lockbox/internal/repositories/keys"
	"github.com/mkoval-dev/lockbox/internal/repositories/records"
	"github.com/mkoval-dev/lockbox/internal/repositories/users"
)

// RepositoryManager constructs repositories for one backend dialect.
// Passing a *sql.Tx as the DBTX yields repositories that participate in
// that transaction.
type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Keys(db dbx.DBTX) keys.Repository
	Records(db dbx.DBTX) records.Repository
}
