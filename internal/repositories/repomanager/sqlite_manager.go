package repomanager

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/mkoval-dev/lockbox/internal/dbx"
	"github.com/mkoval-dev/lockbox/internal/migrations"
	"github.com/mkoval-dev/lockbox/internal/repositories/keys"
	"github.com/mkoval-dev/lockbox/internal/repositories/records"
	"github.com/mkoval-dev/lockbox/internal/repositories/users"
)

type SQLiteRepositoryManager struct{}

func NewSQLiteRepositoryManager() *SQLiteRepositoryManager {
	return &SQLiteRepositoryManager{}
}

func (m *SQLiteRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) Keys(db dbx.DBTX) keys.Repository {
	return keys.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) Records(db dbx.DBTX) records.Repository {
	return records.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Sqlite)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, "sqlite")
}
