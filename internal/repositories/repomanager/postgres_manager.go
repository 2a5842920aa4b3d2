package repomanager

import (
	"context"
	"database/sql"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/mkoval-dev/lockbox/internal/dbx"
	"github.com/mkoval-dev/lockbox/internal/migrations"
	"github.com/mkoval-dev/lockbox/internal/repositories/keys"
	"github.com/mkoval-dev/lockbox/internal/repositories/records"
	"github.com/mkoval-dev/lockbox/internal/repositories/users"
)

type PostgresRepositoryManager struct{}

func NewPostgresRepositoryManager() *PostgresRepositoryManager {
	return &PostgresRepositoryManager{}
}

func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Keys(db dbx.DBTX) keys.Repository {
	return keys.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Records(db dbx.DBTX) records.Repository {
	return records.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Postgres)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, "postgres")
}
