package repomanager

import (
	"context"
	"database/sql"
	"fmt"
)

// Store bundles an open database handle with the repository manager for
// its dialect. The handle is exclusively owned by one session for its
// lifetime.
type Store struct {
	DB      *sql.DB
	Manager RepositoryManager
}

// Open connects to the configured backend, runs migrations, and returns
// the ready Store. Supported drivers: "sqlite" (DSN is a file path or
// ":memory:") and "postgres" (DSN is a pgx connection string).
func Open(ctx context.Context, driver, dsn string) (*Store, error) {
	var (
		manager    RepositoryManager
		driverName string
	)

	switch driver {
	case "sqlite":
		manager = NewSQLiteRepositoryManager()
		driverName = "sqlite"
	case "postgres":
		manager = NewPostgresRepositoryManager()
		driverName = "pgx"
	default:
		return nil, fmt.Errorf("unsupported store driver %q", driver)
	}

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s store: %w", driver, err)
	}

	if err := manager.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &Store{DB: db, Manager: manager}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.DB.Close()
}
