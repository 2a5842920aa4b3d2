package keys

import (
	"context"
	"fmt"

	"github.com/mkoval-dev/lockbox/internal/dbx"
	"github.com/mkoval-dev/lockbox/internal/models"
)

// PostgresRepository implements Repository for a shared Postgres store.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, entry *models.KeyEntry) error {
	query := `INSERT INTO keys (owner_id, record_id, wrapped_key) VALUES ($1, $2, $3)`
	if _, err := r.db.ExecContext(ctx, query, entry.OwnerID, entry.RecordID, entry.WrappedKey); err != nil {
		return fmt.Errorf("failed to insert key entry: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Get(ctx context.Context, ownerID, recordID string) ([]models.KeyEntry, error) {
	query := `SELECT owner_id, record_id, wrapped_key FROM keys WHERE owner_id = $1 AND record_id = $2`
	rows, err := r.db.QueryContext(ctx, query, ownerID, recordID)
	if err != nil {
		return nil, fmt.Errorf("failed to select key entries: %w", err)
	}
	defer rows.Close()

	var result []models.KeyEntry
	for rows.Next() {
		var e models.KeyEntry
		if err := rows.Scan(&e.OwnerID, &e.RecordID, &e.WrappedKey); err != nil {
			return nil, err
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, ownerID, recordID string) error {
	query := `DELETE FROM keys WHERE owner_id = $1 AND record_id = $2`
	if _, err := r.db.ExecContext(ctx, query, ownerID, recordID); err != nil {
		return fmt.Errorf("failed to delete key entry: %w", err)
	}
	return nil
}
