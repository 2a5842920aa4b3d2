package records

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

func (r *PostgresRepository) Create(ctx context.Context, record *models.Record) error {
	query := `INSERT INTO records (owner_id, record_id, name_ct, ciphertext) VALUES ($1, $2, $3, $4)`
	if _, err := r.db.ExecContext(ctx, query, record.OwnerID, record.RecordID, record.NameCt, record.Ciphertext); err != nil {
		return fmt.Errorf("failed to insert record: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Get(ctx context.Context, ownerID, recordID string) ([]models.Record, error) {
	query := `SELECT owner_id, record_id, name_ct, ciphertext FROM records WHERE owner_id = $1 AND record_id = $2`
	return r.collect(ctx, query, ownerID, recordID)
}

func (r *PostgresRepository) GetAllByOwner(ctx context.Context, ownerID string) ([]models.Record, error) {
	query := `SELECT owner_id, record_id, name_ct, ciphertext FROM records WHERE owner_id = $1`
	return r.collect(ctx, query, ownerID)
}

func (r *PostgresRepository) UpdateCiphertext(ctx context.Context, ownerID, recordID string, ciphertext []byte) error {
	query := `UPDATE records SET ciphertext = $1 WHERE owner_id = $2 AND record_id = $3`
	res, err := r.db.ExecContext(ctx, query, ciphertext, ownerID, recordID)
	if err != nil {
		return fmt.Errorf("failed to update record: %w", err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if ra != 1 {
		return fmt.Errorf("wrong rows affected count: %d", ra)
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, ownerID, recordID string) error {
	query := `DELETE FROM records WHERE owner_id = $1 AND record_id = $2`
	if _, err := r.db.ExecContext(ctx, query, ownerID, recordID); err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}
	return nil
}

func (r *PostgresRepository) collect(ctx context.Context, query string, args ...any) ([]models.Record, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select records: %w", err)
	}
	defer rows.Close()

	var result []models.Record
	for rows.Next() {
		var rec models.Record
		if err := rows.Scan(&rec.OwnerID, &rec.RecordID, &rec.NameCt, &rec.Ciphertext); err != nil {
			return nil, err
		}
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
