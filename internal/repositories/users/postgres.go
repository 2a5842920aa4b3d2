package users

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

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) error {
	query := `INSERT INTO users (username_id, password_verifier) VALUES ($1, $2)`
	if _, err := r.db.ExecContext(ctx, query, user.UsernameID, user.PasswordVerifier); err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Exists(ctx context.Context, usernameID string) (bool, error) {
	var n int
	query := `SELECT count(*) FROM users WHERE username_id = $1`
	if err := r.db.QueryRowContext(ctx, query, usernameID).Scan(&n); err != nil {
		return false, fmt.Errorf("failed to count users: %w", err)
	}
	return n > 0, nil
}

func (r *PostgresRepository) FindByCredentials(ctx context.Context, usernameID, verifier string) ([]models.User, error) {
	query := `SELECT username_id, password_verifier FROM users WHERE username_id = $1 AND password_verifier = $2`
	rows, err := r.db.QueryContext(ctx, query, usernameID, verifier)
	if err != nil {
		return nil, fmt.Errorf("failed to select users: %w", err)
	}
	defer rows.Close()

	var result []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.UsernameID, &u.PasswordVerifier); err != nil {
			return nil, err
		}
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
