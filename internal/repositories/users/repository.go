// Package users persists identity rows: hashed usernames paired with
// password verifiers. Rows are created by provisioning and are
// read-only to the authenticated core.
package users

import (
	"context"

	"github.com/mkoval-dev/lockbox/internal/models"
)

type Repository interface {
	// Create inserts a new identity row.
	Create(ctx context.Context, user *models.User) error

	// Exists reports whether an identity row exists for the hashed
	// username.
	Exists(ctx context.Context, usernameID string) (bool, error)

	// FindByCredentials returns every row matching the hashed username
	// and verifier. Authentication requires exactly one match; the
	// count check belongs to the caller.
	FindByCredentials(ctx context.Context, usernameID, verifier string) ([]models.User, error)
}
