// Package records persists encrypted record rows, unique per
// (owner_id, record_id) pair. Ciphertext and the encrypted name are
// opaque blobs to this layer.
package records

import (
	"context"

	"github.com/mkoval-dev/lockbox/internal/models"
)

type Repository interface {
	// Create inserts a record row.
	Create(ctx context.Context, record *models.Record) error

	// Get returns every row at (ownerID, recordID). A healthy store
	// yields zero or one; the exactly-one check belongs to the caller.
	Get(ctx context.Context, ownerID, recordID string) ([]models.Record, error)

	// GetAllByOwner returns every record row belonging to ownerID.
	GetAllByOwner(ctx context.Context, ownerID string) ([]models.Record, error)

	// UpdateCiphertext overwrites the stored payload of an existing
	// record. The encrypted name is left untouched.
	UpdateCiphertext(ctx context.Context, ownerID, recordID string, ciphertext []byte) error

	// Delete removes the row at (ownerID, recordID).
	Delete(ctx context.Context, ownerID, recordID string) error
}
