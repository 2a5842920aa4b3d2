// Package keys persists wrapped per-record keys, unique per
// (owner_id, record_id) pair.
package keys

import (
	"context"

	"github.com/mkoval-dev/lockbox/internal/models"
)

type Repository interface {
	// Create inserts a wrapped key entry.
	Create(ctx context.Context, entry *models.KeyEntry) error

	// Get returns every entry at (ownerID, recordID). A healthy store
	// yields zero or one; the exactly-one check belongs to the caller.
	Get(ctx context.Context, ownerID, recordID string) ([]models.KeyEntry, error)

	// Delete removes the entry at (ownerID, recordID).
	Delete(ctx context.Context, ownerID, recordID string) error
}
