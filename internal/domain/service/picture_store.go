package service

import (
	"context"

	"github.com/google/uuid"
)

// PictureStore defines the interface for persisting uploaded profile pictures.
// Implementations decide the storage location; callers only keep the returned path.
type PictureStore interface {
	// Save writes the picture bytes for an account and returns the path under
	// which the account should reference it. The extension reflects the
	// detected image format (e.g. ".png").
	Save(ctx context.Context, accountID uuid.UUID, ext string, data []byte) (string, error)

	// Remove deletes a previously saved picture. Removing the default
	// sentinel path or an already-absent file is not an error.
	Remove(ctx context.Context, path string) error
}
