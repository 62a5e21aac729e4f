// Package storage contains the concrete picture store backed by an afero filesystem.
package storage

import (
	"context"
	"fmt"
	"path"
	"time"

	"hydrate/config"
	"hydrate/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

const pictureDirPerm = 0o755

// aferoPictureStore persists profile pictures on an afero filesystem.
// Production wires the OS filesystem; tests wire an in-memory one.
type aferoPictureStore struct {
	fs      afero.Fs
	baseDir string
}

// NewPictureStore is the constructor used by the Fx graph, storing pictures
// under the configured uploads directory on the real filesystem.
func NewPictureStore(cfg *config.Config) (service.PictureStore, error) {
	return NewPictureStoreWithFs(afero.NewOsFs(), cfg.Uploads.Dir)
}

// NewPictureStoreWithFs builds a picture store on an explicit filesystem.
func NewPictureStoreWithFs(fs afero.Fs, baseDir string) (service.PictureStore, error) {
	if baseDir == "" {
		return nil, errors.New("uploads directory must be configured")
	}
	if err := fs.MkdirAll(baseDir, pictureDirPerm); err != nil {
		return nil, errors.Wrap(err, "failed to create uploads directory")
	}

	return &aferoPictureStore{fs: fs, baseDir: baseDir}, nil
}

// Save writes the picture bytes and returns the relative path the account
// should reference. The name embeds the account ID and a timestamp so a
// replacement never overwrites the file a concurrent reader may be serving.
func (s *aferoPictureStore) Save(_ context.Context, accountID uuid.UUID, ext string, data []byte) (string, error) {
	name := fmt.Sprintf("%s_%d%s", accountID, time.Now().UnixNano(), ext)

	if err := afero.WriteFile(s.fs, path.Join(s.baseDir, name), data, 0o644); err != nil {
		return "", errors.Wrap(err, "failed to write picture file")
	}

	return name, nil
}

// Remove deletes a stored picture. A missing file is not an error so
// compensating cleanup stays idempotent.
func (s *aferoPictureStore) Remove(_ context.Context, picturePath string) error {
	if picturePath == "" {
		return nil
	}

	if err := s.fs.Remove(path.Join(s.baseDir, picturePath)); err != nil {
		if exists, statErr := afero.Exists(s.fs, path.Join(s.baseDir, picturePath)); statErr == nil && !exists {
			return nil
		}

		return errors.Wrap(err, "failed to remove picture file")
	}

	return nil
}
