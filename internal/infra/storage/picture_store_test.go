package storage

import (
	"context"
	"path"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPictureStore_SaveAndRemove(t *testing.T) {
	fs := afero.NewMemMapFs()
	store, err := NewPictureStoreWithFs(fs, "uploads")
	require.NoError(t, err)

	ctx := context.Background()
	accountID := uuid.New()
	data := []byte("picture bytes")

	saved, err := store.Save(ctx, accountID, ".png", data)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(saved, accountID.String()))
	assert.True(t, strings.HasSuffix(saved, ".png"))

	got, err := afero.ReadFile(fs, path.Join("uploads", saved))
	require.NoError(t, err)
	assert.Equal(t, data, got)

	require.NoError(t, store.Remove(ctx, saved))

	exists, err := afero.Exists(fs, path.Join("uploads", saved))
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestPictureStore_SaveNeverOverwrites(t *testing.T) {
	fs := afero.NewMemMapFs()
	store, err := NewPictureStoreWithFs(fs, "uploads")
	require.NoError(t, err)

	ctx := context.Background()
	accountID := uuid.New()

	first, err := store.Save(ctx, accountID, ".png", []byte("first"))
	require.NoError(t, err)
	second, err := store.Save(ctx, accountID, ".png", []byte("second"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)

	got, err := afero.ReadFile(fs, path.Join("uploads", first))
	require.NoError(t, err)
	assert.Equal(t, []byte("first"), got)
}

func TestPictureStore_RemoveMissingFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	store, err := NewPictureStoreWithFs(fs, "uploads")
	require.NoError(t, err)

	// Cleanup stays idempotent; a second removal is not an error.
	assert.NoError(t, store.Remove(context.Background(), "never_saved.png"))
	assert.NoError(t, store.Remove(context.Background(), ""))
}

func TestNewPictureStoreWithFs_RequiresBaseDir(t *testing.T) {
	_, err := NewPictureStoreWithFs(afero.NewMemMapFs(), "")
	assert.Error(t, err)
}
