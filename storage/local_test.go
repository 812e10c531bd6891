package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalRemoveDeletesFile(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "posts"), 0o755))
	path := filepath.Join(root, "posts", "a.jpg")
	require.NoError(t, os.WriteFile(path, []byte("jpeg"), 0o644))

	store := NewLocalStore(root)
	require.NoError(t, store.Remove(context.Background(), "posts/a.jpg"))

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestLocalRemoveMissingFileIsNotAnError(t *testing.T) {
	store := NewLocalStore(t.TempDir())
	assert.NoError(t, store.Remove(context.Background(), "posts/never-existed.jpg"))
}
