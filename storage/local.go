package storage

import (
	"context"
	"os"
	"path/filepath"
)

// LocalStore removes media files from a directory on local disk. Used in
// development and tests; production runs against R2.
type LocalStore struct {
	Root string
}

func NewLocalStore(root string) *LocalStore {
	if root == "" {
		root, _ = os.Getwd()
	}
	return &LocalStore{Root: root}
}

func (s *LocalStore) Remove(_ context.Context, key string) error {
	path := filepath.Join(s.Root, key)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	return os.Remove(path)
}
