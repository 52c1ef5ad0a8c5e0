package ticketing

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// ImageStore persists generated ticket artifacts and returns the URL
// they will be served from.
type ImageStore interface {
	Save(ctx context.Context, name string, data []byte) (string, error)
}

// LocalImageStore writes artifacts to a directory on disk. Suitable for
// single-node deployments and tests; swap in an object store behind the
// same interface for anything bigger.
type LocalImageStore struct {
	dir     string
	baseURL string
}

func NewLocalImageStore(dir, baseURL string) (*LocalImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create ticket directory: %w", err)
	}
	return &LocalImageStore{dir: dir, baseURL: baseURL}, nil
}

func (s *LocalImageStore) Save(ctx context.Context, name string, data []byte) (string, error) {
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write ticket artifact: %w", err)
	}
	return s.baseURL + "/" + name, nil
}
