package kvstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileStore persists each key as a file under a base directory.
// Writes go through a temp file and rename so a crashed write never
// leaves a half-written blob behind.
type FileStore struct {
	dir string
}

// NewFileStore creates the directory if needed and returns a FileStore.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("kvstore: data directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("kvstore: failed to create data directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Load reads the blob for key, reporting absence without error.
func (s *FileStore) Load(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("kvstore: failed to read %q: %w", key, err)
	}
	return data, true, nil
}

// Save writes the blob for key atomically.
func (s *FileStore) Save(ctx context.Context, key string, blob []byte) error {
	target := s.path(key)
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, blob, 0o644); err != nil {
		return fmt.Errorf("kvstore: failed to write %q: %w", key, err)
	}
	if err := os.Rename(tmp, target); err != nil {
		return fmt.Errorf("kvstore: failed to commit %q: %w", key, err)
	}
	return nil
}

// path maps a key to a file name, flattening separators so a key can
// never escape the base directory.
func (s *FileStore) path(key string) string {
	name := strings.NewReplacer("/", "_", "\\", "_", "..", "_").Replace(key)
	return filepath.Join(s.dir, name+".json")
}
