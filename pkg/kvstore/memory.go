package kvstore

import (
	"context"
	"errors"
	"sync"
)

var errSaveFailed = errors.New("kvstore: save failed")

// MemoryStore is an in-process Store used in tests and as a fallback
// when no data directory is configured.
type MemoryStore struct {
	mu    sync.Mutex
	blobs map[string][]byte

	// FailSaves makes every Save return an error. Tests use it to check
	// that persistence failures never surface as store failures.
	FailSaves bool
	SaveErr   error
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: make(map[string][]byte)}
}

// Load returns the blob for key if present.
func (s *MemoryStore) Load(ctx context.Context, key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	blob, ok := s.blobs[key]
	if !ok {
		return nil, false, nil
	}
	cp := make([]byte, len(blob))
	copy(cp, blob)
	return cp, true, nil
}

// Save stores a copy of the blob under key.
func (s *MemoryStore) Save(ctx context.Context, key string, blob []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailSaves {
		if s.SaveErr != nil {
			return s.SaveErr
		}
		return errSaveFailed
	}

	cp := make([]byte, len(blob))
	copy(cp, blob)
	s.blobs[key] = cp
	return nil
}
