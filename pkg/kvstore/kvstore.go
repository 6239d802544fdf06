// Package kvstore provides the durable key-value blob storage used to
// mirror the wardrobe collections. The in-memory store is authoritative;
// this layer is written after every mutation and read once at startup.
package kvstore

import "context"

// Store is the key-value blob storage interface.
type Store interface {
	// Load returns the blob stored under key. The boolean reports whether
	// the key was present; an absent key is not an error.
	Load(ctx context.Context, key string) ([]byte, bool, error)

	// Save writes the blob under key, replacing any previous value.
	Save(ctx context.Context, key string, blob []byte) error
}
