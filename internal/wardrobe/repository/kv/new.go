// Package kv implements the wardrobe repository on top of the
// key-value blob store. The in-memory collections are authoritative;
// the blob store is a mirror refreshed after every mutation.
package kv

import (
	"sync"

	"eco-wardrobe/internal/model"
	"eco-wardrobe/pkg/kvstore"
	"eco-wardrobe/pkg/log"
)

// kvRepository is the private implementation of repository.Repository.
// The mutex makes every mutation run to completion before the next one
// starts, which is what keeps AppendLog atomic.
type kvRepository struct {
	mu sync.Mutex

	items []model.Item      // most-recent-first
	logs  []model.OutfitLog // most-recent-first, append-only
	moods []model.StyleMood

	store kvstore.Store
	l     log.Logger
}

// New creates a new kv-backed wardrobe repository.
func New(store kvstore.Store, l log.Logger) *kvRepository {
	return &kvRepository{
		store: store,
		l:     l,
	}
}
