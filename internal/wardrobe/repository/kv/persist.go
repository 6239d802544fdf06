package kv

import (
	"context"
	"encoding/json"
	"fmt"

	"eco-wardrobe/internal/wardrobe/repository"
	"eco-wardrobe/pkg/kvstore"
)

// Load hydrates the three collections from the blob store. Absent keys
// leave the corresponding collection empty.
func (r *kvRepository) Load(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := loadCollection(ctx, r.store, repository.KeyItems, &r.items); err != nil {
		return err
	}
	if err := loadCollection(ctx, r.store, repository.KeyLogs, &r.logs); err != nil {
		return err
	}
	if err := loadCollection(ctx, r.store, repository.KeyMoods, &r.moods); err != nil {
		return err
	}

	r.l.Infof(ctx, "wardrobe loaded: %d items, %d logs, %d moods", len(r.items), len(r.logs), len(r.moods))
	return nil
}

func loadCollection[T any](ctx context.Context, store kvstore.Store, key string, dst *[]T) error {
	blob, ok, err := store.Load(ctx, key)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", repository.ErrFailedToLoad, key, err)
	}
	if !ok {
		return nil
	}
	if err := json.Unmarshal(blob, dst); err != nil {
		return fmt.Errorf("%w: %s: %v", repository.ErrFailedToDecode, key, err)
	}
	return nil
}

// persist mirrors one collection to the blob store. A failed write is
// logged and swallowed: in-memory state stays authoritative for the
// session, so the user's action is not lost even though durability is
// at risk. Callers must hold the mutex.
func (r *kvRepository) persist(ctx context.Context, key string, collection any) {
	blob, err := json.Marshal(collection)
	if err != nil {
		r.l.Errorf(ctx, "repo.persist marshal %s: %v", key, err)
		return
	}
	if err := r.store.Save(ctx, key, blob); err != nil {
		r.l.Warnf(ctx, "repo.persist save %s (state kept in memory): %v", key, err)
	}
}
