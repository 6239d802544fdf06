package kv

import (
	"context"

	"eco-wardrobe/internal/model"
	"eco-wardrobe/internal/wardrobe"
	"eco-wardrobe/internal/wardrobe/repository"
)

// ListItems returns items most-recent-first, optionally filtered by category.
func (r *kvRepository) ListItems(ctx context.Context, opt repository.ListItemsOptions) ([]model.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if opt.Category == "" {
		return cloneItems(r.items), nil
	}

	filtered := make([]model.Item, 0, len(r.items))
	for _, item := range r.items {
		if item.Category == opt.Category {
			filtered = append(filtered, cloneItem(item))
		}
	}
	return filtered, nil
}

// GetOneItem returns the zero Item when the id is absent.
func (r *kvRepository) GetOneItem(ctx context.Context, id string) (model.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range r.items {
		if item.ID == id {
			return cloneItem(item), nil
		}
	}
	return model.Item{}, nil
}

// AddItem front-inserts the item, rejecting duplicate ids.
func (r *kvRepository) AddItem(ctx context.Context, item model.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.items {
		if existing.ID == item.ID {
			return wardrobe.ErrDuplicateID
		}
	}

	r.items = append([]model.Item{item}, r.items...)
	r.persist(ctx, repository.KeyItems, r.items)
	return nil
}

// RemoveItem deletes by id. Absent ids are a no-op, so removal is
// idempotent. Logs referencing the removed item are left untouched.
func (r *kvRepository) RemoveItem(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, item := range r.items {
		if item.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			r.persist(ctx, repository.KeyItems, r.items)
			return nil
		}
	}
	return nil
}
