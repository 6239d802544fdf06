package kv

import (
	"context"

	"eco-wardrobe/internal/model"
	"eco-wardrobe/internal/wardrobe"
	"eco-wardrobe/internal/wardrobe/repository"
)

// ListMoods returns the style moods in creation order.
func (r *kvRepository) ListMoods(ctx context.Context) ([]model.StyleMood, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return cloneMoods(r.moods), nil
}

// GetOneMood returns the zero StyleMood when the id is absent.
func (r *kvRepository) GetOneMood(ctx context.Context, id string) (model.StyleMood, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, mood := range r.moods {
		if mood.ID == id {
			return cloneMood(mood), nil
		}
	}
	return model.StyleMood{}, nil
}

// AddMood appends the mood, rejecting duplicate ids. No side effects on
// items or logs.
func (r *kvRepository) AddMood(ctx context.Context, mood model.StyleMood) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.moods {
		if existing.ID == mood.ID {
			return wardrobe.ErrDuplicateID
		}
	}

	r.moods = append(r.moods, mood)
	r.persist(ctx, repository.KeyMoods, r.moods)
	return nil
}

// RemoveMood deletes by id; absent ids are a no-op.
func (r *kvRepository) RemoveMood(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, mood := range r.moods {
		if mood.ID == id {
			r.moods = append(r.moods[:i], r.moods[i+1:]...)
			r.persist(ctx, repository.KeyMoods, r.moods)
			return nil
		}
	}
	return nil
}
