package usecase

import (
	"context"

	"eco-wardrobe/internal/model"
	"eco-wardrobe/internal/scoring"
	"eco-wardrobe/internal/wardrobe"
	repo "eco-wardrobe/internal/wardrobe/repository"
)

// AddItem catalogs a freshly analyzed clothing piece with a generated
// id and a zero wear count.
func (uc *implUseCase) AddItem(ctx context.Context, input wardrobe.AddItemInput) (wardrobe.AddItemOutput, error) {
	item := model.Item{
		ID:            uc.gen.NewID(),
		Name:          input.Name,
		Category:      input.Category,
		Color:         input.Color,
		Material:      input.Material,
		Texture:       input.Texture,
		Vibe:          input.Vibe,
		ImageURL:      input.ImageURL,
		MaterialScore: input.MaterialScore,
		TimesWorn:     0,
		Tags:          input.Tags,
		AddedAt:       uc.now(),
	}

	if err := uc.repo.AddItem(ctx, item); err != nil {
		uc.l.Errorf(ctx, "uc.AddItem AddItem: %v", err)
		return wardrobe.AddItemOutput{}, err
	}

	return wardrobe.AddItemOutput{Item: score(item)}, nil
}

// ListItems returns items most-recent-first with derived scores,
// optionally filtered by category.
func (uc *implUseCase) ListItems(ctx context.Context, input wardrobe.ListItemsInput) (wardrobe.ListItemsOutput, error) {
	items, err := uc.repo.ListItems(ctx, repo.ListItemsOptions{Category: input.Category})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListItems ListItems: %v", err)
		return wardrobe.ListItemsOutput{}, err
	}

	scored := make([]wardrobe.ScoredItem, len(items))
	for i, item := range items {
		scored[i] = score(item)
	}

	return wardrobe.ListItemsOutput{Items: scored, Total: len(scored)}, nil
}

// DetailItem retrieves a single item by id. Returns ErrItemNotFound
// when absent.
func (uc *implUseCase) DetailItem(ctx context.Context, id string) (wardrobe.DetailItemOutput, error) {
	item, err := uc.repo.GetOneItem(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.DetailItem GetOneItem: %v", err)
		return wardrobe.DetailItemOutput{}, err
	}
	if item.ID == "" {
		return wardrobe.DetailItemOutput{}, wardrobe.ErrItemNotFound
	}
	return wardrobe.DetailItemOutput{Item: score(item)}, nil
}

// RemoveItem deletes an item by id. Removal is idempotent; logs that
// reference the id keep it as a dangling reference.
func (uc *implUseCase) RemoveItem(ctx context.Context, id string) error {
	if err := uc.repo.RemoveItem(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.RemoveItem RemoveItem: %v", err)
		return err
	}
	return nil
}

func score(item model.Item) wardrobe.ScoredItem {
	return wardrobe.ScoredItem{
		Item:         item,
		UtilityScore: scoring.Utility(item),
		TotalScore:   scoring.Total(item),
	}
}
