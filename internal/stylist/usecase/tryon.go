package usecase

import (
	"context"

	"eco-wardrobe/internal/stylist"
	"eco-wardrobe/internal/wardrobe/repository"
)

// TryOn asks Gemini how a candidate item would pair with the current
// wardrobe. The candidate is not cataloged, so nothing is cached.
func (uc *implUseCase) TryOn(ctx context.Context, input stylist.TryOnInput) (stylist.TryOnOutput, error) {
	items, err := uc.repo.ListItems(ctx, repository.ListItemsOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "uc.TryOn repo.ListItems: %v", err)
		return stylist.TryOnOutput{}, err
	}

	recs, err := uc.generateOutfits(ctx, tryOnPrompt(input.Name, input.Texture, input.Vibe, items))
	if err != nil {
		return stylist.TryOnOutput{}, err
	}

	return stylist.TryOnOutput{Outfits: uc.resolveOutfits(items, recs)}, nil
}
