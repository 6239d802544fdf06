package usecase

import (
	"context"
	"fmt"
	"strings"

	"eco-wardrobe/internal/model"
	"eco-wardrobe/internal/stylist"
	"eco-wardrobe/internal/wardrobe"
	"eco-wardrobe/internal/wardrobe/repository"
	"eco-wardrobe/pkg/gemini"
)

// Recommend asks Gemini for outfits matching the mood, built strictly
// from the current wardrobe. Replies are cached per mood and wardrobe
// fingerprint, so a repeat question with an unchanged closet skips the
// round trip.
func (uc *implUseCase) Recommend(ctx context.Context, input stylist.RecommendInput) (stylist.RecommendOutput, error) {
	mood, err := uc.repo.GetOneMood(ctx, input.MoodID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Recommend repo.GetOneMood: %v", err)
		return stylist.RecommendOutput{}, err
	}
	if mood.ID == "" {
		return stylist.RecommendOutput{}, stylist.ErrMoodNotFound
	}

	items, err := uc.repo.ListItems(ctx, repository.ListItemsOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Recommend repo.ListItems: %v", err)
		return stylist.RecommendOutput{}, err
	}

	key := recommendCacheKey(mood.ID, items)
	if recs, ok := uc.cache.Get(key); ok {
		return stylist.RecommendOutput{
			Mood:    mood,
			Outfits: uc.resolveOutfits(items, recs),
			Cached:  true,
		}, nil
	}

	recs, err := uc.generateOutfits(ctx, recommendPrompt(mood, items))
	if err != nil {
		return stylist.RecommendOutput{}, err
	}
	uc.cache.Add(key, recs)

	return stylist.RecommendOutput{
		Mood:    mood,
		Outfits: uc.resolveOutfits(items, recs),
	}, nil
}

// generateOutfits runs the ideas model and parses the reply into
// recommendations. Shared by Recommend and TryOn.
func (uc *implUseCase) generateOutfits(ctx context.Context, prompt string) ([]model.Recommendation, error) {
	resp, err := uc.ai.GenerateContent(ctx, gemini.GenerateRequest{
		Model: uc.ideasModel,
		Contents: []gemini.Content{{
			Parts: []gemini.Part{{Text: prompt}},
		}},
		GenerationConfig: &gemini.GenerationConfig{
			ResponseMIMEType: "application/json",
		},
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.generateOutfits gemini.GenerateContent: %v", err)
		return nil, fmt.Errorf("%w: %v", stylist.ErrStylistUnavailable, err)
	}

	var recs []model.Recommendation
	if err := decodeReply(resp.Text(), &recs); err != nil {
		uc.l.Errorf(ctx, "uc.generateOutfits decodeReply: %v", err)
		return nil, err
	}
	return recs, nil
}

// resolveOutfits maps recommendation item ids onto the wardrobe. The
// model occasionally hallucinates an id; those resolve to the unknown
// placeholder rather than failing the whole recommendation.
func (uc *implUseCase) resolveOutfits(items []model.Item, recs []model.Recommendation) []stylist.StyledOutfit {
	byID := make(map[string]model.Item, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}

	outfits := make([]stylist.StyledOutfit, len(recs))
	for i, rec := range recs {
		outfits[i] = stylist.StyledOutfit{
			Recommendation: rec,
			Items:          resolveRefs(rec.ItemIDs, byID),
		}
	}
	return outfits
}

// resolveRefs resolves recommendation item ids against the wardrobe.
// Dangling ids keep their position under the unknown-item placeholder.
func resolveRefs(ids []string, byID map[string]model.Item) []wardrobe.ResolvedItem {
	resolved := make([]wardrobe.ResolvedItem, len(ids))
	for i, id := range ids {
		item, ok := byID[id]
		if !ok {
			resolved[i] = wardrobe.ResolvedItem{ID: id, Name: wardrobe.UnknownItemName}
			continue
		}
		resolved[i] = wardrobe.ResolvedItem{
			ID:       item.ID,
			Name:     item.Name,
			ImageURL: item.ImageURL,
			Known:    true,
		}
	}
	return resolved
}

// recommendCacheKey fingerprints the wardrobe so any mutation (add,
// remove, wear) produces a different key.
func recommendCacheKey(moodID string, items []model.Item) string {
	var b strings.Builder
	b.WriteString(moodID)
	for _, item := range items {
		fmt.Fprintf(&b, "|%s:%d", item.ID, item.TimesWorn)
	}
	return b.String()
}
