package usecase

import (
	"context"

	"eco-wardrobe/internal/model"
	"eco-wardrobe/internal/wardrobe"
)

// AddMood creates a user-authored style mood. Name and description are
// validated at the delivery boundary; the store does not re-validate.
func (uc *implUseCase) AddMood(ctx context.Context, input wardrobe.AddMoodInput) (wardrobe.AddMoodOutput, error) {
	mood := model.StyleMood{
		ID:           uc.gen.NewID(),
		Name:         input.Name,
		Description:  input.Description,
		Keywords:     input.Keywords,
		MoodImageURL: input.MoodImageURL,
	}

	if err := uc.repo.AddMood(ctx, mood); err != nil {
		uc.l.Errorf(ctx, "uc.AddMood AddMood: %v", err)
		return wardrobe.AddMoodOutput{}, err
	}

	return wardrobe.AddMoodOutput{Mood: mood}, nil
}

// ListMoods returns all style moods.
func (uc *implUseCase) ListMoods(ctx context.Context) (wardrobe.ListMoodsOutput, error) {
	moods, err := uc.repo.ListMoods(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListMoods ListMoods: %v", err)
		return wardrobe.ListMoodsOutput{}, err
	}
	return wardrobe.ListMoodsOutput{Moods: moods, Total: len(moods)}, nil
}

// DetailMood retrieves one mood by id. Returns ErrMoodNotFound when absent.
func (uc *implUseCase) DetailMood(ctx context.Context, id string) (wardrobe.DetailMoodOutput, error) {
	mood, err := uc.repo.GetOneMood(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.DetailMood GetOneMood: %v", err)
		return wardrobe.DetailMoodOutput{}, err
	}
	if mood.ID == "" {
		return wardrobe.DetailMoodOutput{}, wardrobe.ErrMoodNotFound
	}
	return wardrobe.DetailMoodOutput{Mood: mood}, nil
}

// RemoveMood deletes a mood by id; idempotent, no side effects on
// items or logs.
func (uc *implUseCase) RemoveMood(ctx context.Context, id string) error {
	if err := uc.repo.RemoveMood(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.RemoveMood RemoveMood: %v", err)
		return err
	}
	return nil
}
