package usecase

import (
	"context"

	"eco-wardrobe/internal/activity"
	"eco-wardrobe/internal/model"
	"eco-wardrobe/internal/wardrobe"
	repo "eco-wardrobe/internal/wardrobe/repository"
)

// LogOutfit records that a set of items was worn. The log append and
// the wear-count increments happen in one atomic repository step.
func (uc *implUseCase) LogOutfit(ctx context.Context, input wardrobe.LogOutfitInput) (wardrobe.LogOutfitOutput, error) {
	if len(input.ItemIDs) == 0 {
		return wardrobe.LogOutfitOutput{}, wardrobe.ErrEmptySelection
	}

	now := uc.now()
	date := input.Date
	if date == "" {
		date = now.Format(model.DateFormat)
	}

	logEntry := model.OutfitLog{
		ID:       uc.gen.NewID(),
		Date:     date,
		ItemIDs:  input.ItemIDs,
		MoodName: input.MoodName,
	}

	worn, err := uc.repo.AppendLog(ctx, repo.AppendLogOptions{Log: logEntry, WornAt: now})
	if err != nil {
		uc.l.Errorf(ctx, "uc.LogOutfit AppendLog: %v", err)
		return wardrobe.LogOutfitOutput{}, err
	}

	skipped := len(input.ItemIDs) - worn
	if skipped > 0 {
		uc.l.Infof(ctx, "uc.LogOutfit: %d referenced item(s) no longer cataloged, skipped", skipped)
	}

	return wardrobe.LogOutfitOutput{Log: logEntry, WornItems: worn, Skipped: skipped}, nil
}

// ListLogs returns outfit logs most-recent-first with their item
// references resolved against the current collection.
func (uc *implUseCase) ListLogs(ctx context.Context) (wardrobe.ListLogsOutput, error) {
	logs, err := uc.repo.ListLogs(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListLogs ListLogs: %v", err)
		return wardrobe.ListLogsOutput{}, err
	}

	items, err := uc.repo.ListItems(ctx, repo.ListItemsOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListLogs ListItems: %v", err)
		return wardrobe.ListLogsOutput{}, err
	}
	byID := make(map[string]model.Item, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}

	resolved := make([]wardrobe.LoggedOutfit, len(logs))
	for i, logEntry := range logs {
		resolved[i] = wardrobe.LoggedOutfit{
			Log:   logEntry,
			Items: resolveItems(logEntry.ItemIDs, byID),
		}
	}

	return wardrobe.ListLogsOutput{Logs: resolved, Total: len(resolved)}, nil
}

// WeeklyActivity returns the rolling 7-day worn calendar ending today.
func (uc *implUseCase) WeeklyActivity(ctx context.Context) (wardrobe.WeeklyActivityOutput, error) {
	logs, err := uc.repo.ListLogs(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.WeeklyActivity ListLogs: %v", err)
		return wardrobe.WeeklyActivityOutput{}, err
	}
	return wardrobe.WeeklyActivityOutput{Days: activity.Weekly(uc.now(), logs)}, nil
}

// resolveItems maps ids to display references, marking dangling ids as
// unknown instead of failing.
func resolveItems(itemIDs []string, byID map[string]model.Item) []wardrobe.ResolvedItem {
	refs := make([]wardrobe.ResolvedItem, len(itemIDs))
	for i, id := range itemIDs {
		if item, ok := byID[id]; ok {
			refs[i] = wardrobe.ResolvedItem{ID: id, Name: item.Name, ImageURL: item.ImageURL, Known: true}
			continue
		}
		refs[i] = wardrobe.ResolvedItem{ID: id, Name: wardrobe.UnknownItemName}
	}
	return refs
}
