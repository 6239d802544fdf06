package kv

import (
	"slices"

	"eco-wardrobe/internal/model"
)

// Handed-out values must not alias the internal collections: a caller
// mutating a shared slice or pointer in place would bypass the mutex
// and the persistence mirror. Every read path returns deep copies.

func cloneItem(item model.Item) model.Item {
	item.Tags = slices.Clone(item.Tags)
	if item.LastWornAt != nil {
		wornAt := *item.LastWornAt
		item.LastWornAt = &wornAt
	}
	return item
}

func cloneItems(items []model.Item) []model.Item {
	out := make([]model.Item, len(items))
	for i, item := range items {
		out[i] = cloneItem(item)
	}
	return out
}

func cloneLogs(logs []model.OutfitLog) []model.OutfitLog {
	out := make([]model.OutfitLog, len(logs))
	for i, l := range logs {
		l.ItemIDs = slices.Clone(l.ItemIDs)
		out[i] = l
	}
	return out
}

func cloneMood(mood model.StyleMood) model.StyleMood {
	mood.Keywords = slices.Clone(mood.Keywords)
	return mood
}

func cloneMoods(moods []model.StyleMood) []model.StyleMood {
	out := make([]model.StyleMood, len(moods))
	for i, mood := range moods {
		out[i] = cloneMood(mood)
	}
	return out
}
