package repository

import "eco-wardrobe/internal/model"

// ListItemsOptions holds filter parameters for listing items.
type ListItemsOptions struct {
	Category model.Category // empty = all categories
}

// Storage keys for the three persisted collections. Each collection is
// mirrored independently.
const (
	KeyItems = "wardrobe_items"
	KeyLogs  = "wardrobe_logs"
	KeyMoods = "wardrobe_moods"
)
