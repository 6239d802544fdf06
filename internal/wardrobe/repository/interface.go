package repository

import (
	"context"
	"time"

	"eco-wardrobe/internal/model"
)

// Repository is the composed interface for the wardrobe data store.
// Implementations own the three collections for the lifetime of the
// process; the durable layer is a one-way mirror written after every
// mutation and read once at startup.
type Repository interface {
	ItemRepository
	MoodRepository
	LogRepository

	// Load hydrates all three collections from the durable mirror.
	// Called once at startup; absent keys yield empty collections.
	Load(ctx context.Context) error
}

// ItemRepository defines data access for cataloged items.
type ItemRepository interface {
	// ListItems returns items most-recent-first, optionally filtered.
	ListItems(ctx context.Context, opt ListItemsOptions) ([]model.Item, error)

	// GetOneItem returns the zero Item when the id is absent.
	GetOneItem(ctx context.Context, id string) (model.Item, error)

	// AddItem front-inserts the item. Returns wardrobe.ErrDuplicateID
	// when the id already exists.
	AddItem(ctx context.Context, item model.Item) error

	// RemoveItem deletes by id. Removing an absent id is a no-op.
	RemoveItem(ctx context.Context, id string) error
}

// MoodRepository defines data access for style moods.
type MoodRepository interface {
	ListMoods(ctx context.Context) ([]model.StyleMood, error)
	GetOneMood(ctx context.Context, id string) (model.StyleMood, error)
	AddMood(ctx context.Context, mood model.StyleMood) error
	RemoveMood(ctx context.Context, id string) error
}

// LogRepository defines data access for outfit logs.
type LogRepository interface {
	// ListLogs returns logs most-recent-first.
	ListLogs(ctx context.Context) ([]model.OutfitLog, error)

	// AppendLog atomically front-inserts the log and increments the
	// wear count (and last-worn time) of every referenced item still
	// present. Ids that no longer resolve are silently skipped; the
	// returned count is the number of items actually bumped.
	AppendLog(ctx context.Context, opt AppendLogOptions) (int, error)
}

// AppendLogOptions holds parameters for appending an outfit log.
type AppendLogOptions struct {
	Log    model.OutfitLog
	WornAt time.Time // last-worn timestamp applied to matched items
}
