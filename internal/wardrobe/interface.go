package wardrobe

import "context"

// UseCase is the wardrobe store surface: the collection mutations plus
// the two pure queries (scores are folded into item listings). The
// presentation layer goes through this interface only and never touches
// the collections directly.
type UseCase interface {
	// Items
	AddItem(ctx context.Context, input AddItemInput) (AddItemOutput, error)
	ListItems(ctx context.Context, input ListItemsInput) (ListItemsOutput, error)
	DetailItem(ctx context.Context, id string) (DetailItemOutput, error)
	RemoveItem(ctx context.Context, id string) error

	// Outfit logs (append-only)
	LogOutfit(ctx context.Context, input LogOutfitInput) (LogOutfitOutput, error)
	ListLogs(ctx context.Context) (ListLogsOutput, error)
	WeeklyActivity(ctx context.Context) (WeeklyActivityOutput, error)

	// Style moods
	AddMood(ctx context.Context, input AddMoodInput) (AddMoodOutput, error)
	ListMoods(ctx context.Context) (ListMoodsOutput, error)
	DetailMood(ctx context.Context, id string) (DetailMoodOutput, error)
	RemoveMood(ctx context.Context, id string) error
}
