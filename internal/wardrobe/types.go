package wardrobe

import (
	"eco-wardrobe/internal/activity"
	"eco-wardrobe/internal/model"
)

// UnknownItemName is the display sentinel for ids that no longer
// resolve to a cataloged item. Dangling references are a normal
// condition, not an error.
const UnknownItemName = "Unknown item"

// --- UseCase Inputs ---

// AddItemInput carries the recognition result being cataloged.
type AddItemInput struct {
	Name          string
	Category      model.Category
	Color         string
	Material      string
	Texture       string
	Vibe          string
	ImageURL      string
	MaterialScore int
	Tags          []string
}

type ListItemsInput struct {
	Category model.Category // empty = all categories
}

type LogOutfitInput struct {
	Date     string // ISO "YYYY-MM-DD"; empty defaults to today
	ItemIDs  []string
	MoodName string
}

type AddMoodInput struct {
	Name         string
	Description  string
	Keywords     []string
	MoodImageURL string
}

// --- UseCase Outputs ---

// ScoredItem is an Item with its derived desirability scores.
type ScoredItem struct {
	Item         model.Item
	UtilityScore int
	TotalScore   int
}

type AddItemOutput struct {
	Item ScoredItem
}

type ListItemsOutput struct {
	Items []ScoredItem
	Total int
}

type DetailItemOutput struct {
	Item ScoredItem
}

// ResolvedItem is a log or recommendation reference resolved against
// the current collection. Known is false for dangling ids.
type ResolvedItem struct {
	ID       string
	Name     string
	ImageURL string
	Known    bool
}

// LoggedOutfit pairs a log entry with its resolved item references.
type LoggedOutfit struct {
	Log   model.OutfitLog
	Items []ResolvedItem
}

type LogOutfitOutput struct {
	Log       model.OutfitLog
	WornItems int // items whose wear count was actually incremented
	Skipped   int // ids that no longer resolved to an item
}

type ListLogsOutput struct {
	Logs  []LoggedOutfit
	Total int
}

type WeeklyActivityOutput struct {
	Days []activity.DayStatus
}

type AddMoodOutput struct {
	Mood model.StyleMood
}

type ListMoodsOutput struct {
	Moods []model.StyleMood
	Total int
}

type DetailMoodOutput struct {
	Mood model.StyleMood
}
