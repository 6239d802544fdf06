package model

import "time"

// Category is the fixed set of wardrobe item categories.
type Category string

const (
	CategoryTops        Category = "Tops"
	CategoryBottoms     Category = "Bottoms"
	CategoryOuterwear   Category = "Outerwear"
	CategoryShoes       Category = "Shoes"
	CategoryAccessories Category = "Accessories"
	CategoryDresses     Category = "Dresses"
)

// Categories lists every valid category in display order.
var Categories = []Category{
	CategoryTops,
	CategoryBottoms,
	CategoryOuterwear,
	CategoryShoes,
	CategoryAccessories,
	CategoryDresses,
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Item is a cataloged clothing piece. The id is immutable after
// creation; TimesWorn only increases, and only through logging an
// outfit that includes the item.
type Item struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Category      Category   `json:"category"`
	Color         string     `json:"color"`
	Material      string     `json:"material"`
	Texture       string     `json:"texture"`
	Vibe          string     `json:"vibe"`
	ImageURL      string     `json:"imageUrl"`
	MaterialScore int        `json:"materialScore"` // 0-100 ecological score
	TimesWorn     int        `json:"timesWorn"`
	LastWornAt    *time.Time `json:"lastWornAt,omitempty"`
	Tags          []string   `json:"tags,omitempty"`
	AddedAt       time.Time  `json:"addedAt"`
}

// StyleMood is a user-authored aesthetic profile. Immutable once
// created except for full removal.
type StyleMood struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Keywords     []string `json:"keywords"` // order preserved, duplicates allowed
	MoodImageURL string   `json:"moodImageUrl,omitempty"`
}

// OutfitLog records that a set of items was worn on a calendar date.
// Append-only. ItemIDs may reference since-removed items; readers must
// treat missing lookups as unknown items, not errors.
type OutfitLog struct {
	ID       string   `json:"id"`
	Date     string   `json:"date"` // ISO "YYYY-MM-DD", no time component
	ItemIDs  []string `json:"itemIds"`
	MoodName string   `json:"moodName,omitempty"`
}

// Recommendation is an outfit suggestion produced by the stylist
// collaborator. Stored nowhere; item ids are resolved at read time and
// may dangle.
type Recommendation struct {
	ID                 string   `json:"id"`
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	ItemIDs            []string `json:"itemIds"`
	VibeAlignment      string   `json:"vibeAlignment"`
	SustainabilityNote string   `json:"sustainabilityNote"`
}

// Analysis is the attribute set the recognition collaborator extracts
// from an item photo.
type Analysis struct {
	Name              string   `json:"name"`
	Category          Category `json:"category"`
	Color             string   `json:"color"`
	Material          string   `json:"material"`
	Texture           string   `json:"texture"`
	Vibe              string   `json:"vibe"`
	Tags              []string `json:"tags"`
	MaterialScore     int      `json:"materialScore"` // 1-100
	SustainabilityTip string   `json:"sustainabilityTip"`
}

// DateFormat is the calendar-date layout used by OutfitLog.Date.
const DateFormat = "2006-01-02"
