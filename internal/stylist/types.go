package stylist

import (
	"eco-wardrobe/internal/model"
	"eco-wardrobe/internal/wardrobe"
)

// --- UseCase Inputs ---

// AnalyzeInput carries the photo to recognize. ImageData is raw base64
// without a data-URL prefix.
type AnalyzeInput struct {
	ImageData string
	MIMEType  string // defaults to image/jpeg
	Archive   bool   // upload the photo to the archive when configured
}

type RecommendInput struct {
	MoodID string
}

// TryOnInput describes a candidate item that is not cataloged yet,
// usually the output of a previous Analyze call.
type TryOnInput struct {
	Name    string
	Texture string
	Vibe    string
}

// --- UseCase Outputs ---

type AnalyzeOutput struct {
	Analysis   model.Analysis
	ArchiveURL string // empty when no archive is configured
}

// StyledOutfit pairs a recommendation with its resolved item references.
type StyledOutfit struct {
	Recommendation model.Recommendation
	Items          []wardrobe.ResolvedItem
}

type RecommendOutput struct {
	Mood    model.StyleMood
	Outfits []StyledOutfit
	Cached  bool
}

type TryOnOutput struct {
	Outfits []StyledOutfit
}
