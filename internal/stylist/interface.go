package stylist

import "context"

// UseCase is the stylist collaborator surface. Every operation is a
// read of wardrobe state plus a Gemini round trip; nothing here mutates
// the collections.
type UseCase interface {
	// Analyze extracts clothing attributes from an item photo. When a
	// photo archive is configured the original image is also uploaded
	// there.
	Analyze(ctx context.Context, input AnalyzeInput) (AnalyzeOutput, error)

	// Recommend suggests outfits from the current wardrobe that match
	// the given style mood.
	Recommend(ctx context.Context, input RecommendInput) (RecommendOutput, error)

	// TryOn suggests outfits pairing a not-yet-cataloged item with the
	// current wardrobe.
	TryOn(ctx context.Context, input TryOnInput) (TryOnOutput, error)
}
