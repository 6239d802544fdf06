package http

import (
	"strings"

	"eco-wardrobe/internal/model"
	"eco-wardrobe/internal/stylist"
)

// --- Request DTOs ---

type analyzeReq struct {
	// ImageData accepts raw base64 or a full data URL; the prefix is
	// stripped before the payload reaches the recognizer.
	ImageData string `json:"imageData" binding:"required"`
	MIMEType  string `json:"mimeType"`
	Archive   bool   `json:"archive"`
}

func (r analyzeReq) validate() error { return nil }

func (r analyzeReq) toInput() stylist.AnalyzeInput {
	data := r.ImageData
	if idx := strings.Index(data, ","); idx >= 0 && strings.HasPrefix(data, "data:") {
		data = data[idx+1:]
	}
	return stylist.AnalyzeInput{
		ImageData: data,
		MIMEType:  r.MIMEType,
		Archive:   r.Archive,
	}
}

type recommendReq struct {
	MoodID string `json:"moodId" binding:"required"`
}

func (r recommendReq) validate() error { return nil }

func (r recommendReq) toInput() stylist.RecommendInput {
	return stylist.RecommendInput{MoodID: r.MoodID}
}

type tryOnReq struct {
	Name    string `json:"name"    binding:"required,min=1,max=255"`
	Texture string `json:"texture" binding:"max=255"`
	Vibe    string `json:"vibe"    binding:"max=255"`
}

func (r tryOnReq) validate() error { return nil }

func (r tryOnReq) toInput() stylist.TryOnInput {
	return stylist.TryOnInput{
		Name:    r.Name,
		Texture: r.Texture,
		Vibe:    r.Vibe,
	}
}

// --- Response DTOs ---

type analyzeResp struct {
	Analysis   model.Analysis `json:"analysis"`
	ArchiveURL string         `json:"archiveUrl,omitempty"`
}

func (h *handler) newAnalyzeResp(out stylist.AnalyzeOutput) analyzeResp {
	return analyzeResp{
		Analysis:   out.Analysis,
		ArchiveURL: out.ArchiveURL,
	}
}

type outfitItemResp struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl,omitempty"`
	Known    bool   `json:"known"`
}

type outfitResp struct {
	ID                 string           `json:"id"`
	Title              string           `json:"title"`
	Description        string           `json:"description"`
	VibeAlignment      string           `json:"vibeAlignment"`
	SustainabilityNote string           `json:"sustainabilityNote"`
	Items              []outfitItemResp `json:"items"`
}

func newOutfitResp(outfit stylist.StyledOutfit) outfitResp {
	items := make([]outfitItemResp, len(outfit.Items))
	for i, it := range outfit.Items {
		items[i] = outfitItemResp{
			ID:       it.ID,
			Name:     it.Name,
			ImageURL: it.ImageURL,
			Known:    it.Known,
		}
	}
	return outfitResp{
		ID:                 outfit.Recommendation.ID,
		Title:              outfit.Recommendation.Title,
		Description:        outfit.Recommendation.Description,
		VibeAlignment:      outfit.Recommendation.VibeAlignment,
		SustainabilityNote: outfit.Recommendation.SustainabilityNote,
		Items:              items,
	}
}

func newOutfitResps(outfits []stylist.StyledOutfit) []outfitResp {
	resps := make([]outfitResp, len(outfits))
	for i, outfit := range outfits {
		resps[i] = newOutfitResp(outfit)
	}
	return resps
}

type recommendResp struct {
	MoodName string       `json:"moodName"`
	Outfits  []outfitResp `json:"outfits"`
	Cached   bool         `json:"cached"`
}

func (h *handler) newRecommendResp(out stylist.RecommendOutput) recommendResp {
	return recommendResp{
		MoodName: out.Mood.Name,
		Outfits:  newOutfitResps(out.Outfits),
		Cached:   out.Cached,
	}
}

type tryOnResp struct {
	Outfits []outfitResp `json:"outfits"`
}

func (h *handler) newTryOnResp(out stylist.TryOnOutput) tryOnResp {
	return tryOnResp{Outfits: newOutfitResps(out.Outfits)}
}
