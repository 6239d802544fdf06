package usecase

import (
	"context"
	"encoding/base64"
	"fmt"

	"eco-wardrobe/internal/model"
	"eco-wardrobe/internal/stylist"
	"eco-wardrobe/pkg/gdrive"
	"eco-wardrobe/pkg/gemini"
)

// Analyze sends the photo to Gemini for attribute extraction and, when
// an archive is configured, uploads the original image to Drive.
// Archive failures are logged and swallowed; recognition still counts.
func (uc *implUseCase) Analyze(ctx context.Context, input stylist.AnalyzeInput) (stylist.AnalyzeOutput, error) {
	if input.ImageData == "" {
		return stylist.AnalyzeOutput{}, stylist.ErrEmptyImage
	}
	mimeType := input.MIMEType
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	resp, err := uc.ai.GenerateContent(ctx, gemini.GenerateRequest{
		Model: uc.analyzeModel,
		Contents: []gemini.Content{{
			Parts: []gemini.Part{
				{Text: analyzePrompt()},
				{InlineData: &gemini.InlineData{MIMEType: mimeType, Data: input.ImageData}},
			},
		}},
		GenerationConfig: &gemini.GenerationConfig{
			ResponseMIMEType: "application/json",
		},
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Analyze gemini.GenerateContent: %v", err)
		return stylist.AnalyzeOutput{}, fmt.Errorf("%w: %v", stylist.ErrStylistUnavailable, err)
	}

	var analysis model.Analysis
	if err := decodeReply(resp.Text(), &analysis); err != nil {
		uc.l.Errorf(ctx, "uc.Analyze decodeReply: %v", err)
		return stylist.AnalyzeOutput{}, err
	}
	if !analysis.Category.Valid() {
		analysis.Category = model.CategoryTops
	}

	output := stylist.AnalyzeOutput{Analysis: analysis}
	if input.Archive && uc.drive != nil {
		output.ArchiveURL = uc.archivePhoto(ctx, analysis.Name, mimeType, input.ImageData)
	}
	return output, nil
}

// archivePhoto uploads the original image to the Drive folder and
// returns its web link, or "" when the upload fails.
func (uc *implUseCase) archivePhoto(ctx context.Context, name, mimeType, imageData string) string {
	data, err := base64.StdEncoding.DecodeString(imageData)
	if err != nil {
		uc.l.Warnf(ctx, "uc.archivePhoto decode image: %v", err)
		return ""
	}

	photo, err := uc.drive.UploadPhoto(ctx, gdrive.UploadPhotoRequest{
		Name:     name,
		MIMEType: mimeType,
		FolderID: uc.driveFolderID,
		Data:     data,
	})
	if err != nil {
		uc.l.Warnf(ctx, "uc.archivePhoto drive.UploadPhoto: %v", err)
		return ""
	}
	return photo.WebViewLink
}
