package http

import (
	"github.com/gin-gonic/gin"

	"eco-wardrobe/pkg/response"
)

// Analyze godoc
// @Summary     Recognize a clothing item from a photo
// @Description Extracts name, category, color, material, texture, vibe, tags and an ecological material score from an item photo.
// @Tags        Stylist
// @Accept      json
// @Produce     json
// @Param       body body analyzeReq true "Base64 image payload"
// @Success     200 {object} analyzeResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     502 {object} response.Resp "Bad Gateway - recognizer unavailable"
// @Router      /api/v1/stylist/analyze [POST]
func (h *handler) Analyze(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAnalyzeReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Analyze(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Analyze: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newAnalyzeResp(output))
}

// Recommend godoc
// @Summary     Outfit recommendations for a style mood
// @Description Suggests outfits built from the current wardrobe that match the chosen mood. Repeat asks with an unchanged wardrobe are served from cache.
// @Tags        Stylist
// @Accept      json
// @Produce     json
// @Param       body body recommendReq true "Mood selection"
// @Success     200 {object} recommendResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found - unknown mood"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     502 {object} response.Resp "Bad Gateway - stylist unavailable"
// @Router      /api/v1/stylist/recommendations [POST]
func (h *handler) Recommend(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRecommendReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Recommend(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Recommend: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newRecommendResp(output))
}

// TryOn godoc
// @Summary     Pair a new item with the current wardrobe
// @Description Suggests outfits combining a not-yet-cataloged item with existing pieces.
// @Tags        Stylist
// @Accept      json
// @Produce     json
// @Param       body body tryOnReq true "Candidate item attributes"
// @Success     200 {object} tryOnResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     502 {object} response.Resp "Bad Gateway - stylist unavailable"
// @Router      /api/v1/stylist/tryon [POST]
func (h *handler) TryOn(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processTryOnReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.TryOn(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.TryOn: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newTryOnResp(output))
}
