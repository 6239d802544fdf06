package http

import (
	"errors"

	"eco-wardrobe/internal/stylist"
	"eco-wardrobe/pkg/response"

	"github.com/gin-gonic/gin"
)

// respondError translates stylist errors into the HTTP envelope.
// Collaborator failures surface as 502 so the client can distinguish
// "Gemini is down" from "the request was wrong".
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, stylist.ErrMoodNotFound):
		response.NotFound(c, err)
	case errors.Is(err, stylist.ErrEmptyImage):
		response.Error(c, err, nil)
	case errors.Is(err, stylist.ErrStylistUnavailable), errors.Is(err, stylist.ErrBadStylistReply):
		response.BadGateway(c, err)
	default:
		response.InternalError(c, err)
	}
}
