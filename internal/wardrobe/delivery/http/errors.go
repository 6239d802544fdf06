package http

import (
	"errors"

	"eco-wardrobe/internal/wardrobe"
	"eco-wardrobe/pkg/response"

	"github.com/gin-gonic/gin"
)

// respondError translates use-case errors into the HTTP envelope.
// Unknown errors are hidden behind the generic 500 message.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, wardrobe.ErrDuplicateID):
		response.Conflict(c, err)
	case errors.Is(err, wardrobe.ErrItemNotFound), errors.Is(err, wardrobe.ErrMoodNotFound):
		response.NotFound(c, err)
	case errors.Is(err, wardrobe.ErrEmptySelection):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}
