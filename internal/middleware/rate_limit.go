package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"eco-wardrobe/pkg/response"
)

var errTooManyRequests = errors.New("too many stylist requests, slow down")

// StylistRateLimit rejects requests once the Gemini budget is exhausted.
// Allow (not Wait) so the client gets an immediate 429 instead of a
// stalled connection.
func (m Middleware) StylistRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.stylist.Allow() {
			m.l.Warnf(c.Request.Context(), "stylist rate limit hit: %s %s", c.Request.Method, c.Request.URL.Path)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, response.Resp{
				ErrorCode: http.StatusTooManyRequests,
				Message:   errTooManyRequests.Error(),
			})
			return
		}
		c.Next()
	}
}
