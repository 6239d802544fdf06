package http

import (
	"github.com/gin-gonic/gin"

	"eco-wardrobe/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Every
// stylist route costs a Gemini call, so all of them sit behind the
// rate limiter.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/analyze", mw.StylistRateLimit(), h.Analyze)
	rg.POST("/recommendations", mw.StylistRateLimit(), h.Recommend)
	rg.POST("/tryon", mw.StylistRateLimit(), h.TryOn)
}
