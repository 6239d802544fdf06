package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"eco-wardrobe/internal/middleware"
	stylistHTTP "eco-wardrobe/internal/stylist/delivery/http"
	stylistUC "eco-wardrobe/internal/stylist/usecase"
)

// setupStylistDomain initializes the Gemini-backed stylist domain and
// registers its rate-limited routes.
func (srv *HTTPServer) setupStylistDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	// 1. UseCase on the shared repository and the Gemini client
	uc := stylistUC.New(srv.repo, srv.geminiClient, srv.l, stylistUC.Config{
		AnalyzeModel:  srv.analyzeModel,
		IdeasModel:    srv.ideasModel,
		Drive:         srv.driveClient,
		DriveFolderID: srv.driveFolderID,
	})

	// 2. HTTP Handler
	h := stylistHTTP.New(srv.l, uc)

	// 3. Routes: registers /api/v1/stylist/...
	stylistHTTP.RegisterRoutes(api.Group("/stylist"), h, mw)

	if srv.driveClient != nil {
		srv.l.Infof(ctx, "Stylist domain registered with Drive photo archive")
	} else {
		srv.l.Infof(ctx, "Stylist domain registered")
	}
}
