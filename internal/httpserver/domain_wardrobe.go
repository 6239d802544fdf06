package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	wardrobeHTTP "eco-wardrobe/internal/wardrobe/delivery/http"
	wardrobeUC "eco-wardrobe/internal/wardrobe/usecase"
)

// setupWardrobeDomain initializes the wardrobe domain and registers its
// routes.
//
// Pattern to follow when adding a new domain:
//  1. Create UseCase:      uc := mydomainUC.New(srv.repo, ...)
//  2. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  3. Register Routes:     mydomainHTTP.RegisterRoutes(api.Group("/myresource"), h)
func (srv *HTTPServer) setupWardrobeDomain(ctx context.Context, api *gin.RouterGroup) {
	// 1. UseCase on the shared repository
	uc := wardrobeUC.New(srv.repo, srv.idGen, srv.l, nil)

	// 2. HTTP Handler
	h := wardrobeHTTP.New(srv.l, uc)

	// 3. Routes: registers /api/v1/wardrobe/...
	wardrobeHTTP.RegisterRoutes(api.Group("/wardrobe"), h)

	srv.l.Infof(ctx, "Wardrobe domain registered")
}
