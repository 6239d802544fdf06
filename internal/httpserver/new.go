package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"eco-wardrobe/internal/wardrobe/repository"
	"eco-wardrobe/pkg/gdrive"
	"eco-wardrobe/pkg/gemini"
	"eco-wardrobe/pkg/ids"
	"eco-wardrobe/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Shared wardrobe store; both domains read it, only the wardrobe
	// domain writes it.
	repo  repository.Repository
	idGen ids.Generator

	// Stylist collaborators
	geminiClient  gemini.IGemini
	driveClient   gdrive.IDrive // nil disables photo archiving
	driveFolderID string
	analyzeModel  string
	ideasModel    string

	// Stylist rate limit
	stylistRPS   float64
	stylistBurst int
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	Repository  repository.Repository
	IDGenerator ids.Generator

	GeminiClient  gemini.IGemini
	DriveClient   gdrive.IDrive
	DriveFolderID string
	AnalyzeModel  string
	IdeasModel    string

	StylistRPS   float64
	StylistBurst int
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:             logger,
		gin:           gin.Default(),
		port:          cfg.Port,
		mode:          cfg.Mode,
		environment:   cfg.Environment,
		repo:          cfg.Repository,
		idGen:         cfg.IDGenerator,
		geminiClient:  cfg.GeminiClient,
		driveClient:   cfg.DriveClient,
		driveFolderID: cfg.DriveFolderID,
		analyzeModel:  cfg.AnalyzeModel,
		ideasModel:    cfg.IdeasModel,
		stylistRPS:    cfg.StylistRPS,
		stylistBurst:  cfg.StylistBurst,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.repo == nil {
		return errors.New("repository is required")
	}
	if srv.idGen == nil {
		return errors.New("id generator is required")
	}
	if srv.geminiClient == nil {
		return errors.New("gemini client is required")
	}
	return nil
}
