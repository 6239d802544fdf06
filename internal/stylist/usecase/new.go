package usecase

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"eco-wardrobe/internal/model"
	"eco-wardrobe/internal/wardrobe/repository"
	"eco-wardrobe/pkg/gdrive"
	"eco-wardrobe/pkg/gemini"
	"eco-wardrobe/pkg/log"
)

const (
	// DefaultAnalyzeModel recognizes item photos. The flash tier is
	// enough for attribute extraction and keeps latency low.
	DefaultAnalyzeModel = "gemini-2.5-flash"

	// DefaultIdeasModel composes outfit recommendations.
	DefaultIdeasModel = "gemini-2.5-pro"

	// recommendationCacheSize bounds the in-process recommendation
	// cache. Entries are keyed by mood and wardrobe fingerprint, so any
	// wardrobe mutation naturally misses.
	recommendationCacheSize = 64
)

// Config holds the optional knobs of the stylist use case.
type Config struct {
	AnalyzeModel  string
	IdeasModel    string
	Drive         gdrive.IDrive // nil disables photo archiving
	DriveFolderID string
}

type implUseCase struct {
	repo  repository.Repository
	ai    gemini.IGemini
	l     log.Logger
	cache *lru.Cache[string, []model.Recommendation]

	analyzeModel  string
	ideasModel    string
	drive         gdrive.IDrive
	driveFolderID string
}

// New creates a new stylist use case on top of the wardrobe repository
// and the Gemini client.
func New(repo repository.Repository, ai gemini.IGemini, l log.Logger, cfg Config) *implUseCase {
	if cfg.AnalyzeModel == "" {
		cfg.AnalyzeModel = DefaultAnalyzeModel
	}
	if cfg.IdeasModel == "" {
		cfg.IdeasModel = DefaultIdeasModel
	}
	cache, _ := lru.New[string, []model.Recommendation](recommendationCacheSize)
	return &implUseCase{
		repo:          repo,
		ai:            ai,
		l:             l,
		cache:         cache,
		analyzeModel:  cfg.AnalyzeModel,
		ideasModel:    cfg.IdeasModel,
		drive:         cfg.Drive,
		driveFolderID: cfg.DriveFolderID,
	}
}
