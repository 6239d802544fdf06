package usecase

import (
	"time"

	"eco-wardrobe/internal/wardrobe/repository"
	"eco-wardrobe/pkg/ids"
	"eco-wardrobe/pkg/log"
)

// implUseCase is the private implementation of wardrobe.UseCase.
type implUseCase struct {
	repo repository.Repository
	gen  ids.Generator
	l    log.Logger
	now  func() time.Time
}

// New creates a new wardrobe UseCase implementation. A nil clock
// defaults to time.Now; tests pass a fixed clock.
func New(repo repository.Repository, gen ids.Generator, l log.Logger, clock func() time.Time) *implUseCase {
	if clock == nil {
		clock = time.Now
	}
	return &implUseCase{
		repo: repo,
		gen:  gen,
		l:    l,
		now:  clock,
	}
}
