package http

import (
	"eco-wardrobe/internal/stylist"
	"eco-wardrobe/pkg/log"
)

// Handler is the public interface for the stylist HTTP delivery layer.
type Handler interface {
	Analyze(c interface{})
	Recommend(c interface{})
	TryOn(c interface{})
}

type handler struct {
	l  log.Logger
	uc stylist.UseCase
}

// New creates a new HTTP handler for the stylist domain.
func New(l log.Logger, uc stylist.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
