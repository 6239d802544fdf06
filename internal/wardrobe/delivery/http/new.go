package http

import (
	"eco-wardrobe/internal/wardrobe"
	"eco-wardrobe/pkg/log"
)

// Handler is the public interface for the wardrobe HTTP delivery layer.
type Handler interface {
	AddItem(c interface{})
	ListItems(c interface{})
	DetailItem(c interface{})
	RemoveItem(c interface{})
	LogOutfit(c interface{})
	ListLogs(c interface{})
	WeeklyActivity(c interface{})
	AddMood(c interface{})
	ListMoods(c interface{})
	DetailMood(c interface{})
	RemoveMood(c interface{})
}

type handler struct {
	l  log.Logger
	uc wardrobe.UseCase
}

// New creates a new HTTP handler for the wardrobe domain.
func New(l log.Logger, uc wardrobe.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
