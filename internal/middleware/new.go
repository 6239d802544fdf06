package middleware

import (
	"golang.org/x/time/rate"

	"eco-wardrobe/pkg/log"
)

// Middleware bundles the cross-cutting gin handlers. The stylist rate
// limiter is process-wide: the app is single-user, so there is no
// per-client bucketing.
type Middleware struct {
	l       log.Logger
	stylist *rate.Limiter
}

// New creates the middleware set. stylistRPS caps Gemini-backed
// endpoints; burst allows a short click streak through.
func New(l log.Logger, stylistRPS float64, stylistBurst int) Middleware {
	return Middleware{
		l:       l,
		stylist: rate.NewLimiter(rate.Limit(stylistRPS), stylistBurst),
	}
}
