// Package ids provides an injectable unique-id generator so callers can
// supply a deterministic implementation in tests.
package ids

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator produces unique string ids.
type Generator interface {
	NewID() string
}

// UUID generates random UUIDv4 ids.
type UUID struct{}

// NewUUID creates the production Generator.
func NewUUID() *UUID {
	return &UUID{}
}

// NewID returns a fresh UUIDv4 string.
func (g *UUID) NewID() string {
	return uuid.NewString()
}

// Sequence generates monotonically increasing ids with a fixed prefix.
// Intended for tests where ids must be predictable.
type Sequence struct {
	prefix string
	n      atomic.Int64
}

// NewSequence creates a deterministic Generator with the given prefix.
func NewSequence(prefix string) *Sequence {
	return &Sequence{prefix: prefix}
}

// NewID returns "<prefix>-1", "<prefix>-2", ...
func (g *Sequence) NewID() string {
	return fmt.Sprintf("%s-%d", g.prefix, g.n.Add(1))
}
