// Package ids provides record id generation. The generator is injected into
// services so tests can produce deterministic, collision-free ids without
// depending on wall-clock timing.
package ids

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator produces unique record ids.
type Generator interface {
	NewID() string
}

// UUIDGenerator is the production generator.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// SequentialGenerator hands out id-1, id-2, ... for tests.
type SequentialGenerator struct {
	prefix string
	n      atomic.Int64
}

func NewSequentialGenerator(prefix string) *SequentialGenerator {
	return &SequentialGenerator{prefix: prefix}
}

func (g *SequentialGenerator) NewID() string {
	return fmt.Sprintf("%s-%d", g.prefix, g.n.Add(1))
}
