package random

import (
	"math/rand"
	"time"
)

// Random provides the randomness the bot strategies draw from.
// It is an interface so tests can inject a deterministic source.
type Random interface {
	// Intn returns a random int in [0, n)
	Intn(n int) int

	// Float64 returns a random float64 in [0.0, 1.0)
	Float64() float64
}

type source struct {
	rnd *rand.Rand
}

// New - creates a time-seeded source for production use.
func New() Random {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded - creates a source with a fixed seed, for reproducible runs.
func NewSeeded(seed int64) Random {
	return &source{rnd: rand.New(rand.NewSource(seed))} //nolint: gosec // game moves, not secrets
}

func (that *source) Intn(n int) int {
	return that.rnd.Intn(n)
}

func (that *source) Float64() float64 {
	return that.rnd.Float64()
}
