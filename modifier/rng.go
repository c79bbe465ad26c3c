package modifier

import (
	"math/rand/v2"

	"github.com/lixenwraith/gamekit/seed"
)

// Source is the generator consumed by selection
// *rand.Rand satisfies it
type Source interface {
	// Float32 returns a value in [0, 1)
	Float32() float32
	// Uint64N returns a value in [0, n); n is never zero
	Uint64N(n uint64) uint64
}

// NewRNG returns the selection generator for s
// The algorithm is ChaCha8 (C2SP chacha8rand) keyed directly by the 32 seed bytes,
// so equal seeds produce equal draw sequences on every platform
func NewRNG(s seed.Seed) *rand.Rand {
	return rand.New(rand.NewChaCha8(s))
}
