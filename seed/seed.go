// Package seed produces the 32-byte value that drives every random decision of a run
package seed

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/crypto/sha3"
)

// Size is the seed length in bytes
const Size = 32

// BuildToken is the build-time seed token
// Set with: go build -ldflags "-X github.com/lixenwraith/gamekit/seed.BuildToken=<token>"
var BuildToken string

// ErrInvalidSeed is returned when a hex seed does not decode to Size bytes
var ErrInvalidSeed = errors.New("invalid seed")

// Seed is an immutable 32-byte generator seed
type Seed [Size]byte

// FromToken hashes the UTF-8 bytes of token with SHA3-256
func FromToken(token string) Seed {
	return sha3.Sum256([]byte(token))
}

// Random draws a seed from the operating system entropy source
// Entropy failure is unrecoverable and panics
func Random() Seed {
	var s Seed
	if _, err := rand.Read(s[:]); err != nil {
		panic("seed: entropy source unavailable: " + err.Error())
	}
	return s
}

// Resolve returns FromToken(token) for a non-empty token, otherwise Random()
func Resolve(token string) Seed {
	if token != "" {
		return FromToken(token)
	}
	return Random()
}

// ParseHex decodes a seed previously printed with String
func ParseHex(s string) (Seed, error) {
	var out Seed
	b, err := hex.DecodeString(s)
	if err != nil {
		return out, fmt.Errorf("%w: %v", ErrInvalidSeed, err)
	}
	if len(b) != Size {
		return out, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidSeed, len(b), Size)
	}
	copy(out[:], b)
	return out, nil
}

// String returns the lowercase hex encoding
func (s Seed) String() string {
	return hex.EncodeToString(s[:])
}

// Source resolves a seed at most once
// The zero value resolves to a random seed
type Source struct {
	once  sync.Once
	token string
	fixed bool
	seed  Seed
}

// NewSource creates a Source for token; an empty token selects the entropy branch
func NewSource(token string) *Source {
	return &Source{token: token}
}

// FromBuild creates a Source preferring BuildToken over the fallback token
func FromBuild(fallback string) *Source {
	if BuildToken != "" {
		return NewSource(BuildToken)
	}
	return NewSource(fallback)
}

// Fixed creates a Source that always yields s
func Fixed(s Seed) *Source {
	src := &Source{seed: s, fixed: true}
	src.once.Do(func() {})
	return src
}

// Seed resolves on first call and returns the same value afterwards
func (src *Source) Seed() Seed {
	src.once.Do(func() {
		src.seed = Resolve(src.token)
	})
	return src.seed
}

// Token returns the configured token, empty when the seed is random
func (src *Source) Token() string {
	return src.token
}

// Deterministic reports whether the seed is derived from a token or fixed by the caller
func (src *Source) Deterministic() bool {
	return src.token != "" || src.fixed
}
