package mockmodifier

import (
	"fmt"
	"sync"
)

// ScriptedSource implements modifier.Source with predetermined draws
// It records every call so tests can assert how many samples selection consumed
type ScriptedSource struct {
	mu     sync.Mutex
	floats []float32
	uints  []uint64
	calls  []string
	fIndex int
	uIndex int
}

// NewScriptedSource creates an empty scripted source
func NewScriptedSource() *ScriptedSource {
	return &ScriptedSource{}
}

// SetFloats appends results for Float32
func (s *ScriptedSource) SetFloats(vals ...float32) *ScriptedSource {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.floats = append(s.floats, vals...)
	return s
}

// SetUint64s appends results for Uint64N
func (s *ScriptedSource) SetUint64s(vals ...uint64) *ScriptedSource {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.uints = append(s.uints, vals...)
	return s
}

// Float32 returns the next scripted float, panicking when the script is exhausted
func (s *ScriptedSource) Float32() float32 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls = append(s.calls, "Float32")
	if s.fIndex >= len(s.floats) {
		panic(fmt.Sprintf("no more scripted floats (used %d of %d)", s.fIndex, len(s.floats)))
	}
	v := s.floats[s.fIndex]
	s.fIndex++
	return v
}

// Uint64N returns the next scripted integer, panicking when it is out of [0, n)
func (s *ScriptedSource) Uint64N(n uint64) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls = append(s.calls, fmt.Sprintf("Uint64N(%d)", n))
	if s.uIndex >= len(s.uints) {
		panic(fmt.Sprintf("no more scripted integers (used %d of %d)", s.uIndex, len(s.uints)))
	}
	v := s.uints[s.uIndex]
	if v >= n {
		panic(fmt.Sprintf("scripted integer %d out of range [0, %d)", v, n))
	}
	s.uIndex++
	return v
}

// Calls returns the recorded call log
func (s *ScriptedSource) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.calls))
	copy(out, s.calls)
	return out
}
