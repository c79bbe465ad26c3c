package status

import (
	"math"
	"sync/atomic"
	"unicode/utf8"
)

// MaxStringLen is the maximum stored length for string metrics
const MaxStringLen = 64

// AtomicString provides atomic string access with a fixed max length
// Zero value is ready to use
type AtomicString struct {
	ptr atomic.Pointer[string]
}

// Store sets the string value, cut to at most MaxStringLen bytes on a rune boundary
func (s *AtomicString) Store(val string) {
	if len(val) > MaxStringLen {
		cut := MaxStringLen
		for cut > 0 && !utf8.RuneStart(val[cut]) {
			cut--
		}
		val = val[:cut]
	}
	s.ptr.Store(&val)
}

// Load returns the current string value
func (s *AtomicString) Load() string {
	if p := s.ptr.Load(); p != nil {
		return *p
	}
	return ""
}

// AtomicFloat provides atomic float64 access through bit conversion
// Zero value is ready to use
type AtomicFloat struct {
	bits atomic.Uint64
}

// Set stores a float64 value
func (f *AtomicFloat) Set(val float64) {
	f.bits.Store(math.Float64bits(val))
}

// Get loads the float64 value
func (f *AtomicFloat) Get() float64 {
	return math.Float64frombits(f.bits.Load())
}
