package status

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricMap_GetCachesPointer(t *testing.T) {
	m := NewMetricMap[AtomicFloat]()

	first := m.Get("mouse.x")
	first.Set(3.5)

	second := m.Get("mouse.x")
	assert.Same(t, first, second)
	assert.Equal(t, 3.5, second.Get())
	assert.Equal(t, 1, m.Count())
}

func TestMetricMap_LookupDoesNotCreate(t *testing.T) {
	m := NewMetricMap[AtomicString]()

	_, ok := m.Lookup("missing")
	assert.False(t, ok)
	assert.Zero(t, m.Count())
}

func TestMetricMap_RangeSorted(t *testing.T) {
	m := NewMetricMap[AtomicString]()
	m.Get("b").Store("2")
	m.Get("a").Store("1")
	m.Get("c").Store("3")

	var keys []string
	m.Range(func(key string, ptr *AtomicString) {
		keys = append(keys, key+ptr.Load())
	})
	assert.Equal(t, []string{"a1", "b2", "c3"}, keys)
}

func TestAtomicString_Truncates(t *testing.T) {
	var s AtomicString
	assert.Equal(t, "", s.Load())

	s.Store(strings.Repeat("x", MaxStringLen+10))
	assert.Len(t, s.Load(), MaxStringLen)
}

func TestAtomicString_TruncatesOnRuneBoundary(t *testing.T) {
	var s AtomicString
	s.Store(strings.Repeat("x", MaxStringLen-1) + "é")

	got := s.Load()
	assert.Equal(t, strings.Repeat("x", MaxStringLen-1), got)
	assert.True(t, utf8.ValidString(got))
}

func TestMetricMap_RangeMayRegister(t *testing.T) {
	m := NewMetricMap[AtomicFloat]()
	m.Get("a")

	require.NotPanics(t, func() {
		m.Range(func(key string, _ *AtomicFloat) { m.Get(key + ".seen") })
	})
	assert.Equal(t, 2, m.Count())
}

func TestRegistry_Snapshot(t *testing.T) {
	r := NewRegistry()
	r.Bools.Get("modifier.fog").Store(true)
	r.Ints.Get("modifier.count").Store(1)
	r.Floats.Get("mouse.x").Set(1.25)
	r.Strings.Get("run").Store("abc")

	require.Equal(t, 4, r.TotalCount())
	assert.Equal(t, []string{
		"modifier.fog=true",
		"modifier.count=1",
		"mouse.x=1.25",
		"run=abc",
	}, r.Snapshot())
}
