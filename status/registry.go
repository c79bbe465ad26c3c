package status

import (
	"strconv"
	"sync/atomic"
)

// Registry is the central metrics facade
// Plugins cache pointers at build time; systems write directly to the atomics
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Snapshot renders every metric as "key=value", grouped by type and sorted by key within a group
func (r *Registry) Snapshot() []string {
	lines := make([]string, 0, r.TotalCount())
	r.Bools.Range(func(key string, ptr *atomic.Bool) {
		lines = append(lines, key+"="+strconv.FormatBool(ptr.Load()))
	})
	r.Ints.Range(func(key string, ptr *atomic.Int64) {
		lines = append(lines, key+"="+strconv.FormatInt(ptr.Load(), 10))
	})
	r.Floats.Range(func(key string, ptr *AtomicFloat) {
		lines = append(lines, key+"="+strconv.FormatFloat(ptr.Get(), 'f', 2, 64))
	})
	r.Strings.Range(func(key string, ptr *AtomicString) {
		lines = append(lines, key+"="+ptr.Load())
	})
	return lines
}
