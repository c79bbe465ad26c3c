package modifier

import (
	"fmt"
	"math"
	"sort"
)

// WeightedIndex samples an index with probability weight[i] / sum(weights)
// Zero-weight indices are valid and never sampled
type WeightedIndex struct {
	cumulative []uint64
	total      uint64
}

// NewWeightedIndex builds the cumulative table for weights
func NewWeightedIndex(weights []uint32) (*WeightedIndex, error) {
	if len(weights) == 0 {
		return nil, ErrNoItems
	}

	cumulative := make([]uint64, len(weights))
	var total uint64
	for i, w := range weights {
		// uint32 weights cannot overflow a uint64 sum below 2^32 entries
		total += uint64(w)
		cumulative[i] = total
	}
	if total == 0 {
		return nil, ErrAllWeightsZero
	}

	return &WeightedIndex{cumulative: cumulative, total: total}, nil
}

// Total returns the sum of all weights
func (w *WeightedIndex) Total() uint64 {
	return w.total
}

// Sample draws one index, consuming one value from rng
func (w *WeightedIndex) Sample(rng Source) int {
	chosen := rng.Uint64N(w.total)
	// First bucket whose running total exceeds the draw
	return sort.Search(len(w.cumulative), func(i int) bool {
		return w.cumulative[i] > chosen
	})
}

// checkWeight validates a caller-supplied weight before it reaches the distribution
func checkWeight(weight int) (uint32, error) {
	if weight < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeWeight, weight)
	}
	if uint64(weight) > math.MaxUint32 {
		return 0, fmt.Errorf("%w: %d", ErrWeightOverflow, weight)
	}
	return uint32(weight), nil
}
