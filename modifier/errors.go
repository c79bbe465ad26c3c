package modifier

import "errors"

var (
	// ErrNoItems is returned when a weighted distribution has no entries
	ErrNoItems = errors.New("no weights")
	// ErrAllWeightsZero is returned when every weight is zero
	ErrAllWeightsZero = errors.New("all weights are zero")
	// ErrNegativeWeight is returned when a group child is added with a negative weight
	ErrNegativeWeight = errors.New("negative weight")
	// ErrWeightOverflow is returned when a weight does not fit the distribution's weight type
	ErrWeightOverflow = errors.New("weight overflow")
)
