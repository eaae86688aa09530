package sampler

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// /////////////////////////////////////////////////////////////////////////////
//   ___      _                     _         _
//  / __|__ _| |_ ___ __ _ ___ _ _(_)__ __ _| |
// | (__/ _` |  _/ -_) _` / _ \ '_| / _/ _` | |
//  \___\__,_|\__\___\__, \___/_| |_\__\__,_|_|
//                   |___/
// /////////////////////////////////////////////////////////////////////////////

// Categorical draws one value from a fixed finite set of string labels
// according to the configured weights.
type Categorical struct {
	values []string
	dist   distuv.Categorical
}

// NewCategorical builds a weighted categorical sampler. Weights need not sum
// to 1; distuv normalizes. Panics when values and weights disagree in length,
// mirroring distuv's handling of malformed parameters.
func NewCategorical(values []string, weights []float64, src rand.Source) *Categorical {
	if len(values) != len(weights) {
		panic(fmt.Sprintf("sampler: %d values for %d weights", len(values), len(weights)))
	}
	return &Categorical{
		values: values,
		dist:   distuv.NewCategorical(weights, src),
	}
}

// NewUniformCategorical builds an equal-weight categorical sampler.
func NewUniformCategorical(values []string, src rand.Source) *Categorical {
	weights := make([]float64, len(values))
	for i := range weights {
		weights[i] = 1
	}
	return NewCategorical(values, weights, src)
}

func (c *Categorical) Sample() string {
	return c.values[int(c.dist.Rand())]
}

// Values returns the label set this sampler draws from.
func (c *Categorical) Values() []string {
	return c.values
}

// WeightedInt draws integers from the inclusive range [min, min+len(weights))
// according to the configured weights. Used for Likert-style scale columns.
type WeightedInt struct {
	min  int
	dist distuv.Categorical
}

func NewWeightedInt(min int, weights []float64, src rand.Source) *WeightedInt {
	return &WeightedInt{
		min:  min,
		dist: distuv.NewCategorical(weights, src),
	}
}

func (w *WeightedInt) Sample() int {
	return w.min + int(w.dist.Rand())
}
