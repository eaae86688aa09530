// Package sampler wraps the gonum distuv distributions behind small
// per-column samplers that share one rand.Source, so a fixed seed yields a
// fixed draw sequence.
package sampler

import (
	"math"
)

// Clamp constrains v to the closed interval [lower, upper].
func Clamp(v float64, lower float64, upper float64) float64 {
	return math.Min(upper, math.Max(lower, v))
}

// Round1 rounds v to one decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
