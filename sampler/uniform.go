package sampler

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// /////////////////////////////////////////////////////////////////////////////
//  _   _      _  __
// | | | |_ _ (_)/ _|___ _ _ _ __
// | |_| | ' \| |  _/ _ \ '_| '  \
//  \___/|_||_|_|_| \___/_| |_|_|_|
//
// /////////////////////////////////////////////////////////////////////////////

// Uniform draws floats uniformly from [Min, Max).
type Uniform struct {
	Min float64
	Max float64
	Src rand.Source
}

func (u Uniform) Sample() float64 {
	generator := distuv.Uniform{
		Min: u.Min,
		Max: u.Max,
		Src: u.Src,
	}
	return generator.Rand()
}

// UniformInt draws integers uniformly from the inclusive range [Min, Max].
type UniformInt struct {
	Min int
	Max int
	Src rand.Source
}

func (u UniformInt) Sample() int {
	generator := distuv.Uniform{
		Min: float64(u.Min),
		Max: float64(u.Max + 1),
		Src: u.Src,
	}
	sampled := int(math.Floor(generator.Rand()))
	// The half-open upper bound can land exactly on Max+1
	if sampled > u.Max {
		sampled = u.Max
	}
	return sampled
}
