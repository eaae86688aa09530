package sampler

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// LogUniform draws right-skewed values by sampling a base-10 exponent
// uniformly from [MinExp, MaxExp) and exponentiating. A draw with
// MinExp=1, MaxExp=4.5 yields values between 10 and ~31623.
type LogUniform struct {
	MinExp float64
	MaxExp float64
	Src    rand.Source
}

func (l LogUniform) Sample() float64 {
	generator := distuv.Uniform{
		Min: l.MinExp,
		Max: l.MaxExp,
		Src: l.Src,
	}
	return math.Pow(10, generator.Rand())
}
