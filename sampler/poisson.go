package sampler

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Poisson draws non-negative counts with the given mean event rate.
type Poisson struct {
	Lambda float64
	Src    rand.Source
}

func (p Poisson) Sample() int {
	generator := distuv.Poisson{
		Lambda: p.Lambda,
		Src:    p.Src,
	}
	return int(generator.Rand())
}
