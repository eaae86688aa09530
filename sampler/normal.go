package sampler

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// /////////////////////////////////////////////////////////////////////////////
//  _  _                    _
// | \| |___ _ _ _ __  __ _| |
// | .` / _ \ '_| '  \/ _` | |
// |_|\_\___/_| |_|_|_\__,_|_|
//
// /////////////////////////////////////////////////////////////////////////////

// Normal draws from a Gaussian with mean Mu and standard deviation Sigma.
type Normal struct {
	Mu    float64
	Sigma float64
	Src   rand.Source
}

func (n Normal) Sample() float64 {
	generator := distuv.Normal{
		Mu:    n.Mu,
		Sigma: n.Sigma,
		Src:   n.Src,
	}
	return generator.Rand()
}

// SampleClamped draws a value and constrains it to [lower, upper].
func (n Normal) SampleClamped(lower float64, upper float64) float64 {
	return Clamp(n.Sample(), lower, upper)
}
