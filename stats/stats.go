package stats

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	gonumstat "gonum.org/v1/gonum/stat"
)

type PercentileValue struct {
	P   float64
	Val float64
}

type AggregatedStatistics struct {
	Count       int
	Mean        float64
	Median      float64
	StdDev      float64
	Min         float64
	Max         float64
	Percentiles []PercentileValue
}

func StatsForSequence(unsortedSamples []float64, percentiles []float64) *AggregatedStatistics {
	if len(unsortedSamples) == 0 {
		return &AggregatedStatistics{}
	}
	sortedSamples := make([]float64, len(unsortedSamples))
	copy(sortedSamples, unsortedSamples)
	sort.Float64s(sortedSamples)

	// Compute aggregates...
	mean, stddev := gonumstat.MeanStdDev(sortedSamples, nil)
	median := gonumstat.Quantile(0.5, gonumstat.Empirical, sortedSamples, nil)
	aggStats := &AggregatedStatistics{
		Count:       len(sortedSamples),
		Mean:        mean,
		Median:      median,
		StdDev:      stddev,
		Min:         floats.Min(sortedSamples),
		Max:         floats.Max(sortedSamples),
		Percentiles: make([]PercentileValue, len(percentiles)),
	}

	for eachPercentileIndex := range percentiles {
		percentileValue := percentiles[eachPercentileIndex]
		if percentileValue > 1.00 {
			percentileValue = percentileValue / 100
		}
		aggStats.Percentiles[eachPercentileIndex] = PercentileValue{
			P: percentileValue,
			Val: gonumstat.Quantile(percentileValue,
				gonumstat.Empirical,
				sortedSamples,
				nil),
		}
	}
	return aggStats
}

// Correlation returns the sample Pearson correlation between x and y.
func Correlation(x []float64, y []float64) float64 {
	return gonumstat.Correlation(x, y, nil)
}
