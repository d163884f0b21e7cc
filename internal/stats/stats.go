// Package stats summarizes the retained fragment-length distribution.
package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Summary of a fragment-length distribution.
type Summary struct {
	Count  int
	Mean   float64
	Median float64
	StdDev float64
	Min    int
	Max    int
	Q1     float64
	Q3     float64
}

// Summarize computes the distribution summary of lengths. A zero-count
// summary is returned for an empty input.
func Summarize(lengths []int) Summary {
	if len(lengths) == 0 {
		return Summary{}
	}

	x := make([]float64, len(lengths))
	for i, n := range lengths {
		x[i] = float64(n)
	}
	sort.Float64s(x)

	s := Summary{
		Count:  len(lengths),
		Mean:   stat.Mean(x, nil),
		Median: stat.Quantile(0.5, stat.Empirical, x, nil),
		Q1:     stat.Quantile(0.25, stat.Empirical, x, nil),
		Q3:     stat.Quantile(0.75, stat.Empirical, x, nil),
		Min:    int(x[0]),
		Max:    int(x[len(x)-1]),
	}
	if len(x) > 1 {
		s.StdDev = stat.StdDev(x, nil)
	}
	if math.IsNaN(s.StdDev) {
		s.StdDev = 0
	}
	return s
}
