package report

import (
	"math"

	"github.com/katalvlaran/randwalk/walk"
)

// Summary holds count-weighted statistics over a histogram's positions.
type Summary struct {
	// Units is the total walker count across all buckets.
	Units int
	// Buckets is the number of distinct final positions.
	Buckets int
	// Min and Max are the extreme final positions.
	Min, Max int
	// Mean is the count-weighted average position.
	Mean float64
	// StdDev is the count-weighted population standard deviation.
	StdDev float64
}

// Summarize computes a Summary from a histogram. A zero-total histogram
// is ErrEmptyHistogram, mirroring Normalize.
func Summarize(h walk.Histogram) (Summary, error) {
	total := h.Total()
	if total == 0 {
		return Summary{}, ErrEmptyHistogram
	}

	s := Summary{Units: total, Buckets: len(h)}
	first := true
	var sum, sqr float64
	for pos, count := range h {
		if first || pos < s.Min {
			s.Min = pos
		}
		if first || pos > s.Max {
			s.Max = pos
		}
		first = false
		x := float64(pos)
		c := float64(count)
		sum += x * c
		sqr += x * x * c
	}

	n := float64(total)
	s.Mean = sum / n
	s.StdDev = math.Sqrt(math.Abs(n*sqr-sum*sum)) / n
	return s, nil
}
