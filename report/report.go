package report

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/randwalk/walk"
)

// Sentinel errors for the reporting stage.
var (
	// ErrEmptyHistogram indicates a normalize attempt on a zero-total histogram.
	ErrEmptyHistogram = errors.New("report: histogram has zero total count")
	// ErrNegativeRadius indicates a smoothing radius below zero.
	ErrNegativeRadius = errors.New("report: smoothing radius must be non-negative")
	// ErrEmptyDensity indicates a render attempt on an empty density.
	ErrEmptyDensity = errors.New("report: density has no points")
)

// DefaultRadius is the neighbour count on each side used by Smooth when
// callers have no reason to pick another window.
const DefaultRadius = 3

// Density maps a position to a real-valued weight. Produced by
// Normalize (weights sum to 1) and transformed by Smooth.
type Density map[int]float64

// Positions returns the density's keys in ascending order.
func (d Density) Positions() []int {
	keys := make([]int, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// Normalize divides every count by the histogram's total, producing a
// Density whose values sum to 1 within floating-point tolerance.
// A zero total (no buckets, or all-zero counts) is ErrEmptyHistogram.
func Normalize(h walk.Histogram) (Density, error) {
	total := h.Total()
	if total == 0 {
		return nil, ErrEmptyHistogram
	}
	d := make(Density, len(h))
	for pos, count := range h {
		d[pos] = float64(count) / float64(total)
	}
	return d, nil
}

// Smooth replaces every value with the average of the values at keys
// k−radius .. k+radius that exist in d. Missing neighbours are skipped,
// not treated as zero, so windows shrink near the edges of the observed
// range. The result is a new Density over the same key set; averages
// are computed from the unmodified input, never from already-smoothed
// values.
//
// radius 0 returns a copy; radius < 0 is ErrNegativeRadius.
func Smooth(d Density, radius int) (Density, error) {
	if radius < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegativeRadius, radius)
	}
	out := make(Density, len(d))
	for k := range d {
		sum, n := 0.0, 0
		for i := -radius; i <= radius; i++ {
			if v, ok := d[k+i]; ok {
				sum += v
				n++
			}
		}
		// n ≥ 1: the window always contains k itself.
		out[k] = sum / float64(n)
	}
	return out, nil
}
