package walk

import "fmt"

// Run simulates opts.Units independent walkers for opts.Trials discrete
// steps and returns the histogram of their final positions.
//
// Algorithm outline:
//  1. Validate options (Units ≥ 1, Trials ≥ 0, Table non-nil).
//  2. Initialize every walker at Table.Midpoint(Trials).
//  3. Per trial, draw one fresh uniform value per walker and apply the
//     step Table.Lookup assigns to it, in place. Draws are never reused
//     across trials or walkers.
//  4. Count final positions into a Histogram. Counts sum to opts.Units.
//
// A lookup failure aborts the run immediately with a nil histogram:
// partial counts would misstate the population.
//
// Complexity: O(Units·Trials·len(Table)) time, O(Units) memory.
func Run(opts Options) (Histogram, error) {
	if opts.Units < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrUnitCount, opts.Units)
	}
	if opts.Trials < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrTrialCount, opts.Trials)
	}
	if opts.Table == nil {
		return nil, ErrNilTable
	}

	src := opts.Source
	if src == nil {
		src = rngFromSeed(opts.Seed)
	}

	mid := opts.Table.Midpoint(opts.Trials)
	units := make([]int, opts.Units)
	for i := range units {
		units[i] = mid
	}

	for trial := 0; trial < opts.Trials; trial++ {
		for i := range units {
			step, err := opts.Table.Lookup(src.Float64())
			if err != nil {
				return nil, fmt.Errorf("walk: trial %d, unit %d: %w", trial, i, err)
			}
			units[i] += step
		}
	}

	hist := make(Histogram)
	for _, pos := range units {
		hist[pos]++
	}
	return hist, nil
}
