package walk

import (
	"errors"
	"sort"

	"github.com/katalvlaran/randwalk/shifttable"
)

// Sentinel errors for run configuration.
var (
	// ErrUnitCount indicates a non-positive unit count.
	ErrUnitCount = errors.New("walk: unit count must be at least 1")
	// ErrTrialCount indicates a negative trial count.
	ErrTrialCount = errors.New("walk: trial count must be non-negative")
	// ErrNilTable indicates a run configured without a shift table.
	ErrNilTable = errors.New("walk: shift table must not be nil")
)

// UniformSource yields uniform random values in [0,1). It is the only
// external state a run touches; *rand.Rand satisfies it, and tests can
// substitute fixed sequences.
type UniformSource interface {
	Float64() float64
}

// Options configures a run.
//
// Fields:
//   - Units  — number of independent walkers (≥ 1).
//   - Trials — number of discrete time steps applied to every walker (≥ 0).
//   - Table  — threshold→step distribution driving each move.
//   - Seed   — seed for the default generator; 0 selects a fixed default
//     seed, so runs are reproducible unless a seed is chosen.
//   - Source — explicit random source. When non-nil it takes precedence
//     over Seed.
type Options struct {
	Units  int
	Trials int
	Table  *shifttable.Table
	Seed   int64
	Source UniformSource
}

// DefaultOptions returns the canonical configuration: 100 units, 100
// trials, the fair ±1 table, deterministic default seed.
func DefaultOptions() Options {
	return Options{
		Units:  100,
		Trials: 100,
		Table:  shifttable.Default(),
	}
}

// Histogram counts walkers by final position.
type Histogram map[int]int

// Positions returns the histogram's keys in ascending order.
func (h Histogram) Positions() []int {
	keys := make([]int, 0, len(h))
	for k := range h {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// Total returns the sum of all counts. For a completed run this equals
// the unit count.
func (h Histogram) Total() int {
	n := 0
	for _, c := range h {
		n += c
	}
	return n
}
