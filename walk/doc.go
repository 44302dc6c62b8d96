// Package walk runs discrete-time population random walks.
//
// 🚀 How it works:
//
//	Every walker starts at the table's midpoint for the run's trial
//	count. Each trial draws one fresh uniform value per walker, resolves
//	it to a step through the shift table, and applies the step in place.
//	After the last trial the final positions are counted into a
//	Histogram (position → walker count).
//
// ⚙️ Usage:
//
//	opts := walk.DefaultOptions()   // 100 units, 100 trials, fair table
//	opts.Seed = 42
//	hist, err := walk.Run(opts)
//
// Determinism:
//   - The random source is explicit. Options.Source accepts anything
//     with Float64() float64 (a *rand.Rand qualifies); when nil, a
//     deterministic generator is built from Options.Seed, with seed 0
//     meaning a fixed default seed. Same options ⇒ identical histogram.
//
// Failure model:
//   - A draw the table cannot resolve aborts the run with no partial
//     result: an incomplete population count would be statistically
//     meaningless.
//
// The workload is bounded (Units × Trials lookups), single-threaded,
// and touches no state beyond its own population slice.
package walk
