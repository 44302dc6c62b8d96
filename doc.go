// Package randwalk is a small toolkit for discrete-time population
// random walks: simulate, aggregate, smooth, and plot.
//
// 🚀 What is randwalk?
//
//	A population of independent walkers starts at a computed midpoint.
//	Every trial, each walker draws a uniform value in [0,1) and moves by
//	the step its shift table assigns to that draw. After the last trial
//	the final positions are counted into a histogram, which can then be
//	normalized to a density, smoothed with a neighbour average, and
//	written out as CSV or a PNG curve.
//
// ✨ Highlights:
//   - Deterministic by default — a fixed seed policy and an injectable
//     uniform source make every run reproducible
//   - Structural invariants — shift tables validate their threshold
//     ordering at construction, so a malformed table fails fast
//   - Fatal lookup semantics — a draw the table cannot resolve aborts
//     the whole run; steps are never silently defaulted
//
// Everything is organized under three subpackages plus a CLI:
//
//	shifttable/ — ordered probability-threshold → step tables
//	walk/       — the simulator: options, random source, Run → Histogram
//	report/     — normalize, smooth, summarize, CSV and PNG output
//	cmd/        — the randwalk command-line front end
//
// Quick sketch:
//
//	tbl, _ := shifttable.New([]shifttable.Entry{
//	  {Threshold: 0.5, Step: -1},
//	  {Threshold: 1.0, Step: +1},
//	})
//	opts := walk.DefaultOptions()
//	opts.Table = tbl
//	hist, _ := walk.Run(opts)
//	density, _ := report.Normalize(hist)
//	smoothed, _ := report.Smooth(density, report.DefaultRadius)
//	_ = report.RenderFile("walk.png", smoothed)
//
//	go get github.com/katalvlaran/randwalk
package randwalk
