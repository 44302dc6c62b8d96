// Package report turns a walk.Histogram into publishable artifacts.
//
// The pipeline has three pure transforms and two sinks:
//
//	Normalize — histogram → Density summing to 1
//	Smooth    — neighbour average over k±radius, shrinking at the edges
//	Summarize — count-weighted min/max/mean/stddev of the positions
//	WriteCSV  — one "<position>,<count>" line per bucket, ascending
//	Render    — PNG line chart of a density (x = position, y = value)
//
// Smoothing never zero-pads: positions near the extremes of the
// observed range average over fewer neighbours, which keeps edge values
// unbiased. The averages are always computed from a snapshot of the
// input, so earlier keys' smoothed values never leak into later ones.
//
// A zero-total histogram cannot be normalized (ErrEmptyHistogram); that
// failure is confined to reporting — the histogram itself is still
// valid and can be persisted raw.
package report
