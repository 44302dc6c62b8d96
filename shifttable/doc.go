// Package shifttable maps uniform random draws in [0,1] to signed
// integer steps through an ordered sequence of probability thresholds.
//
// A table is a partition of the unit interval: each entry owns the
// half-open slice of (0,1] below its threshold and above its
// predecessor's, and carries the step a walker takes when a draw lands
// in that slice. For example
//
//	{0.5 → −1, 1.0 → +1}
//
// steps down with probability 0.5 and up with probability 0.5, while
//
//	{1/6 → −3, 2/6 → −2, 3/6 → −1, 4/6 → +1, 5/6 → +2, 6/6 → +3}
//
// spreads the mass over six step sizes.
//
// Tables are validated at construction (non-empty, thresholds strictly
// ascending within (0,1]) and immutable afterwards. A draw that no
// threshold covers is a fatal condition, reported as ErrLookupFailure —
// defaulting the step would silently corrupt the resulting distribution.
package shifttable
