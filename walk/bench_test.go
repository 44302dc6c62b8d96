package walk_test

import (
	"testing"

	"github.com/katalvlaran/randwalk/shifttable"
	"github.com/katalvlaran/randwalk/walk"
)

// BenchmarkRun_Default measures a full run at the default scale
// (100 units × 100 trials, two-entry table).
// Complexity: O(Units·Trials·len(Table))
func BenchmarkRun_Default(b *testing.B) {
	opts := walk.DefaultOptions()
	opts.Seed = 42

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := walk.Run(opts); err != nil {
			b.Fatalf("Run failed: %v", err)
		}
	}
}

// BenchmarkRun_WideTable measures a heavier run against a six-entry
// table (10000 units × 50 trials).
func BenchmarkRun_WideTable(b *testing.B) {
	tbl, err := shifttable.New([]shifttable.Entry{
		{Threshold: 1.0 / 6, Step: -3},
		{Threshold: 2.0 / 6, Step: -2},
		{Threshold: 3.0 / 6, Step: -1},
		{Threshold: 4.0 / 6, Step: 1},
		{Threshold: 5.0 / 6, Step: 2},
		{Threshold: 1.0, Step: 3},
	})
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	opts := walk.Options{Units: 10000, Trials: 50, Table: tbl, Seed: 42}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := walk.Run(opts); err != nil {
			b.Fatalf("Run failed: %v", err)
		}
	}
}
