package shifttable_test

import (
	"testing"

	"github.com/katalvlaran/randwalk/shifttable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_Validation exercises every constructor invariant:
// non-empty, thresholds in (0,1], strictly ascending.
func TestNew_Validation(t *testing.T) {
	_, err := shifttable.New(nil)
	assert.ErrorIs(t, err, shifttable.ErrEmptyTable, "nil entries must error")

	_, err = shifttable.New([]shifttable.Entry{{Threshold: 0, Step: 1}})
	assert.ErrorIs(t, err, shifttable.ErrThresholdRange, "threshold 0 is outside (0,1]")

	_, err = shifttable.New([]shifttable.Entry{{Threshold: 1.5, Step: 1}})
	assert.ErrorIs(t, err, shifttable.ErrThresholdRange, "threshold above 1 is outside (0,1]")

	_, err = shifttable.New([]shifttable.Entry{
		{Threshold: 0.5, Step: -1},
		{Threshold: 0.5, Step: 1},
	})
	assert.ErrorIs(t, err, shifttable.ErrUnsortedThresholds, "duplicate thresholds must error")

	_, err = shifttable.New([]shifttable.Entry{
		{Threshold: 0.8, Step: -1},
		{Threshold: 0.2, Step: 1},
	})
	assert.ErrorIs(t, err, shifttable.ErrUnsortedThresholds, "descending thresholds must error")
}

// TestNew_CopiesInput verifies the table is immune to later mutation of
// the caller's slice.
func TestNew_CopiesInput(t *testing.T) {
	entries := []shifttable.Entry{
		{Threshold: 0.5, Step: -1},
		{Threshold: 1.0, Step: 1},
	}
	tbl, err := shifttable.New(entries)
	require.NoError(t, err)

	entries[0].Step = 99
	step, err := tbl.Lookup(0.25)
	require.NoError(t, err)
	assert.Equal(t, -1, step, "table must hold its own copy of the entries")
}

// TestLookup_WellFormed checks that every x in [0,1] resolves against a
// table whose thresholds end at 1.0, including both endpoints.
func TestLookup_WellFormed(t *testing.T) {
	tbl, err := shifttable.New([]shifttable.Entry{
		{Threshold: 1.0 / 3, Step: -2},
		{Threshold: 2.0 / 3, Step: 0},
		{Threshold: 1.0, Step: 2},
	})
	require.NoError(t, err)

	cases := []struct {
		x    float64
		step int
	}{
		{0.0, -2},
		{0.1, -2},
		{1.0 / 3, 0}, // boundary draws belong to the next slice
		{0.5, 0},
		{2.0 / 3, 2},
		{0.99, 2},
		{1.0, 2}, // top threshold matches inclusively
	}
	for _, c := range cases {
		step, err := tbl.Lookup(c.x)
		assert.NoError(t, err, "x=%v must resolve", c.x)
		assert.Equal(t, c.step, step, "x=%v", c.x)
	}
}

// TestLookup_Uncovered verifies that a table whose max threshold falls
// short of 1.0 fails with ErrLookupFailure for draws above it.
func TestLookup_Uncovered(t *testing.T) {
	tbl, err := shifttable.New([]shifttable.Entry{
		{Threshold: 0.5, Step: -1},
		{Threshold: 0.9, Step: 1},
	})
	require.NoError(t, err)

	_, err = tbl.Lookup(0.95)
	assert.ErrorIs(t, err, shifttable.ErrLookupFailure, "x=0.95 exceeds max threshold 0.9")
}

// TestMaxStep_Midpoint pins the midpoint formula round(trials/2·maxStep)
// on the default table and on an asymmetric one.
func TestMaxStep_Midpoint(t *testing.T) {
	tbl := shifttable.Default()
	assert.Equal(t, 1, tbl.MaxStep())
	assert.Equal(t, 50, tbl.Midpoint(100), "round(100/2·1) = 50")
	assert.Equal(t, 1, tbl.Midpoint(1), "round(1/2·1) rounds half away from zero")
	assert.Equal(t, 0, tbl.Midpoint(0))

	wide, err := shifttable.New([]shifttable.Entry{
		{Threshold: 0.5, Step: -3},
		{Threshold: 1.0, Step: 3},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, wide.MaxStep())
	assert.Equal(t, 75, wide.Midpoint(50), "round(50/2·3) = 75")
}

// TestMidpoint_AllNegativeSteps verifies the formula is applied verbatim
// even when every step is negative: the midpoint goes negative too.
func TestMidpoint_AllNegativeSteps(t *testing.T) {
	tbl, err := shifttable.New([]shifttable.Entry{
		{Threshold: 0.5, Step: -2},
		{Threshold: 1.0, Step: -1},
	})
	require.NoError(t, err)
	assert.Equal(t, -1, tbl.MaxStep())
	assert.Equal(t, -50, tbl.Midpoint(100))
}

// TestDefault_FreshPerCall ensures Default never hands out shared state.
func TestDefault_FreshPerCall(t *testing.T) {
	a, b := shifttable.Default(), shifttable.Default()
	assert.NotSame(t, a, b, "each call must build a new table")
	assert.Equal(t, a.Entries(), b.Entries())
	assert.Equal(t, 2, a.Len())
}

// TestString pins the display form used by the CLI summary.
func TestString(t *testing.T) {
	assert.Equal(t, "{0.5→-1, 1→1}", shifttable.Default().String())
}
