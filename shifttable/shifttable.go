package shifttable

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Sentinel errors for table construction and lookup.
var (
	// ErrEmptyTable indicates a table with no entries.
	ErrEmptyTable = errors.New("shifttable: table must contain at least one entry")
	// ErrThresholdRange indicates a threshold outside the interval (0,1].
	ErrThresholdRange = errors.New("shifttable: thresholds must lie in (0,1]")
	// ErrUnsortedThresholds indicates thresholds that are not strictly ascending.
	ErrUnsortedThresholds = errors.New("shifttable: thresholds must be strictly ascending")
	// ErrLookupFailure indicates a draw that no threshold covers.
	ErrLookupFailure = errors.New("shifttable: no threshold covers draw")
)

// Entry pairs a cumulative probability threshold with the step a walker
// takes when its draw falls below that threshold.
type Entry struct {
	// Threshold is the cumulative probability bound, in (0,1].
	Threshold float64
	// Step is the signed position delta selected by this entry.
	Step int
}

// Table is an immutable ordered sequence of entries, ascending by
// threshold. Construct with New; the zero value is unusable.
type Table struct {
	entries []Entry
}

// New builds a Table from entries, validating the structural invariants:
// at least one entry, every threshold in (0,1], strictly ascending order.
// The input slice is copied; callers may reuse it.
func New(entries []Entry) (*Table, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyTable
	}
	prev := 0.0
	for i, e := range entries {
		if e.Threshold <= 0 || e.Threshold > 1 {
			return nil, fmt.Errorf("%w: entry %d has threshold %v", ErrThresholdRange, i, e.Threshold)
		}
		if e.Threshold <= prev {
			return nil, fmt.Errorf("%w: entry %d (%v) after %v", ErrUnsortedThresholds, i, e.Threshold, prev)
		}
		prev = e.Threshold
	}
	cp := make([]Entry, len(entries))
	copy(cp, entries)
	return &Table{entries: cp}, nil
}

// Default returns a fresh two-entry table {0.5 → −1, 1.0 → +1}: a fair
// unit step up or down. A new Table is built on every call, so callers
// can never share state through the default.
func Default() *Table {
	t, err := New([]Entry{
		{Threshold: 0.5, Step: -1},
		{Threshold: 1.0, Step: +1},
	})
	if err != nil {
		// The literal above always satisfies New's invariants.
		panic(err)
	}
	return t
}

// Lookup resolves a uniform draw x in [0,1] to a step: the step of the
// first entry whose threshold exceeds x, with the final entry matching
// inclusively so a full-coverage table also resolves x equal to its top
// threshold. If no entry covers x the table does not span the sampling
// domain and Lookup returns ErrLookupFailure.
//
// Complexity: O(len(table)) — tables are tiny, a scan beats bookkeeping.
func (t *Table) Lookup(x float64) (int, error) {
	for _, e := range t.entries {
		if x < e.Threshold {
			return e.Step, nil
		}
	}
	if last := t.entries[len(t.entries)-1]; x == last.Threshold {
		return last.Step, nil
	}
	return 0, fmt.Errorf("%w: x=%v, max threshold %v", ErrLookupFailure, x, t.entries[len(t.entries)-1].Threshold)
}

// MaxStep returns the largest step value in the table.
func (t *Table) MaxStep() int {
	max := t.entries[0].Step
	for _, e := range t.entries[1:] {
		if e.Step > max {
			max = e.Step
		}
	}
	return max
}

// Midpoint returns the initial position for every walker in a run of
// the given trial count: round(trials/2 · MaxStep). This centers the
// population so a walk of at-most-MaxStep moves is unlikely to go
// negative; it is a heuristic, not a bound.
func (t *Table) Midpoint(trials int) int {
	return int(math.Round(float64(trials) / 2 * float64(t.MaxStep())))
}

// Len returns the number of entries.
func (t *Table) Len() int { return len(t.entries) }

// Entries returns a copy of the table's entries in ascending threshold
// order.
func (t *Table) Entries() []Entry {
	cp := make([]Entry, len(t.entries))
	copy(cp, t.entries)
	return cp
}

// String renders the table as "{0.5→-1, 1→1}".
func (t *Table) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, e := range t.entries {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v→%d", e.Threshold, e.Step)
	}
	b.WriteByte('}')
	return b.String()
}
