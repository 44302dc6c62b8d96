package shifttable_test

import (
	"fmt"

	"github.com/katalvlaran/randwalk/shifttable"
)

// ExampleTable_Lookup demonstrates resolving uniform draws against a
// three-way table: 1/3 down, 1/3 hold, 1/3 up.
func ExampleTable_Lookup() {
	tbl, _ := shifttable.New([]shifttable.Entry{
		{Threshold: 1.0 / 3, Step: -1},
		{Threshold: 2.0 / 3, Step: 0},
		{Threshold: 1.0, Step: +1},
	})

	for _, x := range []float64{0.1, 0.5, 0.9} {
		step, _ := tbl.Lookup(x)
		fmt.Printf("x=%.1f → step %+d\n", x, step)
	}

	// Output:
	// x=0.1 → step -1
	// x=0.5 → step +0
	// x=0.9 → step +1
}

// ExampleTable_Midpoint shows the centering heuristic: half the trial
// count scaled by the largest step in the table.
func ExampleTable_Midpoint() {
	tbl := shifttable.Default()
	fmt.Println(tbl.Midpoint(100))

	// Output:
	// 50
}
