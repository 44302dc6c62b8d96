// cmd/randwalk/root.go
package randwalk

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd is the base cobra command for the randwalk application.
// All subcommands are attached to this root to form the complete CLI.
var rootCmd = &cobra.Command{
	Use:   "randwalk",
	Short: "Simulate population random walks driven by a shift table",
	Long: `randwalk runs a population of independent random walkers whose step
distribution is defined by a probability-threshold shift table, then
aggregates the final positions into a histogram and reports them as a
styled summary, a CSV file, or a smoothed PNG curve.`,
}

// Execute runs the root cobra command and all registered subcommands.
// It prints any returned error and exits the process with a non-zero
// status code on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
