// cmd/randwalk/summary.go
package randwalk

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/randwalk/report"
	"github.com/katalvlaran/randwalk/walk"
)

var (
	summaryBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)

	summaryLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("245")).
				Width(10)

	summaryValueStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("252")).
				Bold(true)
)

// renderSummary formats the run configuration and histogram statistics
// as a bordered two-column block.
func renderSummary(opts walk.Options, s report.Summary) string {
	rows := []struct {
		label, value string
	}{
		{"table", opts.Table.String()},
		{"units", fmt.Sprintf("%d", s.Units)},
		{"trials", fmt.Sprintf("%d", opts.Trials)},
		{"buckets", fmt.Sprintf("%d", s.Buckets)},
		{"range", fmt.Sprintf("%d … %d", s.Min, s.Max)},
		{"mean", fmt.Sprintf("%.3f", s.Mean)},
		{"stddev", fmt.Sprintf("%.3f", s.StdDev)},
	}

	var b strings.Builder
	for i, r := range rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(summaryLabelStyle.Render(r.label))
		b.WriteString(summaryValueStyle.Render(r.value))
	}
	return summaryBoxStyle.Render(b.String())
}
