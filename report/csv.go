package report

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/randwalk/walk"
)

// WriteCSV writes the histogram as "<position>,<count>" lines, one per
// bucket in ascending position order, no header. The raw counts are
// written even when normalization would fail, so a run's result is
// never lost to a reporting error.
func WriteCSV(w io.Writer, h walk.Histogram) error {
	for _, pos := range h.Positions() {
		if _, err := fmt.Fprintf(w, "%d,%d\n", pos, h[pos]); err != nil {
			return fmt.Errorf("report: write csv: %w", err)
		}
	}
	return nil
}

// SaveCSV writes the histogram to the named file, truncating any
// existing content.
func SaveCSV(path string, h walk.Histogram) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report: create %s: %w", path, err)
	}
	if err := WriteCSV(f, h); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("report: close %s: %w", path, err)
	}
	return nil
}
