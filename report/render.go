package report

import (
	"fmt"
	"io"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Chart dimensions for rendered densities.
const (
	chartWidth  = 8 * vg.Inch
	chartHeight = 4 * vg.Inch
)

// Render plots the density as a line chart (x = position, y = value)
// and writes the PNG to w. Points are connected in ascending position
// order. An empty density is ErrEmptyDensity.
func Render(w io.Writer, d Density) error {
	if len(d) == 0 {
		return ErrEmptyDensity
	}

	pts := make(plotter.XYs, 0, len(d))
	for _, pos := range d.Positions() {
		pts = append(pts, plotter.XY{X: float64(pos), Y: d[pos]})
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("report: build line: %w", err)
	}

	p := plot.New()
	p.Title.Text = "population density"
	p.X.Label.Text = "position"
	p.Y.Label.Text = "density"
	p.Add(line)

	wt, err := p.WriterTo(chartWidth, chartHeight, "png")
	if err != nil {
		return fmt.Errorf("report: encode chart: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("report: write chart: %w", err)
	}
	return nil
}

// RenderFile renders the density to the named PNG file.
func RenderFile(path string, d Density) error {
	if len(d) == 0 {
		return ErrEmptyDensity
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report: create %s: %w", path, err)
	}
	if err := Render(f, d); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("report: close %s: %w", path, err)
	}
	return nil
}
