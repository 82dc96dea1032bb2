// Package render draws field analysis results to PNG files with gonum/plot.
//
// These are pure sinks: they consume the pipeline's arrays and report any
// font, encoding, or filesystem failure back to the caller.
package render

import (
	"errors"
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// ErrEmptyData is returned when there is nothing to draw.
var ErrEmptyData = errors.New("render: data must not be empty")

const (
	plotWidth  = 10 * vg.Inch
	plotHeight = 5 * vg.Inch

	paletteColors = 255
)

// fieldGrid adapts a row-per-node matrix to the plotter grid interface.
// Columns map to sample index, rows to node index.
type fieldGrid struct {
	data [][]float64
}

func (g fieldGrid) Dims() (c, r int) {
	if len(g.data) == 0 {
		return 0, 0
	}
	return len(g.data[0]), len(g.data)
}

func (g fieldGrid) Z(c, r int) float64 { return g.data[r][c] }
func (g fieldGrid) X(c int) float64    { return float64(c) }
func (g fieldGrid) Y(r int) float64    { return float64(r) }

// SaveHeatmap renders m as a heatmap PNG, one horizontal band per node.
func SaveHeatmap(path, title string, m [][]float64) error {
	if len(m) == 0 || len(m[0]) == 0 {
		return ErrEmptyData
	}
	width := len(m[0])
	for i, row := range m {
		if len(row) != width {
			return fmt.Errorf("render: row %d length %d, want %d", i, len(row), width)
		}
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "sample"
	p.Y.Label.Text = "node"

	p.Add(plotter.NewHeatMap(fieldGrid{data: m}, palette.Heat(paletteColors, 1)))

	if err := p.Save(plotWidth, plotHeight, path); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

// SaveLine renders a single series against its index as a line plot PNG.
func SaveLine(path, title, xLabel, yLabel string, ys []float64) error {
	if len(ys) == 0 {
		return ErrEmptyData
	}
	return SaveLines(path, title, xLabel, yLabel, [][]float64{ys})
}

// SaveLines renders one line per row against the sample index.
func SaveLines(path, title, xLabel, yLabel string, rows [][]float64) error {
	if len(rows) == 0 {
		return ErrEmptyData
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel

	for i, row := range rows {
		if len(row) == 0 {
			continue
		}

		xys := make(plotter.XYs, len(row))
		for j, v := range row {
			xys[j].X = float64(j)
			xys[j].Y = v
		}

		line, err := plotter.NewLine(xys)
		if err != nil {
			return fmt.Errorf("render: row %d: %w", i, err)
		}
		line.Color = plotutil.Color(i)
		p.Add(line)
	}

	if err := p.Save(plotWidth, plotHeight, path); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}
