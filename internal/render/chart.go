// Package render draws report aggregates as PNG images.
package render

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"

	"github.com/iwvelando/automobile-sales/internal/report"
	"github.com/iwvelando/automobile-sales/pkg/constants"
	"github.com/iwvelando/automobile-sales/pkg/mathutil"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Default image size of a single chart.
var (
	DefaultWidth  = constants.DefaultChartWidthInches * vg.Inch
	DefaultHeight = constants.DefaultChartHeightInches * vg.Inch
)

var barWidth = vg.Points(20)

var barColor = color.RGBA{R: 0x4F, G: 0x46, B: 0xE5, A: 0xFF}

// ErrNotReady is returned when a dashboard image is requested for a render
// model that holds no report.
var ErrNotReady = errors.New("no report selected")

// Chart builds the plot for one aggregate. Pie aggregates are drawn as bars
// of their percentage shares.
func Chart(a report.Aggregate) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = a.Title
	p.Title.TextStyle.Font.Size = vg.Points(12)
	p.X.Label.Text = a.XLabel
	p.Y.Label.Text = a.YLabel
	p.Add(plotter.NewGrid())

	if a.Empty() {
		return p, nil
	}

	var err error
	switch {
	case a.Chart == report.ChartPie:
		err = addShareBars(p, a)
	case len(a.SeriesNames()) > 0:
		err = addSeriesScatter(p, a)
	case a.Chart == report.ChartLine:
		err = addLine(p, a)
	default:
		err = addBars(p, a, a.Values())
	}
	if err != nil {
		return nil, fmt.Errorf("failed to build chart %s: %w", a.Name, err)
	}
	return p, nil
}

// WritePNG renders one aggregate as PNG to w.
func WritePNG(w io.Writer, a report.Aggregate, width, height vg.Length) error {
	p, err := Chart(a)
	if err != nil {
		return err
	}
	writer, err := p.WriterTo(width, height, "png")
	if err != nil {
		return fmt.Errorf("failed to prepare PNG writer: %w", err)
	}
	if _, err := writer.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write chart %s: %w", a.Name, err)
	}
	return nil
}

// WriteDashboardPNG renders the whole chart grid of a render model as a
// single PNG, one tile per aggregate.
func WriteDashboardPNG(w io.Writer, model report.RenderModel, width, height vg.Length) error {
	if !model.Ready || len(model.Rows) == 0 {
		return ErrNotReady
	}

	cols := 0
	plots := make([][]*plot.Plot, len(model.Rows))
	for i, row := range model.Rows {
		cols = max(cols, len(row))
		plots[i] = make([]*plot.Plot, len(row))
		for j, aggregate := range row {
			p, err := Chart(aggregate)
			if err != nil {
				return err
			}
			plots[i][j] = p
		}
	}
	for i := range plots {
		for len(plots[i]) < cols {
			plots[i] = append(plots[i], nil)
		}
	}

	img := vgimg.New(width, height)
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows:      len(plots),
		Cols:      cols,
		PadX:      vg.Millimeter * 4,
		PadY:      vg.Millimeter * 4,
		PadTop:    vg.Millimeter * 2,
		PadBottom: vg.Millimeter * 2,
		PadLeft:   vg.Millimeter * 2,
		PadRight:  vg.Millimeter * 2,
	}

	canvases := plot.Align(plots, tiles, dc)
	for i := range plots {
		for j, p := range plots[i] {
			if p != nil {
				p.Draw(canvases[i][j])
			}
		}
	}

	if _, err := (vgimg.PngCanvas{Canvas: img}).WriteTo(w); err != nil {
		return fmt.Errorf("failed to write dashboard image: %w", err)
	}
	return nil
}

// SavePNG renders one aggregate into dir as <name>.png and returns the path.
func SavePNG(dir string, a report.Aggregate) (string, error) {
	path := filepath.Join(dir, a.Name+".png")
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	if err := WritePNG(file, a, DefaultWidth, DefaultHeight); err != nil {
		return "", err
	}
	return path, file.Close()
}

func addLine(p *plot.Plot, a report.Aggregate) error {
	xys := make(plotter.XYs, len(a.Points))
	for i, point := range a.Points {
		xys[i].X = point.X
		xys[i].Y = point.Value
	}

	line, points, err := plotter.NewLinePoints(xys)
	if err != nil {
		return err
	}
	line.Color = barColor
	points.Color = barColor
	points.Shape = draw.CircleGlyph{}
	p.Add(line, points)
	return nil
}

func addBars(p *plot.Plot, a report.Aggregate, values []float64) error {
	bars, err := plotter.NewBarChart(plotter.Values(values), barWidth)
	if err != nil {
		return err
	}
	bars.Color = barColor
	bars.LineStyle.Width = vg.Length(0)
	p.Add(bars)

	names := make([]string, len(a.Points))
	for i, point := range a.Points {
		names[i] = point.Key
	}
	p.NominalX(names...)
	return nil
}

func addShareBars(p *plot.Plot, a report.Aggregate) error {
	shares := a.Shares()
	for i := range shares {
		shares[i] = mathutil.Round(shares[i])
	}
	p.Y.Label.Text = "Share of " + a.YLabel + " (%)"
	return addBars(p, a, shares)
}

func addSeriesScatter(p *plot.Plot, a report.Aggregate) error {
	for i, series := range a.SeriesNames() {
		var xys plotter.XYs
		for _, point := range a.Points {
			if point.Series == series {
				xys = append(xys, plotter.XY{X: point.X, Y: point.Value})
			}
		}

		scatter, err := plotter.NewScatter(xys)
		if err != nil {
			return err
		}
		scatter.GlyphStyle.Color = plotutil.Color(i)
		scatter.GlyphStyle.Shape = draw.CircleGlyph{}
		scatter.GlyphStyle.Radius = vg.Points(3)
		p.Add(scatter)
		p.Legend.Add(series, scatter)
	}
	p.Legend.Top = true
	return nil
}
