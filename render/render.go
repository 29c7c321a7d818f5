package render

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/polarcraft/optics/export"
	"github.com/polarcraft/optics/polarization"
)

// ErrLengthMismatch indicates x and y series of different lengths.
var ErrLengthMismatch = errors.New("render: x and y series must have equal length")

// NewPlot builds an empty styled plot: themed background, text, axes
// and a grid. Callers add data and save with SavePNG.
func NewPlot(s Style, title, xLabel, yLabel string) *plot.Plot {
	p := plot.New()
	p.BackgroundColor = s.Background

	p.Title.Text = title
	p.Title.TextStyle.Color = s.TextPrimary
	p.Title.TextStyle.Font.Size = s.TitleSize

	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	for _, axis := range []*plot.Axis{&p.X, &p.Y} {
		axis.Label.TextStyle.Color = s.TextPrimary
		axis.Label.TextStyle.Font.Size = s.LabelSize
		axis.LineStyle.Color = s.Axis
		axis.Tick.LineStyle.Color = s.Axis
		axis.Tick.Label.Color = s.Tick
		axis.Tick.Label.Font.Size = s.TickSize
	}

	p.Legend.TextStyle.Color = s.TextSecondary
	p.Legend.TextStyle.Font.Size = s.LegendSize
	p.Legend.Top = true

	grid := plotter.NewGrid()
	grid.Vertical.Color = s.Grid
	grid.Horizontal.Color = s.Grid
	p.Add(grid)

	return p
}

// XYs pairs x and y samples into plotter points.
func XYs(x, y []float64) (plotter.XYs, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("%d x values, %d y values: %w", len(x), len(y), ErrLengthMismatch)
	}
	pts := make(plotter.XYs, len(x))
	for i := range x {
		pts[i].X = x[i]
		pts[i].Y = y[i]
	}
	return pts, nil
}

// AddLine draws one styled curve and registers its legend entry. The
// color cycles through the accent palette by series index.
func AddLine(p *plot.Plot, s Style, index int, label string, pts plotter.XYs) error {
	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("render: line %q: %w", label, err)
	}
	line.LineStyle.Width = s.LineWidth
	line.LineStyle.Color = s.SeriesColor(index)
	p.Add(line)
	p.Legend.Add(label, line)
	return nil
}

// LinePlot renders sweep output (a shared x-axis with labelled curves)
// as a styled XY chart.
func LinePlot(s Style, title string, data export.PlotData) (*plot.Plot, error) {
	p := NewPlot(s, title, data.XLabel, "")
	for i, c := range data.Curves {
		pts, err := XYs(data.X, c.Values)
		if err != nil {
			return nil, fmt.Errorf("render: curve %q: %w", c.Label, err)
		}
		if err := AddLine(p, s, i, c.Label, pts); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// PolarXYs maps a phase pattern (angle in degrees, radius) onto the
// Cartesian plane for polar-style diagrams: x = r·cosθ, y = r·sinθ.
func PolarXYs(anglesDeg, radii []float64) (plotter.XYs, error) {
	if len(anglesDeg) != len(radii) {
		return nil, fmt.Errorf("%d angles, %d radii: %w", len(anglesDeg), len(radii), ErrLengthMismatch)
	}
	pts := make(plotter.XYs, len(anglesDeg))
	for i := range anglesDeg {
		theta := anglesDeg[i] * math.Pi / 180
		pts[i].X = radii[i] * math.Cos(theta)
		pts[i].Y = radii[i] * math.Sin(theta)
	}
	return pts, nil
}

// PolarPlot renders a phase-function pattern as a closed polar curve,
// the standard scattering-lobe diagram.
func PolarPlot(s Style, title string, anglesDeg, radii []float64) (*plot.Plot, error) {
	pts, err := PolarXYs(anglesDeg, radii)
	if err != nil {
		return nil, err
	}
	p := NewPlot(s, title, "", "")
	if err := AddLine(p, s, 0, "phase", pts); err != nil {
		return nil, err
	}
	return p, nil
}

// EllipseXYs traces the polarization ellipse over n points: the
// semi-axes a,b rotated by the orientation angle ψ.
func EllipseXYs(e polarization.Ellipse, n int) plotter.XYs {
	if n < 2 {
		return nil
	}
	psi := e.PsiDeg * math.Pi / 180
	cosPsi, sinPsi := math.Cos(psi), math.Sin(psi)

	pts := make(plotter.XYs, n)
	for i := 0; i < n; i++ {
		tau := 2 * math.Pi * float64(i) / float64(n-1)
		u := e.A * math.Cos(tau)
		v := e.B * math.Sin(tau)
		pts[i].X = u*cosPsi - v*sinPsi
		pts[i].Y = u*sinPsi + v*cosPsi
	}
	return pts
}

// EllipsePlot renders a state's polarization ellipse.
func EllipsePlot(s Style, title string, v polarization.StokesVector) (*plot.Plot, error) {
	p := NewPlot(s, title, "Ex", "Ey")
	e := v.Ellipse()
	if err := AddLine(p, s, 0, e.Handedness.String(), EllipseXYs(e, 256)); err != nil {
		return nil, err
	}
	return p, nil
}

// SavePNG writes the plot at the given size in inches, creating parent
// directories as needed. A ".png" extension is appended when missing.
func SavePNG(p *plot.Plot, widthIn, heightIn float64, path string) error {
	if filepath.Ext(path) != ".png" {
		path += ".png"
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("render: create directory: %w", err)
	}
	if err := p.Save(vg.Length(widthIn)*vg.Inch, vg.Length(heightIn)*vg.Inch, path); err != nil {
		return fmt.Errorf("render: save png: %w", err)
	}
	return nil
}
