package render

import (
	"image/color"

	"gonum.org/v1/plot/vg"
)

// Style is the explicit chart configuration passed to every renderer.
// There is no package-level mutable default; callers hold a Style value
// and hand it to each call, so concurrent renders with different themes
// cannot interfere.
type Style struct {
	// Background fills the whole canvas; Surface fills panel areas.
	Background, Surface color.Color

	// Accent colors, used in order for multi-curve plots.
	Primary, Secondary, Success, Warning, Danger, Info color.Color

	// Text colors.
	TextPrimary, TextSecondary, TextMuted color.Color

	// Grid and axis line colors.
	Grid, Axis, Tick color.Color

	// Font sizes.
	TitleSize, LabelSize, TickSize, LegendSize vg.Length

	// LineWidth is the stroke width of data lines.
	LineWidth vg.Length
}

// DarkTheme returns the PolarCraft dark palette, slate background with
// cyan/violet accents.
func DarkTheme() Style {
	return Style{
		Background: color.RGBA{R: 0x0f, G: 0x17, B: 0x2a, A: 0xff},
		Surface:    color.RGBA{R: 0x1e, G: 0x29, B: 0x3b, A: 0xff},

		Primary:   color.RGBA{R: 0x22, G: 0xd3, B: 0xee, A: 0xff},
		Secondary: color.RGBA{R: 0xa7, G: 0x8b, B: 0xfa, A: 0xff},
		Success:   color.RGBA{R: 0x10, G: 0xb9, B: 0x81, A: 0xff},
		Warning:   color.RGBA{R: 0xfb, G: 0xbf, B: 0x24, A: 0xff},
		Danger:    color.RGBA{R: 0xf4, G: 0x3f, B: 0x5e, A: 0xff},
		Info:      color.RGBA{R: 0x60, G: 0xa5, B: 0xfa, A: 0xff},

		TextPrimary:   color.White,
		TextSecondary: color.RGBA{R: 0xcb, G: 0xd5, B: 0xe1, A: 0xff},
		TextMuted:     color.RGBA{R: 0x94, G: 0xa3, B: 0xb8, A: 0xff},

		Grid: color.RGBA{R: 0x47, G: 0x55, B: 0x69, A: 0xff},
		Axis: color.RGBA{R: 0x94, G: 0xa3, B: 0xb8, A: 0xff},
		Tick: color.RGBA{R: 0xcb, G: 0xd5, B: 0xe1, A: 0xff},

		TitleSize:  16,
		LabelSize:  12,
		TickSize:   10,
		LegendSize: 10,

		LineWidth: 2,
	}
}

// SeriesColors returns the accent cycle for multi-curve plots.
func (s Style) SeriesColors() []color.Color {
	return []color.Color{s.Primary, s.Secondary, s.Success, s.Warning, s.Danger, s.Info}
}

// SeriesColor returns the accent for the i-th curve, cycling.
func (s Style) SeriesColor(i int) color.Color {
	cycle := s.SeriesColors()
	return cycle[i%len(cycle)]
}
