package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/polarcraft/optics/export"
	"github.com/polarcraft/optics/polarization"
	"github.com/polarcraft/optics/render"
)

func newStokesCommand() *cobra.Command {
	var (
		out     outputOpts
		s       [4]float64
		ellipse string
	)

	cmd := &cobra.Command{
		Use:   "stokes",
		Short: "Report the polarization parameters of a Stokes vector",
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := polarization.New(s[0], s[1], s[2], s[3])
			if err != nil {
				return err
			}

			w, closeFn, err := out.destination()
			if err != nil {
				return err
			}
			if err := export.WriteStokesJSON(w, v, export.Metadata{"demo": "stokes"}); err != nil {
				closeFn()
				return err
			}
			if err := closeFn(); err != nil {
				return err
			}

			if ellipse != "" {
				p, err := render.EllipsePlot(render.DarkTheme(), "Polarization ellipse", v)
				if err != nil {
					return err
				}
				return render.SavePNG(p, 8, 8, ellipse)
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&s[0], "s0", 1, "total intensity S0")
	cmd.Flags().Float64Var(&s[1], "s1", 0, "H/V preference S1")
	cmd.Flags().Float64Var(&s[2], "s2", 0, "±45° preference S2")
	cmd.Flags().Float64Var(&s[3], "s3", 0, "circular preference S3")
	cmd.Flags().StringVar(&ellipse, "ellipse", "", "render the polarization ellipse PNG to this path")
	// The report is always the JSON envelope; only the destination is
	// configurable here.
	cmd.Flags().StringVar(&out.out, "out", "", "output file (default: stdout)")
	return cmd
}

// parseElement maps a kind name and parameters to an optical element.
func parseElement(kind string, angle, retardance, diatt, depol float64) (polarization.Element, error) {
	kinds := map[string]polarization.ElementKind{
		"identity":          polarization.KindIdentity,
		"linear-polarizer":  polarization.KindLinearPolarizer,
		"quarter-wave":      polarization.KindQuarterWave,
		"half-wave":         polarization.KindHalfWave,
		"rotator":           polarization.KindRotator,
		"retarder":          polarization.KindRetarder,
		"partial-polarizer": polarization.KindPartialPolarizer,
		"depolarizer":       polarization.KindDepolarizer,
	}
	k, ok := kinds[kind]
	if !ok {
		return polarization.Element{}, fmt.Errorf("unknown element kind %q", kind)
	}
	return polarization.Element{
		Kind:           k,
		AngleDeg:       angle,
		RetardanceDeg:  retardance,
		Diattenuation:  diatt,
		Depolarization: depol,
	}, nil
}

func newMuellerCommand() *cobra.Command {
	var (
		out        outputOpts
		kind       string
		angle      float64
		retardance float64
		diatt      float64
		depol      float64
		s          [4]float64
	)

	cmd := &cobra.Command{
		Use:   "mueller",
		Short: "Build an element's Mueller matrix and apply it to a state",
		RunE: func(cmd *cobra.Command, args []string) error {
			elem, err := parseElement(kind, angle, retardance, diatt, depol)
			if err != nil {
				return err
			}
			m, err := elem.Mueller()
			if err != nil {
				return err
			}

			in, err := polarization.New(s[0], s[1], s[2], s[3])
			if err != nil {
				return fmt.Errorf("input state: %w", err)
			}
			result, err := m.Apply(in)
			if err != nil {
				return fmt.Errorf("apply: %w", err)
			}

			meta := export.Metadata{
				"demo":                 "mueller",
				"element":              elem.Kind.String(),
				"diattenuation":        fmt.Sprintf("%.4f", m.Diattenuation()),
				"polarizance":          fmt.Sprintf("%.4f", m.Polarizance()),
				"depolarization_index": fmt.Sprintf("%.4f", m.DepolarizationIndex()),
				"determinant":          fmt.Sprintf("%.4f", m.Determinant()),
				"trace":                fmt.Sprintf("%.4f", m.Trace()),
				"output_dop":           fmt.Sprintf("%.4f", result.DOP()),
			}

			w, closeFn, err := out.destination()
			if err != nil {
				return err
			}
			switch out.format {
			case "csv":
				err = export.WriteMuellerCSV(w, m, meta)
			case "json":
				err = export.WriteMuellerJSON(w, elem.Kind.String(), m, meta)
			default:
				err = fmt.Errorf("unsupported format %q (use csv or json)", out.format)
			}
			if err != nil {
				closeFn()
				return err
			}
			return closeFn()
		},
	}

	cmd.Flags().StringVar(&kind, "element", "linear-polarizer", "element kind")
	cmd.Flags().Float64Var(&angle, "angle", 0, "axis or rotation angle in degrees")
	cmd.Flags().Float64Var(&retardance, "retardance", 90, "retardance in degrees (retarder only)")
	cmd.Flags().Float64Var(&diatt, "diattenuation", 0.5, "diattenuation in [0,1] (partial polarizer only)")
	cmd.Flags().Float64Var(&depol, "depolarization", 0.5, "depolarization in [0,1] (depolarizer only)")
	cmd.Flags().Float64Var(&s[0], "s0", 1, "input S0")
	cmd.Flags().Float64Var(&s[1], "s1", 0, "input S1")
	cmd.Flags().Float64Var(&s[2], "s2", 0, "input S2")
	cmd.Flags().Float64Var(&s[3], "s3", 0, "input S3")
	out.register(cmd)
	return cmd
}
