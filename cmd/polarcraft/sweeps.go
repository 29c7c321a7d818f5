package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"

	"github.com/polarcraft/optics/birefringence"
	"github.com/polarcraft/optics/export"
	"github.com/polarcraft/optics/fresnel"
	"github.com/polarcraft/optics/malus"
	"github.com/polarcraft/optics/rotation"
	"github.com/polarcraft/optics/scattering"
)

func newMalusCommand() *cobra.Command {
	var (
		out       outputOpts
		intensity float64
		samples   int
	)

	cmd := &cobra.Command{
		Use:   "malus",
		Short: "Sweep Malus's law I = I0·cos²θ over 0-180°",
		RunE: func(cmd *cobra.Command, args []string) error {
			angles, intensities := malus.Sweep(intensity, 0, 180, samples)
			data := export.PlotData{
				XLabel: "analyzer_angle_deg",
				X:      angles,
				Curves: []export.Curve{{Label: "intensity", Values: intensities}},
			}
			meta := export.Metadata{
				"demo": "malus",
				"i0":   fmt.Sprintf("%g", intensity),
			}
			return out.emitPlotData("Malus's law", data, meta)
		},
	}

	cmd.Flags().Float64Var(&intensity, "i0", 1, "input intensity")
	cmd.Flags().IntVar(&samples, "samples", 181, "number of sweep samples")
	out.register(cmd)
	return cmd
}

func newFresnelCommand() *cobra.Command {
	var (
		out     outputOpts
		n1, n2  float64
		samples int
	)

	cmd := &cobra.Command{
		Use:   "fresnel",
		Short: "Sweep Fresnel reflectance/transmittance over incidence angle",
		RunE: func(cmd *cobra.Command, args []string) error {
			angles := floats.Span(make([]float64, samples), 0, 89.9)
			rs := make([]float64, samples)
			rp := make([]float64, samples)
			ts := make([]float64, samples)
			tp := make([]float64, samples)
			for i, a := range angles {
				c, err := fresnel.Compute(a, n1, n2)
				if err != nil {
					return err
				}
				rs[i], rp[i], ts[i], tp[i] = c.ReflS, c.ReflP, c.TransS, c.TransP
			}

			data := export.PlotData{
				XLabel: "incidence_angle_deg",
				X:      angles,
				Curves: []export.Curve{
					{Label: "Rs", Values: rs},
					{Label: "Rp", Values: rp},
					{Label: "Ts", Values: ts},
					{Label: "Tp", Values: tp},
				},
			}
			meta := export.Metadata{
				"demo": "fresnel",
				"n1":   fmt.Sprintf("%g", n1),
				"n2":   fmt.Sprintf("%g", n2),
			}
			if thetaB, err := fresnel.BrewsterAngle(n1, n2); err == nil {
				meta["brewster_deg"] = fmt.Sprintf("%.4f", thetaB)
			}
			if thetaC, err := fresnel.CriticalAngle(n1, n2); err == nil {
				meta["critical_deg"] = fmt.Sprintf("%.4f", thetaC)
			}
			return out.emitPlotData("Fresnel coefficients", data, meta)
		},
	}

	cmd.Flags().Float64Var(&n1, "n1", 1.0, "refractive index of the incident medium")
	cmd.Flags().Float64Var(&n2, "n2", 1.5, "refractive index of the transmitting medium")
	cmd.Flags().IntVar(&samples, "samples", 180, "number of sweep samples")
	out.register(cmd)
	return cmd
}

func newBirefringenceCommand() *cobra.Command {
	var (
		out          outputOpts
		intensity    float64
		thicknessMM  float64
		wavelengthNM float64
		samples      int
	)

	cmd := &cobra.Command{
		Use:   "birefringence",
		Short: "Sweep the o/e-ray split over the polarization angle",
		RunE: func(cmd *cobra.Command, args []string) error {
			angles := floats.Span(make([]float64, samples), 0, 90)
			ord := make([]float64, samples)
			ext := make([]float64, samples)
			for i, a := range angles {
				ord[i], ext[i] = birefringence.RayIntensities(a, intensity)
			}

			data := export.PlotData{
				XLabel: "optic_axis_angle_deg",
				X:      angles,
				Curves: []export.Curve{
					{Label: "I_ordinary", Values: ord},
					{Label: "I_extraordinary", Values: ext},
				},
			}
			retardation := birefringence.PhaseRetardation(thicknessMM, wavelengthNM, birefringence.DeltaN)
			meta := export.Metadata{
				"demo":            "birefringence",
				"material":        "calcite",
				"thickness_mm":    fmt.Sprintf("%g", thicknessMM),
				"wavelength_nm":   fmt.Sprintf("%g", wavelengthNM),
				"retardation_deg": fmt.Sprintf("%.4f", retardation),
			}
			return out.emitPlotData("Birefringent ray split", data, meta)
		},
	}

	cmd.Flags().Float64Var(&intensity, "i0", 100, "input intensity")
	cmd.Flags().Float64Var(&thicknessMM, "thickness", 1, "crystal thickness in mm")
	cmd.Flags().Float64Var(&wavelengthNM, "wavelength", 550, "vacuum wavelength in nm")
	cmd.Flags().IntVar(&samples, "samples", 91, "number of sweep samples")
	out.register(cmd)
	return cmd
}

func newScatteringCommand() *cobra.Command {
	var (
		out          outputOpts
		radiusNM     float64
		wavelengthNM float64
		samples      int
	)

	cmd := &cobra.Command{
		Use:   "scattering",
		Short: "Sample Rayleigh and approximate Mie phase functions",
		RunE: func(cmd *cobra.Command, args []string) error {
			x := scattering.SizeParameter(radiusNM, wavelengthNM)

			angles, mie := scattering.PhasePattern(func(deg float64) float64 {
				return scattering.MiePhase(deg, x)
			}, samples)
			_, rayleigh := scattering.PhasePattern(scattering.RayleighPhase, samples)

			data := export.PlotData{
				XLabel: "scattering_angle_deg",
				X:      angles,
				Curves: []export.Curve{
					{Label: "mie_approx", Values: mie},
					{Label: "rayleigh", Values: rayleigh},
				},
			}
			meta := export.Metadata{
				"demo":           "scattering",
				"radius_nm":      fmt.Sprintf("%g", radiusNM),
				"wavelength_nm":  fmt.Sprintf("%g", wavelengthNM),
				"size_parameter": fmt.Sprintf("%.4f", x),
				"regime":         scattering.ClassifyRegime(x).String(),
			}
			return out.emitPlotData("Scattering phase functions", data, meta)
		},
	}

	cmd.Flags().Float64Var(&radiusNM, "radius", 100, "particle radius in nm")
	cmd.Flags().Float64Var(&wavelengthNM, "wavelength", 550, "vacuum wavelength in nm")
	cmd.Flags().IntVar(&samples, "samples", 361, "number of angular samples")
	out.register(cmd)
	return cmd
}

func newRotationCommand() *cobra.Command {
	var (
		out           outputOpts
		substanceName string
		pathDm        float64
		maxConc       float64
		inputDeg      float64
		samples       int
	)

	cmd := &cobra.Command{
		Use:   "rotation",
		Short: "Sweep optical rotation over solution concentration",
		RunE: func(cmd *cobra.Command, args []string) error {
			var substance rotation.Substance
			found := false
			for _, s := range rotation.Substances() {
				if s.Name == substanceName {
					substance, found = s, true
					break
				}
			}
			if !found {
				return fmt.Errorf("unknown substance %q", substanceName)
			}

			concs := floats.Span(make([]float64, samples), 0, maxConc)
			rotations := make([]float64, samples)
			outputs := make([]float64, samples)
			for i, c := range concs {
				rotations[i] = substance.Rotation(pathDm, c)
				outputs[i] = rotation.OutputAngle(inputDeg, rotations[i])
			}

			data := export.PlotData{
				XLabel: "concentration_g_per_ml",
				X:      concs,
				Curves: []export.Curve{
					{Label: "rotation_deg", Values: rotations},
					{Label: "analyzer_deg", Values: outputs},
				},
			}
			meta := export.Metadata{
				"demo":              "rotation",
				"substance":         substance.Name,
				"specific_rotation": fmt.Sprintf("%g", substance.SpecificRotation),
				"path_dm":           fmt.Sprintf("%g", pathDm),
			}
			return out.emitPlotData("Optical rotation", data, meta)
		},
	}

	cmd.Flags().StringVar(&substanceName, "substance", "sucrose", "sucrose, fructose, glucose or lactose")
	cmd.Flags().Float64Var(&pathDm, "path", 2, "sample tube length in dm")
	cmd.Flags().Float64Var(&maxConc, "max-concentration", 0.5, "sweep upper bound in g/mL")
	cmd.Flags().Float64Var(&inputDeg, "input-angle", 0, "input polarization angle in degrees")
	cmd.Flags().IntVar(&samples, "samples", 101, "number of sweep samples")
	out.register(cmd)
	return cmd
}
