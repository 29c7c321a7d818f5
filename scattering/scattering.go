package scattering

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Regime thresholds on the size parameter x = 2πr/λ.
const (
	// RayleighLimit is the size parameter below which scattering is
	// well described by the Rayleigh dipole model.
	RayleighLimit = 0.5
	// MieLimit is the size parameter above which geometric Mie
	// scattering dominates.
	MieLimit = 10.0
)

// Regime labels which scattering model applies at a given size
// parameter.
type Regime int

const (
	// RegimeRayleigh covers x < RayleighLimit.
	RegimeRayleigh Regime = iota
	// RegimeIntermediate covers RayleighLimit ≤ x < MieLimit.
	RegimeIntermediate
	// RegimeMie covers x ≥ MieLimit.
	RegimeMie
)

// String returns the lower-case label of the regime.
func (r Regime) String() string {
	switch r {
	case RegimeRayleigh:
		return "rayleigh"
	case RegimeIntermediate:
		return "intermediate"
	default:
		return "mie"
	}
}

// ClassifyRegime buckets a size parameter into its scattering regime.
func ClassifyRegime(x float64) Regime {
	switch {
	case x < RayleighLimit:
		return RegimeRayleigh
	case x < MieLimit:
		return RegimeIntermediate
	default:
		return RegimeMie
	}
}

// SizeParameter returns x = 2πr/λ. Radius and wavelength must share
// the same unit.
func SizeParameter(radius, wavelength float64) float64 {
	return 2 * math.Pi * radius / wavelength
}

// HenyeyGreenstein evaluates the Henyey-Greenstein phase function at
// scattering angle thetaDeg with asymmetry parameter g ∈ (−1,1):
//
//	P(θ) = (1−g²) / (1 + g² − 2g·cosθ)^(3/2)
//
// g=0 is isotropic, g→1 strongly forward-peaked.
func HenyeyGreenstein(g, thetaDeg float64) float64 {
	cos := math.Cos(thetaDeg * math.Pi / 180)
	return (1 - g*g) / math.Pow(1+g*g-2*g*cos, 1.5)
}

// MiePhase approximates the Mie phase function at scattering angle
// thetaDeg for size parameter x. The asymmetry parameter grows with
// particle size, g = 1 − 2/(x+2), and intermediate sizes (1 < x < 50)
// carry a damped cosine ripple mimicking Mie interference lobes.
//
// This is an educational approximation. The full Mie series (Bessel
// function expansions) is deliberately not implemented.
func MiePhase(thetaDeg, x float64) float64 {
	g := 1 - 2/(x+2)
	p := HenyeyGreenstein(g, thetaDeg)
	if x > 1 && x < 50 {
		theta := thetaDeg * math.Pi / 180
		p *= 1 + 0.3*math.Cos(x*theta)*math.Exp(-theta/math.Pi)
	}
	return p
}

// RayleighPhase evaluates the Rayleigh dipole phase function
// P(θ) = 1 + cos²θ at scattering angle thetaDeg.
func RayleighPhase(thetaDeg float64) float64 {
	cos := math.Cos(thetaDeg * math.Pi / 180)
	return 1 + cos*cos
}

// RayleighIntensity returns the relative scattered intensity at the
// given vacuum wavelength (nm) and scattering angle, normalized to
// 450 nm:
//
//	I ∝ (450/λ)⁴ · (1 + cos²θ)
//
// The λ⁻⁴ factor is why the sky is blue and sunsets are red.
func RayleighIntensity(wavelengthNM, thetaDeg float64) float64 {
	lambdaFactor := math.Pow(450/wavelengthNM, 4)
	return lambdaFactor * RayleighPhase(thetaDeg)
}

// PhasePattern samples a phase function over n evenly spaced angles in
// [0°,360°], for polar plotting. n < 2 yields nil slices.
func PhasePattern(phase func(thetaDeg float64) float64, n int) (angles, values []float64) {
	if n < 2 {
		return nil, nil
	}
	angles = floats.Span(make([]float64, n), 0, 360)
	values = make([]float64, n)
	for i, a := range angles {
		values[i] = phase(a)
	}
	return angles, values
}
