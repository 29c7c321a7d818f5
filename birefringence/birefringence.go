// Package birefringence models a uniaxial crystal splitting linearly
// polarized light into ordinary and extraordinary rays, and the phase
// retardation accumulated between them.
//
// Default material constants describe calcite, the classic
// demonstration crystal.
package birefringence

import "math"

// Calcite refractive indices at 550 nm.
const (
	// NOrdinary is the ordinary-ray index n_o of calcite.
	NOrdinary = 1.658
	// NExtraordinary is the extraordinary-ray index n_e of calcite.
	NExtraordinary = 1.486
	// DeltaN is the calcite birefringence n_o − n_e.
	DeltaN = NOrdinary - NExtraordinary
)

// RayIntensities splits input intensity between the ordinary and
// extraordinary rays for polarization at angleDeg to the optic axis:
//
//	I_o = I₀·cos²θ   I_e = I₀·sin²θ
//
// The sum is always I₀ (energy conservation).
func RayIntensities(angleDeg, i0 float64) (ordinary, extraordinary float64) {
	theta := angleDeg * math.Pi / 180
	c, s := math.Cos(theta), math.Sin(theta)
	return i0 * c * c, i0 * s * s
}

// PhaseRetardation returns the o/e phase difference in degrees,
// wrapped to [0,360):
//
//	Δφ = (2π/λ)·Δn·d
//
// thicknessMM is the crystal thickness in millimeters, wavelengthNM the
// vacuum wavelength in nanometers, deltaN the birefringence (use the
// DeltaN constant for calcite).
func PhaseRetardation(thicknessMM, wavelengthNM, deltaN float64) float64 {
	thickness := thicknessMM * 1e-3
	wavelength := wavelengthNM * 1e-9
	phaseDeg := 2 * math.Pi / wavelength * deltaN * thickness * 180 / math.Pi
	return math.Mod(phaseDeg, 360)
}
