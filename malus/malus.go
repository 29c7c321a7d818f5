// Package malus implements Malus's law, I = I₀·cos²θ, for a linear
// polarizer rotated against linearly polarized input light.
package malus

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Intensity returns the transmitted intensity I = I₀·cos²θ for an
// analyzer at angleDeg to the incident polarization.
func Intensity(angleDeg, i0 float64) float64 {
	c := math.Cos(angleDeg * math.Pi / 180)
	return i0 * c * c
}

// Efficiency returns the transmission efficiency in percent, 100·cos²θ.
func Efficiency(angleDeg float64) float64 {
	return Intensity(angleDeg, 100)
}

// Sweep evaluates Malus's law on n evenly spaced angles spanning
// [startDeg, stopDeg] and returns the angles with the matching
// intensities. n < 2 yields nil slices.
func Sweep(i0, startDeg, stopDeg float64, n int) (angles, intensities []float64) {
	if n < 2 {
		return nil, nil
	}
	angles = floats.Span(make([]float64, n), startDeg, stopDeg)
	intensities = make([]float64, n)
	for i, a := range angles {
		intensities[i] = Intensity(a, i0)
	}
	return angles, intensities
}
