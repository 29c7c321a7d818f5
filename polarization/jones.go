package polarization

import (
	"math"
	"math/cmplx"
)

// JonesVector is the complex 2-vector [Ex, Ey] describing the electric
// field of fully polarized light. It cannot represent partial
// polarization; use StokesVector for that.
type JonesVector struct {
	Ex, Ey complex128
}

// LinearJones returns the Jones vector of linear polarization at the
// given orientation angle in degrees: [cosθ, sinθ].
func LinearJones(angleDeg float64) JonesVector {
	theta := radians(angleDeg)
	return JonesVector{complex(math.Cos(theta), 0), complex(math.Sin(theta), 0)}
}

// Intensity returns |Ex|² + |Ey|².
func (j JonesVector) Intensity() float64 {
	return real(j.Ex)*real(j.Ex) + imag(j.Ex)*imag(j.Ex) +
		real(j.Ey)*real(j.Ey) + imag(j.Ey)*imag(j.Ey)
}

// Normalize scales the vector to unit intensity. The zero vector is
// returned unchanged.
func (j JonesVector) Normalize() JonesVector {
	norm := math.Sqrt(j.Intensity())
	if norm < DefaultZeroTol {
		return j
	}
	inv := complex(1/norm, 0)
	return JonesVector{j.Ex * inv, j.Ey * inv}
}

// Classify labels the polarization state of the Jones vector and, for
// linear and elliptical states, reports the orientation angle in degrees
// within [0,180).
//
// Decision order (matching the waveplate classification logic):
//  1. near-zero vector ⇒ linear at 0°
//  2. relative phase ≈ 0 or ≈ π ⇒ linear
//  3. |Ex| ≈ |Ey| with phase ≈ ±π/2 ⇒ circular (sign picks handedness)
//  4. otherwise elliptical
func (j JonesVector) Classify(opts ...Option) (StateKind, float64) {
	o := gatherOptions(opts...)

	norm := math.Sqrt(j.Intensity())
	if norm < o.zeroTol {
		return StateLinear, 0
	}
	inv := complex(1/norm, 0)
	ex, ey := j.Ex*inv, j.Ey*inv

	// Relative phase wrapped to (−π, π].
	phase := cmplx.Phase(ey) - cmplx.Phase(ex)
	phase = math.Mod(phase+math.Pi, 2*math.Pi)
	if phase < 0 {
		phase += 2 * math.Pi
	}
	phase -= math.Pi

	ratio := cmplx.Abs(ey) / (cmplx.Abs(ex) + o.zeroTol)

	// Linear: components in phase or anti-phase.
	if math.Abs(phase) < o.classifyTol || math.Abs(math.Abs(phase)-math.Pi) < o.classifyTol {
		angle := degrees(math.Atan2(real(ey), real(ex)))
		return StateLinear, math.Mod(angle+180, 180)
	}

	// Circular: equal amplitudes in quadrature.
	if math.Abs(ratio-1) < o.classifyTol && math.Abs(math.Abs(phase)-math.Pi/2) < o.classifyTol {
		if phase > 0 {
			return StateCircularRight, 0
		}
		return StateCircularLeft, 0
	}

	// Elliptical: orientation from the cross term Ex·Ey*.
	cross := ex * cmplx.Conj(ey)
	angle := degrees(math.Atan2(imag(cross), real(cross)) / 2)
	return StateElliptical, math.Mod(angle+180, 180)
}

// JonesMatrix is a 2×2 complex operator acting on Jones vectors,
// row-major: [[M00, M01], [M10, M11]].
type JonesMatrix [2][2]complex128

// jonesRotation is the real 2×2 rotation R(θ) used to re-orient a
// waveplate's fast-axis frame.
func jonesRotation(theta float64) JonesMatrix {
	c := complex(math.Cos(theta), 0)
	s := complex(math.Sin(theta), 0)
	return JonesMatrix{{c, s}, {-s, c}}
}

// QuarterWaveJones returns the Jones matrix of a quarter-wave plate
// (π/2 retardance) with its fast axis at the given angle in degrees:
// R(−θ)·diag(1, i)·R(θ). The retardance sign matches the Mueller-side
// Retarder, so both calculi report the same handedness.
func QuarterWaveJones(fastAxisDeg float64) JonesMatrix {
	base := JonesMatrix{{1, 0}, {0, complex(0, 1)}}
	return rotatedJones(base, radians(fastAxisDeg))
}

// HalfWaveJones returns the Jones matrix of a half-wave plate
// (π retardance) with its fast axis at the given angle in degrees:
// R(−θ)·diag(1, −1)·R(θ).
func HalfWaveJones(fastAxisDeg float64) JonesMatrix {
	base := JonesMatrix{{1, 0}, {0, -1}}
	return rotatedJones(base, radians(fastAxisDeg))
}

// rotatedJones computes R(−θ)·M·R(θ).
func rotatedJones(m JonesMatrix, theta float64) JonesMatrix {
	r := jonesRotation(theta)
	rInv := jonesRotation(-theta)
	return rInv.Mul(m).Mul(r)
}

// Mul returns the matrix product j·other (other acts on the light first
// when composing optical elements left of the input).
func (j JonesMatrix) Mul(other JonesMatrix) JonesMatrix {
	var out JonesMatrix
	for i := 0; i < 2; i++ {
		for k := 0; k < 2; k++ {
			out[i][k] = j[i][0]*other[0][k] + j[i][1]*other[1][k]
		}
	}
	return out
}

// Apply transforms a Jones vector: out = M·in.
func (j JonesMatrix) Apply(v JonesVector) JonesVector {
	return JonesVector{
		Ex: j[0][0]*v.Ex + j[0][1]*v.Ey,
		Ey: j[1][0]*v.Ex + j[1][1]*v.Ey,
	}
}
