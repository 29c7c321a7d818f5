package polarization

import (
	"fmt"
	"math"
	"math/cmplx"
)

// StokesVector describes a (possibly partially) polarized light state by
// four real parameters:
//
//	S₀ — total intensity
//	S₁ — horizontal/vertical preference
//	S₂ — ±45° preference
//	S₃ — right/left circular preference
//
// Values are immutable once constructed; every operation returns a new
// instance, so instances may be shared freely across goroutines.
//
// Invariant (enforced by New and by every re-validating operation):
//
//	S₀ ≥ 0 and S₁²+S₂²+S₃² ≤ S₀²·(1+tol)
type StokesVector struct {
	s0, s1, s2, s3 float64
}

// New constructs a validated Stokes vector.
// Returns ErrNotRealizable when the components violate the physical
// realizability invariant beyond the configured relative tolerance
// (DefaultRealizabilityTol unless overridden).
func New(s0, s1, s2, s3 float64, opts ...Option) (StokesVector, error) {
	o := gatherOptions(opts...)
	v := StokesVector{s0, s1, s2, s3}
	if err := v.validate(o); err != nil {
		return StokesVector{}, err
	}
	return v, nil
}

// validate checks the realizability invariant against the given policy.
func (v StokesVector) validate(o Options) error {
	if v.s0 < 0 {
		return fmt.Errorf("S0=%v is negative: %w", v.s0, ErrNotRealizable)
	}
	polarized := v.s1*v.s1 + v.s2*v.s2 + v.s3*v.s3
	total := v.s0 * v.s0
	if polarized > total*(1+o.realizabilityTol) {
		return fmt.Errorf("S1²+S2²+S3²=%v exceeds S0²=%v: %w", polarized, total, ErrNotRealizable)
	}
	return nil
}

// ---------- Preset states ----------

// Horizontal returns unit-intensity horizontal linear polarization [1,1,0,0].
func Horizontal() StokesVector { return StokesVector{1, 1, 0, 0} }

// Vertical returns unit-intensity vertical linear polarization [1,-1,0,0].
func Vertical() StokesVector { return StokesVector{1, -1, 0, 0} }

// PlusFortyFive returns unit-intensity +45° linear polarization [1,0,1,0].
func PlusFortyFive() StokesVector { return StokesVector{1, 0, 1, 0} }

// RightCircular returns unit-intensity right-circular polarization [1,0,0,-1]
// under the handedness convention documented on Handedness.
func RightCircular() StokesVector { return StokesVector{1, 0, 0, -1} }

// LeftCircular returns unit-intensity left-circular polarization [1,0,0,1].
func LeftCircular() StokesVector { return StokesVector{1, 0, 0, 1} }

// Unpolarized returns a fully unpolarized state of the given intensity.
// Negative intensity is clamped to zero.
func Unpolarized(intensity float64) StokesVector {
	return StokesVector{math.Max(intensity, 0), 0, 0, 0}
}

// LinearDeg returns unit-intensity linear polarization oriented at the
// given angle ψ in degrees: [1, cos2ψ, sin2ψ, 0].
func LinearDeg(psiDeg float64) StokesVector {
	psi2 := 2 * radians(psiDeg)
	return StokesVector{1, math.Cos(psi2), math.Sin(psi2), 0}
}

// ---------- Constructors from measurements ----------

// FromJones converts a Jones vector (fully polarized light) to Stokes
// parameters:
//
//	S₀ = |Ex|²+|Ey|²   S₁ = |Ex|²−|Ey|²
//	S₂ = 2·Re(Ex·Ey*)  S₃ = 2·Im(Ex·Ey*)
//
// The result always satisfies DOP = 1 up to floating error, so no
// validation can fail and no error is returned.
func FromJones(j JonesVector) StokesVector {
	ix := real(j.Ex)*real(j.Ex) + imag(j.Ex)*imag(j.Ex)
	iy := real(j.Ey)*real(j.Ey) + imag(j.Ey)*imag(j.Ey)
	cross := j.Ex * cmplx.Conj(j.Ey)
	return StokesVector{
		s0: ix + iy,
		s1: ix - iy,
		s2: 2 * real(cross),
		s3: 2 * imag(cross),
	}
}

// FromIntensities builds a Stokes vector from the six analyzer
// measurements of the classical measurement scheme:
//
//	S₀ = mean of (I_H+I_V), (I₊₄₅+I₋₄₅), (I_R+I_L)
//	S₁ = I_H − I_V   S₂ = I₊₄₅ − I₋₄₅   S₃ = I_R − I_L
//
// The three basis sums are redundant estimates of S₀ and are averaged
// without a consistency check; agreement is the caller's responsibility.
// Inconsistent or noisy measurements may still fail realizability.
func FromIntensities(m Intensities, opts ...Option) (StokesVector, error) {
	s0 := (m.H + m.V + m.P45 + m.M45 + m.R + m.L) / 3
	return New(s0, m.H-m.V, m.P45-m.M45, m.R-m.L, opts...)
}

// ---------- Accessors ----------

// S0 returns the total intensity.
func (v StokesVector) S0() float64 { return v.s0 }

// S1 returns the horizontal/vertical preference component.
func (v StokesVector) S1() float64 { return v.s1 }

// S2 returns the ±45° preference component.
func (v StokesVector) S2() float64 { return v.s2 }

// S3 returns the right/left circular preference component.
func (v StokesVector) S3() float64 { return v.s3 }

// Components returns the four Stokes parameters in order.
func (v StokesVector) Components() [4]float64 {
	return [4]float64{v.s0, v.s1, v.s2, v.s3}
}

// String renders the vector with its degree of polarization.
func (v StokesVector) String() string {
	return fmt.Sprintf("StokesVector(S0=%.3f, S1=%.3f, S2=%.3f, S3=%.3f, DOP=%.3f)",
		v.s0, v.s1, v.s2, v.s3, v.DOP())
}

// ---------- Derived quantities ----------

// DOP returns the degree of polarization √(S₁²+S₂²+S₃²)/S₀ in [0,1].
// Zero-intensity states are reported as unpolarized (0), not undefined.
func (v StokesVector) DOP() float64 {
	if v.s0 == 0 {
		return 0
	}
	return math.Sqrt(v.s1*v.s1+v.s2*v.s2+v.s3*v.s3) / v.s0
}

// DOLP returns the degree of linear polarization √(S₁²+S₂²)/S₀.
func (v StokesVector) DOLP() float64 {
	if v.s0 == 0 {
		return 0
	}
	return math.Sqrt(v.s1*v.s1+v.s2*v.s2) / v.s0
}

// DOCP returns the degree of circular polarization |S₃|/S₀.
func (v StokesVector) DOCP() float64 {
	if v.s0 == 0 {
		return 0
	}
	return math.Abs(v.s3) / v.s0
}

// Poincare returns the normalized Poincaré-sphere coordinates
// (S₁,S₂,S₃)/S₀. The distance from the origin equals the DOP.
// Zero-intensity states map to the origin.
func (v StokesVector) Poincare() (s1, s2, s3 float64) {
	if v.s0 == 0 {
		return 0, 0, 0
	}
	return v.s1 / v.s0, v.s2 / v.s0, v.s3 / v.s0
}

// Ellipse extracts the polarization-ellipse parameters.
// For zero-intensity states every field is zero and the handedness is
// HandednessUndefined. States with |χ| below the linear threshold are
// classified HandednessLinear; otherwise the sign of χ decides, per the
// convention documented on Handedness.
func (v StokesVector) Ellipse(opts ...Option) Ellipse {
	o := gatherOptions(opts...)
	if v.s0 == 0 {
		return Ellipse{Handedness: HandednessUndefined}
	}

	n1, n2, n3 := v.Poincare()

	var psi float64
	if math.Abs(n1) >= o.zeroTol || math.Abs(n2) >= o.zeroTol {
		psi = 0.5 * math.Atan2(n2, n1)
	}

	chi := 0.5 * math.Asin(clip(n3, -1, 1))
	chiDeg := degrees(chi)

	dop := math.Sqrt(n1*n1 + n2*n2 + n3*n3)
	e := Ellipse{
		A:      math.Sqrt(v.s0 * (1 + dop)),
		B:      math.Sqrt(v.s0 * math.Max(1-dop, 0)),
		PsiDeg: degrees(psi),
		ChiDeg: chiDeg,
	}
	switch {
	case math.Abs(chiDeg) < o.linearChiDeg:
		e.Handedness = HandednessLinear
	case chiDeg > 0:
		e.Handedness = HandednessLeft
	default:
		e.Handedness = HandednessRight
	}
	return e
}

// Intensities returns the six analyzer measurements this state would
// produce, the exact inverse of FromIntensities for consistent data:
//
//	I_H = (S₀+S₁)/2   I_V   = (S₀−S₁)/2
//	I₊₄₅ = (S₀+S₂)/2  I₋₄₅  = (S₀−S₂)/2
//	I_R = (S₀+S₃)/2   I_L   = (S₀−S₃)/2
func (v StokesVector) Intensities() Intensities {
	return Intensities{
		H:   (v.s0 + v.s1) / 2,
		V:   (v.s0 - v.s1) / 2,
		P45: (v.s0 + v.s2) / 2,
		M45: (v.s0 - v.s2) / 2,
		R:   (v.s0 + v.s3) / 2,
		L:   (v.s0 - v.s3) / 2,
	}
}

// ---------- Conversions & decomposition ----------

// ToJones converts a fully polarized state to a Jones vector.
// Returns ErrNotFullyPolarized when DOP is below the configured minimum
// (DefaultJonesMinDOP unless overridden).
//
// Phase convention: Ex is real non-negative and the relative phase of
// Ey is atan2(−S₃,S₂), the exact inverse of the FromJones map
// (S₃ = 2·Im(Ex·Ey*) = −2·|Ex||Ey|·sin δ). Absolute phase is lost:
// Stokes parameters are phase-invariant.
func (v StokesVector) ToJones(opts ...Option) (JonesVector, error) {
	o := gatherOptions(opts...)
	if dop := v.DOP(); dop < o.jonesMinDOP {
		return JonesVector{}, fmt.Errorf("DOP=%.3f below %.2f: %w", dop, o.jonesMinDOP, ErrNotFullyPolarized)
	}

	exAmp := math.Sqrt(math.Max(v.s0+v.s1, 0) / 2)
	eyAmp := math.Sqrt(math.Max(v.s0-v.s1, 0) / 2)

	var phase float64
	if exAmp >= o.zeroTol {
		phase = math.Atan2(-v.s3, v.s2)
	}

	return JonesVector{
		Ex: complex(exAmp, 0),
		Ey: complex(eyAmp*math.Cos(phase), eyAmp*math.Sin(phase)),
	}, nil
}

// Decompose splits the state into a fully polarized and a fully
// unpolarized part:
//
//	S_pol   = DOP·S₀·[1, s₁, s₂, s₃]
//	S_unpol = (1−DOP)·S₀·[1, 0, 0, 0]
//
// The two parts always sum component-wise back to the original vector.
func (v StokesVector) Decompose() (polarized, unpolarized StokesVector) {
	if v.s0 == 0 {
		return StokesVector{}, StokesVector{}
	}
	dop := v.DOP()
	n1, n2, n3 := v.Poincare()
	polarized = StokesVector{
		s0: dop * v.s0,
		s1: dop * v.s0 * n1,
		s2: dop * v.s0 * n2,
		s3: dop * v.s0 * n3,
	}
	unpolarized = StokesVector{s0: (1 - dop) * v.s0}
	return polarized, unpolarized
}

// Add returns the incoherent superposition of two independent sources
// (component-wise sum). The sum of two realizable states is realizable,
// but the result is re-validated with the shared tolerance to guard
// against accumulated floating error.
func (v StokesVector) Add(other StokesVector, opts ...Option) (StokesVector, error) {
	return New(v.s0+other.s0, v.s1+other.s1, v.s2+other.s2, v.s3+other.s3, opts...)
}

// Scale returns the state attenuated or amplified by factor k.
// Negative k produces S₀ < 0 and therefore fails with ErrNotRealizable.
func (v StokesVector) Scale(k float64, opts ...Option) (StokesVector, error) {
	return New(k*v.s0, k*v.s1, k*v.s2, k*v.s3, opts...)
}

// ---------- Small numeric helpers ----------

// radians converts degrees to radians.
func radians(deg float64) float64 { return deg * math.Pi / 180 }

// degrees converts radians to degrees.
func degrees(rad float64) float64 { return rad * 180 / math.Pi }

// clip bounds x to [lo, hi].
func clip(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
