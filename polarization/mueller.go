package polarization

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// MuellerMatrix is a 4×4 real operator transforming Stokes vectors:
// S_out = M·S_in. Unlike Jones matrices it can describe depolarizing
// elements and acts on partially polarized light.
//
// Instances are immutable: every operation returns a new matrix, the
// backing *mat.Dense is never mutated after construction.
type MuellerMatrix struct {
	m *mat.Dense
}

// NewMueller constructs a Mueller matrix from 16 values in row-major
// order. Returns ErrBadDimensions for any other length.
func NewMueller(vals []float64) (MuellerMatrix, error) {
	if len(vals) != 16 {
		return MuellerMatrix{}, fmt.Errorf("got %d values, want 16: %w", len(vals), ErrBadDimensions)
	}
	data := make([]float64, 16)
	copy(data, vals)
	return MuellerMatrix{m: mat.NewDense(4, 4, data)}, nil
}

// fromDense wraps a freshly allocated dense matrix without copying.
// Callers must not retain a reference to d.
func fromDense(d *mat.Dense) MuellerMatrix { return MuellerMatrix{m: d} }

// Identity returns the 4×4 identity (a transparent, non-polarizing
// element).
func Identity() MuellerMatrix {
	d := mat.NewDense(4, 4, nil)
	for i := 0; i < 4; i++ {
		d.Set(i, i, 1)
	}
	return fromDense(d)
}

// ---------- Element factories ----------

// LinearPolarizer returns an ideal linear polarizer with its
// transmission axis at the given angle in degrees. Normalized so that
// unpolarized light loses half its intensity (M₀₀ = ½).
func LinearPolarizer(angleDeg float64) MuellerMatrix {
	t2 := 2 * radians(angleDeg)
	c, s := math.Cos(t2), math.Sin(t2)
	return fromDense(mat.NewDense(4, 4, []float64{
		0.5, 0.5 * c, 0.5 * s, 0,
		0.5 * c, 0.5 * c * c, 0.5 * s * c, 0,
		0.5 * s, 0.5 * s * c, 0.5 * s * s, 0,
		0, 0, 0, 0,
	}))
}

// QuarterWavePlate returns a quarter-wave plate (90° retardance) with
// its fast axis at the given angle in degrees. At 45° to the incident
// linear polarization it produces circular light.
func QuarterWavePlate(fastAxisDeg float64) MuellerMatrix {
	return Retarder(90, fastAxisDeg)
}

// HalfWavePlate returns a half-wave plate (180° retardance) with its
// fast axis at the given angle in degrees. It mirrors linear
// polarization about the fast axis, rotating it by 2·(axis−input).
func HalfWavePlate(fastAxisDeg float64) MuellerMatrix {
	return Retarder(180, fastAxisDeg)
}

// Rotator returns an optical rotator (circular birefringence, e.g. a
// chiral solution) turning the polarization plane by the given angle in
// degrees without attenuation.
func Rotator(angleDeg float64) MuellerMatrix {
	return fromDense(rotationDense(angleDeg))
}

// Retarder returns a general linear retarder with phase retardance δ
// (degrees) and fast axis at θ (degrees). QWP and HWP are the δ=90° and
// δ=180° special cases.
func Retarder(retardanceDeg, fastAxisDeg float64) MuellerMatrix {
	delta := radians(retardanceDeg)
	t2 := 2 * radians(fastAxisDeg)
	cd, sd := math.Cos(delta), math.Sin(delta)
	c, s := math.Cos(t2), math.Sin(t2)
	return fromDense(mat.NewDense(4, 4, []float64{
		1, 0, 0, 0,
		0, c*c + s*s*cd, c * s * (1 - cd), -s * sd,
		0, c * s * (1 - cd), s*s + c*c*cd, c * sd,
		0, s * sd, -c * sd, cd,
	}))
}

// PartialPolarizer returns a diattenuator with diattenuation D and
// transmission axis at the given angle in degrees. D=0 is transparent,
// D=1 is an ideal polarizer (up to normalization).
// Returns ErrOutOfRange for D outside [0,1].
func PartialPolarizer(diattenuation, angleDeg float64) (MuellerMatrix, error) {
	if !(diattenuation >= 0 && diattenuation <= 1) {
		return MuellerMatrix{}, fmt.Errorf("diattenuation %v not in [0,1]: %w", diattenuation, ErrOutOfRange)
	}
	tPerp := 1 - diattenuation // parallel transmission fixed at 1
	t2 := 2 * radians(angleDeg)
	c, s := math.Cos(t2), math.Sin(t2)

	m00 := (1 + tPerp) / 2
	m01 := (1 - tPerp) / 2 * c
	m02 := (1 - tPerp) / 2 * s

	return fromDense(mat.NewDense(4, 4, []float64{
		m00, m01, m02, 0,
		m01, m00*c*c + tPerp*s*s, (m00 - tPerp) * s * c, 0,
		m02, (m00 - tPerp) * s * c, m00*s*s + tPerp*c*c, 0,
		0, 0, 0, math.Sqrt(tPerp),
	})), nil
}

// Depolarizer returns an ideal isotropic depolarizer: the polarized
// components shrink by (1−Δ) while the intensity is preserved.
// Returns ErrOutOfRange for Δ outside [0,1].
func Depolarizer(depolarization float64) (MuellerMatrix, error) {
	if !(depolarization >= 0 && depolarization <= 1) {
		return MuellerMatrix{}, fmt.Errorf("depolarization %v not in [0,1]: %w", depolarization, ErrOutOfRange)
	}
	k := 1 - depolarization
	return fromDense(mat.NewDense(4, 4, []float64{
		1, 0, 0, 0,
		0, k, 0, 0,
		0, 0, k, 0,
		0, 0, 0, k,
	})), nil
}

// rotationDense builds the Stokes-space rotation R(θ), which rotates
// the S₁-S₂ plane by 2θ.
func rotationDense(angleDeg float64) *mat.Dense {
	t2 := 2 * radians(angleDeg)
	c, s := math.Cos(t2), math.Sin(t2)
	return mat.NewDense(4, 4, []float64{
		1, 0, 0, 0,
		0, c, s, 0,
		0, -s, c, 0,
		0, 0, 0, 1,
	})
}

// ---------- Operations ----------

// Rotate re-orients the element by the given angle in degrees, so that
// Retarder(δ, 0).Rotate(θ) equals Retarder(δ, θ) and likewise for the
// other axis-parameterized factories.
func (m MuellerMatrix) Rotate(angleDeg float64) MuellerMatrix {
	r := rotationDense(-angleDeg)
	var tmp, out mat.Dense
	tmp.Mul(m.m, r.T())
	out.Mul(r, &tmp)
	return fromDense(&out)
}

// Apply transforms a Stokes vector through the element. The output is
// re-validated against the realizability invariant with the shared
// tolerance, so an unphysical matrix surfaces as ErrNotRealizable.
func (m MuellerMatrix) Apply(s StokesVector, opts ...Option) (StokesVector, error) {
	in := s.Components()
	var out [4]float64
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[i] += m.m.At(i, j) * in[j]
		}
	}
	return New(out[0], out[1], out[2], out[3], opts...)
}

// Mul returns the cascade m·other. Cascades compose right-to-left:
// in total = last.Mul(middle).Mul(first), light passes first first.
func (m MuellerMatrix) Mul(other MuellerMatrix) MuellerMatrix {
	var out mat.Dense
	out.Mul(m.m, other.m)
	return fromDense(&out)
}

// At returns the element at row i, column j. Panics outside [0,3],
// matching gonum's bounds behavior.
func (m MuellerMatrix) At(i, j int) float64 { return m.m.At(i, j) }

// Raw returns a copy of the 16 elements in row-major order.
func (m MuellerMatrix) Raw() []float64 {
	out := make([]float64, 16)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[4*i+j] = m.m.At(i, j)
		}
	}
	return out
}

// String renders the matrix in aligned rows.
func (m MuellerMatrix) String() string {
	var b strings.Builder
	b.WriteString("MuellerMatrix(\n")
	for i := 0; i < 4; i++ {
		fmt.Fprintf(&b, "  [%8.4f %8.4f %8.4f %8.4f]\n",
			m.m.At(i, 0), m.m.At(i, 1), m.m.At(i, 2), m.m.At(i, 3))
	}
	b.WriteString(")")
	return b.String()
}

// ---------- Diagnostics ----------

// Diattenuation returns D = √(M₀₁²+M₀₂²+M₀₃²)/M₀₀, the intensity
// transmission's dependence on input polarization, clipped to [0,1].
// Zero for M₀₀ = 0.
func (m MuellerMatrix) Diattenuation() float64 {
	m00 := m.m.At(0, 0)
	if m00 == 0 {
		return 0
	}
	d := math.Hypot(math.Hypot(m.m.At(0, 1), m.m.At(0, 2)), m.m.At(0, 3)) / m00
	return math.Min(d, 1)
}

// Polarizance returns P = √(M₁₀²+M₂₀²+M₃₀²)/M₀₀, the degree of
// polarization produced from unpolarized input, clipped to [0,1].
// Zero for M₀₀ = 0.
func (m MuellerMatrix) Polarizance() float64 {
	m00 := m.m.At(0, 0)
	if m00 == 0 {
		return 0
	}
	p := math.Hypot(math.Hypot(m.m.At(1, 0), m.m.At(2, 0)), m.m.At(3, 0)) / m00
	return math.Min(p, 1)
}

// DepolarizationIndex returns Δ = 1 − √(tr(MᵀM) − M₀₀²)/(√3·M₀₀),
// clipped to [0,1]. A vanishing M₀₀ reports complete depolarization.
// tr(MᵀM) is the squared Frobenius norm.
func (m MuellerMatrix) DepolarizationIndex() float64 {
	m00 := m.m.At(0, 0)
	if m00 == 0 {
		return 1
	}
	frob := mat.Norm(m.m, 2)
	delta := 1 - math.Sqrt(math.Max(frob*frob-m00*m00, 0))/(math.Sqrt(3)*m00)
	return clip(delta, 0, 1)
}

// Determinant returns det(M).
func (m MuellerMatrix) Determinant() float64 { return mat.Det(m.m) }

// Trace returns tr(M).
func (m MuellerMatrix) Trace() float64 { return mat.Trace(m.m) }
