package polarization_test

import (
	"math"
	"testing"

	"github.com/polarcraft/optics/polarization"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertStokes compares all four components within tolerance.
func assertStokes(t *testing.T, want [4]float64, got polarization.StokesVector, msg string) {
	t.Helper()
	for i, w := range want {
		assert.InDelta(t, w, got.Components()[i], 1e-9, "%s: component %d", msg, i)
	}
}

// TestNewMueller_Dimensions verifies the 16-value contract.
func TestNewMueller_Dimensions(t *testing.T) {
	_, err := polarization.NewMueller(make([]float64, 15))
	assert.ErrorIs(t, err, polarization.ErrBadDimensions)

	_, err = polarization.NewMueller(nil)
	assert.ErrorIs(t, err, polarization.ErrBadDimensions)

	m, err := polarization.NewMueller([]float64{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	})
	require.NoError(t, err)
	assert.Equal(t, 1.0, m.At(3, 3))
}

// TestIdentity_IsTransparent verifies that identity leaves any state
// untouched.
func TestIdentity_IsTransparent(t *testing.T) {
	in, err := polarization.New(1, 0.3, 0.2, 0.1)
	require.NoError(t, err)

	out, err := polarization.Identity().Apply(in)
	require.NoError(t, err)
	assertStokes(t, in.Components(), out, "identity")
}

// TestLinearPolarizer_PassAndBlock verifies the ideal-polarizer
// extremes: full transmission along the axis, extinction across it, and
// half transmission of unpolarized light.
func TestLinearPolarizer_PassAndBlock(t *testing.T) {
	lp := polarization.LinearPolarizer(0)

	pass, err := lp.Apply(polarization.Horizontal())
	require.NoError(t, err)
	assert.InDelta(t, 1, pass.S0(), 1e-9, "aligned light passes fully")
	assert.InDelta(t, 1, pass.DOP(), 1e-9)

	block, err := lp.Apply(polarization.Vertical())
	require.NoError(t, err)
	assert.InDelta(t, 0, block.S0(), 1e-9, "crossed light is extinguished")

	half, err := lp.Apply(polarization.Unpolarized(1))
	require.NoError(t, err)
	assert.InDelta(t, 0.5, half.S0(), 1e-9, "unpolarized light loses half its intensity")
	assert.InDelta(t, 1, half.DOP(), 1e-9, "and leaves fully polarized")
}

// TestLinearPolarizer_MalusLaw verifies I = I₀·cos²θ through two
// polarizers at a relative angle.
func TestLinearPolarizer_MalusLaw(t *testing.T) {
	first := polarization.LinearPolarizer(0)
	prepared, err := first.Apply(polarization.Horizontal())
	require.NoError(t, err)

	for _, deg := range []float64{0, 15, 30, 45, 60, 75, 90} {
		out, err := polarization.LinearPolarizer(deg).Apply(prepared)
		require.NoError(t, err)

		want := math.Pow(math.Cos(deg*math.Pi/180), 2)
		assert.InDelta(t, want, out.S0(), 1e-9, "Malus at %v°", deg)
	}
}

// TestQuarterWavePlate_Circularizer verifies that a QWP with its fast
// axis 45° from the incident linear polarization produces circular
// light.
func TestQuarterWavePlate_Circularizer(t *testing.T) {
	out, err := polarization.QuarterWavePlate(0).Apply(polarization.PlusFortyFive())
	require.NoError(t, err)

	assert.InDelta(t, 1, out.DOP(), 1e-9)
	assert.InDelta(t, 1, out.DOCP(), 1e-9, "output is circular")
	assert.InDelta(t, 0, out.S1(), 1e-9)
	assert.InDelta(t, 0, out.S2(), 1e-9)
}

// TestHalfWavePlate_MirrorsLinear verifies the 2θ rotation property.
func TestHalfWavePlate_MirrorsLinear(t *testing.T) {
	out, err := polarization.HalfWavePlate(45).Apply(polarization.Horizontal())
	require.NoError(t, err)
	assertStokes(t, polarization.Vertical().Components(), out, "HWP at 45° maps H to V")

	out, err = polarization.HalfWavePlate(22.5).Apply(polarization.Horizontal())
	require.NoError(t, err)
	e := out.Ellipse()
	assert.InDelta(t, 45, e.PsiDeg, 1e-6, "HWP at 22.5° maps 0° to 45°")
}

// TestRotator_Inverse verifies that opposite rotations cancel and that
// rotation is lossless.
func TestRotator_Inverse(t *testing.T) {
	in := polarization.LinearDeg(10)

	turned, err := polarization.Rotator(30).Apply(in)
	require.NoError(t, err)
	assert.InDelta(t, 1, turned.S0(), 1e-9, "rotators do not attenuate")
	assert.InDelta(t, 1, turned.DOP(), 1e-9)

	back, err := polarization.Rotator(-30).Apply(turned)
	require.NoError(t, err)
	assertStokes(t, in.Components(), back, "R(-30)·R(30) is identity")
}

// TestRetarder_SpecialCases verifies QWP/HWP are the δ=90°/180°
// retarders and δ=0 is the identity.
func TestRetarder_SpecialCases(t *testing.T) {
	in, err := polarization.New(1, 0.2, 0.5, 0.1)
	require.NoError(t, err)

	viaQWP, err := polarization.QuarterWavePlate(17).Apply(in)
	require.NoError(t, err)
	viaRet, err := polarization.Retarder(90, 17).Apply(in)
	require.NoError(t, err)
	assertStokes(t, viaQWP.Components(), viaRet, "Retarder(90,θ) == QWP(θ)")

	id, err := polarization.Retarder(0, 33).Apply(in)
	require.NoError(t, err)
	assertStokes(t, in.Components(), id, "zero retardance is transparent")
}

// TestRotate_MatchesFactories verifies M(θ) = M(0).Rotate(θ) for the
// axis-parameterized elements.
func TestRotate_MatchesFactories(t *testing.T) {
	for _, deg := range []float64{0, 20, 45, 90, 135} {
		want := polarization.LinearPolarizer(deg)
		got := polarization.LinearPolarizer(0).Rotate(deg)
		for i := 0; i < 4; i++ {
			for j := 0; j < 4; j++ {
				assert.InDelta(t, want.At(i, j), got.At(i, j), 1e-9,
					"polarizer %v°: element (%d,%d)", deg, i, j)
			}
		}
	}

	want := polarization.Retarder(90, 30)
	got := polarization.Retarder(90, 0).Rotate(30)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			assert.InDelta(t, want.At(i, j), got.At(i, j), 1e-9, "retarder: element (%d,%d)", i, j)
		}
	}
}

// TestMul_CascadeOrder verifies the right-to-left convention and that
// polarizer order matters.
func TestMul_CascadeOrder(t *testing.T) {
	h := polarization.LinearPolarizer(0)
	v := polarization.LinearPolarizer(90)
	d := polarization.LinearPolarizer(45)

	// Crossed polarizers extinguish everything.
	crossed := v.Mul(h)
	out, err := crossed.Apply(polarization.Unpolarized(1))
	require.NoError(t, err)
	assert.InDelta(t, 0, out.S0(), 1e-9, "crossed polarizers block all light")

	// Inserting a 45° polarizer between them leaks 1/8 of the input:
	// the classic three-polarizer paradox.
	three := v.Mul(d).Mul(h)
	out, err = three.Apply(polarization.Unpolarized(1))
	require.NoError(t, err)
	assert.InDelta(t, 0.125, out.S0(), 1e-9, "H→45→V leaks I₀/8")

	// And the cascade is order-sensitive.
	reversed := h.Mul(d).Mul(v)
	a, err := three.Apply(polarization.Horizontal())
	require.NoError(t, err)
	b, err := reversed.Apply(polarization.Horizontal())
	require.NoError(t, err)
	assert.Greater(t, math.Abs(a.S0()-b.S0()), 1e-6, "cascade must not commute")
}

// TestPartialPolarizer_RangeAndLimits verifies the domain contract and
// the D→1 ideal-polarizer limit.
func TestPartialPolarizer_RangeAndLimits(t *testing.T) {
	_, err := polarization.PartialPolarizer(-0.1, 0)
	assert.ErrorIs(t, err, polarization.ErrOutOfRange)
	_, err = polarization.PartialPolarizer(1.1, 0)
	assert.ErrorIs(t, err, polarization.ErrOutOfRange)

	// D=0 is transparent.
	clear, err := polarization.PartialPolarizer(0, 30)
	require.NoError(t, err)
	in, err := polarization.New(1, 0.3, 0.2, 0.1)
	require.NoError(t, err)
	out, err := clear.Apply(in)
	require.NoError(t, err)
	assertStokes(t, in.Components(), out, "D=0 passes everything")

	// D=1 blocks the orthogonal component entirely.
	ideal, err := polarization.PartialPolarizer(1, 0)
	require.NoError(t, err)
	blocked, err := ideal.Apply(polarization.Vertical())
	require.NoError(t, err)
	assert.InDelta(t, 0, blocked.S0(), 1e-9, "D=1 extinguishes crossed light")
}

// TestDepolarizer_IndexAndDOP verifies property Δ: the depolarization
// index equals the parameter and the output DOP scales by (1−Δ).
func TestDepolarizer_IndexAndDOP(t *testing.T) {
	_, err := polarization.Depolarizer(1.5)
	assert.ErrorIs(t, err, polarization.ErrOutOfRange)

	in, err := polarization.New(1, 0.6, 0, 0.8)
	require.NoError(t, err)

	for _, delta := range []float64{0, 0.25, 0.5, 0.75, 1} {
		dep, err := polarization.Depolarizer(delta)
		require.NoError(t, err)

		assert.InDelta(t, delta, dep.DepolarizationIndex(), 1e-9, "Δ=%v", delta)

		out, err := dep.Apply(in)
		require.NoError(t, err)
		assert.InDelta(t, (1-delta)*in.DOP(), out.DOP(), 1e-9, "Δ=%v scales DOP", delta)
		assert.InDelta(t, in.S0(), out.S0(), 1e-9, "depolarizers preserve intensity")
	}
}

// TestDiagnostics_IdealPolarizer verifies D=P=1 for an ideal polarizer
// and D=P=0, Δ=0 for the identity.
func TestDiagnostics_IdealPolarizer(t *testing.T) {
	lp := polarization.LinearPolarizer(30)
	assert.InDelta(t, 1, lp.Diattenuation(), 1e-9)
	assert.InDelta(t, 1, lp.Polarizance(), 1e-9)

	id := polarization.Identity()
	assert.InDelta(t, 0, id.Diattenuation(), 1e-9)
	assert.InDelta(t, 0, id.Polarizance(), 1e-9)
	assert.InDelta(t, 0, id.DepolarizationIndex(), 1e-9, "identity does not depolarize")
	assert.InDelta(t, 1, id.Determinant(), 1e-9)
	assert.InDelta(t, 4, id.Trace(), 1e-9)
}

// TestApply_UnphysicalMatrix verifies that a gain matrix surfaces as a
// realizability error on application.
func TestApply_UnphysicalMatrix(t *testing.T) {
	bad, err := polarization.NewMueller([]float64{
		1, 0, 0, 0,
		0, 2, 0, 0, // amplifies S1 beyond S0
		0, 0, 1, 0,
		0, 0, 0, 1,
	})
	require.NoError(t, err, "construction is unchecked")

	_, err = bad.Apply(polarization.Horizontal())
	assert.ErrorIs(t, err, polarization.ErrNotRealizable, "application is checked")
}
