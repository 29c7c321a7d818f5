package polarization_test

import (
	"testing"

	"github.com/polarcraft/optics/polarization"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLinearJones_Intensity verifies that linear states are unit
// intensity and Normalize is idempotent.
func TestLinearJones_Intensity(t *testing.T) {
	for _, deg := range []float64{0, 30, 45, 90, 135} {
		j := polarization.LinearJones(deg)
		assert.InDelta(t, 1, j.Intensity(), eps, "angle %v", deg)

		n := j.Normalize()
		assert.InDelta(t, 1, n.Intensity(), eps)
	}

	// Zero vector stays zero.
	var zero polarization.JonesVector
	assert.Equal(t, zero, zero.Normalize())
}

// TestClassify_Linear verifies linear classification and the reported
// orientation angle in [0,180).
func TestClassify_Linear(t *testing.T) {
	for _, deg := range []float64{0, 30, 45, 90, 120} {
		kind, angle := polarization.LinearJones(deg).Classify()
		assert.Equal(t, polarization.StateLinear, kind, "angle %v", deg)
		assert.InDelta(t, deg, angle, 1e-6, "angle %v", deg)
	}

	// 170° linear wraps into [0,180).
	kind, angle := polarization.LinearJones(170).Classify()
	assert.Equal(t, polarization.StateLinear, kind)
	assert.InDelta(t, 170, angle, 1e-6)
}

// TestClassify_Circular verifies circular detection via a quarter-wave
// plate at 45° to the input.
func TestClassify_Circular(t *testing.T) {
	qwp := polarization.QuarterWaveJones(0)
	out := qwp.Apply(polarization.LinearJones(45))

	kind, _ := out.Classify()
	assert.Equal(t, polarization.StateCircularRight, kind)

	// Opposite diagonal gives the opposite handedness.
	out = qwp.Apply(polarization.LinearJones(-45))
	kind, _ = out.Classify()
	assert.Equal(t, polarization.StateCircularLeft, kind)
}

// TestClassify_Elliptical verifies a mid-way fast axis yields an
// elliptical state.
func TestClassify_Elliptical(t *testing.T) {
	out := polarization.QuarterWaveJones(0).Apply(polarization.LinearJones(30))
	kind, _ := out.Classify()
	assert.Equal(t, polarization.StateElliptical, kind)
}

// TestHalfWaveJones_RotatesByTwiceTheAxis verifies the mirror property
// of a half-wave plate.
func TestHalfWaveJones_RotatesByTwiceTheAxis(t *testing.T) {
	hwp := polarization.HalfWaveJones(22.5)
	out := hwp.Apply(polarization.LinearJones(0))

	kind, angle := out.Classify()
	assert.Equal(t, polarization.StateLinear, kind)
	assert.InDelta(t, 45, angle, 1e-6, "HWP at 22.5° sends 0° to 45°")

	// Intensity is preserved: waveplates are lossless.
	assert.InDelta(t, 1, out.Intensity(), eps)
}

// TestJonesMuellerAgreement sends the same physical situation through
// both calculi and requires identical Stokes output.
func TestJonesMuellerAgreement(t *testing.T) {
	in := polarization.LinearJones(45)
	jOut := polarization.QuarterWaveJones(0).Apply(in)
	viaJones := polarization.FromJones(jOut)

	viaMueller, err := polarization.QuarterWavePlate(0).Apply(polarization.FromJones(in))
	require.NoError(t, err)

	for i := range viaJones.Components() {
		assert.InDelta(t, viaMueller.Components()[i], viaJones.Components()[i], 1e-9,
			"component %d must agree between Jones and Mueller paths", i)
	}
}

// TestJonesMatrix_Mul verifies composition order: two quarter-wave
// plates make a half-wave plate.
func TestJonesMatrix_Mul(t *testing.T) {
	qwp := polarization.QuarterWaveJones(0)
	hwp := polarization.HalfWaveJones(0)

	twice := qwp.Mul(qwp)
	in := polarization.LinearJones(30)

	a := twice.Apply(in)
	b := hwp.Apply(in)

	// States must coincide up to global phase; compare via Stokes.
	sa := polarization.FromJones(a)
	sb := polarization.FromJones(b)
	for i := range sa.Components() {
		assert.InDelta(t, sb.Components()[i], sa.Components()[i], eps, "component %d", i)
	}
}

// TestClassify_ZeroVector verifies the degenerate-input contract.
func TestClassify_ZeroVector(t *testing.T) {
	var zero polarization.JonesVector
	kind, angle := zero.Classify()
	assert.Equal(t, polarization.StateLinear, kind)
	assert.Equal(t, 0.0, angle)
}

// TestClassify_TolOverride verifies that a generous tolerance absorbs a
// slightly imperfect circular state.
func TestClassify_TolOverride(t *testing.T) {
	// 42° instead of 45°: almost circular through a QWP. The amplitude
	// ratio is tan(42°) ≈ 0.90, outside the default 0.05 band.
	out := polarization.QuarterWaveJones(0).Apply(polarization.LinearJones(42))

	kind, _ := out.Classify()
	assert.Equal(t, polarization.StateElliptical, kind, "strict tolerance sees the ellipse")

	kind, _ = out.Classify(polarization.WithClassifyTol(0.15))
	assert.Equal(t, polarization.StateCircularRight, kind, "loose tolerance rounds to circular")
}

// TestIntensityConservation verifies waveplates are lossless at any
// fast-axis orientation.
func TestIntensityConservation(t *testing.T) {
	in := polarization.LinearJones(10)
	for _, axis := range []float64{0, 15, 45, 60, 90} {
		out := polarization.QuarterWaveJones(axis).Apply(in)
		assert.InDelta(t, 1, out.Intensity(), eps, "axis %v", axis)
	}
}
