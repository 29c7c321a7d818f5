package fresnel_test

import (
	"math"
	"testing"

	"github.com/polarcraft/optics/fresnel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSnell_AirToGlass verifies refraction bends toward the normal
// going into the denser medium.
func TestSnell_AirToGlass(t *testing.T) {
	theta2, err := fresnel.Snell(30, 1.0, 1.5)
	require.NoError(t, err)
	want := math.Asin(math.Sin(30*math.Pi/180)/1.5) * 180 / math.Pi
	assert.InDelta(t, want, theta2, 1e-9)
	assert.Less(t, theta2, 30.0, "denser medium bends toward the normal")

	// Normal incidence passes straight through.
	theta2, err = fresnel.Snell(0, 1.0, 1.5)
	require.NoError(t, err)
	assert.InDelta(t, 0, theta2, 1e-12)
}

// TestSnell_TIR verifies the sentinel beyond the critical angle.
func TestSnell_TIR(t *testing.T) {
	// Glass to air, critical angle ≈ 41.8°.
	_, err := fresnel.Snell(45, 1.5, 1.0)
	assert.ErrorIs(t, err, fresnel.ErrTotalInternalReflection)

	// Just below it still refracts.
	_, err = fresnel.Snell(41, 1.5, 1.0)
	assert.NoError(t, err)
}

// TestSnell_BadIndex verifies index validation.
func TestSnell_BadIndex(t *testing.T) {
	_, err := fresnel.Snell(30, 0, 1.5)
	assert.ErrorIs(t, err, fresnel.ErrBadIndex)
	_, err = fresnel.Snell(30, 1.0, -1)
	assert.ErrorIs(t, err, fresnel.ErrBadIndex)
}

// TestCompute_EnergyConservation verifies R+T=1 for both polarizations
// across the full angle range.
func TestCompute_EnergyConservation(t *testing.T) {
	for deg := 0.0; deg < 90; deg += 5 {
		c, err := fresnel.Compute(deg, 1.0, 1.5)
		require.NoError(t, err)
		assert.InDelta(t, 1, c.ReflS+c.TransS, 1e-9, "s-polarization at %v°", deg)
		assert.InDelta(t, 1, c.ReflP+c.TransP, 1e-9, "p-polarization at %v°", deg)
		assert.False(t, c.TIR)
	}
}

// TestCompute_NormalIncidence checks the closed form
// R = ((n1−n2)/(n1+n2))² at θ=0.
func TestCompute_NormalIncidence(t *testing.T) {
	c, err := fresnel.Compute(0, 1.0, 1.5)
	require.NoError(t, err)

	want := math.Pow((1.0-1.5)/(1.0+1.5), 2) // 0.04 for air/glass
	assert.InDelta(t, want, c.ReflS, 1e-9)
	assert.InDelta(t, want, c.ReflP, 1e-9)
	assert.InDelta(t, 0.04, c.ReflS, 1e-9, "the familiar 4%% of air/glass")
}

// TestCompute_BrewsterZero verifies Rp vanishes at Brewster's angle.
func TestCompute_BrewsterZero(t *testing.T) {
	thetaB, err := fresnel.BrewsterAngle(1.0, 1.5)
	require.NoError(t, err)
	assert.InDelta(t, 56.3099, thetaB, 1e-4)

	c, err := fresnel.Compute(thetaB, 1.0, 1.5)
	require.NoError(t, err)
	assert.InDelta(t, 0, c.ReflP, 1e-9, "p-reflectance vanishes at Brewster")
	assert.Greater(t, c.ReflS, 0.0, "s-reflectance does not")
}

// TestCompute_TIRBoundary verifies the perfectly reflecting solution.
func TestCompute_TIRBoundary(t *testing.T) {
	c, err := fresnel.Compute(60, 1.5, 1.0)
	require.NoError(t, err)
	assert.True(t, c.TIR)
	assert.Equal(t, 1.0, c.ReflS)
	assert.Equal(t, 1.0, c.ReflP)
	assert.Equal(t, 0.0, c.TransS)
	assert.Equal(t, 0.0, c.TransP)
	assert.Equal(t, 90.0, c.Theta2Deg)
}

// TestCriticalAngle verifies the glass/air value and the n1<=n2 error.
func TestCriticalAngle(t *testing.T) {
	thetaC, err := fresnel.CriticalAngle(1.5, 1.0)
	require.NoError(t, err)
	assert.InDelta(t, 41.8103, thetaC, 1e-4)

	_, err = fresnel.CriticalAngle(1.0, 1.5)
	assert.ErrorIs(t, err, fresnel.ErrNoCriticalAngle)

	_, err = fresnel.CriticalAngle(1.5, 1.5)
	assert.ErrorIs(t, err, fresnel.ErrNoCriticalAngle)
}

// TestBrewsterCriticalOrder verifies θ_B < θ_c for dense-to-rare
// boundaries, the classic exam question.
func TestBrewsterCriticalOrder(t *testing.T) {
	thetaB, err := fresnel.BrewsterAngle(1.5, 1.0)
	require.NoError(t, err)
	thetaC, err := fresnel.CriticalAngle(1.5, 1.0)
	require.NoError(t, err)
	assert.Less(t, thetaB, thetaC)
}
