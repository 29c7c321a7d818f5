package polarization_test

import (
	"testing"

	"github.com/polarcraft/optics/polarization"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestElement_Mueller_Dispatch verifies that every kind materializes
// the same matrix as its direct factory.
func TestElement_Mueller_Dispatch(t *testing.T) {
	cases := []struct {
		name string
		e    polarization.Element
		want polarization.MuellerMatrix
	}{
		{"identity", polarization.Element{Kind: polarization.KindIdentity}, polarization.Identity()},
		{"polarizer", polarization.Element{Kind: polarization.KindLinearPolarizer, AngleDeg: 30}, polarization.LinearPolarizer(30)},
		{"qwp", polarization.Element{Kind: polarization.KindQuarterWave, AngleDeg: 45}, polarization.QuarterWavePlate(45)},
		{"hwp", polarization.Element{Kind: polarization.KindHalfWave, AngleDeg: 22.5}, polarization.HalfWavePlate(22.5)},
		{"rotator", polarization.Element{Kind: polarization.KindRotator, AngleDeg: 10}, polarization.Rotator(10)},
		{"retarder", polarization.Element{Kind: polarization.KindRetarder, RetardanceDeg: 60, AngleDeg: 15}, polarization.Retarder(60, 15)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.e.Mueller()
			require.NoError(t, err)
			for i := 0; i < 4; i++ {
				for j := 0; j < 4; j++ {
					assert.InDelta(t, tc.want.At(i, j), got.At(i, j), 1e-12, "element (%d,%d)", i, j)
				}
			}
		})
	}
}

// TestElement_Mueller_Errors verifies parameter-domain and unknown-kind
// failures.
func TestElement_Mueller_Errors(t *testing.T) {
	_, err := polarization.Element{Kind: polarization.ElementKind(99)}.Mueller()
	assert.ErrorIs(t, err, polarization.ErrUnknownElement)

	_, err = polarization.Element{
		Kind:          polarization.KindPartialPolarizer,
		Diattenuation: 2,
	}.Mueller()
	assert.ErrorIs(t, err, polarization.ErrOutOfRange)

	_, err = polarization.Element{
		Kind:           polarization.KindDepolarizer,
		Depolarization: -0.5,
	}.Mueller()
	assert.ErrorIs(t, err, polarization.ErrOutOfRange)
}

// TestTrain_Compose_OrderMatters verifies that the train applies its
// elements front to back.
func TestTrain_Compose_OrderMatters(t *testing.T) {
	hThenV := polarization.Train{
		{Kind: polarization.KindLinearPolarizer, AngleDeg: 0},
		{Kind: polarization.KindLinearPolarizer, AngleDeg: 45},
		{Kind: polarization.KindLinearPolarizer, AngleDeg: 90},
	}

	out, err := hThenV.Propagate(polarization.Unpolarized(1))
	require.NoError(t, err)
	assert.InDelta(t, 0.125, out.S0(), 1e-9, "H→45→V leaks I₀/8")

	// Without the middle polarizer nothing survives.
	crossed := polarization.Train{
		{Kind: polarization.KindLinearPolarizer, AngleDeg: 0},
		{Kind: polarization.KindLinearPolarizer, AngleDeg: 90},
	}
	out, err = crossed.Propagate(polarization.Unpolarized(1))
	require.NoError(t, err)
	assert.InDelta(t, 0, out.S0(), 1e-9)
}

// TestTrain_EmptyIsIdentity verifies the empty-train contract.
func TestTrain_EmptyIsIdentity(t *testing.T) {
	in, err := polarization.New(1, 0.3, 0.2, 0.1)
	require.NoError(t, err)

	out, err := polarization.Train{}.Propagate(in)
	require.NoError(t, err)
	assertStokes(t, in.Components(), out, "empty train")
}

// TestTrain_ErrorNamesElement verifies the failing element's index is
// reported while the sentinel remains matchable.
func TestTrain_ErrorNamesElement(t *testing.T) {
	train := polarization.Train{
		{Kind: polarization.KindLinearPolarizer, AngleDeg: 0},
		{Kind: polarization.KindDepolarizer, Depolarization: 3},
	}

	_, err := train.Compose()
	require.Error(t, err)
	assert.ErrorIs(t, err, polarization.ErrOutOfRange)
	assert.Contains(t, err.Error(), "element 1", "error should name the offending element")
}

// TestElementKind_String covers the labels used in error messages and
// exports.
func TestElementKind_String(t *testing.T) {
	assert.Equal(t, "linear-polarizer", polarization.KindLinearPolarizer.String())
	assert.Equal(t, "quarter-wave-plate", polarization.KindQuarterWave.String())
	assert.Equal(t, "depolarizer", polarization.KindDepolarizer.String())
	assert.Equal(t, "ElementKind(99)", polarization.ElementKind(99).String())
}
