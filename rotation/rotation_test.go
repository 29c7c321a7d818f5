package rotation_test

import (
	"testing"

	"github.com/polarcraft/optics/rotation"
	"github.com/stretchr/testify/assert"
)

// TestAngle_BiotLaw verifies α = [α]·L·c for the catalogue sugars.
func TestAngle_BiotLaw(t *testing.T) {
	// 2 dm tube, 0.1 g/mL sucrose.
	assert.InDelta(t, 13.3, rotation.Sucrose.Rotation(2, 0.1), 1e-9)

	// Fructose is levorotatory.
	assert.InDelta(t, -18.48, rotation.Fructose.Rotation(2, 0.1), 1e-9)

	// Zero concentration rotates nothing.
	assert.Equal(t, 0.0, rotation.Glucose.Rotation(2, 0))

	// Free function agrees with the method.
	assert.Equal(t, rotation.Angle(52.7, 2, 0.1), rotation.Glucose.Rotation(2, 0.1))
}

// TestAngle_Linearity verifies rotation is linear in both path length
// and concentration.
func TestAngle_Linearity(t *testing.T) {
	base := rotation.Sucrose.Rotation(1, 0.1)
	assert.InDelta(t, 2*base, rotation.Sucrose.Rotation(2, 0.1), 1e-9)
	assert.InDelta(t, 3*base, rotation.Sucrose.Rotation(1, 0.3), 1e-9)
}

// TestOutputAngle_Folding verifies the [0,180) fold including negative
// rotations.
func TestOutputAngle_Folding(t *testing.T) {
	assert.InDelta(t, 30, rotation.OutputAngle(10, 20), 1e-12)
	assert.InDelta(t, 10, rotation.OutputAngle(170, 20), 1e-12, "wraps past 180")
	assert.InDelta(t, 170, rotation.OutputAngle(10, -20), 1e-12, "negative rotation folds up")
	assert.InDelta(t, 0, rotation.OutputAngle(90, 90), 1e-12)
}

// TestSubstances_Catalogue pins the specific rotations used by the
// polarimetry demo.
func TestSubstances_Catalogue(t *testing.T) {
	subs := rotation.Substances()
	assert.Len(t, subs, 4)

	bySpec := map[string]float64{}
	for _, s := range subs {
		bySpec[s.Name] = s.SpecificRotation
	}
	assert.Equal(t, 66.5, bySpec["sucrose"])
	assert.Equal(t, -92.4, bySpec["fructose"])
	assert.Equal(t, 52.7, bySpec["glucose"])
	assert.Equal(t, 52.3, bySpec["lactose"])
}
