// Package rotation models optical activity: chiral solutions rotating
// the plane of linearly polarized light.
//
// The rotation follows Biot's law, α = [α]·L·c, with the specific
// rotation [α] in °·mL/(g·dm), path length L in decimeters and
// concentration c in g/mL. Dextrorotatory substances have positive
// [α], levorotatory negative.
package rotation

import "math"

// Substance describes an optically active solute by its specific
// rotation at the sodium D line (589 nm, 20 °C).
type Substance struct {
	Name string
	// SpecificRotation is [α] in °·mL/(g·dm).
	SpecificRotation float64
}

// Common sugars, the classroom staples of polarimetry.
var (
	Sucrose  = Substance{Name: "sucrose", SpecificRotation: 66.5}
	Fructose = Substance{Name: "fructose", SpecificRotation: -92.4}
	Glucose  = Substance{Name: "glucose", SpecificRotation: 52.7}
	Lactose  = Substance{Name: "lactose", SpecificRotation: 52.3}
)

// Substances returns the built-in catalogue.
func Substances() []Substance {
	return []Substance{Sucrose, Fructose, Glucose, Lactose}
}

// Angle returns the rotation α = [α]·L·c in degrees for path length
// pathDm (decimeters) and concentration (g/mL).
func Angle(specificRotation, pathDm, concentration float64) float64 {
	return specificRotation * pathDm * concentration
}

// Rotation returns the angle produced by this substance over the given
// path and concentration.
func (s Substance) Rotation(pathDm, concentration float64) float64 {
	return Angle(s.SpecificRotation, pathDm, concentration)
}

// OutputAngle returns the analyzer reading (input + rotation) folded
// into [0,180), the unique range of a linear polarization orientation.
func OutputAngle(inputDeg, rotationDeg float64) float64 {
	out := math.Mod(inputDeg+rotationDeg, 180)
	if out < 0 {
		out += 180
	}
	return out
}
