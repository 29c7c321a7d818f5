package polarization

import "fmt"

// ElementKind enumerates the canonical optical elements an Element can
// stand for. Dispatch is by enum, not by string, so an unknown kind is
// a compile-visible constant away from being caught.
type ElementKind int

const (
	// KindIdentity is a transparent placeholder element.
	KindIdentity ElementKind = iota
	// KindLinearPolarizer uses AngleDeg as the transmission axis.
	KindLinearPolarizer
	// KindQuarterWave uses AngleDeg as the fast axis.
	KindQuarterWave
	// KindHalfWave uses AngleDeg as the fast axis.
	KindHalfWave
	// KindRotator uses AngleDeg as the rotation angle.
	KindRotator
	// KindRetarder uses RetardanceDeg and AngleDeg.
	KindRetarder
	// KindPartialPolarizer uses Diattenuation and AngleDeg.
	KindPartialPolarizer
	// KindDepolarizer uses Depolarization.
	KindDepolarizer
)

// String returns the lower-case label of the element kind.
func (k ElementKind) String() string {
	switch k {
	case KindIdentity:
		return "identity"
	case KindLinearPolarizer:
		return "linear-polarizer"
	case KindQuarterWave:
		return "quarter-wave-plate"
	case KindHalfWave:
		return "half-wave-plate"
	case KindRotator:
		return "rotator"
	case KindRetarder:
		return "retarder"
	case KindPartialPolarizer:
		return "partial-polarizer"
	case KindDepolarizer:
		return "depolarizer"
	default:
		return fmt.Sprintf("ElementKind(%d)", int(k))
	}
}

// Element is a declarative description of one optical element. Only the
// fields relevant to its Kind are consulted; the rest are ignored.
type Element struct {
	Kind ElementKind

	// AngleDeg is the transmission/fast-axis or rotation angle.
	AngleDeg float64
	// RetardanceDeg is the phase retardance of a KindRetarder.
	RetardanceDeg float64
	// Diattenuation parameterizes a KindPartialPolarizer, in [0,1].
	Diattenuation float64
	// Depolarization parameterizes a KindDepolarizer, in [0,1].
	Depolarization float64
}

// Mueller materializes the element's Mueller matrix.
// Returns ErrUnknownElement for a Kind outside the enum and
// ErrOutOfRange for parameters outside their documented domain.
func (e Element) Mueller() (MuellerMatrix, error) {
	switch e.Kind {
	case KindIdentity:
		return Identity(), nil
	case KindLinearPolarizer:
		return LinearPolarizer(e.AngleDeg), nil
	case KindQuarterWave:
		return QuarterWavePlate(e.AngleDeg), nil
	case KindHalfWave:
		return HalfWavePlate(e.AngleDeg), nil
	case KindRotator:
		return Rotator(e.AngleDeg), nil
	case KindRetarder:
		return Retarder(e.RetardanceDeg, e.AngleDeg), nil
	case KindPartialPolarizer:
		return PartialPolarizer(e.Diattenuation, e.AngleDeg)
	case KindDepolarizer:
		return Depolarizer(e.Depolarization)
	default:
		return MuellerMatrix{}, fmt.Errorf("kind %d: %w", int(e.Kind), ErrUnknownElement)
	}
}

// Train is an ordered sequence of elements; light passes Train[0]
// first.
type Train []Element

// Compose collapses the train into one Mueller matrix, multiplying
// right-to-left so that the first element acts first. The empty train
// composes to the identity.
func (t Train) Compose() (MuellerMatrix, error) {
	total := Identity()
	for i, e := range t {
		m, err := e.Mueller()
		if err != nil {
			return MuellerMatrix{}, fmt.Errorf("element %d (%s): %w", i, e.Kind, err)
		}
		total = m.Mul(total)
	}
	return total, nil
}

// Propagate sends a Stokes vector through the train and returns the
// output state, re-validated with the shared tolerance.
func (t Train) Propagate(s StokesVector, opts ...Option) (StokesVector, error) {
	total, err := t.Compose()
	if err != nil {
		return StokesVector{}, err
	}
	return total.Apply(s, opts...)
}
