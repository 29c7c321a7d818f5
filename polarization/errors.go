package polarization

import "errors"

// Sentinel errors for polarization-calculus operations. All entry points
// return these sentinels; callers match them via errors.Is.
var (
	// ErrNotRealizable indicates a Stokes vector that violates physical
	// realizability: S₀ < 0, or S₁²+S₂²+S₃² exceeding S₀² beyond the
	// configured tolerance.
	ErrNotRealizable = errors.New("polarization: stokes vector is not physically realizable")

	// ErrNotFullyPolarized indicates a Jones conversion requested on a
	// state whose degree of polarization is below the configured minimum.
	// Jones calculus describes fully polarized light only.
	ErrNotFullyPolarized = errors.New("polarization: state is not fully polarized")

	// ErrOutOfRange indicates a scalar element parameter outside its
	// documented domain (diattenuation or depolarization outside [0,1]).
	ErrOutOfRange = errors.New("polarization: parameter out of range")

	// ErrBadDimensions indicates a Mueller matrix built from anything
	// other than 16 values in row-major 4×4 order.
	ErrBadDimensions = errors.New("polarization: mueller matrix must be 4×4")

	// ErrUnknownElement indicates an Element whose Kind is not one of the
	// canonical ElementKind variants.
	ErrUnknownElement = errors.New("polarization: unknown element kind")
)
