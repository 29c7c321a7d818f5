// Package polarization: domain types, numeric-policy constants and
// functional options shared by the Stokes/Mueller/Jones core.
// Errors live in errors.go per the global conventions.
package polarization

// ---------- Numeric policy (single source of truth) ----------

// Every tolerance that defines an edge-case contract is a named constant
// here, overridable per call through Option setters. None of them is
// inlined at a use site.
const (
	// DefaultRealizabilityTol is the relative tolerance applied to the
	// realizability check S₁²+S₂²+S₃² ≤ S₀²·(1+tol). It absorbs the
	// floating-point overshoot of cascaded matrix products.
	DefaultRealizabilityTol = 1e-3

	// DefaultZeroTol is the absolute threshold below which an amplitude
	// or component is treated as exactly zero.
	DefaultZeroTol = 1e-10

	// DefaultLinearChiDeg is the ellipticity-angle magnitude (degrees)
	// below which a state is classified as linearly polarized.
	DefaultLinearChiDeg = 0.1

	// DefaultJonesMinDOP is the minimum degree of polarization required
	// for a Stokes→Jones conversion.
	DefaultJonesMinDOP = 0.99

	// DefaultClassifyTol is the tolerance used by Jones-vector state
	// classification (phase and amplitude-ratio comparisons).
	DefaultClassifyTol = 0.05
)

// ---------- Enumerations ----------

// Handedness labels the rotation sense of the polarization ellipse.
//
// Sign convention (fixed here, documented because optics literature is
// inconsistent between the IEEE and classical-optics conventions):
// positive ellipticity angle χ (S₃ > 0) means LEFT-handed; negative χ
// means RIGHT-handed. This matches the classical-optics convention used
// throughout this module's Poincaré-sphere labelling (north pole = L).
type Handedness int

const (
	// HandednessUndefined is reported only for zero-intensity states.
	HandednessUndefined Handedness = iota
	// HandednessLinear is reported when |χ| < the linear threshold.
	HandednessLinear
	// HandednessLeft is reported for χ > 0 (S₃ > 0).
	HandednessLeft
	// HandednessRight is reported for χ < 0 (S₃ < 0).
	HandednessRight
)

// String returns the lower-case label of the handedness.
func (h Handedness) String() string {
	switch h {
	case HandednessLinear:
		return "linear"
	case HandednessLeft:
		return "left"
	case HandednessRight:
		return "right"
	default:
		return "undefined"
	}
}

// StateKind labels the classification of a fully polarized Jones state.
type StateKind int

const (
	// StateLinear is linear polarization at some orientation angle.
	StateLinear StateKind = iota
	// StateCircularRight is right-circular polarization.
	StateCircularRight
	// StateCircularLeft is left-circular polarization.
	StateCircularLeft
	// StateElliptical is the general elliptical case.
	StateElliptical
)

// String returns the lower-case label of the state kind.
func (k StateKind) String() string {
	switch k {
	case StateLinear:
		return "linear"
	case StateCircularRight:
		return "circular-right"
	case StateCircularLeft:
		return "circular-left"
	default:
		return "elliptical"
	}
}

// ---------- Result aggregates ----------

// Ellipse carries the polarization-ellipse parameters extracted from a
// Stokes vector. Angles are in degrees.
type Ellipse struct {
	// A and B are the semi-major and semi-minor axes,
	// a = √(S₀(1+DOP)), b = √(S₀(1−DOP)).
	A, B float64
	// PsiDeg is the orientation angle ψ = ½·atan2(S₂,S₁).
	PsiDeg float64
	// ChiDeg is the ellipticity angle χ = ½·asin(S₃/S₀).
	ChiDeg float64
	// Handedness follows the sign convention documented on Handedness.
	Handedness Handedness
}

// Intensities holds the six analyzer measurements of the classical
// Stokes-parameter measurement scheme: horizontal, vertical, ±45° and
// right/left circular.
type Intensities struct {
	H, V, P45, M45, R, L float64
}

// ---------- Functional options ----------

// Option overrides one knob of the numeric policy for a single call.
// Safe to apply repeatedly; last writer wins.
type Option func(*Options)

// Options is the resolved numeric policy. Public entry points accept
// ...Option and resolve them against the Default* constants.
type Options struct {
	realizabilityTol float64 // relative, ≥ 0
	zeroTol          float64 // absolute, ≥ 0
	linearChiDeg     float64 // degrees, ≥ 0
	jonesMinDOP      float64 // in [0,1]
	classifyTol      float64 // ≥ 0
}

// WithRealizabilityTol sets the relative realizability tolerance.
// Panics on negative or non-finite values (programmer error).
func WithRealizabilityTol(tol float64) Option {
	if !(tol >= 0) { // catches NaN too
		panic("polarization: WithRealizabilityTol: tol must be non-negative")
	}
	return func(o *Options) { o.realizabilityTol = tol }
}

// WithZeroTol sets the absolute zero threshold.
func WithZeroTol(tol float64) Option {
	if !(tol >= 0) {
		panic("polarization: WithZeroTol: tol must be non-negative")
	}
	return func(o *Options) { o.zeroTol = tol }
}

// WithLinearChiDeg sets the linear-classification threshold in degrees.
func WithLinearChiDeg(deg float64) Option {
	if !(deg >= 0) {
		panic("polarization: WithLinearChiDeg: threshold must be non-negative")
	}
	return func(o *Options) { o.linearChiDeg = deg }
}

// WithJonesMinDOP sets the minimum DOP accepted by ToJones.
func WithJonesMinDOP(dop float64) Option {
	if !(dop >= 0 && dop <= 1) {
		panic("polarization: WithJonesMinDOP: dop must be in [0,1]")
	}
	return func(o *Options) { o.jonesMinDOP = dop }
}

// WithClassifyTol sets the Jones classification tolerance.
func WithClassifyTol(tol float64) Option {
	if !(tol >= 0) {
		panic("polarization: WithClassifyTol: tol must be non-negative")
	}
	return func(o *Options) { o.classifyTol = tol }
}

// gatherOptions resolves setters against the documented defaults.
func gatherOptions(user ...Option) Options {
	o := Options{
		realizabilityTol: DefaultRealizabilityTol,
		zeroTol:          DefaultZeroTol,
		linearChiDeg:     DefaultLinearChiDeg,
		jonesMinDOP:      DefaultJonesMinDOP,
		classifyTol:      DefaultClassifyTol,
	}
	for _, set := range user {
		set(&o)
	}
	return o
}
