// Package polarization implements the Stokes/Mueller/Jones calculus of
// polarized light: validated Stokes vectors, Mueller matrices for every
// canonical optical element, Jones vectors for the fully polarized
// limit, and composable element trains.
//
// 🚀 What is polarization calculus?
//
//	A light beam's polarization state is four real numbers:
//
//		S₀ — total intensity
//		S₁ — horizontal vs. vertical preference
//		S₂ — +45° vs. −45° preference
//		S₃ — right vs. left circular preference
//
//	Optical elements are 4×4 real Mueller matrices: S_out = M·S_in.
//	Unlike Jones calculus, this handles PARTIALLY polarized light and
//	depolarizing elements.
//
// ✨ Core invariant
//
//	Every Stokes state must be physically realizable:
//
//		S₀ ≥ 0 and S₁²+S₂²+S₃² ≤ S₀²·(1 + DefaultRealizabilityTol)
//
//	New enforces it at construction, Apply/Add/Scale re-enforce it after
//	every transformation. Violations surface as ErrNotRealizable via
//	errors.Is.
//
// 🔬 Conventions (fixed, because the literature is not)
//
//   - Handedness: S₃ > 0 (χ > 0) is LEFT-handed; the Poincaré north
//     pole is left circular. See Handedness.
//   - Cascade order: Mueller products compose right-to-left, so in
//     m2.Mul(m1) light passes m1 first. Train hides this: Train[0] is
//     always the first element hit.
//   - Angles in the public API are degrees; radians stay internal.
//
// 🧮 Quick example
//
//	in := polarization.LinearDeg(0)                  // horizontal
//	qwp := polarization.QuarterWavePlate(45)         // fast axis at 45°
//	out, err := qwp.Apply(in)
//	if err != nil { ... }
//	fmt.Println(out.DOCP())                          // ≈ 1: circular light
//
// Or declaratively, through a train:
//
//	train := polarization.Train{
//		{Kind: polarization.KindLinearPolarizer, AngleDeg: 0},
//		{Kind: polarization.KindQuarterWave, AngleDeg: 45},
//	}
//	out, err := train.Propagate(polarization.Unpolarized(1))
//
// Numeric policy (tolerances) is a set of named Default* constants,
// overridable per call with functional options (WithRealizabilityTol,
// WithZeroTol, ...). See types.go.
package polarization
