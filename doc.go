// Package optics is your in-memory playground for polarization calculus
// and classic polarization-optics demonstrations — from Stokes vectors and
// Mueller matrices to Fresnel reflection, scattering and optical activity.
//
// 🚀 What is polarcraft/optics?
//
//	A pure-computation library that brings together:
//		• Polarization calculus: Stokes vectors, Mueller matrices, Jones vectors
//		• Canonical optical elements: polarizers, waveplates, rotators, depolarizers
//		• Element trains: rotation, cascading, physical-realizability validation
//		• Demo physics: Malus's law, Fresnel/Brewster, birefringence,
//		  Rayleigh & approximate Mie scattering, optical rotation
//		• Styled static plots (gonum/plot) and CSV/JSON data export
//
// ✨ Why choose polarcraft/optics?
//
//   - Physically honest – every Stokes state is validated against
//     S₁²+S₂²+S₃² ≤ S₀², every tolerance is a named, overridable constant
//   - Deterministic – immutable value types, no global state, no hidden
//     randomness; safe to share across goroutines without locks
//   - Minimal API – one obvious constructor per concept, sentinel errors
//     matched with errors.Is
//
// Under the hood, everything is organized per concern:
//
//	polarization/  — Stokes/Mueller/Jones core: the only subsystem with
//	                 real invariants and composition rules
//	malus/         — I = I₀·cos²θ and friends
//	fresnel/       — Fresnel coefficients, Brewster & critical angles
//	birefringence/ — o/e-ray split and phase retardation
//	scattering/    — Rayleigh and Henyey–Greenstein (approximate Mie) phase functions
//	rotation/      — optical activity of chiral solutions
//	render/        — explicit Style + static chart rendering to PNG
//	export/        — CSV (#-comment metadata) and JSON export encoders
//	cmd/polarcraft — CLI driving sweeps, renders and exports
//
// Quick taste:
//
//	in, _ := polarization.New(1, 1, 0, 0)            // horizontal linear
//	qwp := polarization.QuarterWavePlate(45)         // fast axis at 45°
//	out, _ := qwp.Apply(in)                          // → circular light
//	fmt.Println(out.DOP(), out.Ellipse().Handedness)
//
// Dive into each package's doc.go for formulas, conventions and examples.
//
//	go get github.com/polarcraft/optics/polarization
package optics
