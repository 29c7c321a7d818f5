// Package scattering implements the single-particle light scattering
// models behind "why is the sky blue": the Rayleigh dipole phase
// function, the Henyey-Greenstein phase function, and a size-aware
// approximation to Mie scattering.
//
// 🚀 The size parameter rules everything
//
//	x = 2πr/λ
//
//	x < 0.5   Rayleigh regime  — symmetric dipole lobes, λ⁻⁴ law
//	x < 10    intermediate     — forward bias grows, ripples appear
//	x ≥ 10    Mie regime       — strong forward scattering (white clouds)
//
// MiePhase is an explicit approximation (Henyey-Greenstein with a
// size-dependent asymmetry parameter plus an interference ripple); the
// exact Mie series is out of scope.
//
// Scattering angles are degrees, matching the rest of the module.
package scattering
