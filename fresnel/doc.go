// Package fresnel computes reflection and transmission of light at a
// planar dielectric boundary.
//
// 🚀 What it covers
//
//   - Snell's law n₁sinθ₁ = n₂sinθ₂, with total internal reflection
//     signalled as a sentinel error
//   - The four Fresnel amplitude coefficients r_s, r_p, t_s, t_p and
//     the matching intensity coefficients R, T (energy conserving:
//     R+T = 1 for each polarization)
//   - Brewster's angle θ_B = arctan(n₂/n₁), where reflected light is
//     purely s-polarized
//   - The critical angle θ_c = arcsin(n₂/n₁) for dense-to-rare
//     boundaries
//
// Angles are degrees throughout; refractive indices are plain
// dimensionless floats. Absorbing media (complex n) are out of scope.
package fresnel
