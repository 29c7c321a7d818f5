package fresnel

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by the angle and coefficient calculators.
var (
	// ErrTotalInternalReflection indicates Snell's law has no real
	// refraction angle: sinθ₂ = (n₁/n₂)·sinθ₁ > 1.
	ErrTotalInternalReflection = errors.New("fresnel: total internal reflection")

	// ErrNoCriticalAngle indicates a critical angle was requested for a
	// boundary into a denser medium (n₁ ≤ n₂), where TIR cannot occur.
	ErrNoCriticalAngle = errors.New("fresnel: critical angle requires n1 > n2")

	// ErrBadIndex indicates a non-positive refractive index.
	ErrBadIndex = errors.New("fresnel: refractive index must be positive")
)

// Coefficients carries the full Fresnel solution at one incidence
// angle: amplitude coefficients (lowercase r,t in the textbooks),
// intensity reflectance/transmittance, the refraction angle and the TIR
// flag. Under TIR the reflectances are 1, the transmittances 0 and
// Theta2Deg is reported as 90°.
type Coefficients struct {
	// ReflAmpS and ReflAmpP are the amplitude reflection coefficients
	// r_s and r_p; their signs encode the phase flip on reflection.
	ReflAmpS, ReflAmpP float64
	// TransAmpS and TransAmpP are the amplitude transmission
	// coefficients t_s and t_p.
	TransAmpS, TransAmpP float64
	// ReflS, ReflP, TransS, TransP are the intensity coefficients
	// R_s, R_p, T_s, T_p with R+T=1 per polarization.
	ReflS, ReflP, TransS, TransP float64
	// Theta2Deg is the refraction angle in degrees.
	Theta2Deg float64
	// TIR reports total internal reflection.
	TIR bool
}

// checkIndices rejects non-positive refractive indices.
func checkIndices(n1, n2 float64) error {
	if n1 <= 0 || n2 <= 0 {
		return fmt.Errorf("n1=%v, n2=%v: %w", n1, n2, ErrBadIndex)
	}
	return nil
}

// Snell returns the refraction angle in degrees for light incident at
// theta1Deg onto an n₁→n₂ boundary: n₁·sinθ₁ = n₂·sinθ₂.
// Returns ErrTotalInternalReflection when no real solution exists.
func Snell(theta1Deg, n1, n2 float64) (float64, error) {
	if err := checkIndices(n1, n2); err != nil {
		return 0, err
	}
	sin2 := n1 / n2 * math.Sin(theta1Deg*math.Pi/180)
	if sin2 > 1 {
		return 0, fmt.Errorf("θ1=%.2f°, n1=%v, n2=%v: %w", theta1Deg, n1, n2, ErrTotalInternalReflection)
	}
	return math.Asin(sin2) * 180 / math.Pi, nil
}

// Compute solves the Fresnel equations at the given incidence angle.
// TIR is not an error here: the returned Coefficients describe the
// perfectly reflecting boundary with TIR set.
//
//	r_s = (n₁cosθ₁ − n₂cosθ₂)/(n₁cosθ₁ + n₂cosθ₂)
//	r_p = (n₂cosθ₁ − n₁cosθ₂)/(n₂cosθ₁ + n₁cosθ₂)
//	t_s = 2n₁cosθ₁/(n₁cosθ₁ + n₂cosθ₂)
//	t_p = 2n₁cosθ₁/(n₂cosθ₁ + n₁cosθ₂)
//	T = (n₂cosθ₂)/(n₁cosθ₁)·t²
func Compute(theta1Deg, n1, n2 float64) (Coefficients, error) {
	if err := checkIndices(n1, n2); err != nil {
		return Coefficients{}, err
	}

	theta1 := theta1Deg * math.Pi / 180
	cos1, sin1 := math.Cos(theta1), math.Sin(theta1)

	sin2 := n1 / n2 * sin1
	if sin2 > 1 {
		return Coefficients{
			ReflAmpS: 1, ReflAmpP: 1,
			ReflS: 1, ReflP: 1,
			Theta2Deg: 90,
			TIR:       true,
		}, nil
	}
	cos2 := math.Sqrt(1 - sin2*sin2)

	rs := (n1*cos1 - n2*cos2) / (n1*cos1 + n2*cos2)
	ts := 2 * n1 * cos1 / (n1*cos1 + n2*cos2)
	rp := (n2*cos1 - n1*cos2) / (n2*cos1 + n1*cos2)
	tp := 2 * n1 * cos1 / (n2*cos1 + n1*cos2)

	angleFactor := n2 * cos2 / (n1 * cos1)

	return Coefficients{
		ReflAmpS:  rs,
		ReflAmpP:  rp,
		TransAmpS: ts,
		TransAmpP: tp,
		ReflS:     rs * rs,
		ReflP:     rp * rp,
		TransS:    angleFactor * ts * ts,
		TransP:    angleFactor * tp * tp,
		Theta2Deg: math.Asin(sin2) * 180 / math.Pi,
	}, nil
}

// BrewsterAngle returns θ_B = arctan(n₂/n₁) in degrees, the incidence
// angle at which the p-polarized reflectance vanishes.
func BrewsterAngle(n1, n2 float64) (float64, error) {
	if err := checkIndices(n1, n2); err != nil {
		return 0, err
	}
	return math.Atan(n2/n1) * 180 / math.Pi, nil
}

// CriticalAngle returns θ_c = arcsin(n₂/n₁) in degrees, beyond which
// total internal reflection occurs. Only defined for n₁ > n₂; returns
// ErrNoCriticalAngle otherwise.
func CriticalAngle(n1, n2 float64) (float64, error) {
	if err := checkIndices(n1, n2); err != nil {
		return 0, err
	}
	if n1 <= n2 {
		return 0, fmt.Errorf("n1=%v <= n2=%v: %w", n1, n2, ErrNoCriticalAngle)
	}
	return math.Asin(n2/n1) * 180 / math.Pi, nil
}
