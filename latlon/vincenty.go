package latlon

import (
	"errors"
	"math"
)

const (
	vincentyEpsilon = 1e-12
	vincentyMaxIter = 200
)

// ErrNoConvergence is returned when Vincenty iterations do not settle,
// which happens for nearly antipodal points.
var ErrNoConvergence = errors.New("vincenty: no convergence")

// vincentyInverse returns the forward vector at p1, the reverse vector at p2
// pointing back to p1 and the azimuth of the geodesic at the equator.
func vincentyInverse(p1, p2 Position) (v Vector, r Vector, alpha float64, err error) {
	L := NormAnglePiPi(p2.lon - p1.lon)
	U1 := math.Atan((1 - F) * math.Tan(p1.lat))
	U2 := math.Atan((1 - F) * math.Tan(p2.lat))
	sinU1, cosU1 := math.Sincos(U1)
	sinU2, cosU2 := math.Sincos(U2)

	λ := L
	var sinλ, cosλ, sinσ, cosσ, σ, sinα, cosSqα, cos2σm float64
	converged := false
	for i := 0; i < vincentyMaxIter; i++ {
		sinλ, cosλ = math.Sincos(λ)
		sinσ = math.Sqrt(sqr(cosU2*sinλ) + sqr(cosU1*sinU2-sinU1*cosU2*cosλ))
		if sinσ == 0 {
			// coincident points
			return Vector{}, Vector{}, 0, nil
		}
		cosσ = sinU1*sinU2 + cosU1*cosU2*cosλ
		σ = math.Atan2(sinσ, cosσ)
		sinα = cosU1 * cosU2 * sinλ / sinσ
		cosSqα = 1 - sinα*sinα
		if cosSqα != 0 {
			cos2σm = cosσ - 2*sinU1*sinU2/cosSqα
		} else {
			// equatorial line
			cos2σm = 0
		}
		C := F / 16 * cosSqα * (4 + F*(4-3*cosSqα))
		λPrev := λ
		λ = L + (1-C)*F*sinα*(σ+C*sinσ*(cos2σm+C*cosσ*(-1+2*cos2σm*cos2σm)))
		if math.Abs(λ-λPrev) < vincentyEpsilon {
			converged = true
			break
		}
	}
	if !converged || math.Abs(λ) > π {
		return Vector{}, Vector{}, 0, ErrNoConvergence
	}

	uSq := cosSqα * (sqA - sqB) / sqB
	bigA := 1 + uSq/16384*(4096+uSq*(-768+uSq*(320-175*uSq)))
	bigB := uSq / 1024 * (256 + uSq*(-128+uSq*(74-47*uSq)))
	Δσ := bigB * sinσ * (cos2σm + bigB/4*(cosσ*(-1+2*cos2σm*cos2σm)-
		bigB/6*cos2σm*(-3+4*sinσ*sinσ)*(-3+4*cos2σm*cos2σm)))
	s := B * bigA * (σ - Δσ)

	α1 := math.Atan2(cosU2*sinλ, cosU1*sinU2-sinU1*cosU2*cosλ)
	α2 := math.Atan2(cosU1*sinλ, -sinU1*cosU2+cosU1*sinU2*cosλ)

	return NewVector(α1, s), NewVector(α2+π, s), math.Asin(sinα), nil
}

// vincentyDirect follows v from p1 and returns the end point, the reverse
// vector at the end point and the azimuth at the equator.
func vincentyDirect(p1 Position, v Vector) (p2 Position, r Vector, alpha float64, err error) {
	if v.r == 0 {
		return p1, NewVector(v.a+π, 0), 0, nil
	}
	sinα1, cosα1 := math.Sincos(v.a)
	tanU1 := (1 - F) * math.Tan(p1.lat)
	cosU1 := 1 / math.Sqrt(1+tanU1*tanU1)
	sinU1 := tanU1 * cosU1
	σ1 := math.Atan2(tanU1, cosα1)
	sinα := cosU1 * sinα1
	cosSqα := 1 - sinα*sinα
	uSq := cosSqα * (sqA - sqB) / sqB
	bigA := 1 + uSq/16384*(4096+uSq*(-768+uSq*(320-175*uSq)))
	bigB := uSq / 1024 * (256 + uSq*(-128+uSq*(74-47*uSq)))

	σ := v.r / (B * bigA)
	var sinσ, cosσ, cos2σm float64
	converged := false
	for i := 0; i < vincentyMaxIter; i++ {
		cos2σm = math.Cos(2*σ1 + σ)
		sinσ, cosσ = math.Sincos(σ)
		Δσ := bigB * sinσ * (cos2σm + bigB/4*(cosσ*(-1+2*cos2σm*cos2σm)-
			bigB/6*cos2σm*(-3+4*sinσ*sinσ)*(-3+4*cos2σm*cos2σm)))
		σPrev := σ
		σ = v.r/(B*bigA) + Δσ
		if math.Abs(σ-σPrev) < vincentyEpsilon {
			converged = true
			break
		}
	}
	if !converged {
		return Position{}, Vector{}, 0, ErrNoConvergence
	}
	cos2σm = math.Cos(2*σ1 + σ)
	sinσ, cosσ = math.Sincos(σ)

	x := sinU1*sinσ - cosU1*cosσ*cosα1
	φ2 := math.Atan2(sinU1*cosσ+cosU1*sinσ*cosα1, (1-F)*math.Sqrt(sinα*sinα+x*x))
	λ := math.Atan2(sinσ*sinα1, cosU1*cosσ-sinU1*sinσ*cosα1)
	C := F / 16 * cosSqα * (4 + F*(4-3*cosSqα))
	L := λ - (1-C)*F*sinα*(σ+C*sinσ*(cos2σm+C*cosσ*(-1+2*cos2σm*cos2σm)))
	α2 := math.Atan2(sinα, -x)

	return NewPosition(φ2, p1.lon+L), NewVector(α2+π, v.r), math.Asin(sinα), nil
}
