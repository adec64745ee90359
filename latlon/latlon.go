package latlon

import "math"

const π = math.Pi

// Earth ellipsoid
const (
	A = 6378137.0   // equatorial radius
	B = 6356752.3   // polar radius
	F = (A - B) / A // flattening
	R = 6371e3      // mean radius of the sphere used by Haversine
)

const (
	sqA   = A * A
	sqB   = B * B
	twoπ  = 2 * π
	halfπ = π / 2
)

func DegToRad(d float64) float64 {
	return d * π / 180.0
}

func RadToDeg(r float64) float64 {
	return r * 180.0 / π
}

func sqr(x float64) float64 {
	return x * x
}

func reducedLatitude(φ float64) float64 {
	return math.Atan2((1-F)*math.Sin(φ), math.Cos(φ))
}

// NormAnglePiPi wraps an angle to [-π, π).
func NormAnglePiPi(a float64) float64 {
	if -π <= a && a < π {
		return a
	}
	r := math.Mod(a+π, twoπ)
	if r < 0 {
		r += twoπ
	}
	r -= π
	if r >= π {
		r -= twoπ
	}
	return r
}

// NormAngle2Pi wraps an angle to [0, 2π).
func NormAngle2Pi(a float64) float64 {
	if 0 <= a && a < twoπ {
		return a
	}
	r := math.Mod(a, twoπ)
	if r < 0 {
		r += twoπ
	}
	if r >= twoπ {
		r -= twoπ
	}
	return r
}

// NormLatitude folds an angle into [-π/2, π/2]. flipped reports that the
// angle went over a pole, in which case the longitude must be rotated by π.
func NormLatitude(a float64) (lat float64, flipped bool) {
	lat = NormAnglePiPi(a)
	switch {
	case lat > halfπ:
		return π - lat, true
	case lat < -halfπ:
		return -π - lat, true
	}
	return lat, false
}

func AngleDiff(a1, a2 float64) float64 {
	return NormAnglePiPi(a1 - a2)
}

// Pair is anything exposing two indexed components.
type Pair interface {
	Index(i int) float64
}
