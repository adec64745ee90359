package latlon

import "math"

// Haversine works on a sphere of radius R.
type Haversine struct{}

func (Haversine) Name() string { return "haversine" }

func (Haversine) DistanceTo(from, to Position) float64 {
	Δφ := to.lat - from.lat
	Δλ := to.lon - from.lon

	a := math.Sin(Δφ/2)*math.Sin(Δφ/2) + math.Cos(from.lat)*math.Cos(to.lat)*math.Sin(Δλ/2)*math.Sin(Δλ/2)
	δ := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return R * δ
}

func (Haversine) BearingTo(from, to Position) float64 {
	Δλ := to.lon - from.lon
	x := math.Cos(from.lat)*math.Sin(to.lat) - math.Sin(from.lat)*math.Cos(to.lat)*math.Cos(Δλ)
	y := math.Sin(Δλ) * math.Cos(to.lat)
	θ := math.Atan2(y, x)

	return NormAngle2Pi(θ)
}

func (hav Haversine) Inverse(from, to Position) (Vector, error) {
	return NewVector(hav.BearingTo(from, to), hav.DistanceTo(from, to)), nil
}

func (Haversine) Direct(from Position, v Vector) (Position, error) {
	φ1 := from.lat
	θ := v.a
	δ := v.r / R

	φ2 := math.Asin(math.Sin(φ1)*math.Cos(δ) + math.Cos(φ1)*math.Sin(δ)*math.Cos(θ))
	λ2 := from.lon + math.Atan2(math.Sin(θ)*math.Sin(δ)*math.Cos(φ1), math.Cos(δ)-math.Sin(φ1)*math.Sin(φ2))

	return NewPosition(φ2, λ2), nil
}
