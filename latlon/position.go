package latlon

import "math"

// passes of the direct plane sailing fixed point
const directPasses = 3

// Position is a point on the ellipsoid in radians. Longitude stays in
// [-π, π) and latitude in [-π/2, π/2].
type Position struct {
	lat float64
	lon float64
}

func NewPosition(lat, lon float64) Position {
	var p Position
	p.SetLatLon(lat, lon)
	return p
}

// FromDegrees builds a Position from degrees.
func FromDegrees(lat, lon float64) Position {
	return NewPosition(DegToRad(lat), DegToRad(lon))
}

func (p Position) Lat() float64 {
	return p.lat
}

func (p Position) Lon() float64 {
	return p.lon
}

// SetLat reflects latitudes past a pole and moves to the opposite meridian.
func (p *Position) SetLat(lat float64) {
	var flipped bool
	p.lat, flipped = NormLatitude(lat)
	if flipped {
		p.SetLon(p.lon + π)
	}
}

func (p *Position) SetLon(lon float64) {
	p.lon = NormAnglePiPi(lon)
}

// SetLatLon sets longitude first so that flying over the pole ends up on
// the right meridian.
func (p *Position) SetLatLon(lat, lon float64) {
	p.SetLon(lon)
	p.SetLat(lat)
}

func (p Position) Index(i int) float64 {
	switch i {
	case 0:
		return p.lat
	case 1:
		return p.lon
	}
	return 0
}

// cartesianDeltas returns the meters per radian of latitude (X) and of
// longitude (Y) at p.
func (p Position) cartesianDeltas() Coord {
	β := reducedLatitude(p.lat)
	return Coord{
		X: A * B * math.Sqrt(sqA*sqr(math.Sin(β))+sqB*sqr(math.Cos(β))) /
			((sqA-sqB)*sqr(math.Cos(p.lat)) + sqB),
		Y: A * math.Cos(β),
	}
}

func simpson(d1, d2, d3 Coord) Coord {
	return d1.Add(d2.Scale(4)).Add(d3).Scale(1.0 / 6.0)
}

// offset moves p by c meters using the averaged deltas d.
func (p Position) offset(c Coord, d Coord, k float64) Position {
	lon := p.lon
	if d.Y > 1e-9 {
		lon += k * c.Y / d.Y
	}
	return NewPosition(p.lat+k*c.X/d.X, lon)
}

// Add solves the direct problem by plane sailing: the north and east
// components of v are spread over the radii of curvature averaged along
// the path.
func (p Position) Add(v Vector) Position {
	if v.r == 0 {
		return p
	}
	c := v.Cartesian()
	d1 := p.cartesianDeltas()
	d := d1
	for i := 0; i < directPasses; i++ {
		mid := p.offset(c, d, 0.5)
		end := p.offset(c, d, 1)
		d = simpson(d1, mid.cartesianDeltas(), end.cartesianDeltas())
	}
	return p.offset(c, d, 1)
}

// AddInPlace moves p along v.
func (p *Position) AddInPlace(v Vector) {
	*p = p.Add(v)
}

// Sub returns the plane sailing vector leading from o to p.
func (p Position) Sub(o Position) Vector {
	dlat := NormAnglePiPi(p.lat - o.lat)
	dlon := NormAnglePiPi(p.lon - o.lon)
	if dlat == 0 && dlon == 0 {
		return Vector{}
	}
	mid := NewPosition(o.lat+0.5*dlat, o.lon+0.5*dlon)
	d := simpson(o.cartesianDeltas(), mid.cartesianDeltas(), p.cartesianDeltas())
	return VectorFromCoord(Coord{X: dlat * d.X, Y: dlon * d.Y})
}

// Bounds is a latitude/longitude box in radians.
type Bounds struct {
	MinLat float64 `json:"minLat"`
	MinLon float64 `json:"minLon"`
	MaxLat float64 `json:"maxLat"`
	MaxLon float64 `json:"maxLon"`
}

// BoundsOf is the box spanned by two end points.
func BoundsOf(p1, p2 Position) Bounds {
	return Bounds{
		MinLat: math.Min(p1.lat, p2.lat),
		MinLon: math.Min(p1.lon, p2.lon),
		MaxLat: math.Max(p1.lat, p2.lat),
		MaxLon: math.Max(p1.lon, p2.lon),
	}
}

// Extend grows b to contain o.
func (b Bounds) Extend(o Bounds) Bounds {
	return Bounds{
		MinLat: math.Min(b.MinLat, o.MinLat),
		MinLon: math.Min(b.MinLon, o.MinLon),
		MaxLat: math.Max(b.MaxLat, o.MaxLat),
		MaxLon: math.Max(b.MaxLon, o.MaxLon),
	}
}
