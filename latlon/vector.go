package latlon

import "math"

// Coord is a planar displacement, X towards north and Y towards east.
type Coord struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (c Coord) Add(o Coord) Coord {
	return Coord{X: c.X + o.X, Y: c.Y + o.Y}
}

func (c Coord) Sub(o Coord) Coord {
	return Coord{X: c.X - o.X, Y: c.Y - o.Y}
}

func (c Coord) Scale(k float64) Coord {
	return Coord{X: c.X * k, Y: c.Y * k}
}

func (c Coord) cross(o Coord) float64 {
	return c.X*o.Y - c.Y*o.X
}

func (c Coord) Index(i int) float64 {
	switch i {
	case 0:
		return c.X
	case 1:
		return c.Y
	}
	return 0
}

// Vector is an azimuth (radians clockwise from north) and a range (meters).
type Vector struct {
	a float64
	r float64
}

func NewVector(azimuth, rng float64) Vector {
	return Vector{a: NormAngle2Pi(azimuth), r: rng}
}

func VectorFromCoord(c Coord) Vector {
	return Vector{
		a: NormAngle2Pi(math.Atan2(c.Y, c.X)),
		r: math.Sqrt(sqr(c.X) + sqr(c.Y)),
	}
}

func (v Vector) A() float64 {
	return v.a
}

func (v Vector) R() float64 {
	return v.r
}

func (v *Vector) SetA(a float64) {
	v.a = NormAngle2Pi(a)
}

func (v *Vector) SetR(r float64) {
	v.r = r
}

func (v Vector) Cartesian() Coord {
	return Coord{X: v.r * math.Cos(v.a), Y: v.r * math.Sin(v.a)}
}

func (v Vector) Scale(k float64) Vector {
	return Vector{a: v.a, r: v.r * k}
}

// Neg points the vector the other way.
func (v Vector) Neg() Vector {
	return Vector{a: NormAngle2Pi(v.a + π), r: v.r}
}

func (v Vector) Index(i int) float64 {
	switch i {
	case 0:
		return v.a
	case 1:
		return v.r
	}
	return 0
}
