package latlon

import "math"

type nvector struct {
	x, y, z float64
}

func toNvector(p Position) nvector {
	sinφ, cosφ := math.Sincos(p.lat)
	sinλ, cosλ := math.Sincos(p.lon)
	return nvector{x: cosφ * cosλ, y: cosφ * sinλ, z: sinφ}
}

func (n nvector) cross(o nvector) nvector {
	return nvector{
		x: n.y*o.z - n.z*o.y,
		y: n.z*o.x - n.x*o.z,
		z: n.x*o.y - n.y*o.x,
	}
}

func (n nvector) dot(o nvector) float64 {
	return n.x*o.x + n.y*o.y + n.z*o.z
}

func (n nvector) norm() float64 {
	return math.Sqrt(n.dot(n))
}

func (n nvector) neg() nvector {
	return nvector{x: -n.x, y: -n.y, z: -n.z}
}

func (n nvector) position() Position {
	return NewPosition(math.Atan2(n.z, math.Hypot(n.x, n.y)), math.Atan2(n.y, n.x))
}

// within reports whether i lies on the minor arc from a to b whose great
// circle has normal c.
func within(a, b, c, i nvector) bool {
	const tolerance = -1e-12
	return a.cross(i).dot(c) >= tolerance && i.cross(b).dot(c) >= tolerance
}

// greatCircleIntersection intersects the minor arcs p1-p2 and p3-p4 on the
// unit sphere.
func greatCircleIntersection(p1, p2, p3, p4 Position) (Position, bool) {
	n1, n2 := toNvector(p1), toNvector(p2)
	n3, n4 := toNvector(p3), toNvector(p4)
	c1 := n1.cross(n2)
	c2 := n3.cross(n4)
	i := c1.cross(c2)
	if c1.norm() == 0 || c2.norm() == 0 || i.norm() < 1e-15 {
		return Position{}, false
	}
	for _, cand := range []nvector{i, i.neg()} {
		if within(n1, n2, c1, cand) && within(n3, n4, c2, cand) {
			return cand.position(), true
		}
	}
	return Position{}, false
}
