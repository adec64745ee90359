package latlon

// Line is a plane sailing segment. V always equals P2.Sub(P1).
type Line struct {
	p1 Position
	p2 Position
	v  Vector
}

func NewLine(p1, p2 Position) Line {
	return Line{p1: p1, p2: p2, v: p2.Sub(p1)}
}

// LineFromVector starts at p and follows v. V is recomputed from the end
// point so it may differ slightly from v.
func LineFromVector(p Position, v Vector) Line {
	p2 := p.Add(v)
	return Line{p1: p, p2: p2, v: p2.Sub(p)}
}

func (l Line) P1() Position {
	return l.p1
}

func (l Line) P2() Position {
	return l.p2
}

func (l Line) V() Vector {
	return l.v
}

// Index returns P1, V and P2 for 0, 1 and 2.
func (l Line) Index(i int) Pair {
	switch i {
	case 1:
		return l.v
	case 2:
		return l.p2
	}
	return l.p1
}

func (l *Line) SetP1(p Position) {
	l.p1 = p
	l.v = l.p2.Sub(l.p1)
}

func (l *Line) SetP2(p Position) {
	l.p2 = p
	l.v = l.p2.Sub(l.p1)
}

func (l *Line) SetV(v Vector) {
	l.p2 = l.p1.Add(v)
	l.v = l.p2.Sub(l.p1)
}

func (l Line) Bounds() Bounds {
	return BoundsOf(l.p1, l.p2)
}

func (l Line) MinLat() float64 { return l.Bounds().MinLat }
func (l Line) MaxLat() float64 { return l.Bounds().MaxLat }
func (l Line) MinLon() float64 { return l.Bounds().MinLon }
func (l Line) MaxLon() float64 { return l.Bounds().MaxLon }

// local maps a position into the planar frame anchored at l.p1.
func (l Line) local(p Position) Coord {
	return p.Sub(l.p1).Cartesian()
}

func (l Line) Intersects(o Line) bool {
	_, ok := l.Intersection(o)
	return ok
}

// Intersection returns where both segments cross. Collinear and parallel
// segments never intersect.
func (l Line) Intersection(o Line) (Position, bool) {
	a := l.v.Cartesian()
	c := l.local(o.p1)
	d := l.local(o.p2).Sub(c)

	denom := a.cross(d)
	if denom == 0 {
		return Position{}, false
	}
	t := c.cross(d) / denom
	u := c.cross(a) / denom
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return Position{}, false
	}
	return l.p1.Add(VectorFromCoord(a.Scale(t))), true
}
