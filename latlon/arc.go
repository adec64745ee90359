package latlon

import "math"

// Arc is a geodesic segment on the ellipsoid solved with Vincenty's
// formulae. V is the forward vector at P1 and R the reverse vector at P2
// leading back to P1.
type Arc struct {
	p1    Position
	p2    Position
	v     Vector
	r     Vector
	alpha float64 // azimuth at the equator
}

func NewArc(p1, p2 Position) (Arc, error) {
	a := Arc{p1: p1, p2: p2}
	var err error
	a.v, a.r, a.alpha, err = vincentyInverse(p1, p2)
	return a, err
}

func ArcFromVector(p Position, v Vector) (Arc, error) {
	a := Arc{p1: p, v: v}
	var err error
	a.p2, a.r, a.alpha, err = vincentyDirect(p, v)
	return a, err
}

// setEnds solves p1 to p2 and updates the arc only on success.
func (a *Arc) setEnds(p1, p2 Position) error {
	v, r, alpha, err := vincentyInverse(p1, p2)
	if err != nil {
		return err
	}
	a.p1, a.p2, a.v, a.r, a.alpha = p1, p2, v, r, alpha
	return nil
}

func (a Arc) P1() Position {
	return a.p1
}

func (a Arc) P2() Position {
	return a.p2
}

func (a Arc) V() Vector {
	return a.v
}

func (a Arc) R() Vector {
	return a.r
}

func (a Arc) Alpha() float64 {
	return a.alpha
}

// Index returns P1, V, P2 and R for 0 to 3.
func (a Arc) Index(i int) Pair {
	switch i {
	case 1:
		return a.v
	case 2:
		return a.p2
	case 3:
		return a.r
	}
	return a.p1
}

func (a *Arc) SetP1(p Position) error {
	return a.setEnds(p, a.p2)
}

func (a *Arc) SetP2(p Position) error {
	return a.setEnds(a.p1, p)
}

func (a *Arc) SetV(v Vector) error {
	p2, r, alpha, err := vincentyDirect(a.p1, v)
	if err != nil {
		return err
	}
	a.v, a.p2, a.r, a.alpha = v, p2, r, alpha
	return nil
}

// SetR moves P1 so that following r from P2 leads to it.
func (a *Arc) SetR(r Vector) error {
	p1, v, alpha, err := vincentyDirect(a.p2, r)
	if err != nil {
		return err
	}
	a.r, a.p1, a.v, a.alpha = r, p1, v, alpha
	return nil
}

// Extend moves P2 further along v, keeping P1.
func (a *Arc) Extend(v Vector) error {
	p2, _, _, err := vincentyDirect(a.p2, v)
	if err != nil {
		return err
	}
	return a.setEnds(a.p1, p2)
}

// vertexLat is the geodetic latitude of the northern vertex of the
// geodesic (Clairaut).
func (a Arc) vertexLat() float64 {
	βv := math.Acos(math.Abs(math.Sin(a.alpha)))
	return math.Atan(math.Tan(βv) / (1 - F))
}

func (a Arc) Bounds() Bounds {
	b := BoundsOf(a.p1, a.p2)
	if a.v.r == 0 {
		return b
	}
	north1 := math.Cos(a.v.a)
	north2 := math.Cos(a.r.a + π)
	switch {
	case north1 > 0 && north2 < 0:
		b.MaxLat = math.Max(b.MaxLat, a.vertexLat())
	case north1 < 0 && north2 > 0:
		b.MinLat = math.Min(b.MinLat, -a.vertexLat())
	}
	return b
}

func (a Arc) MinLat() float64 { return a.Bounds().MinLat }
func (a Arc) MaxLat() float64 { return a.Bounds().MaxLat }
func (a Arc) MinLon() float64 { return a.Bounds().MinLon }
func (a Arc) MaxLon() float64 { return a.Bounds().MaxLon }

func (a Arc) Intersects(o Arc) bool {
	_, ok := a.Intersection(o)
	return ok
}

func (a Arc) Intersection(o Arc) (Position, bool) {
	return greatCircleIntersection(a.p1, a.p2, o.p1, o.p2)
}

func (a Arc) IntersectsLine(l Line) bool {
	_, ok := a.IntersectionLine(l)
	return ok
}

// IntersectionLine treats the line as the great circle through its end
// points, which holds for short lines.
func (a Arc) IntersectionLine(l Line) (Position, bool) {
	return greatCircleIntersection(a.p1, a.p2, l.p1, l.p2)
}
