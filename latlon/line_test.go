package latlon

import (
	"math"
	"testing"
)

func TestLineFromPositions(t *testing.T) {
	p1 := NewPosition(0.8, 0.8)
	p2 := NewPosition(1.0, 1.0)
	l1 := NewLine(p1, p2)
	if l1.Index(1).Index(0) != l1.V().A() || l1.Index(1).Index(1) != l1.V().R() {
		t.Errorf("l1[1] = (%f,%f); want (%f,%f)", l1.Index(1).Index(0), l1.Index(1).Index(1), l1.V().A(), l1.V().R())
	}
	if l1.Index(0) != p1 || l1.Index(2) != p2 {
		t.Errorf("l1[0], l1[2] are not the end points")
	}
	b := RadToDeg(l1.V().A())
	if b <= 0 || b >= 90 {
		t.Errorf("bearing of l1 = %f; want between 0 and 90", b)
	}
}

func TestLineFromVector(t *testing.T) {
	p1 := NewPosition(0.8, 0.8)
	v1 := NewVector(0.5, 1450e3)
	l2 := LineFromVector(p1, v1)
	if !near(l2.V().R(), v1.R(), 1e-2) || !near(AngleDiff(l2.V().A(), v1.A()), 0, 1e-9) {
		t.Errorf("LineFromVector().V() = (%f,%f); want (%f,%f)", l2.V().A(), l2.V().R(), v1.A(), v1.R())
	}
	if l2.P2().Lat() <= p1.Lat() || l2.P2().Lon() <= p1.Lon() {
		t.Errorf("LineFromVector().P2() = (%f,%f); want north east of p1", l2.P2().Lat(), l2.P2().Lon())
	}
}

func TestLineSetters(t *testing.T) {
	l := NewLine(NewPosition(0.1, 0.1), NewPosition(0.2, 0.2))
	l.SetP2(NewPosition(0.1, 0.3))
	if !near(l.V().A(), halfπ, 1e-12) {
		t.Errorf("SetP2 due east: V().A() = %f; want π/2", l.V().A())
	}
	l.SetP1(NewPosition(0.0, 0.3))
	if !near(l.V().A(), 0, 1e-12) {
		t.Errorf("SetP1 due north: V().A() = %f; want 0", l.V().A())
	}
	l.SetV(NewVector(π, 1000))
	if l.P2().Lat() >= 0 || !near(l.V().R(), 1000, 1e-6) {
		t.Errorf("SetV(π, 1000) = (%f,%f) %f; want south of the equator", l.P2().Lat(), l.P2().Lon(), l.V().R())
	}
}

func TestLineBounds(t *testing.T) {
	l := NewLine(NewPosition(0.3, -0.2), NewPosition(0.1, 0.4))
	if l.MinLat() != 0.1 || l.MaxLat() != 0.3 || l.MinLon() != -0.2 || l.MaxLon() != 0.4 {
		t.Errorf("bounds = (%f,%f,%f,%f); want (0.1,0.3,-0.2,0.4)", l.MinLat(), l.MaxLat(), l.MinLon(), l.MaxLon())
	}
}

func TestLineIntersection(t *testing.T) {
	l1 := NewLine(FromDegrees(0, 0), FromDegrees(1, 1))
	l2 := NewLine(FromDegrees(0, 1), FromDegrees(1, 0))
	p, ok := l1.Intersection(l2)
	if !ok {
		t.Fatalf("l1.Intersection(l2) not found")
	}
	if math.Abs(RadToDeg(p.Lat())-0.5) > 0.01 || math.Abs(RadToDeg(p.Lon())-0.5) > 0.01 {
		t.Errorf("l1.Intersection(l2) = (%f,%f); want (0.5,0.5)", RadToDeg(p.Lat()), RadToDeg(p.Lon()))
	}
	if !l2.Intersects(l1) {
		t.Errorf("l2.Intersects(l1) = false; want true")
	}
}

func TestLineNoIntersection(t *testing.T) {
	l1 := NewLine(FromDegrees(0, 1), FromDegrees(1, 0))
	l2 := NewLine(FromDegrees(2, 2), FromDegrees(3, 3))
	if l1.Intersects(l2) {
		t.Errorf("disjoint lines intersect")
	}
	if l1.Intersects(l1) {
		t.Errorf("a line intersects itself")
	}
}
