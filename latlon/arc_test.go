package latlon

import (
	"errors"
	"testing"

	"github.com/tidwall/geodesic"
)

func dms(d, m, s float64) float64 {
	if d < 0 {
		return -(-d + m/60 + s/3600)
	}
	return d + m/60 + s/3600
}

func TestVincentyFlindersPeak(t *testing.T) {
	flinders := FromDegrees(dms(-37, 57, 3.72030), dms(144, 25, 29.52440))
	buninyong := FromDegrees(dms(-37, 39, 10.15610), dms(143, 55, 35.38390))

	a, err := NewArc(flinders, buninyong)
	if err != nil {
		t.Fatalf("NewArc() error %v", err)
	}
	if !near(a.V().R(), 54972.271, 5e-3) {
		t.Errorf("distance = %f; want 54972.271", a.V().R())
	}
	if !near(a.V().A(), DegToRad(dms(306, 52, 5.37)), 1e-6) {
		t.Errorf("forward azimuth = %f; want 306°52'05.37\"", RadToDeg(a.V().A()))
	}
	if !near(a.R().A(), DegToRad(dms(127, 10, 25.07)), 1e-6) {
		t.Errorf("reverse azimuth = %f; want 127°10'25.07\"", RadToDeg(a.R().A()))
	}
	if a.Index(1).Index(1) != a.V().R() || a.Index(3) != a.R() {
		t.Errorf("Index() does not expose V and R")
	}
}

func TestVincentyAgainstKarney(t *testing.T) {
	pairs := [][2]Position{
		{NewPosition(0.8, 0.8), NewPosition(1.0, 1.0)},
		{FromDegrees(51.5, -0.1), FromDegrees(40.7, -74.0)},
		{FromDegrees(-33.9, 151.2), FromDegrees(35.7, 139.7)},
	}
	for _, pair := range pairs {
		a, err := NewArc(pair[0], pair[1])
		if err != nil {
			t.Fatalf("NewArc() error %v", err)
		}
		var s12, azi1, azi2 float64
		geodesic.WGS84.Inverse(
			RadToDeg(pair[0].Lat()), RadToDeg(pair[0].Lon()),
			RadToDeg(pair[1].Lat()), RadToDeg(pair[1].Lon()),
			&s12, &azi1, &azi2)
		if !near(a.V().R(), s12, 0.5) {
			t.Errorf("vincenty distance = %f; karney %f", a.V().R(), s12)
		}
		if !near(AngleDiff(a.V().A(), DegToRad(azi1)), 0, 1e-6) {
			t.Errorf("vincenty azimuth = %f; karney %f", RadToDeg(a.V().A()), azi1)
		}
		if !near(AngleDiff(a.R().A(), DegToRad(azi2)+π), 0, 1e-6) {
			t.Errorf("vincenty reverse azimuth = %f; karney %f", RadToDeg(a.R().A()), azi2+180)
		}
	}
}

func TestArcDirectInverse(t *testing.T) {
	p1 := NewPosition(0.8, 0.8)
	p2 := NewPosition(1.0, 1.0)
	a1, err := NewArc(p1, p2)
	if err != nil {
		t.Fatalf("NewArc() error %v", err)
	}
	a2, err := ArcFromVector(p1, a1.V())
	if err != nil {
		t.Fatalf("ArcFromVector() error %v", err)
	}
	if !near(a2.P2().Lat(), p2.Lat(), 1e-9) || !near(a2.P2().Lon(), p2.Lon(), 1e-9) {
		t.Errorf("ArcFromVector().P2() = (%f,%f); want (%f,%f)", a2.P2().Lat(), a2.P2().Lon(), p2.Lat(), p2.Lon())
	}
	if !near(AngleDiff(a2.R().A(), a1.R().A()), 0, 1e-9) {
		t.Errorf("ArcFromVector().R().A() = %f; want %f", a2.R().A(), a1.R().A())
	}
}

func TestArcSetR(t *testing.T) {
	p1 := NewPosition(0.8, 0.8)
	p2 := NewPosition(1.0, 1.0)
	a, _ := NewArc(p1, p2)
	r := a.R()
	a.SetP1(NewPosition(0, 0))
	if err := a.SetR(r); err != nil {
		t.Fatalf("SetR() error %v", err)
	}
	if !near(a.P1().Lat(), p1.Lat(), 1e-9) || !near(a.P1().Lon(), p1.Lon(), 1e-9) {
		t.Errorf("SetR().P1() = (%f,%f); want (%f,%f)", a.P1().Lat(), a.P1().Lon(), p1.Lat(), p1.Lon())
	}
}

func TestArcExtend(t *testing.T) {
	p1 := FromDegrees(0, 0)
	a, _ := ArcFromVector(p1, NewVector(halfπ, 100e3))
	if err := a.Extend(NewVector(halfπ, 100e3)); err != nil {
		t.Fatalf("Extend() error %v", err)
	}
	if !near(a.V().R(), 200e3, 1e-3) || !near(a.P2().Lat(), 0, 1e-12) {
		t.Errorf("Extend() = %f at lat %f; want 200 km along the equator", a.V().R(), a.P2().Lat())
	}
}

func TestArcCoincident(t *testing.T) {
	p := NewPosition(0.4, 0.4)
	a, err := NewArc(p, p)
	if err != nil || a.V().R() != 0 {
		t.Errorf("NewArc(p, p) = %f, %v; want 0, nil", a.V().R(), err)
	}
}

func TestArcNearlyAntipodal(t *testing.T) {
	_, err := NewArc(FromDegrees(0, 0), FromDegrees(0.5, 179.7))
	if !errors.Is(err, ErrNoConvergence) {
		t.Errorf("NewArc(antipodal) error = %v; want ErrNoConvergence", err)
	}
}

func TestArcFailedSetKeepsArc(t *testing.T) {
	a, err := NewArc(FromDegrees(0, 0), FromDegrees(10, 10))
	if err != nil {
		t.Fatal(err)
	}
	before := a

	if err := a.SetP2(FromDegrees(0.5, 179.7)); !errors.Is(err, ErrNoConvergence) {
		t.Fatalf("SetP2(antipodal) error = %v; want ErrNoConvergence", err)
	}
	if a != before {
		t.Errorf("SetP2(antipodal) changed the arc to %+v; want %+v", a, before)
	}

	if err := a.SetP1(FromDegrees(-10.5, -170.3)); !errors.Is(err, ErrNoConvergence) {
		t.Fatalf("SetP1(antipodal) error = %v; want ErrNoConvergence", err)
	}
	if a != before {
		t.Errorf("SetP1(antipodal) changed the arc to %+v; want %+v", a, before)
	}
}

func TestArcVertex(t *testing.T) {
	p1 := FromDegrees(40, -30)
	p2 := FromDegrees(40, 30)
	a, err := NewArc(p1, p2)
	if err != nil {
		t.Fatalf("NewArc() error %v", err)
	}
	mid, err := ArcFromVector(p1, a.V().Scale(0.5))
	if err != nil {
		t.Fatalf("ArcFromVector() error %v", err)
	}
	if !near(a.MaxLat(), mid.P2().Lat(), 1e-6) {
		t.Errorf("MaxLat() = %f; want %f", RadToDeg(a.MaxLat()), RadToDeg(mid.P2().Lat()))
	}
	if a.MinLat() != p1.Lat() {
		t.Errorf("MinLat() = %f; want %f", RadToDeg(a.MinLat()), RadToDeg(p1.Lat()))
	}
}

func TestArcIntersection(t *testing.T) {
	a1, _ := NewArc(FromDegrees(0, -10), FromDegrees(0, 10))
	a2, _ := NewArc(FromDegrees(-10, 0), FromDegrees(10, 0))
	p, ok := a1.Intersection(a2)
	if !ok || !near(p.Lat(), 0, 1e-12) || !near(p.Lon(), 0, 1e-12) {
		t.Errorf("a1.Intersection(a2) = (%f,%f) %t; want (0,0) true", p.Lat(), p.Lon(), ok)
	}
	a3, _ := NewArc(FromDegrees(20, -10), FromDegrees(20, 10))
	if a3.Intersects(a2) {
		t.Errorf("a3.Intersects(a2) = true; want false")
	}
	l := NewLine(FromDegrees(-1, 5), FromDegrees(1, 5))
	if !a1.IntersectsLine(l) {
		t.Errorf("a1.IntersectsLine(l) = false; want true")
	}
}
