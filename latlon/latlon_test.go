package latlon

import (
	"math"
	"testing"
)

func near(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

func TestNormAnglePiPi(t *testing.T) {
	a := NormAnglePiPi(3 * π / 2)
	if !near(a, -π/2, 1e-12) {
		t.Errorf("NormAnglePiPi(3π/2) = %f; want -π/2", a)
	}
	b := NormAnglePiPi(π)
	if b != -π {
		t.Errorf("NormAnglePiPi(π) = %f; want -π", b)
	}
	c := NormAnglePiPi(-7 * π)
	if !near(c, -π, 1e-12) {
		t.Errorf("NormAnglePiPi(-7π) = %f; want -π", c)
	}
}

func TestNormAngle2Pi(t *testing.T) {
	a := NormAngle2Pi(-0.5)
	if !near(a, twoπ-0.5, 1e-12) {
		t.Errorf("NormAngle2Pi(-0.5) = %f; want %f", a, twoπ-0.5)
	}
	b := NormAngle2Pi(twoπ)
	if b != 0 {
		t.Errorf("NormAngle2Pi(2π) = %f; want 0", b)
	}
}

func TestNormLatitude(t *testing.T) {
	lat, flipped := NormLatitude(halfπ + 0.1)
	if !flipped || !near(lat, halfπ-0.1, 1e-12) {
		t.Errorf("NormLatitude(π/2+0.1) = (%f, %t); want (%f, true)", lat, flipped, halfπ-0.1)
	}
	lat, flipped = NormLatitude(-halfπ - 0.2)
	if !flipped || !near(lat, -halfπ+0.2, 1e-12) {
		t.Errorf("NormLatitude(-π/2-0.2) = (%f, %t); want (%f, true)", lat, flipped, -halfπ+0.2)
	}
	lat, flipped = NormLatitude(0.3)
	if flipped || lat != 0.3 {
		t.Errorf("NormLatitude(0.3) = (%f, %t); want (0.3, false)", lat, flipped)
	}
}

func TestRadToDeg(t *testing.T) {
	if d := RadToDeg(π); d != 180 {
		t.Errorf("RadToDeg(π) = %f; want 180", d)
	}
	if r := DegToRad(90); r != halfπ {
		t.Errorf("DegToRad(90) = %f; want π/2", r)
	}
}

func TestAngleDiff(t *testing.T) {
	d := AngleDiff(0.1, twoπ-0.1)
	if !near(d, 0.2, 1e-12) {
		t.Errorf("AngleDiff(0.1, 2π-0.1) = %f; want 0.2", d)
	}
}
