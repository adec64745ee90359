package latlon

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/tidwall/geodesic"
)

var ErrUnknownModel = errors.New("unknown model")

// Model solves the inverse and direct problems between positions.
type Model interface {
	Name() string
	Inverse(from, to Position) (Vector, error)
	Direct(from Position, v Vector) (Position, error)
}

// Plane is the plane sailing model used by Line.
type Plane struct{}

func (Plane) Name() string { return "plane" }

func (Plane) Inverse(from, to Position) (Vector, error) {
	return to.Sub(from), nil
}

func (Plane) Direct(from Position, v Vector) (Position, error) {
	return from.Add(v), nil
}

// Vincenty is the ellipsoidal geodesic model used by Arc.
type Vincenty struct{}

func (Vincenty) Name() string { return "vincenty" }

func (Vincenty) Inverse(from, to Position) (Vector, error) {
	v, _, _, err := vincentyInverse(from, to)
	return v, err
}

func (Vincenty) Direct(from Position, v Vector) (Position, error) {
	p, _, _, err := vincentyDirect(from, v)
	return p, err
}

// Karney solves geodesics on WGS84 with tidwall/geodesic.
type Karney struct{}

func (Karney) Name() string { return "karney" }

func (Karney) Inverse(from, to Position) (Vector, error) {
	var s12, azi1, azi2 float64
	geodesic.WGS84.Inverse(
		RadToDeg(from.lat), RadToDeg(from.lon),
		RadToDeg(to.lat), RadToDeg(to.lon),
		&s12, &azi1, &azi2)
	return NewVector(DegToRad(azi1), s12), nil
}

func (Karney) Direct(from Position, v Vector) (Position, error) {
	var lat2, lon2, azi2 float64
	geodesic.WGS84.Direct(
		RadToDeg(from.lat), RadToDeg(from.lon),
		RadToDeg(v.a), v.r,
		&lat2, &lon2, &azi2)
	return FromDegrees(lat2, lon2), nil
}

var models = map[string]Model{
	"plane":     Plane{},
	"line":      Plane{},
	"vincenty":  Vincenty{},
	"arc":       Vincenty{},
	"haversine": Haversine{},
	"karney":    Karney{},
}

// ModelByName resolves a model, defaulting to Vincenty for an empty name.
func ModelByName(name string) (Model, error) {
	if name == "" {
		return Vincenty{}, nil
	}
	m, found := models[strings.ToLower(name)]
	if !found {
		return nil, fmt.Errorf("%w '%s'", ErrUnknownModel, name)
	}
	return m, nil
}

func ModelNames() []string {
	names := make([]string, 0, len(models))
	for n := range models {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
