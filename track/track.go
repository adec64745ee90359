package track

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/a-bouts/geofun/latlon"
)

var ErrTooShort = errors.New("track needs at least two waypoints")

// Waypoint is a track point in degrees, as stored in track files.
type Waypoint struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

func (w Waypoint) Position() latlon.Position {
	return latlon.FromDegrees(w.Lat, w.Lon)
}

type Track struct {
	Name      string     `json:"name"`
	Waypoints []Waypoint `json:"waypoints"`
}

type Leg struct {
	From     latlon.Position
	To       latlon.Position
	Vector   latlon.Vector
	FromDist float64 // distance sailed before this leg
}

type Summary struct {
	Name     string
	Model    string
	Legs     []Leg
	Distance float64
	Bounds   latlon.Bounds
}

// Load reads a JSON array of tracks.
func Load(file string) ([]Track, error) {
	content, err := ioutil.ReadFile(file)
	if err != nil {
		return nil, err
	}
	var tracks []Track
	if err := json.Unmarshal(content, &tracks); err != nil {
		return nil, fmt.Errorf("decode '%s': %w", file, err)
	}
	return tracks, nil
}

// Legs solves every leg of t with m. Legs are independent and solved
// concurrently.
func Legs(ctx context.Context, m latlon.Model, t Track) (Summary, error) {
	if len(t.Waypoints) < 2 {
		return Summary{}, ErrTooShort
	}

	legs := make([]Leg, len(t.Waypoints)-1)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range legs {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			from := t.Waypoints[i].Position()
			to := t.Waypoints[i+1].Position()
			v, err := m.Inverse(from, to)
			if err != nil {
				return fmt.Errorf("leg %d '%s' -> '%s': %w", i, t.Waypoints[i].Name, t.Waypoints[i+1].Name, err)
			}
			legs[i] = Leg{From: from, To: to, Vector: v}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Summary{}, err
	}

	s := Summary{Name: t.Name, Model: m.Name(), Legs: legs}
	for i := range legs {
		legs[i].FromDist = s.Distance
		s.Distance += legs[i].Vector.R()
		b := legBounds(m, legs[i])
		if i == 0 {
			s.Bounds = b
		} else {
			s.Bounds = s.Bounds.Extend(b)
		}
	}
	return s, nil
}

// legBounds follows the geodesic vertex for every model but plane sailing,
// whose legs stay within their end points.
func legBounds(m latlon.Model, l Leg) latlon.Bounds {
	if _, plane := m.(latlon.Plane); !plane {
		if a, err := latlon.NewArc(l.From, l.To); err == nil {
			return a.Bounds()
		}
	}
	return latlon.BoundsOf(l.From, l.To)
}

// Project dead reckons from start along vectors and returns every
// position reached, start included.
func Project(m latlon.Model, start latlon.Position, vectors []latlon.Vector) ([]latlon.Position, error) {
	positions := make([]latlon.Position, 0, len(vectors)+1)
	positions = append(positions, start)
	p := start
	for i, v := range vectors {
		var err error
		p, err = m.Direct(p, v)
		if err != nil {
			return nil, fmt.Errorf("vector %d: %w", i, err)
		}
		positions = append(positions, p)
	}
	return positions, nil
}
