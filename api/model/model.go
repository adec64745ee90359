package model

import (
	"github.com/a-bouts/geofun/latlon"
	"github.com/a-bouts/geofun/track"
)

// LatLon is a position in degrees.
type LatLon struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func (l LatLon) Position() latlon.Position {
	return latlon.FromDegrees(l.Lat, l.Lon)
}

func FromPosition(p latlon.Position) LatLon {
	return LatLon{Lat: latlon.RadToDeg(p.Lat()), Lon: latlon.RadToDeg(p.Lon())}
}

// Vector is a bearing in degrees and a distance in meters.
type Vector struct {
	Bearing  float64 `json:"bearing"`
	Distance float64 `json:"distance"`
}

func (v Vector) Vector() latlon.Vector {
	return latlon.NewVector(latlon.DegToRad(v.Bearing), v.Distance)
}

func FromVector(v latlon.Vector) Vector {
	return Vector{Bearing: latlon.RadToDeg(v.A()), Distance: v.R()}
}

type Bounds struct {
	MinLat float64 `json:"minLat"`
	MinLon float64 `json:"minLon"`
	MaxLat float64 `json:"maxLat"`
	MaxLon float64 `json:"maxLon"`
}

func FromBounds(b latlon.Bounds) Bounds {
	return Bounds{
		MinLat: latlon.RadToDeg(b.MinLat),
		MinLon: latlon.RadToDeg(b.MinLon),
		MaxLat: latlon.RadToDeg(b.MaxLat),
		MaxLon: latlon.RadToDeg(b.MaxLon),
	}
}

type Inverse struct {
	Model string `json:"model"`
	From  LatLon `json:"from"`
	To    LatLon `json:"to"`
}

type Direct struct {
	Model  string `json:"model"`
	From   LatLon `json:"from"`
	Vector Vector `json:"vector"`
}

// Segment builds a line or an arc, from two positions or from a position
// and a vector.
type Segment struct {
	From   LatLon  `json:"from"`
	To     *LatLon `json:"to,omitempty"`
	Vector *Vector `json:"vector,omitempty"`
}

type Line struct {
	P1     LatLon `json:"p1"`
	V      Vector `json:"v"`
	P2     LatLon `json:"p2"`
	Bounds Bounds `json:"bounds"`
}

type Arc struct {
	P1     LatLon  `json:"p1"`
	V      Vector  `json:"v"`
	P2     LatLon  `json:"p2"`
	R      Vector  `json:"r"`
	Alpha  float64 `json:"alpha"`
	Bounds Bounds  `json:"bounds"`
}

type Intersection struct {
	Kind string  `json:"kind"`
	A    Segment `json:"a"`
	B    Segment `json:"b"`
}

type IntersectionResult struct {
	Intersects bool    `json:"intersects"`
	Position   *LatLon `json:"position,omitempty"`
}

type Track struct {
	Model string      `json:"model"`
	Track track.Track `json:"track"`
}

type Leg struct {
	From     LatLon  `json:"from"`
	To       LatLon  `json:"to"`
	Vector   Vector  `json:"vector"`
	FromDist float64 `json:"fromDist"`
}

type TrackSummary struct {
	Name     string  `json:"name"`
	Model    string  `json:"model"`
	Legs     []Leg   `json:"legs"`
	Distance float64 `json:"distance"`
	Bounds   Bounds  `json:"bounds"`
}

func FromSummary(s track.Summary) TrackSummary {
	legs := make([]Leg, len(s.Legs))
	for i, l := range s.Legs {
		legs[i] = Leg{
			From:     FromPosition(l.From),
			To:       FromPosition(l.To),
			Vector:   FromVector(l.Vector),
			FromDist: l.FromDist,
		}
	}
	return TrackSummary{
		Name:     s.Name,
		Model:    s.Model,
		Legs:     legs,
		Distance: s.Distance,
		Bounds:   FromBounds(s.Bounds),
	}
}
