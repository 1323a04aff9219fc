package domain

import (
	"math"

	"github.com/paulmach/orb"
)

// Immutable geographic coordinates (longitude, latitude) in degrees.
type GeoCoordinate struct {
	Lon float64
	Lat float64
}

func NewGeoCoordinate(lon, lat float64) GeoCoordinate {
	return GeoCoordinate{Lon: lon, Lat: lat}
}

// Build coordinates from an orb point laid out as [lon, lat].
func GeoCoordinateFromPoint(p orb.Point) GeoCoordinate {
	return GeoCoordinate{Lon: p.Lon(), Lat: p.Lat()}
}

// Return coordinates as [lon, lat] for orb/GeoJSON compatibility.
func (c GeoCoordinate) Point() orb.Point { return orb.Point{c.Lon, c.Lat} }

func (c GeoCoordinate) IsFinite() bool { return isFinite(c.Lon) && isFinite(c.Lat) }

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
