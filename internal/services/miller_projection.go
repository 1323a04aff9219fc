package services

import (
	"errors"
	"fmt"
	"math"

	"miller-projection-service/internal/domain"
)

const (
	// Mean Earth radius used to turn angles into canvas distance.
	EarthRadius = 6381372.0
	// Miller scaling constant applied to the damped Mercator y-transform.
	// Unrelated to pi.
	MillerConstant = 2.3
)

var (
	ErrInvalidLatitude  = errors.New("latitude must be finite and strictly between -90 and 90")
	ErrInvalidLongitude = errors.New("longitude must be finite")
	ErrInvalidPoint     = errors.New("planar point is outside the projected canvas")
	ErrInvalidRadius    = errors.New("radius must be finite and positive")
)

// ProjectCoordinate maps (lon, lat) in degrees to canvas (x, y) under the
// Miller cylindrical projection with the default Earth radius.
func ProjectCoordinate(lon, lat float64) (x, y float64, err error) {
	p, err := DefaultProjector().Project(domain.NewGeoCoordinate(lon, lat))
	if err != nil {
		return 0, 0, err
	}
	return p.X, p.Y, nil
}

// Miller cylindrical projection onto a canvas of width 2πR and height πR.
// It holds no mutable state and is safe for concurrent use.
type MillerProjector struct {
	Radius float64
}

func NewMillerProjector(radius float64) (*MillerProjector, error) {
	if math.IsNaN(radius) || math.IsInf(radius, 0) || radius <= 0 {
		return nil, fmt.Errorf("new miller projector: radius %v: %w", radius, ErrInvalidRadius)
	}
	return &MillerProjector{Radius: radius}, nil
}

func DefaultProjector() *MillerProjector {
	return &MillerProjector{Radius: EarthRadius}
}

// Canvas width: the circumference of the sphere.
func (m *MillerProjector) Width() float64 { return m.Radius * math.Pi * 2 }

// Canvas height: half the circumference.
func (m *MillerProjector) Height() float64 { return m.Width() / 2 }

// Canvas position of (0, 0).
func (m *MillerProjector) Center() domain.PlanarPoint {
	return domain.NewPlanarPoint(m.Width()/2, m.Height()/2)
}

// Project applies the forward Miller transform.
// The x term keeps the W/(2π) form so results match the reference formula bit for bit.
func (m *MillerProjector) Project(c domain.GeoCoordinate) (domain.PlanarPoint, error) {
	if math.IsNaN(c.Lon) || math.IsInf(c.Lon, 0) {
		return domain.PlanarPoint{}, fmt.Errorf("project coordinate: longitude %v: %w", c.Lon, ErrInvalidLongitude)
	}
	// NaN fails the range comparison, so it is checked explicitly.
	if math.IsNaN(c.Lat) || math.Abs(c.Lat) >= 90 {
		return domain.PlanarPoint{}, fmt.Errorf("project coordinate: latitude %v: %w", c.Lat, ErrInvalidLatitude)
	}

	w := m.Width()
	h := m.Height()

	xr := c.Lon * math.Pi / 180
	yr := c.Lat * math.Pi / 180
	yr = 1.25 * math.Log(math.Tan(0.25*math.Pi+0.4*yr))

	x := (w / 2) + (w/(2*math.Pi))*xr
	y := (h / 2) - (h/(2*MillerConstant))*yr

	// Latitude is bounded above, so only a huge finite longitude can overflow here.
	pt := domain.NewPlanarPoint(x, y)
	if !pt.IsFinite() {
		return domain.PlanarPoint{}, fmt.Errorf("project coordinate: longitude %v overflows canvas: %w", c.Lon, ErrInvalidLongitude)
	}

	return pt, nil
}

// Unproject applies the inverse Miller transform.
func (m *MillerProjector) Unproject(p domain.PlanarPoint) (domain.GeoCoordinate, error) {
	if !p.IsFinite() {
		return domain.GeoCoordinate{}, fmt.Errorf("unproject point: (%v, %v): %w", p.X, p.Y, ErrInvalidPoint)
	}

	w := m.Width()
	h := m.Height()

	xr := (p.X - w/2) * (2 * math.Pi) / w
	yr := (h/2 - p.Y) * (2 * MillerConstant) / h
	yr = (math.Atan(math.Exp(yr/1.25)) - 0.25*math.Pi) / 0.4

	lon := xr * 180 / math.Pi
	lat := yr * 180 / math.Pi
	if math.IsNaN(lon) || math.IsInf(lon, 0) || math.IsNaN(lat) || math.Abs(lat) >= 90 {
		return domain.GeoCoordinate{}, fmt.Errorf("unproject point: (%v, %v): %w", p.X, p.Y, ErrInvalidPoint)
	}

	return domain.NewGeoCoordinate(lon, lat), nil
}
