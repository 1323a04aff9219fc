// Package orbproj exposes a ports.Projector as orb.Projection funcs so
// Miller coordinates can flow through github.com/paulmach/orb helpers.
package orbproj

import (
	"math"

	"miller-projection-service/internal/domain"
	"miller-projection-service/internal/ports"

	"github.com/paulmach/orb"
)

// orb.Projection cannot report errors; rejected input maps to this point.
var invalid = orb.Point{math.NaN(), math.NaN()}

// ToMiller projects [lon, lat] points to [x, y] canvas points.
// Points the projector rejects come back as {NaN, NaN}.
func ToMiller(p ports.Projector) orb.Projection {
	return func(g orb.Point) orb.Point {
		pt, err := p.Project(domain.GeoCoordinateFromPoint(g))
		if err != nil {
			return invalid
		}
		return pt.Point()
	}
}

// FromMiller is the inverse of ToMiller.
func FromMiller(p ports.Projector) orb.Projection {
	return func(c orb.Point) orb.Point {
		g, err := p.Unproject(domain.PlanarPointFromPoint(c))
		if err != nil {
			return invalid
		}
		return g.Point()
	}
}
