package domain

import "github.com/paulmach/orb"

// Position on the flattened map canvas. The origin is the top-left corner,
// so north maps to smaller Y.
type PlanarPoint struct {
	X float64
	Y float64
}

func NewPlanarPoint(x, y float64) PlanarPoint {
	return PlanarPoint{X: x, Y: y}
}

func PlanarPointFromPoint(p orb.Point) PlanarPoint {
	return PlanarPoint{X: p.X(), Y: p.Y()}
}

// Return the point as the two-element pair [x, y].
func (p PlanarPoint) Point() orb.Point { return orb.Point{p.X, p.Y} }

func (p PlanarPoint) IsFinite() bool { return isFinite(p.X) && isFinite(p.Y) }
