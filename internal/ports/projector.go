package ports

import "miller-projection-service/internal/domain"

// Contract for mapping geographic coordinates onto a planar map canvas.
type Projector interface {
	// Return the canvas position of a geographic coordinate.
	Project(c domain.GeoCoordinate) (domain.PlanarPoint, error)
	// Return the geographic coordinate that projects to the given canvas position.
	Unproject(p domain.PlanarPoint) (domain.GeoCoordinate, error)
}
