package orbproj

import (
	"errors"
	"math"
	"testing"

	"miller-projection-service/internal/domain"
	"miller-projection-service/internal/services"

	"github.com/paulmach/orb"
)

type stubProjector struct {
	err error
}

func (s stubProjector) Project(c domain.GeoCoordinate) (domain.PlanarPoint, error) {
	return domain.NewPlanarPoint(c.Lon*2, c.Lat*3), s.err
}

func (s stubProjector) Unproject(p domain.PlanarPoint) (domain.GeoCoordinate, error) {
	return domain.NewGeoCoordinate(p.X/2, p.Y/3), s.err
}

func TestToMillerMatchesProjectCoordinate(t *testing.T) {
	proj := ToMiller(services.DefaultProjector())

	got := proj(orb.Point{121.2120, 31.2822})

	x, y, err := services.ProjectCoordinate(121.2120, 31.2822)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != (orb.Point{x, y}) {
		t.Fatalf("ToMiller = %v, want [%v %v]", got, x, y)
	}
}

func TestFromMillerRoundTrip(t *testing.T) {
	m := services.DefaultProjector()
	to, from := ToMiller(m), FromMiller(m)

	in := orb.Point{-73.9857, 40.7484}
	out := from(to(in))

	if math.Abs(out[0]-in[0]) > 1e-9 || math.Abs(out[1]-in[1]) > 1e-9 {
		t.Fatalf("FromMiller(ToMiller(%v)) = %v", in, out)
	}
}

func TestRejectedPointsBecomeNaN(t *testing.T) {
	proj := ToMiller(services.DefaultProjector())

	got := proj(orb.Point{0, 90})
	if !math.IsNaN(got[0]) || !math.IsNaN(got[1]) {
		t.Fatalf("ToMiller([0 90]) = %v, want [NaN NaN]", got)
	}

	inv := FromMiller(stubProjector{err: errors.New("boom")})
	got = inv(orb.Point{1, 1})
	if !math.IsNaN(got[0]) || !math.IsNaN(got[1]) {
		t.Fatalf("FromMiller with failing projector = %v, want [NaN NaN]", got)
	}
}

func TestAdapterPassesOrbOrder(t *testing.T) {
	got := ToMiller(stubProjector{})(orb.Point{1, 10})
	if got != (orb.Point{2, 30}) {
		t.Fatalf("ToMiller(stub) = %v, want [2 30]", got)
	}
}
