package projections

import (
	"github.com/golang/geo/s2"
	"github.com/paulmach/orb"
)

// ProjectLatLng forward-transforms an s2.LatLng through p, for callers that
// keep geographic coordinates in s2's types.
func ProjectLatLng(p Projection, ll s2.LatLng) (orb.Point, error) {
	x, y, err := p.Project(ll.Lng.Degrees(), ll.Lat.Degrees())
	if err != nil {
		return orb.Point{}, err
	}
	return orb.Point{x, y}, nil
}

// InverseProjectLatLng inverse-transforms planar coordinates through p into
// an s2.LatLng.
func InverseProjectLatLng(p Projection, x, y float64) (s2.LatLng, error) {
	lon, lat, err := p.InverseProject(x, y)
	if err != nil {
		return s2.LatLng{}, err
	}
	return s2.LatLngFromDegrees(lat, lon), nil
}
