// Package projections provides forward and inverse transforms between
// geographic coordinates (longitude/latitude on a reference ellipsoid, in
// degrees) and planar cartographic coordinates (in meters) for a catalogue
// of named map projections. The implementations follow the algorithms in
// Snyder's "Map Projections: A Working Manual" (USGS, 1987).
//
// A projection is configured and validated once through its builder, which
// precomputes the expensive trigonometric constants; the resulting value is
// immutable and safe for concurrent use from any number of goroutines.
package projections

import "math"

const (
	degToRad = math.Pi / 180
	radToDeg = 180 / math.Pi

	// epsln is the tolerance used for structural parameter checks, such as
	// detecting a tangent cone or standard parallels symmetric about the
	// equator.
	epsln = 1e-10
)

// Projection is the capability contract implemented by every projection in
// this package.
//
// Project and InverseProject validate that the computed coordinates are
// finite. The unchecked variants skip that validation and may return
// non-finite values for out-of-domain input; checking is then the caller's
// responsibility.
//
// Longitude and latitude are always in degrees. Planar x/y are in meters
// for every projection except ObliqueLonLat, which produces degrees on the
// rotated graticule.
type Projection interface {
	// Project transforms geographic coordinates to planar coordinates.
	Project(lon, lat float64) (x, y float64, err error)

	// InverseProject transforms planar coordinates back to geographic
	// coordinates.
	InverseProject(x, y float64) (lon, lat float64, err error)

	// ProjectUnchecked is Project without the finiteness check.
	ProjectUnchecked(lon, lat float64) (x, y float64)

	// InverseProjectUnchecked is InverseProject without the finiteness check.
	InverseProjectUnchecked(x, y float64) (lon, lat float64)

	// PipeTo builds a ConversionPipe from this projection to target.
	PipeTo(target Projection) ConversionPipe
}

// checkedProject wraps an unchecked forward transform with the finiteness
// rule shared by all projections.
func checkedProject(p Projection, lon, lat float64) (float64, float64, error) {
	x, y := p.ProjectUnchecked(lon, lat)
	if !finite(x) || !finite(y) {
		return 0, 0, &ProjectionImpossibleError{Lon: lon, Lat: lat}
	}
	return x, y, nil
}

// checkedInverseProject wraps an unchecked inverse transform with the
// finiteness rule shared by all projections.
func checkedInverseProject(p Projection, x, y float64) (float64, float64, error) {
	lon, lat := p.InverseProjectUnchecked(x, y)
	if !finite(lon) || !finite(lat) {
		return 0, 0, &InverseProjectionImpossibleError{X: x, Y: y}
	}
	return lon, lat, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}

// adjustLon wraps a degree-valued longitude into (-180, 180], stepping by a
// single turn. Inputs are never more than one turn out of range here.
func adjustLon(lon float64) float64 {
	if lon > 180 {
		return lon - 360
	}
	if lon < -180 {
		return lon + 360
	}
	return lon
}
