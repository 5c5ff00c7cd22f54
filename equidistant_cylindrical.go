package projections

import "math"

// EquidistantCylindrical is the equirectangular projection: meridians and
// parallels are equidistant straight lines crossing at right angles, with
// true scale along the standard parallel. It is defined for the sphere
// only; ellipsoidal flattening is ignored. With the reference point and
// standard parallel all zero it degenerates to plain longitude/latitude
// scaling (plate carrée).
type EquidistantCylindrical struct {
	refLon float64 // radians
	refLat float64 // radians
	stdPar float64 // radians

	r          float64 // sphere radius
	rCosStdPar float64
}

// EquidistantCylindricalBuilder configures an EquidistantCylindrical
// projection. The zero value is a valid starting point.
type EquidistantCylindricalBuilder struct {
	refLon, refLat optParam
	stdPar         float64
}

// NewEquidistantCylindrical starts a builder for the projection.
func NewEquidistantCylindrical() *EquidistantCylindricalBuilder {
	return &EquidistantCylindricalBuilder{}
}

// RefLonLat sets the required reference longitude and latitude in degrees.
// Point (0, 0) on the map is placed at these coordinates.
func (b *EquidistantCylindricalBuilder) RefLonLat(lon, lat float64) *EquidistantCylindricalBuilder {
	b.refLon.setTo(lon)
	b.refLat.setTo(lat)
	return b
}

// StandardParallel sets the latitude of true scale in degrees. Defaults
// to 0 (the equator).
func (b *EquidistantCylindricalBuilder) StandardParallel(lat float64) *EquidistantCylindricalBuilder {
	b.stdPar = lat
	return b
}

// Initialize validates the configuration and precomputes the projection
// constants. The returned projection is immutable and safe for concurrent
// use.
func (b *EquidistantCylindricalBuilder) Initialize() (EquidistantCylindrical, error) {
	refLon, err := b.refLon.require("refLon")
	if err != nil {
		return EquidistantCylindrical{}, err
	}
	refLat, err := b.refLat.require("refLat")
	if err != nil {
		return EquidistantCylindrical{}, err
	}
	stdPar := b.stdPar

	for _, p := range []struct {
		name  string
		value float64
	}{
		{"refLon", refLon}, {"refLat", refLat}, {"stdPar", stdPar},
	} {
		if err := ensureFinite(p.name, p.value); err != nil {
			return EquidistantCylindrical{}, err
		}
	}
	if err := ensureLon("refLon", refLon); err != nil {
		return EquidistantCylindrical{}, err
	}
	if err := ensureLat("refLat", refLat); err != nil {
		return EquidistantCylindrical{}, err
	}
	if err := ensureLat("stdPar", stdPar); err != nil {
		return EquidistantCylindrical{}, err
	}

	r := Sphere.A
	return EquidistantCylindrical{
		refLon:     refLon * degToRad,
		refLat:     refLat * degToRad,
		stdPar:     stdPar * degToRad,
		r:          r,
		rCosStdPar: r * math.Cos(stdPar*degToRad),
	}, nil
}

// Project implements Projection.
func (p EquidistantCylindrical) Project(lon, lat float64) (float64, float64, error) {
	return checkedProject(p, lon, lat)
}

// InverseProject implements Projection.
func (p EquidistantCylindrical) InverseProject(x, y float64) (float64, float64, error) {
	return checkedInverseProject(p, x, y)
}

// ProjectUnchecked implements Projection.
func (p EquidistantCylindrical) ProjectUnchecked(lon, lat float64) (float64, float64) {
	x := p.rCosStdPar * (lon*degToRad - p.refLon)
	y := p.r * (lat*degToRad - p.refLat)
	return x, y
}

// InverseProjectUnchecked implements Projection.
func (p EquidistantCylindrical) InverseProjectUnchecked(x, y float64) (float64, float64) {
	lon := x/p.rCosStdPar + p.refLon
	lat := y/p.r + p.refLat
	return lon * radToDeg, lat * radToDeg
}

// PipeTo implements Projection.
func (p EquidistantCylindrical) PipeTo(target Projection) ConversionPipe {
	return NewConversionPipe(p, target)
}
