package projections

import (
	"math"

	"github.com/tidwall/geodesic"
)

// AzimuthalEquidistant maps every point so that its distance and azimuth
// from the reference point are both true. Distances and bearings come from
// a full ellipsoidal geodesic solver, which makes this the slowest but most
// accurate member of the azimuthal family: it is exact for any ellipsoid.
type AzimuthalEquidistant struct {
	refLon float64 // degrees, as the solver consumes them
	refLat float64
	geod   *geodesic.Ellipsoid
}

// AzimuthalEquidistantBuilder configures an AzimuthalEquidistant
// projection. The zero value is a valid starting point.
type AzimuthalEquidistantBuilder struct {
	refLon, refLat optParam
	ellps          Ellipsoid
}

// NewAzimuthalEquidistant starts a builder for the projection.
func NewAzimuthalEquidistant() *AzimuthalEquidistantBuilder {
	return &AzimuthalEquidistantBuilder{}
}

// RefLonLat sets the required reference longitude and latitude in degrees.
// Point (0, 0) on the map is placed at these coordinates.
func (b *AzimuthalEquidistantBuilder) RefLonLat(lon, lat float64) *AzimuthalEquidistantBuilder {
	b.refLon.setTo(lon)
	b.refLat.setTo(lat)
	return b
}

// Ellipsoid sets the reference ellipsoid. Defaults to WGS84.
func (b *AzimuthalEquidistantBuilder) Ellipsoid(e Ellipsoid) *AzimuthalEquidistantBuilder {
	b.ellps = e
	return b
}

// Initialize validates the configuration and constructs the geodesic
// solver for the chosen ellipsoid. The returned projection is immutable
// and safe for concurrent use.
func (b *AzimuthalEquidistantBuilder) Initialize() (AzimuthalEquidistant, error) {
	refLon, err := b.refLon.require("refLon")
	if err != nil {
		return AzimuthalEquidistant{}, err
	}
	refLat, err := b.refLat.require("refLat")
	if err != nil {
		return AzimuthalEquidistant{}, err
	}
	ellps := ellipsoidOrDefault(b.ellps)

	if err := ensureFinite("refLon", refLon); err != nil {
		return AzimuthalEquidistant{}, err
	}
	if err := ensureFinite("refLat", refLat); err != nil {
		return AzimuthalEquidistant{}, err
	}
	if err := ensureLon("refLon", refLon); err != nil {
		return AzimuthalEquidistant{}, err
	}
	if err := ensureLat("refLat", refLat); err != nil {
		return AzimuthalEquidistant{}, err
	}

	// The solver is fully defined by the (A, F) pair and is read-only
	// after construction, so sharing the pointer across copies is safe.
	return AzimuthalEquidistant{
		refLon: refLon,
		refLat: refLat,
		geod:   geodesic.NewEllipsoid(ellps.A, ellps.F),
	}, nil
}

// Project implements Projection.
func (p AzimuthalEquidistant) Project(lon, lat float64) (float64, float64, error) {
	return checkedProject(p, lon, lat)
}

// InverseProject implements Projection.
func (p AzimuthalEquidistant) InverseProject(x, y float64) (float64, float64, error) {
	return checkedInverseProject(p, x, y)
}

// ProjectUnchecked implements Projection.
func (p AzimuthalEquidistant) ProjectUnchecked(lon, lat float64) (float64, float64) {
	var s, az float64
	p.geod.Inverse(p.refLat, p.refLon, lat, lon, &s, &az, nil)

	sinAz, cosAz := math.Sincos(az * degToRad)
	return s * sinAz, s * cosAz
}

// InverseProjectUnchecked implements Projection.
func (p AzimuthalEquidistant) InverseProjectUnchecked(x, y float64) (float64, float64) {
	az := math.Atan2(x, y) * radToDeg
	s := math.Hypot(x, y)

	var lat, lon float64
	p.geod.Direct(p.refLat, p.refLon, az, s, &lat, &lon, nil)
	return lon, lat
}

// PipeTo implements Projection.
func (p AzimuthalEquidistant) PipeTo(target Projection) ConversionPipe {
	return NewConversionPipe(p, target)
}
