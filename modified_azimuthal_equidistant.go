package projections

import "math"

// ModifiedAzimuthalEquidistant is the closed-form azimuthal equidistant
// variant Snyder describes for the islands of Micronesia (section 25,
// ellipsoidal form). It replaces the geodesic solution with fixed-degree
// series, trading exactness for speed: results diverge from the true
// geodesic projection as distance from the reference point grows.
type ModifiedAzimuthalEquidistant struct {
	lon0  float64 // radians
	lat0  float64 // radians
	n1    float64 // radius of curvature in the prime vertical at lat0
	g     float64 // eccentricity-weighted sine of lat0
	ellps Ellipsoid
}

// ModifiedAzimuthalEquidistantBuilder configures a
// ModifiedAzimuthalEquidistant projection. The zero value is a valid
// starting point.
type ModifiedAzimuthalEquidistantBuilder struct {
	refLon, refLat optParam
	ellps          Ellipsoid
}

// NewModifiedAzimuthalEquidistant starts a builder for the projection.
func NewModifiedAzimuthalEquidistant() *ModifiedAzimuthalEquidistantBuilder {
	return &ModifiedAzimuthalEquidistantBuilder{}
}

// RefLonLat sets the required reference longitude and latitude in degrees.
// Point (0, 0) on the map is placed at these coordinates.
func (b *ModifiedAzimuthalEquidistantBuilder) RefLonLat(lon, lat float64) *ModifiedAzimuthalEquidistantBuilder {
	b.refLon.setTo(lon)
	b.refLat.setTo(lat)
	return b
}

// Ellipsoid sets the reference ellipsoid. Defaults to WGS84.
func (b *ModifiedAzimuthalEquidistantBuilder) Ellipsoid(e Ellipsoid) *ModifiedAzimuthalEquidistantBuilder {
	b.ellps = e
	return b
}

// Initialize validates the configuration and precomputes the projection
// constants. The returned projection is immutable and safe for concurrent
// use.
func (b *ModifiedAzimuthalEquidistantBuilder) Initialize() (ModifiedAzimuthalEquidistant, error) {
	refLon, err := b.refLon.require("refLon")
	if err != nil {
		return ModifiedAzimuthalEquidistant{}, err
	}
	refLat, err := b.refLat.require("refLat")
	if err != nil {
		return ModifiedAzimuthalEquidistant{}, err
	}
	ellps := ellipsoidOrDefault(b.ellps)

	if err := ensureFinite("refLon", refLon); err != nil {
		return ModifiedAzimuthalEquidistant{}, err
	}
	if err := ensureFinite("refLat", refLat); err != nil {
		return ModifiedAzimuthalEquidistant{}, err
	}
	if err := ensureLon("refLon", refLon); err != nil {
		return ModifiedAzimuthalEquidistant{}, err
	}
	if err := ensureLat("refLat", refLat); err != nil {
		return ModifiedAzimuthalEquidistant{}, err
	}

	lon0 := refLon * degToRad
	lat0 := refLat * degToRad
	e2 := ellps.E * ellps.E
	sinLat0 := math.Sin(lat0)

	return ModifiedAzimuthalEquidistant{
		lon0:  lon0,
		lat0:  lat0,
		n1:    ellps.A / math.Sqrt(1-e2*sinLat0*sinLat0),
		g:     ellps.E * sinLat0 / math.Sqrt(1-e2),
		ellps: ellps,
	}, nil
}

// Project implements Projection.
func (p ModifiedAzimuthalEquidistant) Project(lon, lat float64) (float64, float64, error) {
	return checkedProject(p, lon, lat)
}

// InverseProject implements Projection.
func (p ModifiedAzimuthalEquidistant) InverseProject(x, y float64) (float64, float64, error) {
	return checkedInverseProject(p, x, y)
}

// ProjectUnchecked implements Projection. Snyder eq. 25-9 through 25-15.
func (p ModifiedAzimuthalEquidistant) ProjectUnchecked(lon, lat float64) (float64, float64) {
	lambda := lon * degToRad
	phi := lat * degToRad

	e2 := p.ellps.E * p.ellps.E
	sinPhi, cosPhi := math.Sincos(phi)
	sinLat0, cosLat0 := math.Sincos(p.lat0)
	sinDLam, cosDLam := math.Sincos(lambda - p.lon0)

	n := p.ellps.A / math.Sqrt(1-e2*sinPhi*sinPhi)
	psi := math.Atan((1-e2)*math.Tan(phi) + e2*p.n1*sinLat0/(n*cosPhi))
	sinPsi, cosPsi := math.Sincos(psi)

	az := math.Atan2(sinDLam, cosLat0*math.Tan(psi)-sinLat0*cosDLam)
	sinAz, cosAz := math.Sincos(az)

	// Due north/south of the reference point the azimuth sine vanishes;
	// the arc angle then comes straight from the latitude difference,
	// signed by the azimuth direction, instead of a 0/0 division.
	var s float64
	if math.Abs(sinAz) < epsln {
		s = math.Asin(cosLat0*sinPsi-sinLat0*cosPsi) * sign(cosAz)
	} else {
		s = math.Asin(sinDLam * cosPsi / sinAz)
	}

	g := p.g
	h := p.ellps.E * cosLat0 * cosAz / math.Sqrt(1-e2)
	h2 := h * h

	// 5th-order correction turning the arc angle into the planar radius.
	c := p.n1 * s * (1 -
		s*s*h2*(1-h2)/6 +
		(s*s*s/8)*g*h*(1-2*h2) +
		(s*s*s*s/120)*(h2*(4-7*h2)-3*g*g*(1-7*h2)) -
		(s*s*s*s*s/48)*g*h)

	return c * sinAz, c * cosAz
}

// InverseProjectUnchecked implements Projection. Snyder eq. 25-16 through
// 25-21.
func (p ModifiedAzimuthalEquidistant) InverseProjectUnchecked(x, y float64) (float64, float64) {
	c := math.Hypot(x, y)
	az := math.Atan2(x, y)
	sinAz, cosAz := math.Sincos(az)

	e2 := p.ellps.E * p.ellps.E
	sinLat0, cosLat0 := math.Sincos(p.lat0)

	bigA := -e2 * cosLat0 * cosLat0 * cosAz * cosAz / (1 - e2)
	bigB := 3 * e2 * (1 - bigA) * sinLat0 * cosLat0 * cosAz / (1 - e2)
	bigD := c / p.n1
	bigE := bigD - bigA*(1+bigA)*bigD*bigD*bigD/6 - bigB*(1+3*bigA)*bigD*bigD*bigD*bigD/24
	bigF := 1 - bigA*bigE*bigE/2 - bigB*bigE*bigE*bigE/6

	sinE, cosE := math.Sincos(bigE)
	psi := math.Asin(sinLat0*cosE + cosLat0*sinE*cosAz)

	lambda := p.lon0 + math.Asin(sinAz*sinE/math.Cos(psi))
	phi := math.Atan((1 - e2*bigF*sinLat0/math.Sin(psi)) * math.Tan(psi) / (1 - e2))

	return lambda * radToDeg, phi * radToDeg
}

// PipeTo implements Projection.
func (p ModifiedAzimuthalEquidistant) PipeTo(target Projection) ConversionPipe {
	return NewConversionPipe(p, target)
}
