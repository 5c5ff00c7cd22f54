package projections

import "math"

// ObliqueLonLat rotates the spherical graticule so that the given pole
// becomes the north pole of the coordinate system (Snyder formulas 5-7,
// 5-8b forward and 5-9, 5-10b inverse). Unlike the other projections in the
// catalogue its output is in degrees on the rotated graticule, not meters,
// and it does not depend on an ellipsoid.
type ObliqueLonLat struct {
	lambdaP float64 // rotated-pole longitude, radians
	sinPhiP float64
	cosPhiP float64
	lon0    float64 // central longitude, degrees
}

// ObliqueLonLatBuilder configures an ObliqueLonLat projection. The zero
// value is a valid starting point.
type ObliqueLonLatBuilder struct {
	poleLon, poleLat optParam
	centralLon       float64
}

// NewObliqueLonLat starts a builder for the projection.
func NewObliqueLonLat() *ObliqueLonLatBuilder {
	return &ObliqueLonLatBuilder{}
}

// PoleLonLat sets the required longitude and latitude of the rotated pole
// in degrees.
func (b *ObliqueLonLatBuilder) PoleLonLat(lon, lat float64) *ObliqueLonLatBuilder {
	b.poleLon.setTo(lon)
	b.poleLat.setTo(lat)
	return b
}

// CentralLon sets the central meridian longitude in degrees. Defaults to 0.
func (b *ObliqueLonLatBuilder) CentralLon(lon float64) *ObliqueLonLatBuilder {
	b.centralLon = lon
	return b
}

// Initialize validates the configuration and precomputes the projection
// constants. The returned projection is immutable and safe for concurrent
// use.
func (b *ObliqueLonLatBuilder) Initialize() (ObliqueLonLat, error) {
	poleLon, err := b.poleLon.require("poleLon")
	if err != nil {
		return ObliqueLonLat{}, err
	}
	poleLat, err := b.poleLat.require("poleLat")
	if err != nil {
		return ObliqueLonLat{}, err
	}
	centralLon := b.centralLon

	for _, p := range []struct {
		name  string
		value float64
	}{
		{"poleLon", poleLon}, {"poleLat", poleLat}, {"centralLon", centralLon},
	} {
		if err := ensureFinite(p.name, p.value); err != nil {
			return ObliqueLonLat{}, err
		}
	}
	if err := ensureLon("poleLon", poleLon); err != nil {
		return ObliqueLonLat{}, err
	}
	if err := ensureLat("poleLat", poleLat); err != nil {
		return ObliqueLonLat{}, err
	}
	if err := ensureLon("centralLon", centralLon); err != nil {
		return ObliqueLonLat{}, err
	}

	phiP := poleLat * degToRad
	return ObliqueLonLat{
		lambdaP: poleLon * degToRad,
		sinPhiP: math.Sin(phiP),
		cosPhiP: math.Cos(phiP),
		lon0:    centralLon,
	}, nil
}

// Project implements Projection.
func (p ObliqueLonLat) Project(lon, lat float64) (float64, float64, error) {
	return checkedProject(p, lon, lat)
}

// InverseProject implements Projection.
func (p ObliqueLonLat) InverseProject(x, y float64) (float64, float64, error) {
	return checkedInverseProject(p, x, y)
}

// ProjectUnchecked implements Projection.
func (p ObliqueLonLat) ProjectUnchecked(lon, lat float64) (float64, float64) {
	lambda := (lon - p.lon0) * degToRad
	phi := lat * degToRad

	sinLambda, cosLambda := math.Sincos(lambda)
	sinPhi, cosPhi := math.Sincos(phi)

	lambdaPrime := math.Atan2(cosPhi*sinLambda, p.sinPhiP*cosPhi*cosLambda+p.cosPhiP*sinPhi) + p.lambdaP
	phiPrime := math.Asin(p.sinPhiP*sinPhi - p.cosPhiP*cosPhi*cosLambda)

	return adjustLon(lambdaPrime * radToDeg), phiPrime * radToDeg
}

// InverseProjectUnchecked implements Projection.
func (p ObliqueLonLat) InverseProjectUnchecked(x, y float64) (float64, float64) {
	lambdaPrime := x*degToRad - p.lambdaP
	phiPrime := y * degToRad

	sinLambdaPrime, cosLambdaPrime := math.Sincos(lambdaPrime)
	sinPhiPrime, cosPhiPrime := math.Sincos(phiPrime)

	lambda := math.Atan2(cosPhiPrime*sinLambdaPrime, p.sinPhiP*cosPhiPrime*cosLambdaPrime-p.cosPhiP*sinPhiPrime)
	phi := math.Asin(p.sinPhiP*sinPhiPrime + p.cosPhiP*cosPhiPrime*cosLambdaPrime)

	return adjustLon(lambda*radToDeg + p.lon0), phi * radToDeg
}

// PipeTo implements Projection.
func (p ObliqueLonLat) PipeTo(target Projection) ConversionPipe {
	return NewConversionPipe(p, target)
}
