package projections

import "math"

// LambertConformalConic is the conic conformal projection (Snyder, section
// 15): meridians converge on the cone apex and parallels are concentric
// arcs, with true scale along one or two standard parallels. Equal standard
// parallels select the tangent cone; parallels symmetric about the equator
// leave the cone constant undefined and are rejected.
type LambertConformalConic struct {
	lambda0 float64 // reference longitude, radians
	n       float64 // cone constant
	bigF    float64 // scale factor
	rho0    float64 // radius at the reference latitude
	ellps   Ellipsoid
}

// LambertConformalConicBuilder configures a LambertConformalConic
// projection. The zero value is a valid starting point.
type LambertConformalConicBuilder struct {
	refLon, refLat   optParam
	stdPar1, stdPar2 optParam
	ellps            Ellipsoid
}

// NewLambertConformalConic starts a builder for the projection.
func NewLambertConformalConic() *LambertConformalConicBuilder {
	return &LambertConformalConicBuilder{}
}

// RefLonLat sets the required reference longitude and latitude in degrees.
// Point (0, 0) on the map is placed at these coordinates.
func (b *LambertConformalConicBuilder) RefLonLat(lon, lat float64) *LambertConformalConicBuilder {
	b.refLon.setTo(lon)
	b.refLat.setTo(lat)
	return b
}

// StandardParallels sets the required standard parallels in degrees. Equal
// values select the tangent cone.
func (b *LambertConformalConicBuilder) StandardParallels(par1, par2 float64) *LambertConformalConicBuilder {
	b.stdPar1.setTo(par1)
	b.stdPar2.setTo(par2)
	return b
}

// Ellipsoid sets the reference ellipsoid. Defaults to WGS84.
func (b *LambertConformalConicBuilder) Ellipsoid(e Ellipsoid) *LambertConformalConicBuilder {
	b.ellps = e
	return b
}

// Initialize validates the configuration and precomputes the projection
// constants. The returned projection is immutable and safe for concurrent
// use.
func (b *LambertConformalConicBuilder) Initialize() (LambertConformalConic, error) {
	refLon, err := b.refLon.require("refLon")
	if err != nil {
		return LambertConformalConic{}, err
	}
	refLat, err := b.refLat.require("refLat")
	if err != nil {
		return LambertConformalConic{}, err
	}
	stdPar1, err := b.stdPar1.require("stdPar1")
	if err != nil {
		return LambertConformalConic{}, err
	}
	stdPar2, err := b.stdPar2.require("stdPar2")
	if err != nil {
		return LambertConformalConic{}, err
	}
	ellps := ellipsoidOrDefault(b.ellps)

	for _, p := range []struct {
		name  string
		value float64
	}{
		{"refLon", refLon}, {"refLat", refLat},
		{"stdPar1", stdPar1}, {"stdPar2", stdPar2},
	} {
		if err := ensureFinite(p.name, p.value); err != nil {
			return LambertConformalConic{}, err
		}
	}
	if err := ensureLon("refLon", refLon); err != nil {
		return LambertConformalConic{}, err
	}
	if err := ensureLat("refLat", refLat); err != nil {
		return LambertConformalConic{}, err
	}
	if err := ensureLat("stdPar1", stdPar1); err != nil {
		return LambertConformalConic{}, err
	}
	if err := ensureLat("stdPar2", stdPar2); err != nil {
		return LambertConformalConic{}, err
	}

	phi0 := refLat * degToRad
	phi1 := stdPar1 * degToRad
	phi2 := stdPar2 * degToRad

	// Parallels symmetric about the equator make the cone constant
	// vanish: the cone degenerates into a cylinder.
	if math.Abs(phi1+phi2) < epsln {
		return LambertConformalConic{}, &IncorrectParamsError{
			Reason: "standard parallels cannot be symmetric about the equator",
		}
	}

	t0 := tsfn(ellps.E, phi0)
	t1 := tsfn(ellps.E, phi1)
	m1 := msfn(ellps.E, phi1)

	var n float64
	if math.Abs(phi1-phi2) < epsln {
		// Tangent cone with a single standard parallel.
		n = math.Sin(phi1)
	} else {
		t2 := tsfn(ellps.E, phi2)
		m2 := msfn(ellps.E, phi2)
		n = (math.Log(m1) - math.Log(m2)) / (math.Log(t1) - math.Log(t2))
	}

	bigF := m1 / (n * math.Pow(t1, n))
	rho0 := ellps.A * bigF * math.Pow(t0, n)

	return LambertConformalConic{
		lambda0: refLon * degToRad,
		n:       n,
		bigF:    bigF,
		rho0:    rho0,
		ellps:   ellps,
	}, nil
}

// Project implements Projection.
func (p LambertConformalConic) Project(lon, lat float64) (float64, float64, error) {
	return checkedProject(p, lon, lat)
}

// InverseProject implements Projection.
func (p LambertConformalConic) InverseProject(x, y float64) (float64, float64, error) {
	return checkedInverseProject(p, x, y)
}

// ProjectUnchecked implements Projection.
func (p LambertConformalConic) ProjectUnchecked(lon, lat float64) (float64, float64) {
	phi := lat * degToRad
	lambda := lon * degToRad

	t := tsfn(p.ellps.E, phi)
	theta := p.n * (lambda - p.lambda0)
	rho := p.ellps.A * p.bigF * math.Pow(t, p.n)

	x := rho * math.Sin(theta)
	y := p.rho0 - rho*math.Cos(theta)
	return x, y
}

// InverseProjectUnchecked implements Projection.
func (p LambertConformalConic) InverseProjectUnchecked(x, y float64) (float64, float64) {
	rho := sign(p.n) * math.Hypot(x, p.rho0-y)

	// Flip signs for the southern-aspect cone (n < 0) so the angle falls
	// in the right quadrant.
	s := sign(p.n)
	theta := math.Atan2(s*x, s*p.rho0-s*y)

	t := math.Pow(rho/(p.ellps.A*p.bigF), 1/p.n)

	lambda := theta/p.n + p.lambda0
	phi := phiFromTs(p.ellps.E, t)

	return lambda * radToDeg, phi * radToDeg
}

// PipeTo implements Projection.
func (p LambertConformalConic) PipeTo(target Projection) ConversionPipe {
	return NewConversionPipe(p, target)
}

// tsfn is Snyder's auxiliary t(phi), eq. 15-9: the isometric colatitude
// term of the conformal mapping.
func tsfn(e, phi float64) float64 {
	con := e * math.Sin(phi)
	return math.Tan(math.Pi/4-phi/2) / math.Pow((1-con)/(1+con), e/2)
}

// msfn is Snyder's auxiliary m(phi), eq. 14-15.
func msfn(e, phi float64) float64 {
	sinPhi := math.Sin(phi)
	return math.Cos(phi) / math.Sqrt(1-e*e*sinPhi*sinPhi)
}

// phiFromTs recovers the geodetic latitude from t using the truncated
// series of Snyder eq. 3-5 in even powers of the eccentricity up to e^8,
// applied to the conformal latitude chi. The grouping trades repeated
// trigonometric calls of the textbook form for a nested polynomial in
// cos(2*chi).
func phiFromTs(e, t float64) float64 {
	chi := math.Pi/2 - 2*math.Atan(t)

	e2 := e * e
	e4 := e2 * e2
	e6 := e4 * e2
	e8 := e4 * e4

	bigA := e2/2 + 5*e4/24 + e6/12 + 13*e8/360
	bigB := 7*e4/48 + 29*e6/240 + 811*e8/11520
	bigC := 7*e6/120 + 81*e8/1120
	bigD := 4279 * e8 / 161280

	aPrime := bigA - bigC
	bPrime := 2*bigB - 4*bigD
	cPrime := 4 * bigC
	dPrime := 8 * bigD

	sin2Chi, cos2Chi := math.Sincos(2 * chi)

	return chi + sin2Chi*(aPrime+cos2Chi*(bPrime+cos2Chi*(cPrime+dPrime*cos2Chi)))
}
