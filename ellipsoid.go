package projections

import "math"

// Ellipsoid is an immutable descriptor of a reference ellipsoid shape.
// The fields satisfy B = A*(1-F) and E = sqrt(1-(B/A)^2); a sphere has
// B == A and E == F == 0.
type Ellipsoid struct {
	// A is the semi-major axis in meters.
	A float64

	// B is the semi-minor axis in meters.
	B float64

	// E is the first eccentricity.
	E float64

	// F is the flattening.
	F float64
}

// NewEllipsoid derives an ellipsoid from its semi-major axis (meters) and
// inverse flattening, the pair used by geodetic datum definitions.
func NewEllipsoid(semiMajorAxis, inverseFlattening float64) (Ellipsoid, error) {
	if err := ensureFinite("semiMajorAxis", semiMajorAxis); err != nil {
		return Ellipsoid{}, err
	}
	if err := ensureFinite("inverseFlattening", inverseFlattening); err != nil {
		return Ellipsoid{}, err
	}
	if semiMajorAxis <= 0 {
		return Ellipsoid{}, &IncorrectParamsError{Reason: "semi-major axis must be positive"}
	}
	if inverseFlattening == 0 {
		return Ellipsoid{}, &IncorrectParamsError{Reason: "inverse flattening must be non-zero"}
	}

	a := semiMajorAxis
	b := a - a/inverseFlattening
	return Ellipsoid{
		A: a,
		B: b,
		E: math.Sqrt(1 - (b/a)*(b/a)),
		F: 1 / inverseFlattening,
	}, nil
}

func mustEllipsoid(semiMajorAxis, inverseFlattening float64) Ellipsoid {
	e, err := NewEllipsoid(semiMajorAxis, inverseFlattening)
	if err != nil {
		panic(err)
	}
	return e
}

// Standard datums, derived from their documented semi-major axis and
// inverse flattening.
var (
	WGS84      = mustEllipsoid(6378137.0, 298.257223563)
	GRS80      = mustEllipsoid(6378137.0, 298.257222101)
	WGS72      = mustEllipsoid(6378135.0, 298.26)
	WGS66      = mustEllipsoid(6378145.0, 298.25)
	WGS60      = mustEllipsoid(6378165.0, 298.3)
	GRS67      = mustEllipsoid(6378160.0, 298.2471674270)
	Airy1830   = mustEllipsoid(6377563.396, 299.3249646)
	Clarke1866 = mustEllipsoid(6378206.4, 294.9786982)
)

// Sphere is the authalic sphere used by PROJ's +ellps=sphere; projections
// defined only for the sphere use its radius.
var Sphere = Ellipsoid{A: 6370997.0, B: 6370997.0}
