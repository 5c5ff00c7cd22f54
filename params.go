package projections

// optParam tracks a builder parameter that has no usable zero value, so an
// unset required field can be reported as such instead of defaulting to 0.
type optParam struct {
	value float64
	set   bool
}

func (p *optParam) setTo(v float64) {
	p.value = v
	p.set = true
}

func (p optParam) require(name string) (float64, error) {
	if !p.set {
		return 0, &ParamRequiredError{Param: name}
	}
	return p.value, nil
}

func ensureFinite(name string, v float64) error {
	if !finite(v) {
		return &ParamNotFiniteError{Param: name}
	}
	return nil
}

// Longitude parameters must lie in [-180, 180): +180 is the same meridian
// as -180 and is rejected.
func ensureLon(name string, v float64) error {
	if v < -180 || v >= 180 {
		return &ParamOutOfRangeError{Param: name, Lo: -180, Hi: 180}
	}
	return nil
}

// Latitude parameters must lie in [-90, 90).
func ensureLat(name string, v float64) error {
	if v < -90 || v >= 90 {
		return &ParamOutOfRangeError{Param: name, Lo: -90, Hi: 90}
	}
	return nil
}

// ellipsoidOrDefault resolves the optional builder ellipsoid: the zero value
// means the caller never set one and WGS84 applies.
func ellipsoidOrDefault(e Ellipsoid) Ellipsoid {
	if e == (Ellipsoid{}) {
		return WGS84
	}
	return e
}
