package projections

// ConversionPipe converts coordinates between two projections by bridging
// through geographic coordinates: the source's inverse transform followed
// by the target's forward transform. It replaces dedicated pairwise
// conversion routines, at the price of accumulating the floating-point and
// projection error of both transforms. Long conversion chains compound
// that error.
//
// Both sides are already-constructed projection values, so a pipe is a pure
// composition wrapper with no state of its own.
type ConversionPipe struct {
	source Projection
	target Projection
}

// NewConversionPipe builds a pipe from source to target. No transform is
// performed.
func NewConversionPipe(source, target Projection) ConversionPipe {
	return ConversionPipe{source: source, target: target}
}

// Convert transforms planar coordinates of the source projection into
// planar coordinates of the target projection. A source inverse failure is
// reported before a target forward failure; no partial result is returned.
func (c ConversionPipe) Convert(x, y float64) (float64, float64, error) {
	lon, lat, err := c.source.InverseProject(x, y)
	if err != nil {
		return 0, 0, err
	}
	return c.target.Project(lon, lat)
}

// ConvertUnchecked is Convert on the unchecked transforms: non-finite
// intermediate values propagate instead of failing.
func (c ConversionPipe) ConvertUnchecked(x, y float64) (float64, float64) {
	lon, lat := c.source.InverseProjectUnchecked(x, y)
	return c.target.ProjectUnchecked(lon, lat)
}

// Invert returns the pipe running in the opposite direction.
func (c ConversionPipe) Invert() ConversionPipe {
	return ConversionPipe{source: c.target, target: c.source}
}
