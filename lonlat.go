package projections

// LongitudeLatitude is the identity projection: planar coordinates are the
// geographic coordinates themselves. It is the neutral element that lets a
// ConversionPipe bridge raw geographic coordinates with any other
// projection without a special case.
type LongitudeLatitude struct{}

// Project implements Projection.
func (p LongitudeLatitude) Project(lon, lat float64) (float64, float64, error) {
	return checkedProject(p, lon, lat)
}

// InverseProject implements Projection.
func (p LongitudeLatitude) InverseProject(x, y float64) (float64, float64, error) {
	return checkedInverseProject(p, x, y)
}

// ProjectUnchecked implements Projection.
func (p LongitudeLatitude) ProjectUnchecked(lon, lat float64) (float64, float64) {
	return lon, lat
}

// InverseProjectUnchecked implements Projection.
func (p LongitudeLatitude) InverseProjectUnchecked(x, y float64) (float64, float64) {
	return x, y
}

// PipeTo implements Projection.
func (p LongitudeLatitude) PipeTo(target Projection) ConversionPipe {
	return NewConversionPipe(p, target)
}
