package projections

import "fmt"

// ParamNotFiniteError reports a builder parameter that is NaN or infinite.
type ParamNotFiniteError struct {
	Param string
}

func (e *ParamNotFiniteError) Error() string {
	return fmt.Sprintf("projections: parameter %s is not finite", e.Param)
}

// ParamRequiredError reports a required builder parameter that was never set.
type ParamRequiredError struct {
	Param string
}

func (e *ParamRequiredError) Error() string {
	return fmt.Sprintf("projections: parameter %s must be defined", e.Param)
}

// ParamOutOfRangeError reports a longitude or latitude parameter outside its
// canonical interval.
type ParamOutOfRangeError struct {
	Param  string
	Lo, Hi float64
}

func (e *ParamOutOfRangeError) Error() string {
	return fmt.Sprintf("projections: parameter %s is out of required range %v..%v", e.Param, e.Lo, e.Hi)
}

// IncorrectParamsError reports a violated projection-specific structural
// constraint, such as degenerate standard parallels.
type IncorrectParamsError struct {
	Reason string
}

func (e *IncorrectParamsError) Error() string {
	return "projections: incorrect projection parameters: " + e.Reason
}

// ProjectionImpossibleError reports a checked forward transform that
// produced a non-finite result.
type ProjectionImpossibleError struct {
	Lon, Lat float64
}

func (e *ProjectionImpossibleError) Error() string {
	return fmt.Sprintf("projections: projecting lon: %v lat: %v gives a non-finite result", e.Lon, e.Lat)
}

// InverseProjectionImpossibleError reports a checked inverse transform that
// produced a non-finite result.
type InverseProjectionImpossibleError struct {
	X, Y float64
}

func (e *InverseProjectionImpossibleError) Error() string {
	return fmt.Sprintf("projections: inverse projecting x: %v y: %v gives a non-finite result", e.X, e.Y)
}
