package model

// FitResult is the outcome of a single fit.
type FitResult struct {
	Degree Degree `json:"degree"`
	// Coefficients are ordered from the highest degree term down to the constant.
	Coefficients []float64 `json:"coefficients"`
	Equation     string    `json:"equation"`
	// RSquared is the coefficient of determination of the fit against its own samples.
	RSquared float64 `json:"rSquared"`
}

// Empty checks if the result carries no fit at all.
func (r FitResult) Empty() bool {
	return r.Degree == NoDegree && len(r.Coefficients) == 0
}
