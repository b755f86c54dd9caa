package math

import (
	"fmt"

	"github.com/drakos74/curve-fit/internal/model"
	"gonum.org/v1/gonum/stat"
)

// Evaluate evaluates the polynomial at x.
// The coefficients are expected from the highest power down to the constant.
func Evaluate(coefficients []float64, x float64) float64 {
	y := 0.
	for _, c := range coefficients {
		y = y*x + c
	}
	return y
}

// RSquared returns the coefficient of determination of the polynomial on the given samples.
// Without any variance in y it is 1 for an exact fit and 0 otherwise.
func RSquared(samples []model.Sample, coefficients []float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	estimates := make([]float64, len(samples))
	values := make([]float64, len(samples))
	flat := true
	for i, s := range samples {
		estimates[i] = Evaluate(coefficients, s.X)
		values[i] = s.Y
		flat = flat && s.Y == samples[0].Y
	}
	if flat {
		for i := range values {
			if estimates[i] != values[i] {
				return 0
			}
		}
		return 1
	}
	return stat.RSquaredFrom(estimates, values, nil)
}

// NewFit fits the samples and packs the result together with its equation.
func NewFit(samples []model.Sample, degree model.Degree) (model.FitResult, error) {
	c, err := Fit(samples, degree)
	if err != nil {
		return model.FitResult{}, fmt.Errorf("could not create fit: %w", err)
	}
	return model.FitResult{
		Degree:       degree,
		Coefficients: c,
		Equation:     Equation(c),
		RSquared:     RSquared(samples, c),
	}, nil
}
