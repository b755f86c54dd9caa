package math

import "github.com/drakos74/curve-fit/internal/model"

// Series creates limit equally spaced values starting at start.
func Series(start, step float64, limit int) []float64 {
	xx := make([]float64, limit)
	for i := 0; i < limit; i++ {
		xx[i] = start + step*float64(i)
	}
	return xx
}

// Polynomial samples the polynomial with the given coefficients at xx.
func Polynomial(coefficients []float64, xx []float64) []model.Sample {
	samples := make([]model.Sample, len(xx))
	for i, x := range xx {
		samples[i] = model.Sample{
			X: x,
			Y: Evaluate(coefficients, x),
		}
	}
	return samples
}
