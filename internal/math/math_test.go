package math

import (
	"errors"
	"math"
	"testing"

	"github.com/drakos74/curve-fit/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {

	type test struct {
		input  float64
		output string
	}

	tests := map[string]test{
		"0": {
			input:  0,
			output: "0",
		},
		"-1": {
			input:  -1,
			output: "-1",
		},
		"+1": {
			input:  1,
			output: "1",
		},
		"fraction": {
			input:  1.5555,
			output: "1.5555",
		},
		"third": {
			input:  1. / 3,
			output: "0.3333333333333333",
		},
		"large": {
			input:  1e21,
			output: "1e+21",
		},
		"small": {
			input:  -2.5e-7,
			output: "-2.5e-07",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s := Format(tt.input)
			assert.Equal(t, tt.output, s)
		})
	}

}

func TestEquation(t *testing.T) {

	type test struct {
		input  []float64
		output string
	}

	tests := map[string]test{
		"linear": {
			input:  []float64{2, -3},
			output: "y = 2x + -3",
		},
		"linear-zero": {
			input:  []float64{1, 0},
			output: "y = 1x + 0",
		},
		"quadratic": {
			input:  []float64{1, 0, 0},
			output: "y = 1x^2 + 0x + 0",
		},
		"quadratic-fractions": {
			input:  []float64{0.5, -1.25, 3},
			output: "y = 0.5x^2 + -1.25x + 3",
		},
		"cubic": {
			input:  []float64{1, 0, -1, 0},
			output: "y = 1x^3 + 0x^2 + -1x + 0",
		},
		"constant": {
			input:  []float64{4},
			output: "y = 4",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s := Equation(tt.input)
			assert.Equal(t, tt.output, s)
		})
	}
}

func TestEvaluate(t *testing.T) {
	// x^3 - x
	c := []float64{1, 0, -1, 0}
	for _, s := range samples(-2, -6, -1, 0, 0, 0, 1, 0, 2, 6, 3, 24) {
		assert.Equal(t, s.Y, Evaluate(c, s.X))
	}
	assert.Equal(t, 0., Evaluate(nil, 3))
}

func TestRSquared(t *testing.T) {

	type test struct {
		samples      []model.Sample
		coefficients []float64
		r2           float64
	}

	tests := map[string]test{
		"exact": {
			samples:      samples(0, 1, 1, 3, 2, 5),
			coefficients: []float64{2, 1},
			r2:           1,
		},
		"mean-only": {
			samples:      samples(0, 1, 1, 3, 2, 5),
			coefficients: []float64{0, 3},
			r2:           0,
		},
		"flat-exact": {
			samples:      samples(0, 2, 1, 2, 2, 2),
			coefficients: []float64{0, 2},
			r2:           1,
		},
		"flat-off": {
			samples:      samples(0, 2, 1, 2, 2, 2),
			coefficients: []float64{1, 2},
			r2:           0,
		},
		"empty": {
			r2: 0,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			r2 := RSquared(tt.samples, tt.coefficients)
			assert.False(t, math.IsNaN(r2))
			assert.InDelta(t, tt.r2, r2, tolerance)
		})
	}
}

func TestNewFit(t *testing.T) {
	fit, err := NewFit(samples(-2, -6, -1, 0, 0, 0, 1, 0, 2, 6), model.Cubic)
	require.NoError(t, err)

	assert.Equal(t, model.Cubic, fit.Degree)
	assert.Equal(t, 4, len(fit.Coefficients))
	assert.Equal(t, Equation(fit.Coefficients), fit.Equation)
	assert.InDelta(t, 1, fit.RSquared, tolerance)
	assert.False(t, fit.Empty())

	fit, err = NewFit(samples(5, 1, 5, 2, 5, 3), model.Linear)
	assert.True(t, errors.Is(err, SingularSystemErr))
	assert.True(t, fit.Empty())
}
