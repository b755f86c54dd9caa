package math

import (
	"errors"
	"fmt"

	"github.com/drakos74/curve-fit/internal/model"
	"gonum.org/v1/gonum/mat"
)

var (
	// InvalidDegreeErr is returned when the requested degree is not supported.
	InvalidDegreeErr = model.InvalidDegreeErr
	// InsufficientDataErr is returned when there are fewer samples than unknown coefficients.
	InsufficientDataErr = errors.New("insufficient data")
	// SingularSystemErr is returned when the samples do not define a unique polynomial.
	SingularSystemErr = errors.New("singular system")
)

// PowerSums holds the aggregates of the samples needed for the normal equations.
// S[k] = Σ x^k for k = 0..2d and T[k] = Σ y*x^k for k = 0..d.
type PowerSums struct {
	S []float64
	T []float64
}

// NewPowerSums accumulates the power sums for the given degree.
// Every power is computed per sample, higher sums are never derived from lower ones.
func NewPowerSums(samples []model.Sample, degree model.Degree) PowerSums {
	d := int(degree)
	sums := PowerSums{
		S: make([]float64, 2*d+1),
		T: make([]float64, d+1),
	}
	for _, s := range samples {
		p := 1.
		for k := 0; k <= 2*d; k++ {
			sums.S[k] += p
			if k <= d {
				sums.T[k] += s.Y * p
			}
			p *= s.X
		}
	}
	return sums
}

// NormalEquations is the square system M·a = b of a least squares polynomial fit.
type NormalEquations struct {
	Matrix *mat.SymDense
	Vector *mat.VecDense
}

// NewNormalEquations builds the system for the given power sums.
// M[r][c] = S[r+c] and b[r] = T[r].
func NewNormalEquations(sums PowerSums) NormalEquations {
	n := len(sums.T)
	m := mat.NewSymDense(n, nil)
	for r := 0; r < n; r++ {
		for c := r; c < n; c++ {
			m.SetSym(r, c, sums.S[r+c])
		}
	}
	b := mat.NewVecDense(n, append([]float64(nil), sums.T...))
	return NormalEquations{
		Matrix: m,
		Vector: b,
	}
}

// Solve solves the system for the polynomial coefficients.
// The result is ordered from the constant term up to the highest degree.
func (eq NormalEquations) Solve() ([]float64, error) {
	n := eq.Vector.Len()

	lu := new(mat.LU)
	lu.Factorize(eq.Matrix)

	a := mat.NewVecDense(n, nil)
	err := lu.SolveVecTo(a, false, eq.Vector)
	if err != nil {
		var cond mat.Condition
		if errors.As(err, &cond) {
			return nil, fmt.Errorf("condition number %g: %w", float64(cond), SingularSystemErr)
		}
		return nil, fmt.Errorf("could not solve normal equations: %w", err)
	}

	coefficients := make([]float64, n)
	for i := 0; i < n; i++ {
		coefficients[i] = a.AtVec(i)
	}
	return coefficients, nil
}

// Fit fits the samples into a polynomial of the given degree with least squares.
// The output holds the coefficients from the highest power of x down to the constant,
// c[0]x^d + c[1]x^(d-1) + ... + c[d]
func Fit(samples []model.Sample, degree model.Degree) ([]float64, error) {
	if !degree.Valid() {
		return nil, fmt.Errorf("degree %d: %w", int(degree), InvalidDegreeErr)
	}
	n := degree.Coefficients()
	if len(samples) < n {
		return nil, fmt.Errorf("%d samples for %d coefficients: %w", len(samples), n, InsufficientDataErr)
	}
	if distinct := distinctX(samples); distinct < n {
		return nil, fmt.Errorf("%d distinct x values for %d coefficients: %w", distinct, n, SingularSystemErr)
	}

	c, err := NewNormalEquations(NewPowerSums(samples, degree)).Solve()
	if err != nil {
		return nil, fmt.Errorf("could not fit %s curve: %w", degree, err)
	}
	return reverse(c), nil
}

func distinctX(samples []model.Sample) int {
	xx := make(map[float64]struct{}, len(samples))
	for _, s := range samples {
		xx[s.X] = struct{}{}
	}
	return len(xx)
}

func reverse(ff []float64) []float64 {
	rr := make([]float64, len(ff))
	for i, f := range ff {
		rr[len(ff)-1-i] = f
	}
	return rr
}
