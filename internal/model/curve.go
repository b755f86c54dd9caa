package model

import (
	"errors"
	"fmt"
	"strings"
)

// InvalidDegreeErr is returned for curve types or degrees outside the supported polynomials.
var InvalidDegreeErr = errors.New("invalid degree")

// Degree is the highest exponent of the fitted polynomial.
type Degree int

const (
	// NoDegree is an undefined degree
	NoDegree Degree = iota
	// Linear fits y = ax + b
	Linear
	// Quadratic fits y = ax^2 + bx + c
	Quadratic
	// Cubic fits y = ax^3 + bx^2 + cx + d
	Cubic
)

// Valid checks if the degree is one of the supported ones.
func (d Degree) Valid() bool {
	return d >= Linear && d <= Cubic
}

// Coefficients returns the number of unknowns for the degree.
func (d Degree) Coefficients() int {
	return int(d) + 1
}

func (d Degree) String() string {
	for c, degree := range Curves {
		if degree == d {
			return string(c)
		}
	}
	return fmt.Sprintf("degree(%d)", int(d))
}

// CurveType is the user facing selector of the regression model.
type CurveType string

const (
	// NoCurve is an undefined curve type
	NoCurve CurveType = ""
	// LinearCurve selects a degree 1 fit
	LinearCurve CurveType = "linear"
	// QuadraticCurve selects a degree 2 fit
	QuadraticCurve CurveType = "quadratic"
	// CubicCurve selects a degree 3 fit
	CubicCurve CurveType = "cubic"
)

// Curves maps the known curve types to their degree.
var Curves = map[CurveType]Degree{
	LinearCurve:    Linear,
	QuadraticCurve: Quadratic,
	CubicCurve:     Cubic,
}

// KnownCurves returns the supported curve types ordered by degree.
func KnownCurves() []string {
	cc := make([]string, len(Curves))
	for c, d := range Curves {
		cc[int(d)-1] = string(c)
	}
	return cc
}

// ParseCurveType resolves the given selector to a degree.
// Matching is case-insensitive and ignores surrounding whitespace.
func ParseCurveType(s string) (Degree, error) {
	c := CurveType(strings.ToLower(strings.TrimSpace(s)))
	if d, ok := Curves[c]; ok {
		return d, nil
	}
	return NoDegree, fmt.Errorf("unknown curve type '%s': %w", s, InvalidDegreeErr)
}
