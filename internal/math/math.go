package math

import (
	"fmt"
	"strconv"
	"strings"
)

// Format formats a float with the shortest representation that parses back to the same value.
func Format(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// Equation renders the coefficients as y = c_d x^d + ... + c_1 x + c_0.
// The coefficients are expected from the highest power down to the constant.
// All terms are printed as they are, zero or negative ones included.
func Equation(coefficients []float64) string {
	d := len(coefficients) - 1
	terms := make([]string, len(coefficients))
	for i, c := range coefficients {
		terms[i] = term(c, d-i)
	}
	return fmt.Sprintf("y = %s", strings.Join(terms, " + "))
}

func term(c float64, power int) string {
	switch power {
	case 0:
		return Format(c)
	case 1:
		return fmt.Sprintf("%sx", Format(c))
	default:
		return fmt.Sprintf("%sx^%d", Format(c), power)
	}
}
