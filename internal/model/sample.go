package model

// Sample is a single observation to fit against.
type Sample struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// NewSamples zips the given coordinates into samples.
// Any trailing values of the longer slice are ignored.
func NewSamples(x, y []float64) []Sample {
	n := len(x)
	if len(y) < n {
		n = len(y)
	}
	samples := make([]Sample, n)
	for i := 0; i < n; i++ {
		samples[i] = Sample{X: x[i], Y: y[i]}
	}
	return samples
}

// Row is the storage shape of a fitted sample.
// Curve type and equation are repeated for every sample of the same fit.
type Row struct {
	X              float64 `json:"x"`
	Y              float64 `json:"y"`
	CurveType      string  `json:"curveType"`
	FittedEquation string  `json:"fittedEquation"`
}

// NewRows denormalizes a fit into one row per sample.
func NewRows(samples []Sample, curveType, equation string) []Row {
	rows := make([]Row, len(samples))
	for i, s := range samples {
		rows[i] = Row{
			X:              s.X,
			Y:              s.Y,
			CurveType:      curveType,
			FittedEquation: equation,
		}
	}
	return rows
}
