// Package preprocess holds the feature scaling and label encoding applied
// before training, with gob persistence so fitted transforms can be reused at
// prediction time.
package preprocess

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// ErrNotFitted is returned when Transform is called before Fit.
var ErrNotFitted = errors.New("transform has not been fitted")

// MinMaxScaler maps each feature column onto [0, 1] using the minimum and
// maximum observed during Fit. Fields are exported for gob.
type MinMaxScaler struct {
	Min []float64
	Max []float64
}

// Fit learns the per-column extrema of X.
func (s *MinMaxScaler) Fit(X [][]float64) error {
	if len(X) == 0 {
		return errors.New("Can't fit scaler to an empty matrix")
	}

	k := len(X[0])
	for i := range X {
		if len(X[i]) != k {
			return errors.Errorf("Ragged matrix: row %d has %d values, want %d", i, len(X[i]), k)
		}
	}

	s.Min = make([]float64, k)
	s.Max = make([]float64, k)

	col := make([]float64, len(X))
	for j := 0; j < k; j++ {
		for i := range X {
			col[i] = X[i][j]
		}
		s.Min[j] = floats.Min(col)
		s.Max[j] = floats.Max(col)
	}

	return nil
}

// Transform scales X by the fitted extrema. Values outside the fitted range
// land outside [0, 1]; they are not clamped. Constant columns map to zero.
func (s *MinMaxScaler) Transform(X [][]float64) ([][]float64, error) {
	if len(s.Min) == 0 {
		return nil, ErrNotFitted
	}

	out := make([][]float64, len(X))
	for i, row := range X {
		if len(row) != len(s.Min) {
			return nil, errors.Errorf("Row %d has %d values, scaler was fitted on %d columns", i, len(row), len(s.Min))
		}
		vals := make([]float64, len(row))
		for j, v := range row {
			span := s.Max[j] - s.Min[j]
			if span == 0 {
				span = 1
			}
			vals[j] = (v - s.Min[j]) / span
		}
		out[i] = vals
	}

	return out, nil
}

// FitTransform fits the scaler to X and returns the scaled copy.
func (s *MinMaxScaler) FitTransform(X [][]float64) ([][]float64, error) {
	if err := s.Fit(X); err != nil {
		return nil, err
	}
	return s.Transform(X)
}
