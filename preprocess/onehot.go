package preprocess

import (
	"sort"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// OneHotEncoder turns categorical labels into binary vectors with a single
// set bit. Classes holds the sorted distinct label values seen during Fit.
type OneHotEncoder struct {
	Classes []float64
}

// Fit learns the distinct label values of y.
func (e *OneHotEncoder) Fit(y []float64) error {
	if len(y) == 0 {
		return errors.New("Can't fit encoder to an empty label vector")
	}

	uniq := make(map[float64]bool, len(y))
	for _, v := range y {
		uniq[v] = true
	}

	e.Classes = make([]float64, 0, len(uniq))
	for v := range uniq {
		e.Classes = append(e.Classes, v)
	}
	sort.Float64s(e.Classes)

	return nil
}

// Transform encodes each label as a vector with a single 1 at its class
// index. Labels unseen during Fit are an error.
func (e *OneHotEncoder) Transform(y []float64) ([][]float64, error) {
	if len(e.Classes) == 0 {
		return nil, ErrNotFitted
	}

	out := make([][]float64, len(y))
	for i, v := range y {
		j := e.index(v)
		if j < 0 {
			return nil, errors.Errorf("Label %v was not seen during fitting", v)
		}
		vec := make([]float64, len(e.Classes))
		vec[j] = 1
		out[i] = vec
	}

	return out, nil
}

// FitTransform fits the encoder to y and returns the encoded copy.
func (e *OneHotEncoder) FitTransform(y []float64) ([][]float64, error) {
	if err := e.Fit(y); err != nil {
		return nil, err
	}
	return e.Transform(y)
}

// Decode maps a score vector back to the label of its strongest class.
func (e *OneHotEncoder) Decode(vec []float64) (float64, error) {
	if len(e.Classes) == 0 {
		return 0, ErrNotFitted
	}
	if len(vec) != len(e.Classes) {
		return 0, errors.Errorf("Vector has %d entries, encoder has %d classes", len(vec), len(e.Classes))
	}
	return e.Classes[floats.MaxIdx(vec)], nil
}

func (e *OneHotEncoder) index(v float64) int {
	for j, c := range e.Classes {
		if c == v {
			return j
		}
	}
	return -1
}
