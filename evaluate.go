package clinicalnets

import (
	deep "github.com/patrikeh/go-deep"
	"github.com/patrikeh/go-deep/training"
	"github.com/pkg/errors"

	"github.com/AlperHuseyn/clinical-nets/metrics"
)

// Evaluate scores the classifier on a labeled set: the mean loss under the
// model's configured loss function, and the accuracy under the judge
// matching its mode (rounding for binary outputs, highest-wins for one-hot
// outputs).
func (c *Classifier) Evaluate(set training.Examples) (loss, accuracy float64, err error) {
	if c == nil || c.Net == nil {
		return 0, 0, NilArgError{"classifier"}
	}
	if len(set) == 0 {
		return 0, 0, ErrEmptyTestSet
	}

	preds := make([][]float64, len(set))
	targets := make([][]float64, len(set))
	for i, e := range set {
		p, err := c.Predict(e.Input)
		if err != nil {
			return 0, 0, err
		}
		preds[i] = p
		targets[i] = e.Response
	}

	loss = metrics.Loss(c.Net.Config.Loss, preds, targets)

	if c.Net.Config.Mode == deep.ModeMultiClass {
		accuracy, err = metrics.CategoricalAccuracy(preds, targets)
	} else {
		accuracy, err = metrics.BinaryAccuracy(preds, targets)
	}

	return loss, accuracy, err
}

// Predict runs one forward pass. The input width must match the network;
// the library would otherwise silently return stale values.
func (c *Classifier) Predict(input []float64) ([]float64, error) {
	if c == nil || c.Net == nil {
		return nil, NilArgError{"classifier"}
	}
	if len(input) != c.Inputs() {
		return nil, SizeMismatchError{What: "input", Got: len(input), Want: c.Inputs()}
	}

	return c.Net.Predict(input), nil
}

// PredictBatch runs Predict over every row of X.
func (c *Classifier) PredictBatch(X [][]float64) ([][]float64, error) {
	out := make([][]float64, len(X))
	for i, row := range X {
		p, err := c.Predict(row)
		if err != nil {
			return nil, errors.Wrapf(err, "Couldn't predict row %d", i)
		}
		out[i] = p
	}
	return out, nil
}
