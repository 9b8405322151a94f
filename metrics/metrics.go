// Package metrics judges classifier output against known targets.
package metrics

import (
	"math"

	deep "github.com/patrikeh/go-deep"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// CorrectRound reports whether every output agrees with its target after
// rounding at 0.5. Assumes len(outs) == len(targets).
func CorrectRound(outs, targets []float64) bool {
	for i := range outs {
		if math.Round(outs[i]) != targets[i] {
			return false
		}
	}
	return true
}

// CorrectHighest reports whether the largest output and the largest target
// sit at the same index. Ties break toward the earlier index.
func CorrectHighest(outs, targets []float64) bool {
	return floats.MaxIdx(outs) == floats.MaxIdx(targets)
}

// Accuracy is the fraction of prediction/target pairs the judge accepts.
func Accuracy(preds, targets [][]float64, correct func(outs, targets []float64) bool) (float64, error) {
	if len(preds) != len(targets) {
		return 0, errors.Errorf("Mismatched lengths: %d predictions, %d targets", len(preds), len(targets))
	}
	if len(preds) == 0 {
		return 0, errors.New("Can't score an empty prediction set")
	}

	hits := 0
	for i := range preds {
		if correct(preds[i], targets[i]) {
			hits++
		}
	}
	return float64(hits) / float64(len(preds)), nil
}

// BinaryAccuracy scores single-probability outputs against 0/1 targets.
func BinaryAccuracy(preds, targets [][]float64) (float64, error) {
	return Accuracy(preds, targets, CorrectRound)
}

// CategoricalAccuracy scores score vectors against one-hot targets.
func CategoricalAccuracy(preds, targets [][]float64) (float64, error) {
	return Accuracy(preds, targets, CorrectHighest)
}

// Loss computes the mean of the named loss over a prediction set, using the
// library's loss registry.
func Loss(lt deep.LossType, preds, targets [][]float64) float64 {
	return deep.GetLoss(lt).F(preds, targets)
}
