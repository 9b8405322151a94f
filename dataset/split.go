package dataset

import (
	"math"
	"math/rand"
	"time"

	"github.com/patrikeh/go-deep/training"
	"github.com/pkg/errors"
)

// Examples pairs a feature matrix with multi-output responses, producing the
// training set type the network consumes.
func Examples(X, Y [][]float64) (training.Examples, error) {
	if len(X) != len(Y) {
		return nil, errors.Errorf("Mismatched lengths: %d feature rows, %d responses", len(X), len(Y))
	}

	set := make(training.Examples, len(X))
	for i := range X {
		set[i] = training.Example{Input: X[i], Response: Y[i]}
	}
	return set, nil
}

// BinaryExamples is Examples for a single-output target vector.
func BinaryExamples(X [][]float64, y []float64) (training.Examples, error) {
	if len(X) != len(y) {
		return nil, errors.Errorf("Mismatched lengths: %d feature rows, %d targets", len(X), len(y))
	}

	set := make(training.Examples, len(X))
	for i := range X {
		set[i] = training.Example{Input: X[i], Response: []float64{y[i]}}
	}
	return set, nil
}

// Split shuffles the set and carves off the requested fraction as a held-out
// test set. The test set receives ceil(testFrac*n) examples, so a non-zero
// fraction of a non-empty set is never empty. A nil rng draws a time-seeded
// source. The input set is not reordered.
func Split(set training.Examples, testFrac float64, rng *rand.Rand) (train, test training.Examples, err error) {
	if testFrac < 0 || testFrac >= 1 {
		return nil, nil, errors.Errorf("Test fraction %v is outside [0, 1)", testFrac)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	n := len(set)
	nTest := int(math.Ceil(float64(n) * testFrac))

	train = make(training.Examples, 0, n-nTest)
	test = make(training.Examples, 0, nTest)
	for i, p := range rng.Perm(n) {
		if i < nTest {
			test = append(test, set[p])
		} else {
			train = append(train, set[p])
		}
	}

	return train, test, nil
}
