package clinicalnets

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/patrikeh/go-deep/training"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlperHuseyn/clinical-nets/solvers"
)

// blobs builds a cleanly separable binary problem: inputs for class 0 stay
// in [0.15, 0.35], inputs for class 1 in [0.7, 0.9].
func blobs(n int, rng *rand.Rand) training.Examples {
	set := make(training.Examples, n)
	for i := range set {
		label := float64(i % 2)
		base := 0.15 + 0.55*label
		set[i] = training.Example{
			Input:    []float64{base + 0.2*rng.Float64(), base + 0.2*rng.Float64()},
			Response: []float64{label},
		}
	}
	return set
}

func TestFitLearnsSeparableData(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	set := blobs(120, rng)

	c, err := NewBinary("blobs", 2)
	require.NoError(t, err)

	hist, err := c.Fit(set, FitConfig{
		Epochs: 80,
		Solver: training.NewAdam(0.001, 0, 0, 0),
	})
	require.NoError(t, err)
	require.Equal(t, 80, hist.Len())

	assert.Less(t, hist.Loss[hist.Len()-1], hist.Loss[0])

	_, acc, err := c.Evaluate(set)
	require.NoError(t, err)
	assert.Greater(t, acc, 0.85)
}

func TestFitHistoryShape(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	set := blobs(50, rng)

	c, err := NewBinary("blobs", 2)
	require.NoError(t, err)

	hist, err := c.Fit(set, FitConfig{
		Epochs:          3,
		BatchSize:       16,
		ValidationSplit: 0.2,
		Solver:          solvers.NewRMSProp(0, 0, 0),
	})
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 3}, hist.Epochs)
	assert.Len(t, hist.Loss, 3)
	assert.Len(t, hist.Acc, 3)
	assert.Len(t, hist.ValLoss, 3)
	assert.Len(t, hist.ValAcc, 3)

	for i := range hist.Acc {
		assert.GreaterOrEqual(t, hist.Acc[i], 0.0)
		assert.LessOrEqual(t, hist.Acc[i], 1.0)
		assert.GreaterOrEqual(t, hist.ValAcc[i], 0.0)
		assert.LessOrEqual(t, hist.ValAcc[i], 1.0)
	}
}

func TestFitWithoutValidationSplit(t *testing.T) {
	set := blobs(30, rand.New(rand.NewSource(2)))

	c, err := NewBinary("blobs", 2)
	require.NoError(t, err)

	hist, err := c.Fit(set, FitConfig{
		Epochs: 2,
		Solver: solvers.NewRMSProp(0, 0, 0),
	})
	require.NoError(t, err)
	assert.Empty(t, hist.ValLoss)
	assert.Empty(t, hist.ValAcc)
}

func TestFitPreservesCallerOrder(t *testing.T) {
	set := blobs(40, rand.New(rand.NewSource(3)))
	first := make([]float64, len(set))
	for i := range set {
		first[i] = set[i].Input[0]
	}

	c, err := NewBinary("blobs", 2)
	require.NoError(t, err)

	_, err = c.Fit(set, FitConfig{
		Epochs:          2,
		ValidationSplit: 0.25,
		Solver:          training.NewSGD(0.01, 0, 0, false),
	})
	require.NoError(t, err)

	for i := range set {
		assert.Equal(t, first[i], set[i].Input[0])
	}
}

func TestFitVerboseOutput(t *testing.T) {
	set := blobs(20, rand.New(rand.NewSource(4)))

	c, err := NewBinary("blobs", 2)
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = c.Fit(set, FitConfig{
		Epochs:          2,
		ValidationSplit: 0.2,
		Solver:          training.NewAdam(0, 0, 0, 0),
		Verbose:         true,
		Out:             &buf,
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Epoch 1/2")
	assert.Contains(t, out, "val_loss")
}

func TestFitArgumentErrors(t *testing.T) {
	set := blobs(10, rand.New(rand.NewSource(6)))

	c, err := NewBinary("blobs", 2)
	require.NoError(t, err)

	_, err = c.Fit(nil, FitConfig{Epochs: 1, Solver: solvers.NewRMSProp(0, 0, 0)})
	assert.ErrorIs(t, err, ErrEmptyTrainingSet)

	_, err = c.Fit(set, FitConfig{Epochs: 1})
	assert.Error(t, err)

	_, err = c.Fit(set, FitConfig{Epochs: 0, Solver: solvers.NewRMSProp(0, 0, 0)})
	assert.Error(t, err)

	_, err = c.Fit(set, FitConfig{Epochs: 1, ValidationSplit: 1.0, Solver: solvers.NewRMSProp(0, 0, 0)})
	assert.Error(t, err)

	// every input must match the network's width
	bad := append(training.Examples{}, set...)
	bad[3] = training.Example{Input: []float64{1}, Response: []float64{0}}
	_, err = c.Fit(bad, FitConfig{Epochs: 1, Solver: solvers.NewRMSProp(0, 0, 0)})
	var sizeErr SizeMismatchError
	assert.ErrorAs(t, err, &sizeErr)
}

func TestEvaluateErrors(t *testing.T) {
	c, err := NewBinary("blobs", 2)
	require.NoError(t, err)

	_, _, err = c.Evaluate(nil)
	assert.ErrorIs(t, err, ErrEmptyTestSet)
}
