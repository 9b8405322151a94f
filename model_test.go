package clinicalnets

import (
	"testing"

	deep "github.com/patrikeh/go-deep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBinary(t *testing.T) {
	c, err := NewBinary("diabetes", 8)
	require.NoError(t, err)

	assert.Equal(t, "diabetes", c.Name)
	assert.Equal(t, 8, c.Inputs())
	assert.Equal(t, 1, c.Classes())
	assert.Equal(t, []int{64, 64, 1}, c.Net.Config.Layout)
	assert.Equal(t, deep.ModeBinary, c.Net.Config.Mode)
	assert.Equal(t, deep.LossBinaryCrossEntropy, c.Net.Config.Loss)

	// hidden layers activate with ReLU, the head with a sigmoid
	require.Len(t, c.Net.Layers, 3)
	assert.Equal(t, deep.ActivationReLU, c.Net.Layers[0].A)
	assert.Equal(t, deep.ActivationReLU, c.Net.Layers[1].A)
	assert.Equal(t, deep.ActivationSigmoid, c.Net.Layers[2].A)
}

func TestNewMultiClass(t *testing.T) {
	c, err := NewMultiClass("ctg", 21, 3)
	require.NoError(t, err)

	assert.Equal(t, 21, c.Inputs())
	assert.Equal(t, 3, c.Classes())
	assert.Equal(t, []int{64, 64, 3}, c.Net.Config.Layout)
	assert.Equal(t, deep.ModeMultiClass, c.Net.Config.Mode)
	assert.Equal(t, deep.LossCrossEntropy, c.Net.Config.Loss)
	assert.Equal(t, deep.ActivationSoftmax, c.Net.Layers[2].A)
}

func TestNewRejectsBadArguments(t *testing.T) {
	_, err := NewBinary("", 8)
	assert.Error(t, err)

	_, err = NewBinary("x", 0)
	assert.Error(t, err)

	_, err = NewMultiClass("x", 4, 1)
	assert.Error(t, err)

	_, err = New("x", nil)
	assert.Error(t, err)
}

func TestPredict(t *testing.T) {
	t.Run("binary output is a probability", func(t *testing.T) {
		c, err := NewBinary("diabetes", 8)
		require.NoError(t, err)

		out, err := c.Predict([]float64{0.1, 0.6, 0.35, 0.2, 0.4, 0.32, 0.05, 0.33})
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.GreaterOrEqual(t, out[0], 0.0)
		assert.LessOrEqual(t, out[0], 1.0)
	})

	t.Run("softmax outputs sum to one", func(t *testing.T) {
		c, err := NewMultiClass("ctg", 4, 3)
		require.NoError(t, err)

		out, err := c.Predict([]float64{0.1, 0.5, 0.9, 0.3})
		require.NoError(t, err)
		require.Len(t, out, 3)

		sum := 0.0
		for _, v := range out {
			sum += v
		}
		assert.InDelta(t, 1.0, sum, 1e-9)
	})

	t.Run("wrong input width", func(t *testing.T) {
		c, err := NewBinary("diabetes", 8)
		require.NoError(t, err)

		_, err = c.Predict([]float64{1, 2})
		var sizeErr SizeMismatchError
		require.ErrorAs(t, err, &sizeErr)
		assert.Equal(t, 8, sizeErr.Want)
		assert.Equal(t, 2, sizeErr.Got)
	})
}

func TestPredictBatch(t *testing.T) {
	c, err := NewMultiClass("ctg", 2, 3)
	require.NoError(t, err)

	out, err := c.PredictBatch([][]float64{{0.1, 0.2}, {0.9, 0.8}})
	require.NoError(t, err)
	require.Len(t, out, 2)
	require.Len(t, out[0], 3)

	_, err = c.PredictBatch([][]float64{{0.1}})
	assert.Error(t, err)
}
