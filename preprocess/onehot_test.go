package preprocess

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOneHotEncoder(t *testing.T) {
	y := []float64{2, 1, 3, 1, 2}

	t.Run("classes are sorted and unique", func(t *testing.T) {
		e := new(OneHotEncoder)
		require.NoError(t, e.Fit(y))
		assert.Equal(t, []float64{1, 2, 3}, e.Classes)
	})

	t.Run("each vector has exactly one set bit", func(t *testing.T) {
		e := new(OneHotEncoder)
		enc, err := e.FitTransform(y)
		require.NoError(t, err)

		assert.Equal(t, [][]float64{
			{0, 1, 0},
			{1, 0, 0},
			{0, 0, 1},
			{1, 0, 0},
			{0, 1, 0},
		}, enc)
	})

	t.Run("decode inverts transform", func(t *testing.T) {
		e := new(OneHotEncoder)
		enc, err := e.FitTransform(y)
		require.NoError(t, err)

		for i, vec := range enc {
			got, err := e.Decode(vec)
			require.NoError(t, err)
			assert.Equal(t, y[i], got)
		}
	})

	t.Run("decode picks the strongest class of soft scores", func(t *testing.T) {
		e := new(OneHotEncoder)
		require.NoError(t, e.Fit(y))

		got, err := e.Decode([]float64{0.1, 0.2, 0.7})
		require.NoError(t, err)
		assert.Equal(t, 3.0, got)
	})

	t.Run("rejects unseen labels", func(t *testing.T) {
		e := new(OneHotEncoder)
		require.NoError(t, e.Fit(y))
		_, err := e.Transform([]float64{4})
		assert.Error(t, err)
	})

	t.Run("requires fitting first", func(t *testing.T) {
		e := new(OneHotEncoder)
		_, err := e.Transform(y)
		assert.ErrorIs(t, err, ErrNotFitted)
		_, err = e.Decode([]float64{1})
		assert.ErrorIs(t, err, ErrNotFitted)
	})

	t.Run("rejects vectors of the wrong width", func(t *testing.T) {
		e := new(OneHotEncoder)
		require.NoError(t, e.Fit(y))
		_, err := e.Decode([]float64{1, 0})
		assert.Error(t, err)
	})
}

func TestEncoderRoundTrip(t *testing.T) {
	e := new(OneHotEncoder)
	require.NoError(t, e.Fit([]float64{1, 2, 3}))

	path := filepath.Join(t.TempDir(), "encoder.gob")
	require.NoError(t, e.Save(path))

	loaded, err := LoadEncoder(path)
	require.NoError(t, err)
	assert.Equal(t, e.Classes, loaded.Classes)
}
