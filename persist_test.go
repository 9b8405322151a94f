package clinicalnets

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	c, err := NewMultiClass("ctg", 5, 3)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "model.json")
	require.NoError(t, c.Save(path, false))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "ctg", loaded.Name)
	assert.Equal(t, 5, loaded.Inputs())
	assert.Equal(t, 3, loaded.Classes())

	in := []float64{0.1, 0.2, 0.3, 0.4, 0.5}
	want, err := c.Predict(in)
	require.NoError(t, err)
	got, err := loaded.Predict(in)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSaveRefusesToOverwrite(t *testing.T) {
	c, err := NewBinary("diabetes", 3)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "model.json")
	require.NoError(t, c.Save(path, false))
	assert.Error(t, c.Save(path, false))
	assert.NoError(t, c.Save(path, true))
}

func TestSavedEnvelope(t *testing.T) {
	c, err := NewBinary("diabetes", 3)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "model.json")
	require.NoError(t, c.Save(path, false))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var envelope map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &envelope))
	assert.NotEmpty(t, envelope["id"])
	assert.Equal(t, "diabetes", envelope["name"])
	assert.NotEmpty(t, envelope["created_at"])
	assert.Contains(t, envelope, "dump")
}

func TestLoadRejectsBadFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0644))
	_, err := Load(path)
	assert.Error(t, err)

	empty := filepath.Join(t.TempDir(), "empty.json")
	require.NoError(t, os.WriteFile(empty, []byte("{}"), 0644))
	_, err = Load(empty)
	assert.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
