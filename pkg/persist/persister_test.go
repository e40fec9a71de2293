package persist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	codec := NewYAMLCodec()

	original := testModel{Name: "pump", Concepts: []string{"IMF_Pump"}, Count: 1}

	path, err := Save(dir, "PumpModel", codec, original)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "PumpModel.yaml"), path)

	var decoded testModel

	require.NoError(t, Load(dir, "PumpModel", codec, &decoded))
	assert.Equal(t, original, decoded)
}

func TestSaveAndLoad_Compressed(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	codec := NewLZ4Codec(NewJSONCodec())

	original := testModel{Name: "pump", Count: 2}

	path, err := Save(dir, "PumpModel", codec, original)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "PumpModel.json.lz4"), path)

	var decoded testModel

	require.NoError(t, Load(dir, "PumpModel", codec, &decoded))
	assert.Equal(t, original, decoded)
}

func TestSave_MissingDirectory(t *testing.T) {
	t.Parallel()

	_, err := Save(filepath.Join(t.TempDir(), "nope"), "model", NewJSONCodec(), testModel{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create document file")
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	var decoded testModel

	err := Load(t.TempDir(), "missing", NewJSONCodec(), &decoded)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open document file")
}

func TestLoad_CorruptFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{not json"), 0o600))

	var decoded testModel

	err := Load(dir, "bad", NewJSONCodec(), &decoded)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode document")
}
