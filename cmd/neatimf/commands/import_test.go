package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cognitedata/neat-imf-importer/pkg/datamodel"
	"github.com/cognitedata/neat-imf-importer/pkg/importers/imf"
	"github.com/cognitedata/neat-imf-importer/pkg/persist"
)

// The IMF importer must expose triple and issue stats to the summary table.
var _ importStats = (*imf.Importer)(nil)

const commandFixture = `
@prefix imf: <http://ns.imfid.org/imf#> .
@prefix sh: <http://www.w3.org/ns/shacl#> .
@prefix rdfs: <http://www.w3.org/2000/01/rdf-schema#> .
@prefix xsd: <http://www.w3.org/2001/XMLSchema#> .
@prefix ex: <http://example.com/types#> .

ex:Pump a imf:BlockType ;
    rdfs:subClassOf ex:Equipment ;
    rdfs:label "Pump"@en ;
    sh:property ex:PumpShape .

ex:PumpShape sh:path ex:weight ;
    sh:class xsd:float .
`

func fixtureFile(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "types.ttl")
	require.NoError(t, os.WriteFile(path, []byte(commandFixture), 0o600))

	return path
}

func TestImportCommand_Flags(t *testing.T) {
	t.Parallel()

	cmd := NewImportCommand()

	for _, name := range []string{
		"config", "importer", "language", "space", "external-id",
		"model-version", "format", "output-dir", "compress", "raw-ids",
	} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "flag %s", name)
	}
}

func TestImportCommand_WritesYAMLModel(t *testing.T) {
	outputDir := t.TempDir()

	cmd := NewImportCommand()
	cmd.SetArgs([]string{fixtureFile(t), "-o", outputDir})

	require.NoError(t, cmd.Execute())

	var model datamodel.ConceptualDataModel

	require.NoError(t, persist.Load(outputDir, "IMFDataModel", persist.NewYAMLCodec(), &model))
	require.Len(t, model.Concepts, 1)
	assert.Equal(t, "IMF_Pump", model.Concepts[0].Concept)
	assert.Equal(t, "imf_space", model.Metadata.Space)
}

func TestImportCommand_JSONCompressed(t *testing.T) {
	outputDir := t.TempDir()

	cmd := NewImportCommand()
	cmd.SetArgs([]string{
		fixtureFile(t),
		"-o", outputDir,
		"--format", "json",
		"--compress",
		"--space", "pump_lib",
		"--external-id", "PumpModel",
		"--model-version", "v2",
	})

	require.NoError(t, cmd.Execute())

	var model datamodel.ConceptualDataModel

	codec := persist.NewLZ4Codec(persist.NewJSONCodec())
	require.NoError(t, persist.Load(outputDir, "PumpModel", codec, &model))
	assert.Equal(t, "pump_lib", model.Metadata.Space)
	assert.Equal(t, "v2", model.Metadata.Version)
}

func TestImportCommand_UnknownImporter(t *testing.T) {
	cmd := NewImportCommand()
	cmd.SetArgs([]string{fixtureFile(t), "--importer", "bogus"})
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown importer key")
}

func TestImportCommand_MissingVersion(t *testing.T) {
	cmd := NewImportCommand()
	cmd.SetArgs([]string{fixtureFile(t), "--model-version", ""})
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	// An explicitly empty version falls back to the configured default.
	require.NoError(t, cmd.Execute())
}

func TestWriteModel_Formats(t *testing.T) {
	t.Parallel()

	model := &datamodel.ConceptualDataModel{
		Metadata: datamodel.NewMetadata(datamodel.DefaultIMFModelID, "test"),
	}

	dir := t.TempDir()

	path, err := writeModel(model, importOptions{format: "json", outputDir: dir})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "IMFDataModel.json"), path)

	path, err = writeModel(model, importOptions{format: "yaml", outputDir: dir})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "IMFDataModel.yaml"), path)

	path, err = writeModel(model, importOptions{format: "yaml", outputDir: dir, compress: true})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "IMFDataModel.yaml.lz4"), path)
}
