package mcp

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/cognitedata/neat-imf-importer/pkg/importers/imf"
)

const mcpFixture = `
@prefix imf: <http://ns.imfid.org/imf#> .
@prefix sh: <http://www.w3.org/ns/shacl#> .
@prefix rdfs: <http://www.w3.org/2000/01/rdf-schema#> .
@prefix xsd: <http://www.w3.org/2001/XMLSchema#> .
@prefix ex: <http://example.com/types#> .

ex:Pump a imf:BlockType ;
    rdfs:label "Pump"@en ;
    sh:property ex:PumpShape .

ex:PumpShape sh:path ex:weight ;
    sh:class xsd:float .
`

func fixtureFile(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "types.ttl")
	require.NoError(t, os.WriteFile(path, []byte(mcpFixture), 0o600))

	return path
}

func TestNewServer_RegistersTools(t *testing.T) {
	t.Parallel()

	server := NewServer(ServerDeps{})

	assert.Equal(t, []string{ToolNameImport, ToolNameListImporters}, server.ListToolNames())
}

func TestValidateImportInput(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, validateImportInput(ImportInput{}), ErrEmptyPath)
	require.ErrorIs(t, validateImportInput(ImportInput{Path: "relative.ttl"}), ErrPathNotAbsolute)
	require.NoError(t, validateImportInput(ImportInput{Path: "/abs/types.ttl"}))
}

func TestHandleImport_Success(t *testing.T) {
	t.Parallel()

	server := NewServer(ServerDeps{})

	result, output, err := server.handleImport(context.Background(), nil, ImportInput{
		Path: fixtureFile(t),
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.False(t, result.IsError)
	assert.NotNil(t, output.Data)
}

func TestHandleImport_CustomModelID(t *testing.T) {
	t.Parallel()

	server := NewServer(ServerDeps{})

	result, _, err := server.handleImport(context.Background(), nil, ImportInput{
		Path:    fixtureFile(t),
		ModelID: "pump_lib/PumpModel/v2",
	})
	require.NoError(t, err)
	assert.False(t, result.IsError)
}

func TestHandleImport_InvalidModelID(t *testing.T) {
	t.Parallel()

	server := NewServer(ServerDeps{})

	result, _, err := server.handleImport(context.Background(), nil, ImportInput{
		Path:    fixtureFile(t),
		ModelID: "not-an-id",
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}

func TestHandleImport_EmptyPath(t *testing.T) {
	t.Parallel()

	server := NewServer(ServerDeps{})

	result, _, err := server.handleImport(context.Background(), nil, ImportInput{})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}

func TestHandleImport_MissingFile(t *testing.T) {
	t.Parallel()

	server := NewServer(ServerDeps{})

	result, _, err := server.handleImport(context.Background(), nil, ImportInput{
		Path: filepath.Join(t.TempDir(), "missing.ttl"),
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}

func TestHandleListImporters(t *testing.T) {
	t.Parallel()

	result, output, err := handleListImporters(context.Background(), nil, ListImportersInput{})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.False(t, result.IsError)
	assert.NotNil(t, output.Data)
}
