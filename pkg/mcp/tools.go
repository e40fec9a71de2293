package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/cognitedata/neat-imf-importer/pkg/datamodel"
	"github.com/cognitedata/neat-imf-importer/pkg/plugin"
)

// Tool name constants.
const (
	ToolNameImport        = "imf_import"
	ToolNameListImporters = "list_importers"
)

// Sentinel errors for tool input validation.
var (
	// ErrEmptyPath indicates the path parameter is empty.
	ErrEmptyPath = errors.New("path parameter is required and must not be empty")
	// ErrPathNotAbsolute indicates the path is not an absolute path.
	ErrPathNotAbsolute = errors.New("path must be an absolute path")
)

// Input types (auto-generate JSON schemas via struct tags).

// ImportInput is the input schema for the imf_import tool.
type ImportInput struct {
	Path           string `json:"path"                      jsonschema:"absolute path to the IMF RDF file"`
	Language       string `json:"language,omitempty"        jsonschema:"language tag for labels and descriptions (default: en)"`
	ModelID        string `json:"model_id,omitempty"        jsonschema:"data model id as space/externalID/version"`
	RawIdentifiers bool   `json:"raw_identifiers,omitempty" jsonschema:"keep source IRIs instead of compliant identifiers"`
}

// ListImportersInput is the input schema for the list_importers tool.
type ListImportersInput struct{}

// Output type (used as structured output for generic AddTool).

// ToolOutput is a generic wrapper for tool results.
type ToolOutput struct {
	Data any `json:"data"`
}

// Result helpers.

// errorResult builds a CallToolResult with isError set.
func errorResult(err error) (*mcpsdk.CallToolResult, ToolOutput, error) {
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{
			&mcpsdk.TextContent{Text: err.Error()},
		},
		IsError: true,
	}, ToolOutput{}, nil
}

// jsonResult builds a CallToolResult with JSON-encoded content.
func jsonResult(value any) (*mcpsdk.CallToolResult, ToolOutput, error) {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return errorResult(fmt.Errorf("encode result: %w", err))
	}

	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{
			&mcpsdk.TextContent{Text: string(data)},
		},
	}, ToolOutput{Data: value}, nil
}

// handleImport runs a registered importer against the given RDF file and
// returns the produced data model.
func (s *Server) handleImport(
	ctx context.Context, _ *mcpsdk.CallToolRequest, input ImportInput,
) (*mcpsdk.CallToolResult, ToolOutput, error) {
	err := validateImportInput(input)
	if err != nil {
		return errorResult(err)
	}

	options := plugin.Options{
		Language:       input.Language,
		RawIdentifiers: input.RawIdentifiers,
		Logger:         s.logger,
	}

	if input.ModelID != "" {
		modelID, parseErr := datamodel.ParseID(input.ModelID)
		if parseErr != nil {
			return errorResult(parseErr)
		}

		options.ModelID = modelID
	}

	importerPlugin, err := plugin.Lookup(importerKeyForInput())
	if err != nil {
		return errorResult(err)
	}

	importer, err := importerPlugin.Configure(input.Path, options)
	if err != nil {
		return errorResult(err)
	}

	imported, err := importer.ToDataModel(ctx)
	if err != nil {
		return errorResult(err)
	}

	return jsonResult(imported.Model)
}

// handleListImporters returns the registered importer descriptors.
func handleListImporters(
	_ context.Context, _ *mcpsdk.CallToolRequest, _ ListImportersInput,
) (*mcpsdk.CallToolResult, ToolOutput, error) {
	return jsonResult(plugin.All())
}

// importerKeyForInput resolves which importer serves the import tool.
// Only the IMF importer is published today.
func importerKeyForInput() string {
	return "imf"
}

// validateImportInput checks common path input constraints.
func validateImportInput(input ImportInput) error {
	if input.Path == "" {
		return ErrEmptyPath
	}

	if !filepath.IsAbs(input.Path) {
		return fmt.Errorf("%w: %s", ErrPathNotAbsolute, input.Path)
	}

	return nil
}
