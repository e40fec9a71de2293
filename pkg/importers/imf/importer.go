// Package imf imports IMF type libraries, provided as SHACL shapes in RDF,
// into an unverified conceptual data model.
package imf

import (
	"context"
	"log/slog"
	"strings"

	"github.com/cognitedata/neat-imf-importer/pkg/datamodel"
	"github.com/cognitedata/neat-imf-importer/pkg/issues"
	"github.com/cognitedata/neat-imf-importer/pkg/rdf"
)

// Key is the registry key the importer is published under.
const Key = "imf"

// defaultLanguage selects English labels and descriptions.
const defaultLanguage = "en"

// valueTypeSeparator joins multi-value types into a single field.
const valueTypeSeparator = ", "

// Importer converts IMF types provided as SHACL shapes into an unverified
// conceptual data model.
type Importer struct {
	issueList      *issues.List
	graph          *rdf.Graph
	modelID        datamodel.ID
	language       string
	rawIdentifiers bool
	logger         *slog.Logger
}

// Option configures an Importer.
type Option func(*Importer)

// WithLanguage selects which language-tagged labels and descriptions to read.
func WithLanguage(language string) Option {
	return func(i *Importer) {
		if language != "" {
			i.language = language
		}
	}
}

// WithModelID overrides the id of the produced data model.
func WithModelID(id datamodel.ID) Option {
	return func(i *Importer) {
		i.modelID = id
	}
}

// WithRawIdentifiers disables compliant-identifier rewriting, keeping the
// source IRIs untouched in the produced model.
func WithRawIdentifiers() Option {
	return func(i *Importer) {
		i.rawIdentifiers = true
	}
}

// WithLogger sets the logger warnings are surfaced through.
func WithLogger(logger *slog.Logger) Option {
	return func(i *Importer) {
		if logger != nil {
			i.logger = logger
		}
	}
}

// NewImporter creates an importer over an already populated graph.
func NewImporter(graph *rdf.Graph, opts ...Option) *Importer {
	importer := &Importer{
		issueList: issues.NewList("IMFImporter issues"),
		graph:     graph,
		modelID:   datamodel.DefaultIMFModelID,
		language:  defaultLanguage,
		logger:    slog.Default(),
	}

	for _, opt := range opts {
		opt(importer)
	}

	return importer
}

// FromFile creates an importer reading the IMF RDF file at path. Read
// failures are recorded as issues and reported by ToDataModel, so a usable
// importer is always returned.
func FromFile(path string, opts ...Option) *Importer {
	importer := NewImporter(rdf.NewGraph(), opts...)

	err := importer.graph.ParseFile(path)
	if err != nil {
		importer.issueList.Append(issues.NewFileReadError(path, err))
	}

	return importer
}

// Description summarizes the configured import.
func (i *Importer) Description() string {
	return "IMF types importer as unverified conceptual data model"
}

// TripleCount returns the number of triples parsed from the source.
func (i *Importer) TripleCount() int {
	return i.graph.Len()
}

// Issues returns the issue list collected so far.
func (i *Importer) Issues() *issues.List {
	return i.issueList
}

// ToDataModel runs the import. Error-severity issues collected during
// configuration or extraction abort the import and are returned joined;
// warnings are logged and the model is returned.
func (i *Importer) ToDataModel(ctx context.Context) (*datamodel.ImportedDataModel, error) {
	if err := ctx.Err(); err != nil {
		return nil, err //nolint:wrapcheck // context errors pass through unchanged.
	}

	if err := i.modelID.Validate(); err != nil {
		i.issueList.Append(issues.NewValueError("invalid data model id: %v", err))
	}

	if i.issueList.HasErrors() {
		i.issueList.Log(i.logger)

		return nil, i.issueList.Errors()
	}

	concepts := parseConcepts(i.graph, i.language, i.issueList)
	properties := parseProperties(i.graph, i.language, i.issueList)

	if i.issueList.HasErrors() {
		i.issueList.Log(i.logger)

		return nil, i.issueList.Errors()
	}

	if !i.rawIdentifiers {
		applyCompliance(concepts, properties)
	}

	i.issueList.Log(i.logger)

	return &datamodel.ImportedDataModel{
		Model:   i.buildModel(concepts, properties),
		Context: map[string]any{},
	}, nil
}

func (i *Importer) buildModel(concepts []conceptRecord, properties []propertyRecord) *datamodel.ConceptualDataModel {
	model := &datamodel.ConceptualDataModel{
		Metadata:   datamodel.NewMetadata(i.modelID, "Data model imported using IMFImporter"),
		Concepts:   make([]datamodel.Concept, 0, len(concepts)),
		Properties: make([]datamodel.Property, 0, len(properties)),
	}

	for _, record := range concepts {
		model.Concepts = append(model.Concepts, datamodel.Concept{
			Concept:     record.ID,
			Name:        record.Name,
			Description: record.Description,
			Implements:  record.Implements,
		})
	}

	for _, record := range properties {
		model.Properties = append(model.Properties, datamodel.Property{
			Concept:     record.Concept,
			Property:    record.Property,
			Name:        record.Name,
			Description: record.Description,
			ValueType:   strings.Join(record.ValueTypes, valueTypeSeparator),
			MinCount:    record.MinCount,
			MaxCount:    record.MaxCount,
			Default:     record.Default,
		})
	}

	return model
}
