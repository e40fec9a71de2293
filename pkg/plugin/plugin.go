// Package plugin defines the data-model importer extension point and the
// registry through which a host discovers installed importers by key.
package plugin

import (
	"context"
	"log/slog"

	"github.com/cognitedata/neat-imf-importer/pkg/datamodel"
)

// Descriptor contains stable importer plugin metadata.
type Descriptor struct {
	// Key is the registry key the host resolves (e.g. "imf").
	Key string

	// Description summarizes what the importer reads.
	Description string
}

// Options carries the host-supplied import configuration.
// Zero-value fields fall back to importer defaults.
type Options struct {
	// Language selects which language-tagged labels and descriptions to read.
	Language string

	// ModelID overrides the id of the produced data model.
	ModelID datamodel.ID

	// RawIdentifiers disables compliant-identifier rewriting, keeping the
	// source local names untouched.
	RawIdentifiers bool

	// Logger is the host logger importer warnings are surfaced through.
	// Nil uses the process default.
	Logger *slog.Logger
}

// DataModelImporter is the extension-point contract: given a source location,
// produce a configured Importer.
type DataModelImporter interface {
	// Descriptor returns the plugin metadata.
	Descriptor() Descriptor

	// Configure prepares an import of the given source. Source-level read
	// problems are deferred to ToDataModel, so a configured Importer is
	// returned even for unreadable sources.
	Configure(source string, options Options) (Importer, error)
}

// Importer converts a configured source into an unverified data model.
type Importer interface {
	// ToDataModel runs the import. Collected error-severity issues abort
	// the import and are returned joined.
	ToDataModel(ctx context.Context) (*datamodel.ImportedDataModel, error)

	// Description summarizes the configured import.
	Description() string
}
