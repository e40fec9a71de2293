package imf

import (
	"github.com/cognitedata/neat-imf-importer/pkg/datamodel"
	"github.com/cognitedata/neat-imf-importer/pkg/plugin"
)

//nolint:gochecknoinits // registration pattern, the Go analogue of an entry point.
func init() {
	plugin.MustRegister(Plugin{})
}

// Plugin publishes the IMF importer under the "imf" key.
type Plugin struct{}

// Descriptor implements plugin.DataModelImporter.
func (Plugin) Descriptor() plugin.Descriptor {
	return plugin.Descriptor{
		Key:         Key,
		Description: "Imports IMF types provided as SHACL shapes from an RDF file",
	}
}

// Configure implements plugin.DataModelImporter. Source-level read problems
// are deferred to ToDataModel.
func (Plugin) Configure(source string, options plugin.Options) (plugin.Importer, error) {
	opts := make([]Option, 0, 4) //nolint:mnd // one slot per supported option.

	if options.Language != "" {
		opts = append(opts, WithLanguage(options.Language))
	}

	if options.ModelID != (datamodel.ID{}) {
		opts = append(opts, WithModelID(options.ModelID))
	}

	if options.RawIdentifiers {
		opts = append(opts, WithRawIdentifiers())
	}

	if options.Logger != nil {
		opts = append(opts, WithLogger(options.Logger))
	}

	return FromFile(source, opts...), nil
}
