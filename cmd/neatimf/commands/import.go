package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/cognitedata/neat-imf-importer/pkg/datamodel"
	"github.com/cognitedata/neat-imf-importer/pkg/issues"
	"github.com/cognitedata/neat-imf-importer/pkg/observability"
	"github.com/cognitedata/neat-imf-importer/pkg/persist"
	"github.com/cognitedata/neat-imf-importer/pkg/plugin"
)

// importArgCount is the number of positional arguments (the source file).
const importArgCount = 1

// importOptions carries the resolved flags for a single import run.
type importOptions struct {
	configPath     string
	importerKey    string
	language       string
	space          string
	externalID     string
	modelVersion   string
	format         string
	outputDir      string
	compress       bool
	rawIdentifiers bool
}

// importStats is the optional stats surface importers may expose.
type importStats interface {
	TripleCount() int
	Issues() *issues.List
}

// NewImportCommand creates the import subcommand.
func NewImportCommand() *cobra.Command {
	var opts importOptions

	cmd := &cobra.Command{
		Use:   "import <file.ttl|file.nt|file.rdf>",
		Short: "Import an IMF RDF file into an unverified conceptual data model",
		Long: `Import an IMF type library, provided as SHACL shapes in an RDF file,
into an unverified conceptual data model.

Examples:
  neatimf import types.ttl
  neatimf import --language no --space pump_lib -o ./models types.ttl
  neatimf import --format json --compress types.ttl`,
		Args: cobra.ExactArgs(importArgCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", "", "path to config file")
	cmd.Flags().StringVar(&opts.importerKey, "importer", "imf", "importer plugin key")
	cmd.Flags().StringVar(&opts.language, "language", "", "language tag for labels and descriptions")
	cmd.Flags().StringVar(&opts.space, "space", "", "data model space")
	cmd.Flags().StringVar(&opts.externalID, "external-id", "", "data model external id")
	cmd.Flags().StringVar(&opts.modelVersion, "model-version", "", "data model version")
	cmd.Flags().StringVar(&opts.format, "format", "", "output format (yaml or json)")
	cmd.Flags().StringVarP(&opts.outputDir, "output-dir", "o", "", "output directory")
	cmd.Flags().BoolVar(&opts.compress, "compress", false, "lz4-compress the output file")
	cmd.Flags().BoolVar(&opts.rawIdentifiers, "raw-ids", false, "keep source IRIs instead of compliant identifiers")

	return cmd
}

func runImport(cmd *cobra.Command, source string, opts importOptions) error {
	rt, cleanup, err := setupRuntime(opts.configPath, observability.ModeCLI)
	if err != nil {
		return err
	}
	defer cleanup()

	applyImportFlags(cmd, rt, &opts)

	modelID, err := datamodel.NewID(opts.space, opts.externalID, opts.modelVersion)
	if err != nil {
		return err
	}

	metrics, err := observability.NewImportMetrics(rt.providers.Meter)
	if err != nil {
		return err
	}

	ctx, span := rt.providers.Tracer.Start(cmd.Context(), "cli.import",
		trace.WithAttributes(attribute.String("importer", opts.importerKey)),
	)
	defer span.End()

	imported, importer, err := executeImport(ctx, source, modelID, opts, rt, metrics)
	if err != nil {
		return err
	}

	outputPath, err := writeModel(imported.Model, opts)
	if err != nil {
		return err
	}

	printImportSummary(os.Stdout, imported.Model, importer, outputPath)

	return nil
}

// applyImportFlags resolves flag values against the loaded configuration.
// Explicitly set flags win over config file and environment.
func applyImportFlags(cmd *cobra.Command, rt *runtime, opts *importOptions) {
	if opts.language == "" {
		opts.language = rt.cfg.Import.Language
	}

	if opts.space == "" {
		opts.space = rt.cfg.Import.Space
	}

	if opts.externalID == "" {
		opts.externalID = rt.cfg.Import.ExternalID
	}

	if opts.modelVersion == "" {
		opts.modelVersion = rt.cfg.Import.Version
	}

	if opts.format == "" {
		opts.format = rt.cfg.Output.Format
	}

	if opts.outputDir == "" {
		opts.outputDir = rt.cfg.Output.Directory
	}

	if !cmd.Flags().Changed("compress") {
		opts.compress = rt.cfg.Output.Compress
	}

	if !cmd.Flags().Changed("raw-ids") {
		opts.rawIdentifiers = rt.cfg.Import.RawIdentifiers
	}
}

func executeImport(
	ctx context.Context,
	source string,
	modelID datamodel.ID,
	opts importOptions,
	rt *runtime,
	metrics *observability.ImportMetrics,
) (*datamodel.ImportedDataModel, plugin.Importer, error) {
	importerPlugin, err := plugin.Lookup(opts.importerKey)
	if err != nil {
		return nil, nil, err
	}

	importer, err := importerPlugin.Configure(source, plugin.Options{
		Language:       opts.language,
		ModelID:        modelID,
		RawIdentifiers: opts.rawIdentifiers,
		Logger:         rt.providers.Logger,
	})
	if err != nil {
		return nil, nil, err
	}

	start := time.Now()

	imported, err := importer.ToDataModel(ctx)

	status := observability.StatusOK
	if err != nil {
		status = observability.StatusError
	}

	metrics.RecordImport(ctx, opts.importerKey, status, time.Since(start))
	recordImportStats(ctx, opts.importerKey, importer, metrics)

	if err != nil {
		return nil, nil, fmt.Errorf("import %s: %w", source, err)
	}

	return imported, importer, nil
}

func recordImportStats(ctx context.Context, key string, importer plugin.Importer, metrics *observability.ImportMetrics) {
	stats, ok := importer.(importStats)
	if !ok {
		return
	}

	metrics.RecordTriples(ctx, key, int64(stats.TripleCount()))
	metrics.RecordIssues(ctx, key, string(issues.SeverityWarning), int64(len(stats.Issues().Warnings())))
}

// writeModel persists the model and returns the output path.
func writeModel(model *datamodel.ConceptualDataModel, opts importOptions) (string, error) {
	var codec persist.Codec
	if opts.format == "json" {
		codec = persist.NewJSONCodec()
	} else {
		codec = persist.NewYAMLCodec()
	}

	if opts.compress {
		codec = persist.NewLZ4Codec(codec)
	}

	return persist.Save(opts.outputDir, model.Metadata.ExternalID, codec, model)
}

func printImportSummary(out *os.File, model *datamodel.ConceptualDataModel, importer plugin.Importer, outputPath string) {
	color.New(color.FgGreen).Fprintf(out, "Import succeeded: %s\n", outputPath)

	writer := table.NewWriter()
	writer.SetOutputMirror(out)
	writer.AppendHeader(table.Row{"Model", "Concepts", "Properties", "Triples", "Warnings"})

	triples := "-"

	warnings := 0

	if stats, ok := importer.(importStats); ok {
		triples = humanize.Comma(int64(stats.TripleCount()))
		warnings = len(stats.Issues().Warnings())
	}

	modelID := datamodel.ID{
		Space:      model.Metadata.Space,
		ExternalID: model.Metadata.ExternalID,
		Version:    model.Metadata.Version,
	}

	writer.AppendRow(table.Row{
		modelID.String(),
		len(model.Concepts),
		len(model.Properties),
		triples,
		warnings,
	})
	writer.Render()

	printWarnings(out, importer)
}

func printWarnings(out *os.File, importer plugin.Importer) {
	stats, ok := importer.(importStats)
	if !ok {
		return
	}

	yellow := color.New(color.FgYellow)
	for _, warning := range stats.Issues().Warnings() {
		yellow.Fprintf(out, "warning: %s\n", warning.Error())
	}
}
