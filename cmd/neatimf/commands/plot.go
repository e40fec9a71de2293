package commands

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/spf13/cobra"

	"github.com/cognitedata/neat-imf-importer/pkg/datamodel"
	"github.com/cognitedata/neat-imf-importer/pkg/observability"
	"github.com/cognitedata/neat-imf-importer/pkg/plugin"
)

// ErrNoPlotOutput is returned when the --output flag is not set.
var ErrNoPlotOutput = errors.New("output file is required (use --output)")

const (
	// conceptSymbolSize is the node size in the hierarchy graph.
	conceptSymbolSize = 12

	// graphRepulsion spreads nodes in the force layout.
	graphRepulsion = 200

	// topConceptsLimit bounds the property-count bar chart.
	topConceptsLimit = 25
)

// NewPlotCommand creates the plot subcommand.
func NewPlotCommand() *cobra.Command {
	var (
		configPath string
		language   string
		output     string
	)

	cmd := &cobra.Command{
		Use:   "plot <file.ttl>",
		Short: "Render an imported data model as an HTML visualization",
		Long: `Import an IMF RDF file and render the resulting data model as an
HTML page with a concept-hierarchy graph and a properties-per-concept chart.

Examples:
  neatimf plot types.ttl -o model.html`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" {
				return ErrNoPlotOutput
			}

			return runPlot(cmd, args[0], configPath, language, output)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to config file")
	cmd.Flags().StringVar(&language, "language", "", "language tag for labels and descriptions")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output HTML file")

	return cmd
}

func runPlot(cmd *cobra.Command, source, configPath, language, output string) error {
	rt, cleanup, err := setupRuntime(configPath, observability.ModeCLI)
	if err != nil {
		return err
	}
	defer cleanup()

	if language == "" {
		language = rt.cfg.Import.Language
	}

	importerPlugin, err := plugin.Lookup("imf")
	if err != nil {
		return err
	}

	importer, err := importerPlugin.Configure(source, plugin.Options{
		Language: language,
		Logger:   rt.providers.Logger,
	})
	if err != nil {
		return err
	}

	imported, err := importer.ToDataModel(cmd.Context())
	if err != nil {
		return fmt.Errorf("import %s: %w", source, err)
	}

	return renderModelPage(imported.Model, output)
}

func renderModelPage(model *datamodel.ConceptualDataModel, output string) error {
	page := components.NewPage()
	page.AddCharts(
		buildHierarchyGraph(model),
		buildPropertyCountBar(model),
	)

	file, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("create plot file: %w", err)
	}
	defer file.Close()

	err = page.Render(file)
	if err != nil {
		return fmt.Errorf("render plot: %w", err)
	}

	return nil
}

// buildHierarchyGraph renders concepts as nodes and implements edges as links.
func buildHierarchyGraph(model *datamodel.ConceptualDataModel) *charts.Graph {
	graph := charts.NewGraph()
	graph.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Concept hierarchy",
			Subtitle: "Concepts and the parents they implement",
		}),
	)

	seen := make(map[string]struct{}, len(model.Concepts))
	nodes := make([]opts.GraphNode, 0, len(model.Concepts))
	links := make([]opts.GraphLink, 0, len(model.Concepts))

	addNode := func(name string) {
		if _, exists := seen[name]; exists {
			return
		}

		seen[name] = struct{}{}
		nodes = append(nodes, opts.GraphNode{Name: name, SymbolSize: conceptSymbolSize})
	}

	for _, concept := range model.Concepts {
		addNode(concept.Concept)

		for _, parent := range concept.Implements {
			addNode(parent)
			links = append(links, opts.GraphLink{Source: concept.Concept, Target: parent})
		}
	}

	graph.AddSeries("implements", nodes, links,
		charts.WithGraphChartOpts(opts.GraphChart{
			Force: &opts.GraphForce{Repulsion: graphRepulsion},
		}),
	)

	return graph
}

// buildPropertyCountBar renders the concepts with the most properties.
func buildPropertyCountBar(model *datamodel.ConceptualDataModel) *charts.Bar {
	counts := make(map[string]int)
	for _, property := range model.Properties {
		counts[property.Concept]++
	}

	concepts := make([]string, 0, len(counts))
	for concept := range counts {
		concepts = append(concepts, concept)
	}

	sort.Slice(concepts, func(i, j int) bool {
		if counts[concepts[i]] != counts[concepts[j]] {
			return counts[concepts[i]] > counts[concepts[j]]
		}

		return concepts[i] < concepts[j]
	})

	if len(concepts) > topConceptsLimit {
		concepts = concepts[:topConceptsLimit]
	}

	values := make([]opts.BarData, 0, len(concepts))
	for _, concept := range concepts {
		values = append(values, opts.BarData{Value: counts[concept]})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Properties per concept",
			Subtitle: "Concepts with the most property definitions",
		}),
	)
	bar.SetXAxis(concepts).AddSeries("properties", values)

	return bar
}
