package commands

import (
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/cognitedata/neat-imf-importer/pkg/plugin"
)

// NewPluginsCommand creates the plugins subcommand.
func NewPluginsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "plugins",
		Short: "List registered data-model importer plugins",
		Run: func(_ *cobra.Command, _ []string) {
			writer := table.NewWriter()
			writer.SetOutputMirror(os.Stdout)
			writer.AppendHeader(table.Row{"Key", "Description"})

			for _, descriptor := range plugin.All() {
				writer.AppendRow(table.Row{descriptor.Key, descriptor.Description})
			}

			writer.Render()
		},
	}
}
