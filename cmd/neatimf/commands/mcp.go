package commands

import (
	"github.com/spf13/cobra"

	"github.com/cognitedata/neat-imf-importer/pkg/mcp"
	"github.com/cognitedata/neat-imf-importer/pkg/observability"
)

// NewMCPCommand creates the mcp subcommand.
func NewMCPCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Run the importer as an MCP server on stdio",
		Long: `Run a Model Context Protocol server on stdio, exposing the registered
data-model importers as MCP tools.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMCP(cmd, configPath)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to config file")

	return cmd
}

func runMCP(cmd *cobra.Command, configPath string) error {
	rt, cleanup, err := setupRuntime(configPath, observability.ModeMCP)
	if err != nil {
		return err
	}
	defer cleanup()

	metrics, err := observability.NewImportMetrics(rt.providers.Meter)
	if err != nil {
		return err
	}

	server := mcp.NewServer(mcp.ServerDeps{
		Logger:  rt.providers.Logger,
		Metrics: metrics,
		Tracer:  rt.providers.Tracer,
	})

	return server.Run(cmd.Context())
}
