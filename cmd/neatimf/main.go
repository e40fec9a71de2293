// Package main provides the entry point for the neatimf CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cognitedata/neat-imf-importer/cmd/neatimf/commands"
	"github.com/cognitedata/neat-imf-importer/pkg/version"

	// Register the IMF importer plugin.
	_ "github.com/cognitedata/neat-imf-importer/pkg/importers/imf"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "neatimf",
		Short: "NEAT IMF importer - imports IMF type libraries as conceptual data models",
		Long: `neatimf imports IMF type libraries (SHACL shapes in RDF) into
unverified conceptual data models.

Commands:
  import    Import an IMF RDF file into a data model`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(commands.NewImportCommand())
	rootCmd.AddCommand(commands.NewPluginsCommand())
	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewPlotCommand())
	rootCmd.AddCommand(commands.NewMCPCommand())
	rootCmd.AddCommand(versionCmd())

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(os.Stdout, "neatimf %s\n", version.String())
		},
	}
}
