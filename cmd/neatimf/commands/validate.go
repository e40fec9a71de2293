package commands

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/cognitedata/neat-imf-importer/pkg/datamodel"
)

// exitCodeValidationFailure is the exit code for validation failures.
const exitCodeValidationFailure = 2

// NewValidateCommand creates the validate subcommand.
func NewValidateCommand() *cobra.Command {
	var nocolor bool

	cmd := &cobra.Command{
		Use:   "validate <model.json>",
		Short: "Validate a serialized data model against the canonical schema",
		Long: `Validate a JSON-serialized conceptual data model against the
canonical data-model schema.

Examples:
  neatimf validate IMFDataModel.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runValidate(args[0], nocolor)
		},
	}

	cmd.Flags().BoolVar(&nocolor, "no-color", false, "disable colored output")

	return cmd
}

func runValidate(path string, nocolor bool) error {
	if nocolor {
		color.NoColor = true //nolint:reassign // intentional override of library global
	}

	document, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read model file: %w", err)
	}

	violations, err := datamodel.ValidateJSON(document)
	if err == nil {
		color.New(color.FgGreen).Fprintf(os.Stdout, "Data model is valid (%s)\n", path)

		return nil
	}

	red := color.New(color.FgRed)
	red.Fprintf(os.Stderr, "Data model is invalid (%s):\n", path)

	for _, violation := range violations {
		red.Fprintf(os.Stderr, "  - %s\n", violation)
	}

	os.Exit(exitCodeValidationFailure)

	return nil
}
