package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mitchele/annotool/pkg/annotation"
)

var validateCmd = &cobra.Command{
	Use:   "validate <report-file>",
	Short: "Validate an exported annotation report",
	Long:  `Validate a JSON report file against the annotation report schema.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	path := args[0]

	if err := annotation.ValidateReportFile(path); err != nil {
		return fmt.Errorf("report %s is invalid: %w", path, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ %s is a valid annotation report\n", path)
	return nil
}
