package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/plugboard-dev/plugboard/catalog"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the built-in catalog tables for consistency",
	Run: func(cmd *cobra.Command, args []string) {
		formatter := newFormatter()

		result := catalog.Validate()
		formatter.FormatValidation(result)
		if !result.Valid {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
