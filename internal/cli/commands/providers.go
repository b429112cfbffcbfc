package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/plugboard-dev/plugboard"
	"github.com/plugboard-dev/plugboard/catalog"
)

var providersCmd = &cobra.Command{
	Use:   "providers [provider-id...]",
	Short: "List model-provider descriptors",
	Run: func(cmd *cobra.Command, args []string) {
		formatter := newFormatter()

		sel := catalog.SelectAll()
		if len(args) > 0 {
			sel = catalog.SelectKeys(args...)
		}

		providers := plugboard.Providers(sel)
		if len(args) > 0 && len(providers) == 0 {
			fmt.Fprintf(os.Stderr, "no providers match %v\n", args)
			os.Exit(1)
		}
		formatter.FormatProviders(providers)
	},
}

func init() {
	rootCmd.AddCommand(providersCmd)
}
