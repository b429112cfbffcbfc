package commands

import (
	"github.com/spf13/cobra"

	"github.com/plugboard-dev/plugboard"
)

var listChannelsOnly bool

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List known extensions with live availability",
	Run: func(cmd *cobra.Command, args []string) {
		resolver := newResolver()
		formatter := newFormatter()

		if listChannelsOnly {
			formatter.FormatExtensions(plugboard.AvailableChannels(cmd.Context(), resolver))
			return
		}
		formatter.FormatExtensions(plugboard.AvailableExtensions(cmd.Context(), resolver))
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listChannelsOnly, "channels", false, "list only channel descriptors")
}
