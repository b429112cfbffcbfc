package commands

import (
	"github.com/spf13/cobra"

	"github.com/plugboard-dev/plugboard"
)

var channelsCmd = &cobra.Command{
	Use:   "channels",
	Short: "List channel descriptors with live availability",
	Run: func(cmd *cobra.Command, args []string) {
		resolver := newResolver()
		newFormatter().FormatExtensions(plugboard.AvailableChannels(cmd.Context(), resolver))
	},
}

func init() {
	rootCmd.AddCommand(channelsCmd)
}
