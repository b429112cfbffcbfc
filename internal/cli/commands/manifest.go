package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/plugboard-dev/plugboard"
	"github.com/plugboard-dev/plugboard/config"
	"github.com/plugboard-dev/plugboard/internal/cli/errors"
	"github.com/plugboard-dev/plugboard/logging"
	"github.com/plugboard-dev/plugboard/manifest"
	"github.com/plugboard-dev/plugboard/probe"
)

var manifestConfigPath string

var manifestCmd = &cobra.Command{
	Use:   "manifest",
	Short: "Build and print the activation manifest",
	Long: `Builds the activation manifest from a YAML or TOML config file, or
from the full catalogs when no config is given. The manifest lists one
deferred-construction entry per installed, enabled extension.`,
	Run: func(cmd *cobra.Command, args []string) {
		formatter := newFormatter()

		cfg := manifest.Config{}
		roots := searchRoots()
		if manifestConfigPath != "" {
			loaded, cfgRoots, err := config.Load(manifestConfigPath)
			if err != nil {
				fmt.Println(formatter.FormatError(errors.Classify(err)))
				os.Exit(1)
			}
			cfg = loaded
			if len(cfgRoots) > 0 {
				roots = cfgRoots
			}
		}
		cfg.Logger = logging.NewZap(logLevel)

		resolver := probe.NewResolver(roots...).WithLogger(cfg.Logger)
		m := plugboard.CreateCuratedManifest(cmd.Context(), resolver, cfg)
		formatter.FormatManifest(m)
	},
}

func init() {
	rootCmd.AddCommand(manifestCmd)
	manifestCmd.Flags().StringVarP(&manifestConfigPath, "config", "c", "", "manifest config file (.yaml or .toml)")
}
