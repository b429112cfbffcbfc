// Package commands implements the plugboard CLI.
package commands

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/plugboard-dev/plugboard/internal/cli/output"
	"github.com/plugboard-dev/plugboard/logging"
	"github.com/plugboard-dev/plugboard/probe"
)

var (
	pluginRoots []string
	logLevel    string
	jsonOutput  bool
	yamlOutput  bool
	noColor     bool
)

var rootCmd = &cobra.Command{
	Use:   "plugboard",
	Short: "Extension catalog and manifest builder for agent runtimes",
	Long: `Plugboard enumerates the optional integration modules known to the
registry (channels, tools, voice, productivity, model providers), probes
which ones are installed in the plugin directories, and builds the
activation manifest a host runtime consumes.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringSliceVar(&pluginRoots, "plugins", nil, "plugin directories to probe (default $PLUGBOARD_PATH, else ~/.plugboard/extensions)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&yamlOutput, "yaml", false, "output in YAML format")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

// searchRoots resolves the plugin directories: the --plugins flag, then
// $PLUGBOARD_PATH, then ~/.plugboard/extensions.
func searchRoots() []string {
	if len(pluginRoots) > 0 {
		return pluginRoots
	}
	if env := os.Getenv("PLUGBOARD_PATH"); env != "" {
		return filepath.SplitList(env)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	return []string{filepath.Join(home, ".plugboard", "extensions")}
}

func newResolver() *probe.Resolver {
	return probe.NewResolver(searchRoots()...).WithLogger(logging.NewZap(logLevel))
}

func newFormatter() *output.Formatter {
	mode := output.FormatText
	if jsonOutput {
		mode = output.FormatJSON
	}
	if yamlOutput {
		mode = output.FormatYAML
	}
	return output.NewFormatter(mode, !noColor)
}
