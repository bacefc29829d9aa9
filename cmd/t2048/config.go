package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-2048/internal/config"
)

var flagResolved bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Prints the built-in configuration file. Redirect it to
~/.t2048/config.yaml or ./` + config.LocalPath + ` and edit it to change
key bindings, the target tile, the spawn weights or logging.

With --resolved the configuration that "play" would use is printed
instead, after the search order and --config are applied.`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagResolved, "resolved", false, "Print the configuration in effect")
}

func runConfig(cmd *cobra.Command, args []string) {
	if !flagResolved {
		os.Stdout.Write(config.DefaultYAML()) //nolint:errcheck // Nothing useful to do on a failed stdout write
		return
	}

	cfg := loadConfig("")
	data, err := yaml.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data) //nolint:errcheck // Nothing useful to do on a failed stdout write
}
