package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-reversi/internal/config"
)

var flagConfigDefault bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the active configuration",
	Long: `Print the configuration games will use and where it came from.
With --default, print the built-in reversi.yaml as a starting point.

Examples:
  reversi config
  reversi config --default > ~/.config/tui-reversi/reversi.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefault, "default", false, "Print the built-in default config")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	if flagConfigDefault {
		_, err := out.Write(config.DefaultYAML())
		return err
	}

	cfg, err := config.LoadReversi(flagConfig)
	if err != nil {
		return err
	}

	source := flagConfig
	if source == "" {
		source = config.UserConfigPath()
	}
	if source == "" {
		source = "built-in defaults (or ./configs/reversi.yaml)"
	}
	fmt.Fprintf(out, "# source: %s\n", source)

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("cannot encode config: %w", err)
	}
	_, err = out.Write(data)
	return err
}
