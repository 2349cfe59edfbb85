package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game configuration",
	Long: `Print the game configuration as YAML after applying the search path:

  1. --config <path>
  2. <config dir>/FlappyBird/flappy.yaml
  3. ./configs/flappy.yaml
  4. built-in defaults

Redirect the output to a file to start a custom config.

Examples:
  flappy config
  flappy config --defaults > ~/.config/FlappyBird/flappy.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults, ignoring config files")
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg := config.DefaultFlappyConfig()
	if !flagDefaults {
		loaded, err := loadConfig()
		if err != nil {
			return err
		}
		cfg = loaded
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
