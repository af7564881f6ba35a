package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flying-bird/internal/config"
	"github.com/vovakirdan/flying-bird/internal/platform/tui"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective tuning",
	Long: `Show the tuning the game would run with.

Search order:
  1. --config <path>
  2. ~/.flyingbird/config.yaml
  3. ./configs/flyingbird.yaml
  4. Built-in defaults

--fps overrides loop.tick_interval.

Examples:
  flyingbird config
  flyingbird config --config ./my-tuning.yaml
  flyingbird config --defaults > ~/.flyingbird/config.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in tuning file as YAML")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagDefaults {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	tuning, _, err := loadSettings()
	if err != nil {
		return err
	}
	fmt.Println(tui.RenderTuning(tuning))
	return nil
}
