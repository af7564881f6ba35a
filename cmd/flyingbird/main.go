// flyingbird is a one-button arcade game for the terminal.
//
// Usage:
//
//	flyingbird play            - Play in this terminal
//	flyingbird serve           - Start an SSH server, one game per connection
//	flyingbird config          - Show the effective tuning
//
// Global flags:
//
//	--fps <rate>         - Tick rate, overrides loop.tick_interval
//	--seed <value>       - RNG seed for reproducible obstacles
//	--config <path>      - Tuning YAML file
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/flying-bird/internal/config"
	"github.com/vovakirdan/flying-bird/internal/core"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flyingbird",
	Short: "Flying Bird - tap to keep the bird in the air",
	Long: `Flying Bird is a one-button arcade game for the terminal.

Tap to flap, dodge the obstacles, and score a point for every obstacle
that leaves the screen. Hitting one ends the run; tap again to restart.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  config   - Show the effective tuning

Examples:
  flyingbird play
  flyingbird play --seed 42 --fps 30
  flyingbird serve --ssh :2222
  flyingbird config --defaults > my-tuning.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate in ticks per second (0 = use the tuning file)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a tuning YAML file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger creates a logger writing to w at the --log-level level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// loadSettings loads the tuning and applies the global flags on top of it.
func loadSettings() (config.Tuning, core.RuntimeConfig, error) {
	tuning, err := config.Load(flagConfig)
	if err != nil {
		return config.Tuning{}, core.RuntimeConfig{}, err
	}

	rc := core.DefaultConfig()
	rc.TickRate = flagFPS
	rc.Seed = flagSeed
	if interval := rc.TickInterval(); interval > 0 {
		tuning.Loop.TickInterval = interval
	}
	return tuning, rc, nil
}
