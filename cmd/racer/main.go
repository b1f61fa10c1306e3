// racer is a lane-dodging arcade game: steer a car between three lanes and
// pass as much oncoming traffic as you can.
//
// Usage:
//
//	racer                    - Play in the terminal
//	racer play               - Play with a chosen frontend (tui, window, headless)
//	racer list               - List available frontends
//	racer serve              - Start SSH server for remote play
//	racer config             - Print the default configuration
//
// Global flags:
//
//	--fps <rate>        - Override the tick rate from the config
//	--seed <value>      - Set RNG seed for reproducible lanes
//	--config <path>     - Use a specific config file
//	--log-level <level> - debug, info, warn or error
//	--log-file <path>   - Write logs to a file (the terminal frontend logs nowhere else)
//
// Build with -tags nowindow to leave out the desktop window frontend and its
// cgo/X11 dependencies, e.g. for an SSH-only server.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import frontends to register them; the window frontend lives in window.go
	_ "github.com/vovakirdan/lane-racer/internal/platform/headless"
	_ "github.com/vovakirdan/lane-racer/internal/platform/tui"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "racer",
	Short: "Lane Racer - dodge traffic in your terminal",
	Long: `Lane Racer is an arcade game: your car drives up a three-lane road and
oncoming cars scroll down towards you. Every car you pass scores a point;
the first collision ends the round.

Running racer without a command plays in the terminal.

Available commands:
  play     - Play with a chosen frontend
  list     - Show available frontends
  serve    - Start SSH server for remote play
  config   - Print the default configuration

Examples:
  racer
  racer play --frontend window
  racer play --frontend headless --ticks 36000 --seed 7
  racer serve --ssh :2222`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		runFrontend(cmd.Context(), "tui", 0)
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = use config, default 60)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
