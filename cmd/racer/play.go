package main

import (
	"github.com/spf13/cobra"
)

var (
	flagFrontend string
	flagTicks    uint64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game on the chosen frontend.

Controls:
  Left/A     - Steer left
  Right/D    - Steer right
  R          - Restart (after game over)
  Q/Esc      - Quit

Frontends:
  tui       - Terminal, drawn with coloured cells (default)
  window    - Desktop window, pixel exact
  headless  - No display; an autopilot drives and progress is logged

Examples:
  racer play
  racer play --frontend window --fps 120
  racer play --frontend headless --ticks 36000 --seed 7 --log-level debug
  racer play --config ./my-racer.yaml`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		runFrontend(cmd.Context(), flagFrontend, flagTicks)
	},
}

func init() {
	playCmd.Flags().StringVar(&flagFrontend, "frontend", "tui", "Frontend to play on (see 'racer list')")
	playCmd.Flags().Uint64Var(&flagTicks, "ticks", 0, "Stop after this many ticks (0 = until quit); headless runs unpaced when set")
}
