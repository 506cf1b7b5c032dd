package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/pushbox/internal/platform/tui"
	"github.com/vovakirdan/pushbox/internal/registry"
)

var flagNoMouse bool

var playCmd = &cobra.Command{
	Use:   "play <pack> [level]",
	Short: "Play a pack",
	Long: `Start playing the given pack. Without a level ID the first level you
have not solved yet is opened.

Controls:
  Arrows/WASD/HJKL  - Move
  U/Z/Backspace     - Undo
  R                 - Restart level
  N/P               - Next/previous level
  ?                 - Toggle help
  Ctrl+S            - Save a text screenshot
  Esc/Q             - Quit

Examples:
  pushbox play starter
  pushbox play microban 3
  pushbox play mypack --levels ./packs`,
	Args: cobra.RangeArgs(1, 2),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagNoMouse, "no-mouse", false, "Disable click-to-move")
}

func runPlay(_ *cobra.Command, args []string) {
	a, err := setup(logToFile, true)
	if err != nil {
		fail("%v", err)
	}
	defer a.Close()

	pack, err := registry.Get(args[0])
	if err != nil {
		a.Close()
		fail("%v\nRun 'pushbox list' to see available packs.", err)
	}

	levelID := ""
	if len(args) == 2 {
		levelID = args[1]
	}

	opts := tui.PlayOptionsFrom(a.cfg, a.logger)
	if flagNoMouse {
		opts.Mouse = false
	}

	if _, err := tui.Run(pack, levelID, a.store, a.runtimeConfig(), opts); err != nil {
		a.Close()
		fail("%v", err)
	}
}
