package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pushbox/internal/platform/tui"
	"github.com/vovakirdan/pushbox/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a pack and level interactively",
	Long: `Start pushbox in interactive menu mode.

Choose a pack, then a level. Leaving a level with Esc returns to the
menu. Tab opens the progress board.

Controls:
  Up/Down/j/k  - Navigate
  Enter/Space  - Select
  Esc/B        - Back to the pack list
  Tab          - Progress board
  Q            - Quit`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	a, err := setup(logToFile, true)
	if err != nil {
		fail("%v", err)
	}
	defer a.Close()

	cfg := a.runtimeConfig()
	opts := tui.PlayOptionsFrom(a.cfg, a.logger)

	for {
		result, err := tui.RunMenu(a.store, cfg, a.logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		cfg = result.Config

		switch {
		case result.Quit:
			return

		case result.WantsProgress:
			goBack, err := tui.RunProgress(a.store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			if !goBack {
				return
			}

		case result.Selection != nil:
			pack, err := registry.Get(result.Selection.PackID)
			if err != nil {
				a.logger.Warn("selected pack vanished", "pack", result.Selection.PackID, "err", err)
				continue
			}
			back, err := tui.Run(pack, result.Selection.LevelID, a.store, cfg, opts)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error running level: %v\n", err)
				continue
			}
			if !back {
				return
			}
		}
	}
}
