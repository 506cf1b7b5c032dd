package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pushbox/internal/platform/tui"
	"github.com/vovakirdan/pushbox/internal/registry"
	"github.com/vovakirdan/pushbox/internal/storage"
)

var (
	flagPlain  bool
	flagRecent int
	flagClear  bool
)

var progressCmd = &cobra.Command{
	Use:   "progress [pack]",
	Short: "Show solved levels and best move counts",
	Long: `Opens the progress board: one table per pack with every level, whether
it is solved, the best move count and how often it was completed.

With --plain the same data is printed as text. --recent lists the latest
completions. --clear erases saved progress for the pack, or for every
pack when none is given.

Examples:
  pushbox progress
  pushbox progress starter --plain
  pushbox progress --recent 10
  pushbox progress starter --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runProgress,
}

func init() {
	progressCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print as text instead of opening the board")
	progressCmd.Flags().IntVar(&flagRecent, "recent", 0, "List the N most recent completions")
	progressCmd.Flags().BoolVar(&flagClear, "clear", false, "Erase saved progress")
}

func runProgress(_ *cobra.Command, args []string) {
	target := logToFile
	if flagPlain || flagRecent > 0 || flagClear {
		target = logToStderr
	}
	a, err := setup(target, true)
	if err != nil {
		fail("%v", err)
	}
	defer a.Close()

	if a.store == nil {
		a.Close()
		fail("no progress database")
	}

	packID := ""
	if len(args) == 1 {
		packID = args[0]
		if !registry.Exists(packID) {
			a.Close()
			fail("unknown pack %q\nRun 'pushbox list' to see available packs.", packID)
		}
	}

	switch {
	case flagClear:
		if err := a.store.ClearProgress(packID); err != nil {
			a.Close()
			fail("%v", err)
		}
		if packID == "" {
			fmt.Println("Cleared all progress.")
		} else {
			fmt.Printf("Cleared progress for %s.\n", packID)
		}

	case flagRecent > 0:
		printRecent(a.store, flagRecent)

	case flagPlain:
		printProgress(a.store, packID)

	default:
		cfg := a.runtimeConfig()
		if _, err := tui.RunProgress(a.store, cfg.ScreenW, cfg.ScreenH); err != nil {
			a.Close()
			fail("%v", err)
		}
	}
}

func printProgress(store *storage.Store, packID string) {
	for _, info := range registry.List() {
		if packID != "" && info.ID != packID {
			continue
		}
		pack, err := registry.Get(info.ID)
		if err != nil {
			continue
		}
		progress, err := store.PackProgress(pack.ID)
		if err != nil {
			fail("%v", err)
		}

		fmt.Printf("%s (%s): %d of %d solved\n", pack.Title, pack.ID, countSolved(progress), pack.Len())
		for i, lvl := range pack.Levels {
			p, ok := progress[lvl.ID]
			if !ok || !p.Completed {
				fmt.Printf("  %3d. %-24s -\n", i+1, lvl.Name)
				continue
			}
			fmt.Printf("  %3d. %-24s best %-4d plays %-3d %s\n", i+1, lvl.Name, p.BestMoves, p.Completions, p.BestPath)
		}
		fmt.Println()
	}

	if packID == "" {
		printOrphans(store)
	}
}

// printOrphans lists saved progress for packs that are not registered, for
// example user packs whose file was removed.
func printOrphans(store *storage.Store) {
	all, err := store.AllProgress()
	if err != nil {
		fail("%v", err)
	}

	orphans := make(map[string]int)
	var order []string
	for _, p := range all {
		if registry.Exists(p.Pack) || !p.Completed {
			continue
		}
		if _, ok := orphans[p.Pack]; !ok {
			order = append(order, p.Pack)
		}
		orphans[p.Pack]++
	}
	for _, id := range order {
		fmt.Printf("%s (not loaded): %d levels solved\n", id, orphans[id])
	}
}

func printRecent(store *storage.Store, limit int) {
	recent, err := store.RecentCompletions(limit)
	if err != nil {
		fail("%v", err)
	}
	if len(recent) == 0 {
		fmt.Println("No completions yet.")
		return
	}
	for _, c := range recent {
		fmt.Printf("  %s  %-12s %-8s %4d moves\n", c.CreatedAt.Local().Format("2006-01-02 15:04"), c.Pack, c.Level, c.Moves)
	}
}
