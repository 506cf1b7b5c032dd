package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pushbox/internal/registry"
	"github.com/vovakirdan/pushbox/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list [pack]",
	Short: "List packs, or the levels of a pack",
	Long: `Without arguments, shows every registered pack: the built-in ones and
those loaded from the levels directory. With a pack ID, shows its levels
and marks the solved ones.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runList,
}

func runList(_ *cobra.Command, args []string) {
	a, err := setup(logToStderr, true)
	if err != nil {
		fail("%v", err)
	}
	defer a.Close()

	if len(args) == 1 {
		listLevels(a.store, args[0])
		return
	}
	listPacks(a.store)
}

func listPacks(store *storage.Store) {
	packs := registry.List()
	if len(packs) == 0 {
		fmt.Println("No packs available.")
		return
	}

	fmt.Println("Available packs:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, p := range packs {
		maxIDLen = max(maxIDLen, len(p.ID))
	}

	fmt.Printf("  %-*s  %-24s  %6s  %6s  %s\n", maxIDLen, "ID", "Title", "Levels", "Solved", "Source")
	fmt.Printf("  %-*s  %-24s  %6s  %6s  %s\n", maxIDLen, "--", "-----", "------", "------", "------")

	for _, p := range packs {
		solved := "-"
		if store != nil {
			if progress, err := store.PackProgress(p.ID); err == nil {
				solved = fmt.Sprintf("%d", countSolved(progress))
			}
		}
		fmt.Printf("  %-*s  %-24s  %6d  %6s  %s\n", maxIDLen, p.ID, p.Title, p.Levels, solved, p.Source)
	}

	fmt.Println()
	fmt.Println("Run 'pushbox play <id>' to play a pack.")
}

func listLevels(store *storage.Store, packID string) {
	pack, err := registry.Get(packID)
	if err != nil {
		fail("%v\nRun 'pushbox list' to see available packs.", err)
	}

	var progress map[string]storage.Progress
	if store != nil {
		progress, _ = store.PackProgress(pack.ID)
	}

	fmt.Printf("%s (%d of %d solved)\n", pack.Title, countSolved(progress), pack.Len())
	if pack.Description != "" {
		fmt.Println(pack.Description)
	}
	fmt.Println()

	for i, lvl := range pack.Levels {
		p := progress[lvl.ID]
		mark := " "
		if p.Completed {
			mark = "✓"
		}
		best := ""
		if p.HasBest() {
			best = fmt.Sprintf("best %d", p.BestMoves)
		}
		fmt.Printf("  %s %3d. %-8s %-24s %s\n", mark, i+1, lvl.ID, lvl.Name, best)
	}

	fmt.Println()
	fmt.Printf("Run 'pushbox play %s <level>' to play a level.\n", pack.ID)
}

func countSolved(progress map[string]storage.Progress) int {
	n := 0
	for _, p := range progress {
		if p.Completed {
			n++
		}
	}
	return n
}
