package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/pushbox/internal/config"
	"github.com/vovakirdan/pushbox/internal/levels"
	"github.com/vovakirdan/pushbox/internal/registry"
	"github.com/vovakirdan/pushbox/internal/sokoban"
)

var checkCmd = &cobra.Command{
	Use:   "check <file|pack>",
	Short: "Validate the levels of a pack",
	Long: `Parses a pack file (.yaml, .yml, .sok or .txt) and reports problems in
each level: missing or duplicate players, box and target count mismatches,
unknown characters. A pack ID is looked up in the levels directory first
and then among the registered packs.

Exits with status 1 when any level has a problem.`,
	Args: cobra.ExactArgs(1),
	Run:  runCheck,
}

func runCheck(_ *cobra.Command, args []string) {
	pack, err := findPack(args[0])
	if err != nil {
		fail("%v", err)
	}

	fmt.Printf("%s (%s), %d levels\n\n", pack.Title, pack.ID, pack.Len())

	bad := 0
	for i, lvl := range pack.Levels {
		st := sokoban.ComputeStats(sokoban.Parse(lvl.Rows).Grid)
		problems := lvl.Validate()

		mark := "ok"
		if len(problems) > 0 {
			mark = "!!"
			bad++
		}
		fmt.Printf("  %s %3d. %-24s %dx%d  boxes %d  targets %d\n",
			mark, i+1, lvl.Name, st.Width, st.Height, st.Boxes, st.Targets)
		for _, p := range problems {
			fmt.Printf("         %s\n", p.Error())
		}
	}

	if bad > 0 {
		fmt.Printf("\n%d of %d levels have problems.\n", bad, pack.Len())
		os.Exit(1)
	}
	fmt.Println("\nAll levels look fine.")
}

// findPack resolves a file path, a pack in the levels directory or a
// registered pack, in that order.
func findPack(arg string) (levels.Pack, error) {
	quiet := log.New(io.Discard)

	if _, err := os.Stat(arg); err == nil {
		return levels.NewLoader("", quiet).LoadFile(arg)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return levels.Pack{}, err
	}
	applyFlags(&cfg)

	if dir, err := config.ExpandHome(cfg.Levels.Dir); err == nil && dir != "" {
		if p, err := levels.NewLoader(dir, quiet).LoadByID(arg); err == nil {
			return p, nil
		}
	}
	return registry.Get(arg)
}
