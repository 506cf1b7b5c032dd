package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pushbox/internal/registry"
	"github.com/vovakirdan/pushbox/internal/sokoban"
	"github.com/vovakirdan/pushbox/internal/storage"
)

var (
	flagRequireComplete bool
	flagRecord          bool
)

var replayCmd = &cobra.Command{
	Use:   "replay <pack> <level> <path>",
	Short: "Apply a LURD path to a level without a UI",
	Long: `Replays a move path on a level and prints the final grid.

The path uses LURD notation: u, d, l and r for walks, upper case for
pushes. Case is not checked against the board and any other character is
skipped. Moves after the level is solved are ignored.

With --require-complete the command exits with status 1 unless the path
solves the level. With --record a solving path is saved as a completion.

Examples:
  pushbox replay starter 1 R
  pushbox replay starter 2 dRurD --require-complete`,
	Args: cobra.ExactArgs(3),
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&flagRequireComplete, "require-complete", false, "Exit 1 if the path does not solve the level")
	replayCmd.Flags().BoolVar(&flagRecord, "record", false, "Save a solving path as a completion")
}

func runReplay(_ *cobra.Command, args []string) {
	a, err := setup(logToStderr, flagRecord)
	if err != nil {
		fail("%v", err)
	}
	defer a.Close()

	pack, err := registry.Get(args[0])
	if err != nil {
		a.Close()
		fail("%v", err)
	}
	level, err := pack.Level(args[1])
	if err != nil {
		a.Close()
		fail("%v", err)
	}

	var opts []sokoban.Option
	if flagRecord && a.store != nil {
		opts = append(opts, sokoban.WithReporter(storage.Reporter{Store: a.store, Logger: a.logger}))
	}

	state, accepted := sokoban.Replay(level, args[2], opts...)

	fmt.Printf("%s · %s\n\n", pack.Title, level.Name)
	fmt.Println(state.Grid.String())
	fmt.Println()
	fmt.Printf("Moves:    %d\n", state.Moves)
	fmt.Printf("Accepted: %d\n", accepted)
	fmt.Printf("Solved:   %v\n", state.LevelComplete)

	if flagRequireComplete && !state.LevelComplete {
		a.Close()
		os.Exit(1)
	}
}
