// pushbox is a Sokoban-style box pushing puzzle for the terminal.
//
// Usage:
//
//	pushbox list [pack]                  - List packs, or the levels of a pack
//	pushbox play <pack> [level]          - Play a pack
//	pushbox menu                         - Pick a pack and level interactively
//	pushbox progress [pack]              - Show solved levels and best move counts
//	pushbox replay <pack> <level> <path> - Apply a LURD path without a UI
//	pushbox check <file>                 - Validate a pack file
//	pushbox config                       - Print the effective configuration
//	pushbox serve                        - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.pushbox/config.yaml)
//	--db <path>         - Progress database (default: ~/.pushbox/progress.db)
//	--levels <dir>      - Directory with user pack files
//	--log-file <path>   - Log file for interactive commands
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Register built-in packs
	_ "github.com/vovakirdan/pushbox/internal/levels/builtin"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagLevels   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pushbox",
	Short: "Pushbox - push boxes onto targets in your terminal",
	Long: `Pushbox is a Sokoban-style puzzle game for the terminal.

Walk the warehouse keeper around, push every box onto a target and
try to do it in as few moves as possible. Progress and best solutions
are saved locally.

Available commands:
  list      - Show packs or the levels of a pack
  play      - Play a pack directly
  menu      - Interactive pack and level picker
  progress  - View solved levels and best scores
  replay    - Check a solution path without a UI
  check     - Validate a pack file
  config    - Print the effective configuration
  serve     - Start SSH server for remote play

Examples:
  pushbox list
  pushbox play starter
  pushbox play microban 2
  pushbox menu
  pushbox replay starter 2 dRurD
  pushbox serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to progress database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLevels, "levels", "", "Directory with user pack files (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(serveCmd)
}
