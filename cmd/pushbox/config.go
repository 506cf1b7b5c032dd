package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pushbox/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration after the search order and flag overrides
are applied, as YAML. Redirect it to ~/.pushbox/config.yaml to start
customizing. With --defaults the built-in defaults are printed instead.`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagDefaults {
		fmt.Print(string(config.DefaultYAML()))
		return
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fail("%v", err)
	}
	applyFlags(&cfg)

	data, err := cfg.Marshal()
	if err != nil {
		fail("%v", err)
	}
	fmt.Printf("# source: %s\n", cfg.Source)
	fmt.Print(string(data))
}
