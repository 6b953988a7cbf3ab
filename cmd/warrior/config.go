package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/penguin-warrior/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration a match would use, after the search order and
--difficulty are applied. Save the output to ~/.penguin-warrior/configs/warrior.yaml
or ./configs/warrior.yaml to customize it.

Examples:
  warrior config
  warrior config --difficulty hard
  warrior config --defaults > configs/warrior.yaml`,
	Run: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults with comments")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagDefaults {
		os.Stdout.Write(config.DefaultYAML()) //nolint:errcheck // stdout
		return
	}

	cfg, _, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		fail("%v", err)
	}
	os.Stdout.Write(data) //nolint:errcheck // stdout
}
