package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickbreak/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the breakout configuration as YAML after applying the config
search path, --config and --difficulty. Redirect it to a file to start a
custom config.

Search order:
  --config <path>
  ~/.brickbreak/configs/breakout.yaml
  ./configs/breakout.yaml
  built-in defaults

Examples:
  brickbreak config
  brickbreak config --difficulty hard
  brickbreak config > ~/.brickbreak/configs/breakout.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, _, err := resolveConfig()
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
