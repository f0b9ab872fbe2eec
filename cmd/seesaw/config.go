package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pumpkin-seesaw/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print or check configuration files",
	Long: `Work with seesaw.yaml configuration files.

Config files are looked up in this order:
  --config <path>
  ~/.seesaw/configs/seesaw.yaml
  ./configs/seesaw.yaml
  built-in defaults`,
}

var configDefaultCmd = &cobra.Command{
	Use:   "default",
	Short: "Print the built-in configuration",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := writeDefaultConfig(cmd.OutOrStdout()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

var configCheckCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Validate a configuration file",
	Args:  cobra.ExactArgs(1),
	Run:   runConfigCheck,
}

func init() {
	configCmd.AddCommand(configDefaultCmd)
	configCmd.AddCommand(configCheckCmd)
}

func writeDefaultConfig(w io.Writer) error {
	if _, err := w.Write(config.DefaultYAML()); err != nil {
		return fmt.Errorf("write default config: %w", err)
	}
	return nil
}

func runConfigCheck(cmd *cobra.Command, args []string) {
	cfg, err := config.LoadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	p := cfg.Pieces
	fmt.Printf("%s is valid.\n", args[0])
	fmt.Printf("  left pumpkins:  %d-%d\n", p.LeftMin, p.LeftMax)
	fmt.Printf("  right pumpkins: %d-%d\n", p.RightMin, p.RightMax)
	fmt.Printf("  weight:         %d-%d kg\n", p.MinWeight, p.MaxWeight)
	fmt.Printf("  colors:         %s / %s\n", cfg.Appearance.ColorPreset, cfg.Appearance.SeesawStyle)
}
