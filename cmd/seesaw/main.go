// seesaw is Pumpkin Seesaw, a terminal balancing game for children.
//
// Usage:
//
//	seesaw                     - Play
//	seesaw play                - Play (same as above)
//	seesaw config default      - Print the built-in configuration
//	seesaw config check <file> - Validate a configuration file
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible rounds
//	--log-file <path>    - Write logs to a file (default: off)
//	--log-level <level>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
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
	Use:   "seesaw",
	Short: "Pumpkin Seesaw - balance pumpkins in your terminal",
	Long: `Pumpkin Seesaw is a balancing game for children. Put pumpkins of
different weights on either side of the seesaw and try to make it level.

Available commands:
  play     - Play the game (default)
  config   - Print or check configuration files

Examples:
  seesaw
  seesaw --lang zh --difficulty easy
  seesaw config default > ~/.seesaw/configs/seesaw.yaml
  seesaw config check ./my-seesaw.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	addPlayFlags(rootCmd)
	addPlayFlags(playCmd)

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
}
