package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pumpkin-seesaw/internal/config"
	"github.com/vovakirdan/pumpkin-seesaw/internal/core"
	"github.com/vovakirdan/pumpkin-seesaw/internal/games/seesaw"
	"github.com/vovakirdan/pumpkin-seesaw/internal/platform/tui"
	"github.com/vovakirdan/pumpkin-seesaw/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLang       string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Pumpkin Seesaw",
	Long: `Start a round of Pumpkin Seesaw.

Controls:
  Arrows/hjkl  - Select a pumpkin
  Space/Enter  - Put it on the seesaw or take it off
  Mouse click  - Put a pumpkin on or take it off
  R            - New round
  S            - Settings
  P            - Pause
  Ctrl+S       - Save a text screenshot
  Q/Ctrl+C     - Quit

After balancing:
  Enter/N      - New game
  C/Esc        - Keep playing

Difficulty options:
  easy   - 2-4 pumpkins per side, 1-5 kg
  normal - 4-8 pumpkins per side, 1-12 kg
  hard   - 6-10 pumpkins per side, 3-20 kg

Examples:
  seesaw play
  seesaw play --difficulty easy
  seesaw play --lang zh
  seesaw play --config ./my-seesaw.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	cmd.Flags().StringVar(&flagLang, "lang", "en", "Language: en, zh")
}

func runPlay(cmd *cobra.Command, args []string) {
	if flagFPS <= 0 {
		fmt.Fprintf(os.Stderr, "Error: --fps must be positive, got %d\n", flagFPS)
		os.Exit(1)
	}
	if flagDifficulty != "" && config.ParseDifficulty(flagDifficulty) == "" {
		fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q (want easy, normal or hard)\n", flagDifficulty)
		os.Exit(1)
	}

	if flagConfig != "" {
		if _, err := config.LoadFile(flagConfig); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	logger, closeLog, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}

	// Set config path, difficulty and language before creation
	seesaw.SetConfigPath(flagConfig)
	seesaw.SetDifficultyPreset(flagDifficulty)
	seesaw.SetLanguage(flagLang)
	seesaw.SetLogger(logger)

	game, err := registry.Create("seesaw")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	if runErr := tui.Run(game, cfg, logger); runErr != nil {
		logger.Error("game stopped", "error", runErr)
		closeLog()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
