package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/penguin-warrior/internal/core"
	"github.com/vovakirdan/penguin-warrior/internal/platform/window"
	"github.com/vovakirdan/penguin-warrior/internal/registry"
)

var (
	flagScale  int
	flagWidth  int
	flagHeight int
)

var windowCmd = &cobra.Command{
	Use:   "window [mode]",
	Short: "Play in a desktop window",
	Long: `Start a match in a desktop window. The mode defaults to "warrior".

Keys are the same as in the terminal, without the hold delay.

Examples:
  warrior window
  warrior window --scale 2
  warrior window --width 800 --height 600 --fps 60`,
	Args: cobra.MaximumNArgs(1),
	Run:  runWindow,
}

func init() {
	def := core.DefaultConfig()
	windowCmd.Flags().IntVar(&flagScale, "scale", 1, "Integer window scale")
	windowCmd.Flags().IntVar(&flagWidth, "width", def.ScreenW, "Screen width in pixels")
	windowCmd.Flags().IntVar(&flagHeight, "height", def.ScreenH, "Screen height in pixels")
}

func runWindow(_ *cobra.Command, args []string) {
	gameID := "warrior"
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		fail("unknown game mode %q\nRun 'warrior list' to see available modes.", gameID)
	}
	if flagWidth <= 0 || flagHeight <= 0 {
		fail("screen size %dx%d must be positive", flagWidth, flagHeight)
	}

	cfg, preset, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	sound := newAudio(cfg.Audio, logger)
	defer sound.Close()

	game, err := registry.Create(gameID, cfg)
	if err != nil {
		fail("creating game: %v", err)
	}
	logger.Info("match started", "mode", gameID, "difficulty", preset)

	opts := window.Options{
		Config: core.RuntimeConfig{
			ScreenW:  flagWidth,
			ScreenH:  flagHeight,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Scale:  flagScale,
		Audio:  sound,
		Logger: logger,
	}
	if err := window.Run(game, opts); err != nil {
		fail("%v", err)
	}
}
