package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/penguin-warrior/internal/config"
	"github.com/vovakirdan/penguin-warrior/internal/core"
	"github.com/vovakirdan/penguin-warrior/internal/platform/tui"
	"github.com/vovakirdan/penguin-warrior/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the title menu",
	Long: `Start in interactive menu mode.

Pick a mode with Up/Down, change the difficulty with Left/Right and press
Enter to play. After quitting a match you return to the menu.

Controls:
  Up/Down/j/k     - Choose mode
  Left/Right/h/l  - Choose difficulty
  Enter/Space     - Play
  Q/Esc           - Quit

Examples:
  warrior menu
  warrior menu --difficulty easy --fps 60`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	base, preset, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	sound := newAudio(base.Audio, logger)
	defer sound.Close()

	width, height := terminalSize()
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(cfg, preset)
		if err != nil {
			logger.Error("menu failed", "err", err)
			fail("%v", err)
		}

		// Update config with any size changes
		cfg = menuResult.Config
		preset = menuResult.Difficulty

		if menuResult.Quit {
			return
		}

		gameCfg := base
		config.ApplyPreset(&gameCfg, preset)

		game, err := registry.Create(menuResult.GameID, gameCfg)
		if err != nil {
			fail("creating game: %v", err)
		}
		logger.Info("starting from menu", "mode", menuResult.GameID, "difficulty", preset)

		if err := tui.Run(game, tui.Options{Config: cfg, Audio: sound, Logger: logger}); err != nil {
			fail("running game: %v", err)
		}
	}
}
