package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/penguin-warrior/internal/core"
	"github.com/vovakirdan/penguin-warrior/internal/platform/tui"
	"github.com/vovakirdan/penguin-warrior/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play in the terminal",
	Long: `Start a match in the terminal. The mode defaults to "warrior".

Each text cell shows two pixels, so a bigger terminal with a smaller font
shows more of the world.

Controls:
  A/Left     - Turn left
  D/Right    - Turn right
  W/Up       - Thrust
  S/Down     - Reverse thrust
  Space/J    - Fire phaser
  P/Esc      - Pause
  R          - Restart (after game over)
  Ctrl+S     - Save a PNG screenshot
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Gentle opponent, tougher shields
  normal - Opponent grows sharper with your score
  hard   - Sharp opponent, weaker shields
  fixed  - No progression, stays at the config's initial level

Examples:
  warrior play
  warrior play warrior_endless
  warrior play --difficulty hard --seed 42
  warrior play --log-level debug --log-file warrior.log`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := "warrior"
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fail("unknown game mode %q\nRun 'warrior list' to see available modes.", gameID)
	}

	cfg, _, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	// The terminal belongs to the game, so logs only go to --log-file
	logger, closeLog, err := newLogger(io.Discard)
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

	width, height := terminalSize()
	opts := tui.Options{
		Config: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Audio:  sound,
		Logger: logger,
	}

	if err := tui.Run(game, opts); err != nil {
		fail("running game: %v", err)
	}
}

// terminalSize returns the terminal size in cells, 80x24 if unknown.
func terminalSize() (int, int) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}
