// warrior is Penguin Warrior: a space dogfight against a computer opponent,
// played in the terminal or in a window.
//
// Usage:
//
//	warrior list              - List game modes
//	warrior play [mode]       - Play in the terminal
//	warrior menu              - Title menu to pick mode and difficulty
//	warrior window [mode]     - Play in a desktop window
//	warrior config            - Print the effective configuration
//
// Global flags:
//
//	--config <path>      - Custom configuration YAML
//	--difficulty <name>  - easy, normal, hard or fixed
//	--fps <rate>         - Set tick rate (default: 30)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--mute               - Disable sound
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/penguin-warrior/internal/audio"
	"github.com/vovakirdan/penguin-warrior/internal/config"

	// Import games to register them
	_ "github.com/vovakirdan/penguin-warrior/internal/games/warrior"
)

var (
	// Global flags
	flagConfig     string
	flagDifficulty string
	flagFPS        int
	flagSeed       int64
	flagMute       bool
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "warrior",
	Short: "Penguin Warrior - a space dogfight in your terminal",
	Long: `Penguin Warrior pits your ship against a computer-controlled devil in a
world much larger than the screen. Charge your phaser, line up the shot and
be the first to reach the win score.

Available commands:
  list     - Show game modes
  play     - Play in the terminal
  menu     - Title menu with mode and difficulty
  window   - Play in a desktop window
  config   - Print the effective configuration

Examples:
  warrior play
  warrior play warrior_endless --difficulty hard
  warrior menu --fps 60
  warrior window --scale 2
  warrior config --config ./my-warrior.yaml`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(configCmd)
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// newLogger builds the logger. Logs go to --log-file when given and to
// fallback otherwise. The returned closer releases the file.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	out, closer := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		out = f
		closer = func() { f.Close() } //nolint:errcheck // best-effort close on exit
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "warrior",
		Level:           level,
	})
	return logger, closer, nil
}

// loadConfig loads the configuration and applies --difficulty if given.
func loadConfig() (config.WarriorConfig, config.DifficultyPreset, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, "", err
	}

	preset := config.DifficultyNormal
	if flagDifficulty != "" {
		preset, err = config.ParsePreset(flagDifficulty)
		if err != nil {
			return cfg, "", err
		}
		config.ApplyPreset(&cfg, preset)
	}
	return cfg, preset, nil
}

// newAudio opens the speaker unless sound is off. Failure is not fatal:
// the returned manager stays silent.
func newAudio(cfg config.AudioConfig, logger *log.Logger) *audio.Manager {
	m := audio.NewManager(beep.SampleRate(cfg.SampleRate), cfg.Volume, logger)
	if flagMute || !cfg.Enabled {
		logger.Debug("audio disabled")
		return m
	}
	if err := m.Initialize(); err != nil {
		logger.Warn("continuing without sound", "err", err)
	}
	return m
}
