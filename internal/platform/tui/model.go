package tui

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/penguin-warrior/internal/audio"
	"github.com/vovakirdan/penguin-warrior/internal/core"
	"github.com/vovakirdan/penguin-warrior/internal/pixel"
	"github.com/vovakirdan/penguin-warrior/internal/registry"
)

var footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

// Options configures a terminal game session.
type Options struct {
	Config        core.RuntimeConfig
	Audio         *audio.Manager // Optional
	Logger        *log.Logger    // Optional
	Hold          time.Duration  // Key hold after the last repeat; DefaultHold if zero
	ScreenshotDir string         // Defaults to ~/.penguin-warrior/screenshots
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game       registry.Game
	surface    *pixel.Surface
	renderer   *Renderer
	config     core.RuntimeConfig
	keys       *KeyMapper
	latch      *holdLatch
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	audio      *audio.Manager
	logger     *log.Logger
	shotDir    string
	notice     string
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
// cfg.ScreenW and cfg.ScreenH are terminal cells; the surface is sized from them.
func NewModel(game registry.Game, opts Options) Model {
	cfg := opts.Config
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	cfg.ScreenW, cfg.ScreenH = SurfaceSize(cfg.ScreenW, cfg.ScreenH)

	hold := opts.Hold
	if hold <= 0 {
		hold = DefaultHold
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	shotDir := opts.ScreenshotDir
	if shotDir == "" {
		shotDir = filepath.Join(os.Getenv("HOME"), ".penguin-warrior", "screenshots")
	}

	return Model{
		game:       game,
		surface:    pixel.NewSurface(cfg.ScreenW, cfg.ScreenH),
		renderer:   NewRenderer(),
		config:     cfg,
		keys:       NewKeyMapper(),
		latch:      newHoldLatch(cfg.TickRate, hold),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
		audio:      opts.Audio,
		logger:     logger,
		shotDir:    shotDir,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("match started", "game", m.game.ID(), "width", m.config.ScreenW, "height", m.config.ScreenH, "seed", m.config.Seed)

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case action == core.ActionNone:
	case latches(action):
		m.latch.Press(action)
	case action == core.ActionRestart && !m.gameState.GameOver:
		// Restart only applies to a finished match
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize resizes the surface and the game's view without restarting.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	w, h := SurfaceSize(msg.Width, msg.Height)
	m.config.ScreenW = w
	m.config.ScreenH = h
	m.surface.Resize(w, h)
	m.game.Resize(w, h)
	m.help.Width = msg.Width
	m.logger.Debug("resized", "width", w, "height", h)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		// New seed for the new match
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.latch.Release()
		m.inputFrame.Clear()
		m.logger.Info("match restarted", "seed", m.config.Seed)
		return m, tickCmd(m.config.TickRate)
	}

	m.latch.Apply(&m.inputFrame)
	result := m.game.Step(m.inputFrame)
	wasOver := m.gameState.GameOver
	m.gameState = result.State

	if m.audio != nil {
		m.audio.PlayEvents(result.Events)
	}
	for _, ev := range result.Events {
		m.logger.Debug("event", "kind", ev.Kind, "side", ev.Side)
	}
	if m.gameState.GameOver && !wasOver {
		m.logger.Info("match over", "score", m.gameState.Score, "opponent", m.gameState.OpponentScore, "won", m.gameState.Won)
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot writes the current frame as a PNG.
func (m *Model) saveScreenshot() {
	m.game.Render(m.surface)

	path, err := writeScreenshot(m.shotDir, m.game.ID(), m.surface, time.Now())
	if err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		m.notice = "screenshot failed"
		return
	}
	m.logger.Info("screenshot saved", "path", path)
	m.notice = "saved " + filepath.Base(path)
}

// writeScreenshot encodes the surface into dir and returns the file path.
func writeScreenshot(dir, id string, s *pixel.Surface, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: failed to create %s: %w", dir, err)
	}

	filename := fmt.Sprintf("%s_%s.png", id, now.Format("20060102_150405"))
	path := filepath.Join(dir, filename)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return "", fmt.Errorf("tui: failed to create %s: %w", path, err)
	}
	if err := png.Encode(f, s.Image()); err != nil {
		f.Close() //nolint:errcheck // encode error takes precedence
		return "", fmt.Errorf("tui: failed to encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("tui: failed to write %s: %w", path, err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.surface)

	var b strings.Builder
	b.WriteString(m.renderer.Render(m.surface))
	b.WriteByte('\n')

	footer := m.help.View(m.keys.Keys)
	if m.notice != "" {
		footer = m.notice + "  " + footer
	}
	b.WriteString(footerStyle.Render(footer))
	return b.String()
}

// Run starts the Bubble Tea program for the given game.
func Run(game registry.Game, opts Options) error {
	model := NewModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
