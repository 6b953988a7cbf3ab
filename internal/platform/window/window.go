// Package window runs the game in a desktop window with ebiten.
// The game's surface is uploaded as the whole screen every frame and
// ebiten scales it to the window.
package window

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/penguin-warrior/internal/audio"
	"github.com/vovakirdan/penguin-warrior/internal/core"
	"github.com/vovakirdan/penguin-warrior/internal/pixel"
	"github.com/vovakirdan/penguin-warrior/internal/registry"
)

// Options configures a window session.
type Options struct {
	Config core.RuntimeConfig
	Scale  int            // Integer window scale; 1 if zero
	Audio  *audio.Manager // Optional
	Logger *log.Logger    // Optional
}

// held maps keys that act while they are down.
var held = []struct {
	keys   []ebiten.Key
	action core.Action
}{
	{[]ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}, core.ActionTurnLeft},
	{[]ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}, core.ActionTurnRight},
	{[]ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp}, core.ActionThrust},
	{[]ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown}, core.ActionReverse},
	{[]ebiten.Key{ebiten.KeySpace, ebiten.KeyJ}, core.ActionFire},
}

// pressed maps keys that act once per press.
var pressed = []struct {
	keys   []ebiten.Key
	action core.Action
}{
	{[]ebiten.Key{ebiten.KeyP, ebiten.KeyEscape}, core.ActionPause},
	{[]ebiten.Key{ebiten.KeyR}, core.ActionRestart},
}

// Window implements ebiten.Game around a registry game.
type Window struct {
	game    registry.Game
	surface *pixel.Surface
	config  core.RuntimeConfig
	audio   *audio.Manager
	logger  *log.Logger
	state   core.GameState
}

// New creates a window for the game. The game is reset immediately.
func New(game registry.Game, opts Options) *Window {
	cfg := opts.Config
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	w := &Window{
		game:    game,
		surface: pixel.NewSurface(cfg.ScreenW, cfg.ScreenH),
		config:  cfg,
		audio:   opts.Audio,
		logger:  logger,
	}
	game.Reset(cfg)
	w.state = game.State()
	return w
}

// Update advances the game by one tick.
func (w *Window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	in := core.NewInputFrame()
	for _, b := range held {
		for _, k := range b.keys {
			if ebiten.IsKeyPressed(k) {
				in.Set(b.action)
			}
		}
	}
	for _, b := range pressed {
		for _, k := range b.keys {
			if inpututil.IsKeyJustPressed(k) {
				in.Set(b.action)
			}
		}
	}

	result := w.game.Step(in)
	if w.audio != nil {
		w.audio.PlayEvents(result.Events)
	}
	for _, ev := range result.Events {
		w.logger.Debug("event", "kind", ev.Kind, "side", ev.Side)
	}
	if result.State.GameOver && !w.state.GameOver {
		w.logger.Info("match over", "score", result.State.Score, "opponent", result.State.OpponentScore, "won", result.State.Won)
	}
	w.state = result.State
	return nil
}

// Draw uploads the frame.
func (w *Window) Draw(screen *ebiten.Image) {
	w.game.Render(w.surface)
	screen.WritePixels(w.surface.Packed())
}

// Layout keeps the logical screen at the configured size.
func (w *Window) Layout(_, _ int) (int, int) {
	return w.config.ScreenW, w.config.ScreenH
}

// Run opens the window and blocks until it is closed.
func Run(game registry.Game, opts Options) error {
	scale := opts.Scale
	if scale < 1 {
		scale = 1
	}

	w := New(game, opts)
	ebiten.SetWindowSize(w.config.ScreenW*scale, w.config.ScreenH*scale)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetTPS(w.config.TickRate)
	w.logger.Info("window opened", "width", w.config.ScreenW, "height", w.config.ScreenH, "scale", scale, "tps", w.config.TickRate)

	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
