package tui

import (
	"image/png"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/penguin-warrior/internal/core"
	"github.com/vovakirdan/penguin-warrior/internal/pixel"
)

type recordingGame struct {
	resets int
	w, h   int
	inputs []core.InputFrame
	state  core.GameState
}

func (g *recordingGame) ID() string    { return "recording" }
func (g *recordingGame) Title() string { return "Recording" }
func (g *recordingGame) Reset(cfg core.RuntimeConfig) {
	g.resets++
	g.w, g.h = cfg.ScreenW, cfg.ScreenH
}
func (g *recordingGame) Resize(w, h int) { g.w, g.h = w, h }
func (g *recordingGame) Step(in core.InputFrame) core.StepResult {
	g.inputs = append(g.inputs, in.Clone())
	return core.StepResult{State: g.state}
}
func (g *recordingGame) Render(dst *pixel.Surface) { dst.Fill(pixel.RGB(10, 20, 30)) }
func (g *recordingGame) State() core.GameState     { return g.state }

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(g *recordingGame) Model {
	return NewModel(g, Options{
		Config: core.RuntimeConfig{ScreenW: 40, ScreenH: 13, TickRate: 30, Seed: 1},
		Logger: log.New(io.Discard),
		Hold:   100 * time.Millisecond,
	})
}

func TestSurfaceSize(t *testing.T) {
	tests := []struct {
		cols, rows int
		w, h       int
	}{
		{80, 24, 80, 46},
		{1, 1, 1, 2},
		{0, 0, 1, 2},
	}
	for _, tt := range tests {
		w, h := SurfaceSize(tt.cols, tt.rows)
		if w != tt.w || h != tt.h {
			t.Errorf("SurfaceSize(%d, %d) = (%d, %d), expected (%d, %d)", tt.cols, tt.rows, w, h, tt.w, tt.h)
		}
	}
}

func TestRenderHalfBlocks(t *testing.T) {
	s := pixel.NewSurface(3, 3)
	s.Set(1, 0, pixel.RGB(255, 0, 0))
	s.Set(1, 1, pixel.RGB(0, 0, 255))

	out := NewRenderer().Render(s)
	if got := strings.Count(out, halfBlock); got != 6 {
		t.Errorf("Render() has %d half blocks, expected 6", got)
	}
	if got := strings.Count(out, "\n"); got != 1 {
		t.Errorf("Render() has %d line breaks, expected 1", got)
	}
}

func TestHex(t *testing.T) {
	if got := hex(pixel.RGB(0xd2, 0xff, 0x07)); got != "#d2ff07" {
		t.Errorf("hex() = %q, expected %q", got, "#d2ff07")
	}
}

func TestHoldLatch(t *testing.T) {
	h := newHoldLatch(30, 100*time.Millisecond) // 3 ticks
	h.Press(core.ActionThrust)

	for i := 0; i < 3; i++ {
		frame := core.NewInputFrame()
		h.Apply(&frame)
		if !frame.Has(core.ActionThrust) {
			t.Fatalf("tick %d: thrust released early", i)
		}
	}
	frame := core.NewInputFrame()
	h.Apply(&frame)
	if frame.Has(core.ActionThrust) {
		t.Errorf("thrust still held after the hold expired")
	}
}

func TestHoldLatchOpposites(t *testing.T) {
	h := newHoldLatch(30, time.Second)
	h.Press(core.ActionTurnLeft)
	h.Press(core.ActionTurnRight)

	frame := core.NewInputFrame()
	h.Apply(&frame)
	if frame.Has(core.ActionTurnLeft) || !frame.Has(core.ActionTurnRight) {
		t.Errorf("Apply() = %v, expected only TurnRight", frame.Actions)
	}

	h.Release()
	frame = core.NewInputFrame()
	h.Apply(&frame)
	if len(frame.Actions) != 0 {
		t.Errorf("Apply() after Release = %v, expected nothing", frame.Actions)
	}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{runes("a"), core.ActionTurnLeft, false},
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionTurnLeft, false},
		{runes("d"), core.ActionTurnRight, false},
		{runes("w"), core.ActionThrust, false},
		{tea.KeyMsg{Type: tea.KeyDown}, core.ActionReverse, false},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionFire, false},
		{runes("p"), core.ActionPause, false},
		{runes("r"), core.ActionRestart, false},
		{runes("q"), core.ActionQuit, true},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{runes("z"), core.ActionNone, false},
	}
	for _, tt := range tests {
		action, quit := km.MapKey(tt.msg)
		if action != tt.action || quit != tt.quit {
			t.Errorf("MapKey(%q) = (%v, %v), expected (%v, %v)", tt.msg.String(), action, quit, tt.action, tt.quit)
		}
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	k := DefaultMenuKeyMap()
	tests := []struct {
		msg      tea.KeyMsg
		expected MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runes("j"), MenuActionDown},
		{runes("h"), MenuActionLeft},
		{tea.KeyMsg{Type: tea.KeyRight}, MenuActionRight},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{runes("q"), MenuActionQuit},
		{runes("x"), MenuActionNone},
	}
	for _, tt := range tests {
		if got := MapKeyToMenuAction(k, tt.msg); got != tt.expected {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tt.msg.String(), got, tt.expected)
		}
	}
}

func TestModelLatchesSteering(t *testing.T) {
	g := &recordingGame{}
	var m tea.Model = newTestModel(g)
	m.Init()

	m, _ = m.Update(runes("w"))
	m, _ = m.Update(runes("p"))
	m, _ = m.Update(TickMsg(time.Now()))
	m, _ = m.Update(TickMsg(time.Now()))

	if len(g.inputs) != 2 {
		t.Fatalf("Step() called %d times, expected 2", len(g.inputs))
	}
	if !g.inputs[0].Has(core.ActionThrust) || !g.inputs[0].Has(core.ActionPause) {
		t.Errorf("first tick input = %v, expected thrust and pause", g.inputs[0].Actions)
	}
	// Pause is one-shot, thrust is held
	if !g.inputs[1].Has(core.ActionThrust) || g.inputs[1].Has(core.ActionPause) {
		t.Errorf("second tick input = %v, expected thrust only", g.inputs[1].Actions)
	}
}

func TestModelRestartOnlyWhenOver(t *testing.T) {
	g := &recordingGame{}
	var m tea.Model = newTestModel(g)
	m.Init()

	m, _ = m.Update(runes("r"))
	m, _ = m.Update(TickMsg(time.Now()))
	if g.inputs[0].Has(core.ActionRestart) {
		t.Errorf("restart passed through during play")
	}

	g.state.GameOver = true
	m, _ = m.Update(TickMsg(time.Now()))
	m, _ = m.Update(runes("r"))
	m, _ = m.Update(TickMsg(time.Now()))
	if g.resets != 2 {
		t.Errorf("Reset() called %d times, expected 2", g.resets)
	}
}

func TestModelResize(t *testing.T) {
	g := &recordingGame{}
	var m tea.Model = newTestModel(g)
	m.Init()

	m, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 31})
	if g.w != 100 || g.h != 60 {
		t.Errorf("game size = %dx%d, expected 100x60", g.w, g.h)
	}
	if g.resets != 1 {
		t.Errorf("resize restarted the game")
	}

	view := m.View()
	if got := strings.Count(view, halfBlock); got != 100*30 {
		t.Errorf("View() has %d half blocks, expected %d", got, 100*30)
	}
}

func TestWriteScreenshot(t *testing.T) {
	dir := t.TempDir()
	s := pixel.NewSurface(8, 6)
	s.Fill(pixel.RGB(1, 2, 3))

	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	path, err := writeScreenshot(dir, "warrior", s, now)
	if err != nil {
		t.Fatalf("writeScreenshot() error = %v", err)
	}
	if !strings.HasSuffix(path, "warrior_20260102_030405.png") {
		t.Errorf("path = %q, unexpected name", path)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if b := img.Bounds(); b.Dx() != 8 || b.Dy() != 6 {
		t.Errorf("image size = %dx%d, expected 8x6", b.Dx(), b.Dy())
	}
}
