package warrior

import (
	"image/color"
	"testing"

	"github.com/vovakirdan/penguin-warrior/internal/pixel"
)

func TestStatusMessageScrollsOff(t *testing.T) {
	s := NewStatus()
	s.SetMessage("GOOD LUCK, WARRIOR!", 100)
	if s.Message() == "" {
		t.Fatalf("Message() empty right after SetMessage")
	}

	ticks := 0
	for s.Message() != "" && ticks < 1000 {
		s.Update(1)
		ticks++
	}
	// 100 px of screen plus the text width, 4 px per tick
	expected := (100+textWidth("GOOD LUCK, WARRIOR!"))/scrollRate + 1
	if ticks != expected {
		t.Errorf("Message gone after %d ticks, expected %d", ticks, expected)
	}
}

func TestStatusMeters(t *testing.T) {
	s := NewStatus()
	s.SetPlayer(0, 100, 100, 0, 30)
	s.SetOpponent(0, 0, 100)

	dst := pixel.NewSurface(200, 60)
	s.Draw(dst)

	// Full shields light the first LED, empty charge leaves it off
	if got := dst.At(statusPad, statusPad); got != ledShieldOn {
		t.Errorf("Shield LED = %v, expected %v", got, ledShieldOn)
	}
	if got := dst.At(statusPad, statusPad+ledSize+ledGap); got != ledOff {
		t.Errorf("Charge LED = %v, expected %v", got, ledOff)
	}
}

func TestLevel(t *testing.T) {
	tests := []struct {
		v, max   float64
		expected int
	}{
		{0, 100, 0},
		{100, 100, ledCount},
		{150, 100, ledCount},
		{50, 100, ledCount / 2},
		{-5, 100, 0},
		{5, 0, 0},
	}
	for _, tt := range tests {
		if got := level(tt.v, tt.max); got != tt.expected {
			t.Errorf("level(%v, %v) = %d, expected %d", tt.v, tt.max, got, tt.expected)
		}
	}
}

func TestRadarDraw(t *testing.T) {
	player, devil := testShips()
	r := NewRadar(50, 10, true)

	// Centre of the world maps to the centre of the radar
	player.X, player.Y = 1000, 1000
	devil.X, devil.Y = 0, 0 // corner is outside the circle

	dst := pixel.NewSurface(100, 100)
	r.Draw(dst, 2000, 2000, player, devil, true)

	oy := 100 - r.Size()
	if got := dst.At(25, oy+25); got != radarPlayer {
		t.Errorf("Player blip = %v, expected %v", got, radarPlayer)
	}
	if got := dst.At(0, oy); got == radarOpponent {
		t.Errorf("Opponent blip drawn outside the radar circle")
	}
}

func TestRadarBlink(t *testing.T) {
	player, devil := testShips()
	player.State = StateDead
	devil.X, devil.Y = 1000, 1000
	r := NewRadar(50, 2, false)

	colours := make([]color.RGBA, 0, 4)
	for i := 0; i < 4; i++ {
		dst := pixel.NewSurface(60, 60)
		r.Draw(dst, 2000, 2000, player, devil, true)
		colours = append(colours, dst.At(25, 10+25))
		r.Tick()
	}

	expected := []color.RGBA{radarOpponent, radarOpponent, radarBlipDim, radarBlipDim}
	for i := range expected {
		if colours[i] != expected[i] {
			t.Errorf("Blink tick %d = %v, expected %v", i, colours[i], expected[i])
		}
	}
}

func TestStarfieldCoversSurface(t *testing.T) {
	sf := NewStarfield(NewRNG(4))
	dst := pixel.NewSurface(150, 90)
	sf.Draw(dst, 333, 777)

	for y := 0; y < dst.Height(); y++ {
		for x := 0; x < dst.Width(); x++ {
			if dst.At(x, y).A != 255 {
				t.Fatalf("Pixel (%d, %d) not covered by the back layer", x, y)
			}
		}
	}
}
