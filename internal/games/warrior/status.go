package warrior

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/vovakirdan/penguin-warrior/internal/core"
	"github.com/vovakirdan/penguin-warrior/internal/pixel"
)

// LED meter geometry in pixels.
const (
	ledSize    = 3
	ledGap     = 1
	ledCount   = 10
	statusPad  = 2
	scrollRate = 4 // pixels per tick at 30 ticks per second
)

var (
	ledShieldOn  = pixel.RGB(40, 230, 80)
	ledChargeOn  = pixel.RGB(80, 170, 255)
	ledDevilOn   = pixel.RGB(240, 50, 40)
	ledOff       = pixel.RGB(40, 40, 40)
	statusText   = color.RGBA{R: 230, G: 230, B: 230, A: 255}
	messageText  = color.RGBA{R: 255, G: 220, B: 80, A: 255}
	statusFace   = basicfont.Face7x13
)

// Status is the heads-up display: LED meters for shields and phaser
// charge, the score line, and a message that scrolls across once.
type Status struct {
	playerScore   int
	playerShields int
	playerMax     int
	charge        float64
	chargeMax     float64
	devilScore    int
	devilShields  int
	devilMax      int

	message  string
	messageX float64
}

// NewStatus creates an empty status display.
func NewStatus() *Status {
	return &Status{}
}

// SetPlayer updates the player's figures.
func (s *Status) SetPlayer(score, shields, maxShields int, charge, chargeMax float64) {
	s.playerScore = score
	s.playerShields = shields
	s.playerMax = maxShields
	s.charge = charge
	s.chargeMax = chargeMax
}

// SetOpponent updates the opponent's figures.
func (s *Status) SetOpponent(score, shields, maxShields int) {
	s.devilScore = score
	s.devilShields = shields
	s.devilMax = maxShields
}

// SetMessage starts msg scrolling in from the right edge of a surface
// screenW pixels wide.
func (s *Status) SetMessage(msg string, screenW int) {
	s.message = msg
	s.messageX = float64(screenW)
}

// Message returns the message currently scrolling, or "".
func (s *Status) Message() string {
	return s.message
}

// Update scrolls the message and drops it once it has left the screen.
func (s *Status) Update(timeScale float64) {
	if s.message == "" {
		return
	}
	s.messageX -= scrollRate * timeScale
	if s.messageX+float64(textWidth(s.message)) < 0 {
		s.message = ""
	}
}

// Draw renders the display over the top of dst.
func (s *Status) Draw(dst *pixel.Surface) {
	w := dst.Width()

	// Player meters on the left, opponent on the right
	drawLEDs(dst, statusPad, statusPad, level(float64(s.playerShields), float64(s.playerMax)), ledShieldOn)
	drawLEDs(dst, statusPad, statusPad+ledSize+ledGap, level(s.charge, s.chargeMax), ledChargeOn)
	meterW := ledCount*(ledSize+ledGap) - ledGap
	drawLEDs(dst, w-statusPad-meterW, statusPad, level(float64(s.devilShields), float64(s.devilMax)), ledDevilOn)

	score := fmt.Sprintf("%d : %d", s.playerScore, s.devilScore)
	textY := statusPad + 2*(ledSize+ledGap)
	DrawText(dst, score, (w-textWidth(score))/2, textY, statusText)

	if s.message != "" {
		DrawText(dst, s.message, int(s.messageX), textY+statusFace.Height, messageText)
	}
}

// level converts a value into the number of lit LEDs.
func level(v, max float64) int {
	if max <= 0 {
		return 0
	}
	n := int(v / max * ledCount)
	if v > 0 && n == 0 {
		n = 1
	}
	return core.Clamp(n, 0, ledCount)
}

// drawLEDs draws a row of ledCount square lights with the first lit on.
func drawLEDs(dst *pixel.Surface, x, y, lit int, on color.RGBA) {
	for i := 0; i < ledCount; i++ {
		c := ledOff
		if i < lit {
			c = on
		}
		dst.FillRect(core.NewRect(x+i*(ledSize+ledGap), y, ledSize, ledSize), c)
	}
}

// DrawText draws s with its top-left corner at (x, y).
func DrawText(dst *pixel.Surface, s string, x, y int, c color.RGBA) {
	d := font.Drawer{
		Dst:  dst.Image(),
		Src:  image.NewUniform(c),
		Face: statusFace,
		Dot:  fixed.P(x, y+statusFace.Ascent),
	}
	d.DrawString(s)
}

// textWidth returns the width of s in pixels.
func textWidth(s string) int {
	return font.MeasureString(statusFace, s).Ceil()
}
