package warrior

import (
	"math"

	"github.com/vovakirdan/penguin-warrior/internal/core"
	"github.com/vovakirdan/penguin-warrior/internal/pixel"
)

var (
	radarRing     = pixel.RGB(30, 110, 60)
	radarGrid     = pixel.RGB(15, 60, 30)
	radarPlayer   = pixel.RGB(60, 255, 90)
	radarOpponent = pixel.RGB(255, 60, 40)
	radarBlipDim  = pixel.RGB(90, 20, 15)
)

// Radar is the small map in the lower-left corner. The whole world is
// scaled into a square; blips outside the radar circle are not shown.
type Radar struct {
	size  int
	blink int
	tick  int
	face  *pixel.Surface
}

// NewRadar creates a radar size pixels across whose opponent blip blinks
// every blink ticks. Transparent radars show the background between the
// ring and the grid lines.
func NewRadar(size, blink int, transparent bool) *Radar {
	size = core.Max(size, 8)
	r := &Radar{size: size, blink: core.Max(blink, 1), face: pixel.NewSurface(size, size)}

	if !transparent {
		r.face.Fill(pixel.RGB(0, 12, 4))
	}
	half := float64(size-1) / 2
	for i := 0; i < size; i++ {
		r.face.Set(i, size/2, radarGrid)
		r.face.Set(size/2, i, radarGrid)
	}
	for deg := 0; deg < 360; deg++ {
		theta := core.Radians(float64(deg))
		x := int(math.Round(half + half*math.Cos(theta)))
		y := int(math.Round(half + half*math.Sin(theta)))
		r.face.Set(x, y, radarRing)
	}
	return r
}

// Size returns the edge length in pixels.
func (r *Radar) Size() int {
	return r.size
}

// Tick advances the blink cycle.
func (r *Radar) Tick() {
	r.tick = (r.tick + 1) % (2 * r.blink)
}

// Draw renders the radar into the lower-left corner of dst.
func (r *Radar) Draw(dst *pixel.Surface, worldW, worldH int, player, opponent *Ship, showOpponent bool) {
	ox, oy := 0, dst.Height()-r.size
	dst.Blit(r.face, r.face.Rect(), ox, oy)

	if player.Alive() {
		if x, y, ok := r.blip(worldW, worldH, player.X, player.Y); ok {
			dst.FillRect(core.NewRect(ox+x, oy+y, 2, 2), radarPlayer)
		}
	}
	if showOpponent {
		if x, y, ok := r.blip(worldW, worldH, opponent.X, opponent.Y); ok {
			c := radarOpponent
			if r.tick >= r.blink {
				c = radarBlipDim
			}
			dst.FillRect(core.NewRect(ox+x, oy+y, 2, 2), c)
		}
	}
}

// blip maps a world position into radar coordinates, reporting whether it
// falls inside the radar circle.
func (r *Radar) blip(worldW, worldH int, wx, wy float64) (int, int, bool) {
	if worldW <= 0 || worldH <= 0 {
		return 0, 0, false
	}
	x := wx / float64(worldW) * float64(r.size)
	y := wy / float64(worldH) * float64(r.size)
	half := float64(r.size) / 2
	if core.Distance(x, y, half, half) >= half {
		return 0, 0, false
	}
	return int(x), int(y), true
}
