package warrior

import (
	"image/color"
	"math"

	"github.com/vovakirdan/penguin-warrior/internal/config"
	"github.com/vovakirdan/penguin-warrior/internal/core"
	"github.com/vovakirdan/penguin-warrior/internal/pixel"
	"github.com/vovakirdan/penguin-warrior/internal/weapon"
)

// ShipKind distinguishes the player's ship from the computer's.
type ShipKind int

const (
	KindWarrior ShipKind = iota
	KindDevil
)

// ShipState is the behavioural state of a ship.
type ShipState int

const (
	StateEvade ShipState = iota
	StateAttack
	StateInvincible
	StateDead
)

// String returns a human-readable name for the state.
func (s ShipState) String() string {
	switch s {
	case StateEvade:
		return "evade"
	case StateAttack:
		return "attack"
	case StateInvincible:
		return "invincible"
	case StateDead:
		return "dead"
	default:
		return "unknown"
	}
}

// Ship is one of the two combatants.
type Ship struct {
	Kind     ShipKind
	State    ShipState
	Angle    float64 // Degrees, counter-clockwise, 0 = +X
	X, Y     float64 // World position
	Velocity float64
	Accel    float64
	Shields  int
	Score    int
	Phaser   *weapon.Phaser

	cfg config.ShipConfig
}

func newShip(kind ShipKind, cfg config.ShipConfig, ps weapon.Settings) *Ship {
	return &Ship{
		Kind:   kind,
		Phaser: weapon.NewPhaser(ps),
		cfg:    cfg,
	}
}

// spawn puts the ship at a random point of the world with full shields and
// empty phasers. The score is kept.
func (s *Ship) spawn(rng *RNG, worldW, worldH int) {
	s.State = StateEvade
	s.X = rng.Float64() * float64(worldW)
	s.Y = rng.Float64() * float64(worldH)
	s.Accel = 0
	s.Velocity = 0
	s.Angle = 0
	s.Shields = s.cfg.Shields
	s.Phaser.Reset()
	s.update(0, worldW, worldH)
}

// update applies acceleration, clamps the velocity and moves the ship
// along its heading, keeping it inside the world.
func (s *Ship) update(timeScale float64, worldW, worldH int) {
	s.Velocity += s.Accel * timeScale
	s.Velocity = core.ClampF(s.Velocity, s.cfg.MinVelocity, s.cfg.MaxVelocity)

	theta := core.Radians(s.Angle)
	s.X += s.Velocity * math.Cos(theta) * timeScale
	s.Y -= s.Velocity * math.Sin(theta) * timeScale

	s.X = core.ClampF(s.X, 0, float64(worldW-1))
	s.Y = core.ClampF(s.Y, 0, float64(worldH-1))
}

// turn rotates the ship, keeping the angle in [0, 360).
func (s *Ship) turn(deg float64) {
	s.Angle = core.NormalizeAngle(s.Angle + deg)
}

// damage lowers the shields and reports whether the ship was destroyed.
func (s *Ship) damage(amount int) bool {
	s.Shields -= amount
	return s.Shields <= 0
}

// Alive reports whether the ship is in play.
func (s *Ship) Alive() bool {
	return s.State != StateDead
}

// Emitter returns the ship as a beam origin.
func (s *Ship) Emitter() weapon.Emitter {
	return weapon.Emitter{X: s.X, Y: s.Y, Angle: s.Angle}
}

// Target returns the ship as a beam target.
func (s *Ship) Target() weapon.Target {
	return weapon.Target{X: s.X, Y: s.Y}
}

// Hull outlines in ship-local units: +u is the nose, v points to starboard.
var (
	warriorHull = [][2]float64{{1, 0}, {-0.7, 0.65}, {-0.35, 0}, {-0.7, -0.65}}
	devilHull   = [][2]float64{{1, 0}, {0.1, 0.45}, {-0.8, 0.85}, {-0.45, 0}, {-0.8, -0.85}, {0.1, -0.45}}
)

var (
	warriorColor = pixel.RGB(140, 220, 255)
	devilColor   = pixel.RGB(255, 70, 50)
	flameColor   = pixel.RGB(255, 190, 60)
)

// draw renders the ship outline at its screen position.
func (s *Ship) draw(dst *pixel.Surface, cameraX, cameraY float64) {
	size := float64(s.cfg.Size)
	cx := s.X - cameraX
	cy := s.Y - cameraY

	// Off screen entirely
	if cx < -size || cy < -size || cx > float64(dst.Width())+size || cy > float64(dst.Height())+size {
		return
	}

	hull, c := warriorHull, warriorColor
	if s.Kind == KindDevil {
		hull, c = devilHull, devilColor
	}

	theta := core.Radians(s.Angle)
	fx, fy := math.Cos(theta), -math.Sin(theta) // nose direction on screen
	sx, sy := -fy, fx                           // starboard direction

	point := func(u, v float64) (float64, float64) {
		return cx + (u*fx+v*sx)*size, cy + (u*fy+v*sy)*size
	}

	outline(dst, hull, point, c)

	if s.Accel > 0 {
		x0, y0 := point(-0.4, 0)
		x1, y1 := point(-1.1, 0)
		pixel.DrawLineClipped(dst, pixel.Segment{X0: x0, Y0: y0, X1: x1, Y1: y1}, flameColor)
	}
}

// outline draws a closed polygon through a local-to-screen mapping.
func outline(dst *pixel.Surface, pts [][2]float64, point func(u, v float64) (float64, float64), c color.RGBA) {
	for i := range pts {
		j := (i + 1) % len(pts)
		x0, y0 := point(pts[i][0], pts[i][1])
		x1, y1 := point(pts[j][0], pts[j][1])
		pixel.DrawLineClipped(dst, pixel.Segment{X0: x0, Y0: y0, X1: x1, Y1: y1}, c)
	}
}
