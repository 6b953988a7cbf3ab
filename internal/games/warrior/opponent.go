package warrior

import (
	"math"

	"github.com/vovakirdan/penguin-warrior/internal/core"
)

// Distances (in world pixels) that drive the computer opponent.
const (
	evadeDistance   = 30  // Closer than this to the player: break off
	coastDistance   = 50  // Closer than this: stop thrusting
	cruiseDistance  = 100 // Farther than this: full thrust
	fireDistance    = 200 // Closer than this: fire when charged
	arriveTolerance = 10  // Evade target reached on both axes
)

// Script is the computer opponent's two-state brain. In the attack state it
// homes in on the player and fires; once it gets too close it switches to
// evade and flies towards a random point of the world, then attacks again.
type Script struct {
	State     ShipState // StateAttack or StateEvade
	TargetX   float64
	TargetY   float64
	hasTarget bool
}

// NewScript returns a script that starts in attack mode.
func NewScript() *Script {
	return &Script{State: StateAttack}
}

// Orders is what the script wants the devil to do this tick.
type Orders struct {
	Accel float64
	Turn  float64 // Degrees, positive is counter-clockwise
	Fire  bool
}

// Run decides the devil's thrust, turn and fire for one tick. thrust and
// turnRate are per tick at 30 ticks per second; timeScale scales the turn.
func (s *Script) Run(devil, player *Ship, rng *RNG, worldW, worldH int, thrust, turnRate, timeScale float64) Orders {
	var o Orders

	switch s.State {
	case StateAttack:
		s.TargetX, s.TargetY = player.X, player.Y
		dist := core.Distance(devil.X, devil.Y, s.TargetX, s.TargetY)

		if dist < evadeDistance {
			s.State = StateEvade
			s.hasTarget = false
			return o
		}

		switch {
		case dist > cruiseDistance:
			o.Accel = thrust
		case dist > coastDistance:
			o.Accel = thrust / 3
		}

		o.Fire = dist < fireDistance && player.Alive()

	default:
		if s.hasTarget &&
			math.Abs(s.TargetX-devil.X) < arriveTolerance &&
			math.Abs(s.TargetY-devil.Y) < arriveTolerance {
			s.State = StateAttack
			return o
		}
		if !s.hasTarget {
			s.TargetX = rng.Float64() * float64(worldW)
			s.TargetY = rng.Float64() * float64(worldH)
			s.hasTarget = true
		}
		o.Accel = thrust
	}

	// Aim at the target by the shorter arc without overshooting it
	step := turnRate * timeScale
	arc := core.NormalizeAngle(s.angleToTarget(devil) - devil.Angle)
	switch {
	case arc <= step || 360-arc <= step:
		o.Turn = arc
		if arc > 180 {
			o.Turn = arc - 360
		}
	case arc < 180:
		o.Turn = step
	default:
		o.Turn = -step
	}
	return o
}

// angleToTarget returns the heading in degrees from the devil to the target.
func (s *Script) angleToTarget(devil *Ship) float64 {
	x := s.TargetX - devil.X
	y := s.TargetY - devil.Y
	theta := math.Atan2(-y, x)
	if theta < 0 {
		theta += 2 * math.Pi
	}
	return theta * 180 / math.Pi
}

// Reset returns the script to attack mode.
func (s *Script) Reset() {
	s.State = StateAttack
	s.hasTarget = false
	s.TargetX, s.TargetY = 0, 0
}
