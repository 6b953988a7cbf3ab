package warrior

import (
	"math"
)

// ShipSnapshot is the state of one ship in primitive types.
type ShipSnapshot struct {
	State    int
	Angle    float64
	X, Y     float64
	Velocity float64
	Accel    float64
	Shields  int
	Score    int
	Charge   float64
	Firing   float64
}

// Snapshot contains the complete simulation state of a game. The starfield
// and status display are derived from it and are left out.
type Snapshot struct {
	Tick            uint64
	Mode            int
	Player          ShipSnapshot
	Opponent        ShipSnapshot
	ScriptState     int
	ScriptTargetX   float64
	ScriptTargetY   float64
	CameraX         float64
	CameraY         float64
	RespawnTimer    float64
	InvincibleTimer float64
	AwaitingRespawn bool
	Particles       int
	Paused          bool
	GameOver        bool
	Won             bool
	RNG             uint64
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	if g.player == nil {
		return Snapshot{Mode: int(g.mode)}
	}
	return Snapshot{
		Tick:            uint64(max(0, g.tickCount)), //nolint:gosec // tickCount is always non-negative
		Mode:            int(g.mode),
		Player:          shipSnapshot(g.player),
		Opponent:        shipSnapshot(g.opponent),
		ScriptState:     int(g.script.State),
		ScriptTargetX:   g.script.TargetX,
		ScriptTargetY:   g.script.TargetY,
		CameraX:         g.cameraX,
		CameraY:         g.cameraY,
		RespawnTimer:    g.respawnTimer,
		InvincibleTimer: g.invincibleTimer,
		AwaitingRespawn: g.awaitingRespawn,
		Particles:       g.particles.Len(),
		Paused:          g.paused,
		GameOver:        g.gameOver,
		Won:             g.won,
		RNG:             g.rng.State(),
	}
}

func shipSnapshot(s *Ship) ShipSnapshot {
	return ShipSnapshot{
		State:    int(s.State),
		Angle:    s.Angle,
		X:        s.X,
		Y:        s.Y,
		Velocity: s.Velocity,
		Accel:    s.Accel,
		Shields:  s.Shields,
		Score:    s.Score,
		Charge:   s.Phaser.Charge,
		Firing:   s.Phaser.Firing,
	}
}

// Hash folds the snapshot into a single FNV-1a style word. Two games that
// ran the same inputs from the same seed hash the same.
func (snap Snapshot) Hash() uint64 {
	h := uint64(14695981039346656037)
	mix := func(v uint64) {
		h ^= v
		h *= 1099511628211
	}
	f := func(v float64) { mix(math.Float64bits(v)) }
	i := func(v int) { mix(uint64(int64(v))) } //nolint:gosec // bit pattern only
	b := func(v bool) {
		if v {
			mix(1)
		} else {
			mix(0)
		}
	}
	ship := func(s ShipSnapshot) {
		i(s.State)
		f(s.Angle)
		f(s.X)
		f(s.Y)
		f(s.Velocity)
		f(s.Accel)
		i(s.Shields)
		i(s.Score)
		f(s.Charge)
		f(s.Firing)
	}

	mix(snap.Tick)
	i(snap.Mode)
	ship(snap.Player)
	ship(snap.Opponent)
	i(snap.ScriptState)
	f(snap.ScriptTargetX)
	f(snap.ScriptTargetY)
	f(snap.CameraX)
	f(snap.CameraY)
	f(snap.RespawnTimer)
	f(snap.InvincibleTimer)
	b(snap.AwaitingRespawn)
	i(snap.Particles)
	b(snap.Paused)
	b(snap.GameOver)
	b(snap.Won)
	mix(snap.RNG)
	return h
}
