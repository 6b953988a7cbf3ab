// Package warrior implements Penguin Warrior: a one-on-one space dogfight
// between the player's ship and a scripted computer opponent in a world
// larger than the screen.
package warrior

import (
	"math"

	"github.com/vovakirdan/penguin-warrior/internal/config"
	"github.com/vovakirdan/penguin-warrior/internal/core"
	"github.com/vovakirdan/penguin-warrior/internal/pixel"
	"github.com/vovakirdan/penguin-warrior/internal/registry"
	"github.com/vovakirdan/penguin-warrior/internal/weapon"
)

func init() {
	registry.Register("warrior", func(cfg config.WarriorConfig) registry.Game { return New(cfg) })
	registry.Register("warrior_endless", func(cfg config.WarriorConfig) registry.Game { return NewEndless(cfg) })
}

// GameMode represents the game mode.
type GameMode int

const (
	ModeMatch   GameMode = iota // First to the win score
	ModeEndless                 // Play forever
)

var (
	devilBeamColor = pixel.RGB(255, 90, 60)
	overlayText    = pixel.RGB(255, 255, 255)
)

// Game implements the Penguin Warrior game logic.
type Game struct {
	mode GameMode

	// Configuration
	cfg        config.WarriorConfig
	runtime    core.RuntimeConfig
	difficulty *config.DifficultyManager
	timeScale  float64
	rng        *RNG

	// Game objects
	player    *Ship
	opponent  *Ship
	script    *Script
	particles *ParticleSystem
	stars     *Starfield
	status    *Status
	radar     *Radar

	// Game state
	cameraX, cameraY float64
	tickCount        int
	respawnTimer     float64 // Negative when the player is not waiting to respawn
	invincibleTimer  float64 // Negative when the player is not invincible
	awaitingRespawn  bool    // Opponent was destroyed by the shot still in flight
	opponentShotHit  bool    // The opponent's current shot has already hit once
	paused           bool
	gameOver         bool
	won              bool
	events           []core.Event
}

// New creates a game that ends when either side reaches the win score.
func New(cfg config.WarriorConfig) *Game {
	return &Game{mode: ModeMatch, cfg: cfg}
}

// NewEndless creates a game without a win score.
func NewEndless(cfg config.WarriorConfig) *Game {
	return &Game{mode: ModeEndless, cfg: cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "warrior_endless"
	}
	return "warrior"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Penguin Warrior (Endless)"
	}
	return "Penguin Warrior"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = 30
	}
	g.runtime = runtime
	g.timeScale = runtime.TimeScale()
	g.rng = NewRNG(runtime.Seed)
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)

	ps := weapon.Settings{
		Range:      g.cfg.Phaser.Range,
		HitRadius:  g.cfg.Phaser.HitRadius,
		ChargeFire: g.cfg.Phaser.ChargeFire,
		ChargeMax:  g.cfg.Phaser.ChargeMax,
		ChargeRate: g.cfg.Phaser.ChargeRate,
		FireTime:   g.cfg.Phaser.FireTime,
	}
	g.player = newShip(KindWarrior, g.cfg.Player, ps)
	g.opponent = newShip(KindDevil, g.cfg.Devil, ps)
	g.player.spawn(g.rng, g.cfg.World.Width, g.cfg.World.Height)
	g.opponent.spawn(g.rng, g.cfg.World.Width, g.cfg.World.Height)
	g.script = NewScript()

	g.particles = NewParticleSystem(g.cfg.Particles.Max)
	g.stars = NewStarfield(g.rng)
	g.status = NewStatus()
	g.radar = g.newRadar()

	g.tickCount = 0
	g.respawnTimer = -1
	g.invincibleTimer = -1
	g.awaitingRespawn = false
	g.opponentShotHit = false
	g.paused = false
	g.gameOver = false
	g.won = false
	g.events = nil

	g.updateCamera()
	g.updateStatus()
}

// Resize changes the visible area without restarting the match.
func (g *Game) Resize(w, h int) {
	if w == g.runtime.ScreenW && h == g.runtime.ScreenH {
		return
	}
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	if g.player == nil {
		return
	}
	g.radar = g.newRadar()
	g.updateCamera()
}

// newRadar sizes the radar to the configured size, shrunk to a third of
// the smaller screen dimension.
func (g *Game) newRadar() *Radar {
	size := core.Min(g.cfg.Radar.Size, core.Min(g.runtime.ScreenW, g.runtime.ScreenH)/3)
	return NewRadar(size, g.cfg.Radar.Blink, g.cfg.Radar.Transparent)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = nil

	// Handle restart
	if in.Has(core.ActionRestart) && g.gameOver {
		g.Reset(g.runtime)
		return g.result()
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}

	// Don't update if paused or game over
	if g.paused || g.gameOver {
		return g.result()
	}

	g.tickCount++
	ts := g.timeScale
	p, o := g.player, g.opponent

	// Update phasers
	p.Phaser.Tick(ts)
	o.Phaser.Tick(ts)
	if g.awaitingRespawn && !p.Phaser.IsFiring() {
		g.awaitingRespawn = false
	}
	p.Phaser.Recharge(ts, 1)

	// Controls are disabled while the explosion plays out
	if g.respawnTimer >= 0 {
		g.respawnTimer += ts
		if g.respawnTimer >= float64(g.cfg.Respawn.Delay) {
			g.respawnPlayer()
		}
	}

	if g.respawnTimer < 0 {
		if g.invincibleTimer >= 0 {
			g.invincibleTimer += ts
			if g.invincibleTimer >= float64(g.cfg.Respawn.Invincible) {
				g.invincibleTimer = -1
				p.State = StateEvade
			}
		}
		g.steerPlayer(in)
	}

	g.runOpponent()

	p.update(ts, g.cfg.World.Width, g.cfg.World.Height)
	g.updateCamera()
	g.particles.Update(ts)

	g.updateStatus()
	g.status.Update(ts)
	g.radar.Tick()

	g.checkMatchOver()
	return g.result()
}

// steerPlayer applies the player's turn, thrust and fire controls.
func (g *Game) steerPlayer(in core.InputFrame) {
	p, o := g.player, g.opponent

	turn := 0.0
	if in.Has(core.ActionTurnLeft) {
		turn += g.cfg.Player.TurnRate
	}
	if in.Has(core.ActionTurnRight) {
		turn -= g.cfg.Player.TurnRate
	}

	p.Accel = 0
	if in.Has(core.ActionThrust) {
		p.Accel = g.cfg.Player.ForwardThrust
	}
	if in.Has(core.ActionReverse) {
		p.Accel = g.cfg.Player.ReverseThrust
	}

	if in.Has(core.ActionFire) && p.Phaser.CanFire() {
		p.Phaser.Fire()
		g.emit(core.EventPhaserFired, core.SidePlayer)

		// One kill per shot: the respawned opponent is immune until it ends
		if !g.awaitingRespawn && weapon.HitTest(p.Emitter(), o.Target(), g.cfg.Phaser.Range, g.cfg.Phaser.HitRadius) {
			showPhaserHit(g.particles, g.rng, o)
			g.emit(core.EventShipHit, core.SideOpponent)
			if o.damage(g.cfg.Phaser.PlayerDamage) {
				g.killOpponent()
				g.awaitingRespawn = true
			}
		}
	}

	p.turn(turn * g.timeScale)
}

// runOpponent gives the computer its turn: script, fire, beam damage,
// recharge and movement.
func (g *Game) runOpponent() {
	p, o := g.player, g.opponent
	score := p.Score

	orders := g.script.Run(o, p, g.rng, g.cfg.World.Width, g.cfg.World.Height,
		g.difficulty.Thrust(g.cfg.Devil.ForwardThrust, score, g.tickCount),
		g.difficulty.TurnRate(g.cfg.Devil.TurnRate, score, g.tickCount),
		g.timeScale)
	o.Accel = orders.Accel
	o.turn(orders.Turn)
	o.State = g.script.State

	if orders.Fire && o.Phaser.CanFire() {
		o.Phaser.Fire()
		g.opponentShotHit = false
		g.emit(core.EventPhaserFired, core.SideOpponent)
	}

	// The beam does damage on every tick it touches the player
	if o.Phaser.IsFiring() && p.Alive() && p.State != StateInvincible &&
		weapon.HitTest(o.Emitter(), p.Target(), g.cfg.Phaser.Range, g.cfg.Phaser.HitRadius) {
		showPhaserHit(g.particles, g.rng, p)
		if !g.opponentShotHit {
			g.opponentShotHit = true
			g.emit(core.EventShipHit, core.SidePlayer)
		}
		if p.damage(g.cfg.Phaser.DevilDamage) && g.respawnTimer < 0 {
			g.killPlayer()
		}
	}

	o.Phaser.Recharge(g.timeScale, g.difficulty.ChargeMultiplier(score, g.tickCount))
	o.update(g.timeScale, g.cfg.World.Width, g.cfg.World.Height)
}

// killOpponent scores a kill for the player and puts a fresh opponent
// somewhere else in the world.
func (g *Game) killOpponent() {
	g.player.Score++
	showShipExplosion(g.particles, g.rng, g.opponent)
	g.emit(core.EventShipDestroyed, core.SideOpponent)
	g.opponent.spawn(g.rng, g.cfg.World.Width, g.cfg.World.Height)
	g.script.Reset()
}

// killPlayer scores a kill for the opponent and starts the respawn timer.
func (g *Game) killPlayer() {
	p := g.player
	showShipExplosion(g.particles, g.rng, p)
	p.Velocity = 0
	p.Accel = 0
	p.State = StateDead
	g.opponent.Score++
	g.respawnTimer = 0
	g.invincibleTimer = -1
	g.emit(core.EventShipDestroyed, core.SidePlayer)
}

// respawnPlayer brings the player back, briefly invincible.
func (g *Game) respawnPlayer() {
	g.respawnTimer = -1
	g.player.spawn(g.rng, g.cfg.World.Width, g.cfg.World.Height)
	g.player.State = StateInvincible
	g.invincibleTimer = 0
	g.status.SetMessage(g.cfg.Respawn.Message, g.runtime.ScreenW)
	g.emit(core.EventRespawned, core.SidePlayer)
}

// updateCamera centres the view on the player within the world limits.
func (g *Game) updateCamera() {
	w := float64(g.runtime.ScreenW)
	h := float64(g.runtime.ScreenH)
	maxX := math.Max(float64(g.cfg.World.Width)-w-1, 0)
	maxY := math.Max(float64(g.cfg.World.Height)-h-1, 0)
	g.cameraX = core.ClampF(g.player.X-w/2, 0, maxX)
	g.cameraY = core.ClampF(g.player.Y-h/2, 0, maxY)
}

// updateStatus pushes the latest figures to the status display.
func (g *Game) updateStatus() {
	p, o := g.player, g.opponent
	g.status.SetPlayer(p.Score, core.Max(p.Shields, 0), g.cfg.Player.Shields, p.Phaser.Charge, g.cfg.Phaser.ChargeMax)
	g.status.SetOpponent(o.Score, core.Max(o.Shields, 0), g.cfg.Devil.Shields)
}

// checkMatchOver ends a match once either side has enough kills.
func (g *Game) checkMatchOver() {
	win := g.cfg.Gameplay.WinScore
	if g.mode != ModeMatch || win <= 0 {
		return
	}
	switch {
	case g.player.Score >= win:
		g.gameOver, g.won = true, true
		g.emit(core.EventMatchOver, core.SidePlayer)
	case g.opponent.Score >= win:
		g.gameOver, g.won = true, false
		g.emit(core.EventMatchOver, core.SideOpponent)
	}
}

func (g *Game) emit(kind core.EventKind, side core.Side) {
	g.events = append(g.events, core.Event{Kind: kind, Side: side})
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Events: g.events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.player == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:         g.player.Score,
		OpponentScore: g.opponent.Score,
		GameOver:      g.gameOver,
		Paused:        g.paused,
		Won:           g.won,
	}
}

// Player returns the player's ship.
func (g *Game) Player() *Ship {
	return g.player
}

// Opponent returns the computer's ship.
func (g *Game) Opponent() *Ship {
	return g.opponent
}

// Camera returns the world position of the top-left corner of the view.
func (g *Game) Camera() (float64, float64) {
	return g.cameraX, g.cameraY
}

// Render draws the current frame into dst, which should match the screen
// size given to Reset or Resize.
func (g *Game) Render(dst *pixel.Surface) {
	if g.player == nil {
		return
	}
	p, o := g.player, g.opponent

	g.stars.Draw(dst, g.cameraX, g.cameraY)
	g.particles.Draw(dst, g.cameraX, g.cameraY)

	if o.Phaser.IsFiring() {
		weapon.DrawBeam(dst, o.Emitter(), g.cameraX, g.cameraY, g.cfg.Phaser.Range, devilBeamColor)
	}
	if p.Phaser.IsFiring() {
		weapon.DrawBeam(dst, p.Emitter(), g.cameraX, g.cameraY, g.cfg.Phaser.Range, weapon.BeamColor)
	}

	// Invincible ships flicker
	if p.Alive() && (p.State != StateInvincible || (g.tickCount/4)%2 == 0) {
		p.draw(dst, g.cameraX, g.cameraY)
	}
	if !g.awaitingRespawn {
		o.draw(dst, g.cameraX, g.cameraY)
	}

	g.status.Draw(dst)
	g.radar.Draw(dst, g.cfg.World.Width, g.cfg.World.Height, p, o, !g.awaitingRespawn)

	switch {
	case g.gameOver:
		title := "DEFEATED"
		if g.won {
			title = "VICTORY!"
		}
		drawCentered(dst, title, -8)
		drawCentered(dst, "R: restart  Q: quit", 8)
	case g.paused:
		drawCentered(dst, "PAUSED", 0)
	}
}

// drawCentered draws text centred horizontally, dy pixels off the middle.
func drawCentered(dst *pixel.Surface, s string, dy int) {
	x := (dst.Width() - textWidth(s)) / 2
	y := dst.Height()/2 - statusFace.Height/2 + dy
	DrawText(dst, s, x, y, overlayText)
}
