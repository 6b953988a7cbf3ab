package warrior

import (
	"math"

	"github.com/vovakirdan/penguin-warrior/internal/core"
	"github.com/vovakirdan/penguin-warrior/internal/pixel"
)

// Particle is a single spark of an explosion.
type Particle struct {
	X, Y    float64
	Energy  float64 // Speed in pixels per tick
	Angle   float64 // Degrees
	R, G, B float64
}

// ParticleSystem holds a bounded set of live particles. Dead particles are
// removed by moving the last particle into their slot.
type ParticleSystem struct {
	items []Particle
	max   int
}

// NewParticleSystem creates a system that never holds more than max particles.
func NewParticleSystem(max int) *ParticleSystem {
	return &ParticleSystem{
		items: make([]Particle, 0, core.Min(max, 4096)),
		max:   max,
	}
}

// Len returns the number of live particles.
func (ps *ParticleSystem) Len() int {
	return len(ps.items)
}

// Clear removes every particle.
func (ps *ParticleSystem) Clear() {
	ps.items = ps.items[:0]
}

// add appends a particle unless the system is full.
func (ps *ParticleSystem) add(p Particle) {
	if len(ps.items) >= ps.max {
		return
	}
	ps.items = append(ps.items, p)
}

// Explode emits density particles at (x, y) with random headings and
// speeds up to energy.
func (ps *ParticleSystem) Explode(rng *RNG, x, y float64, r, g, b uint8, energy float64, density int) {
	for i := 0; i < density; i++ {
		ps.add(Particle{
			X:      x,
			Y:      y,
			Angle:  rng.Float64() * 360,
			Energy: rng.Float64() * energy,
			R:      float64(r),
			G:      float64(g),
			B:      float64(b),
		})
	}
}

// Update moves every particle and fades it one colour step per tick.
// Fully faded particles are removed.
func (ps *ParticleSystem) Update(timeScale float64) {
	for i := 0; i < len(ps.items); i++ {
		p := &ps.items[i]
		theta := core.Radians(p.Angle)
		p.X += p.Energy * math.Cos(theta) * timeScale
		p.Y -= p.Energy * math.Sin(theta) * timeScale

		p.R = math.Max(p.R-timeScale, 0)
		p.G = math.Max(p.G-timeScale, 0)
		p.B = math.Max(p.B-timeScale, 0)

		if p.R+p.G+p.B == 0 {
			last := len(ps.items) - 1
			ps.items[i] = ps.items[last]
			ps.items = ps.items[:last]
			i-- // the swapped-in particle still needs its update
		}
	}
}

// Draw plots every on-screen particle as a single pixel.
func (ps *ParticleSystem) Draw(dst *pixel.Surface, cameraX, cameraY float64) {
	for _, p := range ps.items {
		x := int(math.Floor(p.X - cameraX))
		y := int(math.Floor(p.Y - cameraY))
		dst.Set(x, y, pixel.RGB(uint8(p.R), uint8(p.G), uint8(p.B)))
	}
}

// showPhaserHit makes a small burst where a beam struck a ship.
func showPhaserHit(ps *ParticleSystem, rng *RNG, s *Ship) {
	ps.Explode(rng, s.X, s.Y, 255, 255, 255, 10, 300)
	ps.Explode(rng, s.X, s.Y, 255, 0, 0, 5, 100)
	ps.Explode(rng, s.X, s.Y, 255, 255, 0, 2, 50)
}

// showShipExplosion makes the large burst of a destroyed ship.
func showShipExplosion(ps *ParticleSystem, rng *RNG, s *Ship) {
	ps.Explode(rng, s.X, s.Y, 255, 255, 255, 15, 3000)
	ps.Explode(rng, s.X, s.Y, 255, 0, 0, 10, 1000)
	ps.Explode(rng, s.X, s.Y, 255, 255, 0, 5, 500)
}
