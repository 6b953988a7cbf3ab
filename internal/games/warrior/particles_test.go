package warrior

import (
	"testing"

	"github.com/vovakirdan/penguin-warrior/internal/pixel"
)

func TestParticleSystemCap(t *testing.T) {
	ps := NewParticleSystem(100)
	ps.Explode(NewRNG(1), 10, 10, 255, 255, 255, 5, 250)
	if ps.Len() != 100 {
		t.Errorf("Len() = %d, expected 100", ps.Len())
	}
	ps.Clear()
	if ps.Len() != 0 {
		t.Errorf("Len() after Clear = %d, expected 0", ps.Len())
	}
}

func TestParticleSystemFade(t *testing.T) {
	ps := NewParticleSystem(1000)
	rng := NewRNG(2)
	ps.Explode(rng, 100, 100, 40, 0, 0, 5, 50)
	ps.Explode(rng, 100, 100, 255, 255, 255, 5, 50)

	// Dim particles die first, bright ones survive
	for i := 0; i < 40; i++ {
		ps.Update(1)
	}
	if ps.Len() != 50 {
		t.Errorf("Len() after 40 ticks = %d, expected 50", ps.Len())
	}
	for _, p := range ps.items {
		if p.R != 215 {
			t.Fatalf("Surviving particle red = %v, expected 215", p.R)
		}
	}

	for i := 0; i < 215; i++ {
		ps.Update(1)
	}
	if ps.Len() != 0 {
		t.Errorf("Len() after full fade = %d, expected 0", ps.Len())
	}
}

func TestParticleSystemDraw(t *testing.T) {
	ps := NewParticleSystem(10)
	ps.add(Particle{X: 12.7, Y: 5.2, R: 200, G: 100, B: 50})
	ps.add(Particle{X: -50, Y: 5, R: 200}) // off screen

	s := pixel.NewSurface(20, 10)
	ps.Draw(s, 2, 0)

	if got := s.At(10, 5); got != pixel.RGB(200, 100, 50) {
		t.Errorf("At(10, 5) = %v, expected particle colour", got)
	}
}
