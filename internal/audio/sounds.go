package audio

import (
	"time"

	"github.com/gopxl/beep"
)

// Sound identifies one of the game's sound effects.
type Sound int

const (
	SoundPhaser Sound = iota
	SoundEnemyPhaser
	SoundHit
	SoundExplosion
	SoundRespawn
	SoundMatchOver
)

// String returns the effect name used in logs.
func (s Sound) String() string {
	switch s {
	case SoundPhaser:
		return "phaser"
	case SoundEnemyPhaser:
		return "enemy-phaser"
	case SoundHit:
		return "hit"
	case SoundExplosion:
		return "explosion"
	case SoundRespawn:
		return "respawn"
	case SoundMatchOver:
		return "match-over"
	default:
		return "unknown"
	}
}

const (
	phaserDuration    = 180 * time.Millisecond
	hitDuration       = 90 * time.Millisecond
	explosionDuration = 900 * time.Millisecond
	chimeNote         = 120 * time.Millisecond
)

// NewSound builds a fresh streamer for the effect at the given volume.
// Streamers are single use.
func NewSound(s Sound, rate beep.SampleRate, volume float64) beep.Streamer {
	var out beep.Streamer
	switch s {
	case SoundPhaser:
		osc := NewSweep(1800, 400, phaserDuration, WaveSaw, rate)
		out = newVolume(NewEnvelope(osc, phaserDuration, 5*time.Millisecond, 60*time.Millisecond, rate), 0.35)
	case SoundEnemyPhaser:
		osc := NewSweep(900, 200, phaserDuration, WaveSquare, rate)
		out = newVolume(NewEnvelope(osc, phaserDuration, 5*time.Millisecond, 60*time.Millisecond, rate), 0.25)
	case SoundHit:
		noise := NewOscillator(0, hitDuration, WaveNoise, rate)
		out = newVolume(NewDecay(noise, hitDuration, 2*time.Millisecond, rate), 0.4)
	case SoundExplosion:
		noise := NewOscillator(0, explosionDuration, WaveNoise, rate)
		rumble := NewSweep(90, 30, explosionDuration, WaveSine, rate)
		mixed := beep.Mix(newVolume(noise, 0.6), newVolume(rumble, 0.4))
		out = NewDecay(mixed, explosionDuration, 10*time.Millisecond, rate)
	case SoundRespawn:
		n1 := NewEnvelope(NewOscillator(659.25, chimeNote, WaveSine, rate), chimeNote, 5*time.Millisecond, 40*time.Millisecond, rate)
		n2 := NewEnvelope(NewOscillator(987.77, chimeNote*2, WaveSine, rate), chimeNote*2, 5*time.Millisecond, 150*time.Millisecond, rate)
		out = newVolume(beep.Seq(n1, n2), 0.3)
	case SoundMatchOver:
		n1 := NewEnvelope(NewOscillator(523.25, chimeNote, WaveSquare, rate), chimeNote, 5*time.Millisecond, 40*time.Millisecond, rate)
		n2 := NewEnvelope(NewOscillator(392.00, chimeNote, WaveSquare, rate), chimeNote, 5*time.Millisecond, 40*time.Millisecond, rate)
		n3 := NewEnvelope(NewOscillator(261.63, chimeNote*3, WaveSquare, rate), chimeNote*3, 5*time.Millisecond, 250*time.Millisecond, rate)
		out = newVolume(beep.Seq(n1, n2, n3), 0.2)
	default:
		return nil
	}
	return newVolume(out, volume)
}
