// Package audio synthesizes the game's sound effects and plays them through
// the system speaker. Nothing is loaded from disk.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/penguin-warrior/internal/core"
)

// DefaultSampleRate is used when the configuration leaves it unset.
const DefaultSampleRate = beep.SampleRate(44100)

// Manager plays sound effects for game events.
// All methods are safe to call before Initialize or after it failed; they
// simply do nothing.
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	rate        beep.SampleRate
	volume      float64
	initialized bool
	logger      *log.Logger
}

// NewManager creates a manager. Volume ranges from 0 (silent) to 1.
func NewManager(rate beep.SampleRate, volume float64, logger *log.Logger) *Manager {
	if rate <= 0 {
		rate = DefaultSampleRate
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Manager{
		mixer:  &beep.Mixer{},
		rate:   rate,
		volume: volume,
		logger: logger,
	}
}

// Initialize opens the speaker and starts the mixer.
func (m *Manager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}
	if err := speaker.Init(m.rate, m.rate.N(time.Millisecond*50)); err != nil {
		return fmt.Errorf("audio: failed to open speaker: %w", err)
	}
	speaker.Play(m.mixer)
	m.initialized = true
	m.logger.Debug("audio ready", "rate", int(m.rate), "volume", m.volume)
	return nil
}

// Enabled reports whether sounds are actually being played.
func (m *Manager) Enabled() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.initialized
}

// Play starts a sound effect.
func (m *Manager) Play(s Sound) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	streamer := NewSound(s, m.rate, m.volume)
	if streamer == nil {
		return
	}
	speaker.Lock()
	m.mixer.Add(streamer)
	speaker.Unlock()
}

// PlayEvents plays the effects for a tick's events.
func (m *Manager) PlayEvents(events []core.Event) {
	for _, ev := range events {
		if s, ok := SoundFor(ev); ok {
			m.Play(s)
		}
	}
}

// Close stops all sounds and releases the speaker.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	m.initialized = false
}

// SoundFor maps a game event to its sound effect.
func SoundFor(ev core.Event) (Sound, bool) {
	switch ev.Kind {
	case core.EventPhaserFired:
		if ev.Side == core.SideOpponent {
			return SoundEnemyPhaser, true
		}
		return SoundPhaser, true
	case core.EventShipHit:
		return SoundHit, true
	case core.EventShipDestroyed:
		return SoundExplosion, true
	case core.EventRespawned:
		return SoundRespawn, true
	case core.EventMatchOver:
		return SoundMatchOver, true
	default:
		return 0, false
	}
}
