package config

import (
	_ "embed"
)

//go:embed defaults/warrior.yaml
var defaultWarriorYAML []byte

// DefaultWarriorConfig returns the built-in configuration used when no YAML
// source can be read.
func DefaultWarriorConfig() WarriorConfig {
	return WarriorConfig{
		World: WorldConfig{
			Width:  2000,
			Height: 2000,
		},
		Player: ShipConfig{
			MaxVelocity:   15,
			MinVelocity:   -10,
			ForwardThrust: 3,
			ReverseThrust: -1,
			TurnRate:      10,
			Shields:       100,
			Size:          12,
		},
		Devil: ShipConfig{
			MaxVelocity:   13,
			MinVelocity:   -10,
			ForwardThrust: 3,
			ReverseThrust: -1,
			TurnRate:      3,
			Shields:       100,
			Size:          12,
		},
		Phaser: PhaserConfig{
			Range:        4000,
			HitRadius:    24,
			ChargeFire:   10,
			ChargeMax:    30,
			ChargeRate:   30,
			FireTime:     5,
			PlayerDamage: 16,
			DevilDamage:  1,
		},
		Particles: ParticleConfig{
			Max: 30000,
		},
		Respawn: RespawnConfig{
			Delay:      60,
			Invincible: 300,
			Message:    "GOOD LUCK, WARRIOR!",
		},
		Radar: RadarConfig{
			Size:        100,
			Blink:       10,
			Transparent: true,
		},
		Gameplay: GameplayConfig{
			WinScore: 10,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.3,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 10,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:  0.5,
				TurnMultiplier:   1.0,
				ChargeMultiplier: 0.5,
			},
		},
		Audio: AudioConfig{
			Enabled:    true,
			SampleRate: 44100,
			Volume:     0.5,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultWarriorYAML
}
