// Package config provides YAML-based game configuration loading and
// difficulty management for Penguin Warrior.
package config

import "fmt"

// WarriorConfig contains all tunable gameplay parameters.
type WarriorConfig struct {
	World      WorldConfig      `yaml:"world"`
	Player     ShipConfig       `yaml:"player"`
	Devil      ShipConfig       `yaml:"devil"`
	Phaser     PhaserConfig     `yaml:"phaser"`
	Particles  ParticleConfig   `yaml:"particles"`
	Respawn    RespawnConfig    `yaml:"respawn"`
	Radar      RadarConfig      `yaml:"radar"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Audio      AudioConfig      `yaml:"audio"`
}

// WorldConfig defines the size of the playing field in pixels.
type WorldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ShipConfig defines the handling of one kind of ship.
// Speeds and rates are per tick at 30 ticks per second.
type ShipConfig struct {
	MaxVelocity   float64 `yaml:"max_velocity"`
	MinVelocity   float64 `yaml:"min_velocity"`
	ForwardThrust float64 `yaml:"forward_thrust"`
	ReverseThrust float64 `yaml:"reverse_thrust"`
	TurnRate      float64 `yaml:"turn_rate"` // Degrees per tick
	Shields       int     `yaml:"shields"`
	Size          int     `yaml:"size"` // Half the hull length in pixels
}

// PhaserConfig defines beam reach, charge cycle and damage.
type PhaserConfig struct {
	Range        float64 `yaml:"range"`
	HitRadius    float64 `yaml:"hit_radius"`
	ChargeFire   float64 `yaml:"charge_fire"`
	ChargeMax    float64 `yaml:"charge_max"`
	ChargeRate   float64 `yaml:"charge_rate"` // Units per second
	FireTime     float64 `yaml:"fire_time"`   // Ticks
	PlayerDamage int     `yaml:"player_damage"`
	DevilDamage  int     `yaml:"devil_damage"` // Per tick of beam contact
}

// ParticleConfig bounds the particle system.
type ParticleConfig struct {
	Max int `yaml:"max"`
}

// RespawnConfig defines the death and invincibility timers in ticks.
type RespawnConfig struct {
	Delay      int    `yaml:"delay"`
	Invincible int    `yaml:"invincible"`
	Message    string `yaml:"message"`
}

// RadarConfig defines the radar window.
type RadarConfig struct {
	Size        int  `yaml:"size"`  // Edge length in pixels
	Blink       int  `yaml:"blink"` // Opponent blip blink half-period in ticks
	Transparent bool `yaml:"transparent"`
}

// GameplayConfig defines match rules.
type GameplayConfig struct {
	WinScore int `yaml:"win_score"` // Kills needed to win, 0 plays forever
}

// AudioConfig defines the synthesized sound output.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	SampleRate int     `yaml:"sample_rate"`
	Volume     float64 `yaml:"volume"` // 0.0 = silent, 1.0 = full
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines how much the computer opponent improves at max
// difficulty. Each multiplier is added on top of 1.0.
type ScalingConfig struct {
	SpeedMultiplier  float64 `yaml:"speed_multiplier"`  // Thrust
	TurnMultiplier   float64 `yaml:"turn_multiplier"`   // Turn rate
	ChargeMultiplier float64 `yaml:"charge_multiplier"` // Phaser recharge
}

// Validate checks that the configuration describes a playable game.
func (c WarriorConfig) Validate() error {
	if c.World.Width <= 0 || c.World.Height <= 0 {
		return fmt.Errorf("config: world size %dx%d must be positive", c.World.Width, c.World.Height)
	}
	for name, s := range map[string]ShipConfig{"player": c.Player, "devil": c.Devil} {
		if s.MinVelocity > s.MaxVelocity {
			return fmt.Errorf("config: %s min_velocity %v exceeds max_velocity %v", name, s.MinVelocity, s.MaxVelocity)
		}
		if s.Shields <= 0 {
			return fmt.Errorf("config: %s shields must be positive", name)
		}
	}
	if c.Phaser.ChargeFire <= 0 || c.Phaser.ChargeMax < c.Phaser.ChargeFire {
		return fmt.Errorf("config: phaser charge_fire %v must be positive and at most charge_max %v",
			c.Phaser.ChargeFire, c.Phaser.ChargeMax)
	}
	if c.Phaser.Range < 0 || c.Phaser.HitRadius < 0 {
		return fmt.Errorf("config: phaser range and hit_radius must not be negative")
	}
	if c.Particles.Max < 0 {
		return fmt.Errorf("config: particles max must not be negative")
	}
	if c.Gameplay.WinScore < 0 {
		return fmt.Errorf("config: win_score must not be negative")
	}
	if c.Audio.SampleRate < 0 || c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("config: audio sample_rate must not be negative and volume must be within 0..1")
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the difficulty presets in menu order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParsePreset converts a flag value into a preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	for _, p := range Presets {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
