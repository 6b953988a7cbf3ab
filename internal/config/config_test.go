package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultWarriorConfig().Validate(); err != nil {
		t.Errorf("DefaultWarriorConfig().Validate() = %v, expected nil", err)
	}
}

func TestEmbeddedMatchesDefault(t *testing.T) {
	var cfg WarriorConfig
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultWarriorConfig()) {
		t.Errorf("embedded YAML = %+v, expected %+v", cfg, DefaultWarriorConfig())
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadCustomPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, "gameplay:\n  win_score: 3\nphaser:\n  hit_radius: 650\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Gameplay.WinScore != 3 {
		t.Errorf("WinScore = %d, expected 3", cfg.Gameplay.WinScore)
	}
	if cfg.Phaser.HitRadius != 650 {
		t.Errorf("HitRadius = %v, expected 650", cfg.Phaser.HitRadius)
	}
	if cfg.World.Width != 2000 {
		t.Errorf("World.Width = %d, expected default 2000", cfg.World.Width)
	}
}

func TestLoadCustomErrors(t *testing.T) {
	dir := t.TempDir()
	broken := filepath.Join(dir, "broken.yaml")
	writeFile(t, broken, "world: [not, a, map\n")
	invalid := filepath.Join(dir, "invalid.yaml")
	writeFile(t, invalid, "world:\n  width: 0\n")

	tests := []struct {
		name string
		path string
	}{
		{"missing", filepath.Join(dir, "nope.yaml")},
		{"unparsable", broken},
		{"invalid values", invalid},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Load(tc.path); err == nil {
				t.Error("Load() expected an error")
			}
		})
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	prevWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd() error = %v", err)
	}
	if err := os.Chdir(work); err != nil {
		t.Fatalf("Chdir() error = %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(prevWD) })

	// Nothing on disk: embedded default
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Gameplay.WinScore != 10 {
		t.Errorf("WinScore = %d, expected embedded 10", cfg.Gameplay.WinScore)
	}

	// Local configs directory
	writeFile(t, filepath.Join(work, "configs", FileName), "gameplay:\n  win_score: 4\n")
	cfg, _ = Load("")
	if cfg.Gameplay.WinScore != 4 {
		t.Errorf("WinScore = %d, expected local 4", cfg.Gameplay.WinScore)
	}

	// User directory wins over the local one
	writeFile(t, filepath.Join(home, ".penguin-warrior", "configs", FileName), "gameplay:\n  win_score: 7\n")
	cfg, _ = Load("")
	if cfg.Gameplay.WinScore != 7 {
		t.Errorf("WinScore = %d, expected user 7", cfg.Gameplay.WinScore)
	}

	// An invalid user file is skipped
	writeFile(t, filepath.Join(home, ".penguin-warrior", "configs", FileName), "world:\n  height: -5\n")
	cfg, _ = Load("")
	if cfg.Gameplay.WinScore != 4 {
		t.Errorf("WinScore = %d, expected local 4 after invalid user file", cfg.Gameplay.WinScore)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*WarriorConfig)
	}{
		{"world", func(c *WarriorConfig) { c.World.Width = 0 }},
		{"velocity", func(c *WarriorConfig) { c.Devil.MinVelocity = 20 }},
		{"shields", func(c *WarriorConfig) { c.Player.Shields = 0 }},
		{"charge", func(c *WarriorConfig) { c.Phaser.ChargeFire = 40 }},
		{"radius", func(c *WarriorConfig) { c.Phaser.HitRadius = -1 }},
		{"particles", func(c *WarriorConfig) { c.Particles.Max = -1 }},
		{"win score", func(c *WarriorConfig) { c.Gameplay.WinScore = -2 }},
		{"volume", func(c *WarriorConfig) { c.Audio.Volume = 1.5 }},
		{"sample rate", func(c *WarriorConfig) { c.Audio.SampleRate = -1 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultWarriorConfig()
			tc.modify(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() expected an error")
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	for _, p := range Presets {
		got, err := ParsePreset(string(p))
		if err != nil || got != p {
			t.Errorf("ParsePreset(%q) = %q, %v", p, got, err)
		}
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("ParsePreset(\"nightmare\") expected an error")
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultWarriorConfig()
	ApplyPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	cfg = DefaultWarriorConfig()
	ApplyPreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard preset = %+v", cfg.Difficulty)
	}
	if cfg.Player.Shields != 75 {
		t.Errorf("Player.Shields = %d, expected 75", cfg.Player.Shields)
	}

	cfg = DefaultWarriorConfig()
	ApplyPreset(&cfg, DifficultyEasy)
	if cfg.Difficulty.InitialLevel != 0 || cfg.Player.Shields != 150 {
		t.Errorf("easy preset = level %v shields %d", cfg.Difficulty.InitialLevel, cfg.Player.Shields)
	}
}

func TestMarshal(t *testing.T) {
	data, err := Marshal(DefaultWarriorConfig())
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	for _, key := range []string{"win_score: 10", "hit_radius: 24", "message:", "sample_rate: 44100"} {
		if !strings.Contains(string(data), key) {
			t.Errorf("Marshal() output missing %q", key)
		}
	}
}
