package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the name of the configuration file in the search directories.
const FileName = "warrior.yaml"

// Load loads the game configuration.
// Search order: customPath -> ~/.penguin-warrior/configs/warrior.yaml ->
// ./configs/warrior.yaml -> embedded default -> hardcoded default.
// Files only need to name the values they change; everything else keeps
// its default.
func Load(customPath string) (WarriorConfig, error) {
	cfg, _ := loadEmbedded()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("%s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then the local configs directory
	for _, path := range []string{userConfigPath(FileName), filepath.Join("configs", FileName)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := cfg
		if err := yaml.Unmarshal(data, &candidate); err != nil {
			continue
		}
		if candidate.Validate() != nil {
			continue
		}
		return candidate, nil
	}

	return cfg, nil
}

// loadEmbedded parses the embedded default YAML, falling back to the
// hardcoded defaults if it is unusable.
func loadEmbedded() (WarriorConfig, bool) {
	cfg := DefaultWarriorConfig()
	if err := yaml.Unmarshal(defaultWarriorYAML, &cfg); err != nil {
		return DefaultWarriorConfig(), false
	}
	if cfg.Validate() != nil {
		return DefaultWarriorConfig(), false
	}
	return cfg, true
}

// Marshal renders a configuration as YAML.
func Marshal(cfg WarriorConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".penguin-warrior", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *WarriorConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust the match itself based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Player.Shields = 150
		cfg.Phaser.DevilDamage = 1
	case DifficultyHard:
		cfg.Player.Shields = 75
		cfg.Phaser.DevilDamage = 2
	}
}
