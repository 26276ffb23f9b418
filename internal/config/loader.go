package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const platformerFile = "platformer.yaml"

// LoadPlatformer loads the platformer configuration.
// Search order: customPath -> ~/.arcade/configs/platformer.yaml ->
// ./configs/platformer.yaml -> embedded default.
// Files are overlaid on the defaults, so a partial file only changes the
// keys it names.
func LoadPlatformer(customPath string) (PlatformerConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return PlatformerConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parsePlatformer(data)
		if err != nil {
			return PlatformerConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath(platformerFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parsePlatformer(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", platformerFile)); err == nil {
		if cfg, err := parsePlatformer(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := parsePlatformer(defaultPlatformerYAML)
	if err != nil {
		return DefaultPlatformerConfig(), nil
	}
	return cfg, nil
}

// parsePlatformer overlays YAML data on the embedded defaults and validates
// the result.
func parsePlatformer(data []byte) (PlatformerConfig, error) {
	cfg := DefaultPlatformerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return PlatformerConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return PlatformerConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyPlatformerPreset modifies the config based on a difficulty preset.
func ApplyPlatformerPreset(cfg *PlatformerConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}

	switch preset {
	case DifficultyEasy:
		cfg.Difficulty.Enabled = false
		cfg.Player.MaxHealth = 5
		cfg.Items.PowerUpDuration = 8
	case DifficultyHard:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
		cfg.Player.MaxHealth = 2
		cfg.Items.PowerUpDuration = 3
	}
}
