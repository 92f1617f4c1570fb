package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name looked up in the user and local config directories.
const ConfigFile = "breakout.yaml"

// LoadBreakout loads Breakout configuration.
// Search order: customPath -> ~/.brickbreak/configs/breakout.yaml -> ./configs/breakout.yaml -> embedded default.
// Values missing from a file keep their defaults. Only an explicit customPath can fail.
func LoadBreakout(customPath string) (BreakoutConfig, error) {
	cfg := embeddedBreakout()

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
			return cfg, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{userConfigPath(ConfigFile), filepath.Join("configs", ConfigFile)}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		fileCfg := cfg
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			continue
		}
		if fileCfg.Validate() != nil {
			continue
		}
		return fileCfg, nil
	}

	return cfg, nil
}

// embeddedBreakout parses the embedded default YAML over the hardcoded defaults.
func embeddedBreakout() BreakoutConfig {
	cfg := DefaultBreakoutConfig()
	if err := yaml.Unmarshal(defaultBreakoutYAML, &cfg); err != nil {
		return DefaultBreakoutConfig() // Fallback to hardcoded if embed fails
	}
	return cfg
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".brickbreak", "configs", filename)
}

// Marshal renders the configuration as YAML.
func Marshal(cfg BreakoutConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}

// ApplyBreakoutPreset modifies the config based on a difficulty preset.
// Normal leaves the loaded values untouched.
func ApplyBreakoutPreset(cfg *BreakoutConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Ball.LaunchVX = 0.12
		cfg.Ball.LaunchVY = 0.12
		cfg.PowerUps.Chance = 0.3
		cfg.Levels.SpeedMultiplier = 1.1
	case DifficultyHard:
		cfg.Ball.LaunchVX = 0.18
		cfg.Ball.LaunchVY = 0.18
		cfg.PowerUps.Chance = 0.1
		cfg.Levels.SpeedMultiplier = 1.3
	}
}
