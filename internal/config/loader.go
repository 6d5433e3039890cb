package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadTag loads Platform Tag configuration.
// Search order: customPath -> ~/.arcade/configs/tag.yaml -> ./configs/tag.yaml -> embedded default
func LoadTag(customPath string) (TagConfig, error) {
	var cfg TagConfig
	if done, err := loadInto(&cfg, customPath, "tag.yaml"); done || err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(defaultTagYAML, &cfg); err != nil {
		return DefaultTagConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// LoadSurvival loads Survival configuration.
// Search order: customPath -> ~/.arcade/configs/survival.yaml -> ./configs/survival.yaml -> embedded default
func LoadSurvival(customPath string) (SurvivalConfig, error) {
	var cfg SurvivalConfig
	if done, err := loadInto(&cfg, customPath, "survival.yaml"); done || err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(defaultSurvivalYAML, &cfg); err != nil {
		return DefaultSurvivalConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// LoadBrickBreaker loads Brick Breaker configuration.
// Search order: customPath -> ~/.arcade/configs/brickbreaker.yaml -> ./configs/brickbreaker.yaml -> embedded default
func LoadBrickBreaker(customPath string) (BrickBreakerConfig, error) {
	var cfg BrickBreakerConfig
	if done, err := loadInto(&cfg, customPath, "brickbreaker.yaml"); done || err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(defaultBrickBreakerYAML, &cfg); err != nil {
		return DefaultBrickBreakerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// LoadTrailLock loads Trail Lock configuration.
// Search order: customPath -> ~/.arcade/configs/traillock.yaml -> ./configs/traillock.yaml -> embedded default
func LoadTrailLock(customPath string) (TrailLockConfig, error) {
	var cfg TrailLockConfig
	if done, err := loadInto(&cfg, customPath, "traillock.yaml"); done || err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(defaultTrailLockYAML, &cfg); err != nil {
		return DefaultTrailLockConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// loadInto tries the custom path, then the user config directory, then the
// local configs directory. It reports done=true when cfg was populated.
// A custom path that cannot be read or parsed is an error; the fallback
// locations are best-effort.
func loadInto(cfg any, customPath, filename string) (bool, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return false, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return false, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return true, nil
	}

	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, cfg); err == nil {
				return true, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		if err := yaml.Unmarshal(data, cfg); err == nil {
			return true, nil
		}
	}

	return false, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyTagPreset modifies the config based on a difficulty preset.
func ApplyTagPreset(cfg *TagConfig, preset DifficultyPreset) {
	applyPreset(&cfg.Difficulty, preset)

	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.TagCooldown = 1.2
	case DifficultyHard:
		cfg.Gameplay.TagCooldown = 0.5
		cfg.Physics.MoveSpeed *= 1.1
	}
}

// ApplySurvivalPreset modifies the config based on a difficulty preset.
func ApplySurvivalPreset(cfg *SurvivalConfig, preset DifficultyPreset) {
	applyPreset(&cfg.Difficulty, preset)

	switch preset {
	case DifficultyEasy:
		cfg.Hazards.RampTime = 60
	case DifficultyHard:
		cfg.Hazards.RampTime = 30
		cfg.Hazards.StartSpeed = 200
	}
}

// ApplyBrickBreakerPreset modifies the config based on a difficulty preset.
func ApplyBrickBreakerPreset(cfg *BrickBreakerConfig, preset DifficultyPreset) {
	applyPreset(&cfg.Difficulty, preset)

	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Paddle.Width = 130
		cfg.Physics.BallSpeed = 250
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Paddle.Width = 70
		cfg.Physics.BallSpeed = 400
	}
}

// ApplyTrailLockPreset modifies the config based on a difficulty preset.
func ApplyTrailLockPreset(cfg *TrailLockConfig, preset DifficultyPreset) {
	applyPreset(&cfg.Difficulty, preset)

	switch preset {
	case DifficultyEasy:
		cfg.Arena.ShrinkRate = 0.5
	case DifficultyHard:
		cfg.Arena.ShrinkRate = 2.0
		cfg.Player.Speed *= 1.15
	}
}

func applyPreset(d *DifficultyConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		d.Enabled = false
	} else {
		d.Enabled = true
		d.InitialLevel = InitialLevelForPreset(preset)
	}
}
