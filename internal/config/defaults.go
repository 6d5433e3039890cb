package config

import (
	_ "embed"
)

//go:embed defaults/tag.yaml
var defaultTagYAML []byte

//go:embed defaults/survival.yaml
var defaultSurvivalYAML []byte

//go:embed defaults/brickbreaker.yaml
var defaultBrickBreakerYAML []byte

//go:embed defaults/traillock.yaml
var defaultTrailLockYAML []byte

// DefaultTagConfig returns the default Platform Tag configuration.
func DefaultTagConfig() TagConfig {
	return TagConfig{
		Physics: TagPhysics{
			Gravity:    1500,
			MoveSpeed:  220,
			JumpSpeed:  620,
			JumpBuffer: 0.18,
			MaxJumps:   1,
			SpeedBoost: 1.5,
			DropNudge:  4,
		},
		Player: TagPlayer{
			Width:  20,
			Height: 30,
		},
		Gameplay: TagGameplay{
			MatchTime:   90,
			TagCooldown: 0.8,
			Map:         0,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type: "none",
			},
		},
	}
}

// DefaultSurvivalConfig returns the default Survival configuration.
func DefaultSurvivalConfig() SurvivalConfig {
	return SurvivalConfig{
		Hazards: SurvivalHazards{
			Size:          40,
			StartInterval: 1.0,
			EndInterval:   0.30,
			StartSpeed:    150,
			EndSpeed:      380,
			RampTime:      45,
		},
		Player: SurvivalPlayer{
			Width:     20,
			Height:    30,
			MoveSpeed: 260,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 45,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:   1.0,
				IntervalReduction: 0.5,
			},
		},
	}
}

// DefaultBrickBreakerConfig returns the default Brick Breaker configuration.
func DefaultBrickBreakerConfig() BrickBreakerConfig {
	return BrickBreakerConfig{
		Physics: BrickBreakerPhysics{
			BallSpeed:    300,
			PaddleSpeed:  420,
			MaxBallSpeed: 600,
		},
		Paddle: BrickBreakerPaddle{
			Width:  100,
			Height: 14,
			Offset: 30,
		},
		Ball: BrickBreakerBall{
			Size: 12,
		},
		Bricks: BrickBreakerBricks{
			Rows:      5,
			Cols:      10,
			Height:    20,
			Gap:       4,
			TopOffset: 80,
		},
		Gameplay: BrickBreakerGameplay{
			Lives: 3,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 120,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}

// DefaultTrailLockConfig returns the default Trail Lock configuration.
func DefaultTrailLockConfig() TrailLockConfig {
	return TrailLockConfig{
		Arena: TrailLockArena{
			ShrinkRate: 1.0,
			MinWidth:   120,
			MinHeight:  120,
		},
		Player: TrailLockPlayer{
			Size:  16,
			Speed: 180,
		},
		Gameplay: TrailLockRules{
			Rounds:     10,
			TrailInset: 6,
			StartDelay: 1.5,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type: "none",
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "tag":
		return defaultTagYAML
	case "survival":
		return defaultSurvivalYAML
	case "brickbreaker":
		return defaultBrickBreakerYAML
	case "traillock":
		return defaultTrailLockYAML
	default:
		return nil
	}
}
