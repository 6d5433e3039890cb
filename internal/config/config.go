// Package config provides YAML-based game configuration loading,
// difficulty management, and keyboard binding profiles for the arcade
// platform.
package config

// TagConfig contains all configuration for the Platform Tag game.
type TagConfig struct {
	Physics    TagPhysics       `yaml:"physics"`
	Player     TagPlayer        `yaml:"player"`
	Gameplay   TagGameplay      `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// TagPhysics defines platformer physics parameters for Tag.
type TagPhysics struct {
	Gravity        float64 `yaml:"gravity"`
	MoveSpeed      float64 `yaml:"move_speed"`
	JumpSpeed      float64 `yaml:"jump_speed"`
	JumpBuffer     float64 `yaml:"jump_buffer"`
	MaxJumps       int     `yaml:"max_jumps"`
	SpeedBoost     float64 `yaml:"speed_boost"`
	DropNudge      float64 `yaml:"drop_nudge"`
}

// TagPlayer defines player body parameters for Tag.
type TagPlayer struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// TagGameplay defines match parameters for Tag.
type TagGameplay struct {
	MatchTime   float64 `yaml:"match_time"`   // seconds
	TagCooldown float64 `yaml:"tag_cooldown"` // seconds between transfers
	Map         int     `yaml:"map"`          // layout variant 0..2
}

// SurvivalConfig contains all configuration for the Survival game.
type SurvivalConfig struct {
	Hazards    SurvivalHazards  `yaml:"hazards"`
	Player     SurvivalPlayer   `yaml:"player"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// SurvivalHazards defines the hazard spawn ramp for Survival.
type SurvivalHazards struct {
	Size          float64 `yaml:"size"`
	StartInterval float64 `yaml:"start_interval"`
	EndInterval   float64 `yaml:"end_interval"`
	StartSpeed    float64 `yaml:"start_speed"`
	EndSpeed      float64 `yaml:"end_speed"`
	RampTime      float64 `yaml:"ramp_time"`
}

// SurvivalPlayer defines player parameters for Survival.
type SurvivalPlayer struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	MoveSpeed float64 `yaml:"move_speed"`
}

// BrickBreakerConfig contains all configuration for the Brick Breaker game.
type BrickBreakerConfig struct {
	Physics    BrickBreakerPhysics  `yaml:"physics"`
	Paddle     BrickBreakerPaddle   `yaml:"paddle"`
	Ball       BrickBreakerBall     `yaml:"ball"`
	Bricks     BrickBreakerBricks   `yaml:"bricks"`
	Gameplay   BrickBreakerGameplay `yaml:"gameplay"`
	Difficulty DifficultyConfig     `yaml:"difficulty"`
}

// BrickBreakerPhysics defines ball and paddle speeds.
type BrickBreakerPhysics struct {
	BallSpeed    float64 `yaml:"ball_speed"`
	PaddleSpeed  float64 `yaml:"paddle_speed"`
	MaxBallSpeed float64 `yaml:"max_ball_speed"`
}

// BrickBreakerPaddle defines paddle geometry.
type BrickBreakerPaddle struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Offset float64 `yaml:"offset"` // distance from the bottom edge
}

// BrickBreakerBall defines ball geometry.
type BrickBreakerBall struct {
	Size float64 `yaml:"size"`
}

// BrickBreakerBricks defines the brick wall layout.
type BrickBreakerBricks struct {
	Rows      int     `yaml:"rows"`
	Cols      int     `yaml:"cols"`
	Height    float64 `yaml:"height"`
	Gap       float64 `yaml:"gap"`
	TopOffset float64 `yaml:"top_offset"`
}

// BrickBreakerGameplay defines match parameters.
type BrickBreakerGameplay struct {
	Lives int `yaml:"lives"`
}

// TrailLockConfig contains all configuration for the Trail Lock game.
type TrailLockConfig struct {
	Arena      TrailLockArena   `yaml:"arena"`
	Player     TrailLockPlayer  `yaml:"player"`
	Gameplay   TrailLockRules   `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// TrailLockArena defines how the arena shrinks over a round.
type TrailLockArena struct {
	ShrinkRate float64 `yaml:"shrink_rate"` // px/s off each edge
	MinWidth   float64 `yaml:"min_width"`
	MinHeight  float64 `yaml:"min_height"`
}

// TrailLockPlayer defines player movement for Trail Lock.
type TrailLockPlayer struct {
	Size  float64 `yaml:"size"`
	Speed float64 `yaml:"speed"`
}

// TrailLockRules defines round structure for Trail Lock.
type TrailLockRules struct {
	Rounds      int     `yaml:"rounds"`
	TrailInset  float64 `yaml:"trail_inset"`  // shrink applied to trail segments
	StartDelay  float64 `yaml:"start_delay"`  // grace period before trails arm
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
	Type  string `yaml:"type"`   // "time" or "none"
	MaxAt int    `yaml:"max_at"` // Seconds at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier   float64 `yaml:"speed_multiplier"`   // Multiplier added to speeds at max difficulty
	IntervalReduction float64 `yaml:"interval_reduction"` // Fraction shaved off spawn intervals at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

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
