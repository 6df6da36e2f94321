// Package config provides YAML-based game configuration loading and
// difficulty presets for the platformer.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned (wrapped) by Validate for any rejected value.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// PlatformerConfig contains all configuration for the platformer simulation.
type PlatformerConfig struct {
	Canvas   CanvasConfig   `yaml:"canvas"`
	Physics  PhysicsConfig  `yaml:"physics"`
	Player   PlayerConfig   `yaml:"player"`
	Session  SessionConfig  `yaml:"session"`
	Entities EntityConfig   `yaml:"entities"`
	Preset   PresetSettings `yaml:"preset"`
}

// CanvasConfig defines the logical canvas in pixels.
type CanvasConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig defines per-tick motion constants.
type PhysicsConfig struct {
	Gravity  float64 `yaml:"gravity"`   // Added to vy every tick
	Friction float64 `yaml:"friction"`  // Multiplies vx every tick
	TickRate int     `yaml:"tick_rate"` // Nominal ticks per second for the countdown
}

// PlayerConfig defines the player body and movement.
type PlayerConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Speed       float64 `yaml:"speed"`
	JumpImpulse float64 `yaml:"jump_impulse"` // Negative = upward
	SpawnInsetX float64 `yaml:"spawn_inset_x"`
}

// SessionConfig defines lives, scoring and countdown rules.
type SessionConfig struct {
	Lives             int `yaml:"lives"`
	MaxLevel          int `yaml:"max_level"`
	StartLevel        int `yaml:"start_level"`
	GoalBonus         int `yaml:"goal_bonus"`
	GoalBonusPerLevel int `yaml:"goal_bonus_per_level"`
	BaseDuration      int `yaml:"base_duration"` // Countdown = max(MinDuration, BaseDuration - level)
	MinDuration       int `yaml:"min_duration"`
}

// EntityConfig defines sizes of generated level entities.
type EntityConfig struct {
	PlatformHeight  float64 `yaml:"platform_height"`
	ObstacleSize    float64 `yaml:"obstacle_size"`
	BombSize        float64 `yaml:"bomb_size"`
	BombSpeedMin    float64 `yaml:"bomb_speed_min"`
	BombSpeedMax    float64 `yaml:"bomb_speed_max"`
	GoalSize        float64 `yaml:"goal_size"`
	MovingPlatformW float64 `yaml:"moving_platform_width"`
}

// PresetSettings records which difficulty preset was applied, if any.
type PresetSettings struct {
	Name string `yaml:"name"`
}

// Validate checks the configuration for values that would produce a
// nonsensical simulation. It never clamps.
func (c PlatformerConfig) Validate() error {
	switch {
	case c.Canvas.Width <= 0 || c.Canvas.Height <= 0:
		return fmt.Errorf("%w: canvas must be positive, got %vx%v", ErrInvalidConfig, c.Canvas.Width, c.Canvas.Height)
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return fmt.Errorf("%w: player size must be positive, got %vx%v", ErrInvalidConfig, c.Player.Width, c.Player.Height)
	case c.Player.Width > c.Canvas.Width || c.Player.Height > c.Canvas.Height:
		return fmt.Errorf("%w: player does not fit the canvas", ErrInvalidConfig)
	case c.Player.JumpImpulse >= 0:
		return fmt.Errorf("%w: jump_impulse must be negative, got %v", ErrInvalidConfig, c.Player.JumpImpulse)
	case c.Physics.Gravity <= 0:
		return fmt.Errorf("%w: gravity must be positive, got %v", ErrInvalidConfig, c.Physics.Gravity)
	case c.Physics.Friction <= 0 || c.Physics.Friction > 1:
		return fmt.Errorf("%w: friction must be in (0, 1], got %v", ErrInvalidConfig, c.Physics.Friction)
	case c.Physics.TickRate <= 0:
		return fmt.Errorf("%w: tick_rate must be positive, got %d", ErrInvalidConfig, c.Physics.TickRate)
	case c.Session.Lives < 1 || c.Session.Lives > 3:
		return fmt.Errorf("%w: lives must be in [1, 3], got %d", ErrInvalidConfig, c.Session.Lives)
	case c.Session.MaxLevel < 1:
		return fmt.Errorf("%w: max_level must be at least 1, got %d", ErrInvalidConfig, c.Session.MaxLevel)
	case c.Session.StartLevel < 1 || c.Session.StartLevel > c.Session.MaxLevel:
		return fmt.Errorf("%w: start_level must be in [1, %d], got %d", ErrInvalidConfig, c.Session.MaxLevel, c.Session.StartLevel)
	case c.Session.MinDuration < 1:
		return fmt.Errorf("%w: min_duration must be at least 1, got %d", ErrInvalidConfig, c.Session.MinDuration)
	case c.Entities.PlatformHeight <= 0 || c.Entities.ObstacleSize <= 0 ||
		c.Entities.BombSize <= 0 || c.Entities.GoalSize <= 0 || c.Entities.MovingPlatformW <= 0:
		return fmt.Errorf("%w: entity sizes must be positive", ErrInvalidConfig)
	case c.Entities.BombSpeedMin <= 0 || c.Entities.BombSpeedMax < c.Entities.BombSpeedMin:
		return fmt.Errorf("%w: bomb speed range must be positive and ordered, got [%v, %v)",
			ErrInvalidConfig, c.Entities.BombSpeedMin, c.Entities.BombSpeedMax)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset maps a CLI string to a preset. Unknown strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
