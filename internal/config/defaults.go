package config

import (
	_ "embed"
)

//go:embed defaults/platformer.yaml
var defaultPlatformerYAML []byte

// DefaultPlatformerConfig returns the default platformer configuration.
func DefaultPlatformerConfig() PlatformerConfig {
	return PlatformerConfig{
		Canvas: CanvasConfig{
			Width:  1200,
			Height: 600,
		},
		Physics: PhysicsConfig{
			Gravity:  0.5,
			Friction: 0.8,
			TickRate: 60,
		},
		Player: PlayerConfig{
			Width:       40,
			Height:      40,
			Speed:       6,
			JumpImpulse: -12,
			SpawnInsetX: 10,
		},
		Session: SessionConfig{
			Lives:             3,
			MaxLevel:          100,
			StartLevel:        1,
			GoalBonus:         100,
			GoalBonusPerLevel: 10,
			BaseDuration:      90,
			MinDuration:       30,
		},
		Entities: EntityConfig{
			PlatformHeight:  20,
			ObstacleSize:    25,
			BombSize:        20,
			BombSpeedMin:    2,
			BombSpeedMax:    4,
			GoalSize:        40,
			MovingPlatformW: 100,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultPlatformerYAML
}
