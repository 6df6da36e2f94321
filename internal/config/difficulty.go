package config

// ApplyPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplyPreset(cfg *PlatformerConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	cfg.Preset.Name = string(preset)

	switch preset {
	case DifficultyEasy:
		cfg.Session.Lives = 3
		cfg.Entities.BombSpeedMin = 1.5
		cfg.Entities.BombSpeedMax = 3
	case DifficultyHard:
		// Start where bombs begin to fall, with one life fewer.
		cfg.Session.Lives = 2
		if cfg.Session.StartLevel < 6 {
			cfg.Session.StartLevel = 6
		}
	}
}

// CountdownSeconds returns the countdown for a level: max(min, base - level).
func (s SessionConfig) CountdownSeconds(level int) int {
	d := s.BaseDuration - level
	if d < s.MinDuration {
		return s.MinDuration
	}
	return d
}

// GoalScore returns the score awarded for reaching the goal on a level.
func (s SessionConfig) GoalScore(level int) int {
	return s.GoalBonus + level*s.GoalBonusPerLevel
}
