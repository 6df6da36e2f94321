package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultPlatformerConfig().Validate(); err != nil {
		t.Fatalf("default config should validate, got %v", err)
	}
}

func TestEmbeddedYAMLMatchesDefaults(t *testing.T) {
	cfg, err := parse(GetDefaultYAML())
	if err != nil {
		t.Fatalf("embedded YAML failed to parse: %v", err)
	}
	if cfg != DefaultPlatformerConfig() {
		t.Errorf("embedded YAML differs from hardcoded defaults:\n got %+v\nwant %+v", cfg, DefaultPlatformerConfig())
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *PlatformerConfig)
	}{
		{"zero canvas width", func(c *PlatformerConfig) { c.Canvas.Width = 0 }},
		{"negative canvas height", func(c *PlatformerConfig) { c.Canvas.Height = -1 }},
		{"zero player width", func(c *PlatformerConfig) { c.Player.Width = 0 }},
		{"player wider than canvas", func(c *PlatformerConfig) { c.Player.Width = 5000 }},
		{"upward gravity", func(c *PlatformerConfig) { c.Physics.Gravity = -0.5 }},
		{"friction above one", func(c *PlatformerConfig) { c.Physics.Friction = 1.2 }},
		{"zero tick rate", func(c *PlatformerConfig) { c.Physics.TickRate = 0 }},
		{"positive jump impulse", func(c *PlatformerConfig) { c.Player.JumpImpulse = 12 }},
		{"four lives", func(c *PlatformerConfig) { c.Session.Lives = 4 }},
		{"zero lives", func(c *PlatformerConfig) { c.Session.Lives = 0 }},
		{"start beyond max", func(c *PlatformerConfig) { c.Session.StartLevel = 101 }},
		{"zero bomb speed", func(c *PlatformerConfig) { c.Entities.BombSpeedMin = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultPlatformerConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("error should wrap ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestLoadCustomPathOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("physics:\n  gravity: 0.7\nsession:\n  lives: 2\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := LoadPlatformer(path)
	if err != nil {
		t.Fatalf("LoadPlatformer() failed: %v", err)
	}
	if cfg.Physics.Gravity != 0.7 {
		t.Errorf("gravity = %v, expected 0.7", cfg.Physics.Gravity)
	}
	if cfg.Session.Lives != 2 {
		t.Errorf("lives = %d, expected 2", cfg.Session.Lives)
	}
	if cfg.Canvas.Width != 1200 {
		t.Errorf("unset keys should keep defaults, canvas width = %v", cfg.Canvas.Width)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := LoadPlatformer(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Error("LoadPlatformer() should fail for a missing custom path")
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultPlatformerConfig()
	ApplyPreset(&cfg, DifficultyHard)
	if cfg.Session.Lives != 2 || cfg.Session.StartLevel != 6 {
		t.Errorf("hard preset: lives=%d start=%d, expected 2 and 6", cfg.Session.Lives, cfg.Session.StartLevel)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("hard preset should stay valid: %v", err)
	}

	cfg = DefaultPlatformerConfig()
	ApplyPreset(&cfg, "")
	if cfg != DefaultPlatformerConfig() {
		t.Error("empty preset should not modify config")
	}

	if ParsePreset("impossible") != "" {
		t.Error("unknown preset should parse to empty")
	}
}

func TestCountdownAndGoalScore(t *testing.T) {
	s := DefaultPlatformerConfig().Session

	tests := []struct {
		level, countdown, goal int
	}{
		{1, 89, 110},
		{12, 78, 220},
		{60, 30, 700},
		{100, 30, 1100},
	}
	for _, tc := range tests {
		if got := s.CountdownSeconds(tc.level); got != tc.countdown {
			t.Errorf("CountdownSeconds(%d) = %d, expected %d", tc.level, got, tc.countdown)
		}
		if got := s.GoalScore(tc.level); got != tc.goal {
			t.Errorf("GoalScore(%d) = %d, expected %d", tc.level, got, tc.goal)
		}
	}
}
