// Package config provides YAML-based game configuration loading and
// difficulty presets for the invaders platform.
package config

import (
	"errors"
	"fmt"
)

// Config contains all per-run settings for the invaders simulation.
// Loaded once at startup and read-only thereafter.
type Config struct {
	Field    FieldConfig   `yaml:"field"`
	Ship     ShipConfig    `yaml:"ship"`
	Rockets  RocketConfig  `yaml:"rockets"`
	Bombs    BombConfig    `yaml:"bombs"`
	Invaders InvaderConfig `yaml:"invaders"`
	Scoring  ScoringConfig `yaml:"scoring"`
	TickRate int           `yaml:"tick_rate"`
	Debug    bool          `yaml:"debug"`
}

// FieldConfig defines the playfield dimensions in game units.
// The playfield is centered in the logical canvas.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ShipConfig defines player ship parameters.
type ShipConfig struct {
	Speed float64 `yaml:"speed"`
}

// RocketConfig defines player rocket parameters.
type RocketConfig struct {
	Velocity    float64 `yaml:"velocity"`
	MaxFireRate float64 `yaml:"max_fire_rate"` // Rockets per second at level 1
}

// BombConfig defines invader bomb parameters.
type BombConfig struct {
	Rate        float64 `yaml:"rate"`         // Per-file drop chance scale, per second
	MinVelocity float64 `yaml:"min_velocity"` // Downward, game units per second
	MaxVelocity float64 `yaml:"max_velocity"`
}

// InvaderConfig defines the swarm's formation and movement parameters.
type InvaderConfig struct {
	InitialVelocity float64 `yaml:"initial_velocity"`
	Acceleration    float64 `yaml:"acceleration"`  // Speed gained on each edge bounce
	DropDistance    float64 `yaml:"drop_distance"` // Vertical descent after an edge bounce
	Ranks           int     `yaml:"ranks"`
	Files           int     `yaml:"files"`
}

// ScoringConfig defines score progression and level scaling.
type ScoringConfig struct {
	PointsPerInvader     int     `yaml:"points_per_invader"`
	DifficultyMultiplier float64 `yaml:"difficulty_multiplier"` // Per-level scaling factor
	LimitLevel           int     `yaml:"limit_level"`           // Level beyond which scaling caps
}

// Validate checks the configuration for precondition violations that would
// produce undefined runtime behavior (division by zero tick rate, negative
// rates). Called once before the game starts.
func (c Config) Validate() error {
	var errs []error

	if c.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("tick_rate must be positive, got %d", c.TickRate))
	}
	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		errs = append(errs, fmt.Errorf("field size must be positive, got %vx%v", c.Field.Width, c.Field.Height))
	}
	if c.Ship.Speed < 0 {
		errs = append(errs, fmt.Errorf("ship speed must not be negative, got %v", c.Ship.Speed))
	}
	if c.Rockets.Velocity < 0 {
		errs = append(errs, fmt.Errorf("rocket velocity must not be negative, got %v", c.Rockets.Velocity))
	}
	if c.Rockets.MaxFireRate <= 0 {
		errs = append(errs, fmt.Errorf("rocket max_fire_rate must be positive, got %v", c.Rockets.MaxFireRate))
	}
	if c.Bombs.Rate < 0 {
		errs = append(errs, fmt.Errorf("bomb rate must not be negative, got %v", c.Bombs.Rate))
	}
	if c.Bombs.MinVelocity < 0 || c.Bombs.MaxVelocity < c.Bombs.MinVelocity {
		errs = append(errs, fmt.Errorf("bomb velocity range [%v, %v] is invalid", c.Bombs.MinVelocity, c.Bombs.MaxVelocity))
	}
	if c.Invaders.InitialVelocity < 0 {
		errs = append(errs, fmt.Errorf("invader initial_velocity must not be negative, got %v", c.Invaders.InitialVelocity))
	}
	if c.Invaders.Acceleration < 0 {
		errs = append(errs, fmt.Errorf("invader acceleration must not be negative, got %v", c.Invaders.Acceleration))
	}
	if c.Invaders.DropDistance <= 0 {
		errs = append(errs, fmt.Errorf("invader drop_distance must be positive, got %v", c.Invaders.DropDistance))
	}
	if c.Invaders.Ranks <= 0 || c.Invaders.Files <= 0 {
		errs = append(errs, fmt.Errorf("formation must have positive ranks and files, got %dx%d", c.Invaders.Ranks, c.Invaders.Files))
	}
	if c.Scoring.PointsPerInvader < 0 {
		errs = append(errs, fmt.Errorf("points_per_invader must not be negative, got %d", c.Scoring.PointsPerInvader))
	}
	if c.Scoring.DifficultyMultiplier < 0 {
		errs = append(errs, fmt.Errorf("difficulty_multiplier must not be negative, got %v", c.Scoring.DifficultyMultiplier))
	}
	if c.Scoring.LimitLevel < 1 {
		errs = append(errs, fmt.Errorf("limit_level must be at least 1, got %d", c.Scoring.LimitLevel))
	}

	return errors.Join(errs...)
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ApplyPreset adjusts the config based on a difficulty preset.
// An empty or unknown preset leaves the config untouched.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Bombs.Rate *= 0.6
		cfg.Invaders.InitialVelocity *= 0.75
		cfg.Scoring.DifficultyMultiplier *= 0.75
	case DifficultyHard:
		cfg.Bombs.Rate *= 1.5
		cfg.Invaders.InitialVelocity *= 1.5
		cfg.Scoring.DifficultyMultiplier *= 1.5
	}
}
