package config

import (
	_ "embed"
)

//go:embed defaults/invaders.yaml
var defaultYAML []byte

// Default returns the default invaders configuration: a 400x300 playfield
// simulated at 50 ticks per second with the classic 5x10 formation.
func Default() Config {
	return Config{
		Field: FieldConfig{
			Width:  400,
			Height: 300,
		},
		Ship: ShipConfig{
			Speed: 120,
		},
		Rockets: RocketConfig{
			Velocity:    120,
			MaxFireRate: 2,
		},
		Bombs: BombConfig{
			Rate:        0.05,
			MinVelocity: 50,
			MaxVelocity: 50,
		},
		Invaders: InvaderConfig{
			InitialVelocity: 25,
			Acceleration:    0,
			DropDistance:    20,
			Ranks:           5,
			Files:           10,
		},
		Scoring: ScoringConfig{
			PointsPerInvader:     5,
			DifficultyMultiplier: 0.2,
			LimitLevel:           25,
		},
		TickRate: 50,
	}
}

// DefaultYAML returns the embedded default YAML document.
func DefaultYAML() []byte {
	return defaultYAML
}
