package config

import (
	_ "embed"
)

//go:embed defaults/planewar.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the hardcoded default configuration.
// Used as the last-resort fallback when the embedded YAML cannot be parsed.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Player: PlayerConfig{
			SpeedX:          1.2,
			SpeedY:          0.5,
			Lives:           3,
			FireCooldown:    10,
			InvincibleTicks: 180,
		},
		Bullet: BulletConfig{
			Speed: 0.8,
		},
		Enemies: EnemyConfig{
			BaseSpeed:     0.10,
			SpawnInterval: 60,
			InitialCount:  8,
			Kinds: []EnemyKind{
				{Name: "normal", Health: 1, SpeedModifier: 0, Score: 10, Width: 3, Height: 1},
				{Name: "fast", Health: 1, SpeedModifier: 0.07, Score: 20, Width: 2, Height: 1},
				{Name: "heavy", Health: 3, SpeedModifier: -0.04, Score: 50, Width: 4, Height: 2},
			},
		},
		Explosion: ExplosionConfig{
			FrameTicks: 3,
		},
		Difficulty: DifficultyConfig{
			Enabled:          true,
			ScorePerLevel:    100,
			MaxLevel:         10,
			SpawnReduction:   5,
			MinSpawnInterval: 20,
			SpeedPerLevel:    0.02,
			MaxBaseSpeed:     0.35,
		},
	}
}
