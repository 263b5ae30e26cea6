// Package config provides YAML-based game configuration loading and
// difficulty management for the plane war game.
package config

// GameConfig contains all tunable parameters for the game.
// Speeds are in screen cells per tick at the default 60 tick rate.
type GameConfig struct {
	Player     PlayerConfig     `yaml:"player"`
	Bullet     BulletConfig     `yaml:"bullet"`
	Enemies    EnemyConfig      `yaml:"enemies"`
	Explosion  ExplosionConfig  `yaml:"explosion"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PlayerConfig defines parameters for the player ship.
type PlayerConfig struct {
	SpeedX          float64 `yaml:"speed_x"`          // Horizontal cells per tick
	SpeedY          float64 `yaml:"speed_y"`          // Vertical cells per tick
	Lives           int     `yaml:"lives"`            // Starting life pool
	FireCooldown    int     `yaml:"fire_cooldown"`    // Ticks between shots
	InvincibleTicks int     `yaml:"invincible_ticks"` // Invincibility window after a hit
}

// BulletConfig defines parameters for player bullets.
type BulletConfig struct {
	Speed float64 `yaml:"speed"` // Upward cells per tick
}

// EnemyConfig defines enemy movement and spawning parameters.
type EnemyConfig struct {
	BaseSpeed     float64     `yaml:"base_speed"`     // Downward cells per tick before modifiers
	SpawnInterval int         `yaml:"spawn_interval"` // Ticks between spawns
	InitialCount  int         `yaml:"initial_count"`  // Enemies placed at game start
	Kinds         []EnemyKind `yaml:"kinds"`          // Enemy variants, first entry is the default
}

// EnemyKind describes one enemy variant.
type EnemyKind struct {
	Name          string  `yaml:"name"`
	Health        int     `yaml:"health"`
	SpeedModifier float64 `yaml:"speed_modifier"` // Added to base speed
	Score         int     `yaml:"score"`          // Points awarded on destruction
	Width         int     `yaml:"width"`          // Hitbox width in cells
	Height        int     `yaml:"height"`         // Hitbox height in cells
}

// ExplosionConfig defines the cosmetic explosion animation.
type ExplosionConfig struct {
	FrameTicks int `yaml:"frame_ticks"` // Ticks each animation frame is shown
}

// DifficultyConfig defines score-driven difficulty progression.
// Level n is reached at score (n-1)*ScorePerLevel; each level shortens the
// spawn interval and raises the enemy base speed up to the configured caps.
type DifficultyConfig struct {
	Enabled          bool    `yaml:"enabled"`
	ScorePerLevel    int     `yaml:"score_per_level"`
	MaxLevel         int     `yaml:"max_level"`
	SpawnReduction   int     `yaml:"spawn_reduction"`    // Interval ticks removed per level
	MinSpawnInterval int     `yaml:"min_spawn_interval"` // Interval floor
	SpeedPerLevel    float64 `yaml:"speed_per_level"`    // Base speed added per level
	MaxBaseSpeed     float64 `yaml:"max_base_speed"`     // Base speed cap
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *GameConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Difficulty.Enabled = true
		cfg.Player.Lives = 5
		cfg.Enemies.SpawnInterval = 80
		cfg.Enemies.InitialCount = 5
	case DifficultyNormal:
		cfg.Difficulty.Enabled = true
	case DifficultyHard:
		cfg.Difficulty.Enabled = true
		cfg.Player.Lives = 2
		cfg.Enemies.SpawnInterval = 45
		cfg.Enemies.BaseSpeed = cfg.Enemies.BaseSpeed * 1.5
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	}
}

// ParsePreset converts a CLI string to a preset. Unknown values map to "",
// meaning the config file's own settings are used unchanged.
func ParsePreset(s string) DifficultyPreset {
	switch s {
	case "easy":
		return DifficultyEasy
	case "normal":
		return DifficultyNormal
	case "hard":
		return DifficultyHard
	case "fixed":
		return DifficultyFixed
	default:
		return ""
	}
}
