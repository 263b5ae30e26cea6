package config

// DifficultyManager calculates dynamic game parameters from the score.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled
}

// Level returns the current difficulty level (1-based) for a score.
// One level is gained per ScorePerLevel points, capped at MaxLevel.
func (d *DifficultyManager) Level(score int) int {
	if !d.cfg.Enabled || d.cfg.ScorePerLevel <= 0 {
		return 1
	}
	level := score/d.cfg.ScorePerLevel + 1
	if d.cfg.MaxLevel > 0 && level > d.cfg.MaxLevel {
		level = d.cfg.MaxLevel
	}
	return level
}

// SpawnInterval returns the enemy spawn interval in ticks for a score.
// The interval shrinks by SpawnReduction per level above 1, never below
// MinSpawnInterval.
func (d *DifficultyManager) SpawnInterval(base, score int) int {
	interval := base - (d.Level(score)-1)*d.cfg.SpawnReduction
	if interval < d.cfg.MinSpawnInterval {
		interval = d.cfg.MinSpawnInterval
	}
	return interval
}

// BaseSpeed returns the enemy base speed in cells per tick for a score.
// Speed grows by SpeedPerLevel per level above 1, capped at MaxBaseSpeed.
func (d *DifficultyManager) BaseSpeed(base float64, score int) float64 {
	speed := base + float64(d.Level(score)-1)*d.cfg.SpeedPerLevel
	if d.cfg.MaxBaseSpeed > 0 && speed > d.cfg.MaxBaseSpeed {
		speed = d.cfg.MaxBaseSpeed
	}
	return speed
}
