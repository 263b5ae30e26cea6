package planewar

import "github.com/Dhaizei/trae-solo-plane-war/internal/core"

// Snapshot captures the simulation state at a single tick. Two runs with
// the same seed, config and input sequence produce identical snapshots,
// which is what the determinism tests assert on.
type Snapshot struct {
	Tick       uint64
	Phase      core.Phase
	Score      int
	Lives      int
	Level      int
	Invincible int
	PlayerX    float64
	PlayerY    float64
	Enemies    int
	Bullets    int
	Explosions int
	SpawnTimer int
}

// Snapshot returns the current simulation snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:       g.tickCount,
		Phase:      g.phase,
		Score:      g.score,
		Level:      g.level,
		Enemies:    len(g.enemies),
		Bullets:    len(g.bullets),
		Explosions: len(g.explosions),
	}
	if g.player != nil {
		s.Lives = g.player.Lives
		s.Invincible = g.player.Invincible
		s.PlayerX = g.player.X
		s.PlayerY = g.player.Y
	}
	if g.spawner != nil {
		s.SpawnTimer = g.spawner.timer
	}
	return s
}
