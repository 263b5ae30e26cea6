package planewar

import (
	"math/rand"

	"github.com/Dhaizei/trae-solo-plane-war/internal/config"
)

// Spawner places new enemies at randomized horizontal positions just above
// the top edge. It owns the injected RNG so spawn timing and placement are
// deterministic for a given seed.
type Spawner struct {
	rng     *rand.Rand
	cfg     config.EnemyConfig
	diff    *config.DifficultyManager
	screenW int
	timer   int
	nextIdx int // Insertion index handed to spawned enemies
}

// NewSpawner creates a spawner with the given RNG seed.
func NewSpawner(seed int64, screenW int, cfg config.EnemyConfig, diff *config.DifficultyManager) *Spawner {
	s := &Spawner{
		cfg:     cfg,
		diff:    diff,
		screenW: screenW,
	}
	s.Reset(seed)
	return s
}

// Reset clears the spawn timer and reseeds the RNG.
func (s *Spawner) Reset(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
	s.timer = 0
	s.nextIdx = 0
}

// Tick advances the spawn timer by one tick and reports whether a new
// enemy is due. The interval shortens as the difficulty level rises.
func (s *Spawner) Tick(score int) bool {
	s.timer++
	if s.timer >= s.diff.SpawnInterval(s.cfg.SpawnInterval, score) {
		s.timer = 0
		return true
	}
	return false
}

// Configure fills e with a fresh enemy: a weighted random kind, a random x
// within screen width, a row just above the top edge, and a downward
// velocity with a small random jitter plus horizontal drift.
func (s *Spawner) Configure(e *Enemy, score int) {
	kind := s.pickKind(score)

	maxX := s.screenW - kind.Width
	if maxX < 1 {
		maxX = 1
	}

	e.Kind = kind.Name
	e.Health = kind.Health
	e.Score = kind.Score
	e.W = kind.Width
	e.H = kind.Height
	e.X = float64(s.rng.Intn(maxX))
	e.Y = -float64(kind.Height + s.rng.Intn(4))
	e.VY = s.diff.BaseSpeed(s.cfg.BaseSpeed, score) + kind.SpeedModifier + s.rng.Float64()*0.03
	e.VX = float64(s.rng.Intn(3)-1) * 0.05
	e.alive = true
	e.idx = s.nextIdx
	s.nextIdx++
}

// pickKind selects an enemy kind with level-dependent weights: higher
// levels shift probability toward the special kinds.
func (s *Spawner) pickKind(score int) config.EnemyKind {
	kinds := s.cfg.Kinds
	if len(kinds) == 0 {
		// No kinds configured: synthesize the classic enemy
		return config.EnemyKind{Name: "normal", Health: 1, Score: 10, Width: 3, Height: 1}
	}
	if len(kinds) == 1 {
		return kinds[0]
	}

	weights := s.kindWeights(score, len(kinds))

	total := 0
	for _, w := range weights {
		total += w
	}

	roll := s.rng.Intn(total)
	for i, w := range weights {
		if roll < w {
			return kinds[i]
		}
		roll -= w
	}
	return kinds[0]
}

// kindWeights returns per-kind spawn weights for the current level tier.
// The first kind is the common one; later kinds grow more likely as the
// level rises.
func (s *Spawner) kindWeights(score, n int) []int {
	level := s.diff.Level(score)

	var tier []int
	switch {
	case level <= 2:
		tier = []int{80, 15, 5}
	case level <= 5:
		tier = []int{60, 25, 15}
	default:
		tier = []int{50, 30, 20}
	}

	weights := make([]int, n)
	for i := range weights {
		if i < len(tier) {
			weights[i] = tier[i]
		} else {
			weights[i] = tier[len(tier)-1]
		}
	}
	return weights
}
