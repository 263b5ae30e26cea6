package planewar

import (
	"testing"

	"github.com/Dhaizei/trae-solo-plane-war/internal/config"
)

func testSpawner(seed int64) *Spawner {
	cfg := config.DefaultGameConfig()
	diff := config.NewDifficultyManager(cfg.Difficulty)
	return NewSpawner(seed, 80, cfg.Enemies, diff)
}

func TestSpawnerDeterminism(t *testing.T) {
	s1 := testSpawner(777)
	s2 := testSpawner(777)

	for i := 0; i < 100; i++ {
		var e1, e2 Enemy
		s1.Configure(&e1, i*10)
		s2.Configure(&e2, i*10)

		if e1 != e2 {
			t.Fatalf("Spawn %d differs between identical seeds:\n%+v\n%+v", i, e1, e2)
		}
	}
}

func TestSpawnerPlacement(t *testing.T) {
	s := testSpawner(42)

	for i := 0; i < 200; i++ {
		var e Enemy
		s.Configure(&e, 0)

		if e.X < 0 || int(e.X)+e.W > 80 {
			t.Errorf("Enemy spawned out of bounds: x=%f w=%d", e.X, e.W)
		}
		if e.Y >= 0 {
			t.Errorf("Enemy should spawn above the screen, y=%f", e.Y)
		}
		if e.VY <= 0 {
			t.Errorf("Enemy should move downward, vy=%f", e.VY)
		}
		if !e.alive {
			t.Error("Spawned enemy should be alive")
		}
	}
}

func TestSpawnerIndexesAreUnique(t *testing.T) {
	s := testSpawner(42)

	seen := make(map[int]bool)
	for i := 0; i < 50; i++ {
		var e Enemy
		s.Configure(&e, 0)
		if seen[e.idx] {
			t.Fatalf("Duplicate insertion index %d", e.idx)
		}
		seen[e.idx] = true
	}
}

func TestSpawnerInterval(t *testing.T) {
	s := testSpawner(1)
	interval := s.cfg.SpawnInterval

	spawns := 0
	for i := 0; i < interval*3; i++ {
		if s.Tick(0) {
			spawns++
		}
	}
	if spawns != 3 {
		t.Errorf("Got %d spawns over %d ticks at interval %d, want 3", spawns, interval*3, interval)
	}
}

func TestSpawnerIntervalShrinksWithScore(t *testing.T) {
	cfg := config.DefaultGameConfig()
	diff := config.NewDifficultyManager(cfg.Difficulty)
	s := NewSpawner(1, 80, cfg.Enemies, diff)

	base := cfg.Enemies.SpawnInterval
	highScore := cfg.Difficulty.ScorePerLevel * 5

	lowSpawns := 0
	for i := 0; i < base*10; i++ {
		if s.Tick(0) {
			lowSpawns++
		}
	}

	s.Reset(1)
	highSpawns := 0
	for i := 0; i < base*10; i++ {
		if s.Tick(highScore) {
			highSpawns++
		}
	}

	if highSpawns <= lowSpawns {
		t.Errorf("High score should spawn faster: %d spawns at score 0, %d at score %d",
			lowSpawns, highSpawns, highScore)
	}
}

func TestSpawnerKindWeightsShiftWithLevel(t *testing.T) {
	s := testSpawner(9)
	cfg := config.DefaultGameConfig()
	highScore := cfg.Difficulty.ScorePerLevel * 9

	countSpecials := func(score int) int {
		s.Reset(9)
		specials := 0
		for i := 0; i < 1000; i++ {
			var e Enemy
			s.Configure(&e, score)
			if e.Kind != "normal" {
				specials++
			}
		}
		return specials
	}

	low := countSpecials(0)
	high := countSpecials(highScore)

	// 20% specials at level 1 versus 50% at the top tier; with 1000
	// samples the gap is far outside random noise
	if high <= low {
		t.Errorf("Special kinds should be more common at high level: %d at score 0, %d at score %d",
			low, high, highScore)
	}
}

func TestSpawnerNoKindsFallback(t *testing.T) {
	cfg := config.DefaultGameConfig()
	cfg.Enemies.Kinds = nil
	diff := config.NewDifficultyManager(cfg.Difficulty)
	s := NewSpawner(1, 80, cfg.Enemies, diff)

	var e Enemy
	s.Configure(&e, 0)
	if e.Kind != "normal" || e.Health != 1 || e.Score != 10 {
		t.Errorf("Fallback kind = %q hp=%d score=%d, want normal/1/10", e.Kind, e.Health, e.Score)
	}
}
