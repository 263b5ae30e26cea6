package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmbeddedDefault(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Player.Lives != 3 {
		t.Errorf("Default lives = %d, expected 3", cfg.Player.Lives)
	}
	if cfg.Player.InvincibleTicks != 180 {
		t.Errorf("Default invincible_ticks = %d, expected 180", cfg.Player.InvincibleTicks)
	}
	if cfg.Enemies.SpawnInterval != 60 {
		t.Errorf("Default spawn_interval = %d, expected 60", cfg.Enemies.SpawnInterval)
	}
	if len(cfg.Enemies.Kinds) != 3 {
		t.Fatalf("Default enemy kinds = %d, expected 3", len(cfg.Enemies.Kinds))
	}
	if cfg.Enemies.Kinds[0].Name != "normal" || cfg.Enemies.Kinds[0].Score != 10 {
		t.Errorf("First enemy kind should be normal worth 10, got %q worth %d",
			cfg.Enemies.Kinds[0].Name, cfg.Enemies.Kinds[0].Score)
	}
}

func TestLoadEmbeddedMatchesHardcoded(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	hardcoded := DefaultGameConfig()
	if cfg.Player != hardcoded.Player {
		t.Errorf("embedded player config %+v differs from hardcoded %+v", cfg.Player, hardcoded.Player)
	}
	if cfg.Difficulty != hardcoded.Difficulty {
		t.Errorf("embedded difficulty config %+v differs from hardcoded %+v", cfg.Difficulty, hardcoded.Difficulty)
	}
}

func TestLoadCustomPath(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "custom.yaml")

	content := `
player:
  speed_x: 2.0
  speed_y: 1.0
  lives: 5
  fire_cooldown: 5
  invincible_ticks: 60
bullet:
  speed: 1.5
enemies:
  base_speed: 0.2
  spawn_interval: 30
  initial_count: 4
  kinds:
    - name: normal
      health: 1
      speed_modifier: 0.0
      score: 10
      width: 3
      height: 1
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("cannot write temp config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Player.Lives != 5 {
		t.Errorf("Custom lives = %d, expected 5", cfg.Player.Lives)
	}
	if cfg.Enemies.SpawnInterval != 30 {
		t.Errorf("Custom spawn_interval = %d, expected 30", cfg.Enemies.SpawnInterval)
	}
	if len(cfg.Enemies.Kinds) != 1 {
		t.Errorf("Custom enemy kinds = %d, expected 1", len(cfg.Enemies.Kinds))
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load("/nonexistent/path/planewar.yaml")
	if err == nil {
		t.Error("Load() with missing custom path should fail")
	}
}

func TestApplyPreset(t *testing.T) {
	easy := DefaultGameConfig()
	ApplyPreset(&easy, DifficultyEasy)
	if easy.Player.Lives != 5 {
		t.Errorf("Easy preset lives = %d, expected 5", easy.Player.Lives)
	}

	hard := DefaultGameConfig()
	ApplyPreset(&hard, DifficultyHard)
	if hard.Player.Lives != 2 {
		t.Errorf("Hard preset lives = %d, expected 2", hard.Player.Lives)
	}
	if hard.Enemies.BaseSpeed <= DefaultGameConfig().Enemies.BaseSpeed {
		t.Error("Hard preset should raise enemy base speed")
	}

	fixed := DefaultGameConfig()
	ApplyPreset(&fixed, DifficultyFixed)
	if fixed.Difficulty.Enabled {
		t.Error("Fixed preset should disable difficulty progression")
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in       string
		expected DifficultyPreset
	}{
		{"easy", DifficultyEasy},
		{"normal", DifficultyNormal},
		{"hard", DifficultyHard},
		{"fixed", DifficultyFixed},
		{"bogus", ""},
		{"", ""},
	}

	for _, tc := range tests {
		if got := ParsePreset(tc.in); got != tc.expected {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tc.in, got, tc.expected)
		}
	}
}
