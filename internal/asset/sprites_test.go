package asset

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseSingleFrame(t *testing.T) {
	sprite, err := Parse(" ▲ \n▟█▙\n")
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if sprite.FrameCount() != 1 {
		t.Fatalf("FrameCount() = %d, expected 1", sprite.FrameCount())
	}

	w, h := sprite.Size()
	if w != 3 || h != 2 {
		t.Errorf("Size() = (%d, %d), expected (3, 2)", w, h)
	}
}

func TestParseMultiFrame(t *testing.T) {
	sprite, err := Parse("·\n\n✶\n\n✺\n")
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if sprite.FrameCount() != 3 {
		t.Fatalf("FrameCount() = %d, expected 3", sprite.FrameCount())
	}

	if sprite.Frame(1)[0] != "✶" {
		t.Errorf("Frame(1) = %q, expected ✶", sprite.Frame(1)[0])
	}

	// Frame index is clamped, not out of range
	if sprite.Frame(99)[0] != "✺" {
		t.Error("Frame() should clamp to the last frame")
	}
	if sprite.Frame(-1)[0] != "·" {
		t.Error("Frame() should clamp to the first frame")
	}
}

func TestParseRaggedRowsPadded(t *testing.T) {
	sprite, err := Parse("██\n█\n")
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	rows := sprite.Frame(0)
	if rows[1] != "█ " {
		t.Errorf("Short row should be padded, got %q", rows[1])
	}
}

func TestParseEmptyFails(t *testing.T) {
	if _, err := Parse(""); err == nil {
		t.Error("Parse of empty text should fail")
	}
	if _, err := Parse("   \n   \n"); err == nil {
		t.Error("Parse of whitespace-only text should fail")
	}
}

func TestLoadMissingDirUsesPlaceholders(t *testing.T) {
	set := Load("/nonexistent/assets", nil)

	w, h := set.Player.Size()
	if w == 0 || h == 0 {
		t.Error("Player placeholder should not be empty")
	}
	if set.Explosion.FrameCount() < 2 {
		t.Error("Explosion placeholder should be animated")
	}
	if set.EnemySprite("normal").FrameCount() == 0 {
		t.Error("Normal enemy placeholder missing")
	}
}

func TestLoadOverridesFromDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, FilePlayer), []byte("@@@@\n@@@@\n@@@@\n"), 0o600); err != nil {
		t.Fatalf("cannot write sprite file: %v", err)
	}

	set := Load(dir, nil)

	w, h := set.Player.Size()
	if w != 4 || h != 3 {
		t.Errorf("Loaded player size = (%d, %d), expected (4, 3)", w, h)
	}

	// Files not present in dir still fall back to placeholders
	if set.Bullet.FrameCount() == 0 {
		t.Error("Bullet should fall back to the placeholder")
	}
}

func TestLoadMalformedFileUsesPlaceholder(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, FileBullet), []byte("  \n \n"), 0o600); err != nil {
		t.Fatalf("cannot write sprite file: %v", err)
	}

	set := Load(dir, nil)
	if set.Bullet.FrameCount() == 0 {
		t.Error("Malformed bullet file should degrade to the placeholder")
	}
}

func TestEnemySpriteUnknownKind(t *testing.T) {
	set := Defaults()

	unknown := set.EnemySprite("bogus")
	normal := set.EnemySprite("normal")
	if unknown.Frame(0)[0] != normal.Frame(0)[0] {
		t.Error("Unknown enemy kind should fall back to the normal sprite")
	}
}
