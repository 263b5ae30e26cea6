// Package asset loads text-art sprite sheets for the game. Sprites live in
// plain .txt files under an assets directory; a missing or malformed file
// degrades to the embedded placeholder art and is never fatal.
package asset

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

//go:embed defaults/*.txt
var defaultArt embed.FS

// Expected sprite filenames inside the assets directory.
const (
	FilePlayer     = "player.txt"
	FileEnemy      = "enemy.txt"
	FileEnemyFast  = "enemy_fast.txt"
	FileEnemyHeavy = "enemy_heavy.txt"
	FileBullet     = "bullet.txt"
	FileExplosion  = "explosion.txt"
)

// Sprite is a sequence of text-art animation frames. Static sprites have a
// single frame. Frame rows are padded to equal width; spaces render as
// transparent cells.
type Sprite struct {
	Frames [][]string
}

// FrameCount returns the number of animation frames.
func (s Sprite) FrameCount() int {
	return len(s.Frames)
}

// Frame returns the rows of the given frame, clamped to the valid range.
func (s Sprite) Frame(i int) []string {
	if len(s.Frames) == 0 {
		return nil
	}
	if i < 0 {
		i = 0
	}
	if i >= len(s.Frames) {
		i = len(s.Frames) - 1
	}
	return s.Frames[i]
}

// Size returns the width and height of the first frame in cells.
func (s Sprite) Size() (int, int) {
	if len(s.Frames) == 0 || len(s.Frames[0]) == 0 {
		return 0, 0
	}
	return len([]rune(s.Frames[0][0])), len(s.Frames[0])
}

// Set holds all sprites the game renders.
type Set struct {
	Player     Sprite
	Bullet     Sprite
	Explosion  Sprite
	EnemyKinds map[string]Sprite // Keyed by enemy kind name
}

// EnemySprite returns the sprite for an enemy kind, falling back to the
// default enemy art for unknown kinds.
func (s *Set) EnemySprite(kind string) Sprite {
	if sp, ok := s.EnemyKinds[kind]; ok {
		return sp
	}
	return s.EnemyKinds["normal"]
}

// Load reads the sprite set from dir. Every sprite that cannot be read or
// parsed is replaced with the embedded placeholder; failures are logged via
// logger (which may be nil) and never abort loading.
func Load(dir string, logger *log.Logger) *Set {
	set := &Set{EnemyKinds: make(map[string]Sprite)}

	set.Player = loadSprite(dir, FilePlayer, logger)
	set.Bullet = loadSprite(dir, FileBullet, logger)
	set.Explosion = loadSprite(dir, FileExplosion, logger)
	set.EnemyKinds["normal"] = loadSprite(dir, FileEnemy, logger)
	set.EnemyKinds["fast"] = loadSprite(dir, FileEnemyFast, logger)
	set.EnemyKinds["heavy"] = loadSprite(dir, FileEnemyHeavy, logger)

	return set
}

// Defaults returns the embedded placeholder sprite set.
func Defaults() *Set {
	return Load("", nil)
}

// loadSprite loads one sprite file from dir, degrading to the embedded
// placeholder on any failure.
func loadSprite(dir, name string, logger *log.Logger) Sprite {
	if dir != "" {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err == nil {
			sprite, perr := Parse(string(data))
			if perr == nil {
				return sprite
			}
			if logger != nil {
				logger.Warn("malformed sprite file, using placeholder", "file", name, "error", perr)
			}
		} else if logger != nil && !os.IsNotExist(err) {
			logger.Warn("cannot read sprite file, using placeholder", "file", name, "error", err)
		}
	}
	return mustEmbedded(name)
}

// mustEmbedded returns the embedded placeholder for name.
// The embedded art is part of the binary, so a parse failure is a bug.
func mustEmbedded(name string) Sprite {
	data, err := defaultArt.ReadFile("defaults/" + name)
	if err != nil {
		panic(fmt.Sprintf("asset: missing embedded sprite %s: %v", name, err))
	}
	sprite, err := Parse(string(data))
	if err != nil {
		panic(fmt.Sprintf("asset: invalid embedded sprite %s: %v", name, err))
	}
	return sprite
}

// Parse converts sprite file text to a Sprite. Frames are separated by
// blank lines; within a frame, rows are padded to the widest row. A file
// with no visible glyphs is an error.
func Parse(text string) (Sprite, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")

	var sprite Sprite
	for _, block := range strings.Split(text, "\n\n") {
		rows := splitFrame(block)
		if len(rows) == 0 {
			continue
		}
		sprite.Frames = append(sprite.Frames, rows)
	}

	if len(sprite.Frames) == 0 {
		return Sprite{}, fmt.Errorf("sprite has no frames")
	}
	return sprite, nil
}

// splitFrame turns one frame block into padded rows, dropping
// leading/trailing empty lines.
func splitFrame(block string) []string {
	lines := strings.Split(block, "\n")

	// Trim fully empty lines at both ends
	start, end := 0, len(lines)
	for start < end && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	lines = lines[start:end]
	if len(lines) == 0 {
		return nil
	}

	// Pad rows to the widest
	width := 0
	for _, l := range lines {
		if n := len([]rune(l)); n > width {
			width = n
		}
	}

	rows := make([]string, 0, len(lines))
	hasGlyph := false
	for _, l := range lines {
		runes := []rune(l)
		if len(runes) < width {
			l = l + strings.Repeat(" ", width-len(runes))
		}
		if strings.TrimSpace(l) != "" {
			hasGlyph = true
		}
		rows = append(rows, l)
	}
	if !hasGlyph {
		return nil
	}
	return rows
}
