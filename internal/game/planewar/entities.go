package planewar

import (
	"github.com/Dhaizei/trae-solo-plane-war/internal/core"
)

// Player hitbox size in cells, matching the default sprite.
const (
	PlayerWidth  = 3
	PlayerHeight = 2
)

// Player is the ship controlled at the bottom of the screen.
type Player struct {
	X, Y         float64 // Top-left position
	Lives        int
	Invincible   int // Ticks of invincibility remaining, 0 = vulnerable
	fireCooldown int // Ticks until the next shot is allowed
}

// Bounds returns the player's collision rectangle.
func (p *Player) Bounds() core.Rect {
	return core.NewRect(int(p.X), int(p.Y), PlayerWidth, PlayerHeight)
}

// Vulnerable reports whether the player can currently take damage.
func (p *Player) Vulnerable() bool {
	return p.Invincible == 0
}

// Enemy is a descending ship. It drifts sideways, bouncing off the screen
// edges, and is removed once it leaves the bottom of the screen.
type Enemy struct {
	X, Y   float64
	VX, VY float64
	W, H   int
	Kind   string
	Health int
	Score  int // Points awarded when destroyed

	alive bool
	idx   int // Insertion order, used for deterministic first-match collision
}

// Bounds returns the enemy's collision rectangle.
func (e *Enemy) Bounds() core.Rect {
	return core.NewRect(int(e.X), int(e.Y), e.W, e.H)
}

// Alive reports whether the enemy is still in play.
func (e *Enemy) Alive() bool {
	return e.alive
}

// Advance moves the enemy one tick, bouncing horizontal drift off the side
// walls and killing the enemy once it passes below the screen.
func (e *Enemy) Advance(screenW, screenH int) {
	e.X += e.VX
	e.Y += e.VY

	if e.X < 0 {
		e.X = 0
		e.VX = -e.VX
	}
	if int(e.X)+e.W > screenW {
		e.X = float64(screenW - e.W)
		e.VX = -e.VX
	}

	if int(e.Y) > screenH {
		e.alive = false
	}
}

// Bullet is a player projectile travelling upward. Hitbox is a single cell.
type Bullet struct {
	X, Y  float64
	VY    float64 // Negative = up
	alive bool
}

// Bounds returns the bullet's collision rectangle.
func (b *Bullet) Bounds() core.Rect {
	return core.NewRect(int(b.X), int(b.Y), 1, 1)
}

// Alive reports whether the bullet is still in flight.
func (b *Bullet) Alive() bool {
	return b.alive
}

// Advance moves the bullet one tick, killing it above the top edge.
func (b *Bullet) Advance() {
	b.Y += b.VY
	if b.Y < -1 {
		b.alive = false
	}
}

// Explosion is a transient visual effect with no collision.
type Explosion struct {
	X, Y       int // Center position
	frame      int
	frameTicks int // Ticks per animation frame
	ticksLeft  int // Ticks until the next frame
	maxFrames  int
	alive      bool
}

// newExplosion creates an explosion centered at (x, y).
func newExplosion(x, y, frameTicks, frames int) *Explosion {
	if frameTicks < 1 {
		frameTicks = 1
	}
	if frames < 1 {
		frames = 1
	}
	return &Explosion{
		X:          x,
		Y:          y,
		frameTicks: frameTicks,
		ticksLeft:  frameTicks,
		maxFrames:  frames,
		alive:      true,
	}
}

// Frame returns the current animation frame index.
func (ex *Explosion) Frame() int {
	return ex.frame
}

// Alive reports whether the animation is still playing.
func (ex *Explosion) Alive() bool {
	return ex.alive
}

// Advance steps the animation one tick, expiring after the last frame.
func (ex *Explosion) Advance() {
	ex.ticksLeft--
	if ex.ticksLeft > 0 {
		return
	}
	ex.ticksLeft = ex.frameTicks
	ex.frame++
	if ex.frame >= ex.maxFrames {
		ex.alive = false
	}
}
