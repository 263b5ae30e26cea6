// Package planewar implements the plane war simulation: a ship at the
// bottom of the screen firing upward at descending enemies. The package is
// pure logic with no UI or audio dependencies; the platform layer maps keys
// to actions, drives the fixed tick and reacts to emitted events.
package planewar

import (
	"github.com/Dhaizei/trae-solo-plane-war/internal/asset"
	"github.com/Dhaizei/trae-solo-plane-war/internal/config"
	"github.com/Dhaizei/trae-solo-plane-war/internal/core"
)

// Minimum playable screen size.
const (
	MinScreenW = 40
	MinScreenH = 15
)

// configPath stores the custom config path set via CLI.
var configPath string

// difficultyPreset stores the difficulty preset set via CLI.
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Game implements the plane war game logic.
type Game struct {
	// Entities
	player     *Player
	enemies    []*Enemy
	bullets    []*Bullet
	explosions []*Explosion

	// Simulation machinery
	spawner    *Spawner
	hash       *SpatialHash
	bulletPool *BulletPool
	enemyPool  *EnemyPool

	// Game state
	phase     core.Phase
	score     int
	level     int
	tickCount uint64
	events    []core.Event // Scratch, reused across ticks

	// Configuration
	runtime    core.RuntimeConfig
	cfg        config.GameConfig
	diff       *config.DifficultyManager
	sprites    *asset.Set
	tooSmall   bool
}

// New creates a new game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game, used for score storage.
func (g *Game) ID() string {
	return "planewar"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Plane War"
}

// SetSprites injects the sprite set used for rendering. When never called,
// Reset falls back to the embedded placeholder art.
func (g *Game) SetSprites(set *asset.Set) {
	g.sprites = set
}

// Reset initializes or restarts the game in the Start phase.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.Load(configPath)
	if err != nil {
		cfg = config.DefaultGameConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg
	g.diff = config.NewDifficultyManager(cfg.Difficulty)

	if g.sprites == nil {
		g.sprites = asset.Defaults()
	}

	g.tooSmall = runtime.ScreenW < MinScreenW || runtime.ScreenH < MinScreenH

	if g.bulletPool == nil {
		g.bulletPool = NewBulletPool(20)
	}
	if g.enemyPool == nil {
		g.enemyPool = NewEnemyPool(16)
	}
	g.hash = NewSpatialHash(spatialCellSize)

	g.spawner = NewSpawner(runtime.Seed, runtime.ScreenW, cfg.Enemies, g.diff)

	g.phase = core.PhaseStart
	g.score = 0
	g.level = 1
	g.tickCount = 0
	g.clearEntities()
	g.player = g.newPlayer()
}

// newPlayer creates the player ship centered at the bottom of the screen.
func (g *Game) newPlayer() *Player {
	return &Player{
		X:     float64((g.runtime.ScreenW - PlayerWidth) / 2),
		Y:     float64(g.runtime.ScreenH - PlayerHeight - 1),
		Lives: g.cfg.Player.Lives,
	}
}

// clearEntities returns all entities to their pools.
func (g *Game) clearEntities() {
	for _, e := range g.enemies {
		g.enemyPool.Put(e)
	}
	for _, b := range g.bullets {
		g.bulletPool.Put(b)
	}
	g.enemies = g.enemies[:0]
	g.bullets = g.bullets[:0]
	g.explosions = g.explosions[:0]
}

// startRun transitions into the Playing phase with a fresh score, life
// pool and initial enemy wave. The RNG stream continues, so a full session
// (including restarts) is reproducible from one seed.
func (g *Game) startRun() {
	g.phase = core.PhasePlaying
	g.score = 0
	g.level = 1
	g.tickCount = 0
	g.clearEntities()
	g.player = g.newPlayer()

	for i := 0; i < g.cfg.Enemies.InitialCount; i++ {
		g.spawnEnemy()
	}
}

// spawnEnemy adds one configured enemy from the pool.
func (g *Game) spawnEnemy() {
	e := g.enemyPool.Get()
	g.spawner.Configure(e, g.score)
	g.enemies = append(g.enemies, e)
}

// Step advances the simulation by one fixed tick.
// The returned events slice is valid until the next call.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = g.events[:0]

	if g.tooSmall {
		return g.result()
	}

	switch g.phase {
	case core.PhaseStart:
		if in.Has(core.ActionFire) {
			g.startRun()
		}
		return g.result()

	case core.PhaseGameOver:
		if in.Has(core.ActionFire) || in.Has(core.ActionRestart) {
			g.startRun()
		}
		return g.result()

	case core.PhasePaused:
		if in.Has(core.ActionPause) {
			g.phase = core.PhasePlaying
		}
		return g.result()
	}

	// Playing
	if in.Has(core.ActionPause) {
		g.phase = core.PhasePaused
		return g.result()
	}

	g.tickCount++

	g.updatePlayer(in)
	g.advanceBullets()
	g.advanceEnemies()

	if g.spawner.Tick(g.score) {
		g.spawnEnemy()
	}

	g.advanceExplosions()
	g.resolveCollisions()
	g.updateLevel()

	if g.player.Lives <= 0 {
		g.phase = core.PhaseGameOver
		g.emit(core.EventGameOver)
	}

	return g.result()
}

// updatePlayer applies movement within screen bounds, ticks down the
// invincibility and fire cooldown timers, and handles firing.
func (g *Game) updatePlayer(in core.InputFrame) {
	p := g.player

	if p.Invincible > 0 {
		p.Invincible--
	}
	if p.fireCooldown > 0 {
		p.fireCooldown--
	}

	if in.Has(core.ActionLeft) {
		p.X -= g.cfg.Player.SpeedX
	}
	if in.Has(core.ActionRight) {
		p.X += g.cfg.Player.SpeedX
	}
	if in.Has(core.ActionUp) {
		p.Y -= g.cfg.Player.SpeedY
	}
	if in.Has(core.ActionDown) {
		p.Y += g.cfg.Player.SpeedY
	}

	p.X = core.ClampF(p.X, 0, float64(g.runtime.ScreenW-PlayerWidth))
	p.Y = core.ClampF(p.Y, 0, float64(g.runtime.ScreenH-PlayerHeight))

	if in.Has(core.ActionFire) && p.fireCooldown == 0 {
		g.fireBullet()
		p.fireCooldown = g.cfg.Player.FireCooldown
	}
}

// fireBullet launches a bullet from the nose of the player ship.
func (g *Game) fireBullet() {
	b := g.bulletPool.Get()
	b.X = g.player.X + float64(PlayerWidth/2)
	b.Y = g.player.Y - 1
	b.VY = -g.cfg.Bullet.Speed
	b.alive = true
	g.bullets = append(g.bullets, b)
	g.emit(core.EventShoot)
}

// advanceBullets moves bullets and recycles the ones that left the screen.
func (g *Game) advanceBullets() {
	live := g.bullets[:0]
	for _, b := range g.bullets {
		b.Advance()
		if b.alive {
			live = append(live, b)
		} else {
			g.bulletPool.Put(b)
		}
	}
	g.bullets = live
}

// advanceEnemies moves enemies and recycles the ones below the screen.
func (g *Game) advanceEnemies() {
	live := g.enemies[:0]
	for _, e := range g.enemies {
		e.Advance(g.runtime.ScreenW, g.runtime.ScreenH)
		if e.alive {
			live = append(live, e)
		} else {
			g.enemyPool.Put(e)
		}
	}
	g.enemies = live
}

// advanceExplosions ticks explosion animations and drops finished ones.
func (g *Game) advanceExplosions() {
	live := g.explosions[:0]
	for _, ex := range g.explosions {
		ex.Advance()
		if ex.alive {
			live = append(live, ex)
		}
	}
	g.explosions = live
}

// resolveCollisions runs the per-tick collision pass: bullets against
// enemies first, then enemies against the player.
func (g *Game) resolveCollisions() {
	g.hash.Rebuild(g.enemies)

	// Bullet x enemy: each bullet destroys at most one enemy (first match
	// wins); the bullet is consumed by any hit, destroyed or not.
	for _, b := range g.bullets {
		if !b.alive {
			continue
		}
		e := g.hash.FirstHit(b.Bounds())
		if e == nil {
			continue
		}
		b.alive = false
		e.Health--
		if e.Health <= 0 {
			g.destroyEnemy(e)
			g.emit(core.EventExplosion)
		}
	}
	g.compactBullets()
	g.compactEnemies()

	// Enemy x player: only when vulnerable; the enemy is always consumed.
	p := g.player
	playerBounds := p.Bounds()
	for _, e := range g.enemies {
		if !e.alive || !e.Bounds().Intersects(playerBounds) {
			continue
		}
		cx, cy := e.Bounds().Center()
		e.alive = false
		g.spawnEnemy()

		if p.Vulnerable() {
			p.Lives--
			p.Invincible = g.cfg.Player.InvincibleTicks
			g.explosions = append(g.explosions, newExplosion(cx, cy, g.cfg.Explosion.FrameTicks, g.sprites.Explosion.FrameCount()))
			g.emit(core.EventHit)
		}
	}
	g.compactEnemies()
}

// destroyEnemy awards points, spawns the explosion effect and a
// replacement enemy.
func (g *Game) destroyEnemy(e *Enemy) {
	cx, cy := e.Bounds().Center()
	e.alive = false
	g.score += e.Score
	g.explosions = append(g.explosions, newExplosion(cx, cy, g.cfg.Explosion.FrameTicks, g.sprites.Explosion.FrameCount()))
	g.spawnEnemy()
}

// compactBullets drops dead bullets, returning them to the pool.
func (g *Game) compactBullets() {
	live := g.bullets[:0]
	for _, b := range g.bullets {
		if b.alive {
			live = append(live, b)
		} else {
			g.bulletPool.Put(b)
		}
	}
	g.bullets = live
}

// compactEnemies drops dead enemies, returning them to the pool.
func (g *Game) compactEnemies() {
	live := g.enemies[:0]
	for _, e := range g.enemies {
		if e.alive {
			live = append(live, e)
		} else {
			g.enemyPool.Put(e)
		}
	}
	g.enemies = live
}

// updateLevel recomputes the difficulty level from the score.
func (g *Game) updateLevel() {
	newLevel := g.diff.Level(g.score)
	if newLevel > g.level {
		g.level = newLevel
		g.emit(core.EventLevelUp)
	}
}

// emit queues an event for this tick's StepResult.
func (g *Game) emit(e core.Event) {
	g.events = append(g.events, e)
}

// result builds the StepResult for the current tick.
func (g *Game) result() core.StepResult {
	return core.StepResult{
		State:  g.State(),
		Events: g.events,
	}
}

// State returns the current externally visible game state.
func (g *Game) State() core.GameState {
	lives := 0
	if g.player != nil {
		lives = g.player.Lives
	}
	return core.GameState{
		Score: g.score,
		Lives: lives,
		Level: g.level,
		Phase: g.phase,
	}
}
