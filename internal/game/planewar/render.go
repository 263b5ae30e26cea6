package planewar

import (
	"fmt"

	"github.com/Dhaizei/trae-solo-plane-war/internal/core"
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH))
		return
	}

	if g.phase == core.PhaseStart {
		g.renderStartScreen(dst)
		return
	}

	g.renderHUD(dst)
	g.renderEnemies(dst)
	g.renderBullets(dst)
	g.renderExplosions(dst)
	g.renderPlayer(dst)
	g.renderOverlay(dst)
}

// renderHUD draws score, lives and level on the top row.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", g.score), core.ColorWhite)

	livesText := fmt.Sprintf("Lives: %d", g.player.Lives)
	x := (dst.Width() - len(livesText)) / 2
	dst.DrawTextColored(x, 0, livesText, core.ColorRed)

	levelText := fmt.Sprintf("Level: %d", g.level)
	dst.DrawTextColored(dst.Width()-len(levelText)-1, 0, levelText, core.ColorGreen)
}

// renderPlayer draws the player ship. While invincible the ship blinks
// by skipping every other 10-tick window.
func (g *Game) renderPlayer(dst *core.Screen) {
	p := g.player
	if p.Invincible > 0 && (p.Invincible/10)%2 == 1 {
		return
	}
	g.drawSprite(dst, g.sprites.Player.Frame(0), int(p.X), int(p.Y), core.ColorCyan)
}

// renderEnemies draws all live enemies colored by kind.
func (g *Game) renderEnemies(dst *core.Screen) {
	for _, e := range g.enemies {
		if !e.alive {
			continue
		}
		color := core.ColorRed
		switch e.Kind {
		case "fast":
			color = core.ColorYellow
		case "heavy":
			color = core.ColorBlue
		}
		sprite := g.sprites.EnemySprite(e.Kind)
		g.drawSprite(dst, sprite.Frame(0), int(e.X), int(e.Y), color)
	}
}

// renderBullets draws all live bullets.
func (g *Game) renderBullets(dst *core.Screen) {
	for _, b := range g.bullets {
		if !b.alive {
			continue
		}
		g.drawSprite(dst, g.sprites.Bullet.Frame(0), int(b.X), int(b.Y), core.ColorYellow)
	}
}

// renderExplosions draws explosion animation frames.
func (g *Game) renderExplosions(dst *core.Screen) {
	for _, ex := range g.explosions {
		if !ex.alive {
			continue
		}
		rows := g.sprites.Explosion.Frame(ex.Frame())
		w, h := len(rows[0]), len(rows)
		g.drawSprite(dst, rows, ex.X-w/2, ex.Y-h/2, core.ColorOrange)
	}
}

// drawSprite draws the rows of a sprite frame at the given position.
// Space cells are transparent; off-screen cells are skipped.
func (g *Game) drawSprite(dst *core.Screen, rows []string, x, y int, color core.Color) {
	for dy, row := range rows {
		sy := y + dy
		if sy < 0 || sy >= dst.Height() {
			continue
		}
		dx := 0
		for _, r := range row {
			sx := x + dx
			dx++
			if r == ' ' || sx < 0 || sx >= dst.Width() {
				continue
			}
			dst.SetColored(sx, sy, r, color)
		}
	}
}

// renderStartScreen draws the title and instructions.
func (g *Game) renderStartScreen(dst *core.Screen) {
	cy := dst.Height() / 2
	dst.DrawTextCentered(cy-4, "P L A N E   W A R")
	dst.DrawTextCentered(cy-1, "Arrows / WASD - move")
	dst.DrawTextCentered(cy, "Space - fire")
	dst.DrawTextCentered(cy+1, "P - pause   Esc - quit")
	dst.DrawTextCentered(cy+4, "Press SPACE to start")
}

// renderOverlay draws pause and game-over message boxes.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.phase {
	case core.PhasePaused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")
	case core.PhaseGameOver:
		subtitle := fmt.Sprintf("Score: %d  |  Press SPACE to restart", g.score)
		g.drawCenteredBox(dst, "GAME OVER", subtitle)
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
