package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Dhaizei/trae-solo-plane-war/internal/audio"
	"github.com/Dhaizei/trae-solo-plane-war/internal/core"
	"github.com/Dhaizei/trae-solo-plane-war/internal/game/planewar"
	"github.com/Dhaizei/trae-solo-plane-war/internal/storage"
)

// Model is the Bubble Tea model driving the game loop.
type Model struct {
	game       *planewar.Game
	screen     *core.Screen
	store      *storage.Store
	sound      *audio.Manager
	keymap     *KeyMapper
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	runStart   time.Time
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
// store and sound may be nil; persistence and audio are then skipped.
func NewModel(game *planewar.Game, store *storage.Store, sound *audio.Manager, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		sound:      sound,
		keymap:     NewKeyMapper(),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keymap.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleResize processes window resize events. The simulation restarts
// with the new dimensions unless a finished run is on screen.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if !m.gameState.GameOver() {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick runs one simulation tick and reacts to its events.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	prevPhase := m.gameState.Phase

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.Phase == core.PhasePlaying && prevPhase != core.PhasePlaying && prevPhase != core.PhasePaused {
		m.runStart = time.Now()
	}

	for _, ev := range result.Events {
		if m.sound != nil {
			m.sound.Play(ev.String())
		}
		if ev == core.EventGameOver {
			m.saveResult()
		}
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveResult persists the finished run. Best effort; the game continues
// regardless of storage errors.
func (m *Model) saveResult() {
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}
	duration := int(time.Since(m.runStart).Seconds())
	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveScore(m.gameState.Score, m.gameState.Level, duration)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".planewar", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(game *planewar.Game, store *storage.Store, sound *audio.Manager, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, sound, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
