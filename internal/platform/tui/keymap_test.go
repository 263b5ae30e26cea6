package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Dhaizei/trae-solo-plane-war/internal/core"
)

func keyMsg(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{}
}

func TestKeyMapperActions(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key    string
		action core.Action
		quit   bool
	}{
		{"left", core.ActionLeft, false},
		{"a", core.ActionLeft, false},
		{"right", core.ActionRight, false},
		{"d", core.ActionRight, false},
		{"up", core.ActionUp, false},
		{"w", core.ActionUp, false},
		{"down", core.ActionDown, false},
		{"s", core.ActionDown, false},
		{" ", core.ActionFire, false},
		{"p", core.ActionPause, false},
		{"r", core.ActionRestart, false},
		{"q", core.ActionQuit, true},
		{"esc", core.ActionQuit, true},
		{"ctrl+c", core.ActionQuit, true},
		{"x", core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			action, quit := km.MapKey(keyMsg(tt.key))
			if action != tt.action {
				t.Errorf("MapKey(%q) action = %s, want %s", tt.key, action, tt.action)
			}
			if quit != tt.quit {
				t.Errorf("MapKey(%q) quit = %v, want %v", tt.key, quit, tt.quit)
			}
		})
	}
}

func TestKeyMapperToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if quit := km.MapKeyToFrame(keyMsg("left"), &frame); quit {
		t.Error("Movement key should not be a quit request")
	}
	if !frame.Has(core.ActionLeft) {
		t.Error("Frame should record the left action")
	}

	if quit := km.MapKeyToFrame(keyMsg("esc"), &frame); !quit {
		t.Error("Esc should be a quit request")
	}
}

func TestRenderScreenDimensions(t *testing.T) {
	s := core.NewScreen(10, 3)
	s.DrawText(0, 0, "hello")
	s.SetColored(0, 1, 'x', core.ColorRed)

	out := RenderScreen(s)

	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Errorf("Rendered %d lines, want 3", len(lines))
	}
	if !strings.Contains(out, "hello") {
		t.Error("Rendered output should contain drawn text")
	}
}
