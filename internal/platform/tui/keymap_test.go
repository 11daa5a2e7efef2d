package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/core"
)

func keyMsg(s string) tea.KeyMsg {
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

func TestMapKeyDirections(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key    string
		action core.Action
	}{
		{"left", core.ActionLeft},
		{"h", core.ActionLeft},
		{"a", core.ActionLeft},
		{"down", core.ActionDown},
		{"j", core.ActionDown},
		{"s", core.ActionDown},
		{"right", core.ActionRight},
		{"l", core.ActionRight},
		{"d", core.ActionRight},
		{"up", core.ActionUp},
		{"k", core.ActionUp},
		{"w", core.ActionUp},
		{"p", core.ActionPause},
		{"r", core.ActionRestart},
	}

	for _, tc := range tests {
		action, isQuit := km.MapKey(keyMsg(tc.key))
		if action != tc.action {
			t.Errorf("MapKey(%q) = %s, want %s", tc.key, action, tc.action)
		}
		if isQuit {
			t.Errorf("MapKey(%q) should not be a quit request", tc.key)
		}
	}
}

func TestMapKeyQuit(t *testing.T) {
	km := NewKeyMapper()

	for _, key := range []string{"q", "ctrl+c"} {
		action, isQuit := km.MapKey(keyMsg(key))
		if !isQuit {
			t.Errorf("MapKey(%q) should be a quit request", key)
		}
		if action != core.ActionQuit {
			t.Errorf("MapKey(%q) = %s, want Quit", key, action)
		}
	}
}

func TestMapKeyUnknownIgnored(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(keyMsg("x"), &frame) {
		t.Error("unknown key should not be a quit request")
	}
	if len(frame.Actions) != 0 {
		t.Errorf("unknown key should leave the frame empty, got %v", frame.Actions)
	}
}
