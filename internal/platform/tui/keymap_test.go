package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKeyDefaults(t *testing.T) {
	km := NewKeyMap(config.Default().Keys)

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		known  bool
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, true},
		{"w", runeKey("w"), core.ActionUp, true},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown, true},
		{"s", runeKey("s"), core.ActionDown, true},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, true},
		{"a", runeKey("a"), core.ActionLeft, true},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, true},
		{"d", runeKey("d"), core.ActionRight, true},
		{"pause", runeKey("p"), core.ActionPause, true},
		{"restart", runeKey("r"), core.ActionRestart, true},
		{"help", runeKey("?"), core.ActionNone, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound letter", runeKey("x"), core.ActionQuit, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionQuit, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, known := km.MapKey(tt.msg)
			if action != tt.action || known != tt.known {
				t.Errorf("MapKey(%q) = (%v, %v), want (%v, %v)", tt.msg.String(), action, known, tt.action, tt.known)
			}
		})
	}
}

func TestMapKeyCustom(t *testing.T) {
	km := NewKeyMap(config.KeyConfig{
		Up:    []string{"k"},
		Down:  []string{"j"},
		Left:  []string{"h"},
		Right: []string{"l"},
		Pause: []string{" "},
	})

	if action, _ := km.MapKey(runeKey("k")); action != core.ActionUp {
		t.Errorf("MapKey(k) = %v, want Up", action)
	}
	if action, _ := km.MapKey(runeKey("l")); action != core.ActionRight {
		t.Errorf("MapKey(l) = %v, want Right", action)
	}
	// Default bindings no longer apply.
	if action, known := km.MapKey(runeKey("w")); known || action != core.ActionQuit {
		t.Errorf("MapKey(w) = (%v, %v), want (Quit, false)", action, known)
	}
	// Unbound restart and help are disabled.
	if _, known := km.MapKey(runeKey("r")); known {
		t.Error("MapKey(r) should be unknown without a restart binding")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey("k"), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{runeKey("j"), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{runeKey("q"), MenuActionQuit},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionQuit},
		{runeKey("x"), MenuActionNone},
	}

	for _, tt := range tests {
		if got := MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}

func TestHelpBindings(t *testing.T) {
	km := NewKeyMap(config.Default().Keys)
	if got := len(km.FullHelp()); got != 2 {
		t.Errorf("FullHelp() columns = %d, want 2", got)
	}
	if got := km.Up.Help().Key; got != "up/w" {
		t.Errorf("Up help key = %q, want %q", got, "up/w")
	}
}
