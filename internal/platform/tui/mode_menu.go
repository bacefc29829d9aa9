package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

var modeDescriptions = map[string]string{
	"classic": "reach the target tile",
	"endless": "play until the board locks",
}

// ModeModel lets users choose which registered mode to play.
type ModeModel struct {
	modes    []registry.GameInfo
	cursor   int
	width    int
	height   int
	selected string
	quitting bool
}

// NewModeModel creates a new mode selection model listing every
// registered mode, with the cursor on current if it is one of them.
func NewModeModel(width, height int, current string) ModeModel {
	m := ModeModel{
		modes:  registry.List(),
		width:  width,
		height: height,
	}
	for i, mode := range m.modes {
		if mode.ID == current {
			m.cursor = i
		}
	}
	return m
}

// Init initializes the model.
func (m ModeModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m ModeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m ModeModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		m.cursor = core.Clamp(m.cursor-1, 0, len(m.modes)-1)
	case MenuActionDown:
		m.cursor = core.Clamp(m.cursor+1, 0, len(m.modes)-1)
	case MenuActionSelect:
		if len(m.modes) > 0 {
			m.selected = m.modes[m.cursor].ID
			return m, tea.Quit
		}
	}
	return m, nil
}

// View renders the mode selection.
func (m ModeModel) View() string {
	if m.quitting {
		return ""
	}

	lines := []string{"2 0 4 8", "", "Select game mode:", ""}
	for i, mode := range m.modes {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := cursor + mode.Title
		if desc, ok := modeDescriptions[mode.ID]; ok {
			line = fmt.Sprintf("%s%-16s %s", cursor, mode.Title, desc)
		}
		lines = append(lines, line)
	}
	lines = append(lines, "", "Enter: Select  |  Q/Esc: Quit")

	// Pad to a common width so the block centers as one piece.
	block := lipgloss.NewStyle().Align(lipgloss.Left).Render(strings.Join(lines, "\n"))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, block)
}

// Selected returns the chosen mode ID, or "" while still choosing.
func (m ModeModel) Selected() string {
	return m.selected
}

// IsQuitting returns true if user wants to quit.
func (m ModeModel) IsQuitting() bool {
	return m.quitting
}

// RunModeSelector runs the mode selection and returns the chosen mode ID.
// An empty ID means the user quit.
func RunModeSelector(width, height int, current string) (string, error) {
	p := tea.NewProgram(
		NewModeModel(width, height, current),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	m, ok := finalModel.(ModeModel)
	if !ok || m.IsQuitting() {
		return "", nil
	}
	return m.Selected(), nil
}
