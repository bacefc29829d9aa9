package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/logging"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

// resizer is implemented by games that can adapt to a new screen size
// without restarting.
type resizer interface {
	Resize(w, h int)
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	logger     *log.Logger
	inputFrame core.InputFrame
	moves      []core.Action // Direction keys not yet stepped, oldest first
	gameState  core.GameState
	width      int
	height     int
	quitting   bool
	overLogged bool // Whether the end of the current game has been logged
}

// NewModel creates a new Bubble Tea model for the given game.
// A nil logger discards.
func NewModel(game registry.Game, keys KeyMap, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = logging.Discard()
	}
	m := Model{
		game:       game,
		config:     cfg,
		keys:       keys,
		help:       help.New(),
		logger:     logger,
		inputFrame: core.NewInputFrame(),
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
	}
	m.config.ScreenH = m.gameHeight()
	m.screen = core.NewScreen(m.config.ScreenW, m.config.ScreenH)
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	// gameState is set on the first tick (value receiver)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg.Width, msg.Height)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m.handleResize(m.width, m.height)
	}

	action, known := m.keys.MapKey(msg)
	switch {
	case !known || action == core.ActionQuit:
		m.logger.Debug("quit", "key", msg.String())
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionRestart:
		if m.gameState.GameOver {
			m.inputFrame.Set(action)
		}
	case isDirection(action):
		m.moves = append(m.moves, action)
	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}

	return m, nil
}

func isDirection(a core.Action) bool {
	switch a {
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		return true
	}
	return false
}

// handleResize processes window resize events.
func (m Model) handleResize(width, height int) (tea.Model, tea.Cmd) {
	m.width = width
	m.height = height
	m.help.Width = width
	m.config.ScreenW = width
	m.config.ScreenH = m.gameHeight()
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)

	if r, ok := m.game.(resizer); ok {
		r.Resize(m.config.ScreenW, m.config.ScreenH)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// gameHeight is the number of rows left for the game above the help footer.
func (m Model) gameHeight() int {
	return max(m.height-lipgloss.Height(m.help.View(m.keys))-1, 0)
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		// Next seed keeps a seeded session reproducible across restarts.
		m.config.Seed++
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.overLogged = false
		m.inputFrame.Clear()
		m.moves = nil
		m.logger.Info("restart", "game", m.game.ID(), "seed", m.config.Seed)
		return m, tickCmd(m.config.TickRate)
	}

	// One queued direction per tick, in the order the keys arrived.
	if len(m.moves) > 0 {
		m.inputFrame.Set(m.moves[0])
		m.moves = m.moves[1:]
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver && !m.overLogged {
		m.logger.Info("game finished",
			"game", m.game.ID(),
			"won", m.gameState.Won,
			"moves", m.gameState.Moves,
			"max_tile", m.gameState.MaxTile,
		)
		m.overLogged = true
	}

	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	footer := lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left,
		RenderScreen(m.screen, m.config.ScreenW, m.config.ScreenH),
		"",
		footer,
	)
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, keys KeyMap, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, keys, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
