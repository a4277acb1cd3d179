package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brickyard/internal/config"
	"github.com/vovakirdan/brickyard/internal/core"
	"github.com/vovakirdan/brickyard/internal/games/bricks"
	"github.com/vovakirdan/brickyard/internal/games/bricks/levels"
	"github.com/vovakirdan/brickyard/internal/storage"
)

// SessionOptions configures a play session.
type SessionOptions struct {
	Levels    []levels.Level
	Bricks    config.BricksConfig
	Store     *storage.Store // May be nil
	Logger    *log.Logger
	SessionID string
	Runtime   core.RuntimeConfig

	// StartLevel opens a level directly. Negative starts at the menu.
	StartLevel int
}

type sessionMode int

const (
	modeMenu sessionMode = iota
	modeGame
	modeScoreboard
)

// SessionModel manages the full session flow: menu -> game -> menu, with
// the best-solves board reachable from the menu.
// It is the top-level model for both local play and SSH sessions.
type SessionModel struct {
	opts       SessionOptions
	mode       sessionMode
	menu       MenuModel
	game       *Model
	scoreboard ScoreboardModel
	quitting   bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(opts SessionOptions) SessionModel {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = core.DefaultConfig().TickRate
	}
	if opts.SessionID == "" {
		opts.SessionID = storage.NewSessionID()
	}

	m := SessionModel{opts: opts}
	m.menu = m.newMenu()
	if opts.StartLevel >= 0 && opts.StartLevel < len(opts.Levels) {
		if err := m.startGame(opts.StartLevel); err != nil {
			opts.Logger.Error("cannot start level", "index", opts.StartLevel, "error", err)
		}
	}
	return m
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	if m.mode == modeGame && m.game != nil {
		return m.game.Init()
	}
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.opts.Runtime.ScreenW = wsm.Width
		m.opts.Runtime.ScreenH = wsm.Height
	}

	switch m.mode {
	case modeGame:
		return m.updateGame(msg)
	case modeScoreboard:
		return m.updateScoreboard(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Ticks left over from a finished game die here.
	if _, ok := msg.(TickMsg); ok {
		return m, nil
	}

	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.WantsScoreboard() {
		m.scoreboard = NewScoreboardModel(m.opts.Levels, m.opts.Store, m.opts.Runtime.ScreenW, m.opts.Runtime.ScreenH)
		m.mode = modeScoreboard
		m.menu = m.newMenu()
		return m, m.scoreboard.Init()
	}

	if selected := m.menu.Selected(); selected != nil {
		if err := m.startGame(selected.Index); err != nil {
			m.opts.Logger.Error("cannot start level", "level", selected.LevelID, "error", err)
			m.menu = m.newMenu()
			return m, nil
		}
		return m, m.game.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(Model); ok {
		m.game = &gameModel
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.BackToMenu() {
		m.game = nil
		m.mode = modeMenu
		m.menu = m.newMenu()
		return m, m.menu.Init()
	}

	return m, cmd
}

// updateScoreboard handles updates when the best-solves board is open.
func (m SessionModel) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(TickMsg); ok {
		return m, nil
	}

	newBoard, cmd := m.scoreboard.Update(msg)
	if board, ok := newBoard.(ScoreboardModel); ok {
		m.scoreboard = board
	}

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scoreboard.IsGoingBack() {
		m.mode = modeMenu
		m.menu = m.newMenu()
		return m, m.menu.Init()
	}
	return m, cmd
}

// startGame switches to playing level index i.
func (m *SessionModel) startGame(i int) error {
	game, err := bricks.New(m.opts.Levels, i, m.opts.Bricks, m.opts.Logger)
	if err != nil {
		return fmt.Errorf("create game: %w", err)
	}
	model := NewModel(game, m.opts.Store, m.opts.Runtime, m.opts.SessionID, m.opts.Logger)
	m.game = &model
	m.mode = modeGame
	return nil
}

// newMenu builds a fresh level list sized to the current window.
func (m SessionModel) newMenu() MenuModel {
	return NewMenuModel(m.opts.Levels, m.opts.Store, m.opts.Runtime.ScreenW, m.opts.Runtime.ScreenH)
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.mode {
	case modeGame:
		if m.game != nil {
			return m.game.View()
		}
	case modeScoreboard:
		return m.scoreboard.View()
	}
	return m.menu.View()
}

// InGame reports whether a level is being played.
func (m SessionModel) InGame() bool {
	return m.mode == modeGame && m.game != nil
}

// RunSession runs a local interactive session until the user quits.
func RunSession(opts SessionOptions) error {
	p := tea.NewProgram(NewSessionModel(opts), tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run session: %w", err)
	}
	return nil
}
