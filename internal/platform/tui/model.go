package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brickyard/internal/config"
	"github.com/vovakirdan/brickyard/internal/core"
	"github.com/vovakirdan/brickyard/internal/storage"
)

// Model is the Bubble Tea model for playing levels.
type Model struct {
	game       Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	sessionID  string
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	keyMapper  *KeyMapper
	help       help.Model
	gameState  core.GameState
	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, store *storage.Store, cfg core.RuntimeConfig, sessionID string, logger *log.Logger) Model {
	if logger == nil {
		logger = log.Default()
	}
	h := help.New()
	h.Width = cfg.ScreenW

	m := Model{
		game:       game,
		store:      store,
		logger:     logger,
		sessionID:  sessionID,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		help:       h,
	}
	m.screen = core.NewScreen(cfg.ScreenW, m.boardHeight())
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.gameConfig())
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keyMapper.MapMouseToFrame(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		m.relayout()
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case "?":
		m.help.ShowAll = !m.help.ShowAll
		m.relayout()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	if m.inputFrame.Has(core.ActionBack) {
		m.backToMenu = true
	}
	return m, nil
}

// relayout resizes the board area to leave room for the help footer.
func (m *Model) relayout() {
	m.screen.Resize(m.config.ScreenW, m.boardHeight())
	m.game.Resize(m.config.ScreenW, m.boardHeight())
}

// boardHeight is the screen height left after the help footer.
func (m Model) boardHeight() int {
	h := m.config.ScreenH - lipgloss.Height(m.help.View(m.keyMapper.Keys))
	return max(h, 1)
}

// gameConfig is the runtime config as seen by the game.
func (m Model) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = m.boardHeight()
	return cfg
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu || m.quitting {
		return m, nil
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if result.JustSolved {
		m.recordSolve(result.State)
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// recordSolve stores a solve. Storage failures are logged and otherwise ignored.
func (m Model) recordSolve(st core.GameState) {
	duration := time.Duration(st.Ticks) * time.Second / time.Duration(max(m.config.TickRate, 1))
	m.logger.Info("level solved", "level", m.game.ID(), "moves", st.Moves, "duration", duration.Round(time.Millisecond))
	if m.store == nil {
		return
	}
	_, err := m.store.SaveSolve(storage.Solve{
		SessionID: m.sessionID,
		LevelID:   m.game.ID(),
		Moves:     st.Moves,
		Duration:  duration,
	})
	if err != nil {
		m.logger.Warn("could not save solve", "level", m.game.ID(), "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, config.AppDir, "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot dir", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + theme.Controls.Render(m.help.View(m.keyMapper.Keys))
}

// State returns the last game state seen by the model.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the level list.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}
