package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/brickyard/internal/games/bricks/levels"
	"github.com/vovakirdan/brickyard/internal/storage"
)

// MenuItem represents a selectable level in the menu.
type MenuItem struct {
	Index      int
	LevelID    string
	Title      string
	Difficulty string
	Solved     bool
	BestMoves  int
}

// MenuModel is the Bubble Tea model for the level picker.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	scrollOffset   int
	width          int
	height         int
	keyMapper      *KeyMapper
	quitting       bool
	selected       *MenuItem // Set when user selects a level
	openScoreboard bool      // True if user pressed Tab for scoreboard
}

// NewMenuModel creates a new level picker. Solve markers come from store,
// which may be nil.
func NewMenuModel(all []levels.Level, store *storage.Store, width, height int) MenuModel {
	solved := map[string]bool{}
	if store != nil {
		if s, err := store.SolvedLevels(); err == nil {
			solved = s
		}
	}

	items := make([]MenuItem, 0, len(all))
	for i, lvl := range all {
		title := lvl.Name
		if title == "" {
			title = lvl.ID
		}
		item := MenuItem{
			Index:      i,
			LevelID:    lvl.ID,
			Title:      title,
			Difficulty: lvl.Metadata["difficulty"],
			Solved:     solved[lvl.ID],
		}
		if item.Solved {
			if best, ok, err := store.BestMoves(lvl.ID); err == nil && ok {
				item.BestMoves = best
			}
		}
		items = append(items, item)
	}

	return MenuModel{
		items:     items,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateScroll()
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
			m.updateScroll()
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
			m.updateScroll()
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
	}

	return m, nil
}

// visibleItems is how many rows of levels fit on screen.
func (m MenuModel) visibleItems() int {
	return max(m.height-10, 3) // Account for header and footer
}

// updateScroll adjusts scroll offset to keep cursor visible.
func (m *MenuModel) updateScroll() {
	visible := m.visibleItems()
	if m.cursor < m.scrollOffset {
		m.scrollOffset = m.cursor
	} else if m.cursor >= m.scrollOffset+visible {
		m.scrollOffset = m.cursor - visible + 1
	}
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(theme.Title.Render("B R I C K Y A R D"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(theme.Subtitle.Render("Select a level"), m.width))
	b.WriteString("\n\n")

	if len(m.items) == 0 {
		b.WriteString(centerText(theme.Description.Render("No levels found"), m.width))
		b.WriteString("\n")
	}

	end := min(m.scrollOffset+m.visibleItems(), len(m.items))
	if m.scrollOffset > 0 {
		b.WriteString(centerText(theme.Description.Render("... more above ..."), m.width))
		b.WriteString("\n")
	}
	for i := m.scrollOffset; i < end; i++ {
		b.WriteString(centerText(m.renderItem(i), m.width))
		b.WriteString("\n")
	}
	if end < len(m.items) {
		b.WriteString(centerText(theme.Description.Render("... more below ..."), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Play  |  Tab: Best solves  |  Q: Quit"
	b.WriteString(centerText(theme.Controls.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// renderItem renders one level line.
func (m MenuModel) renderItem(i int) string {
	item := m.items[i]
	cursor := "  "
	style := theme.ItemNormal
	if i == m.cursor {
		cursor = "> "
		style = theme.ItemActive
	}

	line := fmt.Sprintf("%s%2d. %-16s", cursor, i+1, item.Title)
	if item.Difficulty != "" {
		line += " " + theme.Description.Render("["+item.Difficulty+"]")
	}
	if item.Solved {
		line += " " + theme.ItemSolved.Render(fmt.Sprintf("solved, best %d", item.BestMoves))
	}
	return style.Render(line)
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// centerText centers text within given width.
// Width is measured without ANSI sequences.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
