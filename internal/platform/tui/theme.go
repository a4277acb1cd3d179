package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme contains the lipgloss styles used by the menus and scoreboard.
type Theme struct {
	// Titles
	Title    lipgloss.Style
	Subtitle lipgloss.Style

	// Level picker styles
	ItemNormal  lipgloss.Style
	ItemActive  lipgloss.Style
	ItemSolved  lipgloss.Style
	Description lipgloss.Style

	// Footer and frames
	Controls lipgloss.Style
	Border   lipgloss.Color
	Accent   lipgloss.Color
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		Subtitle: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),

		ItemNormal:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		ItemActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		ItemSolved:  lipgloss.NewStyle().Foreground(lipgloss.Color("46")), // Lime green
		Description: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),

		Controls: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Border:   lipgloss.Color("240"),
		Accent:   lipgloss.Color("57"),
	}
}

// MonochromeTheme returns a grayscale theme.
func MonochromeTheme() Theme {
	theme := DefaultTheme()
	theme.Title = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	theme.ItemActive = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true).Underline(true)
	theme.ItemSolved = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	theme.Accent = lipgloss.Color("238")
	return theme
}

// Global theme variable (can be changed at startup)
var theme = DefaultTheme()

// SetTheme sets the global theme.
func SetTheme(t Theme) {
	theme = t
}
