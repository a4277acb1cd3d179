package core

// Color represents a foreground color for a screen cell.
// Values map to ANSI 256-color codes in the platform layer.
type Color uint8

// Predefined colors.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorGray
	ColorDarkGray
)

// Cell is one character of the screen buffer with its presentation.
type Cell struct {
	Rune  rune
	Color Color
	Faint bool // Drawn at reduced intensity (ghosted)
}

// blank is the cleared cell.
var blank = Cell{Rune: ' '}
