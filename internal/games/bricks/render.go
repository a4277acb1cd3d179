package bricks

import (
	"fmt"

	platformcore "github.com/vovakirdan/brickyard/internal/core"
	"github.com/vovakirdan/brickyard/internal/games/bricks/core"
)

// Glyphs
const (
	glyphBrick  = '█'
	glyphAnchor = '▓'
	glyphHover  = '▒'
	glyphGoal   = '░'
	glyphEmpty  = '·'
	glyphActor  = '@'
	glyphCursor = '◆'

	faintBelow = 0.5 // Held sprites under this alpha render faint
)

// Render draws the game to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	switch {
	case g.err != nil:
		g.renderOverlay(dst, "Level is broken", g.err.Error())
		return
	case g.tooSmall:
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	case g.picker == nil:
		return
	}

	g.renderFrame(dst)
	g.renderBoard(dst)
	g.renderHeld(dst)
	g.renderCursor(dst)

	if g.solved {
		next := "N: next level  R: replay  B: levels"
		if g.index+1 >= len(g.all) {
			next = "R: replay  B: levels"
		}
		g.renderOverlay(dst, fmt.Sprintf("Solved in %d moves!", g.picker.Moves()), next)
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *platformcore.Screen) {
	hud := fmt.Sprintf(" Brickyard | %s (%d/%d) | Moves: %d",
		g.Title(), g.index+1, len(g.all), g.State().Moves)
	if g.picker != nil && g.picker.Holding() {
		hud += fmt.Sprintf(" | Hand: %d", g.picker.Hand().Len())
	}
	dst.DrawTextColored(0, 0, hud, platformcore.ColorCyan)
	dst.DrawTextColored(0, 1, " "+g.status, platformcore.ColorWhite)

	for x := 0; x < dst.Width(); x++ {
		dst.SetColored(x, 2, '─', platformcore.ColorGray)
	}
}

// renderFrame draws a box around the playfield.
func (g *Game) renderFrame(dst *platformcore.Screen) {
	cw := g.mapper.CellW
	r := platformcore.NewRect(g.mapper.OriginX-1, g.mapper.OriginY-1, g.level.Width*cw+2, g.level.Height+2)
	dst.DrawBox(r, platformcore.ColorDarkGray)
}

// renderBoard draws every grid cell.
func (g *Game) renderBoard(dst *platformcore.Screen) {
	board := g.picker.Board()
	graph := g.picker.Graph()
	goal := make(map[core.Coord]bool, len(g.level.Goal))
	for _, c := range g.level.Goal {
		goal[c] = true
	}

	hover := g.ctrl.Hover()
	highlight := hover.OnBrick && hover.Pickable && g.ctrl.State() == core.StateIdle

	for y := 0; y < g.level.Height; y++ {
		for x := 0; x < g.level.Width; x++ {
			c := core.C(x, y)
			sx, sy := g.mapper.CellToScreen(c)

			if id, ok := board.Grid.At(c); ok {
				br := board.Bricks[id]
				cell := platformcore.Cell{Rune: glyphBrick, Color: brickColor(br.Color)}
				switch {
				case br.IsAnchor():
					cell.Rune = glyphAnchor
				case highlight && id == hover.Brick:
					cell.Rune = glyphHover
				}
				g.fillCell(dst, sx, sy, cell)
				if g.cfg.Render.ShowPaths && !br.IsAnchor() && c == br.Pos {
					dst.SetCell(sx, sy, platformcore.Cell{Rune: core.PathChar(graph.Path(id)), Color: platformcore.ColorWhite})
				}
				continue
			}

			if _, ok := board.Grid.ActorAt(c); ok {
				g.fillCell(dst, sx, sy, platformcore.Cell{Rune: ' '})
				dst.SetColored(sx, sy, glyphActor, platformcore.ColorWhite)
				continue
			}

			if goal[c] {
				g.fillCell(dst, sx, sy, platformcore.Cell{Rune: glyphGoal, Color: platformcore.ColorYellow})
				continue
			}

			g.fillCell(dst, sx, sy, platformcore.Cell{Rune: ' '})
			dst.SetColored(sx, sy, glyphEmpty, platformcore.ColorDarkGray)
		}
	}
}

// renderHeld draws the lifted bricks following the pointer.
func (g *Game) renderHeld(dst *platformcore.Screen) {
	cw := g.mapper.CellW
	for _, s := range g.ctrl.HeldSprites() {
		cell := platformcore.Cell{
			Rune:  glyphBrick,
			Color: brickColor(s.Brick.Color),
			Faint: s.Alpha < faintBelow,
		}
		for i := 0; i < s.Brick.Width*cw; i++ {
			dst.SetCell(s.X+i, s.Y, cell)
		}
	}
}

// renderCursor marks the keyboard cursor cell.
func (g *Game) renderCursor(dst *platformcore.Screen) {
	if !g.keyboard || g.ctrl.State() == core.StateHolding {
		return
	}
	sx, sy := g.mapper.CellToScreen(g.cursor)
	under := dst.GetCell(sx, sy)
	dst.SetCell(sx, sy, platformcore.Cell{Rune: glyphCursor, Color: platformcore.ColorWhite, Faint: under.Faint})
}

// fillCell paints one grid cell, which may span several columns.
func (g *Game) fillCell(dst *platformcore.Screen, sx, sy int, c platformcore.Cell) {
	for i := 0; i < g.mapper.CellW; i++ {
		dst.SetCell(sx+i, sy, c)
	}
}

// renderOverlay draws a centered message box.
func (g *Game) renderOverlay(dst *platformcore.Screen, title, subtitle string) {
	w := platformcore.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	box := dst.Bounds().Centered(w, 4)
	dst.FillRect(box, platformcore.Cell{Rune: ' '})
	dst.DrawBox(box, platformcore.ColorYellow)
	inner := box.Inset(1)
	dst.DrawTextCentered(inner.Y, title, platformcore.ColorYellow)
	dst.DrawTextCentered(inner.Y+1, subtitle, platformcore.ColorGray)
}

// brickColor maps a brick paint to a terminal color.
func brickColor(c core.Color) platformcore.Color {
	switch c {
	case core.ColorGrey:
		return platformcore.ColorGray
	case core.ColorRed:
		return platformcore.ColorRed
	case core.ColorGreen:
		return platformcore.ColorGreen
	case core.ColorBlue:
		return platformcore.ColorBlue
	case core.ColorYellow:
		return platformcore.ColorYellow
	case core.ColorPurple:
		return platformcore.ColorMagenta
	default:
		return platformcore.ColorDefault
	}
}
