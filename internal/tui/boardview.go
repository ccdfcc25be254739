package tui

import (
	"fmt"
	"math"
	"strconv"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/game"
)

const (
	cellWidth  = 7 // Width of each cell (including left border)
	cellHeight = 2 // Height of each cell (including top border)
	hudHeight  = 3
)

const (
	boardW = game.BoardSize*cellWidth + 1  // +1 for right border
	boardH = game.BoardSize*cellHeight + 1 // +1 for bottom border
)

// valueColor picks a display color for a tile value. Values beyond
// 2048 share a single fallback color.
func valueColor(v int) core.Color {
	switch v {
	case 2:
		return core.ColorGray
	case 4:
		return core.ColorWhite
	case 8:
		return core.ColorOrange
	case 16:
		return core.ColorBrightRed
	case 32:
		return core.ColorRed
	case 64:
		return core.ColorBrightYellow
	case 128:
		return core.ColorYellow
	case 256:
		return core.ColorBrightGreen
	case 512:
		return core.ColorGreen
	case 1024:
		return core.ColorBrightCyan
	case 2048:
		return core.ColorBrightMagenta
	default:
		return core.ColorBrightWhite
	}
}

// renderGame draws the whole game view: HUD, board, tiles, overlays.
func (m *GameModel) renderGame(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < boardW+2 || dst.Height() < boardH+hudHeight+2 {
		renderTooSmall(dst)
		return
	}

	boardX := (dst.Width() - boardW) / 2
	boardY := hudHeight + 1

	m.renderHUD(dst, boardX)
	renderGrid(dst, boardX, boardY)
	m.renderTiles(dst, boardX, boardY)
	m.renderOverlays(dst, boardX, boardY)
}

// renderTooSmall shows a "window too small" message.
func renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title, score and best score.
func (m *GameModel) renderHUD(dst *core.Screen, boardX int) {
	title := "2048"
	dst.DrawText(boardX+(boardW-len(title))/2, 0, title)

	dst.DrawText(boardX, 1, fmt.Sprintf("Score: %d", m.engine.Score()))

	var info string
	if m.best > 0 {
		info = fmt.Sprintf("Best: %d  Max: %d", m.best, m.engine.MaxTile())
	} else {
		info = fmt.Sprintf("Max: %d", m.engine.MaxTile())
	}
	infoX := boardX + boardW - len(info)
	if infoX < boardX {
		infoX = boardX
	}
	dst.DrawText(infoX, 1, info)
}

// renderGrid draws the 4x4 grid borders.
func renderGrid(dst *core.Screen, boardX, boardY int) {
	for y := range game.BoardSize + 1 {
		for x := range game.BoardSize + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == game.BoardSize:
				corner = '┐'
			case y == game.BoardSize && x == 0:
				corner = '└'
			case y == game.BoardSize && x == game.BoardSize:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == game.BoardSize:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == game.BoardSize:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.SetColored(px, py, corner, core.ColorGray)

			if x < game.BoardSize {
				for i := 1; i < cellWidth; i++ {
					dst.SetColored(px+i, py, '─', core.ColorGray)
				}
			}
			if y < game.BoardSize {
				for i := 1; i < cellHeight; i++ {
					dst.SetColored(px, py+i, '│', core.ColorGray)
				}
			}
		}
	}
}

// renderTiles draws tile values. Tiles currently animating are drawn at
// their interpolated positions; everything else sits in its grid cell.
func (m *GameModel) renderTiles(dst *core.Screen, boardX, boardY int) {
	animated := map[game.TileID]bool{}
	if m.anim.phase != PhaseNone {
		animated = m.anim.animatedIDs()
	}

	// Static tiles straight from the grid.
	for row := range game.BoardSize {
		for col := range game.BoardSize {
			id := m.engine.IDAt(row, col)
			if id == 0 || animated[id] {
				continue
			}
			t, ok := m.engine.Tile(id)
			if !ok {
				continue
			}
			drawTileValue(dst, boardX, boardY, float64(row), float64(col), t.Value, valueColor(t.Value))
		}
	}

	// Animated tiles on top.
	for i := range m.anim.tiles {
		a := &m.anim.tiles[i]
		if a.IsNew {
			drawPopTile(dst, boardX, boardY, a)
			continue
		}
		row, col := a.interpolate()
		drawTileValue(dst, boardX, boardY, row, col, a.Value, valueColor(a.Value))
	}
}

// drawTileValue centers a value inside the cell at the (possibly
// fractional) board position.
func drawTileValue(dst *core.Screen, boardX, boardY int, row, col float64, value int, color core.Color) {
	px := boardX + int(math.Round(col*cellWidth)) + 1
	py := boardY + int(math.Round(row*cellHeight)) + 1

	valStr := strconv.Itoa(value)
	padLeft := (cellWidth - 1 - len(valStr)) / 2
	if padLeft < 0 {
		padLeft = 0
	}
	dst.DrawTextColored(px+padLeft, py, valStr, color)
}

// drawPopTile draws a spawning tile: a dot that becomes the value.
func drawPopTile(dst *core.Screen, boardX, boardY int, a *TileAnimation) {
	if a.Progress < 0.4 {
		px := boardX + a.ToCol*cellWidth + 1 + (cellWidth-2)/2
		py := boardY + a.ToRow*cellHeight + 1
		dst.SetColored(px, py, '•', valueColor(a.Value))
		return
	}
	drawTileValue(dst, boardX, boardY, float64(a.ToRow), float64(a.ToCol), a.Value, valueColor(a.Value))
}

// renderOverlays draws pause and game-over overlays.
func (m *GameModel) renderOverlays(dst *core.Screen, boardX, boardY int) {
	centerX := boardX + boardW/2
	centerY := boardY + boardH/2

	if m.paused {
		drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
		return
	}

	if m.gameOver {
		scoreStr := fmt.Sprintf("Score: %d  Max tile: %d", m.engine.Score(), m.engine.MaxTile())
		drawOverlay(dst, centerX, centerY, "GAME OVER", scoreStr, "Press R to restart")
	}
}

// drawOverlay draws a centered boxed text overlay.
func drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	boxX := centerX - boxW/2
	boxY := centerY - boxH/2

	dst.FillRect(core.Rect{X: boxX, Y: boxY, W: boxW, H: boxH}, ' ')
	dst.DrawBox(core.Rect{X: boxX, Y: boxY, W: boxW, H: boxH})

	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, boxY+1+i, line)
	}
}
