package engine

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-2048/internal/core"
)

const (
	cellWidth  = 7 // grid column width, fits 4-digit tiles
	cellHeight = 2 // grid row height

	minScreenW = Size*cellWidth + 5
	minScreenH = Size*cellHeight + 9
)

// tileColor picks a palette color per magnitude so higher tiles stand
// out; beyond the palette the brightest color repeats.
func tileColor(m uint8) core.Color {
	colors := []core.Color{
		core.ColorGray,          // 2
		core.ColorWhite,         // 4
		core.ColorYellow,        // 8
		core.ColorOrange,        // 16
		core.ColorBrightYellow,  // 32
		core.ColorRed,           // 64
		core.ColorBrightRed,     // 128
		core.ColorMagenta,       // 256
		core.ColorBrightMagenta, // 512
		core.ColorCyan,          // 1024
		core.ColorBrightCyan,    // 2048
	}
	if m == 0 {
		return core.ColorDefault
	}
	idx := int(m) - 1
	if idx >= len(colors) {
		idx = len(colors) - 1
	}
	return colors[idx]
}

// Render draws the HUD, the boxed grid, and any terminal-state overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardW := Size*cellWidth + 1
	boardH := Size*cellHeight + 1
	hudHeight := 3

	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight + 1

	g.renderHUD(dst, boardX, boardW)
	g.renderBoard(dst, boardX, boardY)
	g.renderOverlays(dst, boardX, boardY, boardW, boardH)

	hints := g.Controls()
	hintY := boardY + boardH + 1
	if hintY < g.screenH {
		dst.DrawTextColored((g.screenW-len(hints))/2, hintY, hints, core.ColorGray)
	}
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	title := "2048"
	dst.DrawTextColored(boardX+(boardW-len(title))/2, 0, title, core.ColorBrightYellow)

	dst.DrawText(boardX, 1, fmt.Sprintf("Score: %d", g.score))

	maxStr := fmt.Sprintf("Max: %d", TileValue(g.board.MaxMagnitude()))
	maxX := boardX + boardW - len(maxStr)
	if maxX < boardX {
		maxX = boardX
	}
	dst.DrawText(maxX, 1, maxStr)
}

// renderBoard draws the grid lines and the tiles, magnitudes shown as
// their displayed powers of two.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	for y := 0; y <= Size; y++ {
		for x := 0; x <= Size; x++ {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == Size:
				corner = '┐'
			case y == Size && x == 0:
				corner = '└'
			case y == Size && x == Size:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == Size:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == Size:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.Set(px, py, corner)

			if x < Size {
				for i := 1; i < cellWidth; i++ {
					dst.Set(px+i, py, '─')
				}
			}
			if y < Size {
				for i := 1; i < cellHeight; i++ {
					dst.Set(px, py+i, '│')
				}
			}
		}
	}

	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			m := g.board[y][x]
			if m == 0 {
				continue
			}

			valStr := strconv.Itoa(TileValue(m))
			cellX := boardX + x*cellWidth + 1
			cellY := boardY + y*cellHeight + 1

			padLeft := (cellWidth - 1 - len(valStr)) / 2
			if padLeft < 0 {
				padLeft = 0
			}
			dst.DrawTextColored(cellX+padLeft, cellY, valStr, tileColor(m))
		}
	}
}

func (g *Game) renderOverlays(dst *core.Screen, boardX, boardY, boardW, boardH int) {
	centerX := boardX + boardW/2
	centerY := boardY + boardH/2

	switch {
	case g.paused:
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
	case g.status == StatusWon:
		scoreStr := fmt.Sprintf("Score: %d", g.score)
		g.drawOverlay(dst, centerX, centerY, "YOU WIN!", scoreStr, "Press R to restart")
	case g.status == StatusLost:
		maxStr := fmt.Sprintf("Max tile: %d", TileValue(g.board.MaxMagnitude()))
		g.drawOverlay(dst, centerX, centerY, "GAME OVER", maxStr, "Press R to restart")
	}
}

// drawOverlay draws a centered boxed message over the board.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
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

	dst.FillRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, boxY+1+i, line)
	}
}

// Controls returns the control hints shown by the platform.
func (g *Game) Controls() string {
	return "Arrows/WASD/HJKL: Move | P: Pause | R: Restart | Q: Quit"
}
