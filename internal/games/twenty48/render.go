package twenty48

import (
	"fmt"
	"strconv"

	"github.com/vspivak/twenty48/internal/core"
)

const (
	cellWidth  = 7 // Width of each cell including the left border
	cellHeight = 2 // Height of each cell including the top border
	hudHeight  = 3
)

// tileColor picks a color for a tile value. Values beyond 2048 reuse
// the strongest color.
func tileColor(value int) core.Color {
	switch value {
	case 2:
		return core.ColorWhite
	case 4:
		return core.ColorBrightWhite
	case 8:
		return core.ColorYellow
	case 16:
		return core.ColorBrightYellow
	case 32:
		return core.ColorOrange
	case 64:
		return core.ColorBrightRed
	case 128:
		return core.ColorGreen
	case 256:
		return core.ColorBrightGreen
	case 512:
		return core.ColorCyan
	case 1024:
		return core.ColorBrightCyan
	default:
		return core.ColorBrightMagenta
	}
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	size := g.model.Size()
	boardW := size*cellWidth + 1
	boardH := size*cellHeight + 1

	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight + 1

	g.renderHUD(dst, boardX, boardW)
	g.renderBoard(dst, boardX, boardY)
	g.renderOverlays(dst, boardX, boardY, boardW, boardH)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title, score, and board info.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	title := g.Title()
	dst.DrawText(boardX+(boardW-len(title))/2, 0, title)

	dst.DrawText(boardX, 1, fmt.Sprintf("Score: %d", g.model.Score()))

	var info string
	switch {
	case g.cfg.HUD.ShowBest && g.cfg.HUD.ShowMaxTile:
		info = fmt.Sprintf("Best: %d  Max: %d", g.model.MaxScore(), g.maxTile)
	case g.cfg.HUD.ShowBest:
		info = fmt.Sprintf("Best: %d", g.model.MaxScore())
	case g.cfg.HUD.ShowMaxTile:
		info = fmt.Sprintf("Max: %d", g.maxTile)
	}
	if info != "" {
		infoX := boardX + boardW - len(info)
		if infoX < boardX {
			infoX = boardX
		}
		dst.DrawText(infoX, 1, info)
	}

	if g.mode == ModeClassic {
		target := fmt.Sprintf("Target: %d", g.cfg.Rules.Target)
		dst.DrawText(boardX+(boardW-len(target))/2, 2, target)
	} else if g.won {
		badge := fmt.Sprintf("%d reached - keep going!", g.cfg.Rules.Target)
		dst.DrawText(boardX+(boardW-len(badge))/2, 2, badge)
	}
}

// renderBoard draws the grid with its tiles.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	size := g.model.Size()

	// Grid lines and intersections
	for y := range size + 1 {
		for x := range size + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == size:
				corner = '┐'
			case y == size && x == 0:
				corner = '└'
			case y == size && x == size:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == size:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == size:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.Set(px, py, corner)

			if x < size {
				for i := 1; i < cellWidth; i++ {
					dst.Set(px+i, py, '─')
				}
			}
			if y < size {
				for i := 1; i < cellHeight; i++ {
					dst.Set(px, py+i, '│')
				}
			}
		}
	}

	// Tiles. The model's row 0 is the bottom of the board, screen rows
	// grow downward, so the board row is flipped for display.
	for row := range size {
		for col := range size {
			t := g.model.Tile(col, row)
			if t == nil {
				continue
			}

			cellX := boardX + col*cellWidth + 1
			cellY := boardY + (size-1-row)*cellHeight + 1

			valStr := strconv.Itoa(t.Value())
			padLeft := (cellWidth - 1 - len(valStr)) / 2
			if padLeft < 0 {
				padLeft = 0
			}

			dst.DrawTextColored(cellX+padLeft, cellY, valStr, tileColor(t.Value()))
		}
	}
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, boardX, boardY, boardW, boardH int) {
	centerX := boardX + boardW/2
	centerY := boardY + boardH/2

	if g.paused {
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
		return
	}

	if !g.gameOver {
		return
	}

	if g.won && g.mode == ModeClassic {
		targetStr := fmt.Sprintf("You reached %d!", g.cfg.Rules.Target)
		g.drawOverlay(dst, centerX, centerY, "YOU WIN!", targetStr, "Press R to play again")
		return
	}

	maxStr := fmt.Sprintf("Max tile: %d", g.maxTile)
	g.drawOverlay(dst, centerX, centerY, "GAME OVER", maxStr, "Press R to restart")
}

// drawOverlay draws a centered text overlay.
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

	// Clear the area behind the overlay
	for y := boxY; y < boxY+boxH; y++ {
		for x := boxX; x < boxX+boxW; x++ {
			dst.Set(x, y, ' ')
		}
	}

	dst.DrawBox(core.Rect{X: boxX, Y: boxY, W: boxW, H: boxH})

	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, boxY+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrow keys/WASD: Tilt | P: Pause | R: Restart | Q: Quit"
}
