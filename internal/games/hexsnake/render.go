package hexsnake

import (
	"fmt"

	"github.com/vovakirdan/hexsnake/internal/core"
	"github.com/vovakirdan/hexsnake/internal/hexgrid"
)

const hudHeight = 2

var faceNames = [2]string{"A", "B"}

// Render draws the active face of the board. The other face stays
// hidden until the next wrap flips the view.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderBoard(dst)
	g.renderFood(dst)
	g.renderSnake(dst)

	switch {
	case g.sess.lifecycle == LifecycleOver:
		g.renderOverlay(dst, "Game Over", "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// project maps an axial cell to screen coordinates. Each hex occupies
// two columns so rows can interleave without overlap.
func (g *Game) project(c hexgrid.Cell) (x, y int) {
	cx := g.screenW / 2
	cy := hudHeight + 1 + g.cfg.Board.Radius
	return cx + 2*c.Q + c.R, cy + c.R
}

func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Hex Snake | Score: %d | Face: %s | Axis: %s",
		g.sess.score, faceNames[g.sess.currentFace], g.sess.topo.Axis)
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderBoard draws the board cells: portal edges stand out from plain
// boundary walls so the player can see where wrapping is safe.
func (g *Game) renderBoard(dst *core.Screen) {
	for _, c := range g.sess.topo.Board.Cells() {
		x, y := g.project(c)
		switch {
		case g.sess.topo.IsPortalCell(c):
			dst.SetColored(x, y, '+', core.ColorCyan)
		case g.sess.topo.IsBoundaryCell(c):
			dst.SetColored(x, y, '#', core.ColorGray)
		default:
			dst.SetColored(x, y, '.', core.ColorGray)
		}
	}
}

func (g *Game) renderFood(dst *core.Screen) {
	if g.sess.food.Face == g.sess.currentFace {
		x, y := g.project(g.sess.food.Cell)
		dst.SetColored(x, y, '*', core.ColorBrightRed)
	}

	// Transient food-eaten flash at the spot it was eaten.
	if ev := g.sess.eaten; ev != nil && ev.Face == g.sess.currentFace {
		x, y := g.project(ev.Cell)
		dst.SetColored(x, y, '✦', core.ColorBrightYellow)
	}
}

func (g *Game) renderSnake(dst *core.Screen) {
	for i := len(g.sess.snake) - 1; i >= 0; i-- {
		seg := g.sess.snake[i]
		if seg.Face != g.sess.currentFace {
			continue
		}
		x, y := g.project(seg.Cell)
		if i == 0 {
			dst.SetColored(x, y, 'O', core.ColorBrightGreen)
		} else {
			dst.SetColored(x, y, 'o', core.ColorGreen)
		}
	}
}

// renderOverlay draws a centered boxed message over the board.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	boxW := maxLen + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	for y := boxY; y < boxY+boxH && y < h; y++ {
		for x := boxX; x < boxX+boxW && x < w; x++ {
			if x < 0 || y < 0 {
				continue
			}
			isTopOrBottom := y == boxY || y == boxY+boxH-1
			isLeftOrRight := x == boxX || x == boxX+boxW-1
			switch {
			case isTopOrBottom && isLeftOrRight:
				dst.Set(x, y, '+')
			case isTopOrBottom:
				dst.Set(x, y, '-')
			case isLeftOrRight:
				dst.Set(x, y, '|')
			default:
				dst.Set(x, y, ' ')
			}
		}
	}

	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}
