package snake

import (
	"fmt"
	"strconv"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

const hudHeight = 1

// Glyphs used on the board.
const (
	glyphHead  = '█'
	glyphBody  = '▓'
	glyphApple = '●'
)

// MinScreenSize returns the smallest screen that fits the board and HUD.
func (c *Controller) MinScreenSize() (w, h int) {
	return c.bounds.W*c.cfg.Board.CellWidth + 2, c.bounds.H + 2 + hudHeight
}

// Render draws the board, snake, apple, HUD and state overlay into dst.
func (c *Controller) Render(dst *core.Screen, now time.Time) {
	dst.Clear()

	minW, minH := c.MinScreenSize()
	if dst.Width() < minW || dst.Height() < minH {
		c.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", minW, minH))
		return
	}

	c.renderHUD(dst)

	frame := c.boardFrame(dst)
	dst.DrawBox(frame, core.ColorBorder)

	if apple := c.apple.Position(); apple != NoPosition {
		c.drawCell(dst, frame, apple, glyphApple, core.ColorApple)
	}
	for i, seg := range c.snake.body {
		if i == 0 {
			c.drawCell(dst, frame, seg, glyphHead, core.ColorSnakeHead)
		} else {
			c.drawCell(dst, frame, seg, glyphBody, core.ColorSnakeBody)
		}
	}

	switch c.state {
	case StateInMenu:
		c.renderOverlay(dst, "SNAKE", "Press Enter to start")
	case StatePreMatch:
		c.renderOverlay(dst, strconv.Itoa(c.CountdownSeconds(now)), "Get ready")
	case StatePaused:
		c.renderOverlay(dst, "Game paused", "Press P to continue")
	case StatePostMatch:
		title := "Game Over"
		if c.endReason == EndBoardFull {
			title = "You filled the board!"
		}
		c.renderOverlay(dst, title, "Press R to restart")
	}
}

// boardFrame returns the bordered board area centered horizontally below the HUD.
func (c *Controller) boardFrame(dst *core.Screen) core.Rect {
	w, h := c.MinScreenSize()
	return core.NewRect((dst.Width()-w)/2, hudHeight, w, h-hudHeight)
}

// drawCell fills the terminal columns of one grid cell.
func (c *Controller) drawCell(dst *core.Screen, frame core.Rect, p core.Point, glyph rune, color core.Color) {
	cw := c.cfg.Board.CellWidth
	x := frame.X + 1 + p.X*cw
	y := frame.Y + 1 + p.Y
	for i := 0; i < cw; i++ {
		r := glyph
		if glyph == glyphApple && i > 0 {
			r = ' '
		}
		dst.SetColored(x+i, y, r, color)
	}
}

func (c *Controller) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf("Score: %d  Length: %d", c.score, c.snake.Len())
	dst.DrawTextCentered(0, hud, core.ColorText)
}

// renderOverlay draws a centered two-line message box.
func (c *Controller) renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := max(len([]rune(line1)), len([]rune(line2))) + 4
	boxH := 4
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	for y := box.Y + 1; y < box.Bottom()-1; y++ {
		for x := box.X + 1; x < box.Right()-1; x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(box, core.ColorText)
	dst.DrawTextCentered(box.Y+1, line1, core.ColorAlert)
	dst.DrawTextCentered(box.Y+2, line2, core.ColorText)
}
