package snake

import (
	"fmt"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// cellWidth is the number of terminal columns per board cell. Terminal
// characters are about twice as tall as wide, two of them make a square.
const cellWidth = 2

const hudHeight = 1

// BoardRect returns where the framed board goes on a width x height screen,
// and false when the screen is too small to hold it.
func (s Snapshot) BoardRect(width, height int) (core.Rect, bool) {
	w := s.Columns*cellWidth + 2
	h := s.Rows + 2
	if width < w || height < h+hudHeight {
		return core.Rect{}, false
	}
	return core.NewRect((width-w)/2, hudHeight, w, h), true
}

// Draw renders the snapshot into dst: HUD, framed board, snake, food and the
// overlay for the current state. dst is cleared first.
func (s Snapshot) Draw(dst *core.Screen) {
	dst.Clear()

	board, ok := s.BoardRect(dst.Width(), dst.Height())
	if !ok {
		drawOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", s.Columns*cellWidth+2, s.Rows+2+hudHeight))
		return
	}

	hud := fmt.Sprintf("Score: %d   Best: %d", s.Score, s.Best)
	dst.DrawTextColored(board.X, 0, "SNAKE", core.ColorBrightGreen)
	dst.DrawTextColored(board.Right()-len(hud), 0, hud, core.ColorYellow)

	dst.DrawBox(board, core.ColorGray)

	cell := func(p core.Point, text string, c core.Color) {
		if !p.In(s.Rows, s.Columns) {
			return
		}
		dst.DrawTextColored(board.X+1+p.X*cellWidth, board.Y+1+p.Y, text, c)
	}

	if !s.FoodHidden {
		cell(s.Food, "<>", core.ColorRed)
	}
	// Tail first so the head wins when segments overlap.
	for i := len(s.Body) - 1; i >= 0; i-- {
		if i == 0 {
			cell(s.Body[i], "██", core.ColorBrightGreen)
		} else {
			cell(s.Body[i], "▓▓", core.ColorGreen)
		}
	}

	switch s.State {
	case StatePaused:
		drawOverlay(dst, "Paused", "Press P to continue")
	case StateWaiting:
		drawOverlay(dst, fmt.Sprintf("Game over! Score: %d", s.LastScore), "Press R to play again")
	}
}

// drawOverlay draws a framed two-line message in the middle of dst.
func drawOverlay(dst *core.Screen, line1, line2 string) {
	w := max(len([]rune(line1)), len([]rune(line2))) + 4
	box := dst.Bounds().Centered(w, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorCyan)
	dst.DrawTextCentered(box.Y+1, line1, core.ColorBrightGreen)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorDefault)
}
