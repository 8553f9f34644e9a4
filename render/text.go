package render

import "github.com/gdamore/tcell/v2"

// Canvas is the drawing surface the helpers accept
type Canvas interface {
	Size() (int, int)
	SetContent(x, y int, r rune, style tcell.Style)
}

// Rect is an integer cell rectangle
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell x, y lies inside r
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// DrawText writes s starting at x, y and returns the column after the last rune
func DrawText(c Canvas, x, y int, s string, style tcell.Style) int {
	for _, r := range s {
		c.SetContent(x, y, r, style)
		x++
	}
	return x
}

// DrawCentered writes s horizontally centered on row y
func DrawCentered(c Canvas, y int, s string, style tcell.Style) {
	w, _ := c.Size()
	x := (w - len([]rune(s))) / 2
	if x < 0 {
		x = 0
	}
	DrawText(c, x, y, s, style)
}

// FillRect paints r with the given rune
func FillRect(c Canvas, r Rect, ch rune, style tcell.Style) {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			c.SetContent(x, y, ch, style)
		}
	}
}

// DrawBox outlines r with light box-drawing runes
func DrawBox(c Canvas, r Rect, style tcell.Style) {
	if r.W < 2 || r.H < 2 {
		return
	}
	x2, y2 := r.X+r.W-1, r.Y+r.H-1
	for x := r.X + 1; x < x2; x++ {
		c.SetContent(x, r.Y, '─', style)
		c.SetContent(x, y2, '─', style)
	}
	for y := r.Y + 1; y < y2; y++ {
		c.SetContent(r.X, y, '│', style)
		c.SetContent(x2, y, '│', style)
	}
	c.SetContent(r.X, r.Y, '┌', style)
	c.SetContent(x2, r.Y, '┐', style)
	c.SetContent(r.X, y2, '└', style)
	c.SetContent(x2, y2, '┘', style)
}
