package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Cell is one character position of the canvas
type Cell struct {
	Rune  rune
	Style tcell.Style
}

// Buffer is the off-screen canvas games draw into
// The main loop blits it to the tcell screen once per frame
type Buffer struct {
	cells   []Cell
	touched []bool
	width   int
	height  int
	bg      tcell.Style
}

// NewBuffer creates a cleared buffer with the given dimensions
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{bg: StyleBase}
	b.Resize(width, height)
	return b
}

// Size returns the buffer dimensions
func (b *Buffer) Size() (int, int) {
	return b.width, b.height
}

// Resize adjusts dimensions, reallocating only if capacity is insufficient
func (b *Buffer) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
		b.touched = make([]bool, size)
	} else {
		b.cells = b.cells[:size]
		b.touched = b.touched[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets every cell to a blank base-styled space
func (b *Buffer) Clear() {
	blank := Cell{Rune: ' ', Style: b.bg}
	for i := range b.cells {
		b.cells[i] = blank
		b.touched[i] = true
	}
}

// SetContent writes one cell; out-of-bounds writes are dropped
func (b *Buffer) SetContent(x, y int, r rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return
	}
	idx := y*b.width + x
	b.cells[idx] = Cell{Rune: r, Style: style}
	b.touched[idx] = true
}

// GetCell returns the cell at x, y
func (b *Buffer) GetCell(x, y int) (Cell, bool) {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return Cell{}, false
	}
	return b.cells[y*b.width+x], true
}

// Row returns the runes of line y as a string, used by tests and snapshots
func (b *Buffer) Row(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	var sb strings.Builder
	sb.Grow(b.width)
	for _, c := range b.cells[y*b.width : (y+1)*b.width] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

// Contains reports whether any row holds text
func (b *Buffer) Contains(text string) bool {
	for y := 0; y < b.height; y++ {
		if strings.Contains(b.Row(y), text) {
			return true
		}
	}
	return false
}

// Blit copies touched cells to the screen and clears the touched flags
func (b *Buffer) Blit(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		row := y * b.width
		for x := 0; x < b.width; x++ {
			if !b.touched[row+x] {
				continue
			}
			c := b.cells[row+x]
			screen.SetContent(x, y, c.Rune, nil, c.Style)
			b.touched[row+x] = false
		}
	}
}
