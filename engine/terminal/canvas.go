package terminal

import (
	"github.com/Carmen-Shannon/oxy-tree/common"
	"github.com/gdamore/tcell/v2"
)

// Cell is one character of the canvas.
type Cell struct {
	Rune  rune
	Color common.RGB
	Depth float32
}

// Canvas is a depth-tested character grid. Plot keeps the nearest glyph per cell.
type Canvas struct {
	width, height int
	cells         []Cell
	background    common.RGB
}

// NewCanvas allocates a cleared canvas.
//
// Parameters:
//   - width, height: the grid size in cells
//   - background: the clear color
//
// Returns:
//   - *Canvas: the canvas
func NewCanvas(width, height int, background common.RGB) *Canvas {
	c := &Canvas{background: background}
	c.Resize(width, height)
	return c
}

// Resize reallocates the grid and clears it.
func (c *Canvas) Resize(width, height int) {
	c.width, c.height = max(width, 1), max(height, 1)
	c.cells = make([]Cell, c.width*c.height)
	c.Clear()
}

// Size returns the grid size in cells.
func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

// Clear resets every cell to an empty glyph at the far plane.
func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = Cell{Rune: ' ', Color: c.background, Depth: 2}
	}
}

// Plot draws r at (x, y) unless a nearer glyph is already there.
//
// Parameters:
//   - x, y: the cell
//   - depth: the glyph depth, smaller is nearer
//   - r: the glyph
//   - color: the foreground color
//
// Returns:
//   - bool: true if the glyph was written
func (c *Canvas) Plot(x, y int, depth float32, r rune, color common.RGB) bool {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return false
	}
	cell := &c.cells[y*c.width+x]
	if depth > cell.Depth {
		return false
	}
	*cell = Cell{Rune: r, Color: color, Depth: depth}
	return true
}

// Text writes s starting at (x, y) in front of everything, clipped to the grid.
func (c *Canvas) Text(x, y int, s string, color common.RGB) {
	for _, r := range s {
		c.Plot(x, y, -1, r, color)
		x++
	}
}

// At returns the cell at (x, y). Out of range coordinates return the zero Cell.
func (c *Canvas) At(x, y int) Cell {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return Cell{}
	}
	return c.cells[y*c.width+x]
}

// Flush copies the canvas to screen and shows it.
//
// Parameters:
//   - screen: the tcell screen
func (c *Canvas) Flush(screen tcell.Screen) {
	bg := toColor(c.background)
	for y := range c.height {
		for x := range c.width {
			cell := c.cells[y*c.width+x]
			style := tcell.StyleDefault.Background(bg).Foreground(toColor(cell.Color))
			screen.SetContent(x, y, cell.Rune, nil, style)
		}
	}
	screen.Show()
}

func toColor(c common.RGB) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
