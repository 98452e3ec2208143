package canvas

import (
	"errors"
	"fmt"
	"mindmap/geometry"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Common errors
var (
	ErrOutOfBounds = errors.New("position out of bounds")
	ErrInvalidSize = errors.New("invalid canvas size")
)

// MatrixCanvas implements Canvas as a matrix of cells with drawing
// primitives.
//
// MatrixCanvas is NOT thread-safe. It is filled and read by the single
// goroutine that draws a frame.
//
// Drawing clips at the edges: shapes may start or end outside the grid, so
// a node dragged half off-screen is still drawn in part.
type MatrixCanvas struct {
	cells  [][]Cell
	width  int
	height int
	merger *CharacterMerger
}

// NewMatrixCanvas creates a new canvas with the specified dimensions.
func NewMatrixCanvas(width, height int) (*MatrixCanvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}

	cells := make([][]Cell, height)
	for y := range cells {
		cells[y] = make([]Cell, width)
	}

	c := &MatrixCanvas{
		cells:  cells,
		width:  width,
		height: height,
		merger: NewCharacterMerger(),
	}
	c.Clear()
	return c, nil
}

// Size returns the width and height of the canvas.
func (c *MatrixCanvas) Size() (width, height int) {
	return c.width, c.height
}

func (c *MatrixCanvas) inBounds(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// Get returns the cell at the given position.
// Returns Blank if position is out of bounds.
func (c *MatrixCanvas) Get(p Point) Cell {
	if !c.inBounds(p.X, p.Y) {
		return Blank
	}
	return c.cells[p.Y][p.X]
}

// Set places a character at the given position.
// Returns error if position is out of bounds.
// A line drawn over another line is merged into a crossing character.
func (c *MatrixCanvas) Set(p Point, r rune, class Class) error {
	if !c.inBounds(p.X, p.Y) {
		return ErrOutOfBounds
	}
	c.setCell(p.X, p.Y, r, class)
	return nil
}

func (c *MatrixCanvas) setCell(x, y int, r rune, class Class) {
	existing := c.cells[y][x]
	if class == ClassLine && existing.Class == ClassLine {
		r = c.merger.Merge(existing.Rune, r)
	}
	c.cells[y][x] = Cell{Rune: r, Class: class}
}

// setClipped sets a character with bounds checking (no error).
func (c *MatrixCanvas) setClipped(x, y int, r rune, class Class) {
	if c.inBounds(x, y) {
		c.setCell(x, y, r, class)
	}
}

// Clear resets the canvas to blank cells.
func (c *MatrixCanvas) Clear() {
	for y := range c.cells {
		for x := range c.cells[y] {
			c.cells[y][x] = Blank
		}
	}
}

// String returns the canvas as a string with newlines.
func (c *MatrixCanvas) String() string {
	var sb strings.Builder
	sb.Grow(c.height * (c.width + 1))

	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			r := c.cells[y][x].Rune
			if r == '\x00' {
				// Wide character continuation is already covered
				continue
			}
			sb.WriteRune(r)
		}
		if y < c.height-1 {
			sb.WriteRune('\n')
		}
	}

	return sb.String()
}

// Row returns row y as a string, or "" when out of bounds.
func (c *MatrixCanvas) Row(y int) string {
	if y < 0 || y >= c.height {
		return ""
	}
	var sb strings.Builder
	for _, cell := range c.cells[y] {
		if cell.Rune != '\x00' {
			sb.WriteRune(cell.Rune)
		}
	}
	return sb.String()
}

// FillRect fills a rectangle with r, clipped to the canvas.
func (c *MatrixCanvas) FillRect(x, y, width, height int, r rune, class Class) {
	for row := y; row < y+height; row++ {
		for col := x; col < x+width; col++ {
			if c.inBounds(col, row) {
				c.cells[row][col] = Cell{Rune: r, Class: class}
			}
		}
	}
}

// DrawBox draws a rectangle with the specified style, clipped to the canvas.
// The interior is cleared to blank cells of the same class.
func (c *MatrixCanvas) DrawBox(x, y, width, height int, style BoxStyle, class Class) error {
	if width < 2 || height < 2 {
		return fmt.Errorf("%w: box %dx%d", ErrInvalidSize, width, height)
	}

	c.FillRect(x+1, y+1, width-2, height-2, ' ', class)

	right := x + width - 1
	bottom := y + height - 1

	// Top and bottom lines
	for i := x + 1; i < right; i++ {
		c.setBorder(i, y, style.Horizontal, class)
		c.setBorder(i, bottom, style.Horizontal, class)
	}

	// Vertical lines
	for i := y + 1; i < bottom; i++ {
		c.setBorder(x, i, style.Vertical, class)
		c.setBorder(right, i, style.Vertical, class)
	}

	c.setBorder(x, y, style.TopLeft, class)
	c.setBorder(right, y, style.TopRight, class)
	c.setBorder(x, bottom, style.BottomLeft, class)
	c.setBorder(right, bottom, style.BottomRight, class)

	return nil
}

// setBorder writes a box cell without merging; boxes cover connectors.
func (c *MatrixCanvas) setBorder(x, y int, r rune, class Class) {
	if c.inBounds(x, y) {
		c.cells[y][x] = Cell{Rune: r, Class: class}
	}
}

// DrawLine draws a line between two points using Bresenham's algorithm.
// Each cell gets the style character matching the step taken to reach it,
// and the end points take the character of their neighbouring step.
func (c *MatrixCanvas) DrawLine(p1, p2 Point, style LineStyle, class Class) {
	dx := geometry.Abs(p2.X - p1.X)
	dy := geometry.Abs(p2.Y - p1.Y)
	xInc := geometry.Sign(p2.X - p1.X)
	yInc := geometry.Sign(p2.Y - p1.Y)

	if dx == 0 && dy == 0 {
		c.setClipped(p1.X, p1.Y, style.Horizontal, class)
		return
	}

	x, y := p1.X, p1.Y
	prev := rune(0)

	if dx > dy {
		err := dx / 2
		for x != p2.X {
			stepY := 0
			err -= dy
			if err < 0 {
				stepY = yInc
				err += dx
			}
			prev = style.Step(xInc, stepY)
			c.setClipped(x, y, prev, class)
			x += xInc
			y += stepY
		}
	} else {
		err := dy / 2
		for y != p2.Y {
			stepX := 0
			err -= dx
			if err < 0 {
				stepX = xInc
				err += dy
			}
			prev = style.Step(stepX, yInc)
			c.setClipped(x, y, prev, class)
			x += stepX
			y += yInc
		}
	}

	// Draw the final point
	c.setClipped(p2.X, p2.Y, prev, class)
}

// DrawText renders text starting at (x, y) and returns the number of cells
// it advanced. Characters outside the canvas are skipped; a wide character
// that does not fully fit is not drawn.
func (c *MatrixCanvas) DrawText(x, y int, text string, class Class) int {
	currentX := x

	for _, r := range text {
		width := runewidth.RuneWidth(r)

		// Skip zero-width characters
		if width == 0 {
			continue
		}

		if c.inBounds(currentX, y) && (width == 1 || c.inBounds(currentX+1, y)) {
			c.cells[y][currentX] = Cell{Rune: r, Class: class}

			// For wide characters, mark the next cell
			if width == 2 {
				c.cells[y][currentX+1] = Cell{Rune: '\x00', Class: class}
			}
		}

		currentX += width
	}

	return currentX - x
}
