package render

import (
	"math"
	"mindmap/canvas"
	"mindmap/diagram"
	"mindmap/geometry"
)

// HeaderRows is the number of canvas rows above the diagram area.
const HeaderRows = 2

// Viewport maps world units onto canvas cells. Cell (0, Top) covers world
// [0, CellWidth) x [0, CellHeight).
type Viewport struct {
	CellWidth  float64 // World units per column
	CellHeight float64 // World units per row
	Top        int     // First row of the diagram area
}

// NewViewport returns a viewport below the header rows.
func NewViewport(cellWidth, cellHeight float64) Viewport {
	return Viewport{CellWidth: cellWidth, CellHeight: cellHeight, Top: HeaderRows}
}

// ToCell returns the cell containing world point w.
func (v Viewport) ToCell(w diagram.Vec2) canvas.Point {
	return canvas.Point{
		X: int(math.Floor(w.X / v.CellWidth)),
		Y: v.Top + int(math.Floor(w.Y/v.CellHeight)),
	}
}

// ToWorld returns the world position of the center of cell p. Pointer
// positions are reported this way, so a cell belongs to a node box exactly
// when its center hits the node.
func (v Viewport) ToWorld(p canvas.Point) diagram.Vec2 {
	return diagram.Vec2{
		X: (float64(p.X) + 0.5) * v.CellWidth,
		Y: (float64(p.Y-v.Top) + 0.5) * v.CellHeight,
	}
}

// InDiagram reports whether p lies below the header.
func (v Viewport) InDiagram(p canvas.Point) bool {
	return p.Y >= v.Top
}

// CellRect is a rectangle of cells.
type CellRect struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether p lies inside the rectangle.
func (r CellRect) Contains(p canvas.Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width &&
		p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Empty reports whether the rectangle covers no cells.
func (r CellRect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Cells returns the cells whose centers fall inside world rectangle r.
func (v Viewport) Cells(r diagram.Rect) CellRect {
	x0, x1 := geometry.CellSpan(r.Min.X, r.Max.X, v.CellWidth)
	y0, y1 := geometry.CellSpan(r.Min.Y, r.Max.Y, v.CellHeight)
	return CellRect{
		X:      x0,
		Y:      v.Top + y0,
		Width:  x1 - x0,
		Height: y1 - y0,
	}
}
