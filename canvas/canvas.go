// Package canvas provides the character grid the mind map is drawn on.
//
// Every cell holds a rune and a Class. The class says what the cell belongs
// to (a connector, a node border, label text) and is resolved to a concrete
// color only by whoever puts the grid on screen.
package canvas

// Point is a cell position. Origin is top-left, X grows rightward and Y
// grows downward.
type Point struct {
	X, Y int
}

// Class tags a cell with the element it was drawn for.
type Class int

const (
	ClassNone Class = iota
	ClassLine
	ClassNode
	ClassSelected
	ClassEditing
	ClassText
	ClassHeader
	ClassButton
	ClassLegend
	ClassCursor
)

// String returns the class name for debugging.
func (c Class) String() string {
	switch c {
	case ClassNone:
		return "none"
	case ClassLine:
		return "line"
	case ClassNode:
		return "node"
	case ClassSelected:
		return "selected"
	case ClassEditing:
		return "editing"
	case ClassText:
		return "text"
	case ClassHeader:
		return "header"
	case ClassButton:
		return "button"
	case ClassLegend:
		return "legend"
	case ClassCursor:
		return "cursor"
	default:
		return "unknown"
	}
}

// Cell is one character position of the grid.
type Cell struct {
	Rune  rune // '\x00' marks the second half of a wide character
	Class Class
}

// Blank is the value of an untouched cell.
var Blank = Cell{Rune: ' ', Class: ClassNone}

// Canvas is a 2D grid of cells.
type Canvas interface {
	Size() (width, height int)
	Get(p Point) Cell
	Set(p Point, r rune, class Class) error
	Clear()
}
