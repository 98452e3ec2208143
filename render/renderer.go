// Package render draws editor frames onto a character canvas.
package render

import (
	"mindmap/canvas"
	"mindmap/diagram"
	"mindmap/editor"
)

// Surface is the drawing target of the renderer.
type Surface interface {
	canvas.Canvas
	FillRect(x, y, width, height int, r rune, class canvas.Class)
	DrawBox(x, y, width, height int, style canvas.BoxStyle, class canvas.Class) error
	DrawLine(p1, p2 canvas.Point, style canvas.LineStyle, class canvas.Class)
	DrawText(x, y int, text string, class canvas.Class) int
}

// Options controls how frames are drawn.
type Options struct {
	ASCII  bool   // Plain ASCII borders and connectors
	Title  string // Shown at the left of the header
	Legend string // Shortcut summary on the second header row
}

// FieldView is the state of the in-place text field shown over the node
// being edited.
type FieldView struct {
	Text   string
	Cursor int // Rune index of the cursor
}

// Layout records where interactive parts of the header ended up.
type Layout struct {
	AddButton CellRect
}

// Renderer turns editor frames into canvas cells.
type Renderer struct {
	view Viewport
	opts Options

	box      canvas.BoxStyle
	selected canvas.BoxStyle
	line     canvas.LineStyle
	ellipsis string
}

// NewRenderer creates a renderer drawing through view.
func NewRenderer(view Viewport, opts Options) *Renderer {
	r := &Renderer{
		view:     view,
		opts:     opts,
		box:      canvas.DefaultBoxStyle,
		selected: canvas.DoubleBoxStyle,
		line:     canvas.DefaultLineStyle,
		ellipsis: "…",
	}
	if opts.ASCII {
		r.box = canvas.SimpleBoxStyle
		r.selected = canvas.SimpleBoxStyle
		r.line = canvas.ASCIILineStyle
		r.ellipsis = "."
	}
	if r.opts.Title == "" {
		r.opts.Title = "Lightning MindMap"
	}
	return r
}

// Viewport returns the world to cell mapping used for drawing.
func (r *Renderer) Viewport() Viewport {
	return r.view
}

// Render clears s and draws f on it. field is the edit widget state and is
// only used while a node is being edited.
//
// Connectors go first so node boxes cover their ends, nodes follow in frame
// order so later nodes are on top, and the header is drawn last.
func (r *Renderer) Render(s Surface, f editor.Frame, field *FieldView) Layout {
	s.Clear()

	for _, l := range f.Lines {
		s.DrawLine(r.view.ToCell(l.From), r.view.ToCell(l.To), r.line, canvas.ClassLine)
	}

	for _, n := range f.Nodes {
		r.drawNode(s, n, field)
	}

	return r.drawHeader(s, f)
}

// NodeCells returns the cells covered by a node centered at pos.
func (r *Renderer) NodeCells(pos diagram.Vec2) CellRect {
	return r.view.Cells(diagram.RectFromCenter(pos, diagram.NodeWidth, diagram.NodeHeight))
}

func (r *Renderer) drawNode(s Surface, n editor.NodeView, field *FieldView) {
	rect := r.NodeCells(n.Position)
	if rect.Empty() {
		return
	}

	class := canvas.ClassNode
	style := r.box
	switch {
	case n.Editing:
		class = canvas.ClassEditing
		style = r.selected
	case n.Selected:
		class = canvas.ClassSelected
		style = r.selected
	}

	if rect.Width >= 2 && rect.Height >= 2 {
		s.DrawBox(rect.X, rect.Y, rect.Width, rect.Height, style, class)
	} else {
		s.FillRect(rect.X, rect.Y, rect.Width, rect.Height, ' ', class)
	}

	inner := rect.Width - 2
	if inner <= 0 {
		return
	}
	row := rect.Y + rect.Height/2

	if n.Editing && field != nil {
		r.drawField(s, rect.X+1, row, inner, *field)
		return
	}

	text := canvas.FitText(n.Text, inner, r.ellipsis)
	x := rect.X + 1 + canvas.CenterOffset(inner, canvas.MeasureText(text))
	s.DrawText(x, row, text, class)
}

// drawField draws the edit widget into width cells at (x, y), scrolled so
// the cursor stays visible.
func (r *Renderer) drawField(s Surface, x, y, width int, field FieldView) {
	visible, cursorCol := FieldWindow(field.Text, field.Cursor, width)
	s.FillRect(x, y, width, 1, ' ', canvas.ClassEditing)
	s.DrawText(x, y, visible, canvas.ClassEditing)

	p := canvas.Point{X: x + cursorCol, Y: y}
	under := s.Get(p).Rune
	if under == '\x00' {
		under = ' '
	}
	s.Set(p, under, canvas.ClassCursor)
}

// FieldWindow returns the part of text shown in a field of width cells and
// the cursor column inside it. Leading characters are dropped until the
// cursor fits, leaving one cell for the cursor at the end of the text.
func FieldWindow(text string, cursor, width int) (string, int) {
	runes := []rune(text)
	cursor = max(0, min(cursor, len(runes)))
	if width <= 0 {
		return "", 0
	}

	start := 0
	for canvas.MeasureText(string(runes[start:cursor])) > width-1 && start < cursor {
		start++
	}

	col := canvas.MeasureText(string(runes[start:cursor]))
	visible := canvas.TruncateToWidth(string(runes[start:]), width)
	return visible, col
}
