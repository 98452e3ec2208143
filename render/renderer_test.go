package render

import (
	"mindmap/canvas"
	"mindmap/diagram"
	"mindmap/editor"
	"strings"
	"testing"
	"time"
)

func newTestCanvas(t *testing.T) *canvas.MatrixCanvas {
	t.Helper()
	c, err := canvas.NewMatrixCanvas(120, 45)
	if err != nil {
		t.Fatalf("Failed to create canvas: %v", err)
	}
	return c
}

func newTestRenderer(ascii bool) *Renderer {
	return NewRenderer(NewViewport(8, 12), Options{ASCII: ascii, Legend: "Tab: add child"})
}

// textAt reads n runes starting at (x, y).
func textAt(c *canvas.MatrixCanvas, x, y, n int) string {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		sb.WriteRune(c.Get(canvas.Point{X: x + i, Y: y}).Rune)
	}
	return sb.String()
}

func TestViewportRoundTrip(t *testing.T) {
	v := NewViewport(8, 12)
	for _, p := range []canvas.Point{{X: 0, Y: 2}, {X: 10, Y: 5}, {X: 44, Y: 25}, {X: 119, Y: 44}} {
		if got := v.ToCell(v.ToWorld(p)); got != p {
			t.Errorf("ToCell(ToWorld(%v)) = %v", p, got)
		}
	}

	if got := v.ToWorld(canvas.Point{X: 0, Y: 2}); got != (diagram.Vec2{X: 4, Y: 6}) {
		t.Errorf("Expected first diagram cell center at (4,6), got %v", got)
	}
	if v.InDiagram(canvas.Point{X: 5, Y: 1}) {
		t.Errorf("Expected header row outside the diagram")
	}
}

// A cell is drawn as part of a node exactly when clicking it hits the node.
func TestNodeCellsMatchHitTest(t *testing.T) {
	r := newTestRenderer(false)
	v := r.Viewport()

	positions := []diagram.Vec2{
		{X: 400, Y: 300},
		{X: 550, Y: 380},
		{X: 203.5, Y: 117.25},
		{X: 52, Y: 20},
	}

	for _, pos := range positions {
		node := diagram.Node{Position: pos}
		rect := r.NodeCells(pos)
		for y := v.Top; y < 45; y++ {
			for x := 0; x < 120; x++ {
				p := canvas.Point{X: x, Y: y}
				if rect.Contains(p) != node.Contains(v.ToWorld(p)) {
					t.Fatalf("node at %v: cell %v drawn=%v hit=%v", pos, p, rect.Contains(p), node.Contains(v.ToWorld(p)))
				}
			}
		}
	}
}

func TestRenderRootNode(t *testing.T) {
	c := newTestCanvas(t)
	r := newTestRenderer(false)
	f := editor.NewEditor(nil, editor.DefaultOptions()).Frame()

	layout := r.Render(c, f, nil)

	rect := r.NodeCells(diagram.DefaultRootPosition)
	if rect != (CellRect{X: 44, Y: 25, Width: 12, Height: 4}) {
		t.Fatalf("Unexpected root cells %+v", rect)
	}
	if got := c.Get(canvas.Point{X: 44, Y: 25}); got.Rune != '╭' || got.Class != canvas.ClassNode {
		t.Errorf("Expected rounded corner of an unselected node, got %+v", got)
	}
	if got := textAt(c, 45, 27, 9); got != "Root Node" {
		t.Errorf("Expected centered label, got %q", got)
	}

	if got := textAt(c, layout.AddButton.X, 0, layout.AddButton.Width); got != AddButtonLabel {
		t.Errorf("Expected button at layout rect, got %q", got)
	}
	header := c.Row(0)
	for _, want := range []string{"Lightning MindMap", "Nodes: 1", "Selected: none", "NORMAL"} {
		if !strings.Contains(header, want) {
			t.Errorf("Expected header to contain %q, got %q", want, header)
		}
	}
	if !strings.Contains(c.Row(1), "Tab: add child") {
		t.Errorf("Expected legend on second row, got %q", c.Row(1))
	}
}

func TestRenderSelectionAndLines(t *testing.T) {
	c := newTestCanvas(t)
	r := newTestRenderer(false)
	ed := editor.NewEditor(nil, editor.DefaultOptions())
	ed.Select(0)
	f := ed.Step(editor.Input{Keys: []editor.Key{editor.KeyTab}, Now: time.Now()})

	r.Render(c, f, nil)

	child := r.NodeCells(diagram.Vec2{X: 550, Y: 380})
	if got := c.Get(canvas.Point{X: child.X, Y: child.Y}); got.Rune != '╔' || got.Class != canvas.ClassSelected {
		t.Errorf("Expected double border on the selected child, got %+v", got)
	}
	root := r.NodeCells(diagram.DefaultRootPosition)
	if got := c.Get(canvas.Point{X: root.X, Y: root.Y}).Rune; got != '╭' {
		t.Errorf("Expected rounded border on the root, got %c", got)
	}

	lines := 0
	_, h := c.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < 120; x++ {
			if c.Get(canvas.Point{X: x, Y: y}).Class == canvas.ClassLine {
				lines++
			}
		}
	}
	if lines == 0 {
		t.Errorf("Expected connector cells between root and child")
	}
	if !strings.Contains(c.Row(0), "Selected: Node 1") {
		t.Errorf("Expected selection in header, got %q", c.Row(0))
	}
}

func TestRenderASCII(t *testing.T) {
	c := newTestCanvas(t)
	r := newTestRenderer(true)
	f := editor.NewEditor(nil, editor.DefaultOptions()).Frame()
	r.Render(c, f, nil)

	if got := c.Get(canvas.Point{X: 44, Y: 25}).Rune; got != '+' {
		t.Errorf("Expected ASCII corner, got %c", got)
	}
}

func TestRenderEditField(t *testing.T) {
	c := newTestCanvas(t)
	r := newTestRenderer(false)
	ed := editor.NewEditor(nil, editor.DefaultOptions())
	ed.Select(0)
	f := ed.Step(editor.Input{Keys: []editor.Key{editor.KeyF2}, Now: time.Now()})

	r.Render(c, f, &FieldView{Text: "Plan", Cursor: 4})

	if got := textAt(c, 45, 27, 4); got != "Plan" {
		t.Errorf("Expected field text at the left of the box, got %q", got)
	}
	if got := c.Get(canvas.Point{X: 49, Y: 27}).Class; got != canvas.ClassCursor {
		t.Errorf("Expected cursor after the text, got %s", got)
	}
	if got := c.Get(canvas.Point{X: 44, Y: 25}).Class; got != canvas.ClassEditing {
		t.Errorf("Expected editing border, got %s", got)
	}
}

func TestFieldWindow(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		cursor  int
		width   int
		visible string
		col     int
	}{
		{"short", "abc", 3, 10, "abc", 3},
		{"cursor in middle", "abcdef", 2, 10, "abcdef", 2},
		{"scrolled", "abcdefghijkl", 12, 5, "ijkl", 4},
		{"cursor clamped", "abc", 99, 10, "abc", 3},
		{"long text cursor at start", "abcdefghijkl", 0, 5, "abcde", 0},
		{"wide characters", "日本語", 3, 5, "本語", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			visible, col := FieldWindow(tt.text, tt.cursor, tt.width)
			if visible != tt.visible || col != tt.col {
				t.Errorf("FieldWindow(%q, %d, %d) = %q, %d; want %q, %d",
					tt.text, tt.cursor, tt.width, visible, col, tt.visible, tt.col)
			}
		})
	}
}

func TestDetectCapabilities(t *testing.T) {
	tests := []struct {
		name  string
		env   map[string]string
		ascii bool
		color bool
	}{
		{"forced ascii", map[string]string{"MINDMAP_TERMINAL_MODE": "ascii", "LANG": "en_US.UTF-8"}, true, false},
		{"forced unicode", map[string]string{"MINDMAP_TERMINAL_MODE": "unicode"}, false, true},
		{"utf8 xterm", map[string]string{"TERM": "xterm-256color", "LANG": "en_US.UTF-8"}, false, true},
		{"no locale", map[string]string{"TERM": "xterm-256color"}, true, true},
		{"linux console", map[string]string{"TERM": "linux", "LANG": "C.UTF-8"}, true, true},
		{"no color", map[string]string{"TERM": "xterm", "LC_ALL": "en_GB.utf8", "NO_COLOR": "1"}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			caps := DetectCapabilities(func(k string) string { return tt.env[k] })
			if caps.ASCII() != tt.ascii {
				t.Errorf("ASCII() = %v, want %v", caps.ASCII(), tt.ascii)
			}
			if caps.SupportsColor != tt.color {
				t.Errorf("SupportsColor = %v, want %v", caps.SupportsColor, tt.color)
			}
		})
	}
}
