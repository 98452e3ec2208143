package render

import (
	"fmt"
	"mindmap/canvas"
	"mindmap/diagram"
	"mindmap/editor"
)

// AddButtonLabel is the toolbar button drawn in the header.
const AddButtonLabel = "[ Add Node ]"

// drawHeader fills the two header rows: title, toolbar button and status on
// the first, the shortcut legend on the second.
func (r *Renderer) drawHeader(s Surface, f editor.Frame) Layout {
	width, _ := s.Size()
	s.FillRect(0, 0, width, HeaderRows, ' ', canvas.ClassHeader)

	x := 1
	x += s.DrawText(x, 0, r.opts.Title, canvas.ClassHeader) + 2

	button := CellRect{X: x, Y: 0, Width: canvas.MeasureText(AddButtonLabel), Height: 1}
	x += s.DrawText(x, 0, AddButtonLabel, canvas.ClassButton) + 2

	x += s.DrawText(x, 0, fmt.Sprintf("Nodes: %d", f.NodeCount()), canvas.ClassHeader) + 2
	s.DrawText(x, 0, "Selected: "+selectionLabel(f), canvas.ClassHeader)

	mode := f.Mode.String()
	s.DrawText(width-canvas.MeasureText(mode)-1, 0, mode, canvas.ClassHeader)

	if r.opts.Legend != "" {
		s.DrawText(1, 1, canvas.FitText(r.opts.Legend, width-2, r.ellipsis), canvas.ClassLegend)
	}

	return Layout{AddButton: button}
}

func selectionLabel(f editor.Frame) string {
	if f.Selected == diagram.NoNode {
		return "none"
	}
	return fmt.Sprintf("Node %d", f.Selected)
}
