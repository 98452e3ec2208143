package editor

import "mindmap/diagram"

// NodeView is one node as the renderer should draw it.
type NodeView struct {
	ID       int
	Text     string
	Position diagram.Vec2
	Selected bool
	Editing  bool
}

// Frame is the complete render state after a step. It is rebuilt from the
// store and session state every time, never patched.
type Frame struct {
	Nodes []NodeView     // Draw order, last is topmost
	Lines []diagram.Line // Parent to child connectors

	Selected int // NoNode when nothing is selected
	Editing  int // NoNode outside edit mode
	Dragging int // NoNode when no drag is active
	Mode     Mode

	EditBuffer   string // Text to show in the edit field
	EditStarted  bool   // Edit mode began this step; the field should be refilled
	RequestFocus bool   // The edit field should take keyboard focus

	NextID int
}

// Frame projects the current state without consuming input.
func (e *Editor) Frame() Frame {
	nodes := e.store.Nodes()
	views := make([]NodeView, len(nodes))
	for i, n := range nodes {
		views[i] = NodeView{
			ID:       n.ID,
			Text:     n.Text,
			Position: n.Position,
			Selected: n.ID == e.selected,
			Editing:  n.ID == e.editing,
		}
	}

	return Frame{
		Nodes:       views,
		Lines:       e.store.Lines(),
		Selected:    e.selected,
		Editing:     e.editing,
		Dragging:    e.dragging,
		Mode:        e.Mode(),
		EditBuffer:  e.editBuffer,
		EditStarted: e.editStarted,
		NextID:      e.store.NextID(),
	}
}

// NodeCount returns the number of nodes in the frame.
func (f Frame) NodeCount() int {
	return len(f.Nodes)
}

// Node returns the view of node id.
func (f Frame) Node(id int) (NodeView, bool) {
	for _, n := range f.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return NodeView{}, false
}
