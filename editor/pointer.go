package editor

import (
	"mindmap/diagram"
	"time"
)

// HitTest returns the topmost node under p. Nodes later in the slice are
// drawn on top, so the last match wins.
func HitTest(nodes []diagram.Node, p diagram.Vec2) (diagram.Node, bool) {
	var hit diagram.Node
	found := false
	for _, n := range nodes {
		if n.Contains(p) {
			hit = n
			found = true
		}
	}
	return hit, found
}

// handlePointer hit-tests the pointer against the frame's position snapshot,
// starts a drag when one begins on the selected node, and moves the dragged
// node. It returns the node under a plain click, or NoNode.
func (e *Editor) handlePointer(snapshot []diagram.Node, in Input) int {
	if in.Pointer == nil {
		return noNode
	}
	p := *in.Pointer

	clicked := noNode
	if hit, ok := HitTest(snapshot, p); ok {
		switch {
		case in.Clicked && !in.Dragging:
			clicked = hit.ID
		case in.DragStarted:
			e.beginDrag(snapshot, p)
		}
	}

	if e.dragging != noNode && in.Dragging {
		e.store.UpdatePosition(e.dragging, p.Sub(e.dragOffset))
	}

	return clicked
}

// beginDrag grabs the selected node if it lies under p. Nothing can be
// dragged while a label is being edited.
func (e *Editor) beginDrag(snapshot []diagram.Node, p diagram.Vec2) {
	if e.editing != noNode || e.selected == noNode {
		return
	}
	for _, n := range snapshot {
		if n.ID == e.selected && n.Contains(p) {
			e.dragging = n.ID
			e.dragOffset = p.Sub(n.Position)
			e.log.Debug("drag started", "id", n.ID)
			return
		}
	}
}

// endDrag forgets the dragged node.
func (e *Editor) endDrag() {
	if e.dragging != noNode {
		e.log.Debug("drag ended", "id", e.dragging)
	}
	e.dragging = noNode
	e.dragOffset = diagram.Vec2{}
}

// resolveClick turns a plain click on a node into a selection or, when it
// follows a click on the same node within the double-click window, into
// edit mode.
func (e *Editor) resolveClick(id int, now time.Time) {
	if last := e.lastClick; last != nil && last.node == id && now.Sub(last.at) < e.opts.DoubleClick {
		e.beginEdit(id)
		e.lastClick = nil
		return
	}

	e.selected = id
	e.lastClick = &clickRecord{node: id, at: now}
}

// clearClick handles a click on empty canvas.
func (e *Editor) clearClick() {
	e.selected = noNode
	e.lastClick = nil
}
