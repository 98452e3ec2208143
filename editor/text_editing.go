package editor

// StartEdit enters edit mode on the selected node, like a double-click.
func (e *Editor) StartEdit() {
	if e.selected == noNode {
		return
	}
	e.beginEdit(e.selected)
}

// beginEdit loads the node's label into the edit buffer. A drag in progress
// is dropped since the two never run together.
func (e *Editor) beginEdit(id int) {
	node, ok := e.store.Find(id)
	if !ok {
		return
	}
	e.endDrag()
	e.editing = id
	e.editBuffer = node.Text
	e.editStarted = true
	e.log.Debug("edit started", "id", id)
}

// handleEditField syncs the buffer with the host's field and applies commit
// or cancel. Commit needs the field to lose focus on the same frame Enter is
// pressed; Escape cancels at any time.
func (e *Editor) handleEditField(in Input) {
	if e.editing == noNode {
		return
	}
	if !e.store.Has(e.editing) {
		e.clearEdit()
		return
	}

	if in.EditText != nil {
		e.editBuffer = *in.EditText
	}

	if in.EditLostFocus && in.Pressed(KeyEnter) {
		e.CommitEdit()
	}
	if in.Pressed(KeyEscape) {
		e.CancelEdit()
	}
}

// CommitEdit writes the edit buffer into the node and leaves edit mode.
func (e *Editor) CommitEdit() {
	if e.editing == noNode {
		return
	}
	e.store.UpdateText(e.editing, e.editBuffer)
	e.log.Debug("edit committed", "id", e.editing, "text", e.editBuffer)
	e.clearEdit()
}

// CancelEdit leaves edit mode without touching the node.
func (e *Editor) CancelEdit() {
	if e.editing == noNode {
		return
	}
	e.log.Debug("edit cancelled", "id", e.editing)
	e.clearEdit()
}

// SetEditBuffer replaces the working copy of the label.
func (e *Editor) SetEditBuffer(text string) {
	if e.editing != noNode {
		e.editBuffer = text
	}
}

func (e *Editor) clearEdit() {
	e.editing = noNode
	e.editBuffer = ""
}
