package editor

// handleShortcuts runs the keyboard shortcuts pressed this frame.
// This is the single place shortcut keys are interpreted; the host only
// translates its key events into Keys.
func (e *Editor) handleShortcuts(in Input) {
	for _, key := range shortcutOrder {
		if !in.Pressed(key) {
			continue
		}
		e.HandleKey(key)

		// Entering edit mode hands the keyboard to the edit field.
		if e.editing != noNode {
			return
		}
	}
}

// HandleKey applies a single shortcut key outside of edit mode.
func (e *Editor) HandleKey(key Key) {
	if e.editing != noNode {
		return
	}

	switch key {
	case KeyTab: // Add child
		e.AddChild()

	case KeyDelete: // Delete subtree
		e.DeleteSelected()

	case KeyF2: // Edit label
		e.StartEdit()

	case KeyArrowUp, KeyArrowDown, KeyArrowLeft, KeyArrowRight:
		dir, _ := key.Direction()
		e.SelectNearby(dir.Vector())
	}
}
