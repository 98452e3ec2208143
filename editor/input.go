package editor

import (
	"mindmap/diagram"
	"slices"
	"time"
)

// Input is everything the host observed during one frame.
//
// At most one of Clicked, DragStarted and DragReleased is expected per
// frame. Dragging stays true for every frame the pointer moves with the
// button held, including the frame the drag starts.
type Input struct {
	Pointer *diagram.Vec2 // World position of the pointer, nil when absent

	Clicked      bool // Button released without moving
	Dragging     bool // Button held while moving
	DragStarted  bool // First frame of a drag
	DragReleased bool // Button released after a drag

	Keys []Key // Keys pressed this frame

	AddNode bool // Toolbar "Add Node" button

	// Edit widget state, only meaningful while a node is being edited.
	EditText      *string // Current contents of the field, nil when unchanged
	EditFocused   bool    // Field holds keyboard focus
	EditLostFocus bool    // Field gave up focus this frame

	Now time.Time
}

// Pressed reports whether k was pressed this frame.
func (in Input) Pressed(k Key) bool {
	return slices.Contains(in.Keys, k)
}

// At returns a copy of in with the pointer set to p.
func (in Input) At(p diagram.Vec2) Input {
	in.Pointer = &p
	return in
}
