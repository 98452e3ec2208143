package terminal

import "mindmap/canvas"

// GestureKind is what a change in mouse button state amounted to.
type GestureKind int

const (
	GestureMove        GestureKind = iota // Pointer moved with the button up
	GestureClick                          // Button released where it was pressed
	GestureDragStart                      // Pointer first moved with the button held
	GestureDrag                           // Pointer moved further with the button held
	GestureDragRelease                    // Button released after dragging
)

// String returns the gesture name for logging.
func (k GestureKind) String() string {
	switch k {
	case GestureMove:
		return "move"
	case GestureClick:
		return "click"
	case GestureDragStart:
		return "drag-start"
	case GestureDrag:
		return "drag"
	case GestureDragRelease:
		return "drag-release"
	default:
		return "unknown"
	}
}

// Gesture is one pointer event for the editor.
type Gesture struct {
	Kind GestureKind
	At   canvas.Point
}

// Tracker turns raw button-down samples into clicks and drags. A press
// that is released without the pointer leaving its cell is a click.
type Tracker struct {
	pressed bool
	moved   bool
	origin  canvas.Point
	last    canvas.Point
}

// Update feeds one mouse sample and returns the gestures it completes, in
// order. A drag reports its start at the press position and then a drag at
// the current position.
func (t *Tracker) Update(p canvas.Point, down bool) []Gesture {
	switch {
	case !t.pressed && down:
		t.pressed, t.moved = true, false
		t.origin, t.last = p, p
		return nil

	case t.pressed && down:
		if p == t.last {
			return nil
		}
		t.last = p
		if !t.moved {
			t.moved = true
			return []Gesture{{GestureDragStart, t.origin}, {GestureDrag, p}}
		}
		return []Gesture{{GestureDrag, p}}

	case t.pressed && !down:
		t.pressed = false
		t.last = p
		if t.moved {
			return []Gesture{{GestureDragRelease, p}}
		}
		return []Gesture{{GestureClick, p}}

	default:
		if p == t.last {
			return nil
		}
		t.last = p
		return []Gesture{{GestureMove, p}}
	}
}

// Pressed reports whether the button is currently held.
func (t *Tracker) Pressed() bool {
	return t.pressed
}
