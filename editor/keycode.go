package editor

import "mindmap/diagram"

// Key is a one-shot key press delivered with a frame.
type Key int

const (
	KeyNone Key = iota
	KeyTab
	KeyDelete
	KeyF2
	KeyEscape
	KeyEnter
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
)

// String returns the key name for display and logging.
func (k Key) String() string {
	switch k {
	case KeyTab:
		return "Tab"
	case KeyDelete:
		return "Delete"
	case KeyF2:
		return "F2"
	case KeyEscape:
		return "Escape"
	case KeyEnter:
		return "Enter"
	case KeyArrowUp:
		return "ArrowUp"
	case KeyArrowDown:
		return "ArrowDown"
	case KeyArrowLeft:
		return "ArrowLeft"
	case KeyArrowRight:
		return "ArrowRight"
	default:
		return "None"
	}
}

// Direction returns the screen direction of an arrow key.
func (k Key) Direction() (diagram.Direction, bool) {
	switch k {
	case KeyArrowUp:
		return diagram.North, true
	case KeyArrowDown:
		return diagram.South, true
	case KeyArrowLeft:
		return diagram.West, true
	case KeyArrowRight:
		return diagram.East, true
	default:
		return 0, false
	}
}

// shortcutOrder is the order shortcut keys are handled within one frame.
var shortcutOrder = []Key{
	KeyTab,
	KeyDelete,
	KeyF2,
	KeyArrowUp,
	KeyArrowDown,
	KeyArrowLeft,
	KeyArrowRight,
}
