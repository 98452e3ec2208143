package editor

// Mode summarizes the editor's transient state for display
type Mode int

const (
	ModeNormal Mode = iota // Selecting and navigating
	ModeEdit               // Editing a node label in place
	ModeDrag               // Moving a node with the pointer
)

// String returns the mode name for display
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeEdit:
		return "EDIT"
	case ModeDrag:
		return "DRAG"
	default:
		return "UNKNOWN"
	}
}

// Mode returns the current mode. Editing and dragging never overlap.
func (e *Editor) Mode() Mode {
	switch {
	case e.editing != noNode:
		return ModeEdit
	case e.dragging != noNode:
		return ModeDrag
	default:
		return ModeNormal
	}
}
