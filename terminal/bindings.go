package terminal

import "strings"

// Binding is one entry of the key legend.
type Binding struct {
	Keys   string
	Action string
	Short  string // Compact form for the header legend, empty to leave out
}

// Bindings lists every input the host understands, grouped by mode.
var Bindings = map[string][]Binding{
	"normal": {
		{"Click", "Select node", ""},
		{"Double-click", "Edit node label", "Dbl-click: edit"},
		{"Drag", "Move the selected node", "Drag: move"},
		{"Tab", "Add a child to the selected node", "Tab: add child"},
		{"Delete/Backspace", "Delete the selected node and its subtree", "Del: delete"},
		{"F2", "Edit the selected node's label", "F2: edit"},
		{"Arrows", "Select the nearest node in that direction", "Arrows: navigate"},
		{"a / [ Add Node ]", "Add a node under the selection or the root", "a: add"},
		{"q", "Quit", "q: quit"},
	},
	"edit": {
		{"Enter", "Commit the label", ""},
		{"Esc", "Discard changes", ""},
		{"Ctrl+A / Ctrl+E", "Start / end of label", ""},
		{"Ctrl+B / Ctrl+F", "Back / forward one character", ""},
		{"Alt+B / Alt+F", "Back / forward one word", ""},
		{"Ctrl+W", "Delete previous word", ""},
		{"Ctrl+U / Ctrl+K", "Delete to start / end", ""},
	},
	"any": {
		{"Ctrl+C", "Quit", ""},
	},
}

// Modes is the display order of the binding groups.
var Modes = []string{"normal", "edit", "any"}

// Legend returns the compact shortcut summary for the header.
func Legend() string {
	var parts []string
	for _, b := range Bindings["normal"] {
		if b.Short != "" {
			parts = append(parts, b.Short)
		}
	}
	return strings.Join(parts, "  ")
}
