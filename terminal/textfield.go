package terminal

import (
	"github.com/gdamore/tcell/v2"
)

// TextField is the single-line input shown over the node being edited.
// The cursor is a rune index into the buffer.
type TextField struct {
	buffer  []rune
	cursor  int
	focused bool
}

// NewTextField returns an empty, unfocused field.
func NewTextField() *TextField {
	return &TextField{}
}

// SetText replaces the contents and puts the cursor at the end.
func (f *TextField) SetText(s string) {
	f.buffer = []rune(s)
	f.cursor = len(f.buffer)
}

// Text returns the current contents.
func (f *TextField) Text() string {
	return string(f.buffer)
}

// Cursor returns the cursor position in runes.
func (f *TextField) Cursor() int {
	return f.cursor
}

// Focus gives the field keyboard focus.
func (f *TextField) Focus() { f.focused = true }

// Blur takes keyboard focus away.
func (f *TextField) Blur() { f.focused = false }

// Focused reports whether the field has keyboard focus.
func (f *TextField) Focused() bool { return f.focused }

// Reset empties and unfocuses the field.
func (f *TextField) Reset() {
	f.buffer = f.buffer[:0]
	f.cursor = 0
	f.focused = false
}

// HandleKey applies an editing key and reports whether the text changed.
// Keys the field does not know are ignored.
func (f *TextField) HandleKey(ev *tcell.EventKey) bool {
	if ev.Modifiers()&tcell.ModAlt != 0 && ev.Key() == tcell.KeyRune {
		switch ev.Rune() {
		case 'f':
			f.moveWordForward()
		case 'b':
			f.moveWordBackward()
		}
		return false
	}

	switch ev.Key() {
	case tcell.KeyRune:
		f.Insert(ev.Rune())
		return true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return f.deleteBackward()
	case tcell.KeyDelete, tcell.KeyCtrlD:
		return f.deleteForward()
	case tcell.KeyCtrlW:
		return f.deleteWordBackward()
	case tcell.KeyCtrlU:
		return f.deleteToStart()
	case tcell.KeyCtrlK:
		return f.deleteToEnd()
	case tcell.KeyLeft, tcell.KeyCtrlB:
		f.moveBackward()
	case tcell.KeyRight, tcell.KeyCtrlF:
		f.moveForward()
	case tcell.KeyHome, tcell.KeyCtrlA:
		f.cursor = 0
	case tcell.KeyEnd, tcell.KeyCtrlE:
		f.cursor = len(f.buffer)
	}
	return false
}

// Insert adds r at the cursor.
func (f *TextField) Insert(r rune) {
	f.buffer = append(f.buffer, 0)
	copy(f.buffer[f.cursor+1:], f.buffer[f.cursor:])
	f.buffer[f.cursor] = r
	f.cursor++
}

func (f *TextField) deleteBackward() bool {
	if f.cursor == 0 {
		return false
	}
	f.buffer = append(f.buffer[:f.cursor-1], f.buffer[f.cursor:]...)
	f.cursor--
	return true
}

func (f *TextField) deleteForward() bool {
	if f.cursor >= len(f.buffer) {
		return false
	}
	f.buffer = append(f.buffer[:f.cursor], f.buffer[f.cursor+1:]...)
	return true
}

// deleteWordBackward deletes the previous word (Ctrl+W)
func (f *TextField) deleteWordBackward() bool {
	if f.cursor == 0 {
		return false
	}

	start := f.cursor - 1

	// Skip any trailing spaces
	for start >= 0 && f.buffer[start] == ' ' {
		start--
	}

	// Skip the word itself
	for start >= 0 && f.buffer[start] != ' ' {
		start--
	}

	// start is now one position before the word start
	start++

	f.buffer = append(f.buffer[:start], f.buffer[f.cursor:]...)
	f.cursor = start
	return true
}

// deleteToStart deletes from the cursor to the start of the field (Ctrl+U)
func (f *TextField) deleteToStart() bool {
	if f.cursor == 0 {
		return false
	}
	f.buffer = append(f.buffer[:0], f.buffer[f.cursor:]...)
	f.cursor = 0
	return true
}

// deleteToEnd deletes from the cursor to the end of the field (Ctrl+K)
func (f *TextField) deleteToEnd() bool {
	if f.cursor >= len(f.buffer) {
		return false
	}
	f.buffer = f.buffer[:f.cursor]
	return true
}

func (f *TextField) moveForward() {
	if f.cursor < len(f.buffer) {
		f.cursor++
	}
}

func (f *TextField) moveBackward() {
	if f.cursor > 0 {
		f.cursor--
	}
}

// moveWordForward moves the cursor to the beginning of the next word (Alt+F)
func (f *TextField) moveWordForward() {
	// Skip current word
	for f.cursor < len(f.buffer) && f.buffer[f.cursor] != ' ' {
		f.cursor++
	}

	// Skip spaces
	for f.cursor < len(f.buffer) && f.buffer[f.cursor] == ' ' {
		f.cursor++
	}
}

// moveWordBackward moves the cursor to the beginning of the previous word (Alt+B)
func (f *TextField) moveWordBackward() {
	if f.cursor == 0 {
		return
	}

	f.cursor--

	// Skip spaces
	for f.cursor > 0 && f.buffer[f.cursor] == ' ' {
		f.cursor--
	}

	// Find beginning of word
	for f.cursor > 0 && f.buffer[f.cursor-1] != ' ' {
		f.cursor--
	}
}
