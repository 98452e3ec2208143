// Package terminal runs the mind map editor on a tcell screen.
//
// The host owns everything the interaction engine leaves outside: polling
// key and mouse events, telling clicks from drags, the in-place text field,
// and putting the rendered canvas on screen.
package terminal

import (
	"context"
	"log/slog"
	"mindmap/canvas"
	"mindmap/diagram"
	"mindmap/editor"
	"mindmap/render"
	"time"

	"github.com/gdamore/tcell/v2"
)

// Host connects an editor to a screen.
type Host struct {
	screen   tcell.Screen
	editor   *editor.Editor
	renderer *render.Renderer
	palette  Palette
	log      *slog.Logger
	now      func() time.Time

	canvas  *canvas.MatrixCanvas
	tracker Tracker
	field   *TextField
	frame   editor.Frame
	layout  render.Layout
}

// NewHost creates a host. The screen must already be initialized.
func NewHost(screen tcell.Screen, ed *editor.Editor, r *render.Renderer, p Palette, log *slog.Logger) *Host {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Host{
		screen:   screen,
		editor:   ed,
		renderer: r,
		palette:  p,
		log:      log,
		now:      time.Now,
		field:    NewTextField(),
		frame:    ed.Frame(),
	}
}

// SetClock replaces the clock used to timestamp input frames.
func (h *Host) SetClock(now func() time.Time) {
	h.now = now
}

// Frame returns the most recent editor frame.
func (h *Host) Frame() editor.Frame {
	return h.frame
}

// Field returns the edit widget.
func (h *Host) Field() *TextField {
	return h.field
}

// Run draws and handles events until the user quits or ctx is done.
func (h *Host) Run(ctx context.Context) error {
	h.screen.EnableMouse()
	h.screen.HideCursor()
	h.resize()
	h.Draw()

	stop := context.AfterFunc(ctx, func() {
		h.screen.PostEvent(tcell.NewEventInterrupt(nil))
	})
	defer stop()

	for {
		ev := h.screen.PollEvent()
		if ev == nil {
			// Screen was finalized
			return nil
		}
		if _, ok := ev.(*tcell.EventInterrupt); ok && ctx.Err() != nil {
			h.log.Info("interrupted")
			return nil
		}
		if h.HandleEvent(ev) {
			h.log.Info("quit")
			return nil
		}
		h.Draw()
	}
}

// HandleEvent processes one screen event and reports whether to quit.
func (h *Host) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		h.resize()
		h.screen.Sync()
	case *tcell.EventKey:
		return h.handleKey(ev)
	case *tcell.EventMouse:
		h.handleMouse(ev)
	}
	return false
}

func (h *Host) editing() bool {
	return h.frame.Editing != diagram.NoNode
}

func (h *Host) handleKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlC {
		return true
	}

	if h.editing() {
		h.handleEditKey(ev)
		return false
	}

	if ev.Key() == tcell.KeyRune {
		switch ev.Rune() {
		case 'q':
			return true
		case 'a':
			h.step(editor.Input{AddNode: true})
		}
		return false
	}

	if k, ok := keyFor(ev.Key()); ok {
		h.step(editor.Input{Keys: []editor.Key{k}})
	}
	return false
}

// handleEditKey routes keys to the text field. Enter makes the field give
// up focus in the same frame it is reported, which is what commits.
func (h *Host) handleEditKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEnter:
		h.field.Blur()
		h.step(editor.Input{Keys: []editor.Key{editor.KeyEnter}, EditLostFocus: true})
	case tcell.KeyEscape:
		h.step(editor.Input{Keys: []editor.Key{editor.KeyEscape}})
	default:
		if h.field.HandleKey(ev) {
			text := h.field.Text()
			h.step(editor.Input{EditText: &text})
		}
	}
}

func keyFor(k tcell.Key) (editor.Key, bool) {
	switch k {
	case tcell.KeyTab:
		return editor.KeyTab, true
	case tcell.KeyDelete, tcell.KeyBackspace, tcell.KeyBackspace2:
		return editor.KeyDelete, true
	case tcell.KeyF2:
		return editor.KeyF2, true
	case tcell.KeyEscape:
		return editor.KeyEscape, true
	case tcell.KeyEnter:
		return editor.KeyEnter, true
	case tcell.KeyUp:
		return editor.KeyArrowUp, true
	case tcell.KeyDown:
		return editor.KeyArrowDown, true
	case tcell.KeyLeft:
		return editor.KeyArrowLeft, true
	case tcell.KeyRight:
		return editor.KeyArrowRight, true
	default:
		return editor.KeyNone, false
	}
}

func (h *Host) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	down := ev.Buttons()&tcell.Button1 != 0

	for _, g := range h.tracker.Update(canvas.Point{X: x, Y: y}, down) {
		h.handleGesture(g)
	}
}

func (h *Host) handleGesture(g Gesture) {
	view := h.renderer.Viewport()
	world := view.ToWorld(g.At)

	switch g.Kind {
	case GestureClick:
		if !view.InDiagram(g.At) {
			if h.layout.AddButton.Contains(g.At) {
				h.step(editor.Input{AddNode: true})
			}
			return
		}
		in := editor.Input{Pointer: &world, Clicked: true}
		if h.editing() && h.field.Focused() {
			// Clicking the canvas takes focus from the field
			h.field.Blur()
			in.EditLostFocus = true
		}
		h.step(in)

	case GestureDragStart:
		h.step(editor.Input{Pointer: &world, DragStarted: true, Dragging: true})

	case GestureDrag:
		h.step(editor.Input{Pointer: &world, Dragging: true})

	case GestureDragRelease:
		h.step(editor.Input{Pointer: &world, DragReleased: true})
	}
}

// step runs one editor frame and keeps the text field in sync with it.
func (h *Host) step(in editor.Input) {
	in.Now = h.now()
	in.EditFocused = h.field.Focused()

	f := h.editor.Step(in)

	switch {
	case f.Editing == diagram.NoNode:
		h.field.Reset()
	case f.EditStarted:
		h.field.SetText(f.EditBuffer)
		h.field.Focus()
	case f.RequestFocus:
		h.field.Focus()
	}

	h.frame = f
}

func (h *Host) resize() {
	w, ht := h.screen.Size()
	c, err := canvas.NewMatrixCanvas(w, ht)
	if err != nil {
		h.log.Warn("screen too small", "width", w, "height", ht)
		h.canvas = nil
		return
	}
	h.canvas = c
}

// Draw renders the current frame and shows it.
func (h *Host) Draw() {
	if h.canvas == nil {
		return
	}

	var field *render.FieldView
	if h.editing() {
		field = &render.FieldView{Text: h.field.Text(), Cursor: h.field.Cursor()}
	}
	h.layout = h.renderer.Render(h.canvas, h.frame, field)

	h.screen.Clear()
	w, ht := h.canvas.Size()
	for y := 0; y < ht; y++ {
		for x := 0; x < w; x++ {
			cell := h.canvas.Get(canvas.Point{X: x, Y: y})
			if cell.Rune == '\x00' {
				continue
			}
			h.screen.SetContent(x, y, cell.Rune, nil, h.palette.Style(cell.Class))
		}
	}
	h.screen.Show()
}

// Layout returns where the header controls were last drawn.
func (h *Host) Layout() render.Layout {
	return h.layout
}
