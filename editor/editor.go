// Package editor implements the interaction engine of the mind map canvas.
//
// An Editor is a state machine stepped once per input frame. The host
// collects pointer, button and key signals into an Input, calls Step, and
// renders the returned Frame. The editor never reads the clock or touches
// the screen itself.
package editor

import (
	"fmt"
	"log/slog"
	"mindmap/diagram"
	"time"
)

const noNode = diagram.NoNode

// Options tunes the interaction engine.
type Options struct {
	DoubleClick time.Duration // Max gap between two clicks of a double-click
	ChildOffset diagram.Vec2  // Offset of a keyboard-added child from its parent
	Logger      *slog.Logger
}

// DefaultOptions returns the stock interaction settings.
func DefaultOptions() Options {
	return Options{
		DoubleClick: 500 * time.Millisecond,
		ChildOffset: diagram.Vec2{X: 150, Y: 80},
	}
}

// clickRecord remembers the last plain click for double-click detection.
type clickRecord struct {
	node int
	at   time.Time
}

// Editor owns the session state layered over a diagram.Store.
type Editor struct {
	store *diagram.Store
	opts  Options
	log   *slog.Logger

	selected int // Currently selected node ID (-1 for none)
	editing  int // Node whose label is being edited (-1 for none)

	// Edit state
	editBuffer  string // Working copy of the label while editing
	editStarted bool   // Edit mode was entered during the current step

	// Click timing
	lastClick *clickRecord

	// Drag state
	dragging   int          // Node being moved (-1 for none)
	dragOffset diagram.Vec2 // Pointer position minus node center at drag start
}

// NewEditor creates an editor over store. A nil store starts a fresh
// document with only the root node.
func NewEditor(store *diagram.Store, opts Options) *Editor {
	if store == nil {
		store = diagram.NewDocument()
	}
	defaults := DefaultOptions()
	if opts.DoubleClick <= 0 {
		opts.DoubleClick = defaults.DoubleClick
	}
	if opts.ChildOffset == (diagram.Vec2{}) {
		opts.ChildOffset = defaults.ChildOffset
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Editor{
		store:    store,
		opts:     opts,
		log:      logger,
		selected: noNode,
		editing:  noNode,
		dragging: noNode,
	}
}

// Store returns the underlying graph store.
func (e *Editor) Store() *diagram.Store {
	return e.store
}

// Selected returns the selected node id, or NoNode.
func (e *Editor) Selected() int {
	return e.selected
}

// Editing returns the id of the node being edited, or NoNode.
func (e *Editor) Editing() int {
	return e.editing
}

// EditBuffer returns the working copy of the label being edited.
func (e *Editor) EditBuffer() string {
	return e.editBuffer
}

// Dragging returns the id of the node being dragged, or NoNode.
func (e *Editor) Dragging() int {
	return e.dragging
}

// Select selects id if it exists. NoNode clears the selection.
func (e *Editor) Select(id int) {
	if id == noNode || e.store.Has(id) {
		e.selected = id
	}
}

// Step consumes one frame of input and returns what to draw.
//
// The phases run in a fixed order: toolbar, edit field, pointer hit-testing
// and drag motion, click resolution, drag release, keyboard shortcuts.
// Hit-testing uses the node positions as they were when the frame began.
func (e *Editor) Step(in Input) Frame {
	e.editStarted = false

	if in.AddNode {
		e.AddNode()
	}

	snapshot := e.store.Nodes()

	e.handleEditField(in)

	clicked := e.handlePointer(snapshot, in)
	if clicked != noNode {
		e.resolveClick(clicked, in.Now)
	} else if in.Clicked && !in.Dragging {
		e.clearClick()
	}

	if in.DragReleased {
		e.endDrag()
	}

	if e.editing == noNode {
		e.handleShortcuts(in)
	}

	e.reconcile()

	frame := e.Frame()
	frame.RequestFocus = e.editing != noNode && !in.EditFocused
	return frame
}

// reconcile drops session references to nodes that no longer exist.
func (e *Editor) reconcile() {
	if e.selected != noNode && !e.store.Has(e.selected) {
		e.selected = noNode
	}
	if e.editing != noNode && !e.store.Has(e.editing) {
		e.editing = noNode
		e.editBuffer = ""
	}
	if e.dragging != noNode && !e.store.Has(e.dragging) {
		e.dragging = noNode
		e.dragOffset = diagram.Vec2{}
	}
	if e.lastClick != nil && !e.store.Has(e.lastClick.node) {
		e.lastClick = nil
	}
}

// AddNode adds a node the way the toolbar button does: as a child of the
// selection, or of the root when nothing is selected. Nodes are spread over
// a fixed grid by id. The selection does not change.
func (e *Editor) AddNode() int {
	parent := e.selected
	if parent == noNode || !e.store.Has(parent) {
		parent = diagram.RootID
	}

	id := e.store.NextID()
	pos := diagram.Vec2{
		X: 200 + float64((id*100)%400),
		Y: 200 + float64((id*50)%200),
	}
	e.store.Create(parent, nodeLabel(id), pos)
	e.log.Debug("node added", "id", id, "parent", parent, "source", "toolbar")
	return id
}

// AddChild adds a child under the selected node, offset from it, and selects
// the new node. It returns NoNode when nothing is selected.
func (e *Editor) AddChild() int {
	parent, ok := e.store.Find(e.selected)
	if !ok {
		return noNode
	}

	id := e.store.NextID()
	e.store.Create(parent.ID, nodeLabel(id), parent.Position.Add(e.opts.ChildOffset))
	e.selected = id
	e.log.Debug("node added", "id", id, "parent", parent.ID, "source", "keyboard")
	return id
}

// DeleteSelected removes the selected node and its descendants and clears
// the selection. The root cannot be deleted.
func (e *Editor) DeleteSelected() []int {
	if e.selected == noNode || e.selected == diagram.RootID {
		return nil
	}
	removed := e.store.DeleteSubtree(e.selected)
	if len(removed) == 0 {
		return nil
	}
	e.selected = noNode
	e.reconcile()
	e.log.Debug("subtree deleted", "ids", removed)
	return removed
}

func nodeLabel(id int) string {
	return fmt.Sprintf("Node %d", id)
}
