package diagram

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/traverse"
)

// Root node defaults for a fresh document.
const (
	DefaultRootText = "Root Node"
)

// DefaultRootPosition is where the root sits in a fresh document.
var DefaultRootPosition = Vec2{X: 400, Y: 300}

// Store owns the nodes of one document and their parent links.
//
// Nodes are kept in creation order. That order is also the draw order, so the
// last node in the list is the topmost one on screen.
//
// Store is not safe for concurrent use.
type Store struct {
	nodes  []Node
	nextID int
}

// NewStore creates an empty store. The first node created must be the root.
func NewStore() *Store {
	return &Store{}
}

// NewDocument creates a store holding only the default root node.
func NewDocument() *Store {
	s := NewStore()
	s.Create(NoNode, DefaultRootText, DefaultRootPosition)
	return s
}

// Create appends a node and returns its id.
//
// Ids are handed out from a counter that only moves forward, so an id is
// never reused after its node is deleted. A parent of NoNode is only allowed
// for the first node, which becomes the root. Any other missing parent is a
// programming error and panics.
func (s *Store) Create(parent int, text string, position Vec2) int {
	if parent == NoNode {
		if len(s.nodes) > 0 || s.nextID != RootID {
			panic("diagram: store already has a root")
		}
	} else if s.indexOf(parent) < 0 {
		panic(fmt.Sprintf("diagram: parent node %d does not exist", parent))
	}

	id := s.nextID
	s.nextID++
	s.nodes = append(s.nodes, Node{
		ID:       id,
		Text:     text,
		Position: position,
		ParentID: parent,
	})
	return id
}

// Find returns the node with the given id.
func (s *Store) Find(id int) (Node, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return Node{}, false
	}
	return s.nodes[i], true
}

// Has reports whether a node with the given id exists.
func (s *Store) Has(id int) bool {
	return s.indexOf(id) >= 0
}

// Nodes returns a copy of all nodes in draw order.
func (s *Store) Nodes() []Node {
	return slices.Clone(s.nodes)
}

// Len returns the number of nodes.
func (s *Store) Len() int {
	return len(s.nodes)
}

// NextID returns the id the next created node will receive.
func (s *Store) NextID() int {
	return s.nextID
}

// Children returns the ids of the direct children of id in draw order.
func (s *Store) Children(id int) []int {
	var children []int
	for _, n := range s.nodes {
		if n.ParentID == id && n.ID != id {
			children = append(children, n.ID)
		}
	}
	return children
}

// Lines returns one connector per node whose parent exists.
func (s *Store) Lines() []Line {
	lines := make([]Line, 0, len(s.nodes))
	for _, n := range s.nodes {
		if !n.HasParent() {
			continue
		}
		parent, ok := s.Find(n.ParentID)
		if !ok {
			continue
		}
		lines = append(lines, Line{
			ParentID: parent.ID,
			ChildID:  n.ID,
			From:     parent.Position,
			To:       n.Position,
		})
	}
	return lines
}

// UpdateText replaces the label of a node. Unknown ids are ignored.
func (s *Store) UpdateText(id int, text string) {
	if i := s.indexOf(id); i >= 0 {
		s.nodes[i].Text = text
	}
}

// UpdatePosition moves a node. Unknown ids are ignored.
func (s *Store) UpdatePosition(id int, position Vec2) {
	if i := s.indexOf(id); i >= 0 {
		s.nodes[i].Position = position
	}
}

// Subtree returns id and every node reachable from it through child links,
// in draw order. It returns nil when id does not exist.
func (s *Store) Subtree(id int) []int {
	if s.indexOf(id) < 0 {
		return nil
	}

	g := s.childGraph()
	reached := make(map[int]bool)
	bf := traverse.BreadthFirst{
		Visit: func(n graph.Node) {
			reached[int(n.ID())] = true
		},
	}
	bf.Walk(g, g.Node(int64(id)), nil)

	ids := make([]int, 0, len(reached))
	for _, n := range s.nodes {
		if reached[n.ID] {
			ids = append(ids, n.ID)
		}
	}
	return ids
}

// DeleteSubtree removes id together with all of its descendants and returns
// the removed ids in draw order. Deleting the root or an unknown id does
// nothing and returns nil.
func (s *Store) DeleteSubtree(id int) []int {
	if id == RootID {
		return nil
	}
	removed := s.Subtree(id)
	if len(removed) == 0 {
		return nil
	}

	doomed := make(map[int]bool, len(removed))
	for _, rid := range removed {
		doomed[rid] = true
	}
	s.nodes = slices.DeleteFunc(s.nodes, func(n Node) bool {
		return doomed[n.ID]
	})
	return removed
}

// childGraph builds a directed parent -> child graph of the current nodes.
// The breadth-first walk keeps its own visited set, so parent links that
// form a cycle still terminate.
func (s *Store) childGraph() *simple.DirectedGraph {
	g := simple.NewDirectedGraph()
	for _, n := range s.nodes {
		if g.Node(int64(n.ID)) == nil {
			g.AddNode(simple.Node(n.ID))
		}
	}
	for _, n := range s.nodes {
		if !n.HasParent() || n.ParentID == n.ID {
			continue
		}
		g.SetEdge(g.NewEdge(simple.Node(n.ParentID), simple.Node(n.ID)))
	}
	return g
}

func (s *Store) indexOf(id int) int {
	for i := range s.nodes {
		if s.nodes[i].ID == id {
			return i
		}
	}
	return -1
}
