package editor

import (
	"math"
	"mindmap/diagram"
)

// Nearest picks the node best reached from current when moving in direction
// d, which must be a unit vector.
//
// Only nodes strictly ahead of current count. Each candidate scores its
// distance scaled by (1 + penalty), where penalty grows from 0 for a node
// straight ahead to nearly 1 for one almost sideways. The lowest score wins
// and the first of equal scores is kept.
func Nearest(nodes []diagram.Node, current diagram.Node, d diagram.Vec2) (int, bool) {
	best := noNode
	bestScore := math.Inf(1)

	for _, n := range nodes {
		if n.ID == current.ID {
			continue
		}

		delta := n.Position.Sub(current.Position)
		along := delta.Dot(d)
		if along <= 0 {
			continue
		}

		dist := delta.Length()
		penalty := 1 - math.Abs(along)/dist
		score := dist * (1 + penalty)

		if score < bestScore {
			bestScore = score
			best = n.ID
		}
	}

	return best, best != noNode
}

// SelectNearby moves the selection in direction d. With nothing selected the
// first node is selected; with no node ahead the selection stays put.
func (e *Editor) SelectNearby(d diagram.Vec2) {
	nodes := e.store.Nodes()

	if e.selected == noNode {
		if len(nodes) > 0 {
			e.selected = nodes[0].ID
		}
		return
	}

	current, ok := e.store.Find(e.selected)
	if !ok {
		return
	}
	if id, ok := Nearest(nodes, current, d); ok {
		e.selected = id
	}
}
