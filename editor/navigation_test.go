package editor

import (
	"mindmap/diagram"
	"testing"

	"pgregory.net/rapid"
)

func TestNearest(t *testing.T) {
	center := diagram.Node{ID: 0, Position: diagram.Vec2{X: 0, Y: 0}}

	tests := []struct {
		name   string
		others []diagram.Node
		dir    diagram.Direction
		want   int
		found  bool
	}{
		{
			name: "straight ahead beats closer diagonal",
			others: []diagram.Node{
				{ID: 1, Position: diagram.Vec2{X: 80, Y: 80}},
				{ID: 2, Position: diagram.Vec2{X: 120, Y: 0}},
			},
			dir:   diagram.East,
			want:  2,
			found: true,
		},
		{
			name: "closer wins when aligned",
			others: []diagram.Node{
				{ID: 1, Position: diagram.Vec2{X: 0, Y: -300}},
				{ID: 2, Position: diagram.Vec2{X: 0, Y: -100}},
			},
			dir:   diagram.North,
			want:  2,
			found: true,
		},
		{
			name: "perpendicular is ignored",
			others: []diagram.Node{
				{ID: 1, Position: diagram.Vec2{X: 0, Y: 100}},
			},
			dir:   diagram.East,
			found: false,
		},
		{
			name: "behind is ignored",
			others: []diagram.Node{
				{ID: 1, Position: diagram.Vec2{X: -50, Y: 0}},
			},
			dir:   diagram.East,
			found: false,
		},
		{
			name: "first of equal scores wins",
			others: []diagram.Node{
				{ID: 1, Position: diagram.Vec2{X: 100, Y: -40}},
				{ID: 2, Position: diagram.Vec2{X: 100, Y: 40}},
			},
			dir:   diagram.East,
			want:  1,
			found: true,
		},
		{
			name: "coincident node is ignored",
			others: []diagram.Node{
				{ID: 1, Position: diagram.Vec2{X: 0, Y: 0}},
			},
			dir:   diagram.South,
			found: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nodes := append([]diagram.Node{center}, tt.others...)
			got, ok := Nearest(nodes, center, tt.dir.Vector())
			if ok != tt.found {
				t.Fatalf("Expected found %v, got %v (id %d)", tt.found, ok, got)
			}
			if ok && got != tt.want {
				t.Errorf("Expected node %d, got %d", tt.want, got)
			}
		})
	}
}

func TestSelectNearbyWithoutSelection(t *testing.T) {
	ed := newTestEditor()
	ed.Step(Input{AddNode: true, Now: t0})

	f := ed.Step(keys(t0, KeyArrowDown))
	if f.Selected != 0 {
		t.Errorf("Expected first node selected, got %d", f.Selected)
	}
}

func TestSelectNearbyNoCandidate(t *testing.T) {
	ed := newTestEditor()
	ed.Select(0)
	ed.Step(keys(t0, KeyTab)) // node 1 down-right of root, selected

	f := ed.Step(keys(t0, KeyArrowRight))
	if f.Selected != 1 {
		t.Errorf("Expected selection to stay on 1, got %d", f.Selected)
	}

	f = ed.Step(keys(t0, KeyArrowUp))
	if f.Selected != 0 {
		t.Errorf("Expected root above node 1, got %d", f.Selected)
	}
}

func TestArrowKeysMapToDirections(t *testing.T) {
	ed := newTestEditor()
	s := ed.Store()
	s.Create(0, "east", diagram.Vec2{X: 600, Y: 300})
	s.Create(0, "west", diagram.Vec2{X: 200, Y: 300})
	s.Create(0, "north", diagram.Vec2{X: 400, Y: 100})
	s.Create(0, "south", diagram.Vec2{X: 400, Y: 500})

	tests := []struct {
		key  Key
		want int
	}{
		{KeyArrowRight, 1},
		{KeyArrowLeft, 2},
		{KeyArrowUp, 3},
		{KeyArrowDown, 4},
	}

	for _, tt := range tests {
		t.Run(tt.key.String(), func(t *testing.T) {
			ed.Select(0)
			f := ed.Step(keys(t0, tt.key))
			if f.Selected != tt.want {
				t.Errorf("Expected %d, got %d", tt.want, f.Selected)
			}
		})
	}
}

// Replaying the same layout and direction lands on the same node, and the
// chosen node is always ahead of the starting one.
func TestPropertyNearestDeterministic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 12).Draw(t, "n")
		nodes := make([]diagram.Node, n)
		for i := range nodes {
			nodes[i] = diagram.Node{
				ID: i,
				Position: diagram.Vec2{
					X: float64(rapid.IntRange(-500, 500).Draw(t, "x")),
					Y: float64(rapid.IntRange(-500, 500).Draw(t, "y")),
				},
			}
		}
		current := nodes[rapid.IntRange(0, n-1).Draw(t, "current")]
		dir := diagram.Direction(rapid.IntRange(0, 3).Draw(t, "dir"))

		first, ok1 := Nearest(nodes, current, dir.Vector())
		second, ok2 := Nearest(nodes, current, dir.Vector())
		if first != second || ok1 != ok2 {
			t.Fatalf("non-deterministic: %d/%v then %d/%v", first, ok1, second, ok2)
		}
		if !ok1 {
			return
		}

		target := nodes[first]
		if target.Position.Sub(current.Position).Dot(dir.Vector()) <= 0 {
			t.Fatalf("picked node %d which is not ahead when moving %s", first, dir)
		}
	})
}
