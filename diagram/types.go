// Package diagram contains the node tree edited on the mind map canvas.
package diagram

import (
	"math"
	"mindmap/geometry"
)

// NoNode is the id used wherever a node reference is absent.
const NoNode = -1

// RootID is the id of the root node. The root has no parent and is never deleted.
const RootID = 0

// Node box dimensions in world units. Every node has the same size.
const (
	NodeWidth  = 100.0
	NodeHeight = 40.0
)

// Vec2 is a 2D vector or position in world units.
// X grows rightward, Y grows downward.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 {
	return geometry.Dot(v.X, v.Y, o.X, o.Y)
}

// Length returns the Euclidean length of v.
func (v Vec2) Length() float64 {
	return geometry.Length(v.X, v.Y)
}

// IsFinite reports whether both components are finite numbers.
func (v Vec2) IsFinite() bool {
	return !math.IsInf(v.X, 0) && !math.IsNaN(v.X) && !math.IsInf(v.Y, 0) && !math.IsNaN(v.Y)
}

// Direction represents a cardinal direction on screen.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// String returns the string representation of a Direction.
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}

// Opposite returns the opposite direction.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case East:
		return West
	case South:
		return North
	case West:
		return East
	default:
		return d
	}
}

// Vector returns the unit vector pointing in direction d.
// North points up the screen, which is negative Y.
func (d Direction) Vector() Vec2 {
	switch d {
	case North:
		return Vec2{X: 0, Y: -1}
	case East:
		return Vec2{X: 1, Y: 0}
	case South:
		return Vec2{X: 0, Y: 1}
	case West:
		return Vec2{X: -1, Y: 0}
	default:
		return Vec2{}
	}
}

// Rect is an axis aligned rectangle. Min is inclusive, Max is exclusive.
type Rect struct {
	Min, Max Vec2
}

// RectFromCenter returns the rectangle of the given size centered on c.
func RectFromCenter(c Vec2, width, height float64) Rect {
	half := Vec2{X: width / 2, Y: height / 2}
	return Rect{Min: c.Sub(half), Max: c.Add(half)}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{X: (r.Min.X + r.Max.X) / 2, Y: (r.Min.Y + r.Max.Y) / 2}
}

// Contains checks if a point is within the rectangle.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Min.X && p.X < r.Max.X &&
		p.Y >= r.Min.Y && p.Y < r.Max.Y
}

// Node is a labeled box on the canvas.
type Node struct {
	ID       int
	Text     string
	Position Vec2 // Center of the box
	ParentID int  // NoNode for the root
}

// IsRoot reports whether the node is the root of the tree.
func (n Node) IsRoot() bool {
	return n.ID == RootID
}

// HasParent reports whether the node is attached to a parent.
func (n Node) HasParent() bool {
	return n.ParentID != NoNode
}

// Bounds returns the box the node occupies.
func (n Node) Bounds() Rect {
	return RectFromCenter(n.Position, NodeWidth, NodeHeight)
}

// Contains checks if a point is inside the node's box.
func (n Node) Contains(p Vec2) bool {
	return n.Bounds().Contains(p)
}

// Line is the connector drawn between a node and its parent.
type Line struct {
	ParentID int
	ChildID  int
	From     Vec2 // Parent center
	To       Vec2 // Child center
}
