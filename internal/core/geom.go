// Package core provides fundamental types and utilities shared by the simulation
// and the terminal platform. It has no Bubble Tea dependency so game logic stays
// pure and testable.
package core

import (
	"cmp"

	"github.com/go-gl/mathgl/mgl64"
)

// Box is an axis-aligned bounding box in world space.
// All collision tests in the game go through Box.Intersects.
type Box struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// BoxFromCenter creates a box from a center point and full size.
func BoxFromCenter(center, size mgl64.Vec3) Box {
	half := size.Mul(0.5)
	return Box{
		Min: center.Sub(half),
		Max: center.Add(half),
	}
}

// Intersects reports whether two boxes overlap. Touching faces count as overlap.
func (b Box) Intersects(other Box) bool {
	return b.Min.X() <= other.Max.X() && b.Max.X() >= other.Min.X() &&
		b.Min.Y() <= other.Max.Y() && b.Max.Y() >= other.Min.Y() &&
		b.Min.Z() <= other.Max.Z() && b.Max.Z() >= other.Min.Z()
}

// Center returns the midpoint of the box.
func (b Box) Center() mgl64.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Size returns the full extent of the box on each axis.
func (b Box) Size() mgl64.Vec3 {
	return b.Max.Sub(b.Min)
}

// Rect is an integer rectangle in screen cells, used for overlays and boxes.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clamp limits v to [lo, hi]. hi wins if the bounds cross.
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	return min(max(v, lo), hi)
}
