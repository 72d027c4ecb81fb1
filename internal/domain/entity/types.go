package entity

import "math"

// EntityID is a unique identifier for an entity
type EntityID uint32

// NoEntity is the zero handle. Registries never hand it out.
const NoEntity EntityID = 0

// Layer is a collision layer bitmask
type Layer uint32

const (
	LayerGround Layer = 1 << iota
	LayerPlatform
	LayerPlayer
	LayerEnemy
	LayerHazard
)

// LayerNone matches nothing
const LayerNone Layer = 0

// Has reports whether any bit of other is set in l
func (l Layer) Has(other Layer) bool {
	return l&other != 0
}

// Vec2 is a 2D vector in world units. Y points up.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v * s
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Len returns the vector length
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Dist returns the distance between v and o
func (v Vec2) Dist(o Vec2) float64 { return v.Sub(o).Len() }

// Normalize returns the unit vector, or zero for a zero vector
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// IsZero reports whether both components are zero
func (v Vec2) IsZero() bool { return v.X == 0 && v.Y == 0 }

// Rect is an axis-aligned box given by its bottom-left corner and size
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Center returns the box center
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.Width/2, r.Y + r.Height/2}
}

// Overlaps reports whether two boxes intersect. Touching edges do not count.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.Width && o.X < r.X+r.Width &&
		r.Y < o.Y+o.Height && o.Y < r.Y+r.Height
}

// Contains reports whether p lies inside the box
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X <= r.X+r.Width && p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// Union returns the smallest box covering both. A zero-size receiver is
// treated as empty.
func (r Rect) Union(o Rect) Rect {
	if r.Width <= 0 && r.Height <= 0 {
		return o
	}
	minX, minY := math.Min(r.X, o.X), math.Min(r.Y, o.Y)
	maxX := math.Max(r.X+r.Width, o.X+o.Width)
	maxY := math.Max(r.Y+r.Height, o.Y+o.Height)
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// RayHit describes the first thing a ray struck
type RayHit struct {
	Point    Vec2
	Normal   Vec2
	Distance float64
	Entity   EntityID // NoEntity for static geometry
	Layer    Layer
}

// Sign returns -1, 0 or 1
func Sign(x float64) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
