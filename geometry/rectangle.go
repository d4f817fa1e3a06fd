package geometry

import "fmt"

// Rectangle is an axis-aligned box anchored at its top-left corner
type Rectangle[T Number] struct {
	X T `json:"x"`
	Y T `json:"y"`
	W T `json:"w"`
	H T `json:"h"`
}

// Rect is shorthand for building a Rectangle
func Rect[T Number](x, y, w, h T) Rectangle[T] {
	return Rectangle[T]{X: x, Y: y, W: w, H: h}
}

// Center returns (X + W/2, Y + H/2)
func (r Rectangle[T]) Center() Point[T] {
	return Point[T]{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Position returns the top-left corner
func (r Rectangle[T]) Position() Point[T] {
	return Point[T]{X: r.X, Y: r.Y}
}

// Size returns (W, H)
func (r Rectangle[T]) Size() Point[T] {
	return Point[T]{X: r.W, Y: r.H}
}

// Right returns the x coordinate of the right edge
func (r Rectangle[T]) Right() T {
	return r.X + r.W
}

// Bottom returns the y coordinate of the bottom edge
func (r Rectangle[T]) Bottom() T {
	return r.Y + r.H
}

// Area returns W*H
func (r Rectangle[T]) Area() T {
	return r.W * r.H
}

// Empty reports whether the rectangle has no area
func (r Rectangle[T]) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// ContainsPoint reports whether p lies inside the half-open box [X, X+W) x [Y, Y+H)
func (r Rectangle[T]) ContainsPoint(p Point[T]) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// ContainsRect reports whether o lies entirely within r, edges included
func (r Rectangle[T]) ContainsRect(o Rectangle[T]) bool {
	return o.X >= r.X && o.Y >= r.Y && o.Right() <= r.Right() && o.Bottom() <= r.Bottom()
}

// Intersects reports whether r and o share a region of positive area
func (r Rectangle[T]) Intersects(o Rectangle[T]) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Translate returns r moved by offset
func (r Rectangle[T]) Translate(offset Point[T]) Rectangle[T] {
	r.X += offset.X
	r.Y += offset.Y
	return r
}

func (r Rectangle[T]) String() string {
	return fmt.Sprintf("(%v,%v %vx%v)", r.X, r.Y, r.W, r.H)
}
