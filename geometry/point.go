package geometry

import "math"

// Number is the set of numeric types the geometry primitives work with
type Number interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// Point is a 2D coordinate
type Point[T Number] struct {
	X T `json:"x"`
	Y T `json:"y"`
}

// Pt is shorthand for building a Point
func Pt[T Number](x, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}

// Add returns the component-wise sum of p and q
func (p Point[T]) Add(q Point[T]) Point[T] {
	return Point[T]{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the component-wise difference of p and q
func (p Point[T]) Sub(q Point[T]) Point[T] {
	return Point[T]{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale multiplies both coordinates by s
func (p Point[T]) Scale(s T) Point[T] {
	return Point[T]{X: p.X * s, Y: p.Y * s}
}

// Mul returns the component-wise product of p and q
func (p Point[T]) Mul(q Point[T]) Point[T] {
	return Point[T]{X: p.X * q.X, Y: p.Y * q.Y}
}

// Div returns the component-wise quotient of p and q
func (p Point[T]) Div(q Point[T]) Point[T] {
	return Point[T]{X: p.X / q.X, Y: p.Y / q.Y}
}

// Equal reports whether both coordinates match exactly
func (p Point[T]) Equal(q Point[T]) bool {
	return p.X == q.X && p.Y == q.Y
}

// IsZero reports whether p is the origin
func (p Point[T]) IsZero() bool {
	return p.X == 0 && p.Y == 0
}

// Distance returns the Euclidean distance between p and q
func (p Point[T]) Distance(q Point[T]) float64 {
	dx := float64(q.X) - float64(p.X)
	dy := float64(q.Y) - float64(p.Y)
	return math.Sqrt(dx*dx + dy*dy)
}
