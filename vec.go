package tubemap

import (
	"fmt"
	"math"
)

// Vec2 represents a 2D vector. It is used both for grid coordinates and
// for direction vectors, so the helpers below treat it as a displacement.
type Vec2 struct {
	X, Y float64
}

// V2 is a convenience function to create a Vec2.
func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns the sum of two vectors.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(w Vec2) Vec2 {
	return Vec2{X: v.X - w.X, Y: v.Y - w.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vec2) Mul(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Neg returns the negation of the vector.
func (v Vec2) Neg() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// Dot returns the dot product of two vectors.
func (v Vec2) Dot(w Vec2) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the 2D cross product (scalar).
// This is the z-component of the 3D cross product with z=0.
func (v Vec2) Cross(w Vec2) float64 {
	return v.X*w.Y - v.Y*w.X
}

// Length returns the Euclidean norm of the vector.
func (v Vec2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalize returns a unit vector in the same direction.
// Returns zero vector if the original vector has zero length.
func (v Vec2) Normalize() Vec2 {
	length := v.Length()
	if length == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / length, Y: v.Y / length}
}

// Normal returns the vector rotated 90 degrees clockwise, (y, -x).
// A positive lane shift moves a line to the right of its direction of
// travel in a y-up grid.
func (v Vec2) Normal() Vec2 {
	return Vec2{X: v.Y, Y: -v.X}
}

// IsParallel reports whether v and w point the same way: their cross
// product is zero and every component has the same sign. Opposite vectors
// are not parallel in this sense.
func (v Vec2) IsParallel(w Vec2) bool {
	return v.Cross(w) == 0 &&
		sign(v.X) == sign(w.X) &&
		sign(v.Y) == sign(w.Y)
}

// IsCollinear reports whether v and w lie on the same line through the
// origin, in either sense.
func (v Vec2) IsCollinear(w Vec2) bool {
	return math.Abs(v.Cross(w)) < collinearEpsilon
}

// Round rounds both components to the nearest integer, with halves
// rounded towards positive infinity.
func (v Vec2) Round() Vec2 {
	return Vec2{X: math.Floor(v.X + 0.5), Y: math.Floor(v.Y + 0.5)}
}

// Abs returns the component-wise absolute value.
func (v Vec2) Abs() Vec2 {
	return Vec2{X: math.Abs(v.X), Y: math.Abs(v.Y)}
}

// IsZero returns true if the vector is the zero vector.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Approx returns true if two vectors are approximately equal within epsilon.
func (v Vec2) Approx(w Vec2, epsilon float64) bool {
	return math.Abs(v.X-w.X) < epsilon && math.Abs(v.Y-w.Y) < epsilon
}

// String formats the vector as "(x, y)".
func (v Vec2) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}

const collinearEpsilon = 1e-12

func sign(x float64) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
