// Package vmath provides the integer vector math the game needs.
package vmath

// Vec2 is a 2D integer vector. It is a value type; two vectors are equal
// when their components are equal.
type Vec2 struct {
	X, Y int
}

// Add adds other to v component-wise, mutating v in place.
func (v *Vec2) Add(other Vec2) {
	v.X += other.X
	v.Y += other.Y
}

// IsZero reports whether both components are zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}
