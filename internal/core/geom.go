// Package core provides fundamental types and utilities for the arcade
// platform. It contains no external dependencies (especially no Bubble Tea)
// to keep game logic pure and testable.
package core

// Box is an axis-aligned bounding rectangle in arena pixel space.
// Width and height must be positive.
type Box struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewBox creates a new box with the given position and dimensions.
func NewBox(x, y, w, h float64) Box {
	return Box{X: x, Y: y, W: w, H: h}
}

// Left returns the x-coordinate of the left edge.
func (b Box) Left() float64 {
	return b.X
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Top returns the y-coordinate of the top edge.
func (b Box) Top() float64 {
	return b.Y
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// CenterX returns the x-coordinate of the center point.
func (b Box) CenterX() float64 {
	return b.X + b.W/2
}

// CenterY returns the y-coordinate of the center point.
func (b Box) CenterY() float64 {
	return b.Y + b.H/2
}

// Translate returns the box shifted by (dx, dy).
func (b Box) Translate(dx, dy float64) Box {
	return Box{X: b.X + dx, Y: b.Y + dy, W: b.W, H: b.H}
}

// Inflate returns the box grown by dw horizontally and dh vertically,
// keeping the center fixed. Negative values shrink the box.
func (b Box) Inflate(dw, dh float64) Box {
	return Box{X: b.X - dw/2, Y: b.Y - dh/2, W: b.W + dw, H: b.H + dh}
}

// Overlaps reports whether this box overlaps another.
// Touching edges do not count as overlap; this strict convention is applied
// uniformly across all mini-games.
func (b Box) Overlaps(other Box) bool {
	return b.Right() > other.Left() && b.Left() < other.Right() &&
		b.Bottom() > other.Top() && b.Top() < other.Bottom()
}

// Contains reports whether other lies entirely inside this box.
func (b Box) Contains(other Box) bool {
	return other.Left() >= b.Left() && other.Right() <= b.Right() &&
		other.Top() >= b.Top() && other.Bottom() <= b.Bottom()
}

// ContainsPoint reports whether the point (x, y) is inside this box.
func (b Box) ContainsPoint(x, y float64) bool {
	return x >= b.X && x < b.Right() && y >= b.Y && y < b.Bottom()
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// AbsF returns the absolute value of a float64.
func AbsF(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// MinF returns the smaller of two float64 values.
func MinF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// MaxF returns the larger of two float64 values.
func MaxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
