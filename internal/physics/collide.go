// Package physics provides the shared AABB collision and resolution kernel
// used by the physically-animated mini-games: overlap tests, directional
// impact classification from previous-frame positions, and
// minimum-penetration separation.
package physics

import "github.com/vovakirdan/box-arcade/internal/core"

// Side identifies which side of a target box a moving box struck.
type Side int

const (
	SideNone Side = iota
	SideAbove     // Moving box came from above the target
	SideBelow     // Moving box came from below the target
	SideLeft      // Moving box came from the target's left
	SideRight     // Moving box came from the target's right
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case SideAbove:
		return "Above"
	case SideBelow:
		return "Below"
	case SideLeft:
		return "Left"
	case SideRight:
		return "Right"
	default:
		return "None"
	}
}

// Axis identifies a separation axis.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// Clearance is the gap left between boxes after a one-sided correction so
// the pair does not re-collide on the next frame.
const Clearance = 1.0

// Overlap reports whether two boxes overlap, using the arcade-wide strict
// edge convention.
func Overlap(a, b core.Box) bool {
	return a.Overlaps(b)
}

// OverlapX returns the horizontal penetration extent of two boxes.
// Non-positive when the boxes are separated on the X axis.
func OverlapX(a, b core.Box) float64 {
	return minF(a.Right(), b.Right()) - maxF(a.Left(), b.Left())
}

// OverlapY returns the vertical penetration extent of two boxes.
// Non-positive when the boxes are separated on the Y axis.
func OverlapY(a, b core.Box) float64 {
	return minF(a.Bottom(), b.Bottom()) - maxF(a.Top(), b.Top())
}

// MinPenetrationAxis returns the axis of least-cost separation for two
// overlapping boxes: whichever axis has the smaller overlap magnitude.
// Ties resolve to the vertical axis, matching the ball reflection fallback.
func MinPenetrationAxis(a, b core.Box) Axis {
	if OverlapX(a, b) < OverlapY(a, b) {
		return AxisX
	}
	return AxisY
}

// Impact classifies which side of target a moving box struck, comparing the
// previous frame's position against the target's edges. This avoids
// ambiguity when deep interpenetration occurs within a single frame.
// Returns SideNone when no directional test matches (corner contact);
// callers apply vertical reflection as the explicit fallback policy.
func Impact(prev, cur, target core.Box) Side {
	switch {
	case prev.Bottom() <= target.Top() && cur.Bottom() >= target.Top():
		return SideAbove
	case prev.Top() >= target.Bottom() && cur.Top() <= target.Bottom():
		return SideBelow
	case prev.Right() <= target.Left() && cur.Right() >= target.Left():
		return SideLeft
	case prev.Left() >= target.Right() && cur.Left() <= target.Right():
		return SideRight
	default:
		return SideNone
	}
}

// PushApart separates two overlapping boxes symmetrically along the
// minimum-penetration axis: each box moves overlap/2 + 1 away from the
// other. Used for player-vs-player soft collision, where slight inaccuracy
// is visually tolerable. No-op when the boxes do not overlap.
func PushApart(a, b *core.Box) {
	if !a.Overlaps(*b) {
		return
	}
	if MinPenetrationAxis(*a, *b) == AxisX {
		shift := OverlapX(*a, *b)/2 + 1
		if a.CenterX() <= b.CenterX() {
			a.X -= shift
			b.X += shift
		} else {
			a.X += shift
			b.X -= shift
		}
		return
	}
	shift := OverlapY(*a, *b)/2 + 1
	if a.CenterY() <= b.CenterY() {
		a.Y -= shift
		b.Y += shift
	} else {
		a.Y += shift
		b.Y -= shift
	}
}

// Eject moves the moving box entirely out of the static target toward the
// given side, leaving a one-pixel clearance. Used for ball-vs-static
// resolution where the correction falls on the moving entity alone.
func Eject(moving core.Box, target core.Box, side Side) core.Box {
	switch side {
	case SideAbove:
		moving.Y = target.Top() - moving.H - Clearance
	case SideBelow:
		moving.Y = target.Bottom() + Clearance
	case SideLeft:
		moving.X = target.Left() - moving.W - Clearance
	case SideRight:
		moving.X = target.Right() + Clearance
	}
	return moving
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
