// Package arena keeps entities and playfields constrained: position-only
// bounds clamping plus a time-exact shrinking arena used by TrailLock.
package arena

import "github.com/vovakirdan/box-arcade/internal/core"

// Clamp forces a box inside the bounds rectangle by direct coordinate
// adjustment. This is a position correction, not a physical bounce: velocity
// is untouched. Clamping an already-in-bounds box is a no-op.
func Clamp(box, bounds core.Box) core.Box {
	if box.Left() < bounds.Left() {
		box.X = bounds.Left()
	}
	if box.Right() > bounds.Right() {
		box.X = bounds.Right() - box.W
	}
	if box.Top() < bounds.Top() {
		box.Y = bounds.Top()
	}
	if box.Bottom() > bounds.Bottom() {
		box.Y = bounds.Bottom() - box.H
	}
	return box
}

// Shrinker contracts an arena rectangle over time at an exact average rate.
// Fractional shrink amounts carry over between frames so per-frame integer
// rounding never loses progress; contraction halts at the minimum size.
type Shrinker struct {
	Rate    float64 // Pixels per side per second
	MinW    float64 // Width floor
	MinH    float64 // Height floor
	accum   float64
}

// NewShrinker creates a shrinker with the given rate and size floor.
func NewShrinker(rate, minW, minH float64) *Shrinker {
	return &Shrinker{Rate: rate, MinW: minW, MinH: minH}
}

// Reset clears accumulated fractional shrink.
func (s *Shrinker) Reset() {
	s.accum = 0
}

// Step advances the shrink by dt seconds and returns the contracted arena.
// Whole pixels are removed symmetrically from each side.
func (s *Shrinker) Step(dt float64, a core.Box) core.Box {
	s.accum += s.Rate * dt
	for s.accum >= 1.0 && a.W > s.MinW && a.H > s.MinH {
		a = a.Inflate(-2, -2)
		s.accum -= 1.0
	}
	return a
}
