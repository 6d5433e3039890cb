// Package platformer implements the side-view physics used by Tag: gravity
// integration, grounded detection against the floor and a dynamic platform
// set, jump buffering with a multi-jump budget, and platform riding.
package platformer

import "github.com/vovakirdan/box-arcade/internal/core"

// Kind classifies platform behavior.
type Kind int

const (
	KindNormal      Kind = iota
	KindMoving           // Patrols horizontally; riders are carried along
	KindDropThrough      // Down+jump lets a player fall through
	KindSpeed            // Grounded players move 1.5x faster
)

// String returns a human-readable name for the platform kind.
func (k Kind) String() string {
	switch k {
	case KindMoving:
		return "Moving"
	case KindDropThrough:
		return "DropThrough"
	case KindSpeed:
		return "Speed"
	default:
		return "Normal"
	}
}

// Platform is a one-way surface: players land on it from above and pass
// freely through it from below. Shape is immutable; only Moving platforms
// change position.
type Platform struct {
	Box  core.Box
	Kind Kind

	// Patrol state, Moving platforms only. The patrol range always
	// contains the platform: PatrolMinX <= Box.Left() and
	// Box.Right() <= PatrolMaxX.
	Speed      float64
	PatrolMinX float64
	PatrolMaxX float64
	Dir        float64 // +1 or -1

	// LastDX is the horizontal displacement applied this frame, used to
	// carry grounded riders.
	LastDX float64
}

// Update advances a Moving platform along its patrol by dt seconds,
// reversing direction at either patrol bound. Other kinds are static.
func (p *Platform) Update(dt float64) {
	if p.Kind != KindMoving {
		p.LastDX = 0
		return
	}

	next := p.Box.X + p.Speed*p.Dir*dt
	if next < p.PatrolMinX {
		next = p.PatrolMinX
		p.Dir = 1
	} else if next+p.Box.W > p.PatrolMaxX {
		next = p.PatrolMaxX - p.Box.W
		p.Dir = -1
	}
	p.LastDX = next - p.Box.X
	p.Box.X = next
}
