package platformer

import "github.com/vovakirdan/box-arcade/internal/core"

// Config tunes the shared platformer physics.
type Config struct {
	Gravity        float64 // px/s^2, downward
	MoveSpeed      float64 // Horizontal run speed, px/s
	JumpSpeed      float64 // Jump impulse magnitude, px/s
	JumpBufferTime float64 // Early-press forgiveness window, seconds
	MaxJumps       int     // Jump budget restored on landing (2 = double jump)
	SpeedBoost     float64 // Horizontal multiplier on Speed platforms
	DropNudge      float64 // Downward shove when dropping through, px
}

// DefaultPhysics returns the tuning used by the Tag game.
func DefaultPhysics() Config {
	return Config{
		Gravity:        1500,
		MoveSpeed:      220,
		JumpSpeed:      620,
		JumpBufferTime: 0.18,
		MaxJumps:       1,
		SpeedBoost:     1.5,
		DropNudge:      4,
	}
}

// MaxJumpHeight returns the theoretical apex of a single jump,
// jumpSpeed^2 / (2 * gravity). Platform row spacing is derived from it.
func (c Config) MaxJumpHeight() float64 {
	return c.JumpSpeed * c.JumpSpeed / (2 * c.Gravity)
}

// Intent is one frame of control input for a body.
type Intent struct {
	Axis     int  // Horizontal direction: -1, 0, 1
	JumpHeld bool // "up" action state
	DownHeld bool // "down" action state
}

// Body is the per-player physics state stepped by the world each frame.
type Body struct {
	Box     core.Box
	PrevBox core.Box // Previous frame position, for landing classification
	VX, VY  float64

	Grounded   bool
	GroundedOn *Platform // nil when resting on the floor or airborne
	JumpsLeft  int
	JumpBuffer float64

	jumpHeldPrev bool
}

// NewBody creates a body at the given box, starting airborne with a full
// jump budget.
func NewBody(box core.Box, maxJumps int) *Body {
	return &Body{Box: box, PrevBox: box, JumpsLeft: maxJumps}
}

// OnSpeedPlatform reports whether the body is grounded on a Speed platform.
func (b *Body) OnSpeedPlatform() bool {
	return b.Grounded && b.GroundedOn != nil && b.GroundedOn.Kind == KindSpeed
}

// World steps platforms and bodies within fixed bounds.
type World struct {
	Bounds    core.Box
	Platforms []*Platform
	cfg       Config
}

// NewWorld creates a world over the given bounds and platform set.
func NewWorld(bounds core.Box, cfg Config, platforms []*Platform) *World {
	if cfg.MaxJumps < 1 {
		cfg.MaxJumps = 1
	}
	return &World{Bounds: bounds, Platforms: platforms, cfg: cfg}
}

// Config returns the physics tuning in use.
func (w *World) Config() Config {
	return w.cfg
}

// Step advances every platform's patrol by dt seconds. Call once per frame
// before stepping bodies so riders see the current frame's displacement.
func (w *World) Step(dt float64) {
	for _, p := range w.Platforms {
		p.Update(dt)
	}
}

// StepBody advances one body by dt seconds under the given intent.
func (w *World) StepBody(dt float64, b *Body, in Intent) {
	cfg := w.cfg

	// Horizontal velocity from input, boosted on Speed platforms
	boost := 1.0
	if b.OnSpeedPlatform() {
		boost = cfg.SpeedBoost
	}
	b.VX = float64(in.Axis) * cfg.MoveSpeed * boost

	// Jump is edge-triggered: a press arms the buffer window
	jumpPressed := in.JumpHeld && !b.jumpHeldPrev
	b.jumpHeldPrev = in.JumpHeld
	if jumpPressed {
		b.JumpBuffer = cfg.JumpBufferTime
	}

	// Drop-through takes priority over jumping: holding down+jump on a
	// DropThrough platform nudges the player below its surface instead
	if b.Grounded && b.GroundedOn != nil && b.GroundedOn.Kind == KindDropThrough &&
		in.DownHeld && in.JumpHeld {
		b.Box.Y += cfg.DropNudge
		b.PrevBox = b.Box // so landing checks see us already below the surface
		b.Grounded = false
		b.GroundedOn = nil
		b.JumpBuffer = 0
	} else if b.JumpBuffer > 0 && b.JumpsLeft > 0 && (b.Grounded || cfg.MaxJumps > 1) {
		// Buffered jumps fire once grounded; with a multi-jump budget
		// they also fire in the air
		b.VY = -cfg.JumpSpeed
		b.JumpsLeft--
		b.JumpBuffer = 0
		b.Grounded = false
		b.GroundedOn = nil
	}
	if b.JumpBuffer > 0 {
		b.JumpBuffer -= dt
		if b.JumpBuffer < 0 {
			b.JumpBuffer = 0
		}
	}

	// Gravity, then explicit Euler integration per axis with bounds clamp
	b.VY += cfg.Gravity * dt

	b.Box.X += b.VX * dt
	b.Box.X = core.ClampF(b.Box.X, w.Bounds.Left(), w.Bounds.Right()-b.Box.W)

	b.Box.Y += b.VY * dt
	if b.Box.Top() < w.Bounds.Top() {
		b.Box.Y = w.Bounds.Top()
		if b.VY < 0 {
			b.VY = 0
		}
	}

	w.ground(b)

	// Riding: grounded players are carried by exactly the platform's
	// per-frame displacement, after their own movement and clamp
	if b.Grounded && b.GroundedOn != nil && b.GroundedOn.Kind == KindMoving {
		b.Box.X += b.GroundedOn.LastDX
		b.Box.X = core.ClampF(b.Box.X, w.Bounds.Left(), w.Bounds.Right()-b.Box.W)
	}

	b.PrevBox = b.Box
}

// ground registers landings. Only a downward-moving body whose bottom edge
// was at-or-above a surface's top in the previous frame can land; this
// prevents tunneling through thin platforms and false landings mid
// fall-through. The floor is tested first, then platforms in creation
// order; the last successful match wins.
func (w *World) ground(b *Body) {
	b.Grounded = false
	b.GroundedOn = nil

	if b.VY < 0 {
		return
	}

	if b.Box.Bottom() >= w.Bounds.Bottom() {
		b.Box.Y = w.Bounds.Bottom() - b.Box.H
		b.VY = 0
		b.Grounded = true
	}

	for _, p := range w.Platforms {
		if b.PrevBox.Bottom() > p.Box.Top() || b.Box.Bottom() < p.Box.Top() {
			continue
		}
		if b.Box.Right() <= p.Box.Left() || b.Box.Left() >= p.Box.Right() {
			continue
		}
		b.Box.Y = p.Box.Top() - b.Box.H
		b.VY = 0
		b.Grounded = true
		b.GroundedOn = p
	}

	if b.Grounded {
		b.JumpsLeft = w.cfg.MaxJumps
	}
}
