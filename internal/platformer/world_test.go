package platformer

import (
	"math"
	"testing"

	"github.com/vovakirdan/box-arcade/internal/core"
)

const dt = 1.0 / 60.0

func testBounds() core.Box {
	return core.NewBox(0, 0, 800, 600)
}

// newGroundedBody places a body resting on the floor with its landing
// state already settled.
func newGroundedBody(w *World, x float64) *Body {
	b := NewBody(core.NewBox(x, w.Bounds.Bottom()-30, 20, 30), w.cfg.MaxJumps)
	b.Grounded = true
	b.JumpsLeft = w.cfg.MaxJumps
	return b
}

func stepN(w *World, b *Body, in Intent, n int) {
	for i := 0; i < n; i++ {
		w.Step(dt)
		w.StepBody(dt, b, in)
	}
}

func TestBodyFallsToFloor(t *testing.T) {
	w := NewWorld(testBounds(), DefaultPhysics(), nil)
	b := NewBody(core.NewBox(100, 100, 20, 30), 1)

	stepN(w, b, Intent{}, 120) // 2 seconds, plenty to fall 470px

	if !b.Grounded {
		t.Fatal("expected body to be grounded after falling")
	}
	if b.Box.Bottom() != w.Bounds.Bottom() {
		t.Errorf("bottom = %v, want %v", b.Box.Bottom(), w.Bounds.Bottom())
	}
	if b.VY != 0 {
		t.Errorf("VY = %v after landing, want 0", b.VY)
	}
}

func TestJumpConsumesBudget(t *testing.T) {
	w := NewWorld(testBounds(), DefaultPhysics(), nil)
	b := newGroundedBody(w, 100)

	w.StepBody(dt, b, Intent{JumpHeld: true})

	if b.Grounded {
		t.Error("body still grounded after jump")
	}
	if b.JumpsLeft != 0 {
		t.Errorf("JumpsLeft = %d, want 0", b.JumpsLeft)
	}
	// One frame of gravity has already applied on top of the impulse
	want := -w.cfg.JumpSpeed + w.cfg.Gravity*dt
	if math.Abs(b.VY-want) > 1e-9 {
		t.Errorf("VY = %v, want %v", b.VY, want)
	}
}

// A single-jump body that jumps, falls, and lands gets its budget back,
// and at no point exceeds it: the total number of jumps between landings
// never passes MaxJumps.
func TestJumpBudgetRestoredOnLanding(t *testing.T) {
	w := NewWorld(testBounds(), DefaultPhysics(), nil)
	b := newGroundedBody(w, 100)

	w.StepBody(dt, b, Intent{JumpHeld: true})
	if b.JumpsLeft != 0 {
		t.Fatalf("JumpsLeft = %d after jump, want 0", b.JumpsLeft)
	}

	// Mashing jump mid-air must not launch again
	for i := 0; i < 200 && !b.Grounded; i++ {
		held := i%2 == 0
		vyBefore := b.VY
		w.StepBody(dt, b, Intent{JumpHeld: held})
		if !b.Grounded && b.VY < vyBefore {
			t.Fatalf("airborne jump fired at frame %d", i)
		}
	}
	if !b.Grounded {
		t.Fatal("body never landed")
	}
	if b.JumpsLeft != w.cfg.MaxJumps {
		t.Errorf("JumpsLeft = %d after landing, want %d", b.JumpsLeft, w.cfg.MaxJumps)
	}
}

func TestDoubleJumpFiresInAir(t *testing.T) {
	cfg := DefaultPhysics()
	cfg.MaxJumps = 2
	w := NewWorld(testBounds(), cfg, nil)
	b := newGroundedBody(w, 100)

	w.StepBody(dt, b, Intent{JumpHeld: true})
	w.StepBody(dt, b, Intent{}) // release
	w.StepBody(dt, b, Intent{JumpHeld: true})

	if b.JumpsLeft != 0 {
		t.Errorf("JumpsLeft = %d after double jump, want 0", b.JumpsLeft)
	}
	want := -cfg.JumpSpeed + cfg.Gravity*dt
	if math.Abs(b.VY-want) > 1e-9 {
		t.Errorf("VY = %v after air jump, want %v", b.VY, want)
	}
}

// A jump pressed shortly before landing fires on the frame after touchdown.
func TestJumpBufferFiresAfterLanding(t *testing.T) {
	w := NewWorld(testBounds(), DefaultPhysics(), nil)
	b := NewBody(core.NewBox(100, w.Bounds.Bottom()-40, 20, 30), 1)
	b.JumpsLeft = 0 // spent, as if mid-jump

	// Press while airborne, within the buffer window of landing
	w.StepBody(dt, b, Intent{JumpHeld: true})
	if b.JumpBuffer <= 0 {
		t.Fatal("buffer not armed by airborne press")
	}

	// Hold until grounded; budget is restored on touchdown, and the
	// buffered press consumes it on the next step
	for i := 0; i < 60 && !b.Grounded; i++ {
		w.StepBody(dt, b, Intent{JumpHeld: true})
	}
	if !b.Grounded {
		t.Fatal("body never landed within buffer test window")
	}
	w.StepBody(dt, b, Intent{JumpHeld: true})

	if b.Grounded {
		t.Error("buffered jump did not fire after landing")
	}
	want := -w.cfg.JumpSpeed + w.cfg.Gravity*dt
	if math.Abs(b.VY-want) > 1e-9 {
		t.Errorf("VY = %v, want %v", b.VY, want)
	}
}

func TestJumpBufferExpires(t *testing.T) {
	w := NewWorld(testBounds(), DefaultPhysics(), nil)
	b := NewBody(core.NewBox(100, 50, 20, 30), 1)
	b.JumpsLeft = 0

	w.StepBody(dt, b, Intent{JumpHeld: true})
	frames := int(w.cfg.JumpBufferTime/dt) + 2
	for i := 0; i < frames; i++ {
		w.StepBody(dt, b, Intent{JumpHeld: true})
	}
	if b.JumpBuffer != 0 {
		t.Errorf("JumpBuffer = %v after %d frames, want 0", b.JumpBuffer, frames)
	}
}

func TestLandOnPlatformFromAbove(t *testing.T) {
	p := &Platform{Box: core.NewBox(80, 400, 120, 14)}
	w := NewWorld(testBounds(), DefaultPhysics(), []*Platform{p})
	b := NewBody(core.NewBox(100, 300, 20, 30), 1)

	stepN(w, b, Intent{}, 60)

	if !b.Grounded || b.GroundedOn != p {
		t.Fatalf("grounded=%v groundedOn=%v, want landing on platform", b.Grounded, b.GroundedOn)
	}
	if b.Box.Bottom() != p.Box.Top() {
		t.Errorf("bottom = %v, want %v", b.Box.Bottom(), p.Box.Top())
	}
}

func TestPassesThroughPlatformFromBelow(t *testing.T) {
	// Platform top 80px above the floor, inside the ~128px jump reach
	p := &Platform{Box: core.NewBox(80, 520, 120, 14)}
	w := NewWorld(testBounds(), DefaultPhysics(), []*Platform{p})
	b := newGroundedBody(w, 100)

	// Jump from the floor: rise through the platform, land on top of it
	w.StepBody(dt, b, Intent{JumpHeld: true})
	rose := false
	for i := 0; i < 120 && !b.Grounded; i++ {
		w.StepBody(dt, b, Intent{})
		if b.Box.Bottom() < p.Box.Top() {
			rose = true
		}
	}
	if !rose {
		t.Fatal("body never rose above the platform")
	}
	if !b.Grounded || b.GroundedOn != p {
		t.Fatalf("grounded=%v groundedOn=%v, want landing on platform from above", b.Grounded, b.GroundedOn)
	}
}

func TestOverlappingPlatformsLastMatchWins(t *testing.T) {
	first := &Platform{Box: core.NewBox(80, 400, 120, 14)}
	second := &Platform{Box: core.NewBox(90, 400, 120, 14)}
	w := NewWorld(testBounds(), DefaultPhysics(), []*Platform{first, second})
	b := NewBody(core.NewBox(100, 360, 20, 30), 1)
	b.VY = 50

	stepN(w, b, Intent{}, 10)

	if !b.Grounded {
		t.Fatal("expected landing on overlapping platforms")
	}
	if b.GroundedOn != second {
		t.Errorf("groundedOn = first platform, want the later one")
	}
}

// A body standing on a moving platform is carried by exactly the
// platform's per-frame displacement.
func TestRiderCarriedByMovingPlatform(t *testing.T) {
	p := &Platform{
		Box:        core.NewBox(200, 400, 120, 14),
		Kind:       KindMoving,
		Speed:      300, // 5 px per frame at 60fps
		PatrolMinX: 100,
		PatrolMaxX: 600,
		Dir:        1,
	}
	w := NewWorld(testBounds(), DefaultPhysics(), []*Platform{p})
	b := NewBody(core.NewBox(240, 400-30, 20, 30), 1)
	b.Grounded = true
	b.GroundedOn = p

	xBefore := b.Box.X
	w.Step(dt)
	w.StepBody(dt, b, Intent{})

	if !b.Grounded || b.GroundedOn != p {
		t.Fatal("rider lost grounding on moving platform")
	}
	wantDX := 300 * dt
	if math.Abs((b.Box.X-xBefore)-wantDX) > 1e-9 {
		t.Errorf("rider moved %v, want %v", b.Box.X-xBefore, wantDX)
	}
	if math.Abs(p.LastDX-wantDX) > 1e-9 {
		t.Errorf("platform LastDX = %v, want %v", p.LastDX, wantDX)
	}
}

func TestRiderStaysAboardOverPatrol(t *testing.T) {
	p := &Platform{
		Box:        core.NewBox(200, 400, 120, 14),
		Kind:       KindMoving,
		Speed:      60,
		PatrolMinX: 120,
		PatrolMaxX: 440,
		Dir:        1,
	}
	w := NewWorld(testBounds(), DefaultPhysics(), []*Platform{p})
	b := NewBody(core.NewBox(250, 400-30, 20, 30), 1)
	b.Grounded = true
	b.GroundedOn = p

	for i := 0; i < 600; i++ { // 10s, multiple patrol reversals
		w.Step(dt)
		w.StepBody(dt, b, Intent{})
		if !b.Grounded {
			t.Fatalf("rider fell off at frame %d", i)
		}
		if b.Box.Left() < p.Box.Left()-1 || b.Box.Right() > p.Box.Right()+1 {
			t.Fatalf("rider drifted off platform at frame %d: body [%v,%v] platform [%v,%v]",
				i, b.Box.Left(), b.Box.Right(), p.Box.Left(), p.Box.Right())
		}
	}
}

func TestDropThroughPlatform(t *testing.T) {
	p := &Platform{Box: core.NewBox(80, 400, 200, 14), Kind: KindDropThrough}
	w := NewWorld(testBounds(), DefaultPhysics(), []*Platform{p})
	b := NewBody(core.NewBox(100, 400-30, 20, 30), 1)
	b.Grounded = true
	b.GroundedOn = p

	w.StepBody(dt, b, Intent{DownHeld: true, JumpHeld: true})

	if b.Grounded {
		t.Fatal("still grounded after drop-through")
	}
	if b.Box.Top() <= p.Box.Top() {
		t.Errorf("body top %v not pushed below platform top %v", b.Box.Top(), p.Box.Top())
	}

	// Keep falling; must not re-land on the platform just dropped through
	for i := 0; i < 120 && !b.Grounded; i++ {
		w.StepBody(dt, b, Intent{})
	}
	if !b.Grounded {
		t.Fatal("never landed after drop-through")
	}
	if b.GroundedOn == p {
		t.Error("re-landed on the platform dropped through")
	}
}

func TestDropThroughOnlyOnDropThroughKind(t *testing.T) {
	p := &Platform{Box: core.NewBox(80, 400, 200, 14), Kind: KindNormal}
	w := NewWorld(testBounds(), DefaultPhysics(), []*Platform{p})
	b := NewBody(core.NewBox(100, 400-30, 20, 30), 1)
	b.Grounded = true
	b.GroundedOn = p

	// Down+jump on a normal platform is just a jump
	w.StepBody(dt, b, Intent{DownHeld: true, JumpHeld: true})
	if b.VY >= 0 {
		t.Errorf("VY = %v, want upward jump on normal platform", b.VY)
	}
}

func TestSpeedPlatformBoostsHorizontal(t *testing.T) {
	p := &Platform{Box: core.NewBox(80, 400, 400, 14), Kind: KindSpeed}
	w := NewWorld(testBounds(), DefaultPhysics(), []*Platform{p})
	b := NewBody(core.NewBox(100, 400-30, 20, 30), 1)
	b.Grounded = true
	b.GroundedOn = p

	w.StepBody(dt, b, Intent{Axis: 1})

	want := w.cfg.MoveSpeed * w.cfg.SpeedBoost
	if math.Abs(b.VX-want) > 1e-9 {
		t.Errorf("VX = %v on speed platform, want %v", b.VX, want)
	}

	// Off-platform speed is unboosted
	free := newGroundedBody(w, 600)
	w.StepBody(dt, free, Intent{Axis: 1})
	if math.Abs(free.VX-w.cfg.MoveSpeed) > 1e-9 {
		t.Errorf("floor VX = %v, want %v", free.VX, w.cfg.MoveSpeed)
	}
}

func TestHorizontalClampAtBounds(t *testing.T) {
	w := NewWorld(testBounds(), DefaultPhysics(), nil)
	b := newGroundedBody(w, 5)

	stepN(w, b, Intent{Axis: -1}, 60)
	if b.Box.Left() != w.Bounds.Left() {
		t.Errorf("left = %v, want clamped to %v", b.Box.Left(), w.Bounds.Left())
	}

	stepN(w, b, Intent{Axis: 1}, 600)
	if b.Box.Right() != w.Bounds.Right() {
		t.Errorf("right = %v, want clamped to %v", b.Box.Right(), w.Bounds.Right())
	}
}
