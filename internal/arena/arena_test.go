package arena

import (
	"testing"

	"github.com/vovakirdan/box-arcade/internal/core"
)

func TestClamp(t *testing.T) {
	bounds := core.NewBox(20, 60, 760, 520)

	tests := []struct {
		name string
		in   core.Box
		out  core.Box
	}{
		{
			name: "already inside is untouched",
			in:   core.NewBox(100, 100, 36, 36),
			out:  core.NewBox(100, 100, 36, 36),
		},
		{
			name: "past left edge",
			in:   core.NewBox(0, 100, 36, 36),
			out:  core.NewBox(20, 100, 36, 36),
		},
		{
			name: "past right edge",
			in:   core.NewBox(900, 100, 36, 36),
			out:  core.NewBox(744, 100, 36, 36),
		},
		{
			name: "past top edge",
			in:   core.NewBox(100, 0, 36, 36),
			out:  core.NewBox(100, 60, 36, 36),
		},
		{
			name: "past bottom edge",
			in:   core.NewBox(100, 700, 36, 36),
			out:  core.NewBox(100, 544, 36, 36),
		},
		{
			name: "past a corner clamps both axes",
			in:   core.NewBox(0, 0, 36, 36),
			out:  core.NewBox(20, 60, 36, 36),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Clamp(tc.in, bounds)
			if got != tc.out {
				t.Errorf("Clamp = %+v, expected %+v", got, tc.out)
			}
		})
	}
}

func TestClampIdempotence(t *testing.T) {
	bounds := core.NewBox(0, 0, 200, 200)
	boxes := []core.Box{
		core.NewBox(50, 50, 20, 20),
		core.NewBox(-10, 250, 20, 20),
		core.NewBox(190, -5, 20, 20),
	}

	for _, b := range boxes {
		once := Clamp(b, bounds)
		twice := Clamp(once, bounds)
		if once != twice {
			t.Errorf("clamping twice differs from once: %+v vs %+v", once, twice)
		}
	}
}

func TestShrinkerExactRate(t *testing.T) {
	s := NewShrinker(1.0, 120, 120)
	a := core.NewBox(0, 0, 400, 400)

	// Many small fractional steps must sum to the exact integer shrink.
	// 10 seconds at 1 px/side/s in 600 steps of 1/60s.
	for i := 0; i < 600; i++ {
		a = s.Step(1.0/60.0, a)
	}

	// 10 px per side -> 20 px total per dimension (floating-point step
	// accumulation may leave the final fraction pending)
	if a.W > 380.0+1e-9 || a.W < 378.0 {
		t.Errorf("width after 10s = %v, expected about 380", a.W)
	}
	if a.W != a.H {
		t.Errorf("shrink must be symmetric, got %vx%v", a.W, a.H)
	}
}

func TestShrinkerSymmetric(t *testing.T) {
	s := NewShrinker(10, 120, 120)
	a := core.NewBox(100, 100, 400, 400)
	cx, cy := a.CenterX(), a.CenterY()

	a = s.Step(1.0, a)

	if a.CenterX() != cx || a.CenterY() != cy {
		t.Error("shrink must keep the arena centered")
	}
}

func TestShrinkerFloor(t *testing.T) {
	s := NewShrinker(100, 120, 120)
	a := core.NewBox(0, 0, 130, 130)

	for i := 0; i < 100; i++ {
		a = s.Step(1.0, a)
	}

	if a.W < 118 || a.H < 118 {
		t.Errorf("arena shrank past the floor: %vx%v", a.W, a.H)
	}
}

func TestShrinkerReset(t *testing.T) {
	s := NewShrinker(1.0, 120, 120)
	a := core.NewBox(0, 0, 400, 400)

	// Accumulate just under one pixel, then reset
	a = s.Step(0.9, a)
	s.Reset()
	a = s.Step(0.09, a)

	if a.W != 400 {
		t.Errorf("reset should drop pending fractional shrink, width = %v", a.W)
	}
}
