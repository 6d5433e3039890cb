package survival

import (
	"testing"

	"github.com/vovakirdan/box-arcade/internal/core"
)

const dt = 1.0 / 60.0

func newSolo(t *testing.T) *Game {
	t.Helper()
	g := New()
	rc := core.DefaultConfig()
	rc.Seed = 1
	if err := g.Reset(rc); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}
	return g
}

func newPvP(t *testing.T, players int) *Game {
	t.Helper()
	g := NewPvP()
	rc := core.DefaultConfig()
	rc.Seed = 1
	rc.Options = map[string]string{"players": itoa(players)}
	if err := g.Reset(rc); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}
	return g
}

func itoa(n int) string {
	return string(rune('0' + n))
}

// stepUntilInsideHazard advances the round until a hazard box is fully
// inside the arena, and returns it.
func stepUntilInsideHazard(t *testing.T, g *Game) core.Box {
	t.Helper()
	for i := 0; i < 1200; i++ {
		for _, h := range g.director.Hazards() {
			if g.bounds.Contains(h.Box) {
				return h.Box
			}
		}
		g.Update(dt, core.NewInputState())
		if g.IsOver() {
			t.Fatal("round ended while waiting for a hazard")
		}
	}
	t.Fatal("no hazard entered the arena")
	return core.Box{}
}

func TestPvPResetValidation(t *testing.T) {
	g := NewPvP()
	rc := core.DefaultConfig()
	rc.Options = map[string]string{"players": "1"}
	if err := g.Reset(rc); err == nil {
		t.Error("expected error for single-player pvp")
	}

	rc.Options = map[string]string{"players": "5"}
	if err := g.Reset(rc); err == nil {
		t.Error("expected error for oversized pvp roster")
	}
}

func TestSoloSurvivalAccumulatesTime(t *testing.T) {
	g := newSolo(t)

	// Park the player center-arena and run half a second; hazards need
	// a full interval before the first spawn can reach anyone
	g.players[0].Box = core.NewBox(g.bounds.CenterX(), g.bounds.CenterY(), 20, 30)
	for i := 0; i < 30; i++ {
		g.Update(dt, core.NewInputState())
	}

	if g.IsOver() {
		t.Fatal("round ended with no hazard contact")
	}
	scores := g.Scores()
	if len(scores) != 1 {
		t.Fatalf("got %d scores, want 1", len(scores))
	}
	want := 30 * dt
	if diff := scores[0].Value - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("score = %v, want %v", scores[0].Value, want)
	}
}

func TestSoloEndsOnLeavingBounds(t *testing.T) {
	g := newSolo(t)
	g.players[0].Box = core.NewBox(g.bounds.Left()-50, g.bounds.CenterY(), 20, 30)

	g.Update(dt, core.NewInputState())
	if !g.IsOver() {
		t.Error("round should end when the solo player leaves the arena")
	}
}

func TestSoloEndsOnHazardContact(t *testing.T) {
	g := newSolo(t)

	// Run until a hazard is inside the arena, then step onto it
	g.players[0].Box = core.NewBox(g.bounds.CenterX(), g.bounds.CenterY(), 20, 30)
	hz := stepUntilInsideHazard(t, g)
	g.players[0].Box = hz

	g.Update(dt, core.NewInputState())
	if !g.IsOver() {
		t.Error("round should end on hazard contact")
	}
}

func TestPvPClampsPlayers(t *testing.T) {
	g := newPvP(t, 2)
	g.players[0].Box = core.NewBox(g.bounds.Left()-200, g.bounds.CenterY(), 20, 30)

	g.Update(dt, core.NewInputState())

	if g.players[0].Box.Left() < g.bounds.Left() {
		t.Errorf("pvp player escaped bounds: %+v", g.players[0].Box)
	}
	if g.IsOver() {
		t.Error("pvp round should not end on bounds contact")
	}
}

func TestPvPEliminationAndEnd(t *testing.T) {
	g := newPvP(t, 3)

	// First elimination: round continues with 2 alive
	hz := stepUntilInsideHazard(t, g)
	g.players[0].Box = hz
	elimAt := g.elapsed
	g.Update(dt, core.NewInputState())
	if g.players[0].alive {
		t.Fatal("player not eliminated on hazard contact")
	}
	if g.players[0].elimTime != elimAt {
		t.Errorf("elimTime = %v, want %v", g.players[0].elimTime, elimAt)
	}
	if g.IsOver() {
		t.Fatal("round ended with 2 players alive")
	}

	// Second elimination: one survivor left ends the round
	g.players[1].Box = stepUntilInsideHazard(t, g)
	g.Update(dt, core.NewInputState())
	if !g.IsOver() {
		t.Fatal("round should end with one survivor")
	}

	// Survivor scores the full elapsed time; the eliminated keep theirs
	scores := g.Scores()
	if scores[2].Value != g.elapsed {
		t.Errorf("survivor score = %v, want elapsed %v", scores[2].Value, g.elapsed)
	}
	if scores[0].Value >= scores[2].Value {
		t.Errorf("eliminated score %v not below survivor %v", scores[0].Value, scores[2].Value)
	}
	if !g.HigherIsBetter() {
		t.Error("survival should score higher-is-better")
	}
}

func TestDeterministicRounds(t *testing.T) {
	a := newSolo(t)
	b := newSolo(t)

	in := core.NewInputState()
	in.Press(core.Player1, core.ActionRight)
	for i := 0; i < 240; i++ {
		a.Update(dt, in)
		b.Update(dt, in)
	}

	sa, sb := a.Snapshot(), b.Snapshot()
	if sa.HazardCount != sb.HazardCount {
		t.Fatalf("hazard counts differ: %d vs %d", sa.HazardCount, sb.HazardCount)
	}
	for i := range sa.HazardData {
		if sa.HazardData[i] != sb.HazardData[i] {
			t.Fatalf("hazard data differs at %d", i)
		}
	}
	if sa.Over != sb.Over || sa.Elapsed != sb.Elapsed {
		t.Error("round outcomes differ with identical seed and input")
	}
}
