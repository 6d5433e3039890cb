// Package entity provides player rosters shared by the games: seat
// assignment, colors, human input dispatch and bot control.
package entity

import (
	"fmt"

	"github.com/vovakirdan/box-arcade/internal/core"
)

// ControlKind distinguishes human seats from bot-driven players.
type ControlKind int

const (
	ControlHuman ControlKind = iota
	ControlBot
)

// Intent is a player's per-frame movement decision, regardless of whether
// it came from the keyboard or a bot policy.
type Intent struct {
	DX, DY   int // each in {-1, 0, 1}
	UpHeld   bool
	DownHeld bool
}

// Player is one roster entry. Box and movement are owned by the game that
// holds the roster; this package only decides intent.
type Player struct {
	ID      core.PlayerID
	Name    string
	Color   core.Color
	Control ControlKind
	Bot     *Bot // nil for human players

	Box core.Box
}

// NewRoster builds players+bots entries in seat order. Humans take the
// first seats; bots fill the remainder. Total must be between 1 and the
// seat limit.
func NewRoster(humans, bots int, size core.Box) ([]*Player, error) {
	total := humans + bots
	if humans < 0 || bots < 0 || total < 1 {
		return nil, fmt.Errorf("invalid roster: %d humans, %d bots", humans, bots)
	}
	if total > core.MaxPlayers {
		return nil, fmt.Errorf("roster of %d exceeds %d seats", total, core.MaxPlayers)
	}

	players := make([]*Player, 0, total)
	for i := 0; i < total; i++ {
		id := core.PlayerID(i + 1)
		p := &Player{
			ID:    id,
			Name:  fmt.Sprintf("P%d", id),
			Color: core.PlayerColors[i%len(core.PlayerColors)],
			Box:   size,
		}
		if i >= humans {
			p.Control = ControlBot
			p.Bot = &Bot{}
			p.Name = fmt.Sprintf("Bot%d", i-humans+1)
		}
		players = append(players, p)
	}
	return players, nil
}

// SpawnPositions returns distinct spawn points inside bounds for n players,
// spread across the corners first and the midpoints after, inset from the
// edges so a body of the given size fits.
func SpawnPositions(bounds core.Box, n int, w, h float64) []core.Box {
	inset := 40.0
	left := bounds.Left() + inset
	right := bounds.Right() - inset - w
	top := bounds.Top() + inset
	bottom := bounds.Bottom() - h
	midX := bounds.CenterX() - w/2

	anchors := []core.Box{
		core.NewBox(left, bottom, w, h),
		core.NewBox(right, bottom, w, h),
		core.NewBox(left, top, w, h),
		core.NewBox(right, top, w, h),
		core.NewBox(midX, bottom, w, h),
		core.NewBox(midX, top, w, h),
	}

	out := make([]core.Box, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, anchors[i%len(anchors)])
	}
	return out
}

// Intent resolves this frame's movement decision. Human players read the
// input source; bots consult their policy against the full roster.
func (p *Player) Intent(input core.ActionSource, roster []*Player, itID core.PlayerID) Intent {
	if p.Control == ControlBot && p.Bot != nil {
		return p.Bot.Decide(p, roster, itID)
	}
	dx, dy := input.Axes(p.ID)
	return Intent{
		DX:       dx,
		DY:       dy,
		UpHeld:   input.Held(p.ID, core.ActionUp),
		DownHeld: input.Held(p.ID, core.ActionDown),
	}
}
