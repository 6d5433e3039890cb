package entity

import "github.com/vovakirdan/box-arcade/internal/core"

// jumpGap is how far above a bot its target must be before the bot tries
// to jump toward it.
const jumpGap = 30.0

// Bot is a simple chase/flee policy for Tag. The player holding "it"
// chases the nearest opponent; everyone else runs from "it".
type Bot struct{}

// Decide produces this frame's movement for a bot-controlled player.
func (bot *Bot) Decide(self *Player, roster []*Player, itID core.PlayerID) Intent {
	target := bot.pickTarget(self, roster, itID)
	if target == nil {
		return Intent{}
	}

	dx := target.Box.CenterX() - self.Box.CenterX()
	dy := target.Box.CenterY() - self.Box.CenterY()

	var in Intent
	if self.ID == itID {
		// Chase: close the horizontal gap, jump when the target is above
		in.DX = sign(dx)
		in.UpHeld = dy < -jumpGap
		in.DownHeld = dy > jumpGap
	} else {
		// Flee: run the other way, jump to break line of pursuit
		in.DX = -sign(dx)
		if in.DX == 0 {
			in.DX = 1
		}
		in.UpHeld = core.AbsF(dx) < 120
	}
	in.DY = boolAxis(in.DownHeld) - boolAxis(in.UpHeld)
	return in
}

// pickTarget returns whom this bot cares about: the nearest non-it player
// when the bot is "it", otherwise the "it" player.
func (bot *Bot) pickTarget(self *Player, roster []*Player, itID core.PlayerID) *Player {
	if self.ID != itID {
		for _, p := range roster {
			if p.ID == itID {
				return p
			}
		}
		return nil
	}

	var nearest *Player
	var best float64
	for _, p := range roster {
		if p.ID == self.ID {
			continue
		}
		dx := p.Box.CenterX() - self.Box.CenterX()
		dy := p.Box.CenterY() - self.Box.CenterY()
		d := dx*dx + dy*dy
		if nearest == nil || d < best {
			nearest = p
			best = d
		}
	}
	return nearest
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func boolAxis(b bool) int {
	if b {
		return 1
	}
	return 0
}
