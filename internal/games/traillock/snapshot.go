package traillock

// Snapshot contains the observable match state using primitive types only,
// for debugging and deterministic replay comparisons.
type Snapshot struct {
	Round       int
	TrailsOn    bool
	RoundOver   bool
	Over        bool
	RoundWinner int

	// Current arena rectangle
	ArenaX, ArenaY, ArenaW, ArenaH float64

	// Per-player state (each player is 6 floats: X, Y, DirX, DirY,
	// Alive as 0/1, Wins)
	PlayerCount int
	PlayerData  []float64

	TrailCount int
}

// Snapshot returns the current match state.
func (g *Game) Snapshot() Snapshot {
	playerData := make([]float64, 0, len(g.players)*6)
	for _, p := range g.players {
		alive := 0.0
		if p.alive {
			alive = 1.0
		}
		playerData = append(playerData, p.Box.X, p.Box.Y, p.dirX, p.dirY, alive, float64(p.wins))
	}

	return Snapshot{
		Round:       g.round + 1,
		TrailsOn:    g.trailsOn,
		RoundOver:   g.roundOver,
		Over:        g.over,
		RoundWinner: int(g.roundWinner),
		ArenaX:      g.field.X,
		ArenaY:      g.field.Y,
		ArenaW:      g.field.W,
		ArenaH:      g.field.H,
		PlayerCount: len(g.players),
		PlayerData:  playerData,
		TrailCount:  len(g.trails),
	}
}
