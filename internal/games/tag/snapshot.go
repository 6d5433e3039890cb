package tag

// Snapshot contains the observable match state using primitive types only,
// for debugging and deterministic replay comparisons.
type Snapshot struct {
	ItID      int
	Cooldown  float64
	Remaining float64
	Over      bool

	// Per-player state (each player is 5 floats: X, Y, VX, VY, ItTime)
	PlayerCount int
	PlayerData  []float64

	// Per-platform state (each platform is 3 floats: X, Y, Kind)
	PlatformCount int
	PlatformData  []float64
}

// Snapshot returns the current match state.
func (g *Game) Snapshot() Snapshot {
	playerData := make([]float64, 0, len(g.players)*5)
	for _, p := range g.players {
		playerData = append(playerData,
			p.body.Box.X, p.body.Box.Y, p.body.VX, p.body.VY, p.itTime)
	}

	platformData := make([]float64, 0, len(g.world.Platforms)*3)
	for _, p := range g.world.Platforms {
		platformData = append(platformData,
			p.Box.X, p.Box.Y, float64(p.Kind))
	}

	return Snapshot{
		ItID:          int(g.itID),
		Cooldown:      g.cooldown,
		Remaining:     g.remaining,
		Over:          g.over,
		PlayerCount:   len(g.players),
		PlayerData:    playerData,
		PlatformCount: len(g.world.Platforms),
		PlatformData:  platformData,
	}
}
