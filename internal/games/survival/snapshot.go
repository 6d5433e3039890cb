package survival

// Snapshot contains the observable round state using primitive types only,
// for debugging and deterministic replay comparisons.
type Snapshot struct {
	Mode    int
	Elapsed float64
	Over    bool

	// Per-player state (each player is 4 floats: X, Y, Alive, ElimTime)
	PlayerCount int
	PlayerData  []float64

	// Per-hazard state (each hazard is 4 floats: X, Y, VX, VY)
	HazardCount int
	HazardData  []float64
}

// Snapshot returns the current round state.
func (g *Game) Snapshot() Snapshot {
	playerData := make([]float64, 0, len(g.players)*4)
	for _, p := range g.players {
		alive := 0.0
		if p.alive {
			alive = 1.0
		}
		playerData = append(playerData, p.Box.X, p.Box.Y, alive, p.elimTime)
	}

	hazards := g.director.Hazards()
	hazardData := make([]float64, 0, len(hazards)*4)
	for _, h := range hazards {
		hazardData = append(hazardData, h.Box.X, h.Box.Y, h.VX, h.VY)
	}

	return Snapshot{
		Mode:        int(g.mode),
		Elapsed:     g.elapsed,
		Over:        g.over,
		PlayerCount: len(g.players),
		PlayerData:  playerData,
		HazardCount: len(hazards),
		HazardData:  hazardData,
	}
}
