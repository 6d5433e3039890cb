package brickbreaker

// Snapshot contains the observable match state using primitive types only,
// for debugging and deterministic replay comparisons.
type Snapshot struct {
	BallX, BallY float64
	VX, VY       float64
	PaddleX      float64
	Score        int
	Lives        int
	Over         bool

	// Per-brick state (each brick is 2 floats: X, Y)
	BrickCount int
	BrickData  []float64
}

// Snapshot returns the current match state.
func (g *Game) Snapshot() Snapshot {
	brickData := make([]float64, 0, len(g.bricks)*2)
	for _, b := range g.bricks {
		brickData = append(brickData, b.X, b.Y)
	}

	return Snapshot{
		BallX:      g.ball.X,
		BallY:      g.ball.Y,
		VX:         g.vx,
		VY:         g.vy,
		PaddleX:    g.paddle.X,
		Score:      g.score,
		Lives:      g.lives,
		Over:       g.over,
		BrickCount: len(g.bricks),
		BrickData:  brickData,
	}
}
