// Package brickbreaker implements Brick Breaker: a single paddle keeps a
// ball in play, clearing a wall of bricks. Reflections are resolved with
// previous-position impact classification so fast balls never tunnel.
package brickbreaker

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/box-arcade/internal/config"
	"github.com/vovakirdan/box-arcade/internal/core"
	"github.com/vovakirdan/box-arcade/internal/physics"
	"github.com/vovakirdan/box-arcade/internal/registry"
)

// Visual characters for rendering
const (
	PaddleChar = '='
	BallChar   = '●'
	BrickChar  = '█'
)

// serveAngles are the horizontal velocity fractions a serve picks from.
var serveAngles = []float64{-0.6, -0.45, 0.45, 0.6}

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = ""
	}
}

// Game implements the Brick Breaker game logic.
type Game struct {
	paddle core.Box
	ball   core.Box
	prev   core.Box
	vx, vy float64
	bricks []core.Box

	score   int
	lives   int
	over    bool
	header  string
	elapsed float64

	bounds     core.Box
	rng        *rand.Rand
	runtime    core.RuntimeConfig
	cfg        config.BrickBreakerConfig
	difficulty *config.DifficultyManager
	vp         core.Viewport
}

// New creates a new Brick Breaker game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return "brickbreaker" }

// Title returns the display name for this game.
func (g *Game) Title() string { return "Brick Breaker" }

// Reset initializes or reinitializes the game.
func (g *Game) Reset(rc core.RuntimeConfig) error {
	cfg, err := config.LoadBrickBreaker(rc.Option("config", configPath))
	if err != nil {
		return fmt.Errorf("brickbreaker: %w", err)
	}
	if difficultyPreset != "" {
		config.ApplyBrickBreakerPreset(&cfg, difficultyPreset)
	}
	if cfg.Bricks.Rows < 1 || cfg.Bricks.Cols < 1 {
		return fmt.Errorf("brickbreaker: empty brick wall %dx%d", cfg.Bricks.Rows, cfg.Bricks.Cols)
	}

	bounds := rc.PlayField()
	if bounds.W < cfg.Paddle.Width*2 {
		return fmt.Errorf("brickbreaker: bounds %.0f too narrow for paddle %.0f", bounds.W, cfg.Paddle.Width)
	}

	seed := rc.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g.bounds = bounds
	g.rng = rand.New(rand.NewSource(seed))
	g.runtime = rc
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	if difficultyPreset != "" {
		g.difficulty.SetInitialLevel(config.InitialLevelForPreset(difficultyPreset))
		if config.IsFixedPreset(difficultyPreset) {
			g.difficulty.SetEnabled(false)
		}
	}
	g.vp = core.NewViewport(rc.ArenaW, rc.ArenaH, rc.ScreenW, rc.ScreenH)

	g.paddle = core.NewBox(
		bounds.CenterX()-cfg.Paddle.Width/2,
		bounds.Bottom()-cfg.Paddle.Offset,
		cfg.Paddle.Width,
		cfg.Paddle.Height,
	)
	g.initBricks()
	g.score = 0
	g.lives = cfg.Gameplay.Lives
	g.over = false
	g.header = ""
	g.elapsed = 0
	g.serve()
	return nil
}

// initBricks lays out the brick wall across the top of the arena.
func (g *Game) initBricks() {
	b := g.cfg.Bricks
	margin := 20.0
	areaW := g.bounds.W - 2*margin
	brickW := (areaW - float64(b.Cols-1)*b.Gap) / float64(b.Cols)

	g.bricks = g.bricks[:0]
	for r := 0; r < b.Rows; r++ {
		for c := 0; c < b.Cols; c++ {
			x := g.bounds.Left() + margin + float64(c)*(brickW+b.Gap)
			y := g.bounds.Top() + b.TopOffset + float64(r)*(b.Height+b.Gap)
			g.bricks = append(g.bricks, core.NewBox(x, y, brickW, b.Height))
		}
	}
}

// serve places the ball above the paddle with a fresh launch angle.
func (g *Game) serve() {
	size := g.cfg.Ball.Size
	g.ball = core.NewBox(g.paddle.CenterX()-size/2, g.paddle.Top()-16-size, size, size)
	g.prev = g.ball

	speed := g.ballSpeed()
	frac := serveAngles[g.rng.Intn(len(serveAngles))]
	g.vx = frac * speed
	g.vy = -math.Sqrt(speed*speed - g.vx*g.vx)
}

// ballSpeed is the current target speed after the difficulty ramp.
func (g *Game) ballSpeed() float64 {
	s := g.difficulty.Speed(g.cfg.Physics.BallSpeed, g.elapsed)
	if lim := g.cfg.Physics.MaxBallSpeed; lim > 0 && s > lim {
		s = lim
	}
	return s
}

// Update advances the game by dt seconds.
func (g *Game) Update(dt float64, input core.ActionSource) {
	if g.over {
		return
	}
	g.elapsed += dt
	g.prev = g.ball

	// Paddle movement, held inside the walls
	dx, _ := input.Axes(core.Player1)
	g.paddle.X += float64(dx) * g.cfg.Physics.PaddleSpeed * dt
	g.paddle.X = core.ClampF(g.paddle.X, g.bounds.Left()+4, g.bounds.Right()-4-g.paddle.W)

	// Ball movement
	g.ball.X += g.vx * dt
	g.ball.Y += g.vy * dt

	// Wall collisions with position correction
	if g.ball.Left() <= g.bounds.Left() {
		g.ball.X = g.bounds.Left()
		g.vx = math.Abs(g.vx)
	}
	if g.ball.Right() >= g.bounds.Right() {
		g.ball.X = g.bounds.Right() - g.ball.W
		g.vx = -math.Abs(g.vx)
	}
	if g.ball.Top() <= g.bounds.Top() {
		g.ball.Y = g.bounds.Top()
		g.vy = math.Abs(g.vy)
	}

	g.collidePaddle()
	g.collideBricks()

	// Lose a life when the ball falls past the floor
	if g.ball.Top() > g.bounds.Bottom() {
		g.lives--
		if g.lives <= 0 {
			g.over = true
			g.header = "Game Over"
		} else {
			g.serve()
		}
	}

	// Win when the wall is cleared
	if len(g.bricks) == 0 && !g.over {
		g.over = true
		g.header = "Victory!"
	}
}

// collidePaddle bounces a downward-moving ball off the paddle. A hit on
// the top face rebounds at an angle set by how far off-center it landed.
func (g *Game) collidePaddle() {
	if g.vy <= 0 || !physics.Overlap(g.ball, g.paddle) {
		return
	}

	switch physics.Impact(g.prev, g.ball, g.paddle) {
	case physics.SideAbove:
		hitOffset := (g.ball.CenterX() - g.paddle.CenterX()) / (g.paddle.W / 2)
		speed := g.ballSpeed()
		g.vy = -math.Abs(g.vy)
		g.vx = hitOffset * speed
		// Renormalize so edge hits do not exceed the target speed
		if sp := math.Hypot(g.vx, g.vy); sp > 1e-3 {
			scale := speed / sp
			g.vx *= scale
			g.vy *= scale
		}
		g.ball = physics.Eject(g.ball, g.paddle, physics.SideAbove)
	case physics.SideLeft:
		g.vx = -math.Abs(g.vx)
		g.ball = physics.Eject(g.ball, g.paddle, physics.SideLeft)
	case physics.SideRight:
		g.vx = math.Abs(g.vx)
		g.ball = physics.Eject(g.ball, g.paddle, physics.SideRight)
	default:
		// Corner contact: vertical reflection
		g.vy = -math.Abs(g.vy)
		g.ball = physics.Eject(g.ball, g.paddle, physics.SideAbove)
	}
}

// collideBricks removes at most one brick per frame and reflects the ball
// off the struck face.
func (g *Game) collideBricks() {
	hit := -1
	for i, b := range g.bricks {
		if physics.Overlap(g.ball, b) {
			hit = i
			break
		}
	}
	if hit < 0 {
		return
	}

	brick := g.bricks[hit]
	g.bricks = append(g.bricks[:hit], g.bricks[hit+1:]...)
	g.score++

	side := physics.Impact(g.prev, g.ball, brick)
	switch side {
	case physics.SideAbove:
		g.vy = -math.Abs(g.vy)
	case physics.SideBelow:
		g.vy = math.Abs(g.vy)
	case physics.SideLeft:
		g.vx = -math.Abs(g.vx)
	case physics.SideRight:
		g.vx = math.Abs(g.vx)
	default:
		// Corner contact: vertical reflection, no ejection
		g.vy = -g.vy
		return
	}
	g.ball = physics.Eject(g.ball, brick, side)
}

// IsOver reports whether the game has ended.
func (g *Game) IsOver() bool { return g.over }

// ResultsHeader is the label shown above the final standings.
func (g *Game) ResultsHeader() string {
	if g.header != "" {
		return g.header
	}
	return "Score"
}

// HigherIsBetter reports the scoring direction: more bricks wins.
func (g *Game) HigherIsBetter() bool { return true }

// Scores returns the solo score.
func (g *Game) Scores() []registry.Score {
	return []registry.Score{{Name: "Solo", Value: float64(g.score)}}
}

// Render draws the game into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	g.vp.OutlineBox(dst, g.bounds, core.ColorGray)

	for _, b := range g.bricks {
		c := core.PlayerColors[(int(b.Y)/24)%len(core.PlayerColors)]
		g.vp.FillBox(dst, b, BrickChar, c)
	}
	g.vp.FillBox(dst, g.paddle, PaddleChar, core.ColorBrightBlue)
	g.vp.FillBox(dst, g.ball, BallChar, core.ColorBrightWhite)

	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", g.score))
	dst.DrawText(1, 1, fmt.Sprintf("Lives: %d", g.lives))
	if g.over {
		dst.DrawTextCentered(dst.Height()/2, g.ResultsHeader())
	}
}

func init() {
	registry.Register("brickbreaker", func() registry.Game {
		return New()
	})
}
