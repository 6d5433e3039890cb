// Package traillock implements Trail Lock: 2-4 players in constant motion
// leave solid trails behind them inside a slowly shrinking arena. Touching
// any trail, another player, or the arena edge eliminates you for the
// round; the last survivor takes the round, best of ten.
package traillock

import (
	"fmt"
	"math"
	"strconv"

	"github.com/vovakirdan/box-arcade/internal/arena"
	"github.com/vovakirdan/box-arcade/internal/config"
	"github.com/vovakirdan/box-arcade/internal/core"
	"github.com/vovakirdan/box-arcade/internal/entity"
	"github.com/vovakirdan/box-arcade/internal/physics"
	"github.com/vovakirdan/box-arcade/internal/registry"
)

// Visual characters for rendering
const (
	PlayerChar = '█'
	TrailChar  = '▒'
	DeadChar   = '░'
)

// roundOverDelay is how long the inter-round banner stays up.
const roundOverDelay = 2.0

// spawnMargin keeps round starts away from the arena edge.
const spawnMargin = 100.0

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

// trailSeg is one solid segment of a player's trail.
type trailSeg struct {
	box   core.Box
	color core.Color
	owner core.PlayerID
}

// racer couples a roster entry with its round state.
type racer struct {
	*entity.Player
	alive      bool
	prev       core.Box
	dirX, dirY float64
	wins       int
}

// Game implements the Trail Lock game logic.
type Game struct {
	players []*racer
	trails  []trailSeg

	bounds  core.Box
	field   core.Box // current, shrinking arena
	shrink  *arena.Shrinker
	round   int
	elapsed float64

	trailsOn    bool
	roundOver   bool
	roundTimer  float64
	roundWinner core.PlayerID // 0 when the round was a draw
	over        bool

	runtime core.RuntimeConfig
	cfg     config.TrailLockConfig
	vp      core.Viewport
}

// New creates a new Trail Lock game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return "traillock" }

// Title returns the display name for this game.
func (g *Game) Title() string { return "Trail Lock" }

// Reset initializes or reinitializes the match.
func (g *Game) Reset(rc core.RuntimeConfig) error {
	cfg, err := config.LoadTrailLock(rc.Option("config", configPath))
	if err != nil {
		return fmt.Errorf("traillock: %w", err)
	}
	if difficultyPreset != "" {
		config.ApplyTrailLockPreset(&cfg, difficultyPreset)
	}
	if cfg.Gameplay.Rounds < 1 {
		return fmt.Errorf("traillock: match needs at least 1 round, got %d", cfg.Gameplay.Rounds)
	}

	humans, err := optionInt(rc, "players", 2)
	if err != nil {
		return err
	}
	if humans < 2 {
		return fmt.Errorf("traillock: needs at least 2 players, got %d", humans)
	}

	size := cfg.Player.Size
	roster, err := entity.NewRoster(humans, 0, core.NewBox(0, 0, size, size))
	if err != nil {
		return fmt.Errorf("traillock: %w", err)
	}

	g.players = make([]*racer, len(roster))
	for i, p := range roster {
		g.players[i] = &racer{Player: p}
	}
	g.bounds = rc.PlayField()
	g.shrink = arena.NewShrinker(cfg.Arena.ShrinkRate, cfg.Arena.MinWidth, cfg.Arena.MinHeight)
	g.round = 0
	g.over = false
	g.runtime = rc
	g.cfg = cfg
	g.vp = core.NewViewport(rc.ArenaW, rc.ArenaH, rc.ScreenW, rc.ScreenH)
	g.resetRound()
	return nil
}

// resetRound restores the arena, clears trails, and respawns everyone on
// a course biased toward the center so nobody starts into a wall.
func (g *Game) resetRound() {
	size := g.cfg.Player.Size
	b := g.bounds
	spawns := []core.Box{
		core.NewBox(b.Left()+spawnMargin, b.Top()+spawnMargin, size, size),
		core.NewBox(b.Right()-spawnMargin-size, b.Top()+spawnMargin, size, size),
		core.NewBox(b.Left()+spawnMargin, b.Bottom()-spawnMargin-size, size, size),
		core.NewBox(b.Right()-spawnMargin-size, b.Bottom()-spawnMargin-size, size, size),
	}

	g.trails = g.trails[:0]
	g.field = b
	g.shrink.Reset()
	g.trailsOn = false
	g.roundOver = false
	g.roundTimer = 0
	g.roundWinner = 0
	g.elapsed = 0

	diag := 1 / math.Sqrt2
	for i, p := range g.players {
		p.Box = spawns[i%len(spawns)]
		p.prev = p.Box
		p.alive = true
		dx, dy := 1.0, 1.0
		if p.Box.CenterX() > b.CenterX() {
			dx = -1.0
		}
		if p.Box.CenterY() > b.CenterY() {
			dy = -1.0
		}
		p.dirX, p.dirY = dx*diag, dy*diag
	}
}

// Update advances the match by dt seconds.
func (g *Game) Update(dt float64, input core.ActionSource) {
	if g.over {
		return
	}

	if g.roundOver {
		g.roundTimer += dt
		if g.roundTimer >= roundOverDelay {
			if g.round+1 >= g.cfg.Gameplay.Rounds {
				g.over = true
				return
			}
			g.round++
			g.resetRound()
		}
		return
	}

	g.elapsed += dt
	if !g.trailsOn && g.elapsed >= g.cfg.Gameplay.StartDelay {
		g.trailsOn = true
	}

	// Forced movement: steering changes course, releasing keys does not
	// stop you. Leaving the arena eliminates.
	for _, p := range g.players {
		if !p.alive {
			continue
		}
		dx, dy := input.Axes(p.ID)
		if dx != 0 || dy != 0 {
			fx, fy := float64(dx), float64(dy)
			if dx != 0 && dy != 0 {
				fx /= math.Sqrt2
				fy /= math.Sqrt2
			}
			p.dirX, p.dirY = fx, fy
		}
		p.Box.X += p.dirX * g.cfg.Player.Speed * dt
		p.Box.Y += p.dirY * g.cfg.Player.Speed * dt

		if !g.field.Contains(p.Box) {
			p.alive = false
			continue
		}
		if g.trailsOn && (p.prev.X != p.Box.X || p.prev.Y != p.Box.Y) {
			inset := g.cfg.Gameplay.TrailInset
			g.trails = append(g.trails, trailSeg{
				box:   p.prev.Inflate(-inset, -inset),
				color: p.Color,
				owner: p.ID,
			})
		}
		p.prev = p.Box
	}

	g.field = g.shrink.Step(dt, g.field)

	// Head-on contact takes out both players
	for i := 0; i < len(g.players); i++ {
		a := g.players[i]
		if !a.alive {
			continue
		}
		for j := i + 1; j < len(g.players); j++ {
			b := g.players[j]
			if b.alive && physics.Overlap(a.Box, b.Box) {
				a.alive = false
				b.alive = false
			}
		}
	}

	// Any trail but your own is lethal
	for _, p := range g.players {
		if !p.alive {
			continue
		}
		for _, seg := range g.trails {
			if seg.owner == p.ID {
				continue
			}
			if physics.Overlap(seg.box, p.Box) {
				p.alive = false
				break
			}
		}
	}

	survivors := g.aliveIDs()
	if len(survivors) <= 1 {
		g.roundOver = true
		if len(survivors) == 1 {
			g.roundWinner = survivors[0]
			for _, p := range g.players {
				if p.ID == g.roundWinner {
					p.wins++
				}
			}
		}
	}
}

func (g *Game) aliveIDs() []core.PlayerID {
	var out []core.PlayerID
	for _, p := range g.players {
		if p.alive {
			out = append(out, p.ID)
		}
	}
	return out
}

// IsOver reports whether the match has ended.
func (g *Game) IsOver() bool { return g.over }

// ResultsHeader is the label shown above the final standings.
func (g *Game) ResultsHeader() string { return "Rounds won" }

// HigherIsBetter reports the scoring direction: most rounds wins.
func (g *Game) HigherIsBetter() bool { return true }

// Scores returns rounds won per player.
func (g *Game) Scores() []registry.Score {
	out := make([]registry.Score, len(g.players))
	for i, p := range g.players {
		out[i] = registry.Score{Name: p.Name, Value: float64(p.wins)}
	}
	return out
}

// Round returns the 1-based current round number.
func (g *Game) Round() int { return g.round + 1 }

// Arena returns the current, possibly shrunken, arena rectangle.
func (g *Game) Arena() core.Box { return g.field }

// TrailsActive reports whether the grace period has ended.
func (g *Game) TrailsActive() bool { return g.trailsOn }

// Render draws the match into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	g.vp.OutlineBox(dst, g.field, core.ColorGray)

	for _, seg := range g.trails {
		g.vp.FillBox(dst, seg.box, TrailChar, seg.color)
	}
	for _, p := range g.players {
		r, c := PlayerChar, p.Color
		if !p.alive {
			r, c = DeadChar, core.ColorGray
		}
		g.vp.FillBox(dst, p.Box, r, c)
	}

	status := "Get Ready"
	if g.trailsOn {
		status = "Trails ON"
	}
	dst.DrawText(1, 0, fmt.Sprintf("Round %d/%d  %s", g.Round(), g.cfg.Gameplay.Rounds, status))
	for i, p := range g.players {
		dst.DrawTextColored(1, 1+i, fmt.Sprintf("%s: %d", p.Name, p.wins), p.Color)
	}
	if g.roundOver && !g.over {
		banner := "Round Over"
		for _, p := range g.players {
			if p.ID == g.roundWinner {
				banner = fmt.Sprintf("Round Winner: %s", p.Name)
			}
		}
		dst.DrawTextCentered(dst.Height()/2, banner)
	}
	if g.over {
		dst.DrawTextCentered(dst.Height()/2, "MATCH OVER")
	}
}

func optionInt(rc core.RuntimeConfig, key string, def int) (int, error) {
	raw := rc.Option(key, "")
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("traillock: option %s=%q is not a number", key, raw)
	}
	return n, nil
}

func init() {
	registry.Register("traillock", func() registry.Game {
		return New()
	})
}
