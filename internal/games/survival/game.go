// Package survival implements the Survival games: dodge hazard boxes that
// stream in from the arena edges at an ever-increasing rate. Solo scores
// time survived; PvP eliminates on contact until one player remains.
package survival

import (
	"fmt"
	"strconv"
	"time"

	"github.com/vovakirdan/box-arcade/internal/arena"
	"github.com/vovakirdan/box-arcade/internal/config"
	"github.com/vovakirdan/box-arcade/internal/core"
	"github.com/vovakirdan/box-arcade/internal/entity"
	"github.com/vovakirdan/box-arcade/internal/hazard"
	"github.com/vovakirdan/box-arcade/internal/physics"
	"github.com/vovakirdan/box-arcade/internal/registry"
)

// Visual characters for rendering
const (
	PlayerChar = '█'
	HazardChar = '▓'
	DeadChar   = '░'
)

// Mode selects the game variant.
type Mode int

const (
	ModeSolo Mode = iota // One player, survive as long as possible
	ModePvP              // 2-4 players, last one standing
)

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

// survivor couples a roster entry with its elimination state.
type survivor struct {
	*entity.Player
	alive    bool
	elimTime float64
}

// Game implements the Survival game logic in both variants.
type Game struct {
	mode Mode

	players  []*survivor
	director *hazard.Director
	bounds   core.Box
	elapsed  float64
	over     bool

	runtime core.RuntimeConfig
	cfg     config.SurvivalConfig
	vp      core.Viewport
}

// New creates a new solo Survival game instance.
func New() *Game {
	return &Game{mode: ModeSolo}
}

// NewPvP creates a new PvP Survival game instance.
func NewPvP() *Game {
	return &Game{mode: ModePvP}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModePvP {
		return "survival_pvp"
	}
	return "survival"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModePvP {
		return "Survival (PvP)"
	}
	return "Survival"
}

// Reset initializes or reinitializes the round.
func (g *Game) Reset(rc core.RuntimeConfig) error {
	cfg, err := config.LoadSurvival(rc.Option("config", configPath))
	if err != nil {
		return fmt.Errorf("survival: %w", err)
	}
	if difficultyPreset != "" {
		config.ApplySurvivalPreset(&cfg, difficultyPreset)
	}

	humans := 1
	if g.mode == ModePvP {
		humans, err = optionInt(rc, "players", 2)
		if err != nil {
			return err
		}
		if humans < 2 {
			return fmt.Errorf("survival: pvp needs at least 2 players, got %d", humans)
		}
	}

	roster, err := entity.NewRoster(humans, 0, core.NewBox(0, 0, cfg.Player.Width, cfg.Player.Height))
	if err != nil {
		return fmt.Errorf("survival: %w", err)
	}

	seed := rc.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	bounds := rc.PlayField()
	spawns := entity.SpawnPositions(bounds.Inflate(-80, -80), len(roster), cfg.Player.Width, cfg.Player.Height)

	players := make([]*survivor, len(roster))
	for i, p := range roster {
		p.Box = spawns[i]
		players[i] = &survivor{Player: p, alive: true}
	}

	g.players = players
	g.director = hazard.NewDirector(bounds, seed, hazard.Config{
		HazardSize:    cfg.Hazards.Size,
		SpawnInterval: cfg.Hazards.StartInterval,
		MinInterval:   cfg.Hazards.EndInterval,
		BaseSpeed:     cfg.Hazards.StartSpeed,
		MaxSpeed:      cfg.Hazards.EndSpeed,
		RampWindow:    cfg.Hazards.RampTime,
	})
	g.bounds = bounds
	g.elapsed = 0
	g.over = false
	g.runtime = rc
	g.cfg = cfg
	g.vp = core.NewViewport(rc.ArenaW, rc.ArenaH, rc.ScreenW, rc.ScreenH)
	return nil
}

// Update advances the round by dt seconds.
func (g *Game) Update(dt float64, input core.ActionSource) {
	if g.over {
		return
	}

	// Movement. PvP players are held inside the arena; the solo player is
	// free to leave, and leaving ends the round.
	for _, p := range g.players {
		if !p.alive {
			continue
		}
		dx, dy := input.Axes(p.ID)
		p.Box.X += float64(dx) * g.cfg.Player.MoveSpeed * dt
		p.Box.Y += float64(dy) * g.cfg.Player.MoveSpeed * dt
		if g.mode == ModePvP {
			p.Box = arena.Clamp(p.Box, g.bounds)
		}
	}

	if g.mode == ModeSolo && !g.bounds.Contains(g.players[0].Box) {
		g.over = true
		return
	}

	g.director.Update(dt)

	// Hazard contact: terminal in solo, elimination in PvP
	for _, p := range g.players {
		if !p.alive {
			continue
		}
		for _, h := range g.director.Hazards() {
			if physics.Overlap(h.Box, p.Box) {
				if g.mode == ModeSolo {
					g.over = true
					return
				}
				p.alive = false
				p.elimTime = g.elapsed
				break
			}
		}
	}

	g.elapsed += dt

	if g.mode == ModePvP {
		alive := 0
		for _, p := range g.players {
			if p.alive {
				alive++
			}
		}
		if alive <= 1 {
			g.over = true
		}
	}
}

// IsOver reports whether the round has ended.
func (g *Game) IsOver() bool { return g.over }

// ResultsHeader is the label shown above the final standings.
func (g *Game) ResultsHeader() string { return "Time survived" }

// HigherIsBetter reports the scoring direction: longer survival wins.
func (g *Game) HigherIsBetter() bool { return true }

// Scores returns time survived per player. Eliminated players keep their
// elimination time; survivors get the full elapsed time.
func (g *Game) Scores() []registry.Score {
	out := make([]registry.Score, len(g.players))
	for i, p := range g.players {
		t := p.elimTime
		if p.alive {
			t = g.elapsed
		}
		out[i] = registry.Score{Name: p.Name, Value: t}
	}
	return out
}

// Elapsed returns seconds survived so far.
func (g *Game) Elapsed() float64 { return g.elapsed }

// Render draws the round into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	g.vp.OutlineBox(dst, g.bounds, core.ColorGray)

	for _, h := range g.director.Hazards() {
		g.vp.FillBox(dst, h.Box, HazardChar, core.ColorBrightMagenta)
	}

	for _, p := range g.players {
		r, c := PlayerChar, p.Color
		if !p.alive {
			r, c = DeadChar, core.ColorGray
		}
		g.vp.FillBox(dst, p.Box, r, c)
	}

	dst.DrawText(1, 0, fmt.Sprintf("Time: %.1fs", g.elapsed))
	if g.mode == ModePvP {
		alive := 0
		for _, p := range g.players {
			if p.alive {
				alive++
			}
		}
		dst.DrawText(1, 1, fmt.Sprintf("Alive: %d/%d", alive, len(g.players)))
	}
	if g.over {
		dst.DrawTextCentered(dst.Height()/2, "ROUND OVER")
	}
}

func optionInt(rc core.RuntimeConfig, key string, def int) (int, error) {
	raw := rc.Option(key, "")
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("survival: invalid %s %q", key, raw)
	}
	return n, nil
}

func init() {
	registry.Register("survival", func() registry.Game {
		return New()
	})
	registry.Register("survival_pvp", func() registry.Game {
		return NewPvP()
	})
}
