// Package tag implements Platform Tag: a side-view chase where one player
// is "it" and the lowest accumulated "it" time wins when the match timer
// runs out.
package tag

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/vovakirdan/box-arcade/internal/arena"
	"github.com/vovakirdan/box-arcade/internal/config"
	"github.com/vovakirdan/box-arcade/internal/core"
	"github.com/vovakirdan/box-arcade/internal/entity"
	"github.com/vovakirdan/box-arcade/internal/physics"
	"github.com/vovakirdan/box-arcade/internal/platformer"
	"github.com/vovakirdan/box-arcade/internal/registry"
)

// Visual characters for rendering
const (
	PlayerChar   = '█'
	ItChar       = '◆'
	PlatformChar = '▀'
	MovingChar   = '▬'
	DropChar     = '┈'
	SpeedChar    = '»'
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

// tagPlayer couples a roster entry with its physics body and tag state.
type tagPlayer struct {
	*entity.Player
	body   *platformer.Body
	itTime float64
}

// Game implements the Platform Tag game logic.
type Game struct {
	players []*tagPlayer
	world   *platformer.World
	bounds  core.Box
	rng     *rand.Rand

	itID      core.PlayerID
	cooldown  float64
	remaining float64
	over      bool

	runtime core.RuntimeConfig
	cfg     config.TagConfig
	vp      core.Viewport
}

// New creates a new Platform Tag game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return "tag" }

// Title returns the display name for this game.
func (g *Game) Title() string { return "Platform Tag" }

// Reset initializes or reinitializes the match.
func (g *Game) Reset(rc core.RuntimeConfig) error {
	cfg, err := config.LoadTag(rc.Option("config", configPath))
	if err != nil {
		return fmt.Errorf("tag: %w", err)
	}
	if difficultyPreset != "" {
		config.ApplyTagPreset(&cfg, difficultyPreset)
	}

	humans, err := optionInt(rc, "players", 1)
	if err != nil {
		return err
	}
	bots, err := optionInt(rc, "bots", 0)
	if err != nil {
		return err
	}
	if humans+bots < 2 {
		// Tag needs someone to chase
		bots = 2 - humans
	}
	if mt, err := optionInt(rc, "match_time", int(cfg.Gameplay.MatchTime)); err != nil {
		return err
	} else {
		cfg.Gameplay.MatchTime = float64(mt)
	}
	if m, err := optionInt(rc, "map", cfg.Gameplay.Map); err != nil {
		return err
	} else {
		cfg.Gameplay.Map = m
	}

	seed := rc.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	bounds := rc.PlayField()
	opts, err := platformer.LayoutForMap(cfg.Gameplay.Map)
	if err != nil {
		return fmt.Errorf("tag: %w", err)
	}
	phys := platformer.Config{
		Gravity:        cfg.Physics.Gravity,
		MoveSpeed:      cfg.Physics.MoveSpeed,
		JumpSpeed:      cfg.Physics.JumpSpeed,
		JumpBufferTime: cfg.Physics.JumpBuffer,
		MaxJumps:       cfg.Physics.MaxJumps,
		SpeedBoost:     cfg.Physics.SpeedBoost,
		DropNudge:      cfg.Physics.DropNudge,
	}
	platforms, err := platformer.GenerateLayout(bounds, phys, rng, opts)
	if err != nil {
		return fmt.Errorf("tag: %w", err)
	}

	roster, err := entity.NewRoster(humans, bots, core.NewBox(0, 0, cfg.Player.Width, cfg.Player.Height))
	if err != nil {
		return fmt.Errorf("tag: %w", err)
	}
	spawns := entity.SpawnPositions(bounds, len(roster), cfg.Player.Width, cfg.Player.Height)

	world := platformer.NewWorld(bounds, phys, platforms)
	players := make([]*tagPlayer, len(roster))
	for i, p := range roster {
		p.Box = spawns[i]
		players[i] = &tagPlayer{
			Player: p,
			body:   platformer.NewBody(spawns[i], phys.MaxJumps),
		}
	}

	g.players = players
	g.world = world
	g.bounds = bounds
	g.rng = rng
	g.itID = players[rng.Intn(len(players))].ID
	g.cooldown = 0
	g.remaining = cfg.Gameplay.MatchTime
	g.over = false
	g.runtime = rc
	g.cfg = cfg
	g.vp = core.NewViewport(rc.ArenaW, rc.ArenaH, rc.ScreenW, rc.ScreenH)
	return nil
}

// Update advances the match by dt seconds.
func (g *Game) Update(dt float64, input core.ActionSource) {
	if g.over {
		return
	}

	g.world.Step(dt)

	roster := make([]*entity.Player, len(g.players))
	for i, p := range g.players {
		roster[i] = p.Player
	}
	for _, p := range g.players {
		in := p.Intent(input, roster, g.itID)
		g.world.StepBody(dt, p.body, platformer.Intent{
			Axis:     in.DX,
			JumpHeld: in.UpHeld,
			DownHeld: in.DownHeld,
		})
	}

	// Cooldown runs down before the transfer check so a fresh transfer
	// leaves the full window intact at frame end. The check runs on the
	// raw post-step positions, before the soft separation moves anyone.
	g.cooldown -= dt
	if g.cooldown < 0 {
		g.cooldown = 0
	}
	if g.cooldown == 0 {
		it := g.find(g.itID)
		for _, p := range g.players {
			if p.ID == g.itID {
				continue
			}
			if physics.Overlap(it.body.Box, p.body.Box) {
				g.itID = p.ID
				g.cooldown = g.cfg.Gameplay.TagCooldown
				break
			}
		}
	}

	// Soft player-vs-player separation, then mirror boxes for the bots
	for i := 0; i < len(g.players); i++ {
		for j := i + 1; j < len(g.players); j++ {
			a, b := g.players[i].body, g.players[j].body
			if physics.Overlap(a.Box, b.Box) {
				physics.PushApart(&a.Box, &b.Box)
			}
		}
	}
	for _, p := range g.players {
		p.body.Box = arena.Clamp(p.body.Box, g.bounds)
		p.Player.Box = p.body.Box
	}

	// The holder at frame end pays for the whole frame
	g.find(g.itID).itTime += dt

	g.remaining -= dt
	if g.remaining <= 0 {
		g.remaining = 0
		g.over = true
	}
}

func (g *Game) find(id core.PlayerID) *tagPlayer {
	for _, p := range g.players {
		if p.ID == id {
			return p
		}
	}
	return g.players[0]
}

// IsOver reports whether the match has ended.
func (g *Game) IsOver() bool { return g.over }

// ResultsHeader is the label shown above the final standings.
func (g *Game) ResultsHeader() string { return "IT time (less is better)" }

// HigherIsBetter reports the scoring direction: less IT time wins.
func (g *Game) HigherIsBetter() bool { return false }

// Scores returns per-player accumulated IT time in roster order.
func (g *Game) Scores() []registry.Score {
	out := make([]registry.Score, len(g.players))
	for i, p := range g.players {
		out[i] = registry.Score{Name: p.Name, Value: p.itTime}
	}
	return out
}

// ItID returns the current "it" holder.
func (g *Game) ItID() core.PlayerID { return g.itID }

// Remaining returns seconds left on the match clock.
func (g *Game) Remaining() float64 { return g.remaining }

// Render draws the match into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	g.vp.OutlineBox(dst, g.bounds, core.ColorGray)

	for _, p := range g.world.Platforms {
		r := PlatformChar
		c := core.ColorWhite
		switch p.Kind {
		case platformer.KindMoving:
			r, c = MovingChar, core.ColorCyan
		case platformer.KindDropThrough:
			r, c = DropChar, core.ColorGray
		case platformer.KindSpeed:
			r, c = SpeedChar, core.ColorYellow
		}
		g.vp.FillBox(dst, p.Box, r, c)
	}

	for _, p := range g.players {
		r := PlayerChar
		if p.ID == g.itID {
			r = ItChar
		}
		g.vp.FillBox(dst, p.body.Box, r, p.Color)
	}

	it := g.find(g.itID)
	dst.DrawText(1, 0, fmt.Sprintf("IT: %s", it.Name))
	dst.DrawText(1, 1, fmt.Sprintf("Time left: %ds", int(g.remaining)))
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
		return 0, fmt.Errorf("tag: invalid %s %q", key, raw)
	}
	return n, nil
}

func init() {
	registry.Register("tag", func() registry.Game {
		return New()
	})
}
