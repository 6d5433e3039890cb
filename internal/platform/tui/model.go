package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/box-arcade/internal/config"
	"github.com/vovakirdan/box-arcade/internal/core"
	"github.com/vovakirdan/box-arcade/internal/registry"
	"github.com/vovakirdan/box-arcade/internal/storage"
)

// GameModel drives one game session: fixed-timestep updates, held-key
// input, pause and restart, and score persistence once the game ends.
// Games never see pause or restart; the model simply stops calling
// Update while paused.
type GameModel struct {
	game    registry.Game
	screen  *core.Screen
	store   *storage.Store
	config  core.RuntimeConfig
	input   *core.InputState
	tracker *KeyTracker

	paused     bool
	elapsed    float64
	quitting   bool
	backToMenu bool
	saved      bool
}

// NewGameModel creates a model for the given game. The game must already
// have been Reset by the caller so configuration errors surface before
// the terminal enters the alternate screen.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, kb config.Keybindings) GameModel {
	return GameModel{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:   store,
		config:  cfg,
		input:   core.NewInputState(),
		tracker: NewKeyTracker(kb),
	}
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// handleKey processes keyboard input. Platform keys (quit, pause,
// restart, back) are consumed here; everything else goes to the seat
// binding table.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit
	case "p":
		if !m.game.IsOver() {
			m.paused = !m.paused
			if m.paused {
				m.tracker.Clear(m.input)
			}
		}
		return m, nil
	case "r":
		if m.game.IsOver() {
			return m.restart()
		}
		return m, nil
	case "b", "esc":
		if m.game.IsOver() || m.paused {
			m.backToMenu = true
		}
		return m, nil
	}

	if !m.paused {
		m.tracker.HandleKey(msg, m.input)
	}
	return m, nil
}

// restart resets the game with a fresh seed.
func (m GameModel) restart() (tea.Model, tea.Cmd) {
	m.config.Seed = time.Now().UnixNano()
	if err := m.game.Reset(m.config); err != nil {
		// The same options worked a moment ago; bail out to the menu
		// rather than show a frozen arena.
		m.backToMenu = true
		return m, nil
	}
	m.tracker.Clear(m.input)
	m.elapsed = 0
	m.saved = false
	return m, nil
}

// handleTick advances the simulation by one fixed step.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.paused || m.game.IsOver() {
		if m.game.IsOver() && !m.saved {
			m.persistResults()
			m.saved = true
		}
		return m, tickCmd(m.config.TickRate)
	}

	dt := stepSize(m.config.TickRate)
	m.tracker.Decay(dt, m.input)
	m.game.Update(dt, m.input)
	m.elapsed += dt

	return m, tickCmd(m.config.TickRate)
}

// persistResults saves final scores and the match record. Best effort:
// the session continues even when the database is unavailable.
func (m *GameModel) persistResults() {
	if m.store == nil {
		return
	}
	scores := m.game.Scores()
	if len(scores) == 0 {
		return
	}
	//nolint:errcheck // Best-effort save
	m.store.SaveScores(m.game.ID(), scores)

	winner := bestScorer(scores, m.game.HigherIsBetter())
	//nolint:errcheck // Best-effort save
	m.store.SaveMatch(storage.MatchResult{
		GameID:   m.game.ID(),
		Winner:   winner,
		Players:  len(scores),
		Duration: m.elapsed,
	})
}

// bestScorer picks the winning display name, or "" on a tie.
func bestScorer(scores []registry.Score, higherIsBetter bool) string {
	best := scores[0]
	tied := false
	for _, s := range scores[1:] {
		switch {
		case higherIsBetter && s.Value > best.Value,
			!higherIsBetter && s.Value < best.Value:
			best = s
			tied = false
		case s.Value == best.Value:
			tied = true
		}
	}
	if tied {
		return ""
	}
	return best.Name
}

// View renders the game.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)

	if m.paused {
		m.screen.DrawTextCentered(m.screen.Height()/2, "PAUSED  (p resume, q quit)")
	}
	if m.game.IsOver() {
		m.drawResults()
	}

	return RenderScreen(m.screen)
}

// drawResults overlays the final standings under the game's own banner.
func (m GameModel) drawResults() {
	mid := m.screen.Height() / 2
	m.screen.DrawTextCentered(mid+1, m.game.ResultsHeader())
	for i, s := range m.game.Scores() {
		m.screen.DrawTextCentered(mid+2+i, fmt.Sprintf("%s  %.1f", s.Name, s.Value))
	}
	m.screen.DrawTextCentered(mid+3+len(m.game.Scores()), "r restart | b menu | q quit")
}

// IsQuitting returns true if the user requested to quit entirely.
func (m GameModel) IsQuitting() bool { return m.quitting }

// BackToMenu returns true if the user requested to return to the menu.
func (m GameModel) BackToMenu() bool { return m.backToMenu }

// Run resets and runs a single game in the terminal, blocking until the
// user quits or returns to the menu.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, kb config.Keybindings) error {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if err := game.Reset(cfg); err != nil {
		return err
	}

	model := NewGameModel(game, store, cfg, kb)
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
