// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/box-arcade/internal/core"
)

// Score is one row of a game's results: a display name paired with the
// value the game is scored in (seconds survived, "it" time, bricks, rounds).
type Score struct {
	Name  string
	Value float64
}

// Game is the core interface that all arcade games must implement.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input mapping, timing, pause/restart, and rendering.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "tag", "survival").
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display (e.g., "Platform Tag").
	Title() string

	// Reset initializes or resets the game state.
	// Called once at start and again when restarting after game over.
	// The RuntimeConfig provides arena dimensions and RNG seed.
	// Returns an error if the configuration cannot produce a playable game.
	Reset(cfg core.RuntimeConfig) error

	// Update advances the simulation by dt seconds. The platform layer
	// calls it with 1/TickRate and never passes a dt above the engine cap.
	// Input exposes only movement actions; pause is handled above.
	Update(dt float64, input core.ActionSource)

	// Render draws the current game state into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// IsOver reports whether the session has ended.
	IsOver() bool

	// ResultsHeader is the label shown above the final standings
	// (e.g., "IT time (less is better)").
	ResultsHeader() string

	// Scores returns the final (or running) standings, one row per player.
	Scores() []Score

	// HigherIsBetter tells score storage which direction wins.
	HigherIsBetter() bool
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	g := f()
	titles[id] = g.Title()
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
