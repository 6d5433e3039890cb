package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/box-arcade/internal/config"
	"github.com/vovakirdan/box-arcade/internal/core"
)

// holdTime is how long a key counts as held after its last repeat event.
// Terminals report presses and auto-repeats but never releases, so each
// event arms a short timer and expiry stands in for key-up.
const holdTime = 0.15

// KeyTracker translates terminal key events into per-seat held state.
// All seats share one keyboard; the binding table decides which seat a
// physical key belongs to.
type KeyTracker struct {
	bindings map[string]config.Binding
	held     map[string]float64 // key -> seconds until synthetic release
}

// NewKeyTracker creates a tracker for the given binding profiles.
func NewKeyTracker(kb config.Keybindings) *KeyTracker {
	return &KeyTracker{
		bindings: kb.Lookup(),
		held:     make(map[string]float64),
	}
}

// HandleKey presses the bound action for a key event and refreshes its
// hold timer. Unbound keys are ignored.
func (t *KeyTracker) HandleKey(msg tea.KeyMsg, input *core.InputState) {
	key := msg.String()
	b, ok := t.bindings[key]
	if !ok {
		return
	}
	input.Press(b.Player, b.Action)
	t.held[key] = holdTime
}

// Decay ages hold timers by dt and releases actions whose keys have gone
// quiet. Call once per simulation tick, before the game update.
func (t *KeyTracker) Decay(dt float64, input *core.InputState) {
	for key, left := range t.held {
		left -= dt
		if left <= 0 {
			b := t.bindings[key]
			input.Release(b.Player, b.Action)
			delete(t.held, key)
			continue
		}
		t.held[key] = left
	}
}

// Clear drops all held state, releasing everything.
func (t *KeyTracker) Clear(input *core.InputState) {
	for key := range t.held {
		b := t.bindings[key]
		input.Release(b.Player, b.Action)
		delete(t.held, key)
	}
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

// MapMenuKey translates a key to a menu action.
func MapMenuKey(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}
