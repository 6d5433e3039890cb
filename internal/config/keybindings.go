package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/vovakirdan/box-arcade/internal/core"
)

// PlayerKeys names the physical keys bound to one player's actions, using
// terminal key names ("w", "up", "space").
type PlayerKeys struct {
	Up    string `json:"up"`
	Down  string `json:"down"`
	Left  string `json:"left"`
	Right string `json:"right"`
}

// Keybindings maps player seats ("1".."4") to their key profiles. All
// seats share one keyboard, so no key may appear in two profiles.
type Keybindings struct {
	Players map[string]PlayerKeys `json:"players"`
}

// DefaultKeybindings returns the built-in four-seat layout:
// WASD, arrows, IJKL, and numpad 8/5/4/6.
func DefaultKeybindings() Keybindings {
	return Keybindings{
		Players: map[string]PlayerKeys{
			"1": {Up: "w", Down: "s", Left: "a", Right: "d"},
			"2": {Up: "up", Down: "down", Left: "left", Right: "right"},
			"3": {Up: "i", Down: "k", Left: "j", Right: "l"},
			"4": {Up: "8", Down: "5", Left: "4", Right: "6"},
		},
	}
}

// LoadKeybindings loads keyboard bindings.
// Search order: customPath -> ~/.arcade/keys.json -> ./keys.json -> built-in defaults
func LoadKeybindings(customPath string) (Keybindings, error) {
	var kb Keybindings

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return kb, fmt.Errorf("failed to read keybindings %s: %w", customPath, err)
		}
		if err := json.Unmarshal(data, &kb); err != nil {
			return kb, fmt.Errorf("failed to parse keybindings %s: %w", customPath, err)
		}
		if err := kb.Validate(); err != nil {
			return kb, fmt.Errorf("keybindings %s: %w", customPath, err)
		}
		return kb, nil
	}

	if home, err := os.UserHomeDir(); err == nil {
		if data, err := os.ReadFile(filepath.Join(home, ".arcade", "keys.json")); err == nil {
			if json.Unmarshal(data, &kb) == nil && kb.Validate() == nil {
				return kb, nil
			}
		}
	}

	if data, err := os.ReadFile("keys.json"); err == nil {
		if json.Unmarshal(data, &kb) == nil && kb.Validate() == nil {
			return kb, nil
		}
	}

	return DefaultKeybindings(), nil
}

// Validate rejects profiles for unknown seats and keys bound to more than
// one action.
func (kb Keybindings) Validate() error {
	seen := make(map[string]string)
	for seat, keys := range kb.Players {
		n, err := strconv.Atoi(seat)
		if err != nil || n < 1 || n > core.MaxPlayers {
			return fmt.Errorf("invalid player seat %q", seat)
		}
		for _, k := range []string{keys.Up, keys.Down, keys.Left, keys.Right} {
			if k == "" {
				continue
			}
			if prev, dup := seen[k]; dup {
				return fmt.Errorf("key %q bound to both seat %s and seat %s", k, prev, seat)
			}
			seen[k] = seat
		}
	}
	return nil
}

// Binding resolves one physical key to a seat and action.
type Binding struct {
	Player core.PlayerID
	Action core.Action
}

// Lookup flattens the profiles into a key -> binding table for the input
// layer. Unset keys are skipped.
func (kb Keybindings) Lookup() map[string]Binding {
	out := make(map[string]Binding)
	for seat, keys := range kb.Players {
		n, err := strconv.Atoi(seat)
		if err != nil || n < 1 || n > core.MaxPlayers {
			continue
		}
		id := core.PlayerID(n)
		for action, key := range map[core.Action]string{
			core.ActionUp:    keys.Up,
			core.ActionDown:  keys.Down,
			core.ActionLeft:  keys.Left,
			core.ActionRight: keys.Right,
		} {
			if key != "" {
				out[key] = Binding{Player: id, Action: action}
			}
		}
	}
	return out
}
