package core

// PlayerID identifies a player seat (1-based). Up to four seats share one
// keyboard via per-player keybindings.
type PlayerID int

// Predefined player seats.
const (
	Player1 PlayerID = iota + 1
	Player2
	Player3
	Player4
)

// MaxPlayers is the number of seats the default keybindings cover.
const MaxPlayers = 4

// Action represents a semantic game action, abstracted from physical key
// presses. Games work with high-level intents rather than raw input.
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// ParseAction converts a configuration action name to an Action.
// Unknown names map to ActionNone, which reads as "never pressed".
func ParseAction(name string) Action {
	switch name {
	case "up":
		return ActionUp
	case "down":
		return ActionDown
	case "left":
		return ActionLeft
	case "right":
		return ActionRight
	default:
		return ActionNone
	}
}

// ActionSource is the read-only input capability games consume each frame.
// Both queries are side-effect free and valid at any point within a step.
type ActionSource interface {
	// Axes returns the movement direction for a player, each component
	// in {-1, 0, 1}. Opposing held actions cancel out.
	Axes(p PlayerID) (dx, dy int)

	// Held reports whether the given action is currently held by a player.
	Held(p PlayerID, a Action) bool
}

// InputState tracks currently-held logical actions per player, derived from
// raw key press/release events delivered by the platform layer.
type InputState struct {
	held map[PlayerID]map[Action]bool
}

// NewInputState creates an empty input state.
func NewInputState() *InputState {
	return &InputState{held: make(map[PlayerID]map[Action]bool)}
}

// Press marks an action as held for a player.
func (s *InputState) Press(p PlayerID, a Action) {
	if a == ActionNone {
		return
	}
	m, ok := s.held[p]
	if !ok {
		m = make(map[Action]bool)
		s.held[p] = m
	}
	m[a] = true
}

// Release clears a held action for a player. Releasing an action that is not
// held is a no-op.
func (s *InputState) Release(p PlayerID, a Action) {
	if m, ok := s.held[p]; ok {
		delete(m, a)
	}
}

// ReleaseAll clears every held action for every player.
func (s *InputState) ReleaseAll() {
	for p := range s.held {
		s.held[p] = make(map[Action]bool)
	}
}

// Held reports whether an action is currently held by a player.
func (s *InputState) Held(p PlayerID, a Action) bool {
	m, ok := s.held[p]
	if !ok {
		return false
	}
	return m[a]
}

// Axes returns the movement direction for a player, each component in
// {-1, 0, 1}. Opposing held actions cancel out.
func (s *InputState) Axes(p PlayerID) (dx, dy int) {
	if s.Held(p, ActionLeft) {
		dx--
	}
	if s.Held(p, ActionRight) {
		dx++
	}
	if s.Held(p, ActionUp) {
		dy--
	}
	if s.Held(p, ActionDown) {
		dy++
	}
	return dx, dy
}
