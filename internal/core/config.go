package core

// Default arena dimensions in simulation pixels. Games simulate in this
// continuous space and scale down to terminal cells when rendering.
const (
	DefaultArenaW = 800
	DefaultArenaH = 600
)

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int     // Screen width in characters
	ScreenH  int     // Screen height in characters
	TickRate int     // Simulation ticks per second (default 60)
	Seed     int64   // RNG seed for deterministic gameplay
	ArenaW   float64 // Simulation space width in pixels
	ArenaH   float64 // Simulation space height in pixels

	// Options carries per-game settings from flags and config files
	// ("players", "bots", "map", "match_time", ...). Games parse the keys
	// they care about and reject malformed values from Reset.
	Options map[string]string
}

// Option returns a per-game option value, or def when the key is unset.
func (c RuntimeConfig) Option(key, def string) string {
	if v, ok := c.Options[key]; ok && v != "" {
		return v
	}
	return def
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
		ArenaW:   DefaultArenaW,
		ArenaH:   DefaultArenaH,
	}
}

// PlayField returns the playable bounds inside the arena, leaving room for
// the HUD strip at the top and a thin margin elsewhere.
func (c RuntimeConfig) PlayField() Box {
	w := c.ArenaW
	h := c.ArenaH
	if w <= 0 {
		w = DefaultArenaW
	}
	if h <= 0 {
		h = DefaultArenaH
	}
	return NewBox(20, 60, w-40, h-80)
}
