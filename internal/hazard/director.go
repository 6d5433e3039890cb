// Package hazard implements the time-driven spawn director shared by the
// Survival games: moving obstacles enter the arena from its edges at a rate,
// speed, and concurrency that ramp up with elapsed session time.
package hazard

import (
	"math/rand"

	"github.com/vovakirdan/box-arcade/internal/core"
)

// Edge identifies one side of the arena hazards can spawn from.
type Edge int

const (
	EdgeLeft Edge = iota
	EdgeTop
	EdgeRight
	EdgeBottom
	edgeCount
)

// spawnOrder is the cyclic base ordering rotated each frame so different
// edge subsets are exercised across frames.
var spawnOrder = [edgeCount]Edge{EdgeLeft, EdgeTop, EdgeRight, EdgeBottom}

// Hazard is a moving obstacle box with a straight-line velocity.
type Hazard struct {
	Box    core.Box
	VX, VY float64
}

// Config tunes the spawn director. Zero values are replaced by defaults.
type Config struct {
	HazardSize    float64 // Side length of hazard boxes
	SpawnInterval float64 // Starting seconds between spawns per edge
	MinInterval   float64 // Interval floor reached at the end of the ramp
	BaseSpeed     float64 // Starting hazard speed, px/s
	MaxSpeed      float64 // Speed ceiling reached at the end of the ramp
	RampWindow    float64 // Seconds over which interval and speed interpolate
	EdgeMargin    float64 // Placement exclusion margin along each edge
	SpawnGap      float64 // Distance outside the bounds hazards appear at
	CullMargin    float64 // Bounds inflation for the retention test
}

// DefaultConfig returns the tuning used by both Survival variants.
func DefaultConfig() Config {
	return Config{
		HazardSize:    40,
		SpawnInterval: 1.0,
		MinInterval:   0.30,
		BaseSpeed:     150,
		MaxSpeed:      380,
		RampWindow:    45,
		EdgeMargin:    20,
		SpawnGap:      12,
		CullMargin:    120,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.HazardSize <= 0 {
		c.HazardSize = d.HazardSize
	}
	if c.SpawnInterval <= 0 {
		c.SpawnInterval = d.SpawnInterval
	}
	if c.MinInterval <= 0 {
		c.MinInterval = d.MinInterval
	}
	if c.BaseSpeed <= 0 {
		c.BaseSpeed = d.BaseSpeed
	}
	if c.MaxSpeed <= 0 {
		c.MaxSpeed = d.MaxSpeed
	}
	if c.RampWindow <= 0 {
		c.RampWindow = d.RampWindow
	}
	if c.EdgeMargin <= 0 {
		c.EdgeMargin = d.EdgeMargin
	}
	if c.SpawnGap <= 0 {
		c.SpawnGap = d.SpawnGap
	}
	if c.CullMargin <= 0 {
		c.CullMargin = d.CullMargin
	}
	return c
}

// Difficulty is the current value of the ramp curve. Interval is
// non-increasing and Speed non-decreasing in elapsed time; ActiveSides and
// Concurrent step up at hard time thresholds.
type Difficulty struct {
	Interval    float64
	Speed       float64
	ActiveSides int
	Concurrent  int
}

// Director owns per-edge spawn timers and the live hazard set.
// Deterministic given a fixed seed and update sequence.
type Director struct {
	bounds  core.Box
	cfg     Config
	rng     *rand.Rand
	elapsed float64
	timers  [edgeCount]float64
	cycle   int
	hazards []Hazard
}

// NewDirector creates a director spawning into the given bounds.
func NewDirector(bounds core.Box, seed int64, cfg Config) *Director {
	d := &Director{
		bounds:  bounds,
		cfg:     cfg.withDefaults(),
		hazards: make([]Hazard, 0, 32),
	}
	d.Reset(seed)
	return d
}

// Reset clears all hazards, timers, and elapsed time, and reseeds the RNG.
func (d *Director) Reset(seed int64) {
	d.rng = rand.New(rand.NewSource(seed))
	d.elapsed = 0
	d.timers = [edgeCount]float64{}
	d.cycle = 0
	d.hazards = d.hazards[:0]
}

// Elapsed returns the session time accumulated so far.
func (d *Director) Elapsed() float64 {
	return d.elapsed
}

// Hazards returns the live hazard set. The slice is owned by the director
// and only valid until the next Update call.
func (d *Director) Hazards() []Hazard {
	return d.hazards
}

// Difficulty evaluates the curve at the current elapsed time:
// piecewise-linear interpolation over the ramp window clamped at both ends,
// plus discrete side-count steps at 12s/24s and concurrency steps at 15s/30s.
func (d *Director) Difficulty() Difficulty {
	c := d.cfg

	t := d.elapsed / c.RampWindow
	if t > 1 {
		t = 1
	}
	interval := c.SpawnInterval - t*(c.SpawnInterval-c.MinInterval)
	if interval < c.MinInterval {
		interval = c.MinInterval
	}
	speed := c.BaseSpeed + t*(c.MaxSpeed-c.BaseSpeed)
	if speed > c.MaxSpeed {
		speed = c.MaxSpeed
	}

	sides := 2
	switch {
	case d.elapsed >= 24:
		sides = 4
	case d.elapsed >= 12:
		sides = 3
	}

	concurrent := 1
	switch {
	case d.elapsed >= 30:
		concurrent = 3
	case d.elapsed >= 15:
		concurrent = 2
	}

	return Difficulty{Interval: interval, Speed: speed, ActiveSides: sides, Concurrent: concurrent}
}

// Update advances all timers and hazards by dt seconds: spawns from edges
// whose timer exceeded the current interval, moves every hazard, and culls
// hazards outside the bounds inflated by the cull margin.
func (d *Director) Update(dt float64) {
	diff := d.Difficulty()

	// Rotate the edge ordering so the active subset varies across frames
	rot := d.cycle % int(edgeCount)
	d.cycle++
	for i := 0; i < diff.ActiveSides; i++ {
		edge := spawnOrder[(rot+i)%int(edgeCount)]
		d.timers[edge] += dt
		if d.timers[edge] >= diff.Interval {
			d.timers[edge] = 0
			for n := 0; n < diff.Concurrent; n++ {
				d.spawn(edge, diff.Speed)
			}
		}
	}

	// Move hazards; retain only those still near the arena. The expanded
	// retention region prevents culling mid-flight due to rounding.
	expanded := d.bounds.Inflate(2*d.cfg.CullMargin, 2*d.cfg.CullMargin)
	keep := d.hazards[:0]
	for _, h := range d.hazards {
		h.Box = h.Box.Translate(h.VX*dt, h.VY*dt)
		if expanded.Overlaps(h.Box) {
			keep = append(keep, h)
		}
	}
	d.hazards = keep

	d.elapsed += dt
}

// spawn emits one hazard just outside the given edge at a uniformly random
// offset (excluding the edge margin), moving perpendicular into the arena.
func (d *Director) spawn(edge Edge, speed float64) {
	size := d.cfg.HazardSize
	m := d.cfg.EdgeMargin
	gap := d.cfg.SpawnGap
	b := d.bounds

	var h Hazard
	switch edge {
	case EdgeLeft:
		h.Box = core.NewBox(b.Left()-size-gap, d.randomRange(b.Top()+m, b.Bottom()-m-size), size, size)
		h.VX = speed
	case EdgeRight:
		h.Box = core.NewBox(b.Right()+gap, d.randomRange(b.Top()+m, b.Bottom()-m-size), size, size)
		h.VX = -speed
	case EdgeTop:
		h.Box = core.NewBox(d.randomRange(b.Left()+m, b.Right()-m-size), b.Top()-size-gap, size, size)
		h.VY = speed
	case EdgeBottom:
		h.Box = core.NewBox(d.randomRange(b.Left()+m, b.Right()-m-size), b.Bottom()+gap, size, size)
		h.VY = -speed
	}
	d.hazards = append(d.hazards, h)
}

func (d *Director) randomRange(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + d.rng.Float64()*(hi-lo)
}
