package platformer

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/box-arcade/internal/core"
)

// LayoutOptions selects which special platform kinds a generated layout
// may contain. A variant with nothing enabled produces only Normal
// platforms.
type LayoutOptions struct {
	Moving      bool
	DropThrough bool
	Speed       bool
}

// LayoutForMap maps a map index to its option set: 0 is plain, 1 adds
// moving platforms, 2 enables everything.
func LayoutForMap(mapIndex int) (LayoutOptions, error) {
	switch mapIndex {
	case 0:
		return LayoutOptions{}, nil
	case 1:
		return LayoutOptions{Moving: true}, nil
	case 2:
		return LayoutOptions{Moving: true, DropThrough: true, Speed: true}, nil
	default:
		return LayoutOptions{}, fmt.Errorf("unknown map index %d", mapIndex)
	}
}

const (
	specialChance  = 0.25
	platformHeight = 14
	minPlatformW   = 80
	maxPlatformW   = 180
	patrolRange    = 80
	patrolSpeed    = 60
	edgePadding    = 10
)

// GenerateLayout builds the platform set for one map variant. Rows are
// spaced at 45-75% of the maximum jump height so every platform is
// reachable from the one below it; platforms within a row are placed at
// random non-degenerate horizontal positions.
func GenerateLayout(bounds core.Box, cfg Config, rng *rand.Rand, opts LayoutOptions) ([]*Platform, error) {
	if cfg.Gravity <= 0 || cfg.JumpSpeed <= 0 {
		return nil, fmt.Errorf("non-positive jump physics: gravity=%.0f jumpSpeed=%.0f", cfg.Gravity, cfg.JumpSpeed)
	}
	if bounds.W < 2*maxPlatformW || bounds.H < cfg.MaxJumpHeight() {
		return nil, fmt.Errorf("bounds %.0fx%.0f too small for platform layout", bounds.W, bounds.H)
	}

	maxRise := cfg.MaxJumpHeight()
	var platforms []*Platform

	// Rows climb from the floor until they run out of headroom. Each gap
	// stays inside the reachable window.
	y := bounds.Bottom()
	for {
		gap := maxRise * (0.45 + 0.30*rng.Float64())
		y -= gap
		if y < bounds.Top()+platformHeight {
			break
		}

		count := 1 + rng.Intn(4)
		for i := 0; i < count; i++ {
			w := minPlatformW + rng.Float64()*(maxPlatformW-minPlatformW)
			x := bounds.Left() + edgePadding + rng.Float64()*(bounds.W-w-2*edgePadding)
			p := &Platform{
				Box:  core.NewBox(x, y, w, platformHeight),
				Kind: pickKind(rng, opts),
			}
			if p.Kind == KindMoving {
				p.Speed = patrolSpeed
				p.PatrolMinX = core.MaxF(bounds.Left()+edgePadding, x-patrolRange)
				p.PatrolMaxX = core.MinF(bounds.Right()-edgePadding, x+w+patrolRange)
				p.Dir = 1
				if rng.Intn(2) == 0 {
					p.Dir = -1
				}
			}
			platforms = append(platforms, p)
		}
	}

	if len(platforms) == 0 {
		return nil, fmt.Errorf("layout produced no platforms for bounds %.0fx%.0f", bounds.W, bounds.H)
	}
	return platforms, nil
}

func pickKind(rng *rand.Rand, opts LayoutOptions) Kind {
	var kinds []Kind
	if opts.Moving {
		kinds = append(kinds, KindMoving)
	}
	if opts.DropThrough {
		kinds = append(kinds, KindDropThrough)
	}
	if opts.Speed {
		kinds = append(kinds, KindSpeed)
	}
	if len(kinds) == 0 || rng.Float64() >= specialChance {
		return KindNormal
	}
	return kinds[rng.Intn(len(kinds))]
}
