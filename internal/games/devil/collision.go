package devil

import (
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// contactEpsilon absorbs float drift when comparing the pre-step edge with a surface.
const contactEpsilon = 1e-6

// Contacts reports what the resolver found in one tick.
type Contacts struct {
	Landed      bool // Came to rest on top of a platform
	HitObstacle bool
	HitBomb     int // Index into Level.Bombs, -1 when no bomb was hit
	ReachedGoal bool
}

// Hazard reports whether the player touched something lethal.
func (c Contacts) Hazard() bool {
	return c.HitObstacle || c.HitBomb >= 0
}

// Resolve corrects the player against every platform, then checks obstacles,
// bombs and the goal. At most one hazard is reported per tick, and the goal
// is only checked when no hazard was touched.
func Resolve(p *Player, lvl *Level, canvasWidth float64) Contacts {
	c := Contacts{HitBomb: -1}

	// Airborne unless some platform proves otherwise this tick.
	p.IsJumping = true

	for i := range lvl.Platforms {
		if resolveSurface(p, lvl.Platforms[i].Rect, 0) {
			c.Landed = true
		}
	}
	for i := range lvl.Moving {
		mp := lvl.Moving[i]
		if resolveSurface(p, mp.Rect, mp.LastDX) {
			c.Landed = true
		}
	}
	clampX(p, canvasWidth)

	box := p.Rect()
	for _, o := range lvl.Obstacles {
		if core.Overlaps(box, o.Rect) {
			c.HitObstacle = true
			return c
		}
	}

	for i := range lvl.Bombs {
		b := &lvl.Bombs[i]
		if b.Active && core.Overlaps(box, b.Rect) {
			b.Active = false
			c.HitBomb = i
			return c
		}
	}

	if core.Overlaps(box, lvl.Goal.Rect) {
		c.ReachedGoal = true
	}
	return c
}

// resolveSurface pushes the player out of one surface. ride is the surface's
// horizontal velocity, carried over to a player that lands on it. It reports
// whether the player landed.
func resolveSurface(p *Player, s core.Rect, ride float64) bool {
	if !p.Rect().Intersects(s) {
		return false
	}

	switch {
	case p.VY > 0 && p.Y+p.H-p.VY <= s.Y+contactEpsilon:
		// Was above the surface before this step.
		p.Y = s.Y - p.H
		p.VY = 0
		p.IsJumping = false
		p.X += ride
		return true

	case p.VY < 0 && p.Y-p.VY >= s.Bottom()-contactEpsilon:
		// Was below it: head bump.
		p.Y = s.Bottom()
		p.VY = 0

	default:
		pushOutSideways(p, s)
	}
	return false
}

// pushOutSideways moves the player to the edge of s it came from.
func pushOutSideways(p *Player, s core.Rect) {
	switch {
	case p.PrevX+p.W <= s.X+contactEpsilon:
		p.X = s.X - p.W
	case p.PrevX >= s.Right()-contactEpsilon:
		p.X = s.Right()
	case p.VX > 0:
		p.X = s.X - p.W
	case p.VX < 0:
		p.X = s.Right()
	default:
		// Overlapping without horizontal motion: leave via the nearer edge.
		cx, _ := p.Rect().Center()
		sx, _ := s.Center()
		if cx < sx {
			p.X = s.X - p.W
		} else {
			p.X = s.Right()
		}
	}
}
