// Package devil implements a single-screen platformer: run across generated
// platforms, avoid spikes and falling bombs, and reach the goal before the
// countdown runs out.
package devil

import (
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// AnimationState is the presentation pose derived from the simulation.
type AnimationState int

const (
	AnimIdle AnimationState = iota
	AnimRunning
	AnimJumping
)

// String returns the pose name.
func (a AnimationState) String() string {
	switch a {
	case AnimRunning:
		return "running"
	case AnimJumping:
		return "jumping"
	default:
		return "idle"
	}
}

// Player is the controllable body. It is created once per session and
// repositioned, never recreated, on life loss or level change.
type Player struct {
	X, Y   float64 // Top-left corner
	W, H   float64
	VX, VY float64
	PrevX  float64 // X before the last integration step, used to classify side hits

	Speed       float64 // Horizontal speed while a direction is held
	JumpImpulse float64 // Negative = upward

	IsJumping   bool // Not resting on a platform this tick
	FacingRight bool
	Animation   AnimationState
}

// Rect returns the player's collision box.
func (p *Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// Platform is a static surface, immutable for the lifetime of its level.
type Platform struct {
	core.Rect
}

// MovingPlatform oscillates horizontally between the canvas edges.
type MovingPlatform struct {
	core.Rect
	Speed     float64 // Scalar, >= 0
	Direction int     // -1 or +1
	LastDX    float64 // Displacement applied by the last step, clamping included
}

// Velocity returns the signed horizontal displacement per tick.
func (m MovingPlatform) Velocity() float64 {
	return m.Speed * float64(m.Direction)
}

// Obstacle is a static spike; touching it costs a life.
type Obstacle struct {
	core.Rect
}

// Bomb falls continuously and recycles to the top after leaving the canvas.
type Bomb struct {
	core.Rect
	VY     float64 // Always > 0
	Active bool    // Inert bombs keep falling but cannot hurt
}

// Goal ends the level in success on contact.
type Goal struct {
	core.Rect
}

// Point is a position on the canvas.
type Point struct {
	X, Y float64
}

// Level holds every entity of one generated level.
type Level struct {
	Number    int
	Platforms []Platform
	Moving    []MovingPlatform
	Obstacles []Obstacle
	Bombs     []Bomb
	Goal      Goal
	Spawn     Point
	Duration  int // Countdown in seconds
}
