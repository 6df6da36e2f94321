package devil

import (
	"math"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Intent is the directional input sampled for one tick.
type Intent struct {
	Left  bool
	Right bool
	Jump  bool
}

// IntentFromFrame extracts the movement intent from an input frame.
func IntentFromFrame(in core.InputFrame) Intent {
	return Intent{
		Left:  in.Has(core.ActionLeft),
		Right: in.Has(core.ActionRight),
		Jump:  in.Has(core.ActionJump),
	}
}

// Motion reports what the integrator observed during one step.
type Motion struct {
	Jumped bool // A jump impulse was applied
	Fell   bool // The player left the bottom of the canvas
}

// Integrate advances the player by one tick: input, gravity, position,
// friction and horizontal clamping, in that order. When the player ends
// up below the canvas, Fell is set and collision resolution must be skipped.
func Integrate(p *Player, in Intent, phys config.PhysicsConfig, canvas config.CanvasConfig) Motion {
	var m Motion

	p.PrevX = p.X

	// Horizontal velocity is recomputed from input every tick; right wins ties.
	p.VX = 0
	if in.Left {
		p.VX = -p.Speed
		p.FacingRight = false
	}
	if in.Right {
		p.VX = p.Speed
		p.FacingRight = true
	}

	if in.Jump && !p.IsJumping {
		p.VY = p.JumpImpulse
		p.IsJumping = true
		m.Jumped = true
	}

	p.VY += phys.Gravity
	p.X += p.VX
	p.Y += p.VY
	p.VX *= phys.Friction

	clampX(p, canvas.Width)

	if p.Y > canvas.Height {
		m.Fell = true
	}
	return m
}

// clampX keeps the player's box inside [0, width].
func clampX(p *Player, width float64) {
	p.X = core.ClampF(p.X, 0, math.Max(0, width-p.W))
}

// updateAnimation derives the pose from the current motion.
func updateAnimation(p *Player) {
	switch {
	case p.IsJumping:
		p.Animation = AnimJumping
	case math.Abs(p.VX) > 0.1:
		p.Animation = AnimRunning
	default:
		p.Animation = AnimIdle
	}
}
