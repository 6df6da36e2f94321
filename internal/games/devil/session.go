package devil

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Phase is the session state.
type Phase string

const (
	PhaseMenu          Phase = "menu"
	PhasePlaying       Phase = "playing"
	PhasePaused        Phase = "paused"
	PhaseGameOver      Phase = "gameOver"
	PhaseLevelComplete Phase = "levelComplete"
)

// Warning thresholds surfaced to the presentation layer.
const (
	fallWarningMargin = 150
	lowTimeSeconds    = 10
)

// NewWithConfig creates a game in the menu phase with an explicit config and seed.
func NewWithConfig(cfg config.PlatformerConfig, seed int64) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("devil: %w", err)
	}
	g := &Game{}
	g.setup(cfg, seed)
	return g, nil
}

// setup installs the config and RNG and returns to the menu with a fresh session.
func (g *Game) setup(cfg config.PlatformerConfig, seed int64) {
	g.cfg = cfg
	g.rng = rand.New(rand.NewSource(seed))
	g.gen = newGeneratorWithRand(cfg, g.rng)
	g.player = Player{
		W:           cfg.Player.Width,
		H:           cfg.Player.Height,
		Speed:       cfg.Player.Speed,
		JumpImpulse: cfg.Player.JumpImpulse,
		FacingRight: true,
	}
	g.world = nil
	g.err = nil
	g.events = g.events[:0]
	g.resetSession()
	g.phase = PhaseMenu
}

func (g *Game) resetSession() {
	g.score = 0
	g.lives = g.cfg.Session.Lives
	g.level = g.cfg.Session.StartLevel
	g.completed = false
	g.tickCount = 0
	g.timerTicks = 0
	g.timeLeft = g.cfg.Session.CountdownSeconds(g.level)
}

// Start leaves the menu and begins a new session at the configured start level.
// It does nothing outside the menu.
func (g *Game) Start() error {
	if g.phase != PhaseMenu {
		return nil
	}
	g.resetSession()
	if err := g.loadLevel(g.level); err != nil {
		return err
	}
	g.phase = PhasePlaying
	return nil
}

// Pause suspends the simulation. It reports whether the phase changed.
func (g *Game) Pause() bool {
	if g.phase != PhasePlaying {
		return false
	}
	g.phase = PhasePaused
	return true
}

// Resume continues a paused session. It reports whether the phase changed.
func (g *Game) Resume() bool {
	if g.phase != PhasePaused {
		return false
	}
	g.phase = PhasePlaying
	return true
}

// NextLevel advances from a completed level. Completing the last level ends
// the session with Completed set instead.
func (g *Game) NextLevel() error {
	if g.phase != PhaseLevelComplete {
		return nil
	}
	if g.level >= g.cfg.Session.MaxLevel {
		g.completed = true
		g.phase = PhaseGameOver
		g.emit(EventGameOver)
		return nil
	}
	if err := g.loadLevel(g.level + 1); err != nil {
		return err
	}
	g.phase = PhasePlaying
	return nil
}

// Restart begins a fresh session from any phase but the menu.
func (g *Game) Restart() error {
	if g.phase == PhaseMenu {
		return nil
	}
	g.phase = PhaseMenu
	return g.Start()
}

// ReturnToMenu abandons the current session.
func (g *Game) ReturnToMenu() {
	g.phase = PhaseMenu
	g.world = nil
}

// loadLevel generates level n and places the player at its spawn point.
func (g *Game) loadLevel(n int) error {
	lvl, err := g.gen.Generate(n)
	if err != nil {
		g.err = err
		return fmt.Errorf("devil: load level %d: %w", n, err)
	}
	g.world = lvl
	g.level = n
	g.timeLeft = lvl.Duration
	g.timerTicks = 0
	g.respawn()
	return nil
}

// Tick advances a playing session by one fixed step and returns the events
// it produced. It does nothing in any other phase.
func (g *Game) Tick(in Intent) []core.Event {
	g.events = g.events[:0]
	g.tick(in)
	return g.drainEvents()
}

func (g *Game) tick(in Intent) {
	if g.phase != PhasePlaying || g.world == nil {
		return
	}
	g.tickCount++

	updateMovingPlatforms(g.world, g.cfg.Canvas.Width)
	updateBombs(g.world, g.cfg.Canvas.Height, g.gen)

	wasAirborne := g.player.IsJumping
	m := Integrate(&g.player, in, g.cfg.Physics, g.cfg.Canvas)
	if m.Jumped {
		g.emit(EventJump)
	}

	lost := m.Fell
	if m.Fell {
		g.emit(EventFell)
		g.loseLife()
	} else {
		c := Resolve(&g.player, g.world, g.cfg.Canvas.Width)
		if c.Landed && wasAirborne {
			g.emit(EventLanded)
		}
		lost = c.Hazard()
		switch {
		case c.HitObstacle:
			g.emit(EventHitObstacle)
			g.loseLife()
		case c.HitBomb >= 0:
			g.emit(EventHitBomb)
			g.loseLife()
		case c.ReachedGoal:
			g.completeLevel()
		}
	}

	// At most one life per tick: the countdown waits out a tick that already cost one.
	if g.phase == PhasePlaying && !lost {
		g.updateTimer()
	}
	updateAnimation(&g.player)
}

// updateTimer counts whole ticks so the countdown cannot drift.
func (g *Game) updateTimer() {
	g.timerTicks++
	if g.timerTicks < g.cfg.Physics.TickRate {
		return
	}
	g.timerTicks = 0
	g.timeLeft--
	if g.timeLeft > 0 {
		return
	}
	g.emit(EventTimeUp)
	g.timeLeft = g.world.Duration
	g.loseLife()
}

func (g *Game) completeLevel() {
	g.score += g.cfg.Session.GoalScore(g.level)
	g.phase = PhaseLevelComplete
	g.emit(EventReachedGoal)
	g.emit(EventLevelComplete)
}

// loseLife costs one life and respawns; the last life ends the session.
func (g *Game) loseLife() {
	g.lives--
	g.emit(EventLifeLost)
	g.respawn()
	if g.lives <= 0 {
		g.lives = 0
		g.phase = PhaseGameOver
		g.emit(EventGameOver)
	}
}

func (g *Game) respawn() {
	p := &g.player
	p.X = g.world.Spawn.X
	p.Y = g.world.Spawn.Y
	p.PrevX = p.X
	p.VX = 0
	p.VY = 0
	p.IsJumping = false
	p.Animation = AnimIdle
}

// Phase returns the current session phase.
func (g *Game) Phase() Phase { return g.phase }

// Score returns the accumulated score.
func (g *Game) Score() int { return g.score }

// Level returns the current level number.
func (g *Game) Level() int { return g.level }

// Lives returns the remaining lives.
func (g *Game) Lives() int { return g.lives }

// TimeLeft returns the whole seconds left on the countdown.
func (g *Game) TimeLeft() int { return g.timeLeft }

// ElapsedFraction returns how far the current countdown second has progressed, in [0, 1).
func (g *Game) ElapsedFraction() float64 {
	return float64(g.timerTicks) / float64(g.cfg.Physics.TickRate)
}

// Player returns a copy of the player.
func (g *Game) Player() Player { return g.player }

// World returns the current level, or nil outside a session.
// The returned level must be treated as read-only.
func (g *Game) World() *Level { return g.world }

// Config returns the active configuration.
func (g *Game) Config() config.PlatformerConfig { return g.cfg }

// Completed reports whether the session ended by clearing the last level.
func (g *Game) Completed() bool { return g.completed }

// Err returns the last level generation error, if any.
func (g *Game) Err() error { return g.err }

// FallWarning reports whether the player is falling through the bottom band of the canvas.
func (g *Game) FallWarning() bool {
	return g.phase == PhasePlaying &&
		g.player.Y > g.cfg.Canvas.Height-fallWarningMargin &&
		g.player.VY > 0
}

// LowTime reports whether the countdown is about to run out.
func (g *Game) LowTime() bool {
	return g.phase == PhasePlaying && g.timeLeft <= lowTimeSeconds
}
