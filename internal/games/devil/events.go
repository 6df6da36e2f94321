package devil

import "github.com/vovakirdan/tui-platformer/internal/core"

// Events emitted during a tick, in the order they happen.
const (
	EventJump          core.Event = "jump"
	EventLanded        core.Event = "landed"
	EventHitObstacle   core.Event = "hitObstacle"
	EventHitBomb       core.Event = "hitBomb"
	EventReachedGoal   core.Event = "reachedGoal"
	EventLevelComplete core.Event = "levelComplete"
	EventGameOver      core.Event = "gameOver"
	EventFell          core.Event = "fell"
	EventTimeUp        core.Event = "timeUp"
	EventLifeLost      core.Event = "lifeLost"
)

// Subscribe registers fn to receive every event as it is emitted.
// Listeners run synchronously on the simulation goroutine and must not
// call back into the game.
func (g *Game) Subscribe(fn func(core.Event)) {
	if fn == nil {
		return
	}
	g.listeners = append(g.listeners, fn)
}

func (g *Game) emit(ev core.Event) {
	g.events = append(g.events, ev)
	for _, fn := range g.listeners {
		fn(ev)
	}
}

// drainEvents returns a copy of the pending events and clears the buffer.
func (g *Game) drainEvents() []core.Event {
	if len(g.events) == 0 {
		return nil
	}
	out := make([]core.Event, len(g.events))
	copy(out, g.events)
	g.events = g.events[:0]
	return out
}
