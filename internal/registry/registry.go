// Package registry maps game IDs to factories. A game package registers
// itself from init(), so the CLI and the SSH server only need a blank or
// named import to make it playable.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Game is what the terminal driver runs. Implementations hold pure simulation
// state and never touch the terminal; input arrives as abstract actions and
// output goes into a core.Screen.
type Game interface {
	// ID is the stable key used on the command line and in score storage.
	ID() string

	// Title is the display name shown in menus and on the scoreboard.
	Title() string

	// Reset reloads configuration and returns to the game's own start screen.
	// RuntimeConfig carries the tick rate and the RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances by one fixed tick with the actions held this tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current frame. dst may be any size.
	Render(dst *core.Screen)

	// State reports score, level and phase flags without advancing.
	State() core.GameState
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a fresh game instance.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
)

// Register adds a game factory. It panics on a duplicate ID, which can only
// happen through a programming error at init time.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns every registered game sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Title returns the display name of a registered game, or id itself when unknown.
func Title(id string) string {
	mu.RLock()
	defer mu.RUnlock()

	if t, ok := titles[id]; ok {
		return t
	}
	return id
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
