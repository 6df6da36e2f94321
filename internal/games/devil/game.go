package devil

import (
	"math/rand"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

// ID is the registry identifier and the score table key.
const ID = "devil"

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Game implements the platformer session: level, player, lives, score and timer.
type Game struct {
	cfg     config.PlatformerConfig
	runtime core.RuntimeConfig
	rng     *rand.Rand
	gen     *Generator

	// Session
	phase      Phase
	score      int
	level      int
	lives      int
	timeLeft   int // Whole seconds
	timerTicks int // Ticks into the current second
	tickCount  int
	completed  bool

	// World
	player Player
	world  *Level

	events    []core.Event
	listeners []func(core.Event)
	err       error

	preset config.DifficultyPreset // Overrides the CLI preset when set
}

// New creates a game on the default config. Reset reloads it from disk.
func New() *Game {
	g := &Game{}
	g.setup(config.DefaultPlatformerConfig(), 0)
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Level Devil"
}

// SetPreset selects the difficulty for this instance only, so concurrent
// SSH sessions can each pick their own. Takes effect on the next Reset.
func (g *Game) SetPreset(p config.DifficultyPreset) {
	g.preset = p
}

// Reset loads the configuration and returns to the start menu.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadPlatformer(configPath)
	if err != nil {
		cfg = config.DefaultPlatformerConfig()
	}

	preset := g.preset
	if preset == "" {
		preset = difficultyPreset
	}
	config.ApplyPreset(&cfg, preset)

	if cfg.Validate() != nil {
		cfg = config.DefaultPlatformerConfig()
	}

	g.setup(cfg, runtime.Seed)
}

// Step maps platform actions onto the session and advances it by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = g.events[:0]

	switch {
	case in.Has(core.ActionBack) && g.phase != PhaseMenu:
		g.ReturnToMenu()
	case in.Has(core.ActionRestart) && g.phase != PhaseMenu:
		_ = g.Restart()
	default:
		g.stepPhase(in)
	}

	return core.StepResult{State: g.State(), Events: g.drainEvents()}
}

func (g *Game) stepPhase(in core.InputFrame) {
	switch g.phase {
	case PhaseMenu:
		if in.Has(core.ActionConfirm) {
			_ = g.Start()
		}
	case PhasePlaying:
		if in.Has(core.ActionPause) {
			g.Pause()
			return
		}
		g.tick(IntentFromFrame(in))
	case PhasePaused:
		if in.Has(core.ActionPause) || in.Has(core.ActionResume) || in.Has(core.ActionConfirm) {
			g.Resume()
		}
	case PhaseLevelComplete:
		if in.Has(core.ActionConfirm) {
			_ = g.NextLevel()
		}
	case PhaseGameOver:
		if in.Has(core.ActionConfirm) {
			_ = g.Restart()
		}
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Level:    g.level,
		GameOver: g.phase == PhaseGameOver,
		Paused:   g.phase == PhasePaused,
		InMenu:   g.phase == PhaseMenu,
	}
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}
