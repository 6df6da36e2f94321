package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

// storeTimeout bounds each score store call made from the UI loop.
const storeTimeout = 2 * time.Second

// EventSink receives every event a game emits, e.g. a sound player.
type EventSink interface {
	Handle(ev core.Event)
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	store     storage.ScoreStore
	sink      EventSink
	keyMapper *KeyMapper
	config    core.RuntimeConfig
	username  string // Shown in the footer for SSH sessions

	held      map[core.Action]int // Remaining ticks per held movement key
	pending   core.InputFrame     // One-shot actions for the next tick
	gameState core.GameState

	highScore  int
	saveErr    error
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
// store and sink may be nil.
func NewModel(game registry.Game, store storage.ScoreStore, sink EventSink, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, playHeight(cfg.ScreenH)),
		store:     store,
		sink:      sink,
		keyMapper: NewKeyMapper(),
		config:    cfg,
		held:      make(map[core.Action]int),
		pending:   core.NewInputFrame(),
	}
	m.loadHighScore()
	return m
}

// WithUsername sets the name shown in the footer.
func (m Model) WithUsername(name string) Model {
	m.username = name
	return m
}

// playHeight leaves one row below the game for the footer.
func playHeight(h int) int {
	return core.Max(1, h-1)
}

func (m *Model) loadHighScore() {
	if m.store == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()
	if high, err := m.store.HighScore(ctx, m.game.ID()); err == nil {
		m.highScore = high
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The world is laid out on a fixed canvas, so a resize only rescales it.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, playHeight(msg.Height))
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case action == core.ActionNone:
	case action == core.ActionBack && m.gameState.InMenu:
		// Back from the game's own title screen leaves the game.
		m.backToMenu = true
		return m, tea.Quit
	case IsHeld(action):
		m.press(action)
	default:
		m.pending.Set(action)
	}

	return m, nil
}

// press marks a movement key as held. Pressing one direction releases the other.
func (m Model) press(a core.Action) {
	switch a {
	case core.ActionLeft:
		delete(m.held, core.ActionRight)
	case core.ActionRight:
		delete(m.held, core.ActionLeft)
	}
	m.held[a] = holdTicks
}

// frame builds this tick's input and ages the held keys.
func (m Model) frame() core.InputFrame {
	f := m.pending.Clone()
	for a, left := range m.held {
		f.Set(a)
		if left <= 1 {
			delete(m.held, a)
		} else {
			m.held[a] = left - 1
		}
	}
	return f
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.frame())
	m.gameState = result.State

	if m.sink != nil {
		for _, ev := range result.Events {
			m.sink.Handle(ev)
		}
	}

	// Save score on game over (once)
	if m.gameState.GameOver && !m.scoreSaved {
		m.saveScore()
		m.scoreSaved = true
	}
	if !m.gameState.GameOver {
		m.scoreSaved = false
	}

	m.pending.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveScore records a finished run; failures only surface in the footer.
func (m *Model) saveScore() {
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	_, m.saveErr = m.store.SaveScore(ctx, m.game.ID(), m.gameState.Score, m.gameState.Level)
	if m.saveErr == nil {
		m.highScore = core.Max(m.highScore, m.gameState.Score)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.footer()
}

func (m Model) footer() string {
	text := fmt.Sprintf(" Best: %d", m.highScore)
	if m.username != "" {
		text += "  |  Player: " + m.username
	}
	if m.saveErr != nil {
		return renderFooter(text+"  |  score not saved: "+m.saveErr.Error(), m.config.ScreenW, true)
	}
	return renderFooter(text+"  |  Q: quit  Ctrl+S: screenshot", m.config.ScreenW, false)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the launcher.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given game.
// It reports whether the player asked to return to the launcher.
func Run(game registry.Game, store storage.ScoreStore, sink EventSink, cfg core.RuntimeConfig) (backToMenu bool, err error) {
	model := NewModel(game, store, sink, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	if m, ok := final.(Model); ok {
		return m.BackToMenu(), nil
	}
	return false, nil
}
