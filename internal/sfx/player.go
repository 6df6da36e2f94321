package sfx

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// SampleRate is the output rate used for every effect.
const SampleRate = beep.SampleRate(44100)

// Player mixes effects into the system speaker. A Player whose speaker could
// not be opened stays silent; the game never depends on audio.
type Player struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	music  *beep.Ctrl
	volume float64
	ready  bool
	logger *log.Logger
}

// NewPlayer creates a player at the given linear volume (0 mutes).
func NewPlayer(logger *log.Logger, volume float64) *Player {
	if logger == nil {
		logger = log.Default()
	}
	return &Player{
		mixer:  &beep.Mixer{},
		volume: volume,
		logger: logger,
	}
}

// Init opens the speaker. Failure is logged and leaves the player silent.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ready {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		p.logger.Warn("audio unavailable, continuing without sound", "err", err)
		return err
	}
	speaker.Play(p.mixer)
	p.ready = true
	return nil
}

// Handle queues the effect for ev, if any.
func (p *Player) Handle(ev core.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready || p.volume <= 0 {
		return
	}
	s := ForEvent(ev, SampleRate)
	if s == nil {
		return
	}

	speaker.Lock()
	p.mixer.Add(newVolume(s, p.volume))
	speaker.Unlock()
}

// StartMusic starts the background loop, or resumes it if paused.
func (p *Player) StartMusic() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready || p.volume <= 0 {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()
	if p.music != nil {
		p.music.Paused = false
		return
	}
	p.music = &beep.Ctrl{Streamer: BackgroundMusic(SampleRate)}
	p.mixer.Add(newVolume(p.music, p.volume))
}

// StopMusic pauses the background loop.
func (p *Player) StopMusic() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.music == nil {
		return
	}
	speaker.Lock()
	p.music.Paused = true
	speaker.Unlock()
}

// Close silences any playing effects.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.music = nil
	p.ready = false
}
