package sfx

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/devil"
)

// levelUpNotes is a C major arpeggio, C5 to C6.
var levelUpNotes = []float64{523.25, 659.25, 783.99, 1046.5}

// gameOverNotes walk down G4, E4, C4.
var gameOverNotes = []float64{392.0, 329.63, 261.63}

// musicNotes climb the C major scale, C4 to C5.
var musicNotes = []float64{261.63, 293.66, 329.63, 349.23, 392.0, 440.0, 493.88, 523.25}

const musicNoteLength = 300 * time.Millisecond

// MusicPhrase is one pass of the background pad: a soft sine per scale note.
func MusicPhrase(rate beep.SampleRate) beep.Streamer {
	notes := make([]beep.Streamer, 0, len(musicNotes))
	for _, f := range musicNotes {
		notes = append(notes, NewTone(WaveSine, f, f, 0.1, 0.1, musicNoteLength, rate))
	}
	return beep.Seq(notes...)
}

// BackgroundMusic loops MusicPhrase forever.
func BackgroundMusic(rate beep.SampleRate) beep.Streamer {
	buf := beep.NewBuffer(beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2})
	buf.Append(MusicPhrase(rate))
	return beep.Loop(-1, buf.Streamer(0, buf.Len()))
}

// JumpSound is a falling chirp.
func JumpSound(rate beep.SampleRate) beep.Streamer {
	return NewTone(WaveSine, 800, 200, 0.3, 0.01, 300*time.Millisecond, rate)
}

// CollisionSound is a low sawtooth growl.
func CollisionSound(rate beep.SampleRate) beep.Streamer {
	return NewTone(WaveSaw, 150, 50, 0.5, 0.01, 500*time.Millisecond, rate)
}

// LandSound is a short thud.
func LandSound(rate beep.SampleRate) beep.Streamer {
	return NewTone(WaveSine, 120, 60, 0.15, 0.01, 60*time.Millisecond, rate)
}

// LevelUpSound plays overlapping arpeggio notes 100ms apart.
func LevelUpSound(rate beep.SampleRate) beep.Streamer {
	notes := make([]beep.Streamer, 0, len(levelUpNotes))
	for i, f := range levelUpNotes {
		offset := time.Duration(i) * 100 * time.Millisecond
		notes = append(notes, beep.Seq(
			beep.Silence(rate.N(offset)),
			NewTone(WaveSine, f, f, 0.3, 0.01, 300*time.Millisecond, rate),
		))
	}
	return beep.Mix(notes...)
}

// GameOverSound plays a short falling phrase.
func GameOverSound(rate beep.SampleRate) beep.Streamer {
	notes := make([]beep.Streamer, 0, len(gameOverNotes))
	for _, f := range gameOverNotes {
		notes = append(notes, NewTone(WaveSquare, f, f*0.97, 0.2, 0.01, 250*time.Millisecond, rate))
	}
	return beep.Seq(notes...)
}

// ForEvent returns the effect for a game event, or nil when the event is silent.
func ForEvent(ev core.Event, rate beep.SampleRate) beep.Streamer {
	switch ev {
	case devil.EventJump:
		return JumpSound(rate)
	case devil.EventLanded:
		return LandSound(rate)
	case devil.EventHitObstacle, devil.EventHitBomb, devil.EventFell, devil.EventTimeUp:
		return CollisionSound(rate)
	case devil.EventLevelComplete:
		return LevelUpSound(rate)
	case devil.EventGameOver:
		return GameOverSound(rate)
	}
	return nil
}
