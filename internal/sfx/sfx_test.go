package sfx

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/devil"
)

// drain counts the samples a finite streamer produces and checks their range.
func drain(t *testing.T, s beep.Streamer) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			if buf[i][0] < -1 || buf[i][0] > 1 {
				t.Fatalf("sample %d out of range: %f", total+i, buf[i][0])
			}
		}
		total += n
		if !ok {
			return total
		}
		if total > int(SampleRate)*10 {
			t.Fatal("streamer did not terminate")
		}
	}
}

func TestToneLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	s := NewTone(WaveSine, 440, 440, 0.5, 0.5, 100*time.Millisecond, rate)
	if got, want := drain(t, s), rate.N(100*time.Millisecond); got != want {
		t.Errorf("tone produced %d samples, expected %d", got, want)
	}
}

func TestToneGainDecays(t *testing.T) {
	rate := beep.SampleRate(1000)
	s := NewTone(WaveSquare, 10, 10, 0.5, 0.01, time.Second, rate)

	buf := make([][2]float64, 1000)
	n, _ := s.Stream(buf)
	if n != 1000 {
		t.Fatalf("streamed %d samples, expected 1000", n)
	}
	if buf[0][0] != 0.5 {
		t.Errorf("first sample = %v, expected 0.5", buf[0][0])
	}
	if last := buf[999][0]; last > 0.011 || last < -0.011 {
		t.Errorf("last sample = %v, expected close to the end gain", last)
	}
}

func TestLevelUpSoundLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	// Last note starts at 300ms and rings for 300ms.
	want := rate.N(300*time.Millisecond) + rate.N(300*time.Millisecond)
	if got := drain(t, LevelUpSound(rate)); got != want {
		t.Errorf("level up produced %d samples, expected %d", got, want)
	}
}

func TestForEvent(t *testing.T) {
	tests := []struct {
		ev     core.Event
		silent bool
	}{
		{devil.EventJump, false},
		{devil.EventLanded, false},
		{devil.EventHitObstacle, false},
		{devil.EventHitBomb, false},
		{devil.EventFell, false},
		{devil.EventTimeUp, false},
		{devil.EventLevelComplete, false},
		{devil.EventGameOver, false},
		{devil.EventLifeLost, true},
		{devil.EventReachedGoal, true},
	}

	for _, tc := range tests {
		s := ForEvent(tc.ev, SampleRate)
		if (s == nil) != tc.silent {
			t.Errorf("ForEvent(%s) silent = %v, expected %v", tc.ev, s == nil, tc.silent)
		}
	}
}

func TestPlayerWithoutSpeakerIsSilent(t *testing.T) {
	p := NewPlayer(nil, 0.8)
	// Never initialized: handling events must be a no-op.
	p.Handle(devil.EventJump)
	p.StartMusic()
	p.StopMusic()
	p.Close()
}

func TestMusicPhraseLength(t *testing.T) {
	rate := beep.SampleRate(8000)
	want := len(musicNotes) * rate.N(musicNoteLength)
	if got := drain(t, MusicPhrase(rate)); got != want {
		t.Errorf("phrase produced %d samples, expected %d", got, want)
	}
}

func TestBackgroundMusicLoops(t *testing.T) {
	rate := beep.SampleRate(8000)
	phrase := len(musicNotes) * rate.N(musicNoteLength)
	s := BackgroundMusic(rate)

	buf := make([][2]float64, 1024)
	total := 0
	for total < 3*phrase {
		n, ok := s.Stream(buf)
		if !ok || n == 0 {
			t.Fatalf("music stopped after %d samples, expected it to loop", total)
		}
		for i := 0; i < n; i++ {
			if v := buf[i][0]; v < -0.11 || v > 0.11 {
				t.Fatalf("sample %d = %f, expected a soft pad", total+i, v)
			}
		}
		total += n
	}
}
