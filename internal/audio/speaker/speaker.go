// Package speaker plays synthesized cues on the local audio device.
package speaker

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/tomz197/slicer/internal/audio"
)

const sampleRate = beep.SampleRate(44100)

// Speaker synthesizes every cue and plays it on the local audio device.
// Every method is safe to call from the game loop goroutine.
type Speaker struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewSpeaker opens the audio device. volume is clamped to [0, 1].
func NewSpeaker(volume float64) (*Speaker, error) {
	s := &Speaker{
		mixer:  &beep.Mixer{},
		volume: math.Max(0, math.Min(volume, 1)),
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(s.mixer)
	s.initialized = true
	return s, nil
}

// Play starts a one-shot cue.
func (s *Speaker) Play(snd audio.Sound) time.Duration {
	length := audio.ClipLength(snd)
	if length <= 0 {
		return 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return 0
	}

	streamer := beep.Take(sampleRate.N(length), audio.NewVoice(sampleRate, length, s.volume, snd))
	speaker.Lock()
	s.mixer.Add(streamer)
	speaker.Unlock()
	return length
}

// Loop starts a repeating cue. Only the fuse loops; other sounds play once.
func (s *Speaker) Loop(snd audio.Sound) audio.Handle {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return audio.Nop{}.Loop(snd)
	}

	ctrl := &beep.Ctrl{Streamer: audio.NewVoice(sampleRate, 0, s.volume, snd)}
	speaker.Lock()
	s.mixer.Add(ctrl)
	speaker.Unlock()
	return &loopHandle{ctrl: ctrl}
}

// Close silences everything.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	s.initialized = false
}

type loopHandle struct {
	once sync.Once
	ctrl *beep.Ctrl
}

// Stop detaches the loop; the mixer drops it on its next pull.
func (h *loopHandle) Stop() {
	h.once.Do(func() {
		speaker.Lock()
		h.ctrl.Streamer = nil
		speaker.Unlock()
	})
}

var _ audio.Player = (*Speaker)(nil)
