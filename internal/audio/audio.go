// Package audio plays the game's sound cues.
//
// The game only ever fires and forgets, except for the looping fuse, whose
// Handle it keeps so at most one fuse plays at a time.
package audio

import "time"

// Sound identifies a cue.
type Sound int

const (
	SoundLaunch Sound = iota
	SoundWhack
	SoundExplosion
	SoundWrong
	SoundSwoosh1
	SoundSwoosh2
	SoundSwoosh3
	SoundFuse

	soundCount
)

var soundNames = [soundCount]string{
	SoundLaunch:    "launch",
	SoundWhack:     "whack",
	SoundExplosion: "explosion",
	SoundWrong:     "wrong",
	SoundSwoosh1:   "swoosh1",
	SoundSwoosh2:   "swoosh2",
	SoundSwoosh3:   "swoosh3",
	SoundFuse:      "fuse",
}

func (s Sound) String() string {
	if s < 0 || s >= soundCount {
		return "unknown"
	}
	return soundNames[s]
}

// Swoosh returns the n-th swoosh variant (1-based, clamped to 1..3).
func Swoosh(n int) Sound {
	switch {
	case n <= 1:
		return SoundSwoosh1
	case n == 2:
		return SoundSwoosh2
	default:
		return SoundSwoosh3
	}
}

// Player plays sound cues.
type Player interface {
	// Play starts a one-shot cue and returns its length, or zero if unknown.
	Play(s Sound) time.Duration
	// Loop starts a cue that repeats until its handle is stopped.
	Loop(s Sound) Handle
}

// Handle controls a looping cue.
type Handle interface {
	Stop()
}

// Nop is a Player that makes no sound.
type Nop struct{}

func (Nop) Play(Sound) time.Duration { return 0 }
func (Nop) Loop(Sound) Handle        { return nopHandle{} }

type nopHandle struct{}

func (nopHandle) Stop() {}

var _ Player = Nop{}
