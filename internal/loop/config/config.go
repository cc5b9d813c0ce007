// Package config centralizes the tunables of the terminal front end.
package config

import "time"

// View resolution: the logical playfield, matching the game world.
// Actual rendering scales to fit the terminal size.
const (
	ViewWidth  = 1024
	ViewHeight = 768
)

// Render area is clamped to this many cells and centered in larger terminals.
const (
	MaxTermWidth  = 160
	MaxTermHeight = 60
)

// Client rendering
const (
	DefaultFPS = 60
)

// FrameTime returns the frame duration for fps, falling back to DefaultFPS.
func FrameTime(fps int) time.Duration {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return time.Second / time.Duration(fps)
}

// HUD
const (
	LifeBlinkSeconds   = 1.0 // How long a lost life icon blinks
	LifeBlinkFrequency = 8.0 // Hz
	PromptBlinkMillis  = 600
	MaxTopScores       = 5
	MaxUsernameLength  = 16
)

// Effects
const (
	SparkInterval  = 0.04 // Seconds between fuse spark bursts
	SliceParticles = 14
	BombParticles  = 48
)

// Shutdown
const (
	ShutdownDisplaySeconds = 10.0 // Seconds to show shutdown message before auto-disconnect
)

// Inactivity
const (
	InactivityWarnUser       = 90  // Seconds
	InactivityDisconnectUser = 120 // Seconds
)
