package game

import (
	"github.com/tomz197/slicer/internal/gesture"
	"github.com/tomz197/slicer/internal/object"
	"github.com/tomz197/slicer/internal/sequence"
)

// Config holds the tuning of one game session. Times are in seconds,
// distances in world units (y up).
type Config struct {
	Width, Height float64

	Gravity    float64 // Vertical acceleration
	WorldSpeed float64 // Initial time scale of the simulation

	PopupTime  float64 // Delay before the next wave once the board is clear
	ChainDelay float64 // Span over which a chain wave's followers are spread
	StartDelay float64 // Delay before the first wave

	Lives        int
	SequenceTail int
	HazardOdds   int // A default spawn is a hazard one time in HazardOdds

	PathLimit    int
	PathFade     float64
	OutOfBoundsY float64

	Launch object.LaunchConfig
}

// DefaultConfig returns the classic tuning for a 1024x768 world.
func DefaultConfig() Config {
	return Config{
		Width:        1024,
		Height:       768,
		Gravity:      -900,
		WorldSpeed:   0.85,
		PopupTime:    0.9,
		ChainDelay:   3.0,
		StartDelay:   2.0,
		Lives:        3,
		SequenceTail: sequence.DefaultTail,
		HazardOdds:   6,
		PathLimit:    gesture.DefaultLimit,
		PathFade:     0.25,
		OutOfBoundsY: -140,
		Launch:       object.DefaultLaunchConfig(),
	}
}
