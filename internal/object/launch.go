package object

import (
	"github.com/tomz197/slicer/internal/physics"
	"github.com/tomz197/slicer/internal/rng"
)

// Range is an inclusive integer range for random draws.
type Range struct {
	Min, Max int
}

func (r Range) draw(src rng.Source) int {
	return src.IntInRange(r.Min, r.Max)
}

// LaunchConfig holds the trajectory parameters for new targets.
// Velocity ranges are in coarse steps multiplied by VelocityScale.
type LaunchConfig struct {
	Width         float64 // World width; split into four launch bands
	SpawnX        Range   // Launch x position
	SpawnY        float64 // Just below the visible area
	OuterVX       Range   // |vx| steps for the two outer bands
	InnerVX       Range   // |vx| steps for the two inner bands
	VY            Range   // Upward velocity steps
	Spin          Range   // Angular velocity in half-radians/sec
	VelocityScale float64
	Radius        float64 // Collision radius of the container
	HazardRadius  float64 // Radius of a hazard's hit part
}

// DefaultLaunchConfig returns the launch parameters for a 1024x768 world.
func DefaultLaunchConfig() LaunchConfig {
	return LaunchConfig{
		Width:         1024,
		SpawnX:        Range{64, 960},
		SpawnY:        -128,
		OuterVX:       Range{8, 15},
		InnerVX:       Range{3, 5},
		VY:            Range{24, 32},
		Spin:          Range{-6, 6},
		VelocityScale: 40,
		Radius:        64,
		HazardRadius:  56,
	}
}

// Launch builds a target of the given kind at a random point below the screen,
// thrown upward and toward the middle. Draw order: x, spin, vx, vy.
//
// The launch x splits into four equal bands: the outer bands get the larger
// horizontal speed, the inner bands the smaller one, always pointing inward.
func Launch(src rng.Source, cfg LaunchConfig, id ID, kind Kind) *Target {
	x := float64(cfg.SpawnX.draw(src))
	spin := float64(cfg.Spin.draw(src)) / 2

	band := cfg.Width / 4
	var vx int
	switch {
	case x < band:
		vx = cfg.OuterVX.draw(src)
	case x < band*2:
		vx = cfg.InnerVX.draw(src)
	case x < band*3:
		vx = -cfg.InnerVX.draw(src)
	default:
		vx = -cfg.OuterVX.draw(src)
	}
	vy := cfg.VY.draw(src)

	t := &Target{
		Body: physics.Body{
			X:               x,
			Y:               cfg.SpawnY,
			VX:              float64(vx) * cfg.VelocityScale,
			VY:              float64(vy) * cfg.VelocityScale,
			AngularVelocity: spin,
			Radius:          cfg.Radius,
			Dynamic:         true,
			CollisionMask:   0,
		},
		ID:   id,
		Kind: kind,
	}
	if kind == Hazard {
		t.HitPart = &Part{Radius: cfg.HazardRadius}
	}
	return t
}
