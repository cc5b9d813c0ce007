package game

import (
	"github.com/tomz197/slicer/internal/gesture"
	"github.com/tomz197/slicer/internal/object"
)

// Effect is a visual effect the scene plays on request.
type Effect int

const (
	EffectSlice     Effect = iota // Normal target sliced
	EffectExplosion               // Hazard sliced
	EffectFuse                    // Burning fuse attached to a hazard
)

func (e Effect) String() string {
	switch e {
	case EffectSlice:
		return "slice"
	case EffectExplosion:
		return "explosion"
	case EffectFuse:
		return "fuse"
	default:
		return "unknown"
	}
}

// Scene renders what the game decides. Calls are fire-and-forget; the game
// never reads anything back.
type Scene interface {
	// Reset clears objects, the path and the life indicators for a new session.
	Reset()
	// AddObject starts drawing a launched target.
	AddObject(t *object.Target)
	// RemoveObject stops drawing a target at once, cancelling any animation.
	// Sliced targets are not removed this way; they shrink out on their own.
	RemoveObject(t *object.Target)
	// SetPath replaces the drawn gesture path; nil draws nothing.
	SetPath(path []gesture.Point)
	// ShowPath restores the path to full opacity, cancelling any fade.
	ShowPath()
	// FadePath fades the path out over the given number of seconds.
	FadePath(seconds float64)
	// PlayEffect plays a one-off effect at a world position.
	PlayEffect(e Effect, x, y float64)
	// AttachEffect attaches a lasting effect to a target.
	AttachEffect(t *object.Target, e Effect)
	// SetLifeLost shows the life indicator at index as lost.
	SetLifeLost(index int)
}

// NopScene is a Scene that draws nothing.
type NopScene struct{}

func (NopScene) Reset()                              {}
func (NopScene) AddObject(*object.Target)            {}
func (NopScene) RemoveObject(*object.Target)         {}
func (NopScene) SetPath([]gesture.Point)             {}
func (NopScene) ShowPath()                           {}
func (NopScene) FadePath(float64)                    {}
func (NopScene) PlayEffect(Effect, float64, float64) {}
func (NopScene) AttachEffect(*object.Target, Effect) {}
func (NopScene) SetLifeLost(int)                     {}

var _ Scene = NopScene{}
