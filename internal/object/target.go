package object

import (
	"math"

	"github.com/tomz197/slicer/internal/draw"
	"github.com/tomz197/slicer/internal/physics"
)

// Kind distinguishes scoring targets from hazards.
type Kind int

const (
	Normal Kind = iota
	Hazard
)

func (k Kind) String() string {
	switch k {
	case Normal:
		return "normal"
	case Hazard:
		return "hazard"
	default:
		return "unknown"
	}
}

// ID identifies a target within one game session.
type ID uint64

// SliceFadeSeconds is how long a sliced target takes to shrink away.
const SliceFadeSeconds = 0.2

// Part is a hit-testable circle positioned relative to its container.
type Part struct {
	OffsetX, OffsetY float64
	Radius           float64
}

// Target is one launched object in flight.
//
// A hazard is a container whose HitPart is the only thing a gesture can hit;
// the part shares the container's lifecycle, so slicing it slices the target.
type Target struct {
	physics.Body

	ID      ID
	Kind    Kind
	HitPart *Part // Set for hazards
	Sliced  bool  // Write-once
	Fuse    bool  // A fuse effect is attached (drawn as sparks)

	fade    float64 // Seconds of scale-out remaining after a slice
	removed bool
}

// Slice marks the target sliced and freezes it in place.
// Returns false if it was already sliced.
func (t *Target) Slice() bool {
	if t.Sliced {
		return false
	}
	t.Sliced = true
	t.Dynamic = false
	t.fade = SliceFadeSeconds
	return true
}

// Contains reports whether a world point hits the target.
// Hazards are only hit through their HitPart.
func (t *Target) Contains(x, y float64) bool {
	if t.HitPart != nil {
		return physics.PointInCircle(x, y, t.X+t.HitPart.OffsetX, t.Y+t.HitPart.OffsetY, t.HitPart.Radius)
	}
	return physics.PointInCircle(x, y, t.X, t.Y, t.Radius)
}

// MarkRemoved drops the target from the scene on its next update.
func (t *Target) MarkRemoved() {
	t.removed = true
}

// Scale returns the visual scale, shrinking toward zero after a slice.
func (t *Target) Scale() float64 {
	if !t.Sliced {
		return 1
	}
	return math.Max(t.fade/SliceFadeSeconds, 0)
}

// Update runs the slice scale-out. Motion is integrated by the game's world.
func (t *Target) Update(ctx UpdateContext) (bool, error) {
	if t.removed {
		return true, nil
	}
	if t.Sliced {
		t.fade -= ctx.Delta.Seconds()
		if t.fade <= 0 {
			return true, nil
		}
	}
	return false, nil
}

// Draw renders a normal target as a spinning star and a hazard as a filled
// bomb with a fuse.
func (t *Target) Draw(ctx DrawContext) error {
	radius := t.Radius * t.Scale()
	if radius <= 0 {
		return nil
	}
	center := ctx.Project(t.X, t.Y)

	if t.Kind == Hazard {
		ctx.Canvas.SetColor(draw.ColorRed)
		if t.Sliced {
			ctx.Canvas.SetColor(draw.ColorOrange)
		}
		ctx.Canvas.DrawCircle(center, radius*0.85, true)
		if t.Fuse && !t.Sliced {
			ctx.Canvas.SetColor(draw.ColorYellow)
			tip := ctx.Project(t.X+radius*0.7, t.Y+radius*1.1)
			base := ctx.Project(t.X+radius*0.4, t.Y+radius*0.75)
			ctx.Canvas.DrawLine(base, tip)
		}
		return nil
	}

	const numVerts = 10
	points := ctx.Canvas.BorrowPoints(numVerts)
	for i := range points {
		angle := t.Angle + float64(i)*2*math.Pi/numVerts
		r := radius
		if i%2 == 1 {
			r *= 0.6
		}
		points[i].X = center.X + math.Cos(angle)*r
		points[i].Y = center.Y - math.Sin(angle)*r
	}
	ctx.Canvas.SetColor(draw.ColorGreen)
	if t.Sliced {
		ctx.Canvas.SetColor(draw.ColorYellow)
	}
	ctx.Canvas.DrawPolygon(points, false)
	return nil
}

// FuseTip returns the world position of the fuse end, where sparks appear.
func (t *Target) FuseTip() (x, y float64) {
	return t.X + t.Radius*0.7, t.Y + t.Radius*1.1
}
