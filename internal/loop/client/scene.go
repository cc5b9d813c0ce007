package client

import (
	"time"

	"github.com/tomz197/slicer/internal/draw"
	"github.com/tomz197/slicer/internal/game"
	"github.com/tomz197/slicer/internal/gesture"
	"github.com/tomz197/slicer/internal/loop/config"
	"github.com/tomz197/slicer/internal/object"
)

// lifeIcon is one life indicator in the HUD.
type lifeIcon struct {
	lost  bool
	blink float64 // Seconds of blinking left after being lost
}

// Scene draws what the game decides: targets, particle effects, the slice
// path and the life indicators.
type Scene struct {
	targets []*object.Target
	effects []object.Object
	toSpawn []object.Object

	path      []gesture.Point
	pathAlpha float64 // 1 is fully visible
	pathFade  float64 // Alpha lost per second; 0 while not fading

	lives      []lifeIcon
	sparkTimer float64
}

// Compile-time check that Scene implements game.Scene.
var _ game.Scene = (*Scene)(nil)

// NewScene creates an empty scene with the given number of life indicators.
func NewScene(lives int) *Scene {
	return &Scene{lives: make([]lifeIcon, lives)}
}

// Reset clears everything for a new game.
func (s *Scene) Reset() {
	for _, e := range s.effects {
		object.ReleaseObject(e)
	}
	for _, e := range s.toSpawn {
		object.ReleaseObject(e)
	}
	s.targets = s.targets[:0]
	s.effects = s.effects[:0]
	s.toSpawn = s.toSpawn[:0]
	s.path = nil
	s.pathAlpha = 0
	s.pathFade = 0
	clear(s.lives)
}

// AddObject starts drawing a target.
func (s *Scene) AddObject(t *object.Target) {
	s.targets = append(s.targets, t)
}

// RemoveObject stops drawing a target immediately.
func (s *Scene) RemoveObject(t *object.Target) {
	t.MarkRemoved()
	kept := s.targets[:0]
	for _, o := range s.targets {
		if o != t {
			kept = append(kept, o)
		}
	}
	s.targets = kept
}

// SetPath replaces the drawn slice path.
func (s *Scene) SetPath(path []gesture.Point) {
	s.path = path
}

// ShowPath makes the path fully visible and stops any fade.
func (s *Scene) ShowPath() {
	s.pathAlpha = 1
	s.pathFade = 0
}

// FadePath fades the path out over seconds.
func (s *Scene) FadePath(seconds float64) {
	if seconds <= 0 {
		s.pathAlpha = 0
		return
	}
	s.pathFade = 1 / seconds
}

// PlayEffect bursts particles at a world position.
func (s *Scene) PlayEffect(e game.Effect, x, y float64) {
	switch e {
	case game.EffectSlice:
		object.SpawnExplosion(x, y, config.SliceParticles, 250, 0.5, draw.ColorYellow, s)
	case game.EffectExplosion:
		object.SpawnExplosion(x, y, config.BombParticles, 500, 1.0, draw.ColorOrange, s)
	}
}

// AttachEffect attaches a lasting effect to a target.
func (s *Scene) AttachEffect(t *object.Target, e game.Effect) {
	if e == game.EffectFuse {
		t.Fuse = true
	}
}

// SetLifeLost shows the life indicator at index as lost.
func (s *Scene) SetLifeLost(index int) {
	if index < 0 || index >= len(s.lives) {
		return
	}
	if !s.lives[index].lost {
		s.lives[index] = lifeIcon{lost: true, blink: config.LifeBlinkSeconds}
	}
}

// Spawn queues an effect to be added after the current update.
// Implements object.Spawner.
func (s *Scene) Spawn(obj object.Object) {
	s.toSpawn = append(s.toSpawn, obj)
}

// Update advances animations by delta.
func (s *Scene) Update(delta time.Duration) {
	dt := delta.Seconds()
	ctx := object.UpdateContext{Delta: delta, Spawner: s}

	s.sparkTimer += dt
	sparks := s.sparkTimer >= config.SparkInterval
	if sparks {
		s.sparkTimer = 0
	}

	kept := s.targets[:0]
	for _, t := range s.targets {
		if remove, _ := t.Update(ctx); remove {
			continue
		}
		if sparks && t.Fuse && !t.Sliced {
			x, y := t.FuseTip()
			object.SpawnSparks(x, y, s)
		}
		kept = append(kept, t)
	}
	s.targets = kept

	keptEffects := s.effects[:0]
	for _, e := range s.effects {
		if remove, _ := e.Update(ctx); remove {
			object.ReleaseObject(e)
			continue
		}
		keptEffects = append(keptEffects, e)
	}
	s.effects = append(keptEffects, s.toSpawn...)
	s.toSpawn = s.toSpawn[:0]

	if s.pathFade > 0 {
		s.pathAlpha -= s.pathFade * dt
		if s.pathAlpha <= 0 {
			s.pathAlpha = 0
			s.pathFade = 0
			s.path = nil
		}
	}

	for i := range s.lives {
		if s.lives[i].blink > 0 {
			s.lives[i].blink = max(s.lives[i].blink-dt, 0)
		}
	}
}

// Draw renders targets, effects and the path onto the canvas.
func (s *Scene) Draw(ctx object.DrawContext) error {
	for _, t := range s.targets {
		if err := t.Draw(ctx); err != nil {
			return err
		}
	}
	for _, e := range s.effects {
		if err := e.Draw(ctx); err != nil {
			return err
		}
	}

	if len(s.path) >= 2 && s.pathAlpha > 0 {
		color := draw.ColorWhite
		if s.pathAlpha < 0.5 {
			color = draw.ColorGray
		}
		ctx.Canvas.SetColor(color)
		points := ctx.Canvas.BorrowPoints(len(s.path))
		for i, p := range s.path {
			points[i] = ctx.Project(p.X, p.Y)
		}
		ctx.Canvas.DrawPolyline(points)
	}
	return nil
}

// Targets returns the number of targets being drawn.
func (s *Scene) Targets() int {
	return len(s.targets)
}

// Effects returns the number of live particles.
func (s *Scene) Effects() int {
	return len(s.effects)
}

// PathVisible reports whether a slice path is on screen.
func (s *Scene) PathVisible() bool {
	return len(s.path) >= 2 && s.pathAlpha > 0
}

// LifeVisible reports whether the life indicator at index is lost and whether
// it should be drawn this frame.
func (s *Scene) LifeVisible(index int) (lost, visible bool) {
	l := s.lives[index]
	return l.lost, object.ShouldRenderBlink(l.blink, config.LifeBlinkFrequency)
}

// Lives returns the number of life indicators.
func (s *Scene) Lives() int {
	return len(s.lives)
}
