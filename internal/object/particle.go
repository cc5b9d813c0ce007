package object

import (
	"math"
	"math/rand"
	"sync"

	"github.com/tomz197/slicer/internal/draw"
)

// particlePool is a sync.Pool for reusing Particle objects to reduce allocations.
var particlePool = sync.Pool{
	New: func() any {
		return &Particle{}
	},
}

// Particle is a short-lived visual effect in world coordinates.
type Particle struct {
	X, Y        float64 // Position
	VX, VY      float64 // Velocity
	Gravity     float64 // Vertical acceleration (negative pulls down)
	Lifetime    float64 // Seconds remaining
	MaxLifetime float64 // Initial lifetime (for fade calculation)
	Drag        float64 // Velocity decay (1.0 = no drag)
	Fade        bool    // Whether to fade out over lifetime
	Color       draw.Color
}

// NewParticle creates a single particle from the pool.
func NewParticle(x, y, vx, vy, lifetime float64) *Particle {
	p := particlePool.Get().(*Particle)
	p.X = x
	p.Y = y
	p.VX = vx
	p.VY = vy
	p.Gravity = 0
	p.Lifetime = lifetime
	p.MaxLifetime = lifetime
	p.Drag = 0.95
	p.Fade = true
	p.Color = draw.ColorYellow
	return p
}

// Release returns the particle to the pool for reuse.
// Should be called when the particle is removed from the scene.
func (p *Particle) Release() {
	particlePool.Put(p)
}

// SpawnExplosion creates particles of the given color in a circular burst.
func SpawnExplosion(x, y float64, count int, speed, lifetime float64, color draw.Color, spawner Spawner) {
	if spawner == nil {
		return
	}

	for i := 0; i < count; i++ {
		angle := rand.Float64() * 2 * math.Pi
		// Speed varies 50% to 150%, lifetime 50% to 100%.
		spd := speed * (0.5 + rand.Float64())
		life := lifetime * (0.5 + rand.Float64()*0.5)

		p := NewParticle(x, y, math.Cos(angle)*spd, math.Sin(angle)*spd, life)
		p.Gravity = -600
		p.Color = color
		spawner.Spawn(p)
	}
}

// SpawnSparks emits one or two fuse sparks rising from (x, y).
func SpawnSparks(x, y float64, spawner Spawner) {
	if spawner == nil {
		return
	}

	count := 1 + rand.Intn(2)
	for i := 0; i < count; i++ {
		angle := math.Pi/2 + (rand.Float64()-0.5)*1.2
		speed := 80 + rand.Float64()*80
		lifetime := 0.1 + rand.Float64()*0.15

		p := NewParticle(x, y, math.Cos(angle)*speed, math.Sin(angle)*speed, lifetime)
		p.Drag = 0.85
		spawner.Spawn(p)
	}
}

// Update moves the particle and checks lifetime.
func (p *Particle) Update(ctx UpdateContext) (bool, error) {
	dt := ctx.Delta.Seconds()

	p.Lifetime -= dt
	if p.Lifetime <= 0 {
		return true, nil
	}

	dragFactor := math.Pow(p.Drag, dt*60) // Normalize drag to ~60fps
	p.VX *= dragFactor
	p.VY = p.VY*dragFactor + p.Gravity*dt

	p.X += p.VX * dt
	p.Y += p.VY * dt

	return false, nil
}

// Draw renders the particle as a pixel on the canvas.
func (p *Particle) Draw(ctx DrawContext) error {
	// Skip faded particles (< 25% lifetime)
	if p.Fade && p.MaxLifetime > 0 && p.Lifetime/p.MaxLifetime < 0.25 {
		return nil
	}

	pos := ctx.Project(p.X, p.Y)
	ctx.Canvas.SetColor(p.Color)
	ctx.Canvas.SetFloat(pos.X, pos.Y)
	return nil
}
