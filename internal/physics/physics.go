// Package physics provides rigid-body integration and point/circle tests for
// launched objects.
package physics

import "math"

// Distance calculates the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Sqrt(DistanceSquared(x1, y1, x2, y2))
}

// DistanceSquared calculates the squared distance between two points.
// Use this when comparing distances to avoid the sqrt cost.
func DistanceSquared(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// PointInCircle checks if a point is within radius of a target position.
func PointInCircle(px, py, cx, cy, radius float64) bool {
	return DistanceSquared(px, py, cx, cy) <= radius*radius
}

// Body is a circular rigid body.
//
// Bodies never respond to each other: CollisionMask is kept at zero and the
// world only applies gravity and the body's own velocities.
type Body struct {
	X, Y            float64 // Position (world units, y up)
	VX, VY          float64 // Velocity (units/sec)
	Angle           float64 // Rotation (radians)
	AngularVelocity float64 // Radians/sec
	Radius          float64 // Collision radius
	Dynamic         bool    // False once frozen; the world leaves it in place
	CollisionMask   uint32
}

// World integrates bodies under a constant vertical gravity.
// Speed scales simulated time; zero stops all motion.
type World struct {
	Gravity float64 // Units/sec^2, negative pulls down
	Speed   float64
}

// NewWorld creates a world with the given gravity and time scale.
func NewWorld(gravity, speed float64) *World {
	return &World{Gravity: gravity, Speed: speed}
}

// Frozen reports whether simulated time is stopped.
func (w *World) Frozen() bool {
	return w.Speed <= 0
}

// Freeze stops all motion.
func (w *World) Freeze() {
	w.Speed = 0
}

// Step advances one body by dt real seconds using semi-implicit Euler.
func (w *World) Step(b *Body, dt float64) {
	if !b.Dynamic || w.Frozen() || dt <= 0 {
		return
	}
	t := dt * w.Speed

	b.VY += w.Gravity * t
	b.X += b.VX * t
	b.Y += b.VY * t
	b.Angle += b.AngularVelocity * t
}
