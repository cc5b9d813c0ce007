package physics

import (
	"math"
	"testing"
)

func TestPointInCircle(t *testing.T) {
	tests := []struct {
		name   string
		px, py float64
		want   bool
	}{
		{"center", 10, 10, true},
		{"on edge", 13, 14, true},
		{"outside", 14, 14, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PointInCircle(tt.px, tt.py, 10, 10, 5); got != tt.want {
				t.Fatalf("PointInCircle(%v, %v) = %v, want %v", tt.px, tt.py, got, tt.want)
			}
		})
	}
}

func TestStepAppliesGravityScaledBySpeed(t *testing.T) {
	w := NewWorld(-10, 0.5)
	b := &Body{VX: 4, VY: 20, AngularVelocity: 2, Dynamic: true}

	w.Step(b, 1)

	// Simulated time is 0.5s: vy = 20 - 5, y = 15 * 0.5.
	if b.VY != 15 {
		t.Fatalf("VY = %f, want 15", b.VY)
	}
	if b.Y != 7.5 || b.X != 2 || b.Angle != 1 {
		t.Fatalf("position = (%f, %f) angle %f, want (2, 7.5) angle 1", b.X, b.Y, b.Angle)
	}
}

func TestStepSkipsStaticBodiesAndFrozenWorld(t *testing.T) {
	w := NewWorld(-10, 1)
	static := &Body{VY: 5}
	w.Step(static, 1)
	if static.Y != 0 || static.VY != 5 {
		t.Fatalf("static body moved: %+v", static)
	}

	moving := &Body{VY: 5, Dynamic: true}
	w.Freeze()
	w.Step(moving, 1)
	if moving.Y != 0 || !w.Frozen() {
		t.Fatalf("body moved in frozen world: %+v", moving)
	}
}

func TestDistance(t *testing.T) {
	if d := Distance(0, 0, 3, 4); math.Abs(d-5) > 1e-12 {
		t.Fatalf("Distance = %f, want 5", d)
	}
}

func TestGridFindsNeighboursAndClampsOutside(t *testing.T) {
	g := NewSpatialGrid(1024, 768, 128)
	g.Insert(500, 400, 0)
	g.Insert(40, -120, 1) // below the world, clamped into row 0
	g.Insert(1000, 700, 2)

	found := func(x, y float64) map[int]bool {
		m := map[int]bool{}
		g.QueryAround(x, y, func(i int) bool {
			m[i] = true
			return false
		})
		return m
	}

	if m := found(520, 380); !m[0] || m[2] {
		t.Fatalf("query near item 0 = %v", m)
	}
	if m := found(60, 10); !m[1] {
		t.Fatalf("query near clamped item 1 = %v", m)
	}

	g.Clear()
	if m := found(500, 400); len(m) != 0 {
		t.Fatalf("cleared grid returned %v", m)
	}
}
