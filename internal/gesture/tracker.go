// Package gesture keeps the rolling polyline of the player's current swipe.
package gesture

// Point is a gesture sample in world coordinates.
type Point struct {
	X, Y float64
}

// DefaultLimit is the number of samples a path keeps.
const DefaultLimit = 12

// Tracker is a bounded FIFO of the most recent gesture samples.
type Tracker struct {
	points []Point
	limit  int
}

// NewTracker creates a tracker holding at most limit samples.
func NewTracker(limit int) *Tracker {
	if limit < 1 {
		limit = DefaultLimit
	}
	return &Tracker{
		points: make([]Point, 0, limit+1),
		limit:  limit,
	}
}

// Begin starts a new gesture at p, discarding the previous one.
func (t *Tracker) Begin(p Point) {
	t.points = t.points[:0]
	t.points = append(t.points, p)
}

// Add appends a sample, dropping the oldest once the limit is exceeded.
func (t *Tracker) Add(p Point) {
	t.points = append(t.points, p)
	if over := len(t.points) - t.limit; over > 0 {
		n := copy(t.points, t.points[over:])
		t.points = t.points[:n]
	}
}

// Reset discards all samples.
func (t *Tracker) Reset() {
	t.points = t.points[:0]
}

// Len returns the number of retained samples.
func (t *Tracker) Len() int {
	return len(t.points)
}

// Path returns a copy of the polyline, or nil when fewer than two samples
// exist and there is nothing to draw.
func (t *Tracker) Path() []Point {
	if len(t.points) < 2 {
		return nil
	}
	out := make([]Point, len(t.points))
	copy(out, t.points)
	return out
}
