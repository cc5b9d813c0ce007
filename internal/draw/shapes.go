package draw

import "math"

// circleSegments is the vertex count used to approximate circles.
const circleSegments = 16

// DrawPolyline draws connected line segments through points.
func (c *Canvas) DrawPolyline(points []Point) {
	for i := 1; i < len(points); i++ {
		c.DrawLine(points[i-1], points[i])
	}
}

// DrawCircle draws a circle of the given logical radius around center.
func (c *Canvas) DrawCircle(center Point, radius float64, filled bool) {
	if radius <= 0 {
		return
	}
	points := c.BorrowPoints(circleSegments)
	for i := range points {
		angle := float64(i) * 2 * math.Pi / circleSegments
		points[i] = Point{
			X: center.X + math.Cos(angle)*radius,
			Y: center.Y + math.Sin(angle)*radius,
		}
	}
	c.DrawPolygon(points, filled)
}
