package geometry

import (
	"fmt"
	"math"
)

// Circle is a disk in the XY plane. Only the X and Y of Center are used.
type Circle struct {
	Center Vector3 // Circle center in world coordinates
	Radius float64 // Circle radius
}

// NewCircle creates a circle centered at (cx, cy)
func NewCircle(cx, cy, radius float64) (Circle, error) {
	if radius <= 0 || math.IsNaN(radius) || math.IsInf(radius, 0) {
		return Circle{}, fmt.Errorf("invalid circle radius: %v (must be positive and finite)", radius)
	}
	return Circle{Center: NewVector3(cx, cy, 0), Radius: radius}, nil
}

// Local converts a world position into coordinates relative to the center
func (c Circle) Local(x, y float64) (float64, float64) {
	return x - c.Center.X, y - c.Center.Y
}

// World converts center-relative coordinates back to world coordinates
func (c Circle) World(x, y float64) (float64, float64) {
	return x + c.Center.X, y + c.Center.Y
}

// Contains reports whether a world position lies inside or on the circle
func (c Circle) Contains(x, y float64) bool {
	lx, ly := c.Local(x, y)
	return lx*lx+ly*ly <= c.Radius*c.Radius
}

// Clamp pulls a center-relative offset back onto the circle when it lies
// outside. Offsets inside the circle are returned unchanged.
func (c Circle) Clamp(dx, dy float64) (float64, float64) {
	norm := math.Hypot(dx, dy)
	if norm > c.Radius {
		dx *= c.Radius / norm
		dy *= c.Radius / norm
	}
	return dx, dy
}

// Outline samples the circle boundary in world coordinates.
// Angles run from 0 (inclusive) to 2π (exclusive) in increments of step.
func (c Circle) Outline(step float64) []Vector3 {
	if step <= 0 {
		return nil
	}
	points := make([]Vector3, 0, int(2*math.Pi/step)+1)
	for theta := 0.0; theta < 2*math.Pi; theta += step {
		points = append(points, NewVector3(
			c.Center.X+c.Radius*math.Cos(theta),
			c.Center.Y+c.Radius*math.Sin(theta),
			0,
		))
	}
	return points
}
