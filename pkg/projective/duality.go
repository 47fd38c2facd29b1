package projective

import (
	"fmt"

	"github.com/philipparndt/gopappus/pkg/geometry"
)

// Join returns the line through two points.
func Join(p, q geometry.Vector3) geometry.Vector3 {
	return p.Cross(q)
}

// Meet returns the point where two lines cross, scaled onto the model sphere.
// Coincident lines have a zero cross product and yield ErrParallelLines.
func (m Model) Meet(l1, l2 geometry.Vector3) (geometry.Vector3, error) {
	dir, err := l1.Cross(l2).Normalize()
	if err != nil {
		return geometry.Vector3{}, fmt.Errorf("%w: %w", ErrParallelLines, err)
	}
	return dir.Mul(m.Radius), nil
}

// Incidence returns the cosine between a line and a point. It is zero when
// the point lies on the line and is independent of both vectors' scale.
func Incidence(line, point geometry.Vector3) (float64, error) {
	l, err := line.Normalize()
	if err != nil {
		return 0, err
	}
	p, err := point.Normalize()
	if err != nil {
		return 0, err
	}
	return l.Dot(p), nil
}
