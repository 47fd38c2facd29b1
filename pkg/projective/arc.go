package projective

import (
	"math"

	"github.com/philipparndt/gopappus/pkg/geometry"
)

// Arc is a sampled geodesic in disk-local coordinates.
type Arc struct {
	// Points traces the visible half of the geodesic in order.
	Points []geometry.Vector3
	// Antipodes holds the negation of every boundary sample. Opposite
	// boundary points are the same projective point, so both are drawn.
	Antipodes []geometry.Vector3
}

// ProjectArc samples frame · (cos θ, sin θ, 0) · radius for θ in [0, π).
func (m Model) ProjectArc(f Frame, step float64) Arc {
	if step <= 0 {
		step = DefaultArcStep
	}

	transform := f.Matrix()
	arc := Arc{Points: make([]geometry.Vector3, 0, int(math.Pi/step)+1)}
	for theta := 0.0; theta < math.Pi; theta += step {
		p := transform.MulVec(geometry.NewVector3(math.Cos(theta), math.Sin(theta), 0)).Mul(m.Radius)
		arc.Points = append(arc.Points, p)
		if m.IsBoundaryPoint(p) {
			arc.Antipodes = append(arc.Antipodes, p.Neg())
		}
	}
	return arc
}

// ProjectLine samples the geodesic through two sphere points.
func (m Model) ProjectLine(p1, p2 geometry.Vector3, step float64) Arc {
	return m.ProjectArc(CalculateFrame(p1, p2), step)
}
