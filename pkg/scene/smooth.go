package scene

import "github.com/philipparndt/gopappus/pkg/pappus"

// DefaultSmoothing is the fraction of the remaining distance a displayed
// marker moves per redraw.
const DefaultSmoothing = 0.25

type smoothed struct {
	x, y  float64
	valid bool
}

// Smoother eases displayed marker positions toward the stored ones. It only
// affects what is drawn; geometry is always computed from the stored points.
type Smoother struct {
	factor float64
	slots  [pappus.PointCount]smoothed
	query  smoothed
}

// NewSmoother creates a smoother. A factor outside (0, 1] disables easing.
func NewSmoother(factor float64) *Smoother {
	if factor <= 0 || factor > 1 {
		factor = 1
	}
	return &Smoother{factor: factor}
}

// Step advances every displayed marker one redraw and returns a copy of snap
// whose marker positions are the displayed ones.
func (s *Smoother) Step(snap pappus.Snapshot) pappus.Snapshot {
	points := make([]pappus.MarkedPoint, len(snap.Points))
	for i, p := range snap.Points {
		p.X, p.Y = s.slots[i].advance(p.X, p.Y, s.factor)
		points[i] = p
	}
	for i := len(snap.Points); i < len(s.slots); i++ {
		s.slots[i] = smoothed{}
	}
	snap.Points = points

	if snap.Query != nil {
		q := *snap.Query
		q.Point.X, q.Point.Y = s.query.advance(q.Point.X, q.Point.Y, s.factor)
		snap.Query = &q
	} else {
		s.query = smoothed{}
	}
	return snap
}

// Reset forgets every displayed position.
func (s *Smoother) Reset() {
	s.slots = [pappus.PointCount]smoothed{}
	s.query = smoothed{}
}

func (m *smoothed) advance(x, y, factor float64) (float64, float64) {
	if !m.valid {
		m.x, m.y, m.valid = x, y, true
		return x, y
	}
	m.x += (x - m.x) * factor
	m.y += (y - m.y) * factor
	return m.x, m.y
}
