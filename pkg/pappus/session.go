package pappus

import (
	"fmt"
	"log/slog"

	"github.com/philipparndt/gopappus/pkg/geometry"
	"github.com/philipparndt/gopappus/pkg/projective"
)

// Layout places the two disks in world coordinates.
type Layout struct {
	CenterA geometry.Vector3
	CenterB geometry.Vector3
}

// DefaultLayout puts disk A at (-300, 0) and disk B at (300, 0).
func DefaultLayout() Layout {
	return Layout{
		CenterA: geometry.NewVector3(-300, 0, 0),
		CenterB: geometry.NewVector3(300, 0, 0),
	}
}

// Center returns the world position of a disk's center.
func (l Layout) Center(d Disk) geometry.Vector3 {
	if d == DiskB {
		return l.CenterB
	}
	return l.CenterA
}

// Circle returns the world-space circle of a disk with the given radius.
func (l Layout) Circle(d Disk, radius float64) geometry.Circle {
	return geometry.Circle{Center: l.Center(d), Radius: radius}
}

// QueryResult is what a free query point produces for the renderer.
type QueryResult struct {
	Point MarkedPoint // the query point, snapped onto disk A's line
	Image *Image
	I1    geometry.Vector3
	I2    geometry.Vector3
}

// Snapshot is a read-only view of a session for one redraw.
type Snapshot struct {
	Model        projective.Model
	Layout       Layout
	Phase        Phase
	Committed    int
	Points       []MarkedPoint        // accepted points, then the pending one
	Frames       [2]*projective.Frame // per disk, nil until its line is defined
	Construction *Construction        // nil until six points are accepted
	Query        *QueryResult         // nil without a valid query point
}

type frameCache struct {
	p1, p2 MarkedPoint
	frame  projective.Frame
	valid  bool
}

// Session owns the marked points of one interactive construction.
//
// A Session has a single writer: the input handlers. It is not safe for
// concurrent use; shells serialize updates through one update step.
type Session struct {
	model     projective.Model
	layout    Layout
	collector *Collector
	frames    [2]frameCache
	query     *MarkedPoint
}

// NewSession creates a session with no points.
func NewSession(model projective.Model, layout Layout) (*Session, error) {
	if err := model.Validate(); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return &Session{
		model:     model,
		layout:    layout,
		collector: NewCollector(model),
	}, nil
}

// Model returns the projective model.
func (s *Session) Model() projective.Model {
	return s.model
}

// Layout returns the disk placement.
func (s *Session) Layout() Layout {
	return s.layout
}

// Circle returns the world-space circle of a disk.
func (s *Session) Circle(d Disk) geometry.Circle {
	return s.layout.Circle(d, s.model.Radius)
}

// Phase returns the collection phase.
func (s *Session) Phase() Phase {
	return s.collector.Phase()
}

// Count returns the number of accepted points.
func (s *Session) Count() int {
	return s.collector.Count()
}

// Hover handles pointer motion at a world position. While collecting it
// moves the pending candidate; the third point of each disk is snapped onto
// the line through the first two. In the Free phase it moves the query point.
func (s *Session) Hover(wx, wy float64) {
	count := s.collector.Count()
	if count >= PointCount {
		if _, err := s.Query(wx, wy); err != nil {
			slog.Debug("query point ignored", "error", err)
		}
		return
	}

	disk := DiskForSlot(count)
	circle := s.Circle(disk)
	dx, dy := circle.Local(wx, wy)

	if count == GroupSize-1 || count == PointCount-1 {
		snapped := s.snap(disk, dx, dy)
		dx, dy = snapped.X, snapped.Y
	} else {
		dx, dy = circle.Clamp(dx, dy)
	}

	s.collector.Track(MarkedPoint{X: dx, Y: dy, Disk: disk})
}

// Commit accepts the pending candidate. It reports whether the count advanced.
func (s *Session) Commit() bool {
	return s.collector.Commit()
}

// Submit moves the candidate to a world position and commits it.
func (s *Session) Submit(wx, wy float64) bool {
	if s.collector.Count() >= PointCount {
		return false
	}
	s.Hover(wx, wy)
	return s.Commit()
}

// Query places the free query point at a world position, snapped onto disk
// A's line, and returns its image. It requires all six points.
func (s *Session) Query(wx, wy float64) (*QueryResult, error) {
	c, err := s.Construction()
	if err != nil {
		return nil, err
	}

	circle := s.Circle(DiskA)
	dx, dy := circle.Local(wx, wy)
	snapped := s.snap(DiskA, dx, dy)
	q := MarkedPoint{X: snapped.X, Y: snapped.Y, Disk: DiskA}
	s.query = &q

	return s.answer(c, q)
}

// QueryPoint returns the current query point.
func (s *Session) QueryPoint() (MarkedPoint, bool) {
	if s.query == nil {
		return MarkedPoint{}, false
	}
	return *s.query, true
}

// Construction solves the Pappus construction for the accepted points.
func (s *Session) Construction() (*Construction, error) {
	if s.collector.Count() < PointCount {
		return nil, ErrIncomplete
	}
	return SolvePoints(s.model, s.collector.Points())
}

// Frame returns the rotation frame of a disk's line once both of its
// defining points are accepted. Frames are memoized on the point pair.
func (s *Session) Frame(d Disk) (projective.Frame, bool) {
	first := 0
	if d == DiskB {
		first = GroupSize
	}
	p1, ok1 := s.collector.Point(first)
	p2, ok2 := s.collector.Point(first + 1)
	if !ok1 || !ok2 {
		return projective.Frame{}, false
	}

	cache := &s.frames[d]
	if cache.valid && cache.p1 == p1 && cache.p2 == p2 {
		return cache.frame, true
	}
	cache.p1, cache.p2 = p1, p2
	cache.frame = projective.CalculateFrame(s.model.Lift(p1.X, p1.Y), s.model.Lift(p2.X, p2.Y))
	cache.valid = true
	return cache.frame, true
}

// Snapshot captures everything a renderer needs for one redraw.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Model:     s.model,
		Layout:    s.layout,
		Phase:     s.collector.Phase(),
		Committed: s.collector.Count(),
		Points:    s.collector.Visible(),
	}
	for _, d := range []Disk{DiskA, DiskB} {
		if f, ok := s.Frame(d); ok {
			snap.Frames[d] = &f
		}
	}

	if s.collector.Count() < PointCount {
		return snap
	}
	c, err := s.Construction()
	if err != nil {
		slog.Debug("construction unavailable", "error", err)
		return snap
	}
	snap.Construction = c

	if s.query != nil {
		if res, err := s.answer(c, *s.query); err == nil {
			snap.Query = res
		}
	}
	return snap
}

// Reset discards every point and the query point.
func (s *Session) Reset() {
	s.collector.Reset()
	s.frames = [2]frameCache{}
	s.query = nil
}

// Reconfigure swaps the model and layout. Points are kept when the radius is
// unchanged and all of them stay distinct under the new threshold; otherwise
// the session resets.
func (s *Session) Reconfigure(model projective.Model, layout Layout) error {
	if err := model.Validate(); err != nil {
		return fmt.Errorf("failed to reconfigure session: %w", err)
	}
	radiusChanged := model.Radius != s.model.Radius
	points := s.collector.Points()

	s.model = model
	s.layout = layout
	s.collector = NewCollector(model)
	s.frames = [2]frameCache{}
	s.query = nil

	if radiusChanged {
		slog.Debug("radius changed, points discarded", "radius", model.Radius)
		return nil
	}
	// Replay is all or nothing so points never change slots.
	replay := NewCollector(model)
	for i, p := range points {
		if !replay.Submit(p) {
			slog.Warn("points discarded, a point is a duplicate under the new threshold",
				"slot", PointName(i), "threshold", model.InfinityThreshold)
			return nil
		}
	}
	s.collector = replay
	return nil
}

func (s *Session) liftedLine(d Disk) (geometry.Vector3, geometry.Vector3) {
	first := 0
	if d == DiskB {
		first = GroupSize
	}
	p1, _ := s.collector.Point(first)
	p2, _ := s.collector.Point(first + 1)
	return s.model.Lift(p1.X, p1.Y), s.model.Lift(p2.X, p2.Y)
}

// snap projects a disk-local position onto the disk's line, or onto the
// boundary when that line is ideal.
func (s *Session) snap(d Disk, dx, dy float64) geometry.Vector3 {
	p1, p2 := s.liftedLine(d)
	if s.model.IsIdealLine(p1, p2) {
		return s.model.SnapToBoundary(dx, dy)
	}
	f, _ := s.Frame(d)
	return s.model.SnapToLine(f, dx, dy)
}

func (s *Session) answer(c *Construction, q MarkedPoint) (*QueryResult, error) {
	img, err := c.QueryPlanar(q.X, q.Y)
	if err != nil {
		return nil, err
	}
	return &QueryResult{Point: q, Image: img, I1: c.I1, I2: c.I2}, nil
}
