package pappus

import (
	"log/slog"

	"github.com/philipparndt/gopappus/pkg/projective"
)

// Collector gates acceptance of the six configuration points.
//
// The slot at index Count() is the pending candidate: pointer motion
// overwrites it through Track and a click freezes it through Commit. A
// candidate is accepted only if it differs, as a projective point, from every
// accepted point of the group being filled. Rejected candidates leave the
// count unchanged.
type Collector struct {
	model   projective.Model
	points  [PointCount]MarkedPoint
	count   int
	pending bool
}

// NewCollector creates an empty collector.
func NewCollector(model projective.Model) *Collector {
	return &Collector{model: model}
}

// Count returns the number of accepted points.
func (c *Collector) Count() int {
	return c.count
}

// Phase returns the current collection phase.
func (c *Collector) Phase() Phase {
	return PhaseFor(c.count)
}

// Track stores p in the pending slot. It returns false once all six points
// are accepted or when p belongs to the wrong disk for the slot.
func (c *Collector) Track(p MarkedPoint) bool {
	if c.count >= PointCount || p.Disk != DiskForSlot(c.count) {
		return false
	}
	c.points[c.count] = p
	c.pending = true
	return true
}

// Commit accepts the pending candidate if it is distinct within its group.
// Without a pending candidate, or in the Free phase, it returns false.
func (c *Collector) Commit() bool {
	if !c.pending || c.count >= PointCount {
		return false
	}

	start := 0
	if c.count >= GroupSize {
		start = GroupSize
	}
	for i := start; i <= c.count; i++ {
		for j := i + 1; j <= c.count; j++ {
			if c.model.SameProjectivePoint(c.points[i].Planar(), c.points[j].Planar()) {
				slog.Debug("candidate rejected",
					"slot", PointName(c.count), "duplicates", PointName(i))
				return false
			}
		}
	}

	slog.Debug("candidate accepted",
		"slot", PointName(c.count), "x", c.points[c.count].X, "y", c.points[c.count].Y)
	c.count++
	c.pending = false
	return true
}

// Submit tracks p and commits it in one step.
func (c *Collector) Submit(p MarkedPoint) bool {
	if !c.Track(p) {
		return false
	}
	return c.Commit()
}

// Pending returns the candidate in the pending slot, if any.
func (c *Collector) Pending() (MarkedPoint, bool) {
	if !c.pending || c.count >= PointCount {
		return MarkedPoint{}, false
	}
	return c.points[c.count], true
}

// Points returns a copy of the accepted points.
func (c *Collector) Points() []MarkedPoint {
	out := make([]MarkedPoint, c.count)
	copy(out, c.points[:c.count])
	return out
}

// Visible returns the accepted points followed by the pending candidate.
func (c *Collector) Visible() []MarkedPoint {
	n := c.count
	if c.pending && n < PointCount {
		n++
	}
	out := make([]MarkedPoint, n)
	copy(out, c.points[:n])
	return out
}

// Point returns the accepted point at slot i.
func (c *Collector) Point(i int) (MarkedPoint, bool) {
	if i < 0 || i >= c.count {
		return MarkedPoint{}, false
	}
	return c.points[i], true
}

// Reset discards every point.
func (c *Collector) Reset() {
	c.points = [PointCount]MarkedPoint{}
	c.count = 0
	c.pending = false
}
