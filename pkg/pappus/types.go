// Package pappus collects the six points of a Pappus configuration and
// solves the construction on top of the projective disk model.
package pappus

import (
	"errors"
	"fmt"

	"github.com/philipparndt/gopappus/pkg/geometry"
)

const (
	// PointCount is the number of points a configuration needs.
	PointCount = 6
	// GroupSize is the number of collinear points on each disk.
	GroupSize = 3
)

var (
	// ErrIncomplete is returned when a construction is requested before six
	// points have been collected.
	ErrIncomplete = errors.New("pappus: fewer than six points collected")

	// ErrDegenerate is returned when the collected points do not determine
	// the construction (coincident auxiliary lines or intersections).
	ErrDegenerate = errors.New("pappus: degenerate configuration")
)

// Disk identifies one of the two disks.
type Disk int

const (
	DiskA Disk = iota
	DiskB
)

func (d Disk) String() string {
	switch d {
	case DiskA:
		return "A"
	case DiskB:
		return "B"
	default:
		return fmt.Sprintf("Disk(%d)", int(d))
	}
}

// MarkedPoint is a planar point relative to the center of its disk.
type MarkedPoint struct {
	X, Y float64
	Disk Disk
}

// Planar returns the point as a vector with zero Z.
func (p MarkedPoint) Planar() geometry.Vector3 {
	return geometry.NewVector3(p.X, p.Y, 0)
}

// Phase is the state of point collection.
type Phase int

const (
	// CollectingA accepts points 0..2 on disk A.
	CollectingA Phase = iota
	// CollectingB accepts points 3..5 on disk B.
	CollectingB
	// Free accepts unlimited query points that are never stored.
	Free
)

// PhaseFor returns the phase for a number of accepted points.
func PhaseFor(count int) Phase {
	switch {
	case count < GroupSize:
		return CollectingA
	case count < PointCount:
		return CollectingB
	default:
		return Free
	}
}

func (p Phase) String() string {
	switch p {
	case CollectingA:
		return "collecting A"
	case CollectingB:
		return "collecting B"
	case Free:
		return "free"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// DiskForSlot returns the disk a slot index belongs to.
func DiskForSlot(slot int) Disk {
	if slot < GroupSize {
		return DiskA
	}
	return DiskB
}

// PointName returns the conventional label of a slot: x1..x3 on disk A,
// y1..y3 on disk B.
func PointName(slot int) string {
	if slot < GroupSize {
		return fmt.Sprintf("x%d", slot+1)
	}
	return fmt.Sprintf("y%d", slot-GroupSize+1)
}
