// Package projective implements the disk model of the real projective plane.
//
// A planar point (x, y) inside a disk of radius r is lifted onto the upper
// hemisphere of the sphere of radius r. Vectors through the origin are
// projective points; their orthogonal planes are projective lines. A vector
// and its negation name the same element, so opposite boundary points of the
// disk are one and the same ideal point.
package projective

import (
	"errors"
	"fmt"
	"math"

	"github.com/philipparndt/gopappus/pkg/geometry"
)

var (
	// ErrParallelLines is returned when two lines have no unique meet,
	// which in the projective plane means they coincide.
	ErrParallelLines = errors.New("projective: lines coincide")

	// ErrInvalidModel is returned for a non-positive radius or threshold.
	ErrInvalidModel = errors.New("projective: invalid model parameters")
)

const (
	// DefaultRadius is the disk radius in world units.
	DefaultRadius = 200.0
	// DefaultInfinityThreshold is the tolerance for boundary and equality tests.
	DefaultInfinityThreshold = 0.05
	// DefaultArcStep is the angular step used to sample arcs.
	DefaultArcStep = 0.001
)

// Model holds the parameters shared by every projective computation.
type Model struct {
	Radius            float64
	InfinityThreshold float64
}

// DefaultModel returns the model with radius 200 and threshold 0.05.
func DefaultModel() Model {
	return Model{Radius: DefaultRadius, InfinityThreshold: DefaultInfinityThreshold}
}

// NewModel validates and returns a model.
func NewModel(radius, threshold float64) (Model, error) {
	m := Model{Radius: radius, InfinityThreshold: threshold}
	if err := m.Validate(); err != nil {
		return Model{}, err
	}
	return m, nil
}

// Validate checks that radius and threshold are positive and finite.
func (m Model) Validate() error {
	if !(m.Radius > 0) || math.IsInf(m.Radius, 0) {
		return fmt.Errorf("%w: radius %v", ErrInvalidModel, m.Radius)
	}
	if !(m.InfinityThreshold > 0) || math.IsInf(m.InfinityThreshold, 0) {
		return fmt.Errorf("%w: infinity threshold %v", ErrInvalidModel, m.InfinityThreshold)
	}
	return nil
}

// LiftToSphere returns (x, y, sqrt(r² - x² - y²)).
// Points on or numerically past the boundary circle get z = 0.
func LiftToSphere(x, y, r float64) geometry.Vector3 {
	z := math.Sqrt(math.Max(0, r*r-x*x-y*y))
	return geometry.NewVector3(x, y, z)
}

// Lift lifts a disk-local planar point onto the model sphere.
func (m Model) Lift(x, y float64) geometry.Vector3 {
	return LiftToSphere(x, y, m.Radius)
}

// Canonical returns the representative of p with a non-negative Z.
func Canonical(p geometry.Vector3) geometry.Vector3 {
	if p.Z < 0 {
		return p.Neg()
	}
	return p
}

// SameProjectivePoint reports whether p and q are within the threshold of
// each other in the plane, either directly or after negating q.
func (m Model) SameProjectivePoint(p, q geometry.Vector3) bool {
	direct := math.Hypot(p.X-q.X, p.Y-q.Y)
	antipodal := math.Hypot(p.X+q.X, p.Y+q.Y)
	return math.Min(direct, antipodal) <= m.InfinityThreshold
}

// IsBoundaryPoint reports whether the planar part of p lies on the boundary
// circle, i.e. p is an ideal point of the disk.
func (m Model) IsBoundaryPoint(p geometry.Vector3) bool {
	return m.Radius*m.Radius-p.X*p.X-p.Y*p.Y < m.InfinityThreshold
}
