package projective

import (
	"math"

	"github.com/philipparndt/gopappus/pkg/geometry"
)

// IsIdealLine reports whether both defining points sit on the boundary,
// making their line the boundary circle.
func (m Model) IsIdealLine(p1, p2 geometry.Vector3) bool {
	return p1.Z < m.InfinityThreshold && p2.Z < m.InfinityThreshold
}

// SnapToLine moves a disk-local position onto the visible half of the line
// described by f. The component of the position along the line's ideal
// direction is kept (clamped to the radius) and the point is lifted onto the
// geodesic. The returned vector lies on the model sphere.
func (m Model) SnapToLine(f Frame, x, y float64) geometry.Vector3 {
	local := f.InverseBaseRotation().MulVec(geometry.NewVector3(x, y, 0))
	lx := math.Max(-m.Radius, math.Min(m.Radius, local.X))
	ly := math.Sqrt(math.Max(0, m.Radius*m.Radius-lx*lx))
	return f.Matrix().MulVec(geometry.NewVector3(lx, ly, 0))
}

// SnapToBoundary pushes a disk-local position radially onto the boundary
// circle. The center has no direction and maps to (r, 0, 0).
func (m Model) SnapToBoundary(x, y float64) geometry.Vector3 {
	n := math.Hypot(x, y)
	if n == 0 {
		return geometry.NewVector3(m.Radius, 0, 0)
	}
	return geometry.NewVector3(x*m.Radius/n, y*m.Radius/n, 0)
}

// SnapToJoin snaps a disk-local position onto the line through p1 and p2,
// using the boundary circle when that line is ideal.
func (m Model) SnapToJoin(p1, p2 geometry.Vector3, x, y float64) geometry.Vector3 {
	if m.IsIdealLine(p1, p2) {
		return m.SnapToBoundary(x, y)
	}
	return m.SnapToLine(CalculateFrame(p1, p2), x, y)
}
