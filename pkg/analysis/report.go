// Package analysis checks a Pappus construction independently of the solver
// and summarizes it for display.
package analysis

import (
	"fmt"
	"math"

	"github.com/philipparndt/gopappus/pkg/geometry"
	"github.com/philipparndt/gopappus/pkg/pappus"
	"github.com/philipparndt/gopappus/pkg/projective"
)

// DefaultTolerance is the largest |cos| between the Pappus line and the third
// crossing that still counts as collinear.
const DefaultTolerance = 1e-9

// PointInfo describes one collected point.
type PointInfo struct {
	Name     string           `json:"name"`
	Disk     string           `json:"disk"`
	Planar   geometry.Vector3 `json:"planar"`
	Lifted   geometry.Vector3 `json:"lifted"`
	Boundary bool             `json:"boundary"`
}

// QueryInfo describes the image of a query point.
type QueryInfo struct {
	Point    geometry.Vector3 `json:"point"`
	Crossing geometry.Vector3 `json:"crossing"`
	Image    geometry.Vector3 `json:"image"`
}

// Report summarizes a session snapshot.
type Report struct {
	Phase    string      `json:"phase"`
	Points   []PointInfo `json:"points"`
	Complete bool        `json:"complete"`

	I1         geometry.Vector3 `json:"i1"`
	I2         geometry.Vector3 `json:"i2"`
	I3         geometry.Vector3 `json:"i3"`
	PappusLine geometry.Vector3 `json:"pappusLine"`
	// Residual is the cosine between the Pappus line and I3.
	Residual  float64 `json:"residual"`
	Collinear bool    `json:"collinear"`

	Query *QueryInfo `json:"query,omitempty"`
}

// ThirdCrossing returns (x2∨y3)∧(x3∨y2), canonicalized.
func ThirdCrossing(c *pappus.Construction) (geometry.Vector3, error) {
	l5 := projective.Join(c.X[1], c.Y[2])
	l6 := projective.Join(c.X[2], c.Y[1])
	i3, err := c.Model().Meet(l5, l6)
	if err != nil {
		return geometry.Vector3{}, fmt.Errorf("%w: third crossing: %w", pappus.ErrDegenerate, err)
	}
	return projective.Canonical(i3), nil
}

// Residual returns the cosine between the Pappus line and the third crossing.
// Pappus's theorem makes it zero up to rounding.
func Residual(c *pappus.Construction) (float64, geometry.Vector3, error) {
	i3, err := ThirdCrossing(c)
	if err != nil {
		return 0, geometry.Vector3{}, err
	}
	r, err := projective.Incidence(c.PappusLine, i3)
	if err != nil {
		return 0, i3, fmt.Errorf("%w: %w", pappus.ErrDegenerate, err)
	}
	return r, i3, nil
}

// Analyze builds a report for a snapshot. Snapshots with fewer than six points
// produce a report that only lists the points.
func Analyze(snap pappus.Snapshot, tolerance float64) (*Report, error) {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}

	report := &Report{
		Phase:  snap.Phase.String(),
		Points: make([]PointInfo, 0, snap.Committed),
	}
	for i := 0; i < snap.Committed && i < len(snap.Points); i++ {
		p := snap.Points[i]
		report.Points = append(report.Points, PointInfo{
			Name:     pappus.PointName(i),
			Disk:     p.Disk.String(),
			Planar:   p.Planar(),
			Lifted:   snap.Model.Lift(p.X, p.Y),
			Boundary: snap.Model.IsBoundaryPoint(p.Planar()),
		})
	}

	c := snap.Construction
	if c == nil {
		return report, nil
	}

	residual, i3, err := Residual(c)
	if err != nil {
		return nil, err
	}
	report.Complete = true
	report.I1, report.I2, report.I3 = c.I1, c.I2, i3
	report.PappusLine = c.PappusLine
	report.Residual = residual
	report.Collinear = math.Abs(residual) <= tolerance

	if q := snap.Query; q != nil && q.Image != nil {
		report.Query = &QueryInfo{
			Point:    q.Point.Planar(),
			Crossing: q.Image.Crossing,
			Image:    q.Image.Point,
		}
	}
	return report, nil
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}

// FormatResidual formats a residual in scientific notation
func FormatResidual(r float64) string {
	return fmt.Sprintf("%.3e", r)
}
