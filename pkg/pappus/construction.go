package pappus

import (
	"fmt"

	"github.com/philipparndt/gopappus/pkg/geometry"
	"github.com/philipparndt/gopappus/pkg/projective"
)

// Construction is the Pappus construction for six sphere points x1..x3
// (disk A) and y1..y3 (disk B).
//
//	l1 = x1∨y2, l2 = x2∨y1, I1 = l1∧l2
//	l3 = x1∨y3, l4 = x3∨y1, I2 = l3∧l4
//	PappusLine = I1∨I2
//
// The third crossing (x2∨y3)∧(x3∨y2) lies on PappusLine by the theorem and
// is not computed here.
type Construction struct {
	X, Y [GroupSize]geometry.Vector3

	L1, L2, L3, L4 geometry.Vector3
	I1, I2         geometry.Vector3
	PappusLine     geometry.Vector3

	model projective.Model
}

// Image is the answer to a query for a seventh point.
type Image struct {
	Query     geometry.Vector3 // lifted query point
	ImageLine geometry.Vector3 // y2∨y3
	R1        geometry.Vector3 // y1∨query
	Crossing  geometry.Vector3 // PappusLine∧R1, canonical
	R2        geometry.Vector3 // x1∨Crossing
	Point     geometry.Vector3 // ImageLine∧R2, canonical
}

// Solve builds the construction from six lifted points.
func Solve(model projective.Model, x, y [GroupSize]geometry.Vector3) (*Construction, error) {
	c := &Construction{X: x, Y: y, model: model}

	c.L1 = projective.Join(x[0], y[1])
	c.L2 = projective.Join(x[1], y[0])
	c.L3 = projective.Join(x[0], y[2])
	c.L4 = projective.Join(x[2], y[0])

	i1, err := model.Meet(c.L1, c.L2)
	if err != nil {
		return nil, fmt.Errorf("%w: first intersection: %w", ErrDegenerate, err)
	}
	i2, err := model.Meet(c.L3, c.L4)
	if err != nil {
		return nil, fmt.Errorf("%w: second intersection: %w", ErrDegenerate, err)
	}
	c.I1 = projective.Canonical(i1)
	c.I2 = projective.Canonical(i2)

	c.PappusLine = projective.Join(c.I1, c.I2)
	if _, err := c.PappusLine.Normalize(); err != nil {
		return nil, fmt.Errorf("%w: intersections coincide: %w", ErrDegenerate, err)
	}
	return c, nil
}

// SolvePoints lifts six marked points and solves the construction.
func SolvePoints(model projective.Model, points []MarkedPoint) (*Construction, error) {
	if len(points) < PointCount {
		return nil, ErrIncomplete
	}
	var x, y [GroupSize]geometry.Vector3
	for i := 0; i < GroupSize; i++ {
		x[i] = model.Lift(points[i].X, points[i].Y)
		y[i] = model.Lift(points[GroupSize+i].X, points[GroupSize+i].Y)
	}
	return Solve(model, x, y)
}

// Query maps a lifted seventh point on x1's line to its image on disk B's line.
func (c *Construction) Query(q geometry.Vector3) (*Image, error) {
	img := &Image{Query: q}
	img.ImageLine = projective.Join(c.Y[1], c.Y[2])
	img.R1 = projective.Join(c.Y[0], q)

	crossing, err := c.model.Meet(c.PappusLine, img.R1)
	if err != nil {
		return nil, fmt.Errorf("%w: query meets pappus line: %w", ErrDegenerate, err)
	}
	img.Crossing = projective.Canonical(crossing)
	img.R2 = projective.Join(c.X[0], img.Crossing)

	point, err := c.model.Meet(img.ImageLine, img.R2)
	if err != nil {
		return nil, fmt.Errorf("%w: image line: %w", ErrDegenerate, err)
	}
	img.Point = projective.Canonical(point)
	return img, nil
}

// QueryPlanar lifts a disk-local planar point and queries it.
func (c *Construction) QueryPlanar(x, y float64) (*Image, error) {
	return c.Query(c.model.Lift(x, y))
}

// Model returns the projective model the construction was solved in.
func (c *Construction) Model() projective.Model {
	return c.model
}
