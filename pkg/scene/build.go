package scene

import (
	"math"

	"github.com/philipparndt/gopappus/pkg/geometry"
	"github.com/philipparndt/gopappus/pkg/pappus"
	"github.com/philipparndt/gopappus/pkg/projective"
)

// Build renders a snapshot into a frame. Drawing order: disk outlines with
// their lines, collected point markers, then the Pappus construction and the
// current query.
func Build(snap pappus.Snapshot, style Style) Frame {
	b := builder{
		model:  snap.Model,
		layout: snap.Layout,
		style:  style,
	}

	for _, d := range []pappus.Disk{pappus.DiskA, pappus.DiskB} {
		b.outline(d)
		if f := snap.Frames[d]; f != nil {
			b.arc(d, b.model.ProjectArc(*f, style.ArcStep), style.Arc)
		}
	}

	for j, p := range snap.Points {
		b.marker(p.Disk, p.Planar(), PointColor(j))
		if style.ShowLabels && j < snap.Committed {
			b.label(p.Disk, p.Planar(), pappus.PointName(j), PointColor(j))
		}
	}

	if c := snap.Construction; c != nil {
		b.construction(c)
		if q := snap.Query; q != nil && q.Image != nil {
			b.query(c, q)
		}
	}

	b.frame.Primitives = SplitStrips(b.frame.Primitives, SplitThreshold(b.model.Radius))
	return b.frame
}

type builder struct {
	model  projective.Model
	layout pappus.Layout
	style  Style
	frame  Frame
}

func (b *builder) outline(d pappus.Disk) {
	circle := b.layout.Circle(d, b.model.Radius)
	points := circle.Outline(b.style.ArcStep)
	if len(points) > 0 {
		points = append(points, points[0])
	}
	b.frame.strip(points, geometry.Vector3{}, b.style.Outline)
}

func (b *builder) arc(d pappus.Disk, arc projective.Arc, c Color) {
	center := b.layout.Center(d)
	b.frame.strip(arc.Points, center, c)
	b.frame.dots(arc.Antipodes, center, c)
}

func (b *builder) line(d pappus.Disk, p1, p2 geometry.Vector3, c Color) {
	b.arc(d, b.model.ProjectLine(p1, p2, b.style.ArcStep), c)
}

// join draws the line through two points unless they coincide, where the
// join is only rounding noise.
func (b *builder) join(d pappus.Disk, p1, p2 geometry.Vector3, c Color) {
	if b.model.SameProjectivePoint(p1, p2) {
		return
	}
	b.line(d, p1, p2, c)
}

// marker draws a circle around a disk-local point and, when the point is on
// the boundary, a second one around its antipode.
func (b *builder) marker(d pappus.Disk, p geometry.Vector3, c Color) {
	center := b.layout.Center(d)
	b.frame.strip(b.ring(p), center, c)
	if b.model.IsBoundaryPoint(p) {
		b.frame.strip(b.ring(p.Neg()), center, c)
	}
}

func (b *builder) ring(p geometry.Vector3) []geometry.Vector3 {
	n := b.style.MarkerSegments
	if n < 3 {
		n = 3
	}
	r := b.style.MarkerRadius
	points := make([]geometry.Vector3, 0, n+1)
	for i := 0; i <= n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		points = append(points, geometry.NewVector3(p.X+r*math.Cos(theta), p.Y+r*math.Sin(theta), 0))
	}
	return points
}

func (b *builder) label(d pappus.Disk, p geometry.Vector3, text string, c Color) {
	center := b.layout.Center(d)
	offset := b.style.MarkerRadius + 3
	b.frame.Labels = append(b.frame.Labels, Label{
		X:     center.X + p.X + offset,
		Y:     center.Y + p.Y + offset,
		Text:  text,
		Color: c,
	})
}

func (b *builder) construction(c *pappus.Construction) {
	for _, d := range []pappus.Disk{pappus.DiskA, pappus.DiskB} {
		b.line(d, c.I1, c.I2, b.style.Pappus)
	}

	if !b.style.ShowSupportingLines {
		return
	}
	pairs := [][2]geometry.Vector3{
		{c.X[0], c.Y[1]},
		{c.X[1], c.Y[0]},
		{c.X[0], c.Y[2]},
		{c.X[2], c.Y[0]},
	}
	for _, d := range []pappus.Disk{pappus.DiskA, pappus.DiskB} {
		for _, pair := range pairs {
			b.line(d, pair[0], pair[1], b.style.Support)
		}
	}
}

func (b *builder) query(c *pappus.Construction, q *pappus.QueryResult) {
	img := q.Image

	b.marker(pappus.DiskA, q.Point.Planar(), b.style.Query)
	b.join(pappus.DiskA, c.Y[0], img.Query, b.style.Support)
	b.join(pappus.DiskB, img.Crossing, img.Point, b.style.Support)

	for _, d := range []pappus.Disk{pappus.DiskA, pappus.DiskB} {
		b.marker(d, img.Crossing, b.style.Crossing)
	}
	b.marker(pappus.DiskB, img.Point, b.style.Query)
}
