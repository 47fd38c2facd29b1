package pappus

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/philipparndt/gopappus/pkg/geometry"
	"github.com/philipparndt/gopappus/pkg/projective"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sine returns |sin| of the angle between two vectors.
func sine(a, b geometry.Vector3) float64 {
	return a.Cross(b).Length() / (a.Length() * b.Length())
}

func assertSamePoint(t *testing.T, want, got geometry.Vector3, msgAndArgs ...interface{}) {
	t.Helper()
	assert.Less(t, sine(want, got), 1e-6, msgAndArgs...)
}

// diameterConfiguration puts x1..x3 on the horizontal diameter of disk A and
// y1..y3 on the vertical diameter of disk B.
func diameterConfiguration(m projective.Model) (x, y [GroupSize]geometry.Vector3) {
	x = [GroupSize]geometry.Vector3{m.Lift(-100, 0), m.Lift(50, 0), m.Lift(120, 0)}
	y = [GroupSize]geometry.Vector3{m.Lift(0, -100), m.Lift(0, 40), m.Lift(0, 150)}
	return x, y
}

func randomDiskPoint(rng *rand.Rand, m projective.Model) (float64, float64) {
	rho := 0.9 * m.Radius * math.Sqrt(rng.Float64())
	theta := 2 * math.Pi * rng.Float64()
	return rho * math.Cos(theta), rho * math.Sin(theta)
}

// randomTriple returns three distinct collinear sphere points.
func randomTriple(rng *rand.Rand, m projective.Model) [GroupSize]geometry.Vector3 {
	for {
		ax, ay := randomDiskPoint(rng, m)
		bx, by := randomDiskPoint(rng, m)
		cx, cy := randomDiskPoint(rng, m)
		p1, p2 := m.Lift(ax, ay), m.Lift(bx, by)
		p3 := m.SnapToJoin(p1, p2, cx, cy)
		if m.SameProjectivePoint(p1, p2) || m.SameProjectivePoint(p1, p3) || m.SameProjectivePoint(p2, p3) {
			continue
		}
		return [GroupSize]geometry.Vector3{p1, p2, p3}
	}
}

func thirdCrossing(m projective.Model, x, y [GroupSize]geometry.Vector3) (geometry.Vector3, geometry.Vector3, geometry.Vector3, error) {
	l5 := projective.Join(x[1], y[2])
	l6 := projective.Join(x[2], y[1])
	i3, err := m.Meet(l5, l6)
	return l5, l6, i3, err
}

func TestSolveDiameters(t *testing.T) {
	m := projective.DefaultModel()
	x, y := diameterConfiguration(m)

	c, err := Solve(m, x, y)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, c.I1.Z, 0.0)
	assert.GreaterOrEqual(t, c.I2.Z, 0.0)
	assert.InDelta(t, m.Radius, c.I1.Length(), 1e-9)

	for _, tc := range []struct {
		name  string
		line  geometry.Vector3
		point geometry.Vector3
	}{
		{"I1 on l1", c.L1, c.I1},
		{"I1 on l2", c.L2, c.I1},
		{"I2 on l3", c.L3, c.I2},
		{"I2 on l4", c.L4, c.I2},
		{"I1 on pappus line", c.PappusLine, c.I1},
		{"I2 on pappus line", c.PappusLine, c.I2},
	} {
		t.Run(tc.name, func(t *testing.T) {
			inc, err := projective.Incidence(tc.line, tc.point)
			require.NoError(t, err)
			assert.InDelta(t, 0, inc, 1e-12)
		})
	}

	_, _, i3, err := thirdCrossing(m, x, y)
	require.NoError(t, err)
	inc, err := projective.Incidence(c.PappusLine, i3)
	require.NoError(t, err)
	assert.InDelta(t, 0, inc, 1e-9)
}

func TestPappusLineContainsThirdCrossing(t *testing.T) {
	m := projective.DefaultModel()
	rng := rand.New(rand.NewPCG(7, 11))

	checked := 0
	for i := 0; i < 300; i++ {
		x := randomTriple(rng, m)
		y := randomTriple(rng, m)

		c, err := Solve(m, x, y)
		if err != nil {
			continue
		}
		l5, l6, i3, err := thirdCrossing(m, x, y)
		if err != nil {
			continue
		}
		// Skip near-degenerate configurations where rounding dominates.
		if sine(c.I1, c.I2) < 1e-3 || sine(l5, l6) < 1e-3 ||
			sine(c.L1, c.L2) < 1e-3 || sine(c.L3, c.L4) < 1e-3 {
			continue
		}

		inc, err := projective.Incidence(c.PappusLine, i3)
		require.NoError(t, err)
		assert.InDelta(t, 0, inc, 1e-6, "configuration %d: x=%v y=%v", i, x, y)
		checked++
	}
	assert.Greater(t, checked, 100)
}

func TestQueryMapsXToY(t *testing.T) {
	m := projective.DefaultModel()
	rng := rand.New(rand.NewPCG(3, 5))

	checked := 0
	for i := 0; i < 100; i++ {
		x := randomTriple(rng, m)
		y := randomTriple(rng, m)

		c, err := Solve(m, x, y)
		if err != nil || sine(c.I1, c.I2) < 1e-3 ||
			sine(c.L1, c.L2) < 1e-3 || sine(c.L3, c.L4) < 1e-3 {
			continue
		}

		// x2 and x3 map through I1 and I2 onto y2 and y3.
		img, err := c.Query(x[1])
		require.NoError(t, err)
		assertSamePoint(t, y[1], img.Point, "x2 -> y2, configuration %d", i)
		assertSamePoint(t, c.I1, img.Crossing, "x2 crosses at I1, configuration %d", i)

		img, err = c.Query(x[2])
		require.NoError(t, err)
		assertSamePoint(t, y[2], img.Point, "x3 -> y3, configuration %d", i)
		assertSamePoint(t, c.I2, img.Crossing, "x3 crosses at I2, configuration %d", i)
		checked++
	}
	assert.Greater(t, checked, 30)
}

func TestQueryImageIsOnImageLine(t *testing.T) {
	m := projective.DefaultModel()
	x, y := diameterConfiguration(m)
	c, err := Solve(m, x, y)
	require.NoError(t, err)

	for _, q := range [][2]float64{{-150, 0}, {-20, 0}, {80, 0}, {199, 0}} {
		img, err := c.QueryPlanar(q[0], q[1])
		require.NoError(t, err)

		assert.GreaterOrEqual(t, img.Point.Z, 0.0)
		assert.GreaterOrEqual(t, img.Crossing.Z, 0.0)

		inc, err := projective.Incidence(img.ImageLine, img.Point)
		require.NoError(t, err)
		assert.InDelta(t, 0, inc, 1e-9)

		inc, err = projective.Incidence(c.PappusLine, img.Crossing)
		require.NoError(t, err)
		assert.InDelta(t, 0, inc, 1e-9)

		inc, err = projective.Incidence(img.R2, img.Point)
		require.NoError(t, err)
		assert.InDelta(t, 0, inc, 1e-9)
	}
}

func TestSolveDegenerate(t *testing.T) {
	m := projective.DefaultModel()
	x, y := diameterConfiguration(m)
	// x2 and y1 name the same point, so l2 vanishes.
	y[0] = x[1]

	_, err := Solve(m, x, y)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDegenerate))
	assert.True(t, errors.Is(err, projective.ErrParallelLines))
}

func TestSolvePointsIncomplete(t *testing.T) {
	m := projective.DefaultModel()
	_, err := SolvePoints(m, []MarkedPoint{{X: 1, Y: 2, Disk: DiskA}})
	assert.ErrorIs(t, err, ErrIncomplete)
}

func TestSolvePointsLiftsMarkedPoints(t *testing.T) {
	m := projective.DefaultModel()
	points := []MarkedPoint{
		{X: -100, Y: 0, Disk: DiskA},
		{X: 50, Y: 0, Disk: DiskA},
		{X: 120, Y: 0, Disk: DiskA},
		{X: 0, Y: -100, Disk: DiskB},
		{X: 0, Y: 40, Disk: DiskB},
		{X: 0, Y: 150, Disk: DiskB},
	}
	c, err := SolvePoints(m, points)
	require.NoError(t, err)

	x, y := diameterConfiguration(m)
	assert.Equal(t, x, c.X)
	assert.Equal(t, y, c.Y)
	assert.Equal(t, m, c.Model())
}
