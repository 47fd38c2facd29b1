package controller

import (
	"strings"
	"testing"

	"github.com/philipparndt/gopappus/internal/config"
	"github.com/philipparndt/gopappus/pkg/pappus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	diskAPoints = [][2]float64{{-100, 20}, {60, -40}, {150, 30}}
	diskBPoints = [][2]float64{{-80, -60}, {30, 90}, {120, 0}}
)

func newTestController(t *testing.T) *Controller {
	t.Helper()
	c, err := New(config.Default())
	require.NoError(t, err)
	return c
}

// click clicks at a disk-local position.
func click(c *Controller, d pappus.Disk, x, y float64) bool {
	center := c.Session().Layout().Center(d)
	px, py := c.Viewport().WorldToScreen(center.X+x, center.Y+y)
	return c.Clicked(px, py)
}

func fill(t *testing.T, c *Controller) {
	t.Helper()
	for _, p := range diskAPoints {
		require.True(t, click(c, pappus.DiskA, p[0], p[1]))
	}
	for _, p := range diskBPoints {
		require.True(t, click(c, pappus.DiskB, p[0], p[1]))
	}
	require.Equal(t, pappus.Free, c.Session().Phase())
}

func TestActionForKey(t *testing.T) {
	assert.Equal(t, ActionToggleFullscreen, ActionForKey("F"))
	assert.Equal(t, ActionLeaveFullscreen, ActionForKey("Escape"))
	assert.Equal(t, ActionQuit, ActionForKey("Q"))
	assert.Equal(t, ActionToggleSupportingLines, ActionForKey("S"))
	assert.Equal(t, ActionReset, ActionForKey("R"))
	assert.Equal(t, ActionNone, ActionForKey("X"))
	assert.Equal(t, "toggle supporting lines", ActionToggleSupportingLines.String())
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Model.Radius = 0
	_, err := New(cfg)
	assert.Error(t, err)
}

func TestClickCollectsPoints(t *testing.T) {
	c := newTestController(t)

	assert.True(t, click(c, pappus.DiskA, 0, 0))
	assert.Equal(t, 1, c.Session().Count())

	points := c.Session().Snapshot().Points
	require.Len(t, points, 1)
	p := points[0]
	assert.InDelta(t, 0, p.X, 1e-9)
	assert.InDelta(t, 0, p.Y, 1e-9)

	// Same spot again is a duplicate.
	assert.False(t, click(c, pappus.DiskA, 0, 0))
	assert.Equal(t, 1, c.Session().Count())
}

func TestClickInFreePhaseQueries(t *testing.T) {
	c := newTestController(t)
	fill(t, c)

	assert.False(t, click(c, pappus.DiskA, 10, 10))
	assert.Equal(t, pappus.PointCount, c.Session().Count())
	_, ok := c.Session().QueryPoint()
	assert.True(t, ok)
}

func TestApplyWindowActions(t *testing.T) {
	c := newTestController(t)
	assert.False(t, c.Fullscreen())

	c.Apply(ActionToggleFullscreen)
	assert.True(t, c.Fullscreen())
	c.Apply(ActionLeaveFullscreen)
	assert.False(t, c.Fullscreen())
	c.Apply(ActionLeaveFullscreen)
	assert.False(t, c.Fullscreen())

	assert.False(t, c.ShouldQuit())
	c.Apply(ActionQuit)
	assert.True(t, c.ShouldQuit())
}

func TestSupportingLinesNeedSixPoints(t *testing.T) {
	c := newTestController(t)

	c.Apply(ActionToggleSupportingLines)
	assert.False(t, c.ShowsSupportingLines())

	fill(t, c)
	c.Apply(ActionToggleSupportingLines)
	assert.True(t, c.ShowsSupportingLines())
	c.Apply(ActionToggleSupportingLines)
	assert.False(t, c.ShowsSupportingLines())
}

func TestReset(t *testing.T) {
	c := newTestController(t)
	fill(t, c)
	c.Apply(ActionToggleSupportingLines)

	c.Apply(ActionReset)
	assert.Equal(t, 0, c.Session().Count())
	assert.False(t, c.ShowsSupportingLines())
}

func TestReload(t *testing.T) {
	c := newTestController(t)
	fill(t, c)
	c.Apply(ActionToggleSupportingLines)

	cfg := config.Default()
	cfg.Style.Query = config.RGB{1, 0, 1}
	require.NoError(t, c.Reload(cfg))
	assert.Equal(t, pappus.PointCount, c.Session().Count(), "same radius keeps points")
	assert.True(t, c.ShowsSupportingLines())
	assert.Equal(t, float32(0), c.Style().Query.G)

	cfg.Model.Radius = 150
	require.NoError(t, c.Reload(cfg))
	assert.Equal(t, 0, c.Session().Count())
	assert.False(t, c.ShowsSupportingLines())
	assert.Equal(t, 150.0, c.Config().Model.Radius)
}

func TestReloadKeepsWindowSize(t *testing.T) {
	c := newTestController(t)
	c.Resize(800, 600)

	cfg := config.Default()
	cfg.Layout.WorldWidth = 2000
	require.NoError(t, c.Reload(cfg))
	assert.Equal(t, 800.0, c.Viewport().Width)
	assert.Equal(t, 600.0, c.Viewport().Height)
	assert.Equal(t, 2000.0, c.Viewport().WorldWidth)
}

func TestReloadRejectsInvalidConfig(t *testing.T) {
	c := newTestController(t)
	require.True(t, click(c, pappus.DiskA, 0, 0))

	cfg := config.Default()
	cfg.Window.Smoothing = 2
	assert.ErrorIs(t, c.Reload(cfg), config.ErrInvalid)
	assert.Equal(t, 1, c.Session().Count())
}

func TestFrame(t *testing.T) {
	c := newTestController(t)
	assert.NotEmpty(t, c.Frame().Primitives, "outlines are always drawn")

	fill(t, c)
	frame := c.Frame()
	assert.Len(t, frame.Labels, pappus.PointCount)
}

func TestStatusLines(t *testing.T) {
	c := newTestController(t)

	lines := StatusLines(c.Session().Snapshot())
	require.Len(t, lines, 2)
	assert.Equal(t, "Phase: collecting A (0/6)", lines[0])
	assert.Equal(t, "Click to place x1 on disk A", lines[1])

	require.True(t, click(c, pappus.DiskA, 0, 0))
	require.True(t, click(c, pappus.DiskA, 50, 0))
	lines = StatusLines(c.Session().Snapshot())
	assert.Equal(t, "Click to place x3 on disk A (snaps to the line)", lines[1])

	c.Apply(ActionReset)
	fill(t, c)
	lines = StatusLines(c.Session().Snapshot())
	assert.Equal(t, "Phase: free (6/6)", lines[0])
	joined := strings.Join(lines, "\n")
	assert.Contains(t, joined, "I3 (")
	assert.Contains(t, joined, "collinear=true")
	assert.Contains(t, joined, "Move the pointer")

	click(c, pappus.DiskA, 10, 10)
	lines = StatusLines(c.Session().Snapshot())
	assert.Contains(t, lines[len(lines)-1], "Image (")
}

func TestMinArcStepSurvivesReload(t *testing.T) {
	c := newTestController(t)
	before := c.Frame().VertexCount()

	c.SetMinArcStep(0.02)
	assert.Equal(t, 0.02, c.Style().ArcStep)
	assert.Less(t, c.Frame().VertexCount(), before)

	require.NoError(t, c.Reload(config.Default()))
	assert.Equal(t, 0.02, c.Style().ArcStep)

	cfg := config.Default()
	cfg.Model.ArcStep = 0.05
	require.NoError(t, c.Reload(cfg))
	assert.Equal(t, 0.05, c.Style().ArcStep, "coarser configured steps win")
}

func TestReloadThresholdKeepsDistinctPoints(t *testing.T) {
	c := newTestController(t)
	fill(t, c)

	cfg := config.Default()
	cfg.Model.InfinityThreshold = 0.5
	require.NoError(t, c.Reload(cfg))
	assert.Equal(t, pappus.PointCount, c.Session().Count())
	assert.Equal(t, pappus.Free, c.Session().Phase())
}
