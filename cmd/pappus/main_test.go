package main

import (
	"bytes"
	"encoding/json"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/philipparndt/gopappus/internal/config"
	"github.com/philipparndt/gopappus/pkg/analysis"
	"github.com/philipparndt/gopappus/pkg/pappus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	diskA = "--a=-100,20,60,-40,150,30"
	diskB = "--b=-80,-60,30,90,120,0"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), err
}

func TestSolveText(t *testing.T) {
	out, err := run(t, "solve", diskA, diskB)
	require.NoError(t, err)

	assert.Contains(t, out, "Pappus Construction")
	assert.Contains(t, out, "x1:")
	assert.Contains(t, out, "y3:")
	assert.Contains(t, out, "I3:")
	assert.Contains(t, out, "I3 lies on the Pappus line")
	assert.NotContains(t, out, "\x1b[", "no escape codes without a terminal")
}

func TestSolveJSON(t *testing.T) {
	out, err := run(t, "solve", "--json", diskA, diskB)
	require.NoError(t, err)

	var report analysis.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.True(t, report.Complete)
	assert.True(t, report.Collinear)
	assert.Equal(t, "free", report.Phase)
	require.Len(t, report.Points, pappus.PointCount)
	assert.Equal(t, "x1", report.Points[0].Name)
	assert.Equal(t, -100.0, report.Points[0].Planar.X)
}

func TestSolveErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"missing disk B", []string{"solve", diskA}, pappus.ErrIncomplete},
		{"odd coordinates", []string{"solve", "--a=1,2,3"}, errBadPoints},
		{"too many points", []string{"solve", "--a=1,2,3,4,5,6,7,8"}, errBadPoints},
		{"disk B before disk A", []string{"solve", "--a=1,2", diskB}, errBadPoints},
		{"duplicate", []string{"solve", "--a=10,10,10,10"}, errRejected},
		{"bad config", []string{"solve", "--config", filepath.Join("..", "..", "internal", "config", "testdata", "unknown.toml"), diskA, diskB}, config.ErrInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestQueryX2MapsToY2(t *testing.T) {
	out, err := run(t, "query", "--json", diskA, diskB, "--at=60,-40")
	require.NoError(t, err)

	var q analysis.QueryInfo
	require.NoError(t, json.Unmarshal([]byte(out), &q))

	model, err := config.Default().ProjectiveModel()
	require.NoError(t, err)
	y2 := model.Lift(30, 90)
	assert.InDelta(t, 0, q.Image.Cross(y2).Length()/(q.Image.Length()*y2.Length()), 1e-6)
}

func TestQueryText(t *testing.T) {
	out, err := run(t, "query", diskA, diskB, "--at=10,10")
	require.NoError(t, err)
	assert.Contains(t, out, "Pappus Query")
	assert.Contains(t, out, "Image:")
}

func TestQueryNeedsPoint(t *testing.T) {
	_, err := run(t, "query", diskA, diskB)
	assert.Error(t, err)

	_, err = run(t, "query", diskA, diskB, "--at=1,2,3")
	assert.ErrorIs(t, err, errBadPoints)
}

func TestFrame(t *testing.T) {
	out, err := run(t, "frame", "--json", "--p1=-100,20", "--p2=60,-40")
	require.NoError(t, err)

	var res frameResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.False(t, res.Ideal)
	assert.GreaterOrEqual(t, res.Frame.XSin, 0.0)
	assert.InDelta(t, 1, res.Matrix.Determinant(), 1e-9)

	out, err = run(t, "frame", "--p1=200,0", "--p2=0,200")
	require.NoError(t, err)
	assert.Regexp(t, `Ideal:\s+true`, out)

	_, err = run(t, "frame", "--p1=10,10", "--p2=10,10")
	assert.ErrorIs(t, err, errBadPoints)
}

func TestRender(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pappus.png")
	out, err := run(t, "render", "--json", diskA, diskB, "--at=10,10", "--supporting",
		"--width=320", "--height=180", "-o", path)
	require.NoError(t, err)

	var res renderResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "free", res.Phase)
	assert.Greater(t, res.Vertices, 0)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 320, img.Bounds().Dx())
	assert.Equal(t, 180, img.Bounds().Dy())
}

func TestRenderPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.png")
	out, err := run(t, "render", "--a=-100,20", "--width=160", "--height=90", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, out, "collecting A")

	_, err = run(t, "render", "--a=-100,20", "--at=1,1", "-o", path)
	assert.ErrorIs(t, err, pappus.ErrIncomplete)
}

func TestConfigPrintsDefaults(t *testing.T) {
	out, err := run(t, "config")
	require.NoError(t, err)

	cfg, err := config.Parse(out)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestConfigLoadsFile(t *testing.T) {
	out, err := run(t, "config", "--json", "--config", filepath.Join("..", "..", "internal", "config", "testdata", "pappus.toml"))
	require.NoError(t, err)

	var cfg config.Config
	require.NoError(t, json.Unmarshal([]byte(out), &cfg))
	assert.Equal(t, 250.0, cfg.Model.Radius)
}
