package config

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/philipparndt/gopappus/pkg/projective"
	"github.com/philipparndt/gopappus/pkg/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	m, err := cfg.ProjectiveModel()
	require.NoError(t, err)
	assert.Equal(t, projective.DefaultModel(), m)

	layout := cfg.DiskLayout()
	assert.Equal(t, -300.0, layout.CenterA.X)
	assert.Equal(t, 300.0, layout.CenterB.X)

	vp := cfg.Viewport()
	assert.Equal(t, 1366.0, vp.Width)
	assert.Equal(t, 1560.0, vp.WorldWidth)
	assert.Equal(t, 840.0, vp.WorldHeight)

	style := cfg.SceneStyle()
	assert.Equal(t, scene.DefaultStyle().Outline, style.Outline)
	assert.Equal(t, 7.0, style.MarkerRadius)
}

func TestLoad(t *testing.T) {
	cfg, err := Load(filepath.Join("testdata", "pappus.toml"))
	require.NoError(t, err)

	assert.Equal(t, 250.0, cfg.Model.Radius)
	assert.Equal(t, 0.002, cfg.Model.ArcStep)
	assert.Equal(t, [2]float64{-350, 0}, cfg.Layout.DiskAOffset)
	assert.Equal(t, 1800.0, cfg.Layout.WorldWidth)
	assert.Equal(t, 840.0, cfg.Layout.WorldHeight, "missing keys keep defaults")
	assert.Equal(t, 1600, cfg.Window.Width)
	assert.Equal(t, 60, cfg.Window.FPS)
	assert.True(t, cfg.Window.Fullscreen)
	assert.Equal(t, RGB{1, 0.55, 0}, cfg.Style.Query)
	assert.Equal(t, 9.0, cfg.Style.MarkerRadius)

	style := cfg.SceneStyle()
	assert.Equal(t, scene.Color{R: 1, G: 0.55, B: 0}, style.Query)
	assert.Equal(t, 0.002, style.ArcStep)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "missing.toml"))
	assert.Error(t, err)

	_, err = Load(filepath.Join("testdata", "unknown.toml"))
	assert.ErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), "model.colour")
}

func TestParseValidation(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"zero radius", "[model]\nradius = 0.0\n"},
		{"negative threshold", "[model]\ninfinity_threshold = -1.0\n"},
		{"zero arc step", "[model]\narc_step = 0.0\n"},
		{"smoothing above one", "[window]\nsmoothing = 1.5\n"},
		{"zero smoothing", "[window]\nsmoothing = 0.0\n"},
		{"zero fps", "[window]\nfps = 0\n"},
		{"color out of range", "[style]\narc = [1.0, 2.0, 0.0]\n"},
		{"zero marker", "[style]\nmarker_radius = 0.0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.data)
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestParseSyntaxError(t *testing.T) {
	_, err := Parse("[model\nradius = ")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalid)
}

func TestWriteParsesBack(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Default().Write(&buf))
	assert.Contains(t, buf.String(), "[model]")
	assert.Contains(t, buf.String(), "infinity_threshold")

	cfg, err := Parse(buf.String())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
