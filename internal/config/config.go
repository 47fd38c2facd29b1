// Package config loads viewer settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/philipparndt/gopappus/pkg/geometry"
	"github.com/philipparndt/gopappus/pkg/pappus"
	"github.com/philipparndt/gopappus/pkg/projective"
	"github.com/philipparndt/gopappus/pkg/scene"
	"github.com/philipparndt/gopappus/pkg/viewer"
)

// ErrInvalid is returned for configurations that fail validation.
var ErrInvalid = errors.New("config: invalid configuration")

// RGB is a color with channels in [0, 1].
type RGB [3]float64

// Color converts to a scene color.
func (c RGB) Color() scene.Color {
	return scene.Color{R: float32(c[0]), G: float32(c[1]), B: float32(c[2])}
}

func fromColor(c scene.Color) RGB {
	return RGB{float64(c.R), float64(c.G), float64(c.B)}
}

// Config is the full set of viewer settings.
type Config struct {
	Model  Model  `toml:"model"`
	Layout Layout `toml:"layout"`
	Window Window `toml:"window"`
	Style  Style  `toml:"style"`
}

// Model holds the projective model parameters.
type Model struct {
	Radius            float64 `toml:"radius"`
	InfinityThreshold float64 `toml:"infinity_threshold"`
	ArcStep           float64 `toml:"arc_step"`
}

// Layout places the disks in the world.
type Layout struct {
	DiskAOffset [2]float64 `toml:"disk_a_offset"`
	DiskBOffset [2]float64 `toml:"disk_b_offset"`
	WorldWidth  float64    `toml:"world_width"`
	WorldHeight float64    `toml:"world_height"`
}

// Window holds the interactive window settings.
type Window struct {
	Width      int     `toml:"width"`
	Height     int     `toml:"height"`
	FPS        int     `toml:"fps"`
	Fullscreen bool    `toml:"fullscreen"`
	Smoothing  float64 `toml:"smoothing"`
}

// Style holds colors and marker sizes.
type Style struct {
	Background   RGB     `toml:"background"`
	Outline      RGB     `toml:"outline"`
	Arc          RGB     `toml:"arc"`
	Support      RGB     `toml:"support"`
	Pappus       RGB     `toml:"pappus"`
	Crossing     RGB     `toml:"crossing"`
	Query        RGB     `toml:"query"`
	MarkerRadius float64 `toml:"marker_radius"`
	PointSize    float64 `toml:"point_size"`
	ShowLabels   bool    `toml:"show_labels"`
}

// Default returns the stock configuration.
func Default() Config {
	layout := pappus.DefaultLayout()
	style := scene.DefaultStyle()
	return Config{
		Model: Model{
			Radius:            projective.DefaultRadius,
			InfinityThreshold: projective.DefaultInfinityThreshold,
			ArcStep:           projective.DefaultArcStep,
		},
		Layout: Layout{
			DiskAOffset: [2]float64{layout.CenterA.X, layout.CenterA.Y},
			DiskBOffset: [2]float64{layout.CenterB.X, layout.CenterB.Y},
			WorldWidth:  viewer.DefaultWorldWidth,
			WorldHeight: viewer.DefaultWorldHeight,
		},
		Window: Window{
			Width:     1366,
			Height:    768,
			FPS:       60,
			Smoothing: scene.DefaultSmoothing,
		},
		Style: Style{
			Background:   fromColor(style.Background),
			Outline:      fromColor(style.Outline),
			Arc:          fromColor(style.Arc),
			Support:      fromColor(style.Support),
			Pappus:       fromColor(style.Pappus),
			Crossing:     fromColor(style.Crossing),
			Query:        fromColor(style.Query),
			MarkerRadius: style.MarkerRadius,
			PointSize:    6,
			ShowLabels:   style.ShowLabels,
		},
	}
}

// Load reads a TOML file on top of the defaults. Keys missing from the file
// keep their default value; unknown keys are an error.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := checkUndecoded(md); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML text on top of the defaults.
func Parse(data string) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := checkUndecoded(md); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func checkUndecoded(md toml.MetaData) error {
	undecoded := md.Undecoded()
	if len(undecoded) == 0 {
		return nil
	}
	keys := make([]string, len(undecoded))
	for i, k := range undecoded {
		keys[i] = k.String()
	}
	return fmt.Errorf("%w: unknown keys %s", ErrInvalid, strings.Join(keys, ", "))
}

// Write encodes the configuration as TOML.
func (c Config) Write(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if _, err := c.ProjectiveModel(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if !(c.Model.ArcStep > 0) {
		return fmt.Errorf("%w: arc_step must be positive, got %v", ErrInvalid, c.Model.ArcStep)
	}
	if !(c.Layout.WorldWidth > 0) || !(c.Layout.WorldHeight > 0) {
		return fmt.Errorf("%w: world size must be positive, got %vx%v", ErrInvalid, c.Layout.WorldWidth, c.Layout.WorldHeight)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size must be positive, got %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if c.Window.FPS <= 0 {
		return fmt.Errorf("%w: fps must be positive, got %d", ErrInvalid, c.Window.FPS)
	}
	if !(c.Window.Smoothing > 0 && c.Window.Smoothing <= 1) {
		return fmt.Errorf("%w: smoothing must be in (0, 1], got %v", ErrInvalid, c.Window.Smoothing)
	}
	if !(c.Style.MarkerRadius > 0) || !(c.Style.PointSize > 0) {
		return fmt.Errorf("%w: marker_radius and point_size must be positive", ErrInvalid)
	}

	colors := map[string]RGB{
		"background": c.Style.Background,
		"outline":    c.Style.Outline,
		"arc":        c.Style.Arc,
		"support":    c.Style.Support,
		"pappus":     c.Style.Pappus,
		"crossing":   c.Style.Crossing,
		"query":      c.Style.Query,
	}
	for name, rgb := range colors {
		for _, v := range rgb {
			if !(v >= 0 && v <= 1) {
				return fmt.Errorf("%w: style.%s channel %v outside [0, 1]", ErrInvalid, name, v)
			}
		}
	}
	return nil
}

// ProjectiveModel returns the model parameters.
func (c Config) ProjectiveModel() (projective.Model, error) {
	return projective.NewModel(c.Model.Radius, c.Model.InfinityThreshold)
}

// DiskLayout returns the disk placement.
func (c Config) DiskLayout() pappus.Layout {
	return pappus.Layout{
		CenterA: geometry.NewVector3(c.Layout.DiskAOffset[0], c.Layout.DiskAOffset[1], 0),
		CenterB: geometry.NewVector3(c.Layout.DiskBOffset[0], c.Layout.DiskBOffset[1], 0),
	}
}

// SceneStyle returns the drawing style.
func (c Config) SceneStyle() scene.Style {
	style := scene.DefaultStyle()
	style.Background = c.Style.Background.Color()
	style.Outline = c.Style.Outline.Color()
	style.Arc = c.Style.Arc.Color()
	style.Support = c.Style.Support.Color()
	style.Pappus = c.Style.Pappus.Color()
	style.Crossing = c.Style.Crossing.Color()
	style.Query = c.Style.Query.Color()
	style.MarkerRadius = c.Style.MarkerRadius
	style.ArcStep = c.Model.ArcStep
	style.ShowLabels = c.Style.ShowLabels
	return style
}

// Viewport returns the pixel mapping for the configured window.
func (c Config) Viewport() viewer.Viewport {
	return viewer.Viewport{
		Width:       float64(c.Window.Width),
		Height:      float64(c.Window.Height),
		WorldWidth:  c.Layout.WorldWidth,
		WorldHeight: c.Layout.WorldHeight,
	}
}
