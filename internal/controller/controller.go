// Package controller holds the toolkit-independent state of an interactive
// viewer: the session, the drawing style, the viewport and the key bindings.
// Window shells translate their events into controller calls once per frame.
package controller

import (
	"fmt"
	"log/slog"

	"github.com/philipparndt/gopappus/internal/config"
	"github.com/philipparndt/gopappus/pkg/pappus"
	"github.com/philipparndt/gopappus/pkg/scene"
	"github.com/philipparndt/gopappus/pkg/viewer"
)

// Action is a user command bound to a key.
type Action int

const (
	ActionNone Action = iota
	ActionToggleFullscreen
	ActionLeaveFullscreen
	ActionQuit
	ActionToggleSupportingLines
	ActionReset
)

func (a Action) String() string {
	switch a {
	case ActionToggleFullscreen:
		return "toggle fullscreen"
	case ActionLeaveFullscreen:
		return "leave fullscreen"
	case ActionQuit:
		return "quit"
	case ActionToggleSupportingLines:
		return "toggle supporting lines"
	case ActionReset:
		return "reset"
	default:
		return "none"
	}
}

// Bindings maps key names to actions. Names follow fyne's KeyName values.
var Bindings = map[string]Action{
	"F":      ActionToggleFullscreen,
	"Escape": ActionLeaveFullscreen,
	"Q":      ActionQuit,
	"S":      ActionToggleSupportingLines,
	"R":      ActionReset,
}

// ActionForKey returns the action bound to a key name.
func ActionForKey(name string) Action {
	return Bindings[name]
}

// Controller owns everything one viewer window shows.
type Controller struct {
	session    *pappus.Session
	cfg        config.Config
	style      scene.Style
	smoother   *scene.Smoother
	viewport   viewer.Viewport
	minArcStep float64
	fullscreen bool
	quit       bool
}

// New creates a controller from a validated configuration.
func New(cfg config.Config) (*Controller, error) {
	model, err := cfg.ProjectiveModel()
	if err != nil {
		return nil, fmt.Errorf("failed to create controller: %w", err)
	}
	session, err := pappus.NewSession(model, cfg.DiskLayout())
	if err != nil {
		return nil, err
	}
	return &Controller{
		session:    session,
		cfg:        cfg,
		style:      cfg.SceneStyle(),
		smoother:   scene.NewSmoother(cfg.Window.Smoothing),
		viewport:   cfg.Viewport(),
		fullscreen: cfg.Window.Fullscreen,
	}, nil
}

// Session returns the underlying session.
func (c *Controller) Session() *pappus.Session {
	return c.session
}

// Config returns the active configuration.
func (c *Controller) Config() config.Config {
	return c.cfg
}

// Viewport returns the current pixel mapping.
func (c *Controller) Viewport() viewer.Viewport {
	return c.viewport
}

// Resize updates the viewport for a new window size.
func (c *Controller) Resize(width, height float64) {
	c.viewport = c.viewport.Resize(width, height)
}

// PointerMoved moves the pending candidate or the query point.
func (c *Controller) PointerMoved(px, py float64) {
	wx, wy := c.viewport.ScreenToWorld(px, py)
	c.session.Hover(wx, wy)
}

// Clicked commits the candidate at a pixel position. It reports whether a
// point was accepted.
func (c *Controller) Clicked(px, py float64) bool {
	wx, wy := c.viewport.ScreenToWorld(px, py)
	c.session.Hover(wx, wy)
	if c.session.Phase() == pappus.Free {
		return false
	}
	return c.session.Commit()
}

// Apply runs an action.
func (c *Controller) Apply(a Action) {
	switch a {
	case ActionToggleFullscreen:
		c.fullscreen = !c.fullscreen
	case ActionLeaveFullscreen:
		c.fullscreen = false
	case ActionQuit:
		c.quit = true
	case ActionToggleSupportingLines:
		if c.session.Phase() == pappus.Free {
			c.style.ShowSupportingLines = !c.style.ShowSupportingLines
		}
	case ActionReset:
		c.session.Reset()
		c.smoother.Reset()
		c.style.ShowSupportingLines = false
	}
	if a != ActionNone {
		slog.Debug("action", "action", a.String())
	}
}

// Fullscreen reports whether the window should be fullscreen.
func (c *Controller) Fullscreen() bool {
	return c.fullscreen
}

// ShouldQuit reports whether the user asked to quit.
func (c *Controller) ShouldQuit() bool {
	return c.quit
}

// ShowsSupportingLines reports whether l1..l4 are drawn.
func (c *Controller) ShowsSupportingLines() bool {
	return c.style.ShowSupportingLines
}

// SetMinArcStep coarsens arc sampling for shells where every segment is a
// separate object. It stays in effect across reloads.
func (c *Controller) SetMinArcStep(step float64) {
	c.minArcStep = step
	c.style.ArcStep = max(c.style.ArcStep, step)
}

// Style returns the current drawing style.
func (c *Controller) Style() scene.Style {
	return c.style
}

// Reload applies a new configuration. Points survive unless the radius
// changed; the window size is left to the shell.
func (c *Controller) Reload(cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	model, err := cfg.ProjectiveModel()
	if err != nil {
		return err
	}
	if err := c.session.Reconfigure(model, cfg.DiskLayout()); err != nil {
		return err
	}

	showSupport := c.style.ShowSupportingLines && c.session.Phase() == pappus.Free
	c.cfg = cfg
	c.style = cfg.SceneStyle()
	c.style.ShowSupportingLines = showSupport
	c.style.ArcStep = max(c.style.ArcStep, c.minArcStep)
	c.smoother = scene.NewSmoother(cfg.Window.Smoothing)

	vp := cfg.Viewport()
	c.viewport = vp.Resize(c.viewport.Width, c.viewport.Height)
	slog.Info("configuration reloaded", "radius", model.Radius, "points", c.session.Count())
	return nil
}

// Frame advances marker smoothing one step and builds the draw list.
func (c *Controller) Frame() scene.Frame {
	return scene.Build(c.smoother.Step(c.session.Snapshot()), c.style)
}
