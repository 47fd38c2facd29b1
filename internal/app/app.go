// Package app runs the interactive raylib window.
package app

import (
	"context"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gopappus/internal/controller"
)

const windowTitle = "Pappus"

// Run opens the window and blocks until it is closed
func Run(opts Options) error {
	ctrl, err := controller.New(opts.Config)
	if err != nil {
		return err
	}

	win := opts.Config.Window
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagWindowHighdpi | rl.FlagMsaa4xHint) // Must be before InitWindow
	rl.InitWindow(int32(win.Width), int32(win.Height), windowTitle)
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(win.FPS))
	// Escape leaves fullscreen instead of closing the window
	rl.SetExitKey(rl.KeyNull)

	app := &App{
		ctrl: ctrl,
		Window: WindowState{
			windowedWidth:  win.Width,
			windowedHeight: win.Height,
		},
		FileWatch: FileWatchState{
			configPath: opts.ConfigPath,
		},
		UI: UIState{
			showHelp: true,
			fontSize: 20,
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if opts.Watch && opts.ConfigPath != "" {
		if err := app.setupConfigWatcher(ctx); err != nil {
			slog.Warn("failed to set up config watching, auto-reload will not be available", "error", err)
		}
	}

	slog.Info("window opened", "width", win.Width, "height", win.Height, "fps", win.FPS)

	for !rl.WindowShouldClose() && !ctrl.ShouldQuit() {
		app.applyReloads()
		app.syncViewport()

		app.handleInput()
		app.syncFullscreen()

		frame := ctrl.Frame()

		rl.BeginDrawing()
		rl.ClearBackground(toColor(ctrl.Style().Background))
		drawFrame(frame, ctrl.Viewport(), float32(ctrl.Config().Style.PointSize))
		app.drawUI()
		rl.EndDrawing()
	}

	slog.Info("window closed")
	return nil
}

// syncViewport follows window resizes
func (app *App) syncViewport() {
	w, h := float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight())
	vp := app.ctrl.Viewport()
	if vp.Width != w || vp.Height != h {
		app.ctrl.Resize(w, h)
	}
}

// syncFullscreen applies the requested window mode
func (app *App) syncFullscreen() {
	want := app.ctrl.Fullscreen()
	if want == app.Window.fullscreen {
		return
	}
	app.Window.fullscreen = want

	if want {
		app.Window.windowedWidth = rl.GetScreenWidth()
		app.Window.windowedHeight = rl.GetScreenHeight()
		monitor := rl.GetCurrentMonitor()
		rl.SetWindowSize(rl.GetMonitorWidth(monitor), rl.GetMonitorHeight(monitor))
		if !rl.IsWindowFullscreen() {
			rl.ToggleFullscreen()
		}
		return
	}

	if rl.IsWindowFullscreen() {
		rl.ToggleFullscreen()
	}
	rl.SetWindowSize(app.Window.windowedWidth, app.Window.windowedHeight)
}
