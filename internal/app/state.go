package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gopappus/internal/config"
	"github.com/philipparndt/gopappus/internal/controller"
)

// Options configures a window session.
type Options struct {
	Config     config.Config
	ConfigPath string // empty when running on defaults
	Watch      bool
}

type App struct {
	ctrl      *controller.Controller
	Window    WindowState
	Input     InputState
	FileWatch FileWatchState
	UI        UIState
}

// WindowState tracks the window mode
type WindowState struct {
	fullscreen     bool
	windowedWidth  int
	windowedHeight int
}

// InputState tracks the pointer between frames
type InputState struct {
	lastMousePos rl.Vector2
	mouseSeen    bool
}

// FileWatchState holds configuration reload state
type FileWatchState struct {
	configPath string
	reloads    <-chan reloadResult
	lastError  string
}

// UIState holds overlay settings
type UIState struct {
	showHelp bool
	fontSize int32
}
