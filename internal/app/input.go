package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gopappus/internal/controller"
)

// keyNames translates raylib keys to binding names
var keyNames = map[int32]string{
	rl.KeyF:      "F",
	rl.KeyEscape: "Escape",
	rl.KeyQ:      "Q",
	rl.KeyS:      "S",
	rl.KeyR:      "R",
}

// handleInput processes user input
func (app *App) handleInput() {
	mouse := rl.GetMousePosition()
	if !app.Input.mouseSeen || mouse != app.Input.lastMousePos {
		app.Input.lastMousePos = mouse
		app.Input.mouseSeen = true
		app.ctrl.PointerMoved(float64(mouse.X), float64(mouse.Y))
	}

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		app.ctrl.Clicked(float64(mouse.X), float64(mouse.Y))
	}

	for key, name := range keyNames {
		if rl.IsKeyPressed(key) {
			app.ctrl.Apply(controller.ActionForKey(name))
		}
	}

	if rl.IsKeyPressed(rl.KeyH) {
		app.UI.showHelp = !app.UI.showHelp
	}
}
