package app

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gopappus/internal/controller"
	"github.com/philipparndt/gopappus/version"
)

// drawUI draws the status and help overlay
func (app *App) drawUI() {
	fontSize := app.UI.fontSize
	small := fontSize - 4
	lineHeight := fontSize + 4

	y := int32(10)
	for i, line := range controller.StatusLines(app.ctrl.Session().Snapshot()) {
		size, col := small, rl.LightGray
		if i == 0 {
			size, col = fontSize, rl.Yellow
		}
		rl.DrawText(line, 10, y, size, col)
		y += lineHeight
	}

	if app.FileWatch.lastError != "" {
		rl.DrawText(fmt.Sprintf("Config: %s", app.FileWatch.lastError), 10, y, small, rl.NewColor(255, 100, 100, 255))
		y += lineHeight
	}

	height := int32(rl.GetScreenHeight())
	if app.UI.showHelp {
		rl.DrawText(controller.HelpText+"  H help", 10, height-lineHeight, small, rl.Gray)
	}

	versionText := version.GetFullVersion()
	width := rl.MeasureText(versionText, small)
	rl.DrawText(versionText, int32(rl.GetScreenWidth())-width-10, height-lineHeight, small, rl.DarkGray)
}
