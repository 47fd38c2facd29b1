package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/gopappus/internal/config"
	"github.com/philipparndt/gopappus/internal/controller"
	"github.com/philipparndt/gopappus/internal/gui"
	"github.com/philipparndt/gopappus/internal/logging"
	"github.com/philipparndt/gopappus/pkg/pappus"
	"github.com/philipparndt/gopappus/version"
)

type App struct {
	app    fyne.App
	window fyne.Window
	board  *gui.BoardWidget
	status *widget.Label
	help   *widget.Label
}

func main() {
	logging.Setup(os.Stderr, os.Getenv("PAPPUS_DEBUG") != "")

	cfg := config.Default()
	if len(os.Args) > 1 {
		loaded, err := config.Load(os.Args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	ctrl, err := controller.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	a := app.New()
	w := a.NewWindow("Pappus " + version.GetFullVersion())

	appInstance := &App{
		app:    a,
		window: w,
		board:  gui.NewBoardWidget(ctrl),
		status: widget.NewLabel(""),
		help:   widget.NewLabel(strings.ReplaceAll(controller.HelpText, "  ", "\n")),
	}
	appInstance.setupMainUI()

	w.SetFullScreen(ctrl.Fullscreen())
	w.Resize(fyne.NewSize(float32(cfg.Window.Width), float32(cfg.Window.Height)))
	slog.Info("window opened", "width", cfg.Window.Width, "height", cfg.Window.Height,
		"world_width", cfg.Layout.WorldWidth, "world_height", cfg.Layout.WorldHeight)
	w.ShowAndRun()
}

func (a *App) setupMainUI() {
	a.status.TextStyle = fyne.TextStyle{Monospace: true}
	a.board.SetOnChange(a.updateStatus)
	a.updateStatus(a.board.Controller().Session().Snapshot())

	resetButton := widget.NewButton("Reset", func() {
		a.board.Apply(controller.ActionReset)
	})
	supportButton := widget.NewButton("Supporting Lines", func() {
		a.board.Apply(controller.ActionToggleSupportingLines)
	})

	infoPanel := container.NewVBox(
		widget.NewLabelWithStyle("Construction", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		a.status,
		widget.NewSeparator(),
		widget.NewLabelWithStyle("Keys", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		a.help,
		widget.NewSeparator(),
		resetButton,
		supportButton,
	)

	content := container.NewBorder(nil, nil, nil, container.NewVScroll(infoPanel), a.board)
	a.window.SetContent(content)
	a.window.Canvas().SetOnTypedKey(a.handleKey)
}

func (a *App) handleKey(event *fyne.KeyEvent) {
	action := controller.ActionForKey(string(event.Name))
	if action == controller.ActionNone {
		return
	}
	a.board.Apply(action)

	ctrl := a.board.Controller()
	if ctrl.ShouldQuit() {
		a.app.Quit()
		return
	}
	if a.window.FullScreen() != ctrl.Fullscreen() {
		a.window.SetFullScreen(ctrl.Fullscreen())
	}
}

func (a *App) updateStatus(snap pappus.Snapshot) {
	a.status.SetText(strings.Join(controller.StatusLines(snap), "\n"))
}
