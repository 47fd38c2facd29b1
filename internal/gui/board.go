// Package gui holds the fyne widgets of the Pappus GUI.
package gui

import (
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/gopappus/internal/controller"
	"github.com/philipparndt/gopappus/pkg/pappus"
	"github.com/philipparndt/gopappus/pkg/scene"
	"github.com/philipparndt/gopappus/pkg/viewer"
)

// ArcStep samples arcs coarser than the raylib window; every segment becomes
// a canvas object.
const ArcStep = 0.02

// settleDuration keeps redrawing after an event until smoothed markers have
// caught up with the pointer.
const settleDuration = 500 * time.Millisecond

// BoardWidget shows both disks and feeds pointer events into a controller
type BoardWidget struct {
	widget.BaseWidget
	ctrl     *controller.Controller
	onChange func(snap pappus.Snapshot)
	settle   *fyne.Animation
}

var (
	_ fyne.Tappable     = (*BoardWidget)(nil)
	_ desktop.Hoverable = (*BoardWidget)(nil)
)

// NewBoardWidget creates a widget for a controller
func NewBoardWidget(ctrl *controller.Controller) *BoardWidget {
	ctrl.SetMinArcStep(ArcStep)
	b := &BoardWidget{ctrl: ctrl}
	b.settle = fyne.NewAnimation(settleDuration, func(float32) {
		b.Refresh()
	})
	b.ExtendBaseWidget(b)
	return b
}

// SetOnChange sets the callback invoked after every interaction
func (b *BoardWidget) SetOnChange(callback func(snap pappus.Snapshot)) {
	b.onChange = callback
}

// Controller returns the controller the widget drives
func (b *BoardWidget) Controller() *controller.Controller {
	return b.ctrl
}

// Apply runs a key action and redraws
func (b *BoardWidget) Apply(a controller.Action) {
	b.ctrl.Apply(a)
	b.changed()
}

// Tapped commits the candidate under the pointer, or moves the query point
// once all six points are placed
func (b *BoardWidget) Tapped(event *fyne.PointEvent) {
	b.ctrl.Clicked(float64(event.Position.X), float64(event.Position.Y))
	b.changed()
}

// MouseIn is called when the pointer enters the widget
func (b *BoardWidget) MouseIn(event *desktop.MouseEvent) {
	b.MouseMoved(event)
}

// MouseMoved moves the pending candidate or the query point
func (b *BoardWidget) MouseMoved(event *desktop.MouseEvent) {
	b.ctrl.PointerMoved(float64(event.Position.X), float64(event.Position.Y))
	b.changed()
}

// MouseOut is called when the pointer leaves the widget
func (b *BoardWidget) MouseOut() {}

func (b *BoardWidget) changed() {
	b.Refresh()
	b.settle.Stop()
	b.settle.Start()
	if b.onChange != nil {
		b.onChange(b.ctrl.Session().Snapshot())
	}
}

// CreateRenderer creates the renderer for the widget
func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &boardRenderer{board: b}
	r.Refresh()
	return r
}

// boardRenderer implements fyne.WidgetRenderer
type boardRenderer struct {
	board   *BoardWidget
	objects []fyne.CanvasObject
}

func (r *boardRenderer) Layout(size fyne.Size) {
	r.board.ctrl.Resize(float64(size.Width), float64(size.Height))
	r.Refresh()
}

func (r *boardRenderer) MinSize() fyne.Size {
	return fyne.NewSize(480, 260)
}

// Refresh advances smoothing one step and rebuilds the canvas objects.
func (r *boardRenderer) Refresh() {
	ctrl := r.board.ctrl
	vp := ctrl.Viewport()

	bg := canvas.NewRectangle(toRGBA(ctrl.Style().Background))
	bg.Resize(fyne.NewSize(float32(vp.Width), float32(vp.Height)))

	r.objects = append([]fyne.CanvasObject{bg}, viewer.CanvasObjects(ctrl.Frame(), vp)...)
	canvas.Refresh(r.board)
}

func (r *boardRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *boardRenderer) Destroy() {
	r.board.settle.Stop()
}

func toRGBA(c scene.Color) color.RGBA {
	red, green, blue := c.RGB8()
	return color.RGBA{R: red, G: green, B: blue, A: 255}
}
