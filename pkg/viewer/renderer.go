package viewer

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"github.com/philipparndt/gopappus/pkg/scene"
)

// CanvasObjects converts a frame into fyne canvas objects in pixel space.
func CanvasObjects(frame scene.Frame, vp Viewport) []fyne.CanvasObject {
	if !vp.Valid() {
		return nil
	}

	objects := make([]fyne.CanvasObject, 0, frame.VertexCount()+len(frame.Labels))
	for _, p := range frame.Primitives {
		switch p.Mode {
		case scene.LineStrip:
			for i := 1; i < len(p.Vertices); i++ {
				objects = append(objects, segment(vp, p.Vertices[i-1], p.Vertices[i]))
			}
		case scene.Points:
			for _, v := range p.Vertices {
				objects = append(objects, dot(vp, v))
			}
		}
	}

	for _, l := range frame.Labels {
		x, y := vp.WorldToScreen(l.X, l.Y)
		text := canvas.NewText(l.Text, toRGBA(l.Color))
		text.TextSize = 12
		text.Move(fyne.NewPos(float32(x), float32(y)-text.TextSize))
		objects = append(objects, text)
	}
	return objects
}

func segment(vp Viewport, a, b scene.Vertex) *canvas.Line {
	x1, y1 := vp.WorldToScreen(float64(a.X), float64(a.Y))
	x2, y2 := vp.WorldToScreen(float64(b.X), float64(b.Y))

	line := canvas.NewLine(toRGBA(b.Color()))
	line.StrokeWidth = 1
	line.Position1 = fyne.NewPos(float32(x1), float32(y1))
	line.Position2 = fyne.NewPos(float32(x2), float32(y2))
	return line
}

func dot(vp Viewport, v scene.Vertex) *canvas.Circle {
	x, y := vp.WorldToScreen(float64(v.X), float64(v.Y))

	marker := canvas.NewCircle(toRGBA(v.Color()))
	marker.StrokeColor = color.Transparent
	size := float32(3)
	marker.Resize(fyne.NewSize(size, size))
	marker.Move(fyne.NewPos(float32(x)-size/2, float32(y)-size/2))
	return marker
}
