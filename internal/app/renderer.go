package app

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gopappus/pkg/scene"
	"github.com/philipparndt/gopappus/pkg/viewer"
)

const labelFontSize = 16

func toColor(c scene.Color) color.RGBA {
	r, g, b := c.RGB8()
	return rl.NewColor(r, g, b, 255)
}

func screen(vp viewer.Viewport, v scene.Vertex) rl.Vector2 {
	x, y := vp.WorldToScreen(float64(v.X), float64(v.Y))
	return rl.Vector2{X: float32(x), Y: float32(y)}
}

// drawFrame draws a scene frame in pixel space. Strips are single colored,
// so each one is a single draw call.
func drawFrame(frame scene.Frame, vp viewer.Viewport, pointSize float32) {
	if !vp.Valid() {
		return
	}

	for _, p := range frame.Primitives {
		if len(p.Vertices) == 0 {
			continue
		}
		switch p.Mode {
		case scene.LineStrip:
			points := make([]rl.Vector2, len(p.Vertices))
			for i, v := range p.Vertices {
				points[i] = screen(vp, v)
			}
			rl.DrawLineStrip(points, toColor(p.Vertices[0].Color()))
		case scene.Points:
			for _, v := range p.Vertices {
				rl.DrawCircleV(screen(vp, v), pointSize/2, toColor(v.Color()))
			}
		}
	}

	for _, l := range frame.Labels {
		x, y := vp.WorldToScreen(l.X, l.Y)
		rl.DrawText(l.Text, int32(x)+8, int32(y)-labelFontSize-4, labelFontSize, toColor(l.Color))
	}
}
