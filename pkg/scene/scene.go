// Package scene turns a session snapshot into world-space draw lists that any
// shell (raylib window, fyne widget, PNG raster) can replay.
package scene

import (
	"math"

	"github.com/philipparndt/gopappus/pkg/geometry"
)

// Mode selects how a primitive's vertices are connected.
type Mode int

const (
	// Points draws every vertex as an isolated dot.
	Points Mode = iota
	// LineStrip connects consecutive vertices.
	LineStrip
)

func (m Mode) String() string {
	if m == Points {
		return "points"
	}
	return "line-strip"
}

// Color is an RGB triple with channels in [0, 1].
type Color struct {
	R, G, B float32
}

// RGB8 returns the color scaled to 8-bit channels.
func (c Color) RGB8() (uint8, uint8, uint8) {
	return channel8(c.R), channel8(c.G), channel8(c.B)
}

func channel8(v float32) uint8 {
	return uint8(math.Round(float64(max(0, min(1, v))) * 255))
}

// Vertex is a world-space position with its color.
type Vertex struct {
	X, Y    float32
	R, G, B float32
}

// NewVertex creates a vertex from a world position and a color.
func NewVertex(x, y float64, c Color) Vertex {
	return Vertex{X: float32(x), Y: float32(y), R: c.R, G: c.G, B: c.B}
}

// Color returns the vertex color.
func (v Vertex) Color() Color {
	return Color{R: v.R, G: v.G, B: v.B}
}

// Primitive is one draw call.
type Primitive struct {
	Mode     Mode
	Vertices []Vertex
}

// Label is a short text anchored at a world position.
type Label struct {
	X, Y  float64
	Text  string
	Color Color
}

// Frame is everything drawn in one redraw, in drawing order.
type Frame struct {
	Primitives []Primitive
	Labels     []Label
}

// VertexCount returns the total number of vertices in the frame.
func (f Frame) VertexCount() int {
	n := 0
	for _, p := range f.Primitives {
		n += len(p.Vertices)
	}
	return n
}

func (f *Frame) strip(points []geometry.Vector3, offset geometry.Vector3, c Color) {
	f.add(LineStrip, points, offset, c)
}

func (f *Frame) dots(points []geometry.Vector3, offset geometry.Vector3, c Color) {
	f.add(Points, points, offset, c)
}

func (f *Frame) add(mode Mode, points []geometry.Vector3, offset geometry.Vector3, c Color) {
	if len(points) == 0 {
		return
	}
	vertices := make([]Vertex, len(points))
	for i, p := range points {
		vertices[i] = NewVertex(p.X+offset.X, p.Y+offset.Y, c)
	}
	f.Primitives = append(f.Primitives, Primitive{Mode: mode, Vertices: vertices})
}

// SplitStrips breaks line strips wherever two consecutive vertices are
// further apart than threshold, so jumps across a disk are not drawn as
// chords. Point primitives are passed through.
func SplitStrips(primitives []Primitive, threshold float64) []Primitive {
	out := make([]Primitive, 0, len(primitives))
	for _, p := range primitives {
		if p.Mode != LineStrip || len(p.Vertices) < 2 {
			out = append(out, p)
			continue
		}

		start := 0
		for i := 1; i < len(p.Vertices); i++ {
			a, b := p.Vertices[i-1], p.Vertices[i]
			if math.Hypot(float64(b.X-a.X), float64(b.Y-a.Y)) > threshold {
				out = append(out, Primitive{Mode: LineStrip, Vertices: p.Vertices[start:i]})
				start = i
			}
		}
		out = append(out, Primitive{Mode: LineStrip, Vertices: p.Vertices[start:]})
	}
	return out
}

// SplitThreshold returns the strip split distance for a disk radius.
func SplitThreshold(radius float64) float64 {
	return math.Max(500, 2*radius)
}
