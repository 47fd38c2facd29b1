package scene

import "github.com/philipparndt/gopappus/pkg/projective"

// Style controls colors and sizes of a built frame.
type Style struct {
	Background Color
	Outline    Color // disk boundaries
	Arc        Color // lines through collected points
	Support    Color // correspondence lines of a query
	Pappus     Color // the Pappus line
	Crossing   Color // query crossing on the Pappus line
	Query      Color // query point and its image

	MarkerRadius float64
	// MarkerSegments is the number of vertices in a marker circle.
	MarkerSegments int
	ArcStep        float64

	// ShowSupportingLines adds the auxiliary lines l1..l4 once six points
	// are collected.
	ShowSupportingLines bool
	// ShowLabels names the collected points x1..y3.
	ShowLabels bool
}

// DefaultStyle returns the stock palette on a black background.
func DefaultStyle() Style {
	return Style{
		Background:     Color{0, 0, 0},
		Outline:        Color{0.2, 0.2, 0.2},
		Arc:            Color{1, 1, 1},
		Support:        Color{0.6, 0.6, 0.6},
		Pappus:         Color{1, 1, 1},
		Crossing:       Color{0.1, 0.1, 0.1},
		Query:          Color{0, 1, 0},
		MarkerRadius:   7,
		MarkerSegments: 48,
		ArcStep:        projective.DefaultArcStep,
		ShowLabels:     true,
	}
}

// PointColor returns the marker color of slot j. Slots that share j%3 (the
// corresponding x and y points) share a color.
func PointColor(j int) Color {
	rgb := [3]float32{0.85, 0.85, 0.85}
	rgb[j%3] = 0.15
	return Color{R: rgb[0], G: rgb[1], B: rgb[2]}
}
