package viewer

import "math"

const (
	// DefaultWorldWidth spans world X from -780 to 780.
	DefaultWorldWidth = 1560.0
	// DefaultWorldHeight spans world Y from -420 to 420.
	DefaultWorldHeight = 840.0
)

// Viewport maps between window pixels and world coordinates.
//
// The world rectangle is centered on the origin and scaled uniformly to fit
// the window. The leftover axis is letterboxed, so world units stay square at
// any window aspect ratio. Pixel Y grows downward, world Y upward.
type Viewport struct {
	Width, Height           float64 // window size in pixels
	WorldWidth, WorldHeight float64
}

// NewViewport creates a viewport for a window with the default world extent.
func NewViewport(width, height float64) Viewport {
	return Viewport{
		Width:       width,
		Height:      height,
		WorldWidth:  DefaultWorldWidth,
		WorldHeight: DefaultWorldHeight,
	}
}

// Resize returns a copy of the viewport for a new window size.
func (v Viewport) Resize(width, height float64) Viewport {
	v.Width, v.Height = width, height
	return v
}

// stretch returns how much normalized device coordinates are widened on
// each axis to undo the letterbox.
func (v Viewport) stretch() (float64, float64) {
	aspect := v.Width / v.Height
	worldAspect := v.WorldWidth / v.WorldHeight
	if aspect > worldAspect {
		return aspect / worldAspect, 1
	}
	return 1, worldAspect / aspect
}

// ScreenToWorld converts a pixel position to world coordinates.
func (v Viewport) ScreenToWorld(px, py float64) (float64, float64) {
	ndcX := 2*px/v.Width - 1
	ndcY := 1 - 2*py/v.Height

	sx, sy := v.stretch()
	return ndcX * sx * v.WorldWidth / 2, ndcY * sy * v.WorldHeight / 2
}

// WorldToScreen converts world coordinates to a pixel position.
func (v Viewport) WorldToScreen(wx, wy float64) (float64, float64) {
	sx, sy := v.stretch()
	ndcX := wx / (v.WorldWidth / 2) / sx
	ndcY := wy / (v.WorldHeight / 2) / sy
	return (ndcX + 1) * v.Width / 2, (1 - ndcY) * v.Height / 2
}

// Scale returns pixels per world unit.
func (v Viewport) Scale() float64 {
	return math.Min(v.Width/v.WorldWidth, v.Height/v.WorldHeight)
}

// Valid reports whether the viewport has a usable size.
func (v Viewport) Valid() bool {
	return v.Width > 0 && v.Height > 0 && v.WorldWidth > 0 && v.WorldHeight > 0
}
