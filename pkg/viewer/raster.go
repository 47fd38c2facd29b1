package viewer

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/philipparndt/gopappus/pkg/scene"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// ErrInvalidViewport is returned when rasterizing into an empty image.
var ErrInvalidViewport = errors.New("viewer: viewport has no area")

// RasterOptions controls software rendering of a frame.
type RasterOptions struct {
	Background scene.Color
	PointSize  int // side of the square drawn for a point primitive
	Face       font.Face
}

// DefaultRasterOptions draws on black with 2px points and the basic 7x13 font.
func DefaultRasterOptions() RasterOptions {
	return RasterOptions{PointSize: 2, Face: basicfont.Face7x13}
}

// Rasterize draws a frame into a new image the size of the viewport.
func Rasterize(frame scene.Frame, vp Viewport, opts RasterOptions) (*image.RGBA, error) {
	if !vp.Valid() {
		return nil, fmt.Errorf("%w: %vx%v", ErrInvalidViewport, vp.Width, vp.Height)
	}

	img := image.NewRGBA(image.Rect(0, 0, int(vp.Width), int(vp.Height)))
	draw.Draw(img, img.Bounds(), image.NewUniform(toRGBA(opts.Background)), image.Point{}, draw.Src)

	for _, p := range frame.Primitives {
		switch p.Mode {
		case scene.LineStrip:
			for i := 1; i < len(p.Vertices); i++ {
				x1, y1 := pixel(vp, p.Vertices[i-1])
				x2, y2 := pixel(vp, p.Vertices[i])
				drawLine(img, x1, y1, x2, y2, toRGBA(p.Vertices[i].Color()))
			}
		case scene.Points:
			for _, v := range p.Vertices {
				x, y := pixel(vp, v)
				fillSquare(img, x, y, opts.PointSize, toRGBA(v.Color()))
			}
		}
	}

	if opts.Face != nil {
		for _, l := range frame.Labels {
			drawLabel(img, vp, opts.Face, l)
		}
	}
	return img, nil
}

// WritePNG rasterizes a frame and encodes it as PNG.
func WritePNG(w io.Writer, frame scene.Frame, vp Viewport, opts RasterOptions) error {
	img, err := Rasterize(frame, vp, opts)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}

func pixel(vp Viewport, v scene.Vertex) (int, int) {
	x, y := vp.WorldToScreen(float64(v.X), float64(v.Y))
	return int(math.Round(x)), int(math.Round(y))
}

func toRGBA(c scene.Color) color.RGBA {
	r, g, b := c.RGB8()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func drawLabel(img *image.RGBA, vp Viewport, face font.Face, l scene.Label) {
	x, y := vp.WorldToScreen(l.X, l.Y)
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(toRGBA(l.Color)),
		Face: face,
		Dot:  fixed.P(int(x), int(y)),
	}
	d.DrawString(l.Text)
}

// fillSquare fills a size x size square centered on (cx, cy)
func fillSquare(img *image.RGBA, cx, cy, size int, col color.RGBA) {
	if size < 1 {
		size = 1
	}
	bounds := img.Bounds()
	x0, y0 := cx-size/2, cy-size/2
	for y := y0; y < y0+size; y++ {
		for x := x0; x < x0+size; x++ {
			if image.Pt(x, y).In(bounds) {
				img.SetRGBA(x, y, col)
			}
		}
	}
}

// drawLine draws a line on an image using Bresenham's algorithm
func drawLine(img *image.RGBA, x1, y1, x2, y2 int, col color.RGBA) {
	bounds := img.Bounds()

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	var sx, sy int
	if x1 < x2 {
		sx = 1
	} else {
		sx = -1
	}
	if y1 < y2 {
		sy = 1
	} else {
		sy = -1
	}

	err := dx - dy

	for {
		if x1 >= 0 && x1 < bounds.Max.X && y1 >= 0 && y1 < bounds.Max.Y {
			img.SetRGBA(x1, y1, col)
		}

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
