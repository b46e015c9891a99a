// Package frames holds the compiled-in catalog of 5x5 LED frames and the
// named sequences built from them.
package frames

import (
	"time"

	colorful "github.com/lucasb-eyer/go-colorful"
)

const (
	Width      = 5
	Height     = 5
	PixelCount = Width * Height
)

// Frame is one still image as per-pixel intensities in row-major order.
type Frame [PixelCount]float64

// ColorFrame is a still image that carries its own color per pixel.
type ColorFrame [PixelCount]colorful.Color

// Sequence is an ordered list of frames with a default repeat count and the
// delay between consecutive frames. Exactly one of Frames and Colored is set.
type Sequence struct {
	Name    Name
	Frames  []Frame
	Colored []ColorFrame
	Repeat  int
	Delay   time.Duration
}

// Len returns the number of frames in one pass of s.
func (s Sequence) Len() int {
	if len(s.Colored) > 0 {
		return len(s.Colored)
	}
	return len(s.Frames)
}

// IsColored reports whether s carries per-pixel colors.
func (s Sequence) IsColored() bool {
	return len(s.Colored) > 0
}

// Uniform returns a frame with every pixel at v.
func Uniform(v float64) Frame {
	var f Frame
	for i := range f {
		f[i] = v
	}
	return f
}

// Scaled returns f with every intensity multiplied by k.
func (f Frame) Scaled(k float64) Frame {
	for i := range f {
		f[i] *= k
	}
	return f
}

// At returns the intensity at column x, row y.
func (f Frame) At(x, y int) float64 {
	return f[y*Width+x]
}

// Tint colors every lit pixel of mask with c, scaled by its intensity.
func Tint(mask Frame, c colorful.Color) ColorFrame {
	var out ColorFrame
	for i, v := range mask {
		out[i] = colorful.Color{R: c.R * v, G: c.G * v, B: c.B * v}
	}
	return out
}

// rings builds a frame whose intensity depends only on the Chebyshev
// distance from the center pixel.
func rings(d0, d1, d2 float64) Frame {
	var f Frame
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			d := chebyshev(x-Width/2, y-Height/2)
			switch d {
			case 0:
				f[y*Width+x] = d0
			case 1:
				f[y*Width+x] = d1
			default:
				f[y*Width+x] = d2
			}
		}
	}
	return f
}

func chebyshev(dx, dy int) int {
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	if dx > dy {
		return dx
	}
	return dy
}

// rowsOf keeps the first n rows of f and blanks the rest.
func rowsOf(f Frame, n int) Frame {
	for i := n * Width; i < PixelCount; i++ {
		f[i] = 0
	}
	return f
}
