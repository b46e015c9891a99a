// Package led holds the sinks that color words are emitted into.
package led

import (
	"image"
	"image/color"

	pkgcolor "github.com/coreman2200/funtimes-keymatrix/internal/color"
)

// Sink abstracts an LED output. Emit sends one color word; callers emit
// exactly one word per pixel of a frame, in strip order.
type Sink interface {
	Emit(word uint32) error
	// Close releases resources.
	Close() error
}

// frameBuffer collects words until a full frame is present.
type frameBuffer struct {
	words []uint32
	count int
}

func newFrameBuffer(count int) frameBuffer {
	return frameBuffer{words: make([]uint32, 0, count), count: count}
}

// push appends w and reports whether the frame is now complete.
func (b *frameBuffer) push(w uint32) bool {
	b.words = append(b.words, w)
	return len(b.words) == b.count
}

func (b *frameBuffer) reset() {
	b.words = b.words[:0]
}

// rgb expands the buffered words into an RGB byte stream.
func (b *frameBuffer) rgb() []byte {
	buf := make([]byte, 0, 3*len(b.words))
	for _, w := range b.words {
		r, g, bb := pkgcolor.Decode(w)
		buf = append(buf, r, g, bb)
	}
	return buf
}

// image lays the buffered words out on a single row.
func (b *frameBuffer) image() *image.NRGBA {
	im := image.NewNRGBA(image.Rect(0, 0, len(b.words), 1))
	for x, w := range b.words {
		r, g, bb := pkgcolor.Decode(w)
		im.SetNRGBA(x, 0, color.NRGBA{R: r, G: g, B: bb, A: 255})
	}
	return im
}
