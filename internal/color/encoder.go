package color

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Bit offsets of each channel inside a color word. The strip expects GRB,
// most significant byte first, with the low byte left empty.
const (
	GREEN_OFFSET uint8 = 0x18
	RED_OFFSET   uint8 = 0x10
	BLUE_OFFSET  uint8 = 0x08
)

// Channel selects one component of a color.
type Channel int

const (
	Red Channel = iota
	Green
	Blue
)

func (c Channel) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	default:
		return "unknown"
	}
}

// Black is the zero color.
var Black = colorful.Color{}

// RGB builds a color from normalized channels.
func RGB(r, g, b float64) colorful.Color {
	return colorful.Color{R: r, G: g, B: b}
}

// With returns c with channel ch replaced by v.
func With(c colorful.Color, ch Channel, v float64) colorful.Color {
	switch ch {
	case Red:
		c.R = v
	case Green:
		c.G = v
	case Blue:
		c.B = v
	}
	return c
}

// Encode packs c into a color word. Channels outside [0,1] are clamped
// and scaled values are truncated, never rounded.
func Encode(c colorful.Color) uint32 {
	c = c.Clamped()
	var w uint32
	w = setcolor(w, scale(c.G), GREEN_OFFSET)
	w = setcolor(w, scale(c.R), RED_OFFSET)
	w = setcolor(w, scale(c.B), BLUE_OFFSET)
	return w
}

// EncodeRGB is Encode for loose channel values.
func EncodeRGB(r, g, b float64) uint32 {
	return Encode(RGB(r, g, b))
}

// Decode extracts the 8-bit channels of a color word.
func Decode(w uint32) (r, g, b uint8) {
	return getcolor(w, RED_OFFSET), getcolor(w, GREEN_OFFSET), getcolor(w, BLUE_OFFSET)
}

func scale(v float64) uint8 {
	return uint8(v * 255)
}

func setcolor(c uint32, n uint8, off uint8) uint32 {
	var val uint32 = uint32(n) << off
	var mask uint32 = 0xFF << off
	return (c & (^mask)) | val
}

func getcolor(c uint32, off uint8) uint8 {
	var mask uint32 = 0xFF << off
	return uint8((c & mask) >> off)
}
