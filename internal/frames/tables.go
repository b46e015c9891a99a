package frames

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Demo drawings shown with two-tone blending.
var (
	drawing = Frame{
		0.0, 0.3, 0.3, 0.3, 0.0,
		0.0, 0.3, 0.0, 0.3, 0.0,
		0.0, 0.3, 0.3, 0.3, 0.0,
		0.0, 0.3, 0.0, 0.3, 0.0,
		0.0, 0.3, 0.3, 0.3, 0.0,
	}

	cross = Frame{
		1.0, 0.0, 0.0, 0.0, 1.0,
		0.0, 1.0, 0.0, 1.0, 0.0,
		0.0, 0.0, 1.0, 0.0, 0.0,
		0.0, 1.0, 0.0, 1.0, 0.0,
		1.0, 0.0, 0.0, 0.0, 1.0,
	}
)

var heart = Frame{
	0, 1, 0, 1, 0,
	1, 1, 1, 1, 1,
	1, 1, 1, 1, 1,
	0, 1, 1, 1, 0,
	0, 0, 1, 0, 0,
}

// digits holds the glyphs 0 through 5.
var digits = [6]Frame{
	{
		0, 1, 1, 1, 0,
		0, 1, 0, 1, 0,
		0, 1, 0, 1, 0,
		0, 1, 0, 1, 0,
		0, 1, 1, 1, 0,
	},
	{
		0, 0, 1, 0, 0,
		0, 1, 1, 0, 0,
		0, 0, 1, 0, 0,
		0, 0, 1, 0, 0,
		0, 1, 1, 1, 0,
	},
	{
		0, 1, 1, 1, 0,
		0, 0, 0, 1, 0,
		0, 1, 1, 1, 0,
		0, 1, 0, 0, 0,
		0, 1, 1, 1, 0,
	},
	{
		0, 1, 1, 1, 0,
		0, 0, 0, 1, 0,
		0, 1, 1, 1, 0,
		0, 0, 0, 1, 0,
		0, 1, 1, 1, 0,
	},
	{
		0, 1, 0, 1, 0,
		0, 1, 0, 1, 0,
		0, 1, 1, 1, 0,
		0, 0, 0, 1, 0,
		0, 0, 0, 1, 0,
	},
	{
		0, 1, 1, 1, 0,
		0, 1, 0, 0, 0,
		0, 1, 1, 1, 0,
		0, 0, 0, 1, 0,
		0, 1, 1, 1, 0,
	},
}

// squarePath is a 2x2 block walking the diagonal and stepping back.
var squarePath = [5]Frame{
	{
		1, 1, 0, 0, 0,
		1, 1, 0, 0, 0,
		0, 0, 0, 0, 0,
		0, 0, 0, 0, 0,
		0, 0, 0, 0, 0,
	},
	{
		0, 0, 0, 0, 0,
		0, 1, 1, 0, 0,
		0, 1, 1, 0, 0,
		0, 0, 0, 0, 0,
		0, 0, 0, 0, 0,
	},
	{
		0, 0, 0, 0, 0,
		0, 0, 0, 0, 0,
		0, 0, 1, 1, 0,
		0, 0, 1, 1, 0,
		0, 0, 0, 0, 0,
	},
	{
		0, 0, 0, 0, 0,
		0, 0, 0, 0, 0,
		0, 0, 0, 0, 0,
		0, 0, 0, 1, 1,
		0, 0, 0, 1, 1,
	},
	{
		0, 0, 0, 0, 0,
		0, 0, 0, 0, 0,
		0, 0, 1, 1, 0,
		0, 0, 1, 1, 0,
		0, 0, 0, 0, 0,
	},
}

var (
	arrowUp = Frame{
		0, 0, 1, 0, 0,
		0, 1, 1, 1, 0,
		1, 0, 1, 0, 1,
		0, 0, 1, 0, 0,
		0, 0, 1, 0, 0,
	}

	arrowDown = Frame{
		0, 0, 1, 0, 0,
		0, 0, 1, 0, 0,
		1, 0, 1, 0, 1,
		0, 1, 1, 1, 0,
		0, 0, 1, 0, 0,
	}
)

var ghost = Frame{
	0, 1, 1, 1, 0,
	1, 1, 1, 1, 1,
	1, 0, 1, 0, 1,
	1, 1, 1, 1, 1,
	1, 0, 1, 0, 1,
}

// ghostPalette is the order the sprite cycles through.
var ghostPalette = [6]struct {
	Name string
	Hex  string
}{
	{"blinky", "#ff0000"},
	{"pinky", "#ffb8ff"},
	{"inky", "#00ffff"},
	{"clyde", "#ffb852"},
	{"frightened", "#2121de"},
	{"eaten", "#ffffff"},
}

var letterA = Frame{
	0, 1, 1, 1, 0,
	1, 0, 0, 0, 1,
	1, 1, 1, 1, 1,
	1, 0, 0, 0, 1,
	1, 0, 0, 0, 1,
}

var explosion = [7]Frame{
	rings(1.0, 0, 0),
	rings(1.0, 0.5, 0),
	rings(0.6, 1.0, 0.3),
	rings(0.3, 0.6, 1.0),
	rings(0, 0.3, 0.6),
	rings(0, 0, 0.3),
	rings(0, 0, 0),
}

func ghostFrames() []ColorFrame {
	out := make([]ColorFrame, 0, len(ghostPalette))
	for _, p := range ghostPalette {
		c, err := colorful.Hex(p.Hex)
		if err != nil {
			panic("frames: bad ghost color " + p.Name + ": " + err.Error())
		}
		out = append(out, Tint(ghost, c))
	}
	return out
}

// GhostColors returns the palette names in play order.
func GhostColors() []string {
	out := make([]string, len(ghostPalette))
	for i, p := range ghostPalette {
		out[i] = p.Name
	}
	return out
}
