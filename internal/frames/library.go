package frames

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// Name identifies one sequence of the catalog.
type Name int

const (
	FillRed Name = iota
	FillWhite
	FillBlue
	FillGreen
	Off
	Heart
	CountDown
	CountUp
	Square
	Arrows
	Ghost
	Letter
	Explosion
	Drawing
	Cross
	nameCount
)

var names = [nameCount]string{
	FillRed:   "fill-red",
	FillWhite: "fill-white",
	FillBlue:  "fill-blue",
	FillGreen: "fill-green",
	Off:       "off",
	Heart:     "heart",
	CountDown: "count-down",
	CountUp:   "count-up",
	Square:    "square",
	Arrows:    "arrows",
	Ghost:     "ghost",
	Letter:    "letter",
	Explosion: "explosion",
	Drawing:   "drawing",
	Cross:     "cross",
}

func (n Name) String() string {
	if n < 0 || n >= nameCount {
		return fmt.Sprintf("Name(%d)", int(n))
	}
	return names[n]
}

// ParseName resolves the string form of a Name.
func ParseName(s string) (Name, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, v := range names {
		if v == s {
			return Name(i), nil
		}
	}
	return 0, fmt.Errorf("unknown sequence %q", s)
}

// Names lists every catalog entry in declaration order.
func Names() []Name {
	out := make([]Name, 0, nameCount)
	for n := Name(0); n < nameCount; n++ {
		out = append(out, n)
	}
	return out
}

var catalog [nameCount]Sequence

func init() {
	single := func(n Name, f Frame) Sequence {
		return Sequence{Name: n, Frames: []Frame{f}, Repeat: 1}
	}

	catalog[FillRed] = single(FillRed, Uniform(0.8))
	catalog[FillWhite] = single(FillWhite, Uniform(0.2))
	catalog[FillBlue] = single(FillBlue, Uniform(1.0))
	catalog[FillGreen] = single(FillGreen, Uniform(0.5))
	catalog[Off] = single(Off, Uniform(0.0))

	catalog[Heart] = Sequence{
		Name:   Heart,
		Frames: []Frame{heart, heart.Scaled(0.5), heart.Scaled(0.2), heart.Scaled(0.5)},
		Repeat: 3,
		Delay:  200 * time.Millisecond,
	}

	down := make([]Frame, 0, len(digits))
	for i := len(digits) - 1; i >= 0; i-- {
		down = append(down, digits[i])
	}
	catalog[CountDown] = Sequence{Name: CountDown, Frames: down, Repeat: 1, Delay: time.Second}
	catalog[CountUp] = Sequence{Name: CountUp, Frames: digits[:], Repeat: 1, Delay: 400 * time.Millisecond}

	catalog[Square] = Sequence{Name: Square, Frames: squarePath[:], Repeat: 3, Delay: 200 * time.Millisecond}
	catalog[Arrows] = Sequence{Name: Arrows, Frames: []Frame{arrowUp, arrowDown}, Repeat: 2, Delay: 400 * time.Millisecond}
	catalog[Ghost] = Sequence{Name: Ghost, Colored: ghostFrames(), Repeat: 5, Delay: 400 * time.Millisecond}

	build := make([]Frame, 0, Height)
	for rows := 1; rows <= Height; rows++ {
		build = append(build, rowsOf(letterA, rows))
	}
	catalog[Letter] = Sequence{Name: Letter, Frames: build, Repeat: 1, Delay: 400 * time.Millisecond}

	catalog[Explosion] = Sequence{Name: Explosion, Frames: explosion[:], Repeat: 3, Delay: 100 * time.Millisecond}
	catalog[Drawing] = single(Drawing, drawing)
	catalog[Cross] = single(Cross, cross)
}

// Get returns a copy of the sequence registered under n; callers may modify
// it freely.
func Get(n Name) Sequence {
	if n < 0 || n >= nameCount {
		panic(fmt.Sprintf("frames: no sequence %d", int(n)))
	}
	s := catalog[n]
	s.Frames = slices.Clone(s.Frames)
	s.Colored = slices.Clone(s.Colored)
	return s
}
