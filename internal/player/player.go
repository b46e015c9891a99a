// Package player turns frame sequences into color words and pushes them,
// frame by frame, into an LED sink.
package player

import (
	"fmt"
	"time"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/rs/zerolog"

	"github.com/coreman2200/funtimes-keymatrix/internal/color"
	"github.com/coreman2200/funtimes-keymatrix/internal/events"
	"github.com/coreman2200/funtimes-keymatrix/internal/frames"
	"github.com/coreman2200/funtimes-keymatrix/internal/led"
)

// BlendMode selects how a frame pixel and the caller color combine.
type BlendMode int

const (
	// WeightedBicolor puts the intensity into blue on even output
	// positions and into red on odd ones.
	WeightedBicolor BlendMode = iota
	// UniformColor puts the intensity into Blend.Channel and takes the
	// other channels from the caller color.
	UniformColor
	// SolidFill paints the caller color everywhere, ignoring the frame.
	SolidFill
	// Palette uses the per-pixel colors of a colored sequence.
	Palette
)

func (m BlendMode) String() string {
	switch m {
	case WeightedBicolor:
		return "weighted-bicolor"
	case UniformColor:
		return "uniform-color"
	case SolidFill:
		return "solid-fill"
	case Palette:
		return "palette"
	default:
		return fmt.Sprintf("BlendMode(%d)", int(m))
	}
}

// Blend is the pixel mapping policy for one Play call.
type Blend struct {
	Mode    BlendMode
	Channel color.Channel // UniformColor only
}

// check reports whether b can render seq.
func (b Blend) check(seq frames.Sequence) error {
	switch b.Mode {
	case WeightedBicolor, SolidFill:
	case UniformColor:
		if b.Channel < color.Red || b.Channel > color.Blue {
			return fmt.Errorf("blend %s: unknown channel %s", b.Mode, b.Channel)
		}
	case Palette:
		if !seq.IsColored() {
			return fmt.Errorf("sequence %s has no per-pixel colors", seq.Name)
		}
	default:
		return fmt.Errorf("unknown blend mode %s", b.Mode)
	}
	return nil
}

// Player owns the sink and the sleep primitive. It keeps no state between
// calls to Play.
type Player struct {
	sink  led.Sink
	sleep func(time.Duration)
	log   zerolog.Logger
	bus   *events.Bus
}

// Option customizes a Player.
type Option func(*Player)

// WithSleep replaces time.Sleep, mainly for tests.
func WithSleep(f func(time.Duration)) Option {
	return func(p *Player) { p.sleep = f }
}

// WithLogger sets the logger.
func WithLogger(l zerolog.Logger) Option {
	return func(p *Player) { p.log = l }
}

// WithBus publishes an AnimationPlayedEvent after each Play.
func WithBus(b *events.Bus) Option {
	return func(p *Player) { p.bus = b }
}

func New(sink led.Sink, opts ...Option) *Player {
	p := &Player{
		sink:  sink,
		sleep: time.Sleep,
		log:   zerolog.Nop(),
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Play emits repeat passes of seq. Every frame is rendered in full before
// its first word is emitted, and the player waits seq.Delay between frames
// but not after the last one.
func (p *Player) Play(seq frames.Sequence, blend Blend, c colorful.Color, repeat int) error {
	if err := blend.check(seq); err != nil {
		return err
	}

	start := time.Now()
	total := seq.Len() * max(repeat, 0)
	emitted := 0
	err := p.play(seq, blend, c, total, &emitted)

	p.log.Debug().
		Str("sequence", seq.Name.String()).
		Str("mode", blend.Mode.String()).
		Int("repeat", repeat).
		Int("words", emitted).
		Dur("elapsed", time.Since(start)).
		Msg("played")

	p.bus.Publish(events.AnimationPlayedEvent{
		Sequence: seq.Name.String(),
		Mode:     blend.Mode.String(),
		Frames:   emitted / frames.PixelCount,
		Words:    emitted,
		Elapsed:  time.Since(start),
		Err:      err,
	})
	return err
}

func (p *Player) play(seq frames.Sequence, blend Blend, c colorful.Color, total int, emitted *int) error {
	n := seq.Len()
	var words [frames.PixelCount]uint32
	for i := 0; i < total; i++ {
		if err := Render(&words, seq, i%n, blend, c); err != nil {
			return err
		}
		for _, w := range words {
			if err := p.sink.Emit(w); err != nil {
				return fmt.Errorf("emit frame %d of %s: %w", i, seq.Name, err)
			}
			*emitted++
		}
		if i < total-1 && seq.Delay > 0 {
			p.sleep(seq.Delay)
		}
	}
	return nil
}

// Render computes the words of frame idx of seq in strip order. Output
// position i shows source pixel 24-i. dst is left untouched on error.
func Render(dst *[frames.PixelCount]uint32, seq frames.Sequence, idx int, blend Blend, c colorful.Color) error {
	if err := blend.check(seq); err != nil {
		return err
	}
	if idx < 0 || idx >= seq.Len() {
		return fmt.Errorf("frame %d out of range for %s (%d frames)", idx, seq.Name, seq.Len())
	}
	for i := range dst {
		src := frames.PixelCount - 1 - i
		dst[i] = color.Encode(pixel(seq, idx, src, i, blend, c))
	}
	return nil
}

func pixel(seq frames.Sequence, idx, src, out int, blend Blend, c colorful.Color) colorful.Color {
	switch blend.Mode {
	case Palette:
		return seq.Colored[idx][src]
	case SolidFill:
		return c
	}

	v := intensity(seq, idx, src)
	switch blend.Mode {
	case WeightedBicolor:
		if out%2 == 0 {
			return color.RGB(0, 0, v)
		}
		return color.RGB(v, 0, 0)
	case UniformColor:
		return color.With(c, blend.Channel, v)
	}
	panic(fmt.Sprintf("player: unchecked blend mode %s", blend.Mode))
}

// intensity reads a scalar from either frame kind; colored frames fall back
// to their brightest channel.
func intensity(seq frames.Sequence, idx, src int) float64 {
	if !seq.IsColored() {
		return seq.Frames[idx][src]
	}
	p := seq.Colored[idx][src]
	return max(p.R, p.G, p.B)
}
