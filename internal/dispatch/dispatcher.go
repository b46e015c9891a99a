// Package dispatch maps key presses to playback actions and runs the
// poll/play/debounce loop.
package dispatch

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/coreman2200/funtimes-keymatrix/internal/events"
	"github.com/coreman2200/funtimes-keymatrix/internal/frames"
	"github.com/coreman2200/funtimes-keymatrix/internal/keypad"
	"github.com/coreman2200/funtimes-keymatrix/internal/player"
)

const (
	DefaultDebounce     = 200 * time.Millisecond
	DefaultPollInterval = 10 * time.Millisecond
)

// State enumerates dispatcher states.
type State string

const (
	Idle     State = "idle"
	Debounce State = "debounce"
)

// Config holds the dispatcher timings.
type Config struct {
	Debounce     time.Duration
	PollInterval time.Duration
}

// Dispatcher owns the key source and the player. It is not safe for
// concurrent use; one goroutine drives it.
type Dispatcher struct {
	State State

	keys     keypad.Source
	player   *player.Player
	bindings Bindings
	cfg      Config
	sleep    func(time.Duration)
	log      zerolog.Logger
	bus      *events.Bus
}

// Option customizes a Dispatcher.
type Option func(*Dispatcher)

func WithSleep(f func(time.Duration)) Option {
	return func(d *Dispatcher) { d.sleep = f }
}

func WithLogger(l zerolog.Logger) Option {
	return func(d *Dispatcher) { d.log = l }
}

func WithBus(b *events.Bus) Option {
	return func(d *Dispatcher) { d.bus = b }
}

func New(keys keypad.Source, p *player.Player, b Bindings, cfg Config, opts ...Option) *Dispatcher {
	if cfg.Debounce <= 0 {
		cfg.Debounce = DefaultDebounce
	}
	if cfg.PollInterval < 0 {
		cfg.PollInterval = 0
	}
	d := &Dispatcher{
		State:    Idle,
		keys:     keys,
		player:   p,
		bindings: b,
		cfg:      cfg,
		sleep:    time.Sleep,
		log:      zerolog.Nop(),
	}
	for _, o := range opts {
		o(d)
	}
	return d
}

// Step polls the keypad once and, on a press, handles it. It reports
// whether a key was handled.
func (d *Dispatcher) Step() (bool, error) {
	k, ok := d.keys.Poll()
	if !ok {
		return false, nil
	}
	return true, d.Handle(k)
}

// Handle runs the action bound to k to completion, then holds the debounce
// delay before returning to Idle.
func (d *Dispatcher) Handle(k keypad.KeyCode) error {
	d.State = Debounce
	defer func() { d.State = Idle }()

	a := d.bindings.Lookup(k)
	d.log.Info().Str("key", k.String()).Str("action", a.String()).Msg("key pressed")
	d.bus.Publish(events.KeyPressedEvent{Key: k.String(), Action: a.String(), At: time.Now()})

	err := d.Execute(a)
	if err != nil {
		d.log.Error().Err(err).Str("key", k.String()).Msg("playback failed")
	}
	d.sleep(d.cfg.Debounce)
	return err
}

// Execute performs a without debouncing.
func (d *Dispatcher) Execute(a Action) error {
	switch a.Kind {
	case NoOp:
		return nil
	case TurnOff:
		return d.player.Play(frames.Get(frames.Off), a.Blend, a.Color, 1)
	case FillSolid, PlaySequence:
		seq := frames.Get(a.Sequence)
		return d.player.Play(seq, a.Blend, a.Color, seq.Repeat)
	default:
		return fmt.Errorf("unhandled action %s", a.Kind)
	}
}

// finite is a key source that can run out, like a keypad.Script.
type finite interface {
	Done() bool
}

// Run steps until ctx is done or a finite source runs dry, in which case it
// returns nil. Cancellation is only observed between steps; a playing
// animation always finishes.
func (d *Dispatcher) Run(ctx context.Context) error {
	d.log.Info().Dur("debounce", d.cfg.Debounce).Dur("poll_interval", d.cfg.PollInterval).Msg("dispatcher started")
	for {
		select {
		case <-ctx.Done():
			d.log.Info().Msg("dispatcher stopped")
			return ctx.Err()
		default:
		}
		handled, _ := d.Step()
		if handled {
			continue
		}
		if f, ok := d.keys.(finite); ok && f.Done() {
			d.log.Info().Msg("key source exhausted")
			return nil
		}
		if d.cfg.PollInterval > 0 {
			d.sleep(d.cfg.PollInterval)
		}
	}
}
