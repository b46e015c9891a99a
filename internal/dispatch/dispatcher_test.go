package dispatch

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coreman2200/funtimes-keymatrix/internal/color"
	"github.com/coreman2200/funtimes-keymatrix/internal/events"
	"github.com/coreman2200/funtimes-keymatrix/internal/frames"
	"github.com/coreman2200/funtimes-keymatrix/internal/keypad"
	"github.com/coreman2200/funtimes-keymatrix/internal/led"
	"github.com/coreman2200/funtimes-keymatrix/internal/player"
)

type harness struct {
	d      *Dispatcher
	rec    *led.Recorder
	sleeps []time.Duration
}

func newHarness(src keypad.Source, opts ...Option) *harness {
	h := &harness{rec: &led.Recorder{}}
	sleep := func(d time.Duration) { h.sleeps = append(h.sleeps, d) }
	p := player.New(h.rec, player.WithSleep(sleep))
	opts = append([]Option{WithSleep(sleep)}, opts...)
	h.d = New(src, p, DefaultBindings(frames.CountDown), Config{PollInterval: DefaultPollInterval}, opts...)
	return h
}

func TestEveryKeyIsBound(t *testing.T) {
	b := DefaultBindings(frames.CountDown)
	assert.Len(t, b, 16)
	for _, k := range keypad.All() {
		a, ok := b[k]
		require.True(t, ok, "key %s", k)
		switch a.Kind {
		case NoOp, TurnOff:
		case PlaySequence, FillSolid:
			assert.NotPanics(t, func() { frames.Get(a.Sequence) }, "key %s", k)
			if a.Blend.Mode == player.Palette {
				assert.True(t, frames.Get(a.Sequence).IsColored())
			}
		default:
			t.Errorf("key %s bound to %v", k, a.Kind)
		}
	}
}

func TestHashSelectsWhiteFill(t *testing.T) {
	a := DefaultBindings(frames.CountDown).Lookup(keypad.KeyHash)
	assert.Equal(t, FillSolid, a.Kind)
	assert.Equal(t, frames.FillWhite, a.Sequence)
	assert.Equal(t, player.SolidFill, a.Blend.Mode)
	assert.Equal(t, color.RGB(0.2, 0.2, 0.2), a.Color)
	assert.Equal(t, "fill-solid(fill-white)", a.String())
}

func TestUnboundKeyIsNoOp(t *testing.T) {
	assert.Equal(t, NoOp, Bindings{}.Lookup(keypad.Key1).Kind)
	assert.Equal(t, "noop", Bindings{}.Lookup(keypad.Key1).String())
}

func TestKeyATurnsOff(t *testing.T) {
	h := newHarness(nil)
	require.NoError(t, h.d.Handle(keypad.KeyA))
	words := h.rec.Words()
	require.Len(t, words, frames.PixelCount)
	for _, w := range words {
		assert.Equal(t, uint32(0), w)
	}
	assert.Equal(t, []time.Duration{DefaultDebounce}, h.sleeps)
}

func TestKeyCFillsRed(t *testing.T) {
	h := newHarness(nil)
	require.NoError(t, h.d.Handle(keypad.KeyC))
	words := h.rec.Words()
	require.Len(t, words, frames.PixelCount)
	for _, w := range words {
		assert.Equal(t, color.EncodeRGB(1, 0, 0), w)
	}
}

func TestKey6Counts(t *testing.T) {
	h := newHarness(nil)
	require.NoError(t, h.d.Handle(keypad.Key6))
	assert.Len(t, h.rec.Words(), 6*frames.PixelCount)
	assert.Equal(t, []time.Duration{
		time.Second, time.Second, time.Second, time.Second, time.Second,
		DefaultDebounce,
	}, h.sleeps)
}

func TestNoOpKeysEmitNothing(t *testing.T) {
	h := newHarness(nil)
	require.NoError(t, h.d.Handle(keypad.Key9))
	require.NoError(t, h.d.Handle(keypad.KeyStar))
	assert.Empty(t, h.rec.Words())
	assert.Equal(t, []time.Duration{DefaultDebounce, DefaultDebounce}, h.sleeps)
}

// stateProbe records the dispatcher state seen at each emitted word.
type stateProbe struct {
	d    *Dispatcher
	seen map[State]int
}

func (s *stateProbe) Emit(uint32) error {
	s.seen[s.d.State]++
	return nil
}

func (s *stateProbe) Close() error { return nil }

func TestStateDuringPlayback(t *testing.T) {
	probe := &stateProbe{seen: map[State]int{}}
	d := New(keypad.NewScript(strings.NewReader("B")), player.New(probe), DefaultBindings(frames.CountDown),
		Config{}, WithSleep(func(time.Duration) {}))
	probe.d = d

	assert.Equal(t, Idle, d.State)
	handled, err := d.Step()
	require.NoError(t, err)
	assert.True(t, handled)
	assert.Equal(t, map[State]int{Debounce: frames.PixelCount}, probe.seen)
	assert.Equal(t, Idle, d.State)

	handled, err = d.Step()
	require.NoError(t, err)
	assert.False(t, handled)
}

func TestPlaybackErrorIsReturned(t *testing.T) {
	h := newHarness(nil)
	h.rec.Fail = errors.New("strip unplugged")
	err := h.d.Handle(keypad.KeyB)
	require.Error(t, err)
	assert.Equal(t, Idle, h.d.State)
	assert.Equal(t, []time.Duration{DefaultDebounce}, h.sleeps)
}

func TestRunStopsWhenScriptEnds(t *testing.T) {
	script := keypad.NewScript(strings.NewReader("A C #"))
	rec := &led.Recorder{}
	var polls int
	sleep := func(d time.Duration) {
		if d == DefaultPollInterval {
			polls++
		}
	}
	d := New(script, player.New(rec, player.WithSleep(sleep)), DefaultBindings(frames.CountDown),
		Config{PollInterval: DefaultPollInterval}, WithSleep(sleep))

	require.NoError(t, d.Run(context.Background()))
	assert.True(t, script.Done())
	assert.Len(t, rec.Words(), 3*frames.PixelCount)
	assert.Zero(t, polls)
}

// idleKeys never reports a press and never runs out.
type idleKeys struct{}

func (idleKeys) Poll() (keypad.KeyCode, bool) { return 0, false }

func TestRunUntilCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var polls int
	sleep := func(d time.Duration) {
		if d == DefaultPollInterval {
			polls++
			if polls == 3 {
				cancel()
			}
		}
	}
	d := New(idleKeys{}, player.New(&led.Recorder{}), DefaultBindings(frames.CountDown),
		Config{PollInterval: DefaultPollInterval}, WithSleep(sleep))

	assert.ErrorIs(t, d.Run(ctx), context.Canceled)
	assert.Equal(t, 3, polls)
}

func TestKeyPressedEvent(t *testing.T) {
	bus := events.New()
	defer bus.Close()
	got := make(chan events.KeyPressedEvent, 1)
	defer bus.Subscribe(func(e events.KeyPressedEvent) { got <- e })()

	h := newHarness(nil, WithBus(bus))
	require.NoError(t, h.d.Handle(keypad.KeyHash))

	select {
	case e := <-got:
		assert.Equal(t, "#", e.Key)
		assert.Equal(t, "fill-solid(fill-white)", e.Action)
	case <-time.After(time.Second):
		t.Fatal("no KeyPressedEvent")
	}
}

func TestExecuteCountUp(t *testing.T) {
	rec := &led.Recorder{}
	d := New(nil, player.New(rec, player.WithSleep(func(time.Duration) {})), DefaultBindings(frames.CountUp), Config{})
	require.NoError(t, d.Execute(d.bindings.Lookup(keypad.Key6)))
	assert.Len(t, rec.Frames(frames.PixelCount), 6)
	assert.Error(t, d.Execute(Action{Kind: ActionKind(42)}))
}

func TestSequenceAction(t *testing.T) {
	b := DefaultBindings(frames.CountDown)

	a := b.SequenceAction(frames.Ghost)
	assert.Equal(t, b.Lookup(keypad.Key3), a)

	a = b.SequenceAction(frames.FillWhite)
	assert.Equal(t, b.Lookup(keypad.KeyHash), a)

	a = b.SequenceAction(frames.CountUp)
	assert.Equal(t, PlaySequence, a.Kind)
	assert.Equal(t, player.UniformColor, a.Blend.Mode)

	assert.Equal(t, TurnOff, b.SequenceAction(frames.Off).Kind)

	_, ok := Bindings{}.ForSequence(frames.Heart)
	assert.False(t, ok)
	assert.Equal(t, player.Palette, Bindings{}.SequenceAction(frames.Ghost).Blend.Mode)
}
