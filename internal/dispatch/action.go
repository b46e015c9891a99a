package dispatch

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/coreman2200/funtimes-keymatrix/internal/color"
	"github.com/coreman2200/funtimes-keymatrix/internal/frames"
	"github.com/coreman2200/funtimes-keymatrix/internal/keypad"
	"github.com/coreman2200/funtimes-keymatrix/internal/player"
)

// ActionKind tags the variant held by an Action.
type ActionKind int

const (
	NoOp ActionKind = iota
	PlaySequence
	FillSolid
	TurnOff
)

func (k ActionKind) String() string {
	switch k {
	case NoOp:
		return "noop"
	case PlaySequence:
		return "play-sequence"
	case FillSolid:
		return "fill-solid"
	case TurnOff:
		return "turn-off"
	default:
		return fmt.Sprintf("ActionKind(%d)", int(k))
	}
}

// Action is what a key press does. Sequence, Blend and Color are only
// meaningful for PlaySequence and FillSolid.
type Action struct {
	Kind     ActionKind
	Sequence frames.Name
	Blend    player.Blend
	Color    colorful.Color
}

func (a Action) String() string {
	switch a.Kind {
	case PlaySequence, FillSolid:
		return fmt.Sprintf("%s(%s)", a.Kind, a.Sequence)
	default:
		return a.Kind.String()
	}
}

// Play is a PlaySequence action.
func Play(seq frames.Name, blend player.Blend, c colorful.Color) Action {
	return Action{Kind: PlaySequence, Sequence: seq, Blend: blend, Color: c}
}

// Fill is a FillSolid action over a single-frame fill sequence.
func Fill(seq frames.Name, c colorful.Color) Action {
	return Action{Kind: FillSolid, Sequence: seq, Blend: player.Blend{Mode: player.SolidFill}, Color: c}
}

// Off is the TurnOff action.
func Off() Action {
	return Action{Kind: TurnOff, Sequence: frames.Off, Blend: player.Blend{Mode: player.SolidFill}, Color: color.Black}
}

// Bindings maps keys to actions. Keys without an entry resolve to NoOp.
type Bindings map[keypad.KeyCode]Action

// Lookup returns the action bound to k.
func (b Bindings) Lookup(k keypad.KeyCode) Action {
	if a, ok := b[k]; ok {
		return a
	}
	return Action{Kind: NoOp}
}

// ForSequence returns the action of the first key, in keypad order, that
// plays seq.
func (b Bindings) ForSequence(seq frames.Name) (Action, bool) {
	for _, k := range keypad.All() {
		a, ok := b[k]
		if ok && (a.Kind == PlaySequence || a.Kind == FillSolid) && a.Sequence == seq {
			return a, true
		}
	}
	return Action{}, false
}

// SequenceAction plays seq the way its key does, or with a default blend
// when no key plays it.
func (b Bindings) SequenceAction(seq frames.Name) Action {
	if a, ok := b.ForSequence(seq); ok {
		return a
	}
	if seq == frames.Off {
		return Off()
	}
	if frames.Get(seq).IsColored() {
		return Play(seq, player.Blend{Mode: player.Palette}, color.Black)
	}
	return Play(seq, uniform(color.Red), color.Black)
}

func uniform(ch color.Channel) player.Blend {
	return player.Blend{Mode: player.UniformColor, Channel: ch}
}

// DefaultBindings is the stock key map. counting picks the sequence bound
// to key 6.
func DefaultBindings(counting frames.Name) Bindings {
	return Bindings{
		keypad.Key0: Play(frames.Heart, uniform(color.Red), color.Black),
		keypad.Key1: Play(frames.Square, uniform(color.Blue), color.Black),
		keypad.Key2: Play(frames.Arrows, uniform(color.Green), color.RGB(0, 0, 0.1)),
		keypad.Key3: Play(frames.Ghost, player.Blend{Mode: player.Palette}, color.Black),
		keypad.Key4: Play(frames.Letter, uniform(color.Blue), color.RGB(0.1, 0, 0)),
		// the rings are computed but the flash is drawn solid
		keypad.Key5: Play(frames.Explosion, player.Blend{Mode: player.SolidFill}, color.RGB(1, 0.4, 0)),
		keypad.Key6: Play(counting, uniform(color.Red), color.Black),
		keypad.Key7: Play(frames.Drawing, player.Blend{Mode: player.WeightedBicolor}, color.Black),
		keypad.Key8: Play(frames.Cross, player.Blend{Mode: player.WeightedBicolor}, color.Black),
		keypad.Key9: {Kind: NoOp},

		keypad.KeyA:    Off(),
		keypad.KeyB:    Fill(frames.FillBlue, color.RGB(0, 0, 1)),
		keypad.KeyC:    Fill(frames.FillRed, color.RGB(1, 0, 0)),
		keypad.KeyD:    Fill(frames.FillGreen, color.RGB(0, 0.5, 0)),
		keypad.KeyHash: Fill(frames.FillWhite, color.RGB(0.2, 0.2, 0.2)),
		keypad.KeyStar: {Kind: NoOp},
	}
}
