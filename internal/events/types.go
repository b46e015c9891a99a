package events

import "time"

// Event type constants for kelindar/event.
const (
	TypeKeyPressed uint32 = iota + 1
	TypeAnimationPlayed
)

// Event interface required by kelindar/event.
type Event interface {
	Type() uint32
}

// KeyPressedEvent is published once per handled key press.
type KeyPressedEvent struct {
	Key    string
	Action string
	At     time.Time
}

// Type returns the event type identifier for KeyPressedEvent.
func (e KeyPressedEvent) Type() uint32 { return TypeKeyPressed }

// AnimationPlayedEvent is published after a sequence finished playing.
type AnimationPlayedEvent struct {
	Sequence string
	Mode     string
	Frames   int
	Words    int
	Elapsed  time.Duration
	Err      error
}

// Type returns the event type identifier for AnimationPlayedEvent.
func (e AnimationPlayedEvent) Type() uint32 { return TypeAnimationPlayed }
