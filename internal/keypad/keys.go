// Package keypad reads key presses from a 4x4 matrix keypad.
package keypad

import (
	"errors"
	"fmt"
)

// KeyCode is one of the 16 symbols printed on the keypad.
type KeyCode byte

const (
	Key0    KeyCode = '0'
	Key1    KeyCode = '1'
	Key2    KeyCode = '2'
	Key3    KeyCode = '3'
	Key4    KeyCode = '4'
	Key5    KeyCode = '5'
	Key6    KeyCode = '6'
	Key7    KeyCode = '7'
	Key8    KeyCode = '8'
	Key9    KeyCode = '9'
	KeyA    KeyCode = 'A'
	KeyB    KeyCode = 'B'
	KeyC    KeyCode = 'C'
	KeyD    KeyCode = 'D'
	KeyHash KeyCode = '#'
	KeyStar KeyCode = '*'
)

// Layout is the physical key arrangement, row by row.
var Layout = [Rows][Cols]KeyCode{
	{Key1, Key2, Key3, KeyA},
	{Key4, Key5, Key6, KeyB},
	{Key7, Key8, Key9, KeyC},
	{KeyStar, Key0, KeyHash, KeyD},
}

const (
	Rows = 4
	Cols = 4
)

var ErrUnknownKey = errors.New("unknown key")

// All returns the 16 key codes in layout order.
func All() []KeyCode {
	out := make([]KeyCode, 0, Rows*Cols)
	for _, row := range Layout {
		out = append(out, row[:]...)
	}
	return out
}

// Valid reports whether k is one of the keypad symbols.
func (k KeyCode) Valid() bool {
	for _, row := range Layout {
		for _, c := range row {
			if c == k {
				return true
			}
		}
	}
	return false
}

func (k KeyCode) String() string {
	if !k.Valid() {
		return fmt.Sprintf("KeyCode(%d)", byte(k))
	}
	return string(rune(k))
}

// ParseKey resolves a single key symbol; letters are case-insensitive.
func ParseKey(s string) (KeyCode, error) {
	if len(s) != 1 {
		return 0, fmt.Errorf("%w: %q", ErrUnknownKey, s)
	}
	c := s[0]
	if c >= 'a' && c <= 'd' {
		c -= 'a' - 'A'
	}
	k := KeyCode(c)
	if !k.Valid() {
		return 0, fmt.Errorf("%w: %q", ErrUnknownKey, s)
	}
	return k, nil
}

// Source yields the key currently held down, if any. Poll must not block
// for longer than its settle time.
type Source interface {
	Poll() (KeyCode, bool)
}
