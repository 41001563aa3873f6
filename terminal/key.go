package terminal

import "github.com/gdamore/tcell/v2"

// Key identifies a key the game can poll for. Printable keys are their
// rune code points; special keys use negative values so the two ranges
// cannot collide.
type Key int32

// KeyNone is returned for events the game does not care about.
const KeyNone Key = 0

const (
	KeyUp Key = -1 - iota
	KeyDown
	KeyLeft
	KeyRight
)

// keyFromEvent maps a tcell key event onto the game's key space.
func keyFromEvent(ev *tcell.EventKey) Key {
	switch ev.Key() {
	case tcell.KeyUp:
		return KeyUp
	case tcell.KeyDown:
		return KeyDown
	case tcell.KeyLeft:
		return KeyLeft
	case tcell.KeyRight:
		return KeyRight
	case tcell.KeyRune:
		return Key(ev.Rune())
	}
	return KeyNone
}
