// Package engine drives the active game state through a setup/update/render
// cycle and interprets the transitions states return.
package engine

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snake/terminal"
)

// Console is the display and input boundary states draw to and poll.
// *terminal.Console implements it; tests substitute fakes.
type Console interface {
	// WaitFrame blocks until the next paced frame boundary.
	WaitFrame()
	// IsKeyPressed reports whether the key was pressed during the last frame.
	IsKeyPressed(k terminal.Key) bool

	Fill(ch rune, style tcell.Style)
	SetCell(x, y int, ch rune, style tcell.Style)
	Print(x, y int, text string)
	Flush()
}

// State is one node of the game's state machine. Setup runs once when the
// state becomes active; the runner then alternates Update and Render once
// per frame until Update returns a non-Continue transition.
type State interface {
	Setup(con Console)
	Update(con Console) Transition
	Render(con Console)
}
