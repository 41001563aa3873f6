package terminal

import (
	"io"
	"os"
)

var (
	csiCursorShow    = []byte("\x1b[?25h")
	csiAltScreenExit = []byte("\x1b[?1049l")
	csiSGR0          = []byte("\x1b[0m")
	csiAutoWrapOn    = []byte("\x1b[?7h")
	csiRIS           = []byte("\x1bc") // Reset to Initial State
)

// EmergencyReset restores the terminal to a usable state without going
// through a Console. It is for panic paths where the tcell screen may be
// in an unknown state.
func EmergencyReset(w io.Writer) {
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)
	w.Write(csiRIS)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}
}
