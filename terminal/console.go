// Package terminal is the display and input boundary: a fixed-size
// character grid over a tcell screen with a paced frame clock and
// per-frame key polling.
package terminal

import (
	"errors"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
)

// ErrTooSmall is returned by New when the terminal cannot fit the board.
var ErrTooSmall = errors.New("terminal too small")

// Console owns the tcell screen and the frame clock. Game code only ever
// touches it from the single frame-loop goroutine; the event poller
// communicates through the events channel.
type Console struct {
	screen tcell.Screen
	width  int
	height int

	ticker  *time.Ticker
	events  chan tcell.Event
	stop    chan struct{}
	pressed map[Key]bool
}

// New initializes the terminal and verifies it can fit a width x height
// board at the given tick rate. On success the event poller goroutine is
// already running; the caller must Fini.
func New(width, height, fps int) (*Console, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}

	tw, th := screen.Size()
	if tw < width || th < height {
		screen.Fini()
		return nil, fmt.Errorf("%w: the screen must be at least %d x %d characters, got %d x %d",
			ErrTooSmall, width, height, tw, th)
	}

	c := &Console{
		screen:  screen,
		width:   width,
		height:  height,
		ticker:  time.NewTicker(time.Second / time.Duration(fps)),
		events:  make(chan tcell.Event, 64),
		stop:    make(chan struct{}),
		pressed: make(map[Key]bool),
	}
	go c.poll()
	return c, nil
}

// poll forwards tcell events to the frame loop. It exits when the screen
// is finalized (PollEvent returns nil) or when Fini closes stop.
func (c *Console) poll() {
	for {
		ev := c.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case c.events <- ev:
		case <-c.stop:
			return
		}
	}
}

// WaitFrame blocks until the next paced frame boundary, then rebuilds the
// pressed-key set from the events that arrived since the previous frame.
// This is the game loop's single suspension point.
func (c *Console) WaitFrame() {
	<-c.ticker.C
	clear(c.pressed)
	for {
		select {
		case ev := <-c.events:
			if key, ok := ev.(*tcell.EventKey); ok {
				if k := keyFromEvent(key); k != KeyNone {
					c.pressed[k] = true
				}
			}
		default:
			return
		}
	}
}

// IsKeyPressed reports whether the key was pressed during the last frame.
func (c *Console) IsKeyPressed(k Key) bool {
	return c.pressed[k]
}

// Fill covers the whole board with a single glyph.
func (c *Console) Fill(ch rune, style tcell.Style) {
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			c.screen.SetContent(x, y, ch, nil, style)
		}
	}
}

// SetCell draws one glyph. Writes outside the board are dropped.
func (c *Console) SetCell(x, y int, ch rune, style tcell.Style) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.screen.SetContent(x, y, ch, nil, style)
}

// Print draws text starting at (x, y), clipped to the board edge.
func (c *Console) Print(x, y int, text string) {
	if y < 0 || y >= c.height {
		return
	}
	col := x
	for _, ch := range text {
		if col >= c.width {
			return
		}
		if col >= 0 {
			c.screen.SetContent(col, y, ch, nil, tcell.StyleDefault)
		}
		col++
	}
}

// Flush pushes the frame buffer to the terminal.
func (c *Console) Flush() {
	c.screen.Show()
}

// Fini stops frame pacing and restores the terminal.
func (c *Console) Fini() {
	c.ticker.Stop()
	close(c.stop)
	c.screen.Fini()
}
