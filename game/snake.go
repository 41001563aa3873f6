package game

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snake/constants"
	"github.com/lixenwraith/snake/engine"
	"github.com/lixenwraith/snake/vmath"
)

var (
	headStyle = tcell.StyleDefault.Foreground(tcell.ColorDarkGreen)
	bodyStyle = tcell.StyleDefault.Foreground(tcell.ColorGreen)
)

// BodySegment is one cell of the snake's trailing chain.
type BodySegment struct {
	Location vmath.Vec2
}

// Snake is the player: a head with a velocity and an ordered chain of body
// segments that mirrors the head's path history. The front of the chain is
// the segment closest to the head.
type Snake struct {
	Location vmath.Vec2
	Velocity vmath.Vec2

	// prev is the head's location before its last move. It is only valid
	// once hasPrev is set, which requires a nonzero-velocity tick.
	prev    vmath.Vec2
	hasPrev bool

	body segmentRing
}

// NewSnake places the head at (x, y) with zero velocity and no body.
func NewSnake(x, y int) *Snake {
	return &Snake{Location: vmath.Vec2{X: x, Y: y}}
}

// Update advances the snake one tick: move the head by the velocity, wrap
// it onto the board, then shift the body chain one cell along the path by
// moving the tail segment to the head's previous location.
//
// The wrap is asymmetric: crossing the upper bound lands on 0, while
// crossing 0 lands on the bound itself rather than the last cell. That is
// long-standing observable behavior and is kept as is.
func (s *Snake) Update() {
	if !s.Velocity.IsZero() {
		s.prev = s.Location
		s.hasPrev = true
	}

	s.Location.Add(s.Velocity)
	if s.Location.X > constants.BoardWidth {
		s.Location.X = 0
	}
	if s.Location.X < 0 {
		s.Location.X = constants.BoardWidth
	}
	if s.Location.Y > constants.BoardHeight {
		s.Location.Y = 0
	}
	if s.Location.Y < 0 {
		s.Location.Y = constants.BoardHeight
	}

	if s.body.len() > 0 {
		seg := s.body.popBack()
		seg.Location = s.prev
		s.body.pushFront(seg)
	}
}

// Grow inserts a new segment at the head's previous location. Before the
// first move there is no previous location and growing does nothing.
func (s *Snake) Grow() {
	if !s.hasPrev {
		return
	}
	s.body.pushFront(BodySegment{Location: s.prev})
}

// Len returns the number of body segments.
func (s *Snake) Len() int {
	return s.body.len()
}

// HitsBody reports whether loc coincides with any body segment.
func (s *Snake) HitsBody(loc vmath.Vec2) bool {
	for i := 0; i < s.body.len(); i++ {
		if s.body.at(i).Location == loc {
			return true
		}
	}
	return false
}

// Draw renders the head and every body segment. The chain order does not
// matter for drawing.
func (s *Snake) Draw(con engine.Console) {
	con.SetCell(s.Location.X, s.Location.Y, constants.GlyphHead, headStyle)
	for i := 0; i < s.body.len(); i++ {
		seg := s.body.at(i)
		con.SetCell(seg.Location.X, seg.Location.Y, constants.GlyphBody, bodyStyle)
	}
}
