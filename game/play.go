// Package game implements the snake session itself: the snake, the food,
// and the two states of the play/lose machine.
package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snake/audio"
	"github.com/lixenwraith/snake/constants"
	"github.com/lixenwraith/snake/engine"
	"github.com/lixenwraith/snake/terminal"
	"github.com/lixenwraith/snake/vmath"
)

var backgroundStyle = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)

// PlayState runs one play session: it owns the snake, the food, the score
// and the per-tick rules. A replay gets a brand new PlayState.
type PlayState struct {
	rng    *rand.Rand
	player *Snake
	score  int
	food   Food
	sounds *audio.Player
}

// NewPlayState creates a fresh session with the snake at its starting cell.
func NewPlayState(sounds *audio.Player) *PlayState {
	return &PlayState{
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		player: NewSnake(0, 1),
		food:   NewFood(0, 0),
		sounds: sounds,
	}
}

// Setup randomizes the food and parks the snake until the first keypress.
func (ps *PlayState) Setup(con engine.Console) {
	ps.moveFood()
	ps.player.Velocity = vmath.Vec2{}
}

// Update applies one tick of game rules: eating first, then the
// self-collision check against the pre-input head position, then input,
// then movement. A collision tick returns immediately, so no input or
// movement is applied on the frame the player dies.
func (ps *PlayState) Update(con engine.Console) engine.Transition {
	con.WaitFrame()

	if ps.player.Location == ps.food.Location {
		ps.score++
		ps.player.Grow()
		ps.moveFood()
		ps.sounds.PlayEat()
	}

	if ps.player.HitsBody(ps.player.Location) {
		ps.sounds.PlayDeath()
		return engine.Push(NewLoseState(ps.score, ps.sounds))
	}

	// Each direction key zeroes the orthogonal axis, so diagonal movement
	// is impossible and the last checked held key wins.
	if con.IsKeyPressed(terminal.KeyUp) {
		ps.player.Velocity = vmath.Vec2{X: 0, Y: -1}
	}
	if con.IsKeyPressed(terminal.KeyDown) {
		ps.player.Velocity = vmath.Vec2{X: 0, Y: 1}
	}
	if con.IsKeyPressed(terminal.KeyLeft) {
		ps.player.Velocity = vmath.Vec2{X: -1, Y: 0}
	}
	if con.IsKeyPressed(terminal.KeyRight) {
		ps.player.Velocity = vmath.Vec2{X: 1, Y: 0}
	}
	if con.IsKeyPressed(terminal.Key('q')) {
		return engine.Quit()
	}
	if con.IsKeyPressed(terminal.Key('g')) {
		// Debug key: grow without scoring.
		ps.player.Grow()
	}

	ps.player.Update()

	return engine.Continue()
}

// Render draws the whole frame: background, score line, snake, food.
func (ps *PlayState) Render(con engine.Console) {
	con.Fill(constants.GlyphBackground, backgroundStyle)
	con.Print(0, 0, fmt.Sprintf(constants.ScoreFormat, ps.score))
	ps.player.Draw(con)
	ps.food.Draw(con)
	con.Flush()
}

// moveFood relocates the food to a uniform-random cell. Row and column 0
// are excluded from the range.
func (ps *PlayState) moveFood() {
	ps.food.Location = vmath.Vec2{
		X: 1 + ps.rng.Intn(constants.BoardWidth-1),
		Y: 1 + ps.rng.Intn(constants.BoardHeight-1),
	}
}
