package game

import (
	"fmt"

	"github.com/lixenwraith/snake/audio"
	"github.com/lixenwraith/snake/constants"
	"github.com/lixenwraith/snake/engine"
	"github.com/lixenwraith/snake/terminal"
)

// LoseState is the screen shown after a self-collision. It keeps only a
// snapshot of the final score; the dead session is discarded on replay.
type LoseState struct {
	score  int
	sounds *audio.Player
}

// NewLoseState snapshots the final score.
func NewLoseState(score int, sounds *audio.Player) *LoseState {
	return &LoseState{score: score, sounds: sounds}
}

func (ls *LoseState) Setup(con engine.Console) {}

// Update waits at the replay prompt: y starts a fresh session, n or q
// quits, anything else keeps waiting.
func (ls *LoseState) Update(con engine.Console) engine.Transition {
	if con.IsKeyPressed(terminal.Key('y')) {
		return engine.Replace(NewPlayState(ls.sounds))
	}
	if con.IsKeyPressed(terminal.Key('n')) || con.IsKeyPressed(terminal.Key('q')) {
		return engine.Quit()
	}
	return engine.Continue()
}

// Render paces the frame here, since Update only polls keys.
func (ls *LoseState) Render(con engine.Console) {
	con.WaitFrame()
	con.Print(0, 0, fmt.Sprintf(constants.DeathFormat, ls.score))
	con.Print(0, 1, constants.ReplayPrompt)
	con.Flush()
}
