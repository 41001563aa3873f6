package game

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snake/constants"
	"github.com/lixenwraith/snake/engine"
	"github.com/lixenwraith/snake/vmath"
)

var foodStyle = tcell.StyleDefault.Foreground(tcell.ColorRed)

// Food is the single growth pickup. The play state relocates it when it is
// eaten; it is never recreated.
type Food struct {
	Location vmath.Vec2
}

// NewFood places the food at (x, y).
func NewFood(x, y int) Food {
	return Food{Location: vmath.Vec2{X: x, Y: y}}
}

// Draw renders the food glyph.
func (f Food) Draw(con engine.Console) {
	con.SetCell(f.Location.X, f.Location.Y, constants.GlyphFood, foodStyle)
}
