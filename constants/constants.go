// Package constants holds the fixed board geometry and shared glyphs.
package constants

// Board dimensions in character cells. The terminal must be at least this
// large or the game refuses to start.
const (
	BoardWidth  = 80
	BoardHeight = 20
)

// DefaultFPS is the fixed tick rate of the game loop.
const DefaultFPS = 10

// Glyphs used by the renderers.
const (
	GlyphHead       = '@'
	GlyphBody       = '#'
	GlyphFood       = '*'
	GlyphBackground = '.'
)

// User-facing text shared between render code and tests.
const (
	ScoreFormat  = "Score: %d"
	DeathFormat  = "You died!  You got %d points!"
	ReplayPrompt = "Play again? (y / n)"
)
