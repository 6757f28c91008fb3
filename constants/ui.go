package constants

// Frame Glyphs
const (
	BorderGlyph = '#'
	SnakeGlyph  = 'O'
	FoodGlyph   = '*'
	EmptyGlyph  = ' '
)

// ScorePrefix precedes the score on the line below the grid
const ScorePrefix = "Score: "
