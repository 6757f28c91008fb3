package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/terminal"
)

// RGB colors per glyph
var (
	RgbBorder = tcell.NewRGBColor(86, 95, 137)   // Muted blue-gray
	RgbSnake  = tcell.NewRGBColor(158, 206, 106) // Green
	RgbFood   = tcell.NewRGBColor(247, 118, 142) // Red-pink
)

// ApplyPalette registers glyph styles on the screen
func ApplyPalette(s *terminal.Screen) {
	s.SetStyle(constants.BorderGlyph, tcell.StyleDefault.Foreground(RgbBorder))
	s.SetStyle(constants.SnakeGlyph, tcell.StyleDefault.Foreground(RgbSnake).Bold(true))
	s.SetStyle(constants.FoodGlyph, tcell.StyleDefault.Foreground(RgbFood).Bold(true))
}
