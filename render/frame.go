package render

import (
	"strconv"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/engine"
)

// BuildFrame lays the state out as one string per grid row followed by the score line
// Precedence per cell: border, snake, food, empty
func BuildFrame(state *engine.GameState) []string {
	grid := make([][]rune, state.Height)
	for y := range grid {
		grid[y] = make([]rune, state.Width)
		for x := range grid[y] {
			if y == 0 || y == state.Height-1 || x == 0 || x == state.Width-1 {
				grid[y][x] = constants.BorderGlyph
			} else {
				grid[y][x] = constants.EmptyGlyph
			}
		}
	}

	if !state.IsBorder(state.Food) {
		grid[state.Food.Row][state.Food.Col] = constants.FoodGlyph
	}
	for _, p := range state.Snake {
		if !state.IsBorder(p) {
			grid[p.Row][p.Col] = constants.SnakeGlyph
		}
	}

	lines := make([]string, 0, state.Height+1)
	for _, row := range grid {
		lines = append(lines, string(row))
	}
	return append(lines, constants.ScorePrefix+strconv.Itoa(state.Score))
}
