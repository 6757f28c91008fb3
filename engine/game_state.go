package engine

import (
	"log"

	"github.com/pkg/errors"
	"golang.org/x/exp/slices"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
)

// Phase is the game state machine: Running until a terminal condition, then Terminated for good
type Phase uint8

const (
	PhaseRunning Phase = iota
	PhaseTerminated
)

func (p Phase) String() string {
	if p == PhaseRunning {
		return "running"
	}
	return "terminated"
}

// EndReason records which terminal condition fired
type EndReason uint8

const (
	EndNone EndReason = iota
	EndWall
	EndSelf
	EndQuit
	EndBoardFull
)

func (r EndReason) String() string {
	switch r {
	case EndWall:
		return "wall"
	case EndSelf:
		return "self"
	case EndQuit:
		return "quit"
	case EndBoardFull:
		return "board-full"
	}
	return "none"
}

var ErrGridTooSmall = errors.New("grid too small for initial snake")

// GameState owns everything the simulation step mutates
type GameState struct {
	Width, Height int

	// Head at index 0, tail last
	Snake     []core.Point
	Food      core.Point
	Direction core.Direction
	Score     int

	Phase  Phase
	Reason EndReason

	rng RandSource
}

// StepResult reports what a simulation step did
type StepResult struct {
	Moved bool
	Ate   bool
}

// NewGameState seeds a snake of length cells on row height/2, head at column width/4,
// body trailing to the left, heading right, and places the first food
func NewGameState(width, height, length int, rng RandSource) (*GameState, error) {
	row := height / 2
	headCol := width / 4
	if length < 1 || row < 1 || row > height-2 || headCol > width-2 || headCol-(length-1) < 1 {
		return nil, errors.Wrapf(ErrGridTooSmall, "%dx%d grid, length %d", width, height, length)
	}

	snake := make([]core.Point, 0, length)
	for i := 0; i < length; i++ {
		snake = append(snake, core.Point{Row: row, Col: headCol - i})
	}

	g := &GameState{
		Width:     width,
		Height:    height,
		Snake:     snake,
		Direction: core.DirRight,
		rng:       rng,
	}
	if !g.placeFood() {
		return nil, errors.Wrap(ErrGridTooSmall, "no free cell for food")
	}
	return g, nil
}

// NewDefaultGameState creates the standard 40x20 game
func NewDefaultGameState(rng RandSource) (*GameState, error) {
	return NewGameState(constants.GridWidth, constants.GridHeight, constants.InitialSnakeLength, rng)
}

// Running reports whether the game has not yet terminated
func (g *GameState) Running() bool {
	return g.Phase == PhaseRunning
}

// Head returns the first snake cell
func (g *GameState) Head() core.Point {
	return g.Snake[0]
}

// Turn changes heading unless dir is the direct reverse of the current heading
func (g *GameState) Turn(dir core.Direction) bool {
	if dir == g.Direction.Opposite() {
		return false
	}
	g.Direction = dir
	return true
}

// Quit ends the game on player request
func (g *GameState) Quit() {
	g.terminate(EndQuit)
}

// Step advances the snake one cell in the current direction
// Collision is checked against the body after the tail pop when not eating, the full body when eating
// A terminating step leaves snake, food and score untouched
func (g *GameState) Step() StepResult {
	if !g.Running() {
		return StepResult{}
	}

	head := g.Head().Add(g.Direction.Delta())
	ate := head == g.Food

	body := g.Snake
	if !ate {
		body = g.Snake[:len(g.Snake)-1]
	}

	if g.IsBorder(head) {
		g.terminate(EndWall)
		return StepResult{}
	}
	if slices.Contains(body, head) {
		g.terminate(EndSelf)
		return StepResult{}
	}

	if ate {
		g.Score++
		g.Snake = append(g.Snake, core.Point{})
	}
	copy(g.Snake[1:], g.Snake[:len(g.Snake)-1])
	g.Snake[0] = head

	if ate && !g.placeFood() {
		g.terminate(EndBoardFull)
	}
	return StepResult{Moved: true, Ate: ate}
}

// IsBorder reports whether p lies on the impassable outer ring (or outside the grid)
func (g *GameState) IsBorder(p core.Point) bool {
	return p.Row <= 0 || p.Row >= g.Height-1 || p.Col <= 0 || p.Col >= g.Width-1
}

// Occupies reports whether the snake covers p
func (g *GameState) Occupies(p core.Point) bool {
	return slices.Contains(g.Snake, p)
}

// placeFood samples interior cells uniformly, rejecting snake cells
// Falls back to picking among the remaining free cells when sampling keeps hitting the snake
func (g *GameState) placeFood() bool {
	for i := 0; i < constants.FoodPlacementAttempts; i++ {
		p := core.Point{
			Row: 1 + g.rng.Intn(g.Height-2),
			Col: 1 + g.rng.Intn(g.Width-2),
		}
		if !g.Occupies(p) {
			g.Food = p
			return true
		}
	}

	free := g.freeCells()
	if len(free) == 0 {
		log.Printf("food placement: no free interior cell, snake length %d", len(g.Snake))
		return false
	}
	log.Printf("food placement: sampling exhausted, picking among %d free cells", len(free))
	g.Food = free[g.rng.Intn(len(free))]
	return true
}

func (g *GameState) freeCells() []core.Point {
	occupied := make(map[core.Point]bool, len(g.Snake))
	for _, p := range g.Snake {
		occupied[p] = true
	}
	var free []core.Point
	for row := 1; row < g.Height-1; row++ {
		for col := 1; col < g.Width-1; col++ {
			p := core.Point{Row: row, Col: col}
			if !occupied[p] {
				free = append(free, p)
			}
		}
	}
	return free
}

func (g *GameState) terminate(reason EndReason) {
	if !g.Running() {
		return
	}
	g.Phase = PhaseTerminated
	g.Reason = reason
	log.Printf("game over: reason=%s score=%d length=%d", reason, g.Score, len(g.Snake))
}
