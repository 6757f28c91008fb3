package constants

import "time"

// Game Loop Timing
const (
	// GameUpdateInterval is the simulation step interval (snake moves one cell)
	GameUpdateInterval = 100 * time.Millisecond

	// FrameUpdateInterval is the full-grid redraw interval
	FrameUpdateInterval = 10 * time.Millisecond

	// IdleYield is the unconditional sleep at the end of every loop iteration
	IdleYield = 1 * time.Millisecond
)

// Logging
const (
	LogDir      = "logs"
	LogFileName = "vi-snake.log"

	// MaxLogSize triggers rotation of an existing log file on startup (10 MiB)
	MaxLogSize = 10 * 1024 * 1024
)
