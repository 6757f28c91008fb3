package constants

// Grid Dimensions
// The outermost ring of cells is the impassable border
const (
	GridWidth  = 40
	GridHeight = 20
)

// Snake
const (
	// InitialSnakeLength is the number of cells in the starting horizontal segment
	InitialSnakeLength = 3
)

// Food Placement
const (
	// FoodPlacementAttempts bounds rejection sampling before falling back to a free-cell scan
	FoodPlacementAttempts = 256
)
