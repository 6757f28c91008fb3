package core

// Point is a grid cell, 0-indexed from the top-left corner
type Point struct {
	Row, Col int
}

// Add returns the point offset by d
func (p Point) Add(d Point) Point {
	return Point{Row: p.Row + d.Row, Col: p.Col + d.Col}
}
