package core

// Direction is the heading of the snake
type Direction uint8

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Opposite returns the reverse heading
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// Delta returns the one-cell offset for the heading
func (d Direction) Delta() Point {
	switch d {
	case DirUp:
		return Point{Row: -1}
	case DirDown:
		return Point{Row: 1}
	case DirLeft:
		return Point{Col: -1}
	default:
		return Point{Col: 1}
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	}
	return "unknown"
}
