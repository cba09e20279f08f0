// Package maze provides the room grid, door placement, and maze generation.
package maze

// Direction is one of the four sides of a room.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// Directions lists all four directions in a fixed order.
var Directions = [4]Direction{North, East, South, West}

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return "unknown"
	}
}

// Delta returns the row and column offsets of one step in this direction.
func (d Direction) Delta() (dRow, dCol int) {
	switch d {
	case North:
		return -1, 0
	case East:
		return 0, 1
	case South:
		return 1, 0
	case West:
		return 0, -1
	default:
		return 0, 0
	}
}

// Opposite returns the direction pointing back the way we came.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case East:
		return West
	case South:
		return North
	default:
		return East
	}
}

// Coord identifies a room by its grid position.
type Coord struct {
	Row, Col int
}

// Step returns the coordinate one room over in the given direction.
func (c Coord) Step(d Direction) Coord {
	dr, dc := d.Delta()
	return Coord{Row: c.Row + dr, Col: c.Col + dc}
}

// ManhattanDistance returns the grid distance between two coordinates.
func (c Coord) ManhattanDistance(other Coord) int {
	return abs(c.Row-other.Row) + abs(c.Col-other.Col)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
