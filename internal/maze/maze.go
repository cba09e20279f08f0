package maze

import "errors"

// ErrOutOfBounds is returned for coordinates outside the maze grid. Seeing
// it at runtime means a caller computed a coordinate wrong.
var ErrOutOfBounds = errors.New("coordinate outside maze bounds")

// Maze is a fixed-size grid of rooms with one entrance and one exit. Every
// room is reachable from the entrance through doors (some of which may start
// out locked).
type Maze struct {
	rows, cols int
	rooms      [][]*Room
	entrance   Coord
	exit       Coord
}

// NewGrid creates a maze of unconnected rooms with the given entrance and
// exit. Used for hand-built layouts; generated mazes come from Build.
func NewGrid(rows, cols int, entrance, exit Coord) *Maze {
	m := &Maze{rows: rows, cols: cols, entrance: entrance, exit: exit}
	m.rooms = make([][]*Room, rows)
	for row := range m.rooms {
		m.rooms[row] = make([]*Room, cols)
		for col := range m.rooms[row] {
			m.rooms[row][col] = NewRoom(Coord{Row: row, Col: col})
		}
	}
	m.rooms[entrance.Row][entrance.Col].SetEntrance()
	m.rooms[exit.Row][exit.Col].SetExit()
	return m
}

// Connect installs a door between the room at c and its neighbor one step in
// the given direction, on both sides.
func (m *Maze) Connect(c Coord, d Direction, door *Door) error {
	from, err := m.Room(c)
	if err != nil {
		return err
	}
	to, err := m.Room(c.Step(d))
	if err != nil {
		return err
	}
	from.SetDoor(d, door)
	to.SetDoor(d.Opposite(), door)
	return nil
}

// Rows returns the number of grid rows.
func (m *Maze) Rows() int { return m.rows }

// Cols returns the number of grid columns.
func (m *Maze) Cols() int { return m.cols }

// Entrance returns the entrance coordinate.
func (m *Maze) Entrance() Coord { return m.entrance }

// Exit returns the exit coordinate.
func (m *Maze) Exit() Coord { return m.exit }

// Contains reports whether a coordinate lies inside the grid.
func (m *Maze) Contains(c Coord) bool {
	return c.Row >= 0 && c.Row < m.rows && c.Col >= 0 && c.Col < m.cols
}

// Room returns the room at the given coordinate, or ErrOutOfBounds.
func (m *Maze) Room(c Coord) (*Room, error) {
	if !m.Contains(c) {
		return nil, ErrOutOfBounds
	}
	return m.rooms[c.Row][c.Col], nil
}

// SurroundingRooms returns the up-to-eight rooms bordering the given
// coordinate, clipped to the grid. Used by vision potions.
func (m *Maze) SurroundingRooms(c Coord) []*Room {
	var rooms []*Room
	for row := c.Row - 1; row <= c.Row+1; row++ {
		for col := c.Col - 1; col <= c.Col+1; col++ {
			at := Coord{Row: row, Col: col}
			if at == c || !m.Contains(at) {
				continue
			}
			rooms = append(rooms, m.rooms[row][col])
		}
	}
	return rooms
}

// Reachable returns the set of coordinates reachable from start by walking
// through doors, regardless of their lock state. Locked doors are
// answerable, so they never make a room unreachable.
func (m *Maze) Reachable(start Coord) map[Coord]bool {
	seen := map[Coord]bool{start: true}
	queue := []Coord{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		room := m.rooms[cur.Row][cur.Col]
		for _, d := range Directions {
			if room.Door(d) == nil {
				continue
			}
			next := cur.Step(d)
			if m.Contains(next) && !seen[next] {
				seen[next] = true
				queue = append(queue, next)
			}
		}
	}
	return seen
}
