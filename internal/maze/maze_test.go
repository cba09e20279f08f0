package maze

import (
	"errors"
	"testing"
)

func TestNewGridAndConnect(t *testing.T) {
	entrance := Coord{Row: 0, Col: 0}
	exit := Coord{Row: 0, Col: 1}
	m := NewGrid(1, 2, entrance, exit)

	if m.Entrance() != entrance || m.Exit() != exit {
		t.Fatalf("Entrance/Exit = %v/%v, want %v/%v", m.Entrance(), m.Exit(), entrance, exit)
	}

	a, err := m.Room(entrance)
	if err != nil {
		t.Fatalf("Room(entrance) failed: %v", err)
	}
	b, err := m.Room(exit)
	if err != nil {
		t.Fatalf("Room(exit) failed: %v", err)
	}
	if !a.IsEntrance() || !b.IsExit() {
		t.Error("Entrance/exit flags not set on the grid rooms")
	}
	if a.DoorCount() != 0 || b.DoorCount() != 0 {
		t.Error("Fresh grid rooms should have walls on all sides")
	}

	door := NewDoor()
	if err := m.Connect(entrance, East, door); err != nil {
		t.Fatalf("Connect failed: %v", err)
	}

	// Both rooms must share the same door instance.
	if a.Door(East) != door || b.Door(West) != door {
		t.Error("Connect should install the same door on both sides")
	}

	if err := m.Connect(exit, East, NewDoor()); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("Connect through the boundary = %v, want ErrOutOfBounds", err)
	}
}

func TestRoomOutOfBounds(t *testing.T) {
	m := NewGrid(2, 2, Coord{}, Coord{Row: 1, Col: 1})

	for _, c := range []Coord{{Row: -1, Col: 0}, {Row: 0, Col: -1}, {Row: 2, Col: 0}, {Row: 0, Col: 2}} {
		if _, err := m.Room(c); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Room(%v) = %v, want ErrOutOfBounds", c, err)
		}
	}
}

func TestSurroundingRooms(t *testing.T) {
	m := NewGrid(3, 3, Coord{}, Coord{Row: 2, Col: 2})

	if got := len(m.SurroundingRooms(Coord{Row: 1, Col: 1})); got != 8 {
		t.Errorf("Center room has %d neighbors, want 8", got)
	}
	if got := len(m.SurroundingRooms(Coord{Row: 0, Col: 0})); got != 3 {
		t.Errorf("Corner room has %d neighbors, want 3", got)
	}
	if got := len(m.SurroundingRooms(Coord{Row: 0, Col: 1})); got != 5 {
		t.Errorf("Edge room has %d neighbors, want 5", got)
	}
}

func TestReachableFollowsDoors(t *testing.T) {
	// A 1x3 strip with a door only between the first two rooms.
	m := NewGrid(1, 3, Coord{}, Coord{Row: 0, Col: 2})
	if err := m.Connect(Coord{}, East, NewDoor()); err != nil {
		t.Fatalf("Connect failed: %v", err)
	}

	seen := m.Reachable(m.Entrance())
	if len(seen) != 2 {
		t.Errorf("Reachable covers %d rooms, want 2", len(seen))
	}
	if seen[m.Exit()] {
		t.Error("Exit behind a wall should not be reachable")
	}
}

func TestDirectionStepAndOpposite(t *testing.T) {
	c := Coord{Row: 2, Col: 2}
	cases := []struct {
		dir  Direction
		want Coord
	}{
		{North, Coord{Row: 1, Col: 2}},
		{East, Coord{Row: 2, Col: 3}},
		{South, Coord{Row: 3, Col: 2}},
		{West, Coord{Row: 2, Col: 1}},
	}
	for _, tc := range cases {
		if got := c.Step(tc.dir); got != tc.want {
			t.Errorf("Step(%v) = %v, want %v", tc.dir, got, tc.want)
		}
		// Stepping back must land on the original coordinate.
		if got := c.Step(tc.dir).Step(tc.dir.Opposite()); got != c {
			t.Errorf("Step %v then %v = %v, want %v", tc.dir, tc.dir.Opposite(), got, c)
		}
	}
}

func TestManhattanDistance(t *testing.T) {
	a := Coord{Row: 0, Col: 0}
	b := Coord{Row: 3, Col: 4}
	if got := a.ManhattanDistance(b); got != 7 {
		t.Errorf("ManhattanDistance = %d, want 7", got)
	}
	if got := b.ManhattanDistance(a); got != 7 {
		t.Errorf("ManhattanDistance should be symmetric, got %d", got)
	}
}
