package maze

import "github.com/tomswanson/triviamaze/internal/entity"

// Room is one cell of the maze grid. Its structure is fixed after
// generation; only door lock state, item contents, and visibility flags
// change during play.
type Room struct {
	coord Coord
	sides [4]*Door // indexed by Direction; nil means wall

	items    []entity.Item
	pit      *entity.Pit
	entrance bool
	exit     bool

	// Visited is set when the adventurer enters the room; Revealed when a
	// vision potion exposes it. Both only matter to the map display.
	Visited  bool
	Revealed bool
}

// NewRoom creates a room with walls on all four sides.
func NewRoom(coord Coord) *Room {
	return &Room{coord: coord}
}

// Coord returns the room's grid position.
func (r *Room) Coord() Coord { return r.coord }

// Door returns the door on the given side, or nil if that side is a wall.
func (r *Room) Door(d Direction) *Door { return r.sides[d] }

// SetDoor installs a door on the given side. The same *Door must also be set
// on the adjacent room's opposite side.
func (r *Room) SetDoor(d Direction, door *Door) { r.sides[d] = door }

// DoorCount returns how many sides of the room are doors.
func (r *Room) DoorCount() int {
	n := 0
	for _, s := range r.sides {
		if s != nil {
			n++
		}
	}
	return n
}

// IsDeadEnd reports whether the room has exactly one door.
func (r *Room) IsDeadEnd() bool { return r.DoorCount() == 1 }

// PlaceItem puts an item into the room.
func (r *Room) PlaceItem(item entity.Item) { r.items = append(r.items, item) }

// RemoveItems empties the room of items and returns them.
func (r *Room) RemoveItems() []entity.Item {
	items := r.items
	r.items = nil
	return items
}

// Items returns the items currently in the room.
func (r *Room) Items() []entity.Item { return r.items }

// ContainsPillar reports whether one of the four pillars sits in this room.
func (r *Room) ContainsPillar() bool {
	for _, item := range r.items {
		if item.Kind == entity.Pillar {
			return true
		}
	}
	return false
}

// SetPit puts a pit into the room. Pits persist; they are not picked up.
func (r *Room) SetPit(p *entity.Pit) { r.pit = p }

// Pit returns the room's pit, or nil.
func (r *Room) Pit() *entity.Pit { return r.pit }

// IsEntrance reports whether this room is the maze entrance.
func (r *Room) IsEntrance() bool { return r.entrance }

// IsExit reports whether this room is the maze exit.
func (r *Room) IsExit() bool { return r.exit }

// SetEntrance marks the room as the maze entrance.
func (r *Room) SetEntrance() { r.entrance = true }

// SetExit marks the room as the maze exit.
func (r *Room) SetExit() { r.exit = true }

// ResetDecorations clears items and pit so decoration can be retried.
func (r *Room) ResetDecorations() {
	r.items = nil
	r.pit = nil
}
