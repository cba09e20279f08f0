package maze

import "github.com/tomswanson/triviamaze/internal/trivia"

// DoorState tracks whether passage through a door is gated.
type DoorState int

const (
	// Open doors can be walked through freely.
	Open DoorState = iota
	// Locked doors demand a correct trivia answer before passage.
	Locked
	// PermLocked doors only open with a magic key.
	PermLocked
)

// String returns a human-readable door state name.
func (s DoorState) String() string {
	switch s {
	case Open:
		return "open"
	case Locked:
		return "locked"
	case PermLocked:
		return "permanently locked"
	default:
		return "unknown"
	}
}

// Door connects two adjacent rooms. A single Door value is shared by both
// rooms it joins, which keeps door adjacency symmetric by construction.
type Door struct {
	state    DoorState
	question *trivia.Question
}

// NewDoor creates an open door.
func NewDoor() *Door {
	return &Door{state: Open}
}

// NewLockedDoor creates a door locked behind the given trivia question.
func NewLockedDoor(q trivia.Question) *Door {
	return &Door{state: Locked, question: &q}
}

// State returns the door's current state.
func (d *Door) State() DoorState {
	return d.state
}

// Question returns the trivia question gating this door, or nil if the door
// was never locked.
func (d *Door) Question() *trivia.Question {
	return d.question
}

// Unlock opens the door permanently. Correctly answered doors never re-lock.
func (d *Door) Unlock() {
	d.state = Open
}

// PermLock locks the door until a magic key is used on it.
func (d *Door) PermLock() {
	d.state = PermLocked
}
