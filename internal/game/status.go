// Package game provides the game model: maze traversal, trivia challenges,
// item use, and the win/loss state machine.
package game

// Status represents the current game status.
type Status int

const (
	// InProgress is the initial status; moves and answers are processed.
	InProgress Status = iota
	// Won is terminal: the adventurer reached the exit.
	Won
	// Lost is terminal: the adventurer ran out of hit points.
	Lost
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further operations are processed.
func (s Status) Terminal() bool {
	return s == Won || s == Lost
}
