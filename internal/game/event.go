package game

import (
	"github.com/tomswanson/triviamaze/internal/entity"
	"github.com/tomswanson/triviamaze/internal/maze"
	"github.com/tomswanson/triviamaze/internal/trivia"
)

// EventKind identifies what happened during a model operation.
type EventKind int

const (
	// EventMoved: the adventurer entered a new room.
	EventMoved EventKind = iota
	// EventBlockedWall: the attempted direction is a wall.
	EventBlockedWall
	// EventBlockedPermLocked: the door is permanently locked.
	EventBlockedPermLocked
	// EventChallenge: a locked door posed a trivia question; the move is
	// deferred until the answer resolves.
	EventChallenge
	// EventAnswerCorrect: the pending question was answered correctly and
	// the door unlocked for good.
	EventAnswerCorrect
	// EventAnswerWrong: the pending question was answered incorrectly.
	EventAnswerWrong
	// EventDoorPermLocked: a wrong answer permanently locked the door.
	EventDoorPermLocked
	// EventAnswerDamage: a wrong answer cost hit points.
	EventAnswerDamage
	// EventItemFound: an item was picked up on entering a room.
	EventItemFound
	// EventPitDamage: a pit dealt damage on entering a room.
	EventPitDamage
	// EventHealed: a healing potion restored hit points.
	EventHealed
	// EventVisionUsed: a vision potion revealed the surrounding rooms.
	EventVisionUsed
	// EventKeyUsed: a magic key opened a permanently locked door.
	EventKeyUsed
	// EventKeyNoTarget: a magic key was readied but no adjacent door is
	// permanently locked; the key is not consumed.
	EventKeyNoTarget
	// EventExitNeedsPillars: the adventurer reached the exit without all
	// four pillars.
	EventExitNeedsPillars
	// EventWon: the game was won.
	EventWon
	// EventLost: the adventurer died.
	EventLost
)

// Event is a state-change notification emitted by the model. The controller
// drains events after each operation and forwards them to the view, so the
// model never needs to know about terminal types.
type Event struct {
	Kind      EventKind
	Direction maze.Direction
	Question  *trivia.Question
	Item      *entity.Item
	Amount    int
}

func (m *Model) emit(e Event) {
	m.events = append(m.events, e)
}

// Events returns and clears the notifications accumulated since the last
// call.
func (m *Model) Events() []Event {
	events := m.events
	m.events = nil
	return events
}
