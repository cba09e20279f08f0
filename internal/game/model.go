package game

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"go.uber.org/zap"

	"github.com/tomswanson/triviamaze/internal/entity"
	"github.com/tomswanson/triviamaze/internal/maze"
	"github.com/tomswanson/triviamaze/internal/trivia"
)

var (
	// ErrGameOver is returned for operations attempted after the game
	// reached a terminal status. The view surfaces it as a no-op.
	ErrGameOver = errors.New("game is over")

	// ErrItemNotHeld is returned when the adventurer does not hold the
	// requested item.
	ErrItemNotHeld = errors.New("item not held")

	// ErrNoPendingQuestion is returned when an answer arrives without a
	// trivia challenge in flight.
	ErrNoPendingQuestion = errors.New("no trivia question is pending")

	// ErrNotHintable is returned when the pending question has no hint.
	ErrNotHintable = errors.New("question has no hint")
)

// WrongAnswerPolicy decides what happens when a trivia answer is wrong.
type WrongAnswerPolicy int

const (
	// PolicyRetry keeps the door locked; bumping it again re-poses the same
	// question.
	PolicyRetry WrongAnswerPolicy = iota
	// PolicyPermLock permanently locks the door; a magic key or another
	// route is needed.
	PolicyPermLock
	// PolicyDamage keeps the door locked and costs hit points.
	PolicyDamage
)

// PolicyFromString parses a policy name from configuration.
func PolicyFromString(s string) (WrongAnswerPolicy, error) {
	switch strings.ToLower(s) {
	case "retry", "":
		return PolicyRetry, nil
	case "permlock":
		return PolicyPermLock, nil
	case "damage":
		return PolicyDamage, nil
	default:
		return PolicyRetry, fmt.Errorf("unknown wrong-answer policy %q", s)
	}
}

// Settings holds the model's rule knobs.
type Settings struct {
	Policy            WrongAnswerPolicy
	WrongAnswerDamage int
	// RequirePillars gates the win on carrying all four pillars to the
	// exit. When false, reaching the exit alone wins.
	RequirePillars bool
}

// challenge tracks a deferred move through a locked door.
type challenge struct {
	door      *maze.Door
	direction maze.Direction
	question  *trivia.Question
}

// Model owns all game state and is the single entry point for mutating it.
// It is driven synchronously from the input event loop; it is not safe for
// concurrent use and does not need to be.
type Model struct {
	maze       *maze.Maze
	adventurer *entity.Adventurer
	rng        *rand.Rand
	settings   Settings
	log        *zap.SugaredLogger

	status  Status
	pos     maze.Coord
	pending *challenge
	events  []Event
}

// NewModel creates a model with the adventurer standing at the maze
// entrance.
func NewModel(m *maze.Maze, adv *entity.Adventurer, rng *rand.Rand, settings Settings, log *zap.SugaredLogger) *Model {
	model := &Model{
		maze:       m,
		adventurer: adv,
		rng:        rng,
		settings:   settings,
		log:        log,
		status:     InProgress,
		pos:        m.Entrance(),
	}
	if room, err := m.Room(model.pos); err == nil {
		room.Visited = true
	}
	return model
}

// Status returns the current game status.
func (m *Model) Status() Status { return m.status }

// Position returns the adventurer's current room coordinate.
func (m *Model) Position() maze.Coord { return m.pos }

// Adventurer returns the player character.
func (m *Model) Adventurer() *entity.Adventurer { return m.adventurer }

// Maze returns the maze being traversed.
func (m *Model) Maze() *maze.Maze { return m.maze }

// Pending returns the trivia question currently gating a deferred move, or
// nil.
func (m *Model) Pending() *trivia.Question {
	if m.pending == nil {
		return nil
	}
	return m.pending.question
}

// Move attempts to move the adventurer one room in the given direction.
// Walls and permanently locked doors block the move; a locked door poses its
// trivia question and defers the move until Answer resolves it.
func (m *Model) Move(dir maze.Direction) error {
	if m.status.Terminal() {
		return ErrGameOver
	}
	if m.pending != nil {
		// A challenge is already in flight; the view should be showing the
		// question dialog.
		m.emit(Event{Kind: EventChallenge, Direction: m.pending.direction, Question: m.pending.question})
		return nil
	}

	room, err := m.maze.Room(m.pos)
	if err != nil {
		return err
	}

	door := room.Door(dir)
	switch {
	case door == nil:
		m.emit(Event{Kind: EventBlockedWall, Direction: dir})
	case door.State() == maze.PermLocked:
		m.emit(Event{Kind: EventBlockedPermLocked, Direction: dir})
	case door.State() == maze.Locked:
		m.pending = &challenge{door: door, direction: dir, question: door.Question()}
		m.emit(Event{Kind: EventChallenge, Direction: dir, Question: door.Question()})
	default:
		m.enterRoom(m.pos.Step(dir), dir)
	}
	return nil
}

// Answer resolves the pending trivia challenge. A correct answer unlocks the
// door permanently and completes the deferred move; a wrong answer applies
// the configured policy.
func (m *Model) Answer(answer string) error {
	if m.status.Terminal() {
		return ErrGameOver
	}
	if m.pending == nil {
		return ErrNoPendingQuestion
	}

	pending := m.pending
	m.pending = nil

	if pending.question.Check(answer) {
		pending.door.Unlock()
		m.emit(Event{Kind: EventAnswerCorrect, Direction: pending.direction, Question: pending.question})
		m.enterRoom(m.pos.Step(pending.direction), pending.direction)
		return nil
	}

	m.emit(Event{Kind: EventAnswerWrong, Direction: pending.direction, Question: pending.question})
	switch m.settings.Policy {
	case PolicyPermLock:
		pending.door.PermLock()
		m.emit(Event{Kind: EventDoorPermLocked, Direction: pending.direction})
	case PolicyDamage:
		taken := m.adventurer.ApplyDamage(m.settings.WrongAnswerDamage)
		m.emit(Event{Kind: EventAnswerDamage, Amount: taken})
		m.checkDeath()
	}
	return nil
}

// Hint consumes a suggestion potion to reveal a hint for the pending
// question.
func (m *Model) Hint() (string, error) {
	if m.status.Terminal() {
		return "", ErrGameOver
	}
	if m.pending == nil {
		return "", ErrNoPendingQuestion
	}
	if !m.pending.question.Hintable() {
		return "", ErrNotHintable
	}
	if !m.adventurer.ConsumeSuggestionPotion() {
		return "", fmt.Errorf("%w: suggestion potion", ErrItemNotHeld)
	}
	return m.pending.question.Hint(m.rng), nil
}

// UseItem applies the effect of a held item: healing potions restore hit
// points, vision potions reveal the surrounding rooms, and magic keys open
// an adjacent permanently locked door.
func (m *Model) UseItem(kind entity.ItemKind) error {
	if m.status.Terminal() {
		return ErrGameOver
	}

	switch kind {
	case entity.HealingPotion:
		recovered, ok := m.adventurer.ConsumeHealingPotion()
		if !ok {
			return fmt.Errorf("%w: healing potion", ErrItemNotHeld)
		}
		m.emit(Event{Kind: EventHealed, Amount: recovered})

	case entity.VisionPotion:
		if !m.adventurer.ConsumeVisionPotion() {
			return fmt.Errorf("%w: vision potion", ErrItemNotHeld)
		}
		for _, room := range m.maze.SurroundingRooms(m.pos) {
			room.Revealed = true
		}
		m.emit(Event{Kind: EventVisionUsed})

	case entity.MagicKey:
		if m.adventurer.MagicKeyCount() == 0 {
			return fmt.Errorf("%w: magic key", ErrItemNotHeld)
		}
		room, err := m.maze.Room(m.pos)
		if err != nil {
			return err
		}
		for _, dir := range maze.Directions {
			door := room.Door(dir)
			if door != nil && door.State() == maze.PermLocked {
				m.adventurer.ConsumeMagicKey()
				door.Unlock()
				m.emit(Event{Kind: EventKeyUsed, Direction: dir})
				return nil
			}
		}
		m.emit(Event{Kind: EventKeyNoTarget})

	default:
		return fmt.Errorf("%w: %s cannot be used", ErrItemNotHeld, kind)
	}
	return nil
}

// enterRoom completes a move: advance position, apply the room's pit, pick
// up its items, and check the win and loss conditions.
func (m *Model) enterRoom(target maze.Coord, dir maze.Direction) {
	room, err := m.maze.Room(target)
	if err != nil {
		// The carve never installs a door through the outer boundary, so a
		// move through a door cannot leave the grid.
		m.log.Errorw("move through door left the maze", "target", target, "err", err)
		return
	}

	m.pos = target
	room.Visited = true
	m.emit(Event{Kind: EventMoved, Direction: dir})

	if pit := room.Pit(); pit != nil {
		taken := m.adventurer.ApplyDamage(pit.Damage)
		m.emit(Event{Kind: EventPitDamage, Amount: taken})
		if m.checkDeath() {
			return
		}
	}

	for _, item := range room.RemoveItems() {
		item := item
		m.adventurer.PickUp(item)
		m.emit(Event{Kind: EventItemFound, Item: &item})
	}

	if room.IsExit() {
		if !m.settings.RequirePillars || m.adventurer.HasAllPillars() {
			m.status = Won
			m.emit(Event{Kind: EventWon})
			m.log.Infow("game won", "position", m.pos, "hit_points", m.adventurer.HitPoints())
		} else {
			m.emit(Event{Kind: EventExitNeedsPillars})
		}
	}
}

func (m *Model) checkDeath() bool {
	if m.adventurer.IsAlive() {
		return false
	}
	m.status = Lost
	m.emit(Event{Kind: EventLost})
	m.log.Infow("game lost", "position", m.pos)
	return true
}
