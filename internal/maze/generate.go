package maze

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"go.opentelemetry.io/otel/attribute"

	"github.com/tomswanson/triviamaze/internal/entity"
	"github.com/tomswanson/triviamaze/internal/telemetry"
	"github.com/tomswanson/triviamaze/internal/trivia"
)

const (
	// MinRowsOrCols is the smallest grid dimension the generator accepts.
	MinRowsOrCols = 3

	maxEntranceExitSampleAttempts = 15
	maxPillarPlacementAttempts    = 10
	maxDecorationAttempts         = 25
)

var (
	// ErrMazeTooSmall is returned when the requested grid is below the
	// minimum size.
	ErrMazeTooSmall = errors.New("maze must be at least 3x3 rooms")

	// ErrCannotPlacePillars is returned when decoration repeatedly failed
	// to find rooms for all four pillars.
	ErrCannotPlacePillars = errors.New("not enough rooms left for pillars after pits were placed")
)

// QuestionSource supplies questions for locked doors. Exhaustion is not an
// error at generation time; remaining doors are simply left open.
type QuestionSource interface {
	RandomAny() (trivia.Question, error)
}

// Settings controls randomized door and item placement. Values are
// probabilities in [0, 1] unless noted.
type Settings struct {
	LockedDoorProbability       float64
	PillarProbability           float64
	PitProbability              float64
	HealingPotionProbability    float64
	VisionPotionProbability     float64
	SuggestionPotionProbability float64
	MagicKeyProbability         float64

	MinHealingPotionValue int
	MaxHealingPotionValue int
	MinPitDamage          int
	MaxPitDamage          int

	// MinEntranceExitDistance is the Manhattan distance the generator tries
	// to keep between entrance and exit. Clamped to what the grid allows.
	MinEntranceExitDistance int
}

// DefaultSettings returns the medium-difficulty generation settings.
func DefaultSettings() Settings {
	return Settings{
		LockedDoorProbability:       0.35,
		PillarProbability:           0.25,
		PitProbability:              0.15,
		HealingPotionProbability:    0.15,
		VisionPotionProbability:     0.15,
		SuggestionPotionProbability: 0.15,
		MagicKeyProbability:         0.15,
		MinHealingPotionValue:       5,
		MaxHealingPotionValue:       15,
		MinPitDamage:                1,
		MaxPitDamage:                20,
		MinEntranceExitDistance:     6,
	}
}

// Build generates a maze of the given dimensions. All randomness flows
// through rng, so the same seed always yields the same maze (given the same
// question source). The spanning carve guarantees every room is reachable
// from the entrance through doors; locked doors gate passage but never cut
// a room off for good.
func Build(ctx context.Context, rows, cols int, rng *rand.Rand, source QuestionSource, s Settings) (*Maze, error) {
	tracer := telemetry.Tracer("maze")
	_, span := tracer.Start(ctx, "maze.generate")
	defer span.End()

	if rows < MinRowsOrCols || cols < MinRowsOrCols {
		return nil, fmt.Errorf("%w: got %dx%d", ErrMazeTooSmall, rows, cols)
	}

	m := &Maze{rows: rows, cols: cols}
	m.rooms = make([][]*Room, rows)
	for row := range m.rooms {
		m.rooms[row] = make([]*Room, cols)
		for col := range m.rooms[row] {
			m.rooms[row][col] = NewRoom(Coord{Row: row, Col: col})
		}
	}

	g := &generator{maze: m, rng: rng, source: source, settings: s}
	g.placeEntranceAndExit()
	g.carveDoors()
	if err := g.decorateRooms(); err != nil {
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("maze.rows", rows),
		attribute.Int("maze.cols", cols),
		attribute.Int("maze.locked_doors", g.lockedDoors),
		attribute.Int("maze.pits", g.pits),
	)
	return m, nil
}

type generator struct {
	maze     *Maze
	rng      *rand.Rand
	source   QuestionSource
	settings Settings

	lockedDoors int
	pits        int
}

func (g *generator) roll(probability float64) bool {
	return g.rng.Float64() < probability
}

// placeEntranceAndExit samples entrance and exit coordinates, resampling
// until they are far enough apart. After too many attempts it falls back to
// opposite corners, which always satisfy the distance requirement.
func (g *generator) placeEntranceAndExit() {
	m := g.maze
	minDistance := g.settings.MinEntranceExitDistance
	if max := (m.rows - 1) + (m.cols - 1); minDistance > max {
		minDistance = max
	}

	entrance := Coord{}
	exit := Coord{Row: m.rows - 1, Col: m.cols - 1}
	for attempt := 0; attempt < maxEntranceExitSampleAttempts; attempt++ {
		e := Coord{Row: g.rng.Intn(m.rows), Col: g.rng.Intn(m.cols)}
		x := Coord{Row: g.rng.Intn(m.rows), Col: g.rng.Intn(m.cols)}
		if e.ManhattanDistance(x) >= minDistance {
			entrance, exit = e, x
			break
		}
	}

	m.entrance = entrance
	m.exit = exit
	m.rooms[entrance.Row][entrance.Col].SetEntrance()
	m.rooms[exit.Row][exit.Col].SetExit()
}

// carveDoors performs a random depth-first traversal from the entrance,
// installing a door between each pair of rooms stepped through. Visiting
// every room exactly once on the way down yields a spanning structure, so
// the connectivity invariant holds by construction.
func (g *generator) carveDoors() {
	visited := make(map[Coord]bool)

	var walk func(at Coord)
	walk = func(at Coord) {
		visited[at] = true

		dirs := []Direction{North, East, South, West}
		g.rng.Shuffle(len(dirs), func(i, j int) { dirs[i], dirs[j] = dirs[j], dirs[i] })

		for _, d := range dirs {
			next := at.Step(d)
			if !g.maze.Contains(next) || visited[next] {
				continue
			}
			door := g.newDoor()
			g.maze.rooms[at.Row][at.Col].SetDoor(d, door)
			g.maze.rooms[next.Row][next.Col].SetDoor(d.Opposite(), door)
			walk(next)
		}
	}
	walk(g.maze.entrance)
}

// newDoor rolls for a trivia lock. When the question source runs dry the
// door is left open rather than failing generation.
func (g *generator) newDoor() *Door {
	if g.source == nil || !g.roll(g.settings.LockedDoorProbability) {
		return NewDoor()
	}
	q, err := g.source.RandomAny()
	if err != nil {
		return NewDoor()
	}
	g.lockedDoors++
	return NewLockedDoor(q)
}

// decorateRooms fills rooms with potions, keys, pits, and the four pillars.
// The entrance and exit stay empty, no two pillars share a room, and pits
// never share a room with an item. If pit placement crowds out the pillars,
// the whole decoration is rolled back and retried.
func (g *generator) decorateRooms() error {
	for attempt := 0; attempt < maxDecorationAttempts; attempt++ {
		if g.tryDecorate() {
			return nil
		}
	}
	return ErrCannotPlacePillars
}

func (g *generator) tryDecorate() bool {
	m := g.maze
	g.pits = 0
	for row := 0; row < m.rows; row++ {
		for col := 0; col < m.cols; col++ {
			m.rooms[row][col].ResetDecorations()
		}
	}

	pillarsToPlace := []entity.PillarType{
		entity.Abstraction,
		entity.Encapsulation,
		entity.Inheritance,
		entity.Polymorphism,
	}

	for row := 0; row < m.rows; row++ {
		for col := 0; col < m.cols; col++ {
			room := m.rooms[row][col]
			if room.IsEntrance() || room.IsExit() {
				continue
			}

			placedItem := false

			if len(pillarsToPlace) > 0 && g.roll(g.settings.PillarProbability) {
				last := len(pillarsToPlace) - 1
				room.PlaceItem(entity.NewPillar(pillarsToPlace[last]))
				pillarsToPlace = pillarsToPlace[:last]
				placedItem = true
			}
			if g.roll(g.settings.HealingPotionProbability) {
				room.PlaceItem(entity.NewHealingPotion(g.rng,
					g.settings.MinHealingPotionValue, g.settings.MaxHealingPotionValue))
				placedItem = true
			}
			if g.roll(g.settings.VisionPotionProbability) {
				room.PlaceItem(entity.NewItem(entity.VisionPotion))
				placedItem = true
			}
			if g.roll(g.settings.SuggestionPotionProbability) {
				room.PlaceItem(entity.NewItem(entity.SuggestionPotion))
				placedItem = true
			}
			if g.roll(g.settings.MagicKeyProbability) {
				room.PlaceItem(entity.NewItem(entity.MagicKey))
				placedItem = true
			}

			if !placedItem && g.roll(g.settings.PitProbability) {
				room.SetPit(entity.NewPit(g.rng, g.settings.MinPitDamage, g.settings.MaxPitDamage))
				g.pits++
			}
		}
	}

	// Second pass: whatever pillars the probability rolls skipped must still
	// end up somewhere.
	for attempt := 0; attempt < maxPillarPlacementAttempts && len(pillarsToPlace) > 0; attempt++ {
		for row := 0; row < m.rows && len(pillarsToPlace) > 0; row++ {
			for col := 0; col < m.cols && len(pillarsToPlace) > 0; col++ {
				room := m.rooms[row][col]
				if room.IsEntrance() || room.IsExit() || room.Pit() != nil || room.ContainsPillar() {
					continue
				}
				if g.roll(g.settings.PillarProbability) {
					last := len(pillarsToPlace) - 1
					room.PlaceItem(entity.NewPillar(pillarsToPlace[last]))
					pillarsToPlace = pillarsToPlace[:last]
				}
			}
		}
	}
	return len(pillarsToPlace) == 0
}
