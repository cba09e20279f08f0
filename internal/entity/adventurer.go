package entity

import (
	"errors"
	"math/rand"
	"sort"

	"github.com/google/uuid"
)

const (
	// MaxHitPoints is the hard cap on adventurer health.
	MaxHitPoints = 100

	initialHitPointsMin = 75
	initialHitPointsMax = 100
)

// ErrInvalidName is returned when an adventurer is created with an empty name.
var ErrInvalidName = errors.New("adventurer name must be non-empty")

// Adventurer is the player character. Hit points stay in [0, MaxHitPoints];
// the game is over when they reach zero.
type Adventurer struct {
	id        string
	name      string
	hitPoints int

	healingPotions    []Item // kept sorted by heal value, descending
	visionPotions     []Item
	suggestionPotions []Item
	magicKeys         []Item
	pillars           map[PillarType]Item
}

// NewAdventurer creates an adventurer with the given name and a random
// initial hit point value in a healthy range.
func NewAdventurer(name string, rng *rand.Rand) (*Adventurer, error) {
	if name == "" {
		return nil, ErrInvalidName
	}
	return &Adventurer{
		id:        uuid.NewString(),
		name:      name,
		hitPoints: initialHitPointsMin + rng.Intn(initialHitPointsMax-initialHitPointsMin+1),
		pillars:   make(map[PillarType]Item),
	}, nil
}

// ID returns the adventurer's session-unique identifier.
func (a *Adventurer) ID() string { return a.id }

// Name returns the adventurer's name.
func (a *Adventurer) Name() string { return a.name }

// HitPoints returns the current health level.
func (a *Adventurer) HitPoints() int { return a.hitPoints }

// IsAlive reports whether the adventurer has hit points remaining.
func (a *Adventurer) IsAlive() bool { return a.hitPoints > 0 }

// ApplyDamage reduces hit points, clamping at zero, and returns the damage
// actually taken.
func (a *Adventurer) ApplyDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	if amount > a.hitPoints {
		amount = a.hitPoints
	}
	a.hitPoints -= amount
	return amount
}

// Heal restores hit points, clamping at MaxHitPoints, and returns the amount
// actually recovered.
func (a *Adventurer) Heal(amount int) int {
	if amount <= 0 {
		return 0
	}
	if a.hitPoints+amount > MaxHitPoints {
		amount = MaxHitPoints - a.hitPoints
	}
	a.hitPoints += amount
	return amount
}

// PickUp places an item into the adventurer's inventory.
func (a *Adventurer) PickUp(item Item) {
	switch item.Kind {
	case HealingPotion:
		a.healingPotions = append(a.healingPotions, item)
		sort.Slice(a.healingPotions, func(i, j int) bool {
			return a.healingPotions[i].HealValue > a.healingPotions[j].HealValue
		})
	case VisionPotion:
		a.visionPotions = append(a.visionPotions, item)
	case SuggestionPotion:
		a.suggestionPotions = append(a.suggestionPotions, item)
	case MagicKey:
		a.magicKeys = append(a.magicKeys, item)
	case Pillar:
		a.pillars[item.PillarType] = item
	}
}

// ConsumeHealingPotion uses up the smallest healing potion held and returns
// the hit points recovered. The second return is false if none are held.
// Drinking the weakest potion first avoids wasting a strong one near the cap.
func (a *Adventurer) ConsumeHealingPotion() (int, bool) {
	if len(a.healingPotions) == 0 {
		return 0, false
	}
	last := len(a.healingPotions) - 1
	potion := a.healingPotions[last]
	a.healingPotions = a.healingPotions[:last]
	return a.Heal(potion.HealValue), true
}

// ConsumeVisionPotion uses up a vision potion. Returns false if none held.
func (a *Adventurer) ConsumeVisionPotion() bool {
	if len(a.visionPotions) == 0 {
		return false
	}
	a.visionPotions = a.visionPotions[:len(a.visionPotions)-1]
	return true
}

// ConsumeSuggestionPotion uses up a suggestion potion. Returns false if none
// held.
func (a *Adventurer) ConsumeSuggestionPotion() bool {
	if len(a.suggestionPotions) == 0 {
		return false
	}
	a.suggestionPotions = a.suggestionPotions[:len(a.suggestionPotions)-1]
	return true
}

// ConsumeMagicKey uses up a magic key. Returns false if none held.
func (a *Adventurer) ConsumeMagicKey() bool {
	if len(a.magicKeys) == 0 {
		return false
	}
	a.magicKeys = a.magicKeys[:len(a.magicKeys)-1]
	return true
}

// HealingPotionCount returns how many healing potions are held.
func (a *Adventurer) HealingPotionCount() int { return len(a.healingPotions) }

// VisionPotionCount returns how many vision potions are held.
func (a *Adventurer) VisionPotionCount() int { return len(a.visionPotions) }

// SuggestionPotionCount returns how many suggestion potions are held.
func (a *Adventurer) SuggestionPotionCount() int { return len(a.suggestionPotions) }

// MagicKeyCount returns how many magic keys are held.
func (a *Adventurer) MagicKeyCount() int { return len(a.magicKeys) }

// PillarsFound returns the distinct pillars collected so far.
func (a *Adventurer) PillarsFound() []PillarType {
	found := make([]PillarType, 0, len(a.pillars))
	for _, pt := range PillarTypes {
		if _, ok := a.pillars[pt]; ok {
			found = append(found, pt)
		}
	}
	return found
}

// HasAllPillars reports whether all four pillars have been collected.
func (a *Adventurer) HasAllPillars() bool {
	return len(a.pillars) == len(PillarTypes)
}
