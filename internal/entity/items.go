// Package entity provides the adventurer and the items found in the maze.
package entity

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
)

// ItemKind identifies what an item does.
type ItemKind int

const (
	// HealingPotion restores a random number of hit points when consumed.
	HealingPotion ItemKind = iota
	// VisionPotion reveals the rooms surrounding the adventurer.
	VisionPotion
	// SuggestionPotion buys a hint for the trivia question currently posed.
	SuggestionPotion
	// MagicKey opens a permanently locked door.
	MagicKey
	// Pillar is one of the four pillars that must all be carried to the exit.
	Pillar
)

// String returns the item kind name.
func (k ItemKind) String() string {
	switch k {
	case HealingPotion:
		return "healing potion"
	case VisionPotion:
		return "vision potion"
	case SuggestionPotion:
		return "suggestion potion"
	case MagicKey:
		return "magic key"
	case Pillar:
		return "pillar"
	default:
		return "unknown"
	}
}

// PillarType distinguishes the four pillars.
type PillarType int

const (
	Abstraction PillarType = iota
	Encapsulation
	Inheritance
	Polymorphism
)

// PillarTypes lists all four pillars.
var PillarTypes = [4]PillarType{Abstraction, Encapsulation, Inheritance, Polymorphism}

// String returns the pillar name.
func (p PillarType) String() string {
	switch p {
	case Abstraction:
		return "Abstraction"
	case Encapsulation:
		return "Encapsulation"
	case Inheritance:
		return "Inheritance"
	case Polymorphism:
		return "Polymorphism"
	default:
		return "Unknown"
	}
}

// Item is a single item instance placed in a room or carried in inventory.
type Item struct {
	ID         string
	Kind       ItemKind
	PillarType PillarType // meaningful only when Kind == Pillar
	HealValue  int        // meaningful only when Kind == HealingPotion
}

// NewItem creates an item of the given kind.
func NewItem(kind ItemKind) Item {
	return Item{ID: uuid.NewString(), Kind: kind}
}

// NewPillar creates one of the four pillar items.
func NewPillar(pt PillarType) Item {
	return Item{ID: uuid.NewString(), Kind: Pillar, PillarType: pt}
}

// NewHealingPotion creates a healing potion with a heal value rolled
// uniformly in [minHeal, maxHeal].
func NewHealingPotion(rng *rand.Rand, minHeal, maxHeal int) Item {
	return Item{
		ID:        uuid.NewString(),
		Kind:      HealingPotion,
		HealValue: minHeal + rng.Intn(maxHeal-minHeal+1),
	}
}

// Name returns the item's display name.
func (i Item) Name() string {
	if i.Kind == Pillar {
		return fmt.Sprintf("Pillar of %s", i.PillarType)
	}
	return i.Kind.String()
}

// Pit damages the adventurer every time they step into its room.
type Pit struct {
	Damage int
}

// NewPit creates a pit with a damage value rolled uniformly in
// [minDamage, maxDamage].
func NewPit(rng *rand.Rand, minDamage, maxDamage int) *Pit {
	return &Pit{Damage: minDamage + rng.Intn(maxDamage-minDamage+1)}
}
