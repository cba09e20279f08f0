package entity

import (
	"errors"
	"math/rand"
	"testing"
)

func TestNewAdventurer(t *testing.T) {
	adv, err := NewAdventurer("Tester", rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("NewAdventurer failed: %v", err)
	}
	if adv.Name() != "Tester" {
		t.Errorf("Name() = %q, want %q", adv.Name(), "Tester")
	}
	if adv.ID() == "" {
		t.Error("Adventurer should get a non-empty ID")
	}
	if hp := adv.HitPoints(); hp < initialHitPointsMin || hp > MaxHitPoints {
		t.Errorf("Initial hit points %d outside [%d, %d]", hp, initialHitPointsMin, MaxHitPoints)
	}
	if !adv.IsAlive() {
		t.Error("Fresh adventurer should be alive")
	}

	if _, err := NewAdventurer("", rand.New(rand.NewSource(1))); !errors.Is(err, ErrInvalidName) {
		t.Errorf("Empty name = %v, want ErrInvalidName", err)
	}
}

func TestApplyDamageClampsAtZero(t *testing.T) {
	adv, _ := NewAdventurer("Tester", rand.New(rand.NewSource(1)))

	hp := adv.HitPoints()
	if taken := adv.ApplyDamage(10); taken != 10 {
		t.Errorf("ApplyDamage(10) = %d, want 10", taken)
	}
	if adv.HitPoints() != hp-10 {
		t.Errorf("HitPoints = %d, want %d", adv.HitPoints(), hp-10)
	}

	// Overkill damage only takes what is left.
	if taken := adv.ApplyDamage(10000); taken != hp-10 {
		t.Errorf("Overkill damage took %d, want %d", taken, hp-10)
	}
	if adv.HitPoints() != 0 {
		t.Errorf("HitPoints = %d, want 0", adv.HitPoints())
	}
	if adv.IsAlive() {
		t.Error("Adventurer at zero hit points should not be alive")
	}

	if taken := adv.ApplyDamage(-5); taken != 0 {
		t.Errorf("Negative damage took %d, want 0", taken)
	}
}

func TestHealClampsAtMax(t *testing.T) {
	adv, _ := NewAdventurer("Tester", rand.New(rand.NewSource(1)))
	adv.ApplyDamage(adv.HitPoints() - 40) // down to 40

	if healed := adv.Heal(30); healed != 30 {
		t.Errorf("Heal(30) = %d, want 30", healed)
	}
	if healed := adv.Heal(100); healed != 30 {
		t.Errorf("Heal past the cap recovered %d, want 30", healed)
	}
	if adv.HitPoints() != MaxHitPoints {
		t.Errorf("HitPoints = %d, want %d", adv.HitPoints(), MaxHitPoints)
	}
	if healed := adv.Heal(5); healed != 0 {
		t.Errorf("Heal at full health recovered %d, want 0", healed)
	}
}

func TestConsumeHealingPotionSmallestFirst(t *testing.T) {
	adv, _ := NewAdventurer("Tester", rand.New(rand.NewSource(1)))
	adv.ApplyDamage(adv.HitPoints() - 10) // plenty of room to heal

	for _, heal := range []int{10, 3, 7} {
		adv.PickUp(Item{Kind: HealingPotion, HealValue: heal})
	}
	if adv.HealingPotionCount() != 3 {
		t.Fatalf("HealingPotionCount = %d, want 3", adv.HealingPotionCount())
	}

	// The weakest potion goes first.
	for _, want := range []int{3, 7, 10} {
		healed, ok := adv.ConsumeHealingPotion()
		if !ok {
			t.Fatal("ConsumeHealingPotion should succeed while potions are held")
		}
		if healed != want {
			t.Errorf("ConsumeHealingPotion healed %d, want %d", healed, want)
		}
	}

	if _, ok := adv.ConsumeHealingPotion(); ok {
		t.Error("ConsumeHealingPotion should fail with no potions left")
	}
}

func TestConsumables(t *testing.T) {
	adv, _ := NewAdventurer("Tester", rand.New(rand.NewSource(1)))

	if adv.ConsumeVisionPotion() || adv.ConsumeSuggestionPotion() || adv.ConsumeMagicKey() {
		t.Error("Consuming items that are not held should fail")
	}

	adv.PickUp(NewItem(VisionPotion))
	adv.PickUp(NewItem(SuggestionPotion))
	adv.PickUp(NewItem(MagicKey))
	adv.PickUp(NewItem(MagicKey))

	if adv.VisionPotionCount() != 1 || adv.SuggestionPotionCount() != 1 || adv.MagicKeyCount() != 2 {
		t.Errorf("Counts = %d/%d/%d, want 1/1/2",
			adv.VisionPotionCount(), adv.SuggestionPotionCount(), adv.MagicKeyCount())
	}

	if !adv.ConsumeVisionPotion() || !adv.ConsumeSuggestionPotion() || !adv.ConsumeMagicKey() {
		t.Error("Consuming held items should succeed")
	}
	if adv.MagicKeyCount() != 1 {
		t.Errorf("MagicKeyCount = %d, want 1", adv.MagicKeyCount())
	}
}

func TestPillars(t *testing.T) {
	adv, _ := NewAdventurer("Tester", rand.New(rand.NewSource(1)))

	if adv.HasAllPillars() {
		t.Error("Fresh adventurer should not have all pillars")
	}

	adv.PickUp(NewPillar(Abstraction))
	adv.PickUp(NewPillar(Abstraction)) // duplicates collapse
	if got := adv.PillarsFound(); len(got) != 1 || got[0] != Abstraction {
		t.Errorf("PillarsFound = %v, want [Abstraction]", got)
	}

	adv.PickUp(NewPillar(Encapsulation))
	adv.PickUp(NewPillar(Inheritance))
	if adv.HasAllPillars() {
		t.Error("Three pillars should not count as all four")
	}

	adv.PickUp(NewPillar(Polymorphism))
	if !adv.HasAllPillars() {
		t.Error("All four pillars collected, HasAllPillars should be true")
	}
	if got := adv.PillarsFound(); len(got) != 4 {
		t.Errorf("PillarsFound = %v, want all four", got)
	}
}

func TestHealingPotionValueRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		p := NewHealingPotion(rng, 5, 15)
		if p.HealValue < 5 || p.HealValue > 15 {
			t.Fatalf("HealValue %d outside [5, 15]", p.HealValue)
		}
	}
}

func TestPitDamageRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		p := NewPit(rng, 1, 20)
		if p.Damage < 1 || p.Damage > 20 {
			t.Fatalf("Pit damage %d outside [1, 20]", p.Damage)
		}
	}
}

func TestItemName(t *testing.T) {
	if got := NewItem(HealingPotion).Name(); got != "healing potion" {
		t.Errorf("Name() = %q, want %q", got, "healing potion")
	}
	if got := NewPillar(Polymorphism).Name(); got != "Pillar of Polymorphism" {
		t.Errorf("Name() = %q, want %q", got, "Pillar of Polymorphism")
	}
}
