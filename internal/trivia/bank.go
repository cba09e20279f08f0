package trivia

import (
	"errors"
	"math/rand"
)

// ErrExhausted is returned when no unused questions remain in the requested
// scope. Callers are expected to fall back to another category or degrade
// gracefully.
var ErrExhausted = errors.New("no unused questions remain")

// Bank hands out random questions from a Store without repeating a question
// within a session.
type Bank struct {
	store *Store
	rng   *rand.Rand
	used  map[string]map[int]bool // category -> used indices
}

// NewBank creates a session-scoped bank over the given store. All random
// selection goes through rng so sessions are reproducible for a fixed seed.
func NewBank(store *Store, rng *rand.Rand) *Bank {
	return &Bank{
		store: store,
		rng:   rng,
		used:  make(map[string]map[int]bool),
	}
}

// RandomQuestion returns a random question from the given category that has
// not been handed out yet this session, or ErrExhausted if none remain.
func (b *Bank) RandomQuestion(category string) (Question, error) {
	total := b.store.Count(category)
	usedInCat := b.used[category]

	unused := make([]int, 0, total-len(usedInCat))
	for i := 0; i < total; i++ {
		if !usedInCat[i] {
			unused = append(unused, i)
		}
	}
	if len(unused) == 0 {
		return Question{}, ErrExhausted
	}

	pick := unused[b.rng.Intn(len(unused))]
	q, err := b.store.Question(category, pick)
	if err != nil {
		return Question{}, err
	}

	if b.used[category] == nil {
		b.used[category] = make(map[int]bool)
	}
	b.used[category][pick] = true
	return q, nil
}

// RandomAny returns an unused question from a randomly chosen category,
// falling back through the remaining categories before giving up with
// ErrExhausted.
func (b *Bank) RandomAny() (Question, error) {
	cats := b.store.Categories()
	b.rng.Shuffle(len(cats), func(i, j int) {
		cats[i], cats[j] = cats[j], cats[i]
	})

	for _, c := range cats {
		q, err := b.RandomQuestion(c)
		if err == nil {
			return q, nil
		}
		if !errors.Is(err, ErrExhausted) {
			return Question{}, err
		}
	}
	return Question{}, ErrExhausted
}

// Remaining returns how many unused questions are left in a category.
func (b *Bank) Remaining(category string) int {
	return b.store.Count(category) - len(b.used[category])
}
