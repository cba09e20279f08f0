// Package trivia provides trivia questions and the in-memory question
// database the maze draws from.
package trivia

import (
	"math/rand"
	"strings"
)

// Kind identifies how a question is asked and answered.
type Kind string

const (
	MultipleChoice Kind = "multiple choice"
	TrueFalse      Kind = "true or false"
	ShortAnswer    Kind = "short answer"
)

// Question is a single trivia question. Questions are immutable after load.
type Question struct {
	ID            string   `json:"id"`
	Kind          Kind     `json:"kind"`
	Category      string   `json:"category"`
	Difficulty    string   `json:"difficulty"`
	Text          string   `json:"text"`
	Options       []string `json:"options,omitempty"`
	CorrectAnswer string   `json:"correctAnswer"`
}

// Check reports whether the given answer is correct. Comparison is
// case-insensitive and ignores surrounding whitespace.
func (q *Question) Check(answer string) bool {
	return strings.EqualFold(strings.TrimSpace(answer), strings.TrimSpace(q.CorrectAnswer))
}

// Hintable reports whether a hint can be generated for this question.
// True/false questions give too much away with any hint.
func (q *Question) Hintable() bool {
	return q.Kind == MultipleChoice || q.Kind == ShortAnswer
}

// Hint returns a hint for the question, or "" if the question is not
// hintable. Multiple choice hints rule out two wrong options; short answer
// hints reveal roughly half the letters of each word of the answer.
func (q *Question) Hint(rng *rand.Rand) string {
	switch q.Kind {
	case MultipleChoice:
		return q.multipleChoiceHint()
	case ShortAnswer:
		return q.shortAnswerHint(rng)
	}
	return ""
}

func (q *Question) multipleChoiceHint() string {
	wrong := make([]string, 0, len(q.Options))
	for _, o := range q.Options {
		if !strings.EqualFold(o, q.CorrectAnswer) {
			wrong = append(wrong, o)
		}
	}
	if len(wrong) < 2 {
		return ""
	}

	var b strings.Builder
	b.WriteString("The correct answer is NOT one of the following:\n")
	b.WriteString("- " + wrong[0] + "\n")
	b.WriteString("- " + wrong[1])
	return b.String()
}

func (q *Question) shortAnswerHint(rng *rand.Rand) string {
	var b strings.Builder
	b.WriteString("Hint: ")

	words := strings.Fields(q.CorrectAnswer)
	for wi, word := range words {
		runes := []rune(word)
		show := (len(runes) + 1) / 2

		// Pick which letter positions to expose.
		perm := rng.Perm(len(runes))[:show]
		exposed := make(map[int]bool, show)
		for _, i := range perm {
			exposed[i] = true
		}

		prev := -2
		for i, r := range runes {
			if !exposed[i] {
				continue
			}
			if prev+1 != i {
				b.WriteByte(' ')
			}
			b.WriteRune(r)
			prev = i
		}
		if wi < len(words)-1 {
			b.WriteByte(' ')
		}
	}
	return b.String()
}
