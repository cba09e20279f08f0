package trivia

import (
	"math/rand"
	"strings"
	"testing"
)

func TestQuestionCheck(t *testing.T) {
	q := Question{
		Kind:          MultipleChoice,
		Text:          "Which planet is known as the Red Planet?",
		Options:       []string{"Venus", "Mars", "Jupiter", "Saturn"},
		CorrectAnswer: "Mars",
	}

	cases := []struct {
		answer string
		want   bool
	}{
		{"Mars", true},
		{"mars", true},
		{"  MARS  ", true},
		{"Venus", false},
		{"", false},
		{"Marss", false},
	}
	for _, c := range cases {
		if got := q.Check(c.answer); got != c.want {
			t.Errorf("Check(%q) = %v, want %v", c.answer, got, c.want)
		}
	}
}

func TestHintable(t *testing.T) {
	cases := []struct {
		kind Kind
		want bool
	}{
		{MultipleChoice, true},
		{ShortAnswer, true},
		{TrueFalse, false},
	}
	for _, c := range cases {
		q := Question{Kind: c.kind}
		if got := q.Hintable(); got != c.want {
			t.Errorf("Hintable() for %q = %v, want %v", c.kind, got, c.want)
		}
	}
}

func TestMultipleChoiceHint(t *testing.T) {
	q := Question{
		Kind:          MultipleChoice,
		Options:       []string{"Venus", "Mars", "Jupiter", "Saturn"},
		CorrectAnswer: "Mars",
	}

	hint := q.Hint(rand.New(rand.NewSource(1)))
	if hint == "" {
		t.Fatal("Expected a hint for a multiple choice question")
	}
	if strings.Contains(hint, "- Mars") {
		t.Errorf("Hint must not rule out the correct answer: %q", hint)
	}
	if got := strings.Count(hint, "- "); got != 2 {
		t.Errorf("Hint should rule out exactly 2 options, ruled out %d: %q", got, hint)
	}
}

func TestShortAnswerHint(t *testing.T) {
	q := Question{
		Kind:          ShortAnswer,
		Text:          "What OOP principle hides internal state?",
		CorrectAnswer: "Encapsulation",
	}

	hint := q.Hint(rand.New(rand.NewSource(1)))
	if !strings.HasPrefix(hint, "Hint: ") {
		t.Fatalf("Short answer hint should start with a prefix, got %q", hint)
	}

	// Every revealed letter must come from the answer, and roughly half the
	// letters should be revealed.
	revealed := strings.ReplaceAll(strings.TrimPrefix(hint, "Hint: "), " ", "")
	for _, r := range revealed {
		if !strings.ContainsRune(strings.ToLower(q.CorrectAnswer), r) &&
			!strings.ContainsRune(q.CorrectAnswer, r) {
			t.Errorf("Hint revealed letter %q not in answer: %q", r, hint)
		}
	}
	want := (len(q.CorrectAnswer) + 1) / 2
	if len([]rune(revealed)) != want {
		t.Errorf("Hint revealed %d letters, want %d: %q", len([]rune(revealed)), want, hint)
	}
}

func TestTrueFalseHasNoHint(t *testing.T) {
	q := Question{Kind: TrueFalse, CorrectAnswer: "True"}
	if hint := q.Hint(rand.New(rand.NewSource(1))); hint != "" {
		t.Errorf("True/false question should have no hint, got %q", hint)
	}
}
