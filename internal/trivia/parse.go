package trivia

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
)

// ErrMalformedRecord is returned (wrapped) when a question record in the
// source data is missing required fields or otherwise unusable. This is a
// startup-fatal condition.
var ErrMalformedRecord = errors.New("malformed question record")

// CSV column layout:
//
//	category, kind, difficulty, question, option_1, option_2, option_3, option_4, correct_answer
const recordFieldCount = 9

// ParseRecords reads question records from CSV data. Every record must carry
// a category, a known kind, non-empty question text, and a correct answer;
// choice kinds additionally need at least two options and the correct answer
// must be among them. The first malformed record aborts the parse with an
// error naming its line number.
func ParseRecords(r io.Reader) ([]Question, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = recordFieldCount

	var questions []Question
	line := 0
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("line %d: %w: %v", line, ErrMalformedRecord, err)
		}

		q, err := parseRecord(record)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		questions = append(questions, q)
	}

	if len(questions) == 0 {
		return nil, fmt.Errorf("%w: no question records found", ErrMalformedRecord)
	}
	return questions, nil
}

func parseRecord(record []string) (Question, error) {
	for i := range record {
		record[i] = strings.TrimSpace(record[i])
	}

	q := Question{
		ID:            uuid.NewString(),
		Category:      record[0],
		Kind:          Kind(strings.ToLower(record[1])),
		Difficulty:    record[2],
		Text:          record[3],
		CorrectAnswer: record[8],
	}
	for _, opt := range record[4:8] {
		if opt != "" {
			q.Options = append(q.Options, opt)
		}
	}

	if q.Category == "" {
		return Question{}, fmt.Errorf("%w: missing category", ErrMalformedRecord)
	}
	if q.Text == "" {
		return Question{}, fmt.Errorf("%w: missing question text", ErrMalformedRecord)
	}
	if q.CorrectAnswer == "" {
		return Question{}, fmt.Errorf("%w: missing correct answer", ErrMalformedRecord)
	}

	switch q.Kind {
	case MultipleChoice:
		if len(q.Options) < 2 {
			return Question{}, fmt.Errorf("%w: multiple choice needs at least 2 options", ErrMalformedRecord)
		}
		if !containsFold(q.Options, q.CorrectAnswer) {
			return Question{}, fmt.Errorf("%w: correct answer %q not among options", ErrMalformedRecord, q.CorrectAnswer)
		}
	case TrueFalse:
		q.Options = []string{"True", "False"}
		if !containsFold(q.Options, q.CorrectAnswer) {
			return Question{}, fmt.Errorf("%w: true/false answer must be True or False", ErrMalformedRecord)
		}
	case ShortAnswer:
		q.Options = nil
	default:
		return Question{}, fmt.Errorf("%w: unknown question kind %q", ErrMalformedRecord, record[1])
	}

	return q, nil
}

func containsFold(options []string, want string) bool {
	for _, o := range options {
		if strings.EqualFold(o, want) {
			return true
		}
	}
	return false
}
