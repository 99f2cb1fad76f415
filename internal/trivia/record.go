package trivia

import (
	"html"
	"strings"

	"github.com/go-playground/validator/v10"

	"trivia-quiz/internal/opentdb"
)

// AnswerDelimiter separates the stored distractors inside a single TEXT column.
const AnswerDelimiter = ", "

// Record is one persisted trivia question. IncorrectAnswers holds the
// distractors joined with AnswerDelimiter, matching the trivia table layout.
type Record struct {
	Question         string
	CorrectAnswer    string
	IncorrectAnswers string
	Difficulty       string
	Category         string
	Type             string
}

// Distractors splits the stored incorrect answers back into a slice.
func (r Record) Distractors() []string {
	if r.IncorrectAnswers == "" {
		return nil
	}
	return strings.Split(r.IncorrectAnswers, AnswerDelimiter)
}

var validate = validator.New()

// Normalize maps raw source questions into Records. Entries missing a
// required field are skipped, not fatal: the number of skipped entries is
// returned so callers can report partial batches.
func Normalize(raw []opentdb.RawQuestion) (records []Record, skipped int) {
	records = make([]Record, 0, len(raw))
	for _, item := range raw {
		if err := validate.Struct(item); err != nil {
			skipped++
			continue
		}

		distractors := make([]string, 0, len(item.IncorrectAnswers))
		for _, answer := range item.IncorrectAnswers {
			distractors = append(distractors, html.UnescapeString(answer))
		}

		records = append(records, Record{
			Question:         html.UnescapeString(item.Question),
			CorrectAnswer:    html.UnescapeString(item.CorrectAnswer),
			IncorrectAnswers: strings.Join(distractors, AnswerDelimiter),
			Difficulty:       item.Difficulty,
			Category:         item.Category,
			Type:             item.Type,
		})
	}
	return records, skipped
}
