package trivia

import (
	"context"
	"math/rand"
	"time"
)

// Session is one run of the quiz. It is a plain value owned by its caller:
// transitions happen through StartSession and SubmitAnswer, and nothing here
// is safe for concurrent use.
type Session struct {
	questions []Record
	options   map[int][]string
	answers   map[int]string
	current   int
	score     int
	started   bool
}

// NewRand returns the generator session shuffles default to.
func NewRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// StartSession draws numQuestions records from the sampler and freezes one
// shuffled option set (correct answer plus distractors) per question. The
// option order never changes for the lifetime of the session, so
// re-rendering a question cannot reshuffle it under the user. An empty
// sample yields an immediately finished session scoring 0/0.
func StartSession(ctx context.Context, sampler Sampler, numQuestions int, rng *rand.Rand) (*Session, error) {
	if rng == nil {
		rng = NewRand()
	}

	questions, err := sampler.SampleRandom(ctx, numQuestions)
	if err != nil {
		return nil, err
	}

	s := &Session{
		questions: questions,
		options:   make(map[int][]string, len(questions)),
		answers:   make(map[int]string, len(questions)),
		started:   true,
	}

	for i, q := range questions {
		options := append(q.Distractors(), q.CorrectAnswer)
		rng.Shuffle(len(options), func(a, b int) {
			options[a], options[b] = options[b], options[a]
		})
		s.options[i] = options
	}

	return s, nil
}

// SubmitAnswer records the selection for the current question and advances
// by one. An empty selection is a no-op so a render without a choice cannot
// move the session forward. Scoring is exact text equality against the
// stored correct answer.
func (s *Session) SubmitAnswer(selected string) {
	if !s.started || s.Finished() || selected == "" {
		return
	}

	if selected == s.questions[s.current].CorrectAnswer {
		s.score++
	}
	s.answers[s.current] = selected
	s.current++
}

// CurrentQuestion returns the question the session is waiting on, or nil
// once the session is finished (or was never started).
func (s *Session) CurrentQuestion() *Record {
	if !s.started || s.current >= len(s.questions) {
		return nil
	}
	q := s.questions[s.current]
	return &q
}

// CurrentOptions returns the frozen option order for the current question.
func (s *Session) CurrentOptions() []string {
	if !s.started || s.current >= len(s.questions) {
		return nil
	}
	return s.options[s.current]
}

// Finished reports whether every drawn question has been answered. A
// started session with no questions is finished from the outset.
func (s *Session) Finished() bool {
	return s.started && s.current >= len(s.questions)
}

// Summary returns the score and the number of questions attempted.
func (s *Session) Summary() (score, attempted int) {
	return s.score, s.current
}

// Answers returns a copy of the recorded selections keyed by question index.
func (s *Session) Answers() map[int]string {
	out := make(map[int]string, len(s.answers))
	for k, v := range s.answers {
		out[k] = v
	}
	return out
}

// Size returns how many questions the session drew.
func (s *Session) Size() int {
	return len(s.questions)
}
