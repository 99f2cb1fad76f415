package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"

	"trivia-quiz/internal/trivia"
)

const (
	minQuestions     = 1
	maxQuestions     = 10
	defaultQuestions = 5
)

// App is the interactive surface over the quiz session. It holds no quiz
// logic of its own: every user action maps to exactly one session
// transition, and rendering a question never mutates the session.
type App struct {
	sampler trivia.Sampler
	in      *bufio.Reader
	out     io.Writer
	rng     *rand.Rand
}

func New(sampler trivia.Sampler, in io.Reader, out io.Writer) *App {
	return &App{
		sampler: sampler,
		in:      bufio.NewReader(in),
		out:     out,
		rng:     trivia.NewRand(),
	}
}

// Run plays quiz sessions until the user declines a restart.
func (a *App) Run(ctx context.Context) error {
	fmt.Fprintln(a.out, "Trivia Quiz Game")

	for {
		numQuestions := a.promptQuestionCount()

		session, err := trivia.StartSession(ctx, a.sampler, numQuestions, a.rng)
		if err != nil {
			return err
		}

		if session.Size() == 0 {
			fmt.Fprintln(a.out, "\nNo questions stored yet. Run trivia-etl first.")
		}

		a.playSession(session)

		score, attempted := session.Summary()
		fmt.Fprintf(a.out, "\nYour Score: %d/%d\n", score, attempted)
		if !a.promptRestart() {
			return nil
		}
	}
}

func (a *App) playSession(session *trivia.Session) {
	for !session.Finished() {
		question := session.CurrentQuestion()
		options := session.CurrentOptions()
		_, attempted := session.Summary()

		a.renderQuestion(attempted+1, question, options)

		selected, ok := a.readSelection(options)
		if !ok {
			fmt.Fprintln(a.out, "\nInput closed, abandoning quiz.")
			return
		}
		session.SubmitAnswer(selected)
	}
}

func (a *App) renderQuestion(number int, question *trivia.Record, options []string) {
	fmt.Fprintf(a.out, "\nQuestion %d\n\n%s\n\n", number, question.Question)
	for i, option := range options {
		fmt.Fprintf(a.out, "%c. %s\n", 'A'+i, option)
	}
	fmt.Fprint(a.out, "\nAnswer: ")
}

// readSelection maps the typed letter back to the option text so the
// session still compares exact answer text. A blank line just re-prompts:
// no selection means no transition.
func (a *App) readSelection(options []string) (string, bool) {
	for {
		line, err := a.in.ReadString('\n')
		choice := strings.ToUpper(strings.TrimSpace(line))

		if len(choice) == 1 {
			idx := int(choice[0] - 'A')
			if idx >= 0 && idx < len(options) {
				return options[idx], true
			}
		}
		if err != nil {
			return "", false
		}
		if choice == "" {
			fmt.Fprint(a.out, "Answer: ")
			continue
		}
		fmt.Fprintf(a.out, "Pick a letter A-%c: ", 'A'+len(options)-1)
	}
}

func (a *App) promptQuestionCount() int {
	fmt.Fprintf(a.out, "\nNumber of questions [%d-%d, default %d]: ", minQuestions, maxQuestions, defaultQuestions)
	for {
		line, err := a.in.ReadString('\n')
		value := strings.TrimSpace(line)
		if value == "" {
			return defaultQuestions
		}

		n, convErr := strconv.Atoi(value)
		if convErr == nil && n >= minQuestions && n <= maxQuestions {
			return n
		}
		if err != nil {
			return defaultQuestions
		}
		fmt.Fprintf(a.out, "Enter a number between %d and %d: ", minQuestions, maxQuestions)
	}
}

func (a *App) promptRestart() bool {
	fmt.Fprint(a.out, "Play again? [y/N]: ")
	line, _ := a.in.ReadString('\n')
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
