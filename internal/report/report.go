package report

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/wcharczuk/go-chart/v2"
)

// DifficultyCounter is the read-only slice of storage the report needs.
type DifficultyCounter interface {
	CountByDifficulty(ctx context.Context) (map[string]int, error)
}

// Count is one bar of the report.
type Count struct {
	Difficulty string
	Questions  int
}

// DifficultyCounts loads the grouped counts, sorted by difficulty name so
// the output is stable across runs.
func DifficultyCounts(ctx context.Context, store DifficultyCounter) ([]Count, error) {
	grouped, err := store.CountByDifficulty(ctx)
	if err != nil {
		return nil, err
	}

	counts := make([]Count, 0, len(grouped))
	for difficulty, n := range grouped {
		counts = append(counts, Count{Difficulty: difficulty, Questions: n})
	}
	sort.Slice(counts, func(i, j int) bool {
		return counts[i].Difficulty < counts[j].Difficulty
	})
	return counts, nil
}

// WriteTable renders the counts as a terminal bar list.
func WriteTable(out io.Writer, counts []Count) {
	if len(counts) == 0 {
		fmt.Fprintln(out, "no questions stored yet")
		return
	}

	widest := 0
	for _, c := range counts {
		if len(c.Difficulty) > widest {
			widest = len(c.Difficulty)
		}
	}

	for _, c := range counts {
		fmt.Fprintf(out, "%-*s %4d %s\n", widest, c.Difficulty, c.Questions, strings.Repeat("#", c.Questions))
	}
}

// RenderBarChart writes a PNG bar chart of questions per difficulty.
func RenderBarChart(path string, counts []Count) error {
	if len(counts) == 0 {
		return fmt.Errorf("report: no data to chart")
	}

	maxQuestions := 0
	bars := make([]chart.Value, 0, len(counts))
	for _, c := range counts {
		if c.Questions > maxQuestions {
			maxQuestions = c.Questions
		}
		bars = append(bars, chart.Value{Label: c.Difficulty, Value: float64(c.Questions)})
	}

	graph := chart.BarChart{
		Title:    "Number of Questions by Difficulty",
		Height:   512,
		BarWidth: 60,
		Bars:     bars,
		YAxis: chart.YAxis{
			// Fixed range so a single difficulty (flat data) still renders.
			Range: &chart.ContinuousRange{Min: 0, Max: float64(maxQuestions + 1)},
		},
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report: create chart file: %w", err)
	}
	defer file.Close()

	if err := graph.Render(chart.PNG, file); err != nil {
		return fmt.Errorf("report: render chart: %w", err)
	}
	return nil
}
